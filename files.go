/*
 * files.go, part of gommtf.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gommtf is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package mmtf

import (
	"compress/gzip"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Read parses one MMTF structure from r. The reader must supply the
//plain MessagePack bytes; ReadFile handles compressed files.
func Read(r io.Reader) (*Structure, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &CError{kind: BadFile, message: err.Error(), deco: []string{"Read"}}
	}
	D, err := UnmarshalData(b)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	S, err := D.Structure()
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return S, nil
}

//Write encodes S and writes the plain MessagePack bytes to w. WriteFile
//handles compression.
func Write(w io.Writer, S *Structure, opts ...*Options) error {
	D, err := NewData(S, opts...)
	if err != nil {
		return errDecorate(err, "Write")
	}
	b, err := D.Marshal()
	if err != nil {
		return errDecorate(err, "Write")
	}
	if _, err := w.Write(b); err != nil {
		return &CError{kind: BadFile, message: err.Error(), deco: []string{"Write"}}
	}
	return nil
}

//ReadFile reads the structure in the named MMTF file. A name ending in
//.gz or .zst is read through the corresponding decompressor, anything
//else as a plain file.
func ReadFile(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &CError{kind: BadFile, message: err.Error(), deco: []string{"ReadFile"}}
	}
	defer f.Close()
	var in io.Reader = f
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		h, err := gzip.NewReader(f)
		if err != nil {
			return nil, &CError{kind: BadFile, message: name + ": " + err.Error(), deco: []string{"ReadFile"}}
		}
		defer h.Close()
		in = h
	case strings.HasSuffix(lower, ".zst"):
		h, err := zstd.NewReader(f)
		if err != nil {
			return nil, &CError{kind: BadFile, message: name + ": " + err.Error(), deco: []string{"ReadFile"}}
		}
		defer h.Close()
		in = h
	default:
		if !strings.HasSuffix(lower, ".mmtf") {
			log.Printf("Unrecognized extension for %s. Will read it as a plain MMTF file", name)
		}
	}
	S, err := Read(in)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return S, nil
}

//WriteFile writes S to the named file, compressing by the name's
//suffix: gzip for .gz, zstd for .zst, no compression otherwise. The
//gzip level comes from the options; zstd is always written at its
//best-compression setting.
func WriteFile(name string, S *Structure, opts ...*Options) error {
	O := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return &CError{kind: BadFile, message: err.Error(), deco: []string{"WriteFile"}}
	}
	defer f.Close()
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, O.level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var newWriter func(io.Writer) (io.WriteCloser, error)
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		newWriter = gzipwriter
	case strings.HasSuffix(lower, ".zst"):
		newWriter = zstdwriter
	default:
		if !strings.HasSuffix(lower, ".mmtf") {
			log.Printf("Unrecognized extension for %s. Will write a plain MMTF file", name)
		}
	}
	if newWriter == nil {
		if err := Write(f, S, O); err != nil {
			return errDecorate(err, "WriteFile")
		}
		return nil
	}
	h, err := newWriter(f)
	if err != nil {
		return &CError{kind: BadFile, message: name + ": " + err.Error(), deco: []string{"WriteFile"}}
	}
	if err := Write(h, S, O); err != nil {
		h.Close()
		return errDecorate(err, "WriteFile")
	}
	//the compressors only flush on Close, so its error matters
	if err := h.Close(); err != nil {
		return &CError{kind: BadFile, message: name + ": " + err.Error(), deco: []string{"WriteFile"}}
	}
	return nil
}
