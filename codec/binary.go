package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

//Everything on the wire is big-endian. Reads go through a cursor over the
//field's bytes and fail with TruncatedBuffer when the remainder is too
//short; writes append to a slice and can not fail for format reasons.

type reader struct {
	b   []byte
	off int
}

func newReader(b []byte) *reader {
	return &reader{b: b}
}

//rest returns whatever the cursor has not consumed yet.
func (r *reader) rest() []byte {
	return r.b[r.off:]
}

func (r *reader) remaining() int {
	return len(r.b) - r.off
}

func (r *reader) short(need int) error {
	return &Error{kind: TruncatedBuffer, message: fmt.Sprintf("need %d bytes, %d left", need, r.remaining())}
}

//ncells returns how many whole cells of the given width remain. A buffer
//that is not a whole number of cells is truncated input, not a shorter
//array.
func (r *reader) ncells(width int) (int, error) {
	if rem := r.remaining() % width; rem != 0 {
		return 0, &Error{kind: TruncatedBuffer, message: fmt.Sprintf("%d trailing bytes do not complete a %d-byte cell", rem, width)}
	}
	return r.remaining() / width, nil
}

func (r *reader) int32() (int32, error) {
	if r.remaining() < 4 {
		return 0, r.short(4)
	}
	v := int32(binary.BigEndian.Uint32(r.b[r.off:]))
	r.off += 4
	return v, nil
}

func (r *reader) int8s(n int) ([]int8, error) {
	if r.remaining() < n {
		return nil, r.short(n)
	}
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(r.b[r.off+i])
	}
	r.off += n
	return out, nil
}

func (r *reader) int16s(n int) ([]int16, error) {
	if r.remaining() < 2*n {
		return nil, r.short(2 * n)
	}
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(binary.BigEndian.Uint16(r.b[r.off+2*i:]))
	}
	r.off += 2 * n
	return out, nil
}

func (r *reader) int32s(n int) ([]int32, error) {
	if r.remaining() < 4*n {
		return nil, r.short(4 * n)
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(r.b[r.off+4*i:]))
	}
	r.off += 4 * n
	return out, nil
}

func (r *reader) float32s(n int) ([]float32, error) {
	if r.remaining() < 4*n {
		return nil, r.short(4 * n)
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.BigEndian.Uint32(r.b[r.off+4*i:]))
	}
	r.off += 4 * n
	return out, nil
}

//cells reads n fixed-width string cells, stripping the trailing NUL
//padding from each.
func (r *reader) cells(n, width int) ([]string, error) {
	if r.remaining() < n*width {
		return nil, r.short(n * width)
	}
	out := make([]string, n)
	for i := range out {
		cell := r.b[r.off+i*width : r.off+(i+1)*width]
		out[i] = string(bytes.TrimRight(cell, "\x00"))
	}
	r.off += n * width
	return out, nil
}

func appendInt32(b []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(v))
}

func appendInt32s(b []byte, vs []int32) []byte {
	for _, v := range vs {
		b = binary.BigEndian.AppendUint32(b, uint32(v))
	}
	return b
}

func appendInt16s(b []byte, vs []int16) []byte {
	for _, v := range vs {
		b = binary.BigEndian.AppendUint16(b, uint16(v))
	}
	return b
}

func appendInt8s(b []byte, vs []int8) []byte {
	for _, v := range vs {
		b = append(b, byte(v))
	}
	return b
}

func appendFloat32s(b []byte, vs []float32) []byte {
	for _, v := range vs {
		b = binary.BigEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

//appendCell writes one string cell, NUL-padded to width. A string longer
//than its cell can not be stored.
func appendCell(b []byte, s string, width int) ([]byte, error) {
	if len(s) > width {
		return nil, &Error{kind: EncodingOverflow, message: fmt.Sprintf("string %q does not fit a %d-byte cell", s, width)}
	}
	b = append(b, s...)
	for i := len(s); i < width; i++ {
		b = append(b, 0)
	}
	return b, nil
}
