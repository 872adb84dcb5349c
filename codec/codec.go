//Package codec implements the binary encoding strategies of the
//Macromolecular Transmission Format (MMTF), which pack the per-atom,
//per-group and per-chain arrays of a structure (coordinates, B-factors,
//identifiers, secondary structure codes and so on) into compact byte
//buffers. Every encoded field starts with a 12-byte big-endian header
//(strategy identifier, element count, parameter) followed by the payload.
//The strategies compose a handful of primitives: raw fixed-width cells,
//fixed-length strings, run-length, delta, recursive indexing and
//fixed-point integer scaling. All of them are pure transformations, so
//any number of fields can be decoded concurrently without coordination.
package codec

import (
	"fmt"
)

//The encoding strategy identifiers defined by the MMTF format, one per
//pipeline of primitives. The parameter accompanying each field is the
//fixed-point divisor for the strategies that scale floating point values,
//and the cell width for StringFixed; the remaining strategies ignore it.
const (
	FloatRaw            int32 = 1  //raw big-endian float32 cells
	Int8Raw             int32 = 2  //raw int8 cells
	Int16Raw            int32 = 3  //raw big-endian int16 cells
	Int32Raw            int32 = 4  //raw big-endian int32 cells
	StringFixed         int32 = 5  //fixed-width, NUL-padded string cells
	CharRunLength       int32 = 6  //run-length encoded characters
	IntRunLength        int32 = 7  //run-length encoded int32
	IntDeltaRunLength   int32 = 8  //delta, then run-length, over int32
	FloatRunLength      int32 = 9  //fixed-point scaled, then run-length
	FloatDeltaRecursive int32 = 10 //scaled, delta, recursive-indexed int16
	FloatScaled         int32 = 11 //fixed-point scaled int16
	FloatRecursive16    int32 = 12 //scaled, recursive-indexed int16
	FloatRecursive8     int32 = 13 //scaled, recursive-indexed int8
	IntRecursive16      int32 = 14 //recursive-indexed int16
	IntRecursive8       int32 = 15 //recursive-indexed int8
)

//Kind identifies the element type held by a decoded array.
type Kind uint8

const (
	KindFloat Kind = iota
	KindInt
	KindInt16
	KindInt8
	KindChar
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float64"
	case KindInt:
		return "int32"
	case KindInt16:
		return "int16"
	case KindInt8:
		return "int8"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	}
	return "unknown"
}

//Array is the result of decoding a field: a tagged union over the element
//types the MMTF strategies produce. Exactly one of the slices is non-nil,
//selected by Kind. The accessors return nil for a mismatched kind, so the
//caller can both switch on Kind() and just ask for what it expects.
type Array struct {
	kind  Kind
	f     []float64
	i     []int32
	i16   []int16
	i8    []int8
	chars []byte
	s     []string
}

//NewFloats returns an Array holding floating point elements.
func NewFloats(v []float64) *Array { return &Array{kind: KindFloat, f: v} }

//NewInts returns an Array holding 32-bit integer elements.
func NewInts(v []int32) *Array { return &Array{kind: KindInt, i: v} }

//NewInt16s returns an Array holding 16-bit integer elements.
func NewInt16s(v []int16) *Array { return &Array{kind: KindInt16, i16: v} }

//NewInt8s returns an Array holding 8-bit integer elements.
func NewInt8s(v []int8) *Array { return &Array{kind: KindInt8, i8: v} }

//NewChars returns an Array holding single-byte characters.
func NewChars(v []byte) *Array { return &Array{kind: KindChar, chars: v} }

//NewStrings returns an Array holding strings.
func NewStrings(v []string) *Array { return &Array{kind: KindString, s: v} }

//Kind returns the element type held by the array.
func (a *Array) Kind() Kind { return a.kind }

//Len returns the number of elements in the array, whatever their type.
func (a *Array) Len() int {
	switch a.kind {
	case KindFloat:
		return len(a.f)
	case KindInt:
		return len(a.i)
	case KindInt16:
		return len(a.i16)
	case KindInt8:
		return len(a.i8)
	case KindChar:
		return len(a.chars)
	case KindString:
		return len(a.s)
	}
	return 0
}

func (a *Array) Floats() []float64 { return a.f }
func (a *Array) Ints() []int32     { return a.i }
func (a *Array) Int16s() []int16   { return a.i16 }
func (a *Array) Int8s() []int8     { return a.i8 }
func (a *Array) Chars() []byte     { return a.chars }
func (a *Array) Strings() []string { return a.s }

//headerLen is the fixed size of the header that precedes every encoded
//field: strategy id, element count and parameter, each a big-endian int32.
const headerLen = 12

//Encoded is a single encoded field as found in an MMTF container: the
//three header values plus the payload that follows them. It is not
//modified by any function in this package once built.
type Encoded struct {
	ID    int32  //strategy identifier
	Count int32  //declared number of logical elements
	Param int32  //divisor or string width, depending on the strategy
	Body  []byte //the payload, without the header
}

//Parse splits an encoded field into its header values and payload. The
//payload is not validated here; that happens on decoding.
func Parse(field []byte) (*Encoded, error) {
	r := newReader(field)
	id, err := r.int32()
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	count, err := r.int32()
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	param, err := r.int32()
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	return &Encoded{ID: id, Count: count, Param: param, Body: r.rest()}, nil
}

//Marshal serializes the field back to its wire form, header included.
func (E *Encoded) Marshal() []byte {
	field := make([]byte, 0, headerLen+len(E.Body))
	field = appendInt32(field, E.ID)
	field = appendInt32(field, E.Count)
	field = appendInt32(field, E.Param)
	return append(field, E.Body...)
}

//Decode runs the field's payload through the strategy its header declares
//and checks the result against the declared element count. A count
//disagreement is always an error, never a truncation or padding.
func (E *Encoded) Decode() (*Array, error) {
	s, ok := strategies[E.ID]
	if !ok {
		return nil, &Error{kind: UnsupportedStrategy, message: fmt.Sprintf("id %d", E.ID), strategy: E.ID}
	}
	if E.Count < 0 {
		return nil, &Error{kind: CorruptField, message: fmt.Sprintf("negative element count %d", E.Count), strategy: E.ID}
	}
	a, err := s.decode(E)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	if a.Len() != int(E.Count) {
		return nil, &Error{kind: LengthMismatch, message: fmt.Sprintf("declared %d elements, decoded %d", E.Count, a.Len()), strategy: E.ID}
	}
	return a, nil
}

//Decode parses a full encoded field (12-byte header plus payload) and
//returns the decoded array.
func Decode(field []byte) (*Array, error) {
	E, err := Parse(field)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return E.Decode()
}

//Encode serializes an array under the given strategy and parameter,
//returning the full field, header included. The element count in the
//header is taken from the array. The caller chooses the strategy and, for
//the scaling strategies, the divisor, so round-trip fidelity is under the
//caller's control.
func Encode(a *Array, id, param int32) ([]byte, error) {
	s, ok := strategies[id]
	if !ok {
		return nil, &Error{kind: UnsupportedStrategy, message: fmt.Sprintf("id %d", id), strategy: id}
	}
	body, err := s.encode(a, param)
	if err != nil {
		return nil, errDecorate(err, "Encode")
	}
	E := &Encoded{ID: id, Count: int32(a.Len()), Param: param, Body: body}
	return E.Marshal(), nil
}

//Supported returns whether the given strategy identifier is known.
func Supported(id int32) bool {
	_, ok := strategies[id]
	return ok
}

//strategy is one decode/encode pipeline. Implementations are stateless;
//the registry below is the only instance of each and is never written
//after initialization, so lookups are safe from any goroutine.
type strategy interface {
	decode(E *Encoded) (*Array, error)
	encode(a *Array, param int32) ([]byte, error)
}

var strategies = map[int32]strategy{
	FloatRaw:            floatRaw{},
	Int8Raw:             int8Raw{},
	Int16Raw:            int16Raw{},
	Int32Raw:            int32Raw{},
	StringFixed:         stringFixed{},
	CharRunLength:       charRunLength{},
	IntRunLength:        intRunLength{},
	IntDeltaRunLength:   intDeltaRunLength{},
	FloatRunLength:      floatRunLength{},
	FloatDeltaRecursive: floatDeltaRecursive{},
	FloatScaled:         floatScaled{},
	FloatRecursive16:    floatRecursive16{},
	FloatRecursive8:     floatRecursive8{},
	IntRecursive16:      intRecursive16{},
	IntRecursive8:       intRecursive8{},
}
