package codec

import (
	"fmt"
	"math"
)

//One type per strategy identifier. The decoders derive the element count
//from the payload itself (whole cells, expanded runs, closed chains); the
//declared count in the header is checked against that afterwards, in
//Encoded.Decode. The encoders are the exact inverses and take the
//parameter the caller wants written with the field.

func wrongKind(id int32, want Kind, a *Array) error {
	return &Error{kind: KindMismatch, message: fmt.Sprintf("have %v, want %v", a.Kind(), want), strategy: id}
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}

//checked float64 to float32 conversion, for the raw float strategy.
func narrowFloats(id int32, v []float64) ([]float32, error) {
	out := make([]float32, len(v))
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
			return nil, &Error{kind: EncodingOverflow, message: fmt.Sprintf("%v does not fit a 32-bit float", f), strategy: id}
		}
		out[i] = float32(f)
	}
	return out, nil
}

type floatRaw struct{}

func (floatRaw) decode(E *Encoded) (*Array, error) {
	r := newReader(E.Body)
	n, err := r.ncells(4)
	if err != nil {
		return nil, err
	}
	fs, err := r.float32s(n)
	if err != nil {
		return nil, err
	}
	return NewFloats(widen(fs)), nil
}

func (floatRaw) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindFloat {
		return nil, wrongKind(FloatRaw, KindFloat, a)
	}
	fs, err := narrowFloats(FloatRaw, a.Floats())
	if err != nil {
		return nil, err
	}
	return appendFloat32s(make([]byte, 0, 4*len(fs)), fs), nil
}

type int8Raw struct{}

func (int8Raw) decode(E *Encoded) (*Array, error) {
	r := newReader(E.Body)
	vs, err := r.int8s(r.remaining())
	if err != nil {
		return nil, err
	}
	return NewInt8s(vs), nil
}

func (int8Raw) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindInt8 {
		return nil, wrongKind(Int8Raw, KindInt8, a)
	}
	return appendInt8s(make([]byte, 0, len(a.Int8s())), a.Int8s()), nil
}

type int16Raw struct{}

func (int16Raw) decode(E *Encoded) (*Array, error) {
	r := newReader(E.Body)
	n, err := r.ncells(2)
	if err != nil {
		return nil, err
	}
	vs, err := r.int16s(n)
	if err != nil {
		return nil, err
	}
	return NewInt16s(vs), nil
}

func (int16Raw) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindInt16 {
		return nil, wrongKind(Int16Raw, KindInt16, a)
	}
	return appendInt16s(make([]byte, 0, 2*len(a.Int16s())), a.Int16s()), nil
}

type int32Raw struct{}

func (int32Raw) decode(E *Encoded) (*Array, error) {
	vs, err := bodyInts(E)
	if err != nil {
		return nil, err
	}
	return NewInts(vs), nil
}

func (int32Raw) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindInt {
		return nil, wrongKind(Int32Raw, KindInt, a)
	}
	return appendInt32s(make([]byte, 0, 4*len(a.Ints())), a.Ints()), nil
}

type stringFixed struct{}

func (stringFixed) decode(E *Encoded) (*Array, error) {
	width := int(E.Param)
	if width <= 0 {
		return nil, &Error{kind: BadParameter, message: fmt.Sprintf("string cell width %d", width), strategy: StringFixed}
	}
	r := newReader(E.Body)
	n, err := r.ncells(width)
	if err != nil {
		return nil, err
	}
	ss, err := r.cells(n, width)
	if err != nil {
		return nil, err
	}
	return NewStrings(ss), nil
}

func (stringFixed) encode(a *Array, param int32) ([]byte, error) {
	if a.Kind() != KindString {
		return nil, wrongKind(StringFixed, KindString, a)
	}
	width := int(param)
	if width <= 0 {
		return nil, &Error{kind: BadParameter, message: fmt.Sprintf("string cell width %d", width), strategy: StringFixed}
	}
	var err error
	b := make([]byte, 0, width*a.Len())
	for _, s := range a.Strings() {
		if b, err = appendCell(b, s, width); err != nil {
			return nil, err
		}
	}
	return b, nil
}

type charRunLength struct{}

func (charRunLength) decode(E *Encoded) (*Array, error) {
	pairs, err := bodyInts(E)
	if err != nil {
		return nil, err
	}
	vs, err := DecodeRunLength(pairs)
	if err != nil {
		return nil, err
	}
	chars := make([]byte, len(vs))
	for i, v := range vs {
		if v < 0 || v > 255 {
			return nil, &Error{kind: CorruptField, message: fmt.Sprintf("%d is not a character", v), strategy: CharRunLength}
		}
		chars[i] = byte(v)
	}
	return NewChars(chars), nil
}

func (charRunLength) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindChar {
		return nil, wrongKind(CharRunLength, KindChar, a)
	}
	vs := make([]int32, len(a.Chars()))
	for i, c := range a.Chars() {
		vs[i] = int32(c)
	}
	return intsBody(EncodeRunLength(vs)), nil
}

type intRunLength struct{}

func (intRunLength) decode(E *Encoded) (*Array, error) {
	pairs, err := bodyInts(E)
	if err != nil {
		return nil, err
	}
	vs, err := DecodeRunLength(pairs)
	if err != nil {
		return nil, err
	}
	return NewInts(vs), nil
}

func (intRunLength) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindInt {
		return nil, wrongKind(IntRunLength, KindInt, a)
	}
	return intsBody(EncodeRunLength(a.Ints())), nil
}

type intDeltaRunLength struct{}

func (intDeltaRunLength) decode(E *Encoded) (*Array, error) {
	pairs, err := bodyInts(E)
	if err != nil {
		return nil, err
	}
	deltas, err := DecodeRunLength(pairs)
	if err != nil {
		return nil, err
	}
	return NewInts(DecodeDelta(deltas)), nil
}

func (intDeltaRunLength) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindInt {
		return nil, wrongKind(IntDeltaRunLength, KindInt, a)
	}
	return intsBody(EncodeRunLength(EncodeDelta(a.Ints()))), nil
}

type floatRunLength struct{}

func (floatRunLength) decode(E *Encoded) (*Array, error) {
	pairs, err := bodyInts(E)
	if err != nil {
		return nil, err
	}
	vs, err := DecodeRunLength(pairs)
	if err != nil {
		return nil, err
	}
	fs, err := DecodeScaled(vs, E.Param)
	if err != nil {
		return nil, err
	}
	return NewFloats(fs), nil
}

func (floatRunLength) encode(a *Array, param int32) ([]byte, error) {
	if a.Kind() != KindFloat {
		return nil, wrongKind(FloatRunLength, KindFloat, a)
	}
	vs, err := EncodeScaled(a.Floats(), param)
	if err != nil {
		return nil, err
	}
	return intsBody(EncodeRunLength(vs)), nil
}

type floatDeltaRecursive struct{}

func (floatDeltaRecursive) decode(E *Encoded) (*Array, error) {
	cells, err := bodyInt16s(E)
	if err != nil {
		return nil, err
	}
	deltas := DecodeRecursive16(cells)
	fs, err := DecodeScaled(DecodeDelta(deltas), E.Param)
	if err != nil {
		return nil, err
	}
	return NewFloats(fs), nil
}

func (floatDeltaRecursive) encode(a *Array, param int32) ([]byte, error) {
	if a.Kind() != KindFloat {
		return nil, wrongKind(FloatDeltaRecursive, KindFloat, a)
	}
	vs, err := EncodeScaled(a.Floats(), param)
	if err != nil {
		return nil, err
	}
	cells := EncodeRecursive16(EncodeDelta(vs))
	return appendInt16s(make([]byte, 0, 2*len(cells)), cells), nil
}

type floatScaled struct{}

func (floatScaled) decode(E *Encoded) (*Array, error) {
	cells, err := bodyInt16s(E)
	if err != nil {
		return nil, err
	}
	vs := make([]int32, len(cells))
	for i, c := range cells {
		vs[i] = int32(c)
	}
	fs, err := DecodeScaled(vs, E.Param)
	if err != nil {
		return nil, err
	}
	return NewFloats(fs), nil
}

func (floatScaled) encode(a *Array, param int32) ([]byte, error) {
	if a.Kind() != KindFloat {
		return nil, wrongKind(FloatScaled, KindFloat, a)
	}
	vs, err := EncodeScaled(a.Floats(), param)
	if err != nil {
		return nil, err
	}
	cells := make([]int16, len(vs))
	for i, v := range vs {
		if v > math.MaxInt16 || v < math.MinInt16 {
			return nil, &Error{kind: EncodingOverflow, message: fmt.Sprintf("scaled value %d does not fit a 16-bit integer", v), strategy: FloatScaled}
		}
		cells[i] = int16(v)
	}
	return appendInt16s(make([]byte, 0, 2*len(cells)), cells), nil
}

type floatRecursive16 struct{}

func (floatRecursive16) decode(E *Encoded) (*Array, error) {
	cells, err := bodyInt16s(E)
	if err != nil {
		return nil, err
	}
	fs, err := DecodeScaled(DecodeRecursive16(cells), E.Param)
	if err != nil {
		return nil, err
	}
	return NewFloats(fs), nil
}

func (floatRecursive16) encode(a *Array, param int32) ([]byte, error) {
	if a.Kind() != KindFloat {
		return nil, wrongKind(FloatRecursive16, KindFloat, a)
	}
	vs, err := EncodeScaled(a.Floats(), param)
	if err != nil {
		return nil, err
	}
	cells := EncodeRecursive16(vs)
	return appendInt16s(make([]byte, 0, 2*len(cells)), cells), nil
}

type floatRecursive8 struct{}

func (floatRecursive8) decode(E *Encoded) (*Array, error) {
	r := newReader(E.Body)
	cells, err := r.int8s(r.remaining())
	if err != nil {
		return nil, err
	}
	fs, err := DecodeScaled(DecodeRecursive8(cells), E.Param)
	if err != nil {
		return nil, err
	}
	return NewFloats(fs), nil
}

func (floatRecursive8) encode(a *Array, param int32) ([]byte, error) {
	if a.Kind() != KindFloat {
		return nil, wrongKind(FloatRecursive8, KindFloat, a)
	}
	vs, err := EncodeScaled(a.Floats(), param)
	if err != nil {
		return nil, err
	}
	cells := EncodeRecursive8(vs)
	return appendInt8s(make([]byte, 0, len(cells)), cells), nil
}

type intRecursive16 struct{}

func (intRecursive16) decode(E *Encoded) (*Array, error) {
	cells, err := bodyInt16s(E)
	if err != nil {
		return nil, err
	}
	return NewInts(DecodeRecursive16(cells)), nil
}

func (intRecursive16) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindInt {
		return nil, wrongKind(IntRecursive16, KindInt, a)
	}
	cells := EncodeRecursive16(a.Ints())
	return appendInt16s(make([]byte, 0, 2*len(cells)), cells), nil
}

type intRecursive8 struct{}

func (intRecursive8) decode(E *Encoded) (*Array, error) {
	r := newReader(E.Body)
	cells, err := r.int8s(r.remaining())
	if err != nil {
		return nil, err
	}
	return NewInts(DecodeRecursive8(cells)), nil
}

func (intRecursive8) encode(a *Array, _ int32) ([]byte, error) {
	if a.Kind() != KindInt {
		return nil, wrongKind(IntRecursive8, KindInt, a)
	}
	cells := EncodeRecursive8(a.Ints())
	return appendInt8s(make([]byte, 0, len(cells)), cells), nil
}

//bodyInts interprets the whole payload as big-endian int32 cells.
func bodyInts(E *Encoded) ([]int32, error) {
	r := newReader(E.Body)
	n, err := r.ncells(4)
	if err != nil {
		return nil, err
	}
	return r.int32s(n)
}

//bodyInt16s interprets the whole payload as big-endian int16 cells.
func bodyInt16s(E *Encoded) ([]int16, error) {
	r := newReader(E.Body)
	n, err := r.ncells(2)
	if err != nil {
		return nil, err
	}
	return r.int16s(n)
}

//intsBody is the inverse of bodyInts.
func intsBody(vs []int32) []byte {
	return appendInt32s(make([]byte, 0, 4*len(vs)), vs)
}
