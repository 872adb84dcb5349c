package codec

import (
	"bytes"
	"fmt"
	"testing"
)

func field(id, count, param int32, body []byte) []byte {
	E := &Encoded{ID: id, Count: count, Param: param, Body: body}
	return E.Marshal()
}

func TestHeader(Te *testing.T) {
	fmt.Println("Header test!")
	f := field(10, 3, 1000, []byte{1, 2, 3, 4, 5, 6})
	E, err := Parse(f)
	if err != nil {
		Te.Fatal(err)
	}
	if E.ID != 10 || E.Count != 3 || E.Param != 1000 {
		Te.Error("header parsed wrong:", E.ID, E.Count, E.Param)
	}
	if !bytes.Equal(E.Body, []byte{1, 2, 3, 4, 5, 6}) {
		Te.Error("payload parsed wrong:", E.Body)
	}
	if !bytes.Equal(E.Marshal(), f) {
		Te.Error("header did not round trip")
	}
	if _, err = Parse([]byte{0, 0, 0, 1, 0, 0}); !Is(err, TruncatedBuffer) {
		Te.Error("a short header should be truncated input, got", err)
	}
}

//The three vectors below exercise the composite pipelines over real wire
//bytes, big-endian header semantics included.

func TestDeltaRunLengthField(Te *testing.T) {
	fmt.Println("Delta plus run-length field test!")
	body := []byte{
		0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 0, 1, 0, 0, 0, 3,
		0, 0, 0, 2, 0, 0, 0, 1,
		0, 0, 0, 1, 0, 0, 0, 1,
		0, 0, 0, 1, 0, 0, 0, 5,
		255, 255, 255, 245, 0, 0, 0, 1,
	}
	a, err := Decode(field(IntDeltaRunLength, 12, 0, body))
	if err != nil {
		Te.Fatal(err)
	}
	want := []int32{0, 1, 2, 3, 5, 5, 6, 7, 8, 9, 10, -1}
	if !eqInts(a.Ints(), want) {
		Te.Error("wrong values:", a.Ints())
	}
}

func TestScaledRunLengthField(Te *testing.T) {
	fmt.Println("Scaled run-length field test!")
	body := []byte{0, 0, 0, 100, 0, 0, 0, 4, 0, 0, 0, 50, 0, 0, 0, 2}
	a, err := Decode(field(FloatRunLength, 6, 100, body))
	if err != nil {
		Te.Fatal(err)
	}
	if !eqFloats(a.Floats(), []float64{1, 1, 1, 1, 0.5, 0.5}, 0) {
		Te.Error("wrong values:", a.Floats())
	}
}

func TestCoordinateField(Te *testing.T) {
	fmt.Println("Coordinate pipeline field test!")
	body := []byte{71, 24, 0, 0, 0, 2, 255, 255, 0, 100, 255, 253, 0, 5}
	a, err := Decode(field(FloatDeltaRecursive, 7, 100, body))
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{182.00, 182.00, 182.02, 182.01, 183.01, 182.98, 183.03}
	if !eqFloats(a.Floats(), want, 1e-9) {
		Te.Error("wrong values:", a.Floats())
	}
	//and back: the values are exact multiples of 1/100, so the bytes
	//must reproduce
	f, err := Encode(a, FloatDeltaRecursive, 100)
	if err != nil {
		Te.Fatal(err)
	}
	if !bytes.Equal(f, field(FloatDeltaRecursive, 7, 100, body)) {
		Te.Error("coordinate field did not round trip to the same bytes")
	}
}

func TestRoundTripAllStrategies(Te *testing.T) {
	fmt.Println("Round trip test for every strategy!")
	type trip struct {
		id    int32
		param int32
		a     *Array
		tol   float64
	}
	trips := []trip{
		{FloatRaw, 0, NewFloats([]float64{1.5, -2.25, 0, 1024}), 0},
		{Int8Raw, 0, NewInt8s([]int8{1, -1, 127, -128, 0}), 0},
		{Int16Raw, 0, NewInt16s([]int16{300, -300, 32767, -32768}), 0},
		{Int32Raw, 0, NewInts([]int32{70000, -70000, 1, 0}), 0},
		{StringFixed, 4, NewStrings([]string{"A", "DA", "HOH", "ABCD", ""}), 0},
		{CharRunLength, 0, NewChars([]byte{'A', 'A', 'A', 0, 0, 'B'}), 0},
		{IntRunLength, 0, NewInts([]int32{9, 9, 9, 9, -4, -4, 1}), 0},
		{IntDeltaRunLength, 0, NewInts([]int32{1, 2, 3, 4, 10, 10, 10, 9}), 0},
		{FloatRunLength, 100, NewFloats([]float64{1, 1, 1, 0.5, 0.5, -0.25}), 0.005},
		{FloatDeltaRecursive, 1000, NewFloats([]float64{12.345, 12.346, 12.340, 112.988, -45.001}), 0.0005},
		{FloatScaled, 100, NewFloats([]float64{1.25, -3.5, 0}), 0.005},
		{FloatRecursive16, 1000, NewFloats([]float64{40.5, -40.5, 0.001}), 0.0005},
		{FloatRecursive8, 10, NewFloats([]float64{12.3, -15.4, 0.2}), 0.05},
		{IntRecursive16, 0, NewInts([]int32{40000, -40000, 32767, -32768, 5}), 0},
		{IntRecursive8, 0, NewInts([]int32{200, -200, 127, -128, 0}), 0},
	}
	for _, tr := range trips {
		f, err := Encode(tr.a, tr.id, tr.param)
		if err != nil {
			Te.Error("strategy", tr.id, err)
			continue
		}
		back, err := Decode(f)
		if err != nil {
			Te.Error("strategy", tr.id, err)
			continue
		}
		if back.Kind() != tr.a.Kind() || back.Len() != tr.a.Len() {
			Te.Error("strategy", tr.id, "changed shape:", back.Kind(), back.Len())
			continue
		}
		ok := true
		switch tr.a.Kind() {
		case KindFloat:
			ok = eqFloats(back.Floats(), tr.a.Floats(), tr.tol)
		case KindInt:
			ok = eqInts(back.Ints(), tr.a.Ints())
		case KindInt16:
			ok = eqInt16s(back.Int16s(), tr.a.Int16s())
		case KindInt8:
			for i, v := range back.Int8s() {
				if v != tr.a.Int8s()[i] {
					ok = false
				}
			}
		case KindChar:
			ok = bytes.Equal(back.Chars(), tr.a.Chars())
		case KindString:
			for i, v := range back.Strings() {
				if v != tr.a.Strings()[i] {
					ok = false
				}
			}
		}
		if !ok {
			Te.Error("strategy", tr.id, "did not round trip")
		}
	}
}

func TestEmptyFields(Te *testing.T) {
	fmt.Println("Empty field test!")
	for _, id := range []int32{FloatRaw, Int8Raw, Int16Raw, Int32Raw, CharRunLength, IntRunLength, IntDeltaRunLength, IntRecursive16, IntRecursive8} {
		a, err := Decode(field(id, 0, 0, nil))
		if err != nil {
			Te.Error("strategy", id, err)
			continue
		}
		if a.Len() != 0 {
			Te.Error("strategy", id, "decoded something out of nothing")
		}
	}
}

func TestDecodeErrors(Te *testing.T) {
	fmt.Println("Decode error test!")
	var err error
	if _, err = Decode(field(99, 0, 0, nil)); !Is(err, UnsupportedStrategy) {
		Te.Error("strategy 99 should be unsupported, got", err)
	}
	if Supported(99) || !Supported(FloatDeltaRecursive) {
		Te.Error("Supported disagrees with the registry")
	}
	//declared count disagrees with the payload
	if _, err = Decode(field(Int32Raw, 3, 0, []byte{0, 0, 0, 1})); !Is(err, LengthMismatch) {
		Te.Error("expected a length mismatch, got", err)
	}
	//a partial trailing cell is truncated input
	if _, err = Decode(field(Int32Raw, 1, 0, []byte{0, 0, 1})); !Is(err, TruncatedBuffer) {
		Te.Error("expected truncated input, got", err)
	}
	if _, err = Decode(field(Int16Raw, 2, 0, []byte{0, 0, 1})); !Is(err, TruncatedBuffer) {
		Te.Error("expected truncated input, got", err)
	}
	//run-length with a value that is not a character
	bad := appendInt32s(nil, []int32{300, 2})
	if _, err = Decode(field(CharRunLength, 2, 0, bad)); !Is(err, CorruptField) {
		Te.Error("expected a corrupt field, got", err)
	}
	//zero divisor
	if _, err = Decode(field(FloatScaled, 1, 0, []byte{0, 1})); !Is(err, BadParameter) {
		Te.Error("expected a bad parameter, got", err)
	}
	//zero string width
	if _, err = Decode(field(StringFixed, 0, 0, nil)); !Is(err, BadParameter) {
		Te.Error("expected a bad parameter, got", err)
	}
	if _, err = Decode(field(Int32Raw, -1, 0, nil)); !Is(err, CorruptField) {
		Te.Error("a negative count should be corrupt, got", err)
	}
}

func TestEncodeErrors(Te *testing.T) {
	fmt.Println("Encode error test!")
	var err error
	if _, err = Encode(NewFloats([]float64{1}), Int32Raw, 0); !Is(err, KindMismatch) {
		Te.Error("expected a kind mismatch, got", err)
	}
	if _, err = Encode(NewStrings([]string{"TOOLONG"}), StringFixed, 4); !Is(err, EncodingOverflow) {
		Te.Error("an oversized string should overflow, got", err)
	}
	if _, err = Encode(NewFloats([]float64{400.0}), FloatScaled, 100); !Is(err, EncodingOverflow) {
		Te.Error("a scaled value beyond int16 should overflow, got", err)
	}
	if _, err = Encode(NewInts([]int32{1}), 0, 0); !Is(err, UnsupportedStrategy) {
		Te.Error("strategy 0 should be unsupported, got", err)
	}
}
