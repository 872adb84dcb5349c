package codec

import (
	"fmt"
	"math"
	"testing"
)

func eqInts(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

func eqInt16s(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

func eqFloats(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if math.Abs(v-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestRunLength(Te *testing.T) {
	fmt.Println("Run-length test!")
	pairs := EncodeRunLength([]int32{5, 5, 5, 2, 2})
	if !eqInts(pairs, []int32{5, 3, 2, 2}) {
		Te.Error("wrong run-length pairs", pairs)
	}
	back, err := DecodeRunLength(pairs)
	if err != nil {
		Te.Error(err)
	}
	if !eqInts(back, []int32{5, 5, 5, 2, 2}) {
		Te.Error("run-length did not round trip", back)
	}
	empty, err := DecodeRunLength([]int32{})
	if err != nil {
		Te.Error(err)
	}
	if len(empty) != 0 {
		Te.Error("an empty pair list should expand to an empty sequence")
	}
	if len(EncodeRunLength(nil)) != 0 {
		Te.Error("encoding an empty sequence should give no pairs")
	}
	if _, err = DecodeRunLength([]int32{1, 2, 3}); !Is(err, CorruptField) {
		Te.Error("an odd pair list should be corrupt, got", err)
	}
	if _, err = DecodeRunLength([]int32{1, -2}); !Is(err, CorruptField) {
		Te.Error("a negative run count should be corrupt, got", err)
	}
}

func TestDelta(Te *testing.T) {
	fmt.Println("Delta test!")
	deltas := EncodeDelta([]int32{10, 12, 11})
	if !eqInts(deltas, []int32{10, 2, -1}) {
		Te.Error("wrong deltas", deltas)
	}
	back := DecodeDelta(deltas)
	if !eqInts(back, []int32{10, 12, 11}) {
		Te.Error("delta did not round trip", back)
	}
	long := []int32{-1000, 4, 4, 4, 0, 100000, 99999, -50000}
	if !eqInts(DecodeDelta(EncodeDelta(long)), long) {
		Te.Error("delta round trip failed on", long)
	}
}

func TestRecursive16(Te *testing.T) {
	fmt.Println("Recursive indexing test, 16 bit!")
	cells := EncodeRecursive16([]int32{40000})
	if !eqInt16s(cells, []int16{32767, 7233}) {
		Te.Error("40000 encoded wrong:", cells)
	}
	cells = EncodeRecursive16([]int32{-40000})
	if !eqInt16s(cells, []int16{-32767, -7233}) {
		Te.Error("-40000 encoded wrong:", cells)
	}
	//values equal to a marker need an explicit terminator
	cells = EncodeRecursive16([]int32{32767})
	if !eqInt16s(cells, []int16{32767, 0}) {
		Te.Error("32767 encoded wrong:", cells)
	}
	cells = EncodeRecursive16([]int32{-32768})
	if !eqInt16s(cells, []int16{-32767, -1}) {
		Te.Error("-32768 encoded wrong:", cells)
	}
	vals := []int32{0, 40000, -40000, 32767, -32767, -32768, 32766, 1, 100000, -100000}
	back := DecodeRecursive16(EncodeRecursive16(vals))
	if !eqInts(back, vals) {
		Te.Error("recursive indexing did not round trip:", back)
	}
	//a bare -32768 cell keeps the chain open on decode
	if got := DecodeRecursive16([]int16{-32768, -1}); !eqInts(got, []int32{-32769}) {
		Te.Error("continuation after -32768 decoded wrong:", got)
	}
}

func TestRecursive8(Te *testing.T) {
	fmt.Println("Recursive indexing test, 8 bit!")
	cells := EncodeRecursive8([]int32{200})
	if len(cells) != 2 || cells[0] != 127 || cells[1] != 73 {
		Te.Error("200 encoded wrong:", cells)
	}
	vals := []int32{0, 127, -127, -128, 300, -300, 126, 1000}
	back := DecodeRecursive8(EncodeRecursive8(vals))
	if !eqInts(back, vals) {
		Te.Error("8-bit recursive indexing did not round trip:", back)
	}
}

func TestScaled(Te *testing.T) {
	fmt.Println("Fixed-point scaling test!")
	fs, err := DecodeScaled([]int32{100, 100, 100, 100, 50, 50}, 100)
	if err != nil {
		Te.Error(err)
	}
	if !eqFloats(fs, []float64{1, 1, 1, 1, 0.5, 0.5}, 0) {
		Te.Error("wrong scaled values", fs)
	}
	//rounding is half away from zero, both signs
	vs, err := EncodeScaled([]float64{0.025, -0.025}, 100)
	if err != nil {
		Te.Error(err)
	}
	if !eqInts(vs, []int32{3, -3}) {
		Te.Error("rounding is not half away from zero:", vs)
	}
	//the loss is bounded by half the resolution
	orig := []float64{1.2342, -3.1416, 0.0004, 99.9999}
	vs, err = EncodeScaled(orig, 1000)
	if err != nil {
		Te.Error(err)
	}
	back, err := DecodeScaled(vs, 1000)
	if err != nil {
		Te.Error(err)
	}
	if !eqFloats(back, orig, 0.0005) {
		Te.Error("loss exceeds half the resolution:", back)
	}
	//exact multiples of the resolution round trip exactly
	exact := []float64{1.25, -0.75, 3}
	vs, _ = EncodeScaled(exact, 100)
	back, _ = DecodeScaled(vs, 100)
	if !eqFloats(back, exact, 0) {
		Te.Error("exact multiples did not round trip exactly:", back)
	}
	if _, err = EncodeScaled([]float64{3.0e6}, 1000); !Is(err, EncodingOverflow) {
		Te.Error("expected an overflow, got", err)
	}
	if _, err = EncodeScaled([]float64{math.NaN()}, 10); !Is(err, EncodingOverflow) {
		Te.Error("a NaN should not be encodable, got", err)
	}
	if _, err = DecodeScaled([]int32{1}, 0); !Is(err, BadParameter) {
		Te.Error("a zero divisor should be rejected, got", err)
	}
	if _, err = EncodeScaled([]float64{1}, -5); !Is(err, BadParameter) {
		Te.Error("a negative divisor should be rejected, got", err)
	}
}
