package codec

import (
	"fmt"
	"math"
)

//The composable primitives every strategy pipeline is built from. All of
//them are pure functions: they allocate their result and never touch
//their input.

//DecodeRunLength expands an alternating (value, repetition count) list
//into the full sequence. An empty list expands to an empty sequence.
func DecodeRunLength(pairs []int32) ([]int32, error) {
	if len(pairs)%2 != 0 {
		return nil, &Error{kind: CorruptField, message: fmt.Sprintf("run-length list has %d values, not an even number", len(pairs))}
	}
	var total int64
	for i := 1; i < len(pairs); i += 2 {
		if pairs[i] < 0 {
			return nil, &Error{kind: CorruptField, message: fmt.Sprintf("negative run count %d", pairs[i])}
		}
		total += int64(pairs[i])
	}
	if total > math.MaxInt32 {
		return nil, &Error{kind: CorruptField, message: fmt.Sprintf("runs add up to %d elements", total)}
	}
	out := make([]int32, 0, total)
	for i := 0; i < len(pairs); i += 2 {
		for j := int32(0); j < pairs[i+1]; j++ {
			out = append(out, pairs[i])
		}
	}
	return out, nil
}

//EncodeRunLength collapses maximal runs of equal adjacent values into
//(value, count) pairs, greedily from the left.
func EncodeRunLength(in []int32) []int32 {
	out := make([]int32, 0, 2*len(in))
	for i := 0; i < len(in); {
		j := i + 1
		for j < len(in) && in[j] == in[i] {
			j++
		}
		out = append(out, in[i], int32(j-i))
		i = j
	}
	return out
}

//DecodeDelta recovers a sequence from its successive differences: the
//first element is taken as is, every later one is the running sum.
func DecodeDelta(in []int32) []int32 {
	out := make([]int32, len(in))
	var sum int32
	for i, v := range in {
		sum += v
		out[i] = sum
	}
	return out
}

//EncodeDelta replaces a sequence by its successive differences.
func EncodeDelta(in []int32) []int32 {
	out := make([]int32, len(in))
	var prev int32
	for i, v := range in {
		out[i] = v - prev
		prev = v
	}
	return out
}

//Recursive indexing stores values that do not fit a small integer as a
//chain of boundary markers summing to the true value. On the 16-bit side
//any cell of magnitude 32767 or more keeps a chain open and contributes
//its full signed value; the first cell of magnitude below 32767 closes
//the chain. The encoder only ever emits ±32767 as markers, so a value
//equal to a marker gets an explicit terminator (32767 becomes [32767, 0])
//and -32768 becomes [-32767, -1]. A chain still open when the input ends
//yields no element; the count check on the field catches that.

//DecodeRecursive16 rebuilds int32 values from 16-bit chains.
func DecodeRecursive16(in []int16) []int32 {
	out := make([]int32, 0, len(in))
	var sum int32
	for _, v := range in {
		sum += int32(v)
		if v > -math.MaxInt16 && v < math.MaxInt16 {
			out = append(out, sum)
			sum = 0
		}
	}
	return out
}

//EncodeRecursive16 splits each value into 16-bit chains.
func EncodeRecursive16(in []int32) []int16 {
	out := make([]int16, 0, len(in))
	for _, v := range in {
		for v >= math.MaxInt16 {
			out = append(out, math.MaxInt16)
			v -= math.MaxInt16
		}
		for v <= -math.MaxInt16 {
			out = append(out, -math.MaxInt16)
			v += math.MaxInt16
		}
		out = append(out, int16(v))
	}
	return out
}

//DecodeRecursive8 rebuilds int32 values from 8-bit chains, with ±127 as
//the marker magnitude.
func DecodeRecursive8(in []int8) []int32 {
	out := make([]int32, 0, len(in))
	var sum int32
	for _, v := range in {
		sum += int32(v)
		if v > -math.MaxInt8 && v < math.MaxInt8 {
			out = append(out, sum)
			sum = 0
		}
	}
	return out
}

//EncodeRecursive8 splits each value into 8-bit chains.
func EncodeRecursive8(in []int32) []int8 {
	out := make([]int8, 0, len(in))
	for _, v := range in {
		for v >= math.MaxInt8 {
			out = append(out, math.MaxInt8)
			v -= math.MaxInt8
		}
		for v <= -math.MaxInt8 {
			out = append(out, -math.MaxInt8)
			v += math.MaxInt8
		}
		out = append(out, int8(v))
	}
	return out
}

//DecodeScaled recovers floating point values from fixed-point integers:
//value = raw/divisor. The divisor travels with the field and must be
//positive.
func DecodeScaled(in []int32, divisor int32) ([]float64, error) {
	if divisor <= 0 {
		return nil, &Error{kind: BadParameter, message: fmt.Sprintf("divisor %d", divisor)}
	}
	d := float64(divisor)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v) / d
	}
	return out, nil
}

//EncodeScaled converts floating point values to fixed-point integers by
//multiplying with the divisor and rounding half away from zero. The
//conversion is lossy within 0.5/divisor per element; values the scaling
//pushes outside the int32 range, and values that are not finite to begin
//with, can not be stored.
func EncodeScaled(in []float64, divisor int32) ([]int32, error) {
	if divisor <= 0 {
		return nil, &Error{kind: BadParameter, message: fmt.Sprintf("divisor %d", divisor)}
	}
	d := float64(divisor)
	out := make([]int32, len(in))
	for i, v := range in {
		s := math.Round(v * d)
		if math.IsNaN(s) || s > math.MaxInt32 || s < math.MinInt32 {
			return nil, &Error{kind: EncodingOverflow, message: fmt.Sprintf("%v scaled by %d does not fit a 32-bit integer", v, divisor)}
		}
		out[i] = int32(s)
	}
	return out, nil
}
