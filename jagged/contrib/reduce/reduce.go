// Package reduce implements the elementwise reducer family: one
// kernel per (reducer × input element type), each grouping a flat value
// sequence by a same-length parents vector into an output of known length.
//
// Every kernel here is pure and allocation-free in its inner loop (the
// output buffer and any per-group scratch are allocated once per
// ReduceTyped call, before the loop); kernels never fail on well-formed input.
// Type dispatch follows the teacher's own idiom in
// hwy/contrib/sort/sort.go: a generic entry point type-switches on the
// concrete element type once, then calls a monomorphic loop.
package reduce

import (
	"fmt"
	"math"

	"github.com/jagged-go/jagged"
)

// presence reports, for each of the outlength groups, whether at least one
// element of parents targets it. Used only when the caller requests
// mask=true.
func presence(parents []int64, outlength int64) []bool {
	present := make([]bool, outlength)
	for _, p := range parents {
		present[p] = true
	}
	return present
}

func presenceIfMasked(mask bool, parents []int64, outlength int64) []bool {
	if !mask {
		return nil
	}
	return presence(parents, outlength)
}

// --- Count -------------------------------------------------------------

// Count implements the count reducer: out[j] = |{k : parents[k] = j}|.
// It does not need to inspect element values, only the length of in.
type Count struct{}

func (Count) Name() string { return "count" }

func (Count) Positional() bool { return false }

func (Count) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	n, err := lengthOf(in)
	if err != nil {
		return nil, 0, nil, err
	}
	if n != len(parents) {
		return nil, 0, nil, fmt.Errorf("reduce.Count: parents length %d does not match input length %d", len(parents), n)
	}
	out := make([]int64, outlength)
	for _, p := range parents {
		out[p]++
	}
	return out, jagged.Int64, presenceIfMasked(mask, parents, outlength), nil
}

// --- CountNonzero --------------------------------------------------------

// CountNonzero implements the count-nonzero reducer: out[j] counts
// elements of group j whose value is nonzero (bool: true).
type CountNonzero struct{}

func (CountNonzero) Name() string { return "count_nonzero" }

func (CountNonzero) Positional() bool { return false }

func (CountNonzero) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	out := make([]int64, outlength)
	switch v := in.(type) {
	case []bool:
		countNonzeroLoop(v, parents, out, func(x bool) bool { return x })
	case []int8:
		countNonzeroLoop(v, parents, out, func(x int8) bool { return x != 0 })
	case []uint8:
		countNonzeroLoop(v, parents, out, func(x uint8) bool { return x != 0 })
	case []int16:
		countNonzeroLoop(v, parents, out, func(x int16) bool { return x != 0 })
	case []uint16:
		countNonzeroLoop(v, parents, out, func(x uint16) bool { return x != 0 })
	case []int32:
		countNonzeroLoop(v, parents, out, func(x int32) bool { return x != 0 })
	case []uint32:
		countNonzeroLoop(v, parents, out, func(x uint32) bool { return x != 0 })
	case []int64:
		countNonzeroLoop(v, parents, out, func(x int64) bool { return x != 0 })
	case []uint64:
		countNonzeroLoop(v, parents, out, func(x uint64) bool { return x != 0 })
	case []float32:
		countNonzeroLoop(v, parents, out, func(x float32) bool { return x != 0 })
	case []float64:
		countNonzeroLoop(v, parents, out, func(x float64) bool { return x != 0 })
	default:
		return nil, 0, nil, fmt.Errorf("reduce.CountNonzero: unsupported element type %T", in)
	}
	return out, jagged.Int64, presenceIfMasked(mask, parents, outlength), nil
}

func countNonzeroLoop[T any](in []T, parents []int64, out []int64, nonzero func(T) bool) {
	for k, v := range in {
		if nonzero(v) {
			out[parents[k]]++
		}
	}
}

func lengthOf(in any) (int, error) {
	switch v := in.(type) {
	case []bool:
		return len(v), nil
	case []int8:
		return len(v), nil
	case []uint8:
		return len(v), nil
	case []int16:
		return len(v), nil
	case []uint16:
		return len(v), nil
	case []int32:
		return len(v), nil
	case []uint32:
		return len(v), nil
	case []int64:
		return len(v), nil
	case []uint64:
		return len(v), nil
	case []float32:
		return len(v), nil
	case []float64:
		return len(v), nil
	default:
		return 0, fmt.Errorf("reduce: unsupported element type %T", in)
	}
}

// --- Sum -----------------------------------------------------------------

// Sum implements the sum reducer. Integer accumulators widen to 64 bits,
// preserving signedness; floats keep their input precision; bool sums as
// an OR-reduction. Integer overflow wraps rather than being reported.
type Sum struct{}

func (Sum) Name() string { return "sum" }

func (Sum) Positional() bool { return false }

func (Sum) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	var out any
	var outType jagged.ElementType
	switch v := in.(type) {
	case []bool:
		o := make([]bool, outlength)
		for k, x := range v {
			o[parents[k]] = o[parents[k]] || x
		}
		out, outType = o, jagged.Bool
	case []int8:
		out, outType = sumSigned(v, parents, outlength), jagged.Int64
	case []int16:
		out, outType = sumSigned(v, parents, outlength), jagged.Int64
	case []int32:
		out, outType = sumSigned(v, parents, outlength), jagged.Int64
	case []int64:
		out, outType = sumSigned(v, parents, outlength), jagged.Int64
	case []uint8:
		out, outType = sumUnsigned(v, parents, outlength), jagged.Uint64
	case []uint16:
		out, outType = sumUnsigned(v, parents, outlength), jagged.Uint64
	case []uint32:
		out, outType = sumUnsigned(v, parents, outlength), jagged.Uint64
	case []uint64:
		out, outType = sumUnsigned(v, parents, outlength), jagged.Uint64
	case []float32:
		o := make([]float32, outlength)
		for k, x := range v {
			o[parents[k]] += x
		}
		out, outType = o, jagged.Float32
	case []float64:
		o := make([]float64, outlength)
		for k, x := range v {
			o[parents[k]] += x
		}
		out, outType = o, jagged.Float64
	default:
		return nil, 0, nil, fmt.Errorf("reduce.Sum: unsupported element type %T", in)
	}
	return out, outType, presenceIfMasked(mask, parents, outlength), nil
}

func sumSigned[T jagged.SignedInts](in []T, parents []int64, outlength int64) []int64 {
	out := make([]int64, outlength)
	for k, v := range in {
		out[parents[k]] += int64(v)
	}
	return out
}

func sumUnsigned[T jagged.UnsignedInts](in []T, parents []int64, outlength int64) []uint64 {
	out := make([]uint64, outlength)
	for k, v := range in {
		out[parents[k]] += uint64(v)
	}
	return out
}

// --- Prod ------------------------------------------------------------------

// Prod implements the product reducer: analogous widening to Sum, bool
// prods as an AND-reduction.
type Prod struct{}

func (Prod) Name() string { return "prod" }

func (Prod) Positional() bool { return false }

func (Prod) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	var out any
	var outType jagged.ElementType
	switch v := in.(type) {
	case []bool:
		o := make([]bool, outlength)
		for j := range o {
			o[j] = true
		}
		for k, x := range v {
			o[parents[k]] = o[parents[k]] && x
		}
		out, outType = o, jagged.Bool
	case []int8:
		out, outType = prodSigned(v, parents, outlength), jagged.Int64
	case []int16:
		out, outType = prodSigned(v, parents, outlength), jagged.Int64
	case []int32:
		out, outType = prodSigned(v, parents, outlength), jagged.Int64
	case []int64:
		out, outType = prodSigned(v, parents, outlength), jagged.Int64
	case []uint8:
		out, outType = prodUnsigned(v, parents, outlength), jagged.Uint64
	case []uint16:
		out, outType = prodUnsigned(v, parents, outlength), jagged.Uint64
	case []uint32:
		out, outType = prodUnsigned(v, parents, outlength), jagged.Uint64
	case []uint64:
		out, outType = prodUnsigned(v, parents, outlength), jagged.Uint64
	case []float32:
		o := make([]float32, outlength)
		for j := range o {
			o[j] = 1
		}
		for k, x := range v {
			o[parents[k]] *= x
		}
		out, outType = o, jagged.Float32
	case []float64:
		o := make([]float64, outlength)
		for j := range o {
			o[j] = 1
		}
		for k, x := range v {
			o[parents[k]] *= x
		}
		out, outType = o, jagged.Float64
	default:
		return nil, 0, nil, fmt.Errorf("reduce.Prod: unsupported element type %T", in)
	}
	return out, outType, presenceIfMasked(mask, parents, outlength), nil
}

func prodSigned[T jagged.SignedInts](in []T, parents []int64, outlength int64) []int64 {
	out := make([]int64, outlength)
	for j := range out {
		out[j] = 1
	}
	for k, v := range in {
		out[parents[k]] *= int64(v)
	}
	return out
}

func prodUnsigned[T jagged.UnsignedInts](in []T, parents []int64, outlength int64) []uint64 {
	out := make([]uint64, outlength)
	for j := range out {
		out[j] = 1
	}
	for k, v := range in {
		out[parents[k]] *= uint64(v)
	}
	return out
}

// --- Min / Max ---------------------------------------------------------

// Min implements the min reducer. Identity, if non-nil, must box the same
// concrete element type as the input and is used to initialize empty
// groups instead of the type's maximum value.
type Min struct{ Identity any }

func (m Min) Name() string { return "min" }

func (m Min) Positional() bool { return false }

func (m Min) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	return minMax(in, parents, outlength, mask, m.Identity, true)
}

// Max implements the max reducer, symmetric to Min.
type Max struct{ Identity any }

func (m Max) Name() string { return "max" }

func (m Max) Positional() bool { return false }

func (m Max) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	return minMax(in, parents, outlength, mask, m.Identity, false)
}

func minMax(in any, parents []int64, outlength int64, mask bool, identity any, wantMin bool) (any, jagged.ElementType, []bool, error) {
	var out any
	var outType jagged.ElementType
	switch v := in.(type) {
	case []bool:
		o := make([]bool, outlength)
		def := wantMin // min over bool is AND (identity true), max is OR (identity false)
		if identity != nil {
			def = identity.(bool)
		}
		for j := range o {
			o[j] = def
		}
		for k, x := range v {
			o[parents[k]] = (wantMin && o[parents[k]] && x) || (!wantMin && (o[parents[k]] || x))
		}
		out, outType = o, jagged.Bool
	case []int8:
		out, outType = minMaxInt(v, parents, outlength, identity, wantMin, math.MaxInt8, math.MinInt8), jagged.Int8
	case []int16:
		out, outType = minMaxInt(v, parents, outlength, identity, wantMin, math.MaxInt16, math.MinInt16), jagged.Int16
	case []int32:
		out, outType = minMaxInt(v, parents, outlength, identity, wantMin, math.MaxInt32, math.MinInt32), jagged.Int32
	case []int64:
		out, outType = minMaxInt(v, parents, outlength, identity, wantMin, math.MaxInt64, math.MinInt64), jagged.Int64
	case []uint8:
		out, outType = minMaxUint(v, parents, outlength, identity, wantMin, math.MaxUint8, 0), jagged.Uint8
	case []uint16:
		out, outType = minMaxUint(v, parents, outlength, identity, wantMin, math.MaxUint16, 0), jagged.Uint16
	case []uint32:
		out, outType = minMaxUint(v, parents, outlength, identity, wantMin, math.MaxUint32, 0), jagged.Uint32
	case []uint64:
		out, outType = minMaxUint(v, parents, outlength, identity, wantMin, math.MaxUint64, 0), jagged.Uint64
	case []float32:
		out, outType = minMaxFloat32(v, parents, outlength, identity, wantMin), jagged.Float32
	case []float64:
		out, outType = minMaxFloat64(v, parents, outlength, identity, wantMin), jagged.Float64
	default:
		return nil, 0, nil, fmt.Errorf("reduce.minMax: unsupported element type %T", in)
	}
	return out, outType, presenceIfMasked(mask, parents, outlength), nil
}

func minMaxInt[T jagged.SignedInts](in []T, parents []int64, outlength int64, identity any, wantMin bool, posInf, negInf int64) []T {
	out := make([]T, outlength)
	def := T(negInf)
	if wantMin {
		def = T(posInf)
	}
	if identity != nil {
		def = identity.(T)
	}
	for j := range out {
		out[j] = def
	}
	for k, v := range in {
		j := parents[k]
		if (wantMin && v < out[j]) || (!wantMin && v > out[j]) {
			out[j] = v
		}
	}
	return out
}

func minMaxUint[T jagged.UnsignedInts](in []T, parents []int64, outlength int64, identity any, wantMin bool, maxVal, minVal uint64) []T {
	out := make([]T, outlength)
	def := T(minVal)
	if wantMin {
		def = T(maxVal)
	}
	if identity != nil {
		def = identity.(T)
	}
	for j := range out {
		out[j] = def
	}
	for k, v := range in {
		j := parents[k]
		if (wantMin && v < out[j]) || (!wantMin && v > out[j]) {
			out[j] = v
		}
	}
	return out
}

// minMaxFloat32/64 are kept separate (rather than folded into a Floats
// generic) because NaN-never-wins comparisons need math.IsNaN, which has
// no generic float form in the standard library.

func minMaxFloat32(in []float32, parents []int64, outlength int64, identity any, wantMin bool) []float32 {
	out := make([]float32, outlength)
	def := float32(math.Inf(1))
	if !wantMin {
		def = float32(math.Inf(-1))
	}
	if identity != nil {
		def = identity.(float32)
	}
	for j := range out {
		out[j] = def
	}
	for k, v := range in {
		j := parents[k]
		cur := out[j]
		switch {
		case math.IsNaN(float64(v)):
			// NaN never wins: leave cur unchanged.
		case math.IsNaN(float64(cur)):
			out[j] = v
		case wantMin && v < cur:
			out[j] = v
		case !wantMin && v > cur:
			out[j] = v
		}
	}
	return out
}

func minMaxFloat64(in []float64, parents []int64, outlength int64, identity any, wantMin bool) []float64 {
	out := make([]float64, outlength)
	def := math.Inf(1)
	if !wantMin {
		def = math.Inf(-1)
	}
	if identity != nil {
		def = identity.(float64)
	}
	for j := range out {
		out[j] = def
	}
	for k, v := range in {
		j := parents[k]
		cur := out[j]
		switch {
		case math.IsNaN(v):
		case math.IsNaN(cur):
			out[j] = v
		case wantMin && v < cur:
			out[j] = v
		case !wantMin && v > cur:
			out[j] = v
		}
	}
	return out
}

// --- ArgMin / ArgMax -----------------------------------------------------

// ArgMin implements the argmin reducer: positional index (within the
// enclosing list, via starts) of the smallest element per group, -1 for
// empty groups, earliest index on ties.
type ArgMin struct{}

func (ArgMin) Name() string { return "argmin" }

func (ArgMin) Positional() bool { return true }

func (ArgMin) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	return argMinMax(in, parents, outlength, starts, mask, true)
}

// ArgMax implements the argmax reducer, symmetric to ArgMin.
type ArgMax struct{}

func (ArgMax) Name() string { return "argmax" }

func (ArgMax) Positional() bool { return true }

func (ArgMax) ReduceTyped(in any, parents []int64, outlength int64, starts []int64, mask bool) (any, jagged.ElementType, []bool, error) {
	return argMinMax(in, parents, outlength, starts, mask, false)
}

func argMinMax(in any, parents []int64, outlength int64, starts []int64, mask bool, wantMin bool) (any, jagged.ElementType, []bool, error) {
	out := make([]int64, outlength)
	best := make([]bool, outlength) // whether out[j] has been set yet
	for j := range out {
		out[j] = -1
	}

	switch v := in.(type) {
	case []int8:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b int8) bool { return a < b })
	case []int16:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b int16) bool { return a < b })
	case []int32:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b int32) bool { return a < b })
	case []int64:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b int64) bool { return a < b })
	case []uint8:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b uint8) bool { return a < b })
	case []uint16:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b uint16) bool { return a < b })
	case []uint32:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b uint32) bool { return a < b })
	case []uint64:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b uint64) bool { return a < b })
	case []bool:
		argLoop(v, parents, starts, out, best, wantMin, func(a, b bool) bool { return !a && b })
	case []float32:
		argLoopFloat(v, parents, starts, out, best, wantMin, func(f float32) bool { return math.IsNaN(float64(f)) })
	case []float64:
		argLoopFloat(v, parents, starts, out, best, wantMin, math.IsNaN)
	default:
		return nil, 0, nil, fmt.Errorf("reduce.argMinMax: unsupported element type %T", in)
	}
	return out, jagged.Int64, presenceIfMasked(mask, parents, outlength), nil
}

// argLoop runs the shared argmin/argmax scan for ordered non-float types.
// less(a, b) must report whether a is strictly less than b.
func argLoop[T comparable](in []T, parents, starts []int64, out []int64, best []bool, wantMin bool, less func(a, b T) bool) {
	bestVal := make([]T, len(out))
	for k, v := range in {
		j := parents[k]
		pos := k - int(starts[j])
		if !best[j] {
			out[j] = int64(pos)
			bestVal[j] = v
			best[j] = true
			continue
		}
		improves := false
		if wantMin {
			improves = less(v, bestVal[j])
		} else {
			improves = less(bestVal[j], v)
		}
		if improves {
			out[j] = int64(pos)
			bestVal[j] = v
		}
	}
}

// argLoopFloat additionally applies the "NaN never wins" rule.
func argLoopFloat[T jagged.Floats](in []T, parents, starts []int64, out []int64, best []bool, wantMin bool, isNaN func(T) bool) {
	bestVal := make([]T, len(out))
	for k, v := range in {
		j := parents[k]
		pos := k - int(starts[j])
		if !best[j] {
			out[j] = int64(pos)
			bestVal[j] = v
			best[j] = true
			continue
		}
		cur := bestVal[j]
		improves := false
		switch {
		case isNaN(v):
			improves = false
		case isNaN(cur):
			improves = true
		case wantMin:
			improves = v < cur
		default:
			improves = v > cur
		}
		if improves {
			out[j] = int64(pos)
			bestVal[j] = v
		}
	}
}
