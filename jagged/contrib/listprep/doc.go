// Package listprep implements the list-layout preparation kernels of
// the list-layout preparation kernels: pure transformations on offset/parents/starts arrays that
// compact offsets, compute global start/stop, build nextparents for local
// reductions, and prepare the (nextcarry, nextparents, distincts, maxcount,
// maxnextparents) tuple non-local reductions need.
//
// Every function here is a pure slice transformation with no hidden state,
// following the same shape as the teacher's own pure kernels in
// hwy/contrib/algo (BaseFind, BaseApply): take slices in, return new
// slices, never fail except on caller-detectable misuse.
package listprep
