// Package sortkernel implements the leaf sort and argsort kernels the list
// layer's sort_next/argsort_next orchestration calls into.
//
// A jagged array's sublists are typically short (the list layer already
// does the work of grouping elements into per-sublist or per-slot runs),
// so this is a single generic comparison sort rather than the teacher's
// SIMD radix/quicksort dispatch: insertion sort below sortInsertionThreshold,
// introsort (quicksort with a heapsort depth-limit fallback) above it, or
// merge sort above it when a stable order is requested,
// following the same threshold-and-fallback shape as the teacher's
// hwy/contrib/sort/sort.go without its vector partitioning.
package sortkernel
