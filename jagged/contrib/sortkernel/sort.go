package sortkernel

import "github.com/jagged-go/jagged"

// Ordered is a constraint for every element type a sort kernel accepts:
// every numeric type except bool, which has no useful total order beyond
// false < true (callers sorting a bool leaf should route through Count
// instead).
type Ordered interface {
	jagged.SignedInts | jagged.UnsignedInts | jagged.Floats
}

// sortInsertionThreshold: use insertion sort for runs this size or smaller,
// matching the teacher's own small-array special case.
const sortInsertionThreshold = 64

// SortInPlace sorts data ascending. stable requests a stable ordering
// (equal elements keep their relative order); unstable sorts may reorder
// equal elements arbitrarily but run the introsort path, which is usually
// faster for larger runs.
func SortInPlace[T Ordered](data []T, stable bool) {
	if stable {
		mergeSort(data, make([]T, len(data)))
		return
	}
	maxDepth := 0
	for n := len(data); n > 0; n >>= 1 {
		maxDepth++
	}
	introsort(data, maxDepth*2)
}

// ArgSort returns a permutation idx of [0, len(data)) ordering data
// ascending (descending if ascending is false); data itself is left
// untouched. A stable request keeps tied elements in their original
// relative order regardless of direction: the comparator itself flips,
// rather than reversing an ascending-stable result, which would reverse
// tie order along with everything else.
func ArgSort[T Ordered](data []T, stable, ascending bool) []int64 {
	idx := make([]int64, len(data))
	for i := range idx {
		idx[i] = int64(i)
	}
	less := func(a, b int64) bool { return data[a] < data[b] }
	if !ascending {
		less = func(a, b int64) bool { return data[a] > data[b] }
	}
	if stable {
		mergeSortIndex(idx, make([]int64, len(idx)), less)
	} else {
		maxDepth := 0
		for n := len(idx); n > 0; n >>= 1 {
			maxDepth++
		}
		introsortIndex(idx, less, maxDepth*2)
	}
	return idx
}

func insertionSort[T Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

func introsort[T Ordered](data []T, depthLimit int) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= sortInsertionThreshold {
		insertionSort(data)
		return
	}
	if depthLimit == 0 {
		heapSort(data)
		return
	}
	p := partition(data, medianOfThree(data))
	introsort(data[:p], depthLimit-1)
	introsort(data[p:], depthLimit-1)
}

// medianOfThree picks a pivot value from the first, middle, and last
// elements, reducing the odds of quadratic behavior on sorted/reverse-
// sorted input without the teacher's sampled-pivot machinery.
func medianOfThree[T Ordered](data []T) T {
	n := len(data)
	a, b, c := data[0], data[n/2], data[n-1]
	switch {
	case (a <= b) == (b <= c):
		return b
	case (b <= a) == (a <= c):
		return a
	default:
		return c
	}
}

// partition performs a 2-way partition around pivot, returning the
// boundary such that data[:boundary] < pivot <= data[boundary:].
func partition[T Ordered](data []T, pivot T) int {
	lo, hi := 0, len(data)
	for lo < hi {
		if data[lo] < pivot {
			lo++
			continue
		}
		hi--
		data[lo], data[hi] = data[hi], data[lo]
	}
	return lo
}

func heapSort[T Ordered](data []T) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T Ordered](data []T, i, n int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// mergeSort is the stable path: top-down merge sort with a single
// caller-provided scratch buffer reused across the whole recursion.
func mergeSort[T Ordered](data, scratch []T) {
	n := len(data)
	if n <= sortInsertionThreshold {
		insertionSort(data)
		return
	}
	mid := n / 2
	mergeSort(data[:mid], scratch[:mid])
	mergeSort(data[mid:], scratch[mid:])
	merge(data, mid, scratch)
}

func merge[T Ordered](data []T, mid int, scratch []T) {
	copy(scratch, data)
	left, right := scratch[:mid], scratch[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			data[k] = left[i]
			i++
		} else {
			data[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		data[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		data[k] = right[j]
		j++
		k++
	}
}

// --- index-permutation variants, shared by ArgSort -----------------------

func insertionSortIndex(idx []int64, less func(a, b int64) bool) {
	for i := 1; i < len(idx); i++ {
		key := idx[i]
		j := i - 1
		for j >= 0 && less(key, idx[j]) {
			idx[j+1] = idx[j]
			j--
		}
		idx[j+1] = key
	}
}

func introsortIndex(idx []int64, less func(a, b int64) bool, depthLimit int) {
	n := len(idx)
	if n <= 1 {
		return
	}
	if n <= sortInsertionThreshold {
		insertionSortIndex(idx, less)
		return
	}
	if depthLimit == 0 {
		heapSortIndex(idx, less)
		return
	}
	p := partitionIndex(idx, less)
	introsortIndex(idx[:p], less, depthLimit-1)
	introsortIndex(idx[p:], less, depthLimit-1)
}

func partitionIndex(idx []int64, less func(a, b int64) bool) int {
	n := len(idx)
	pivot := idx[n/2]
	lo, hi := 0, n
	for lo < hi {
		if less(idx[lo], pivot) {
			lo++
			continue
		}
		hi--
		idx[lo], idx[hi] = idx[hi], idx[lo]
	}
	return lo
}

func heapSortIndex(idx []int64, less func(a, b int64) bool) {
	n := len(idx)
	siftDownIndex := func(i, n int) {
		for {
			largest := i
			left, right := 2*i+1, 2*i+2
			if left < n && less(idx[largest], idx[left]) {
				largest = left
			}
			if right < n && less(idx[largest], idx[right]) {
				largest = right
			}
			if largest == i {
				return
			}
			idx[i], idx[largest] = idx[largest], idx[i]
			i = largest
		}
	}
	for i := n/2 - 1; i >= 0; i-- {
		siftDownIndex(i, n)
	}
	for i := n - 1; i > 0; i-- {
		idx[0], idx[i] = idx[i], idx[0]
		siftDownIndex(0, i)
	}
}

func mergeSortIndex(idx, scratch []int64, less func(a, b int64) bool) {
	n := len(idx)
	if n <= sortInsertionThreshold {
		insertionSortIndex(idx, less)
		return
	}
	mid := n / 2
	mergeSortIndex(idx[:mid], scratch[:mid], less)
	mergeSortIndex(idx[mid:], scratch[mid:], less)
	mergeIndex(idx, mid, scratch, less)
}

func mergeIndex(idx []int64, mid int, scratch []int64, less func(a, b int64) bool) {
	copy(scratch, idx)
	left, right := scratch[:mid], scratch[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if !less(right[j], left[i]) {
			idx[k] = left[i]
			i++
		} else {
			idx[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		idx[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		idx[k] = right[j]
		j++
		k++
	}
}
