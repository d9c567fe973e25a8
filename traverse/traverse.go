// Package traverse increments every element of a fixed-size array in two
// ways: in place, and by reading one array while writing another. The
// functions exist to be timed, so none of them may be inlined.
package traverse

import "runtime"

// Size is the number of elements in an Array.
const Size = 10_000

// An Array is the sequence both traversals operate on.
type Array [Size]uint32

// InPlace increments each element of a fresh zeroed Array, storing the
// result back into the element it read.
//
//go:noinline
func InPlace() {
	var arr Array
	IncrementInPlace(&arr)
}

// IncrementInPlace adds 1 to every element of arr.
//
//go:noinline
func IncrementInPlace(arr *Array) {
	for i := range arr {
		arr[i]++
	}
}

// Swapped reads each element of a fresh zeroed Array and writes the
// incremented value into a second Array.
//
//go:noinline
func Swapped() {
	var src, dst Array
	IncrementInto(&dst, &src)
	runtime.KeepAlive(&dst)
}

// IncrementInto sets dst[i] to src[i]+1 for every i. It does not modify src.
//
//go:noinline
func IncrementInto(dst, src *Array) {
	for i := range src {
		dst[i] = src[i] + 1
	}
}
