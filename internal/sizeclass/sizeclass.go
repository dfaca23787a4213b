// Package sizeclass models the allocator's size-class bucket rounding
// that dks's growth algorithm feeds back into class re-selection, plus
// the Fibonacci-style pre-rounding the same algorithm uses before
// consulting the allocator. The real allocator is out of scope for this
// module, so this package stands in as an injectable default oracle and
// growth-step helper, both overridable by callers that want to model a
// different allocator.
package sizeclass

// SizeFor rounds a requested total allocation size (header + payload +
// NUL) up to the allocator's actual bucket size. The default models a
// jemalloc-style size-class ladder: small sizes round to the next power
// of two, larger ones round to a coarser stride.
type SizeFor func(n uint64) uint64

// Default is the size-class oracle used when no Option overrides it.
func Default(n uint64) uint64 {
	if n <= 16 {
		return 16
	}
	if n <= 1<<20 {
		return nextPow2(n)
	}
	// Beyond 1 MiB, round up to the next 1 MiB stride rather than the
	// next power of two, the way large jemalloc buckets stop doubling.
	const stride = 1 << 20
	return (n + stride - 1) / stride * stride
}

func nextPow2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// Fib implements the growth algorithm's Fibonacci-rounded pre-step: given
// the buffer's current capacity and a required size, grow by roughly the
// golden-ratio increment (cur + cur/2, like Go's own slice growth curve)
// rather than jumping straight to need, so repeated small appends don't
// reallocate on every call. Never returns less than need.
func Fib(cur, need uint64) uint64 {
	if cur == 0 {
		cur = 1
	}
	next := cur
	for next < need {
		next = next + next/2 + 1
	}
	return next
}
