package codegen

import "strconv"

// tempAllocator is the monotonic bump allocator over the memory range
// reserved for compiler-generated temporaries. It starts at 500 and bumps
// by 4 (the size of an int cell) before handing out each address, so the
// first temp allocated is 504 and every temp address is >= 504 and unique.
type tempAllocator struct {
	next int
}

func newTempAllocator() *tempAllocator { return &tempAllocator{next: 500} }

// alloc returns a fresh temp address.
func (t *tempAllocator) alloc() Address {
	t.next += 4
	return immediateAddr(strconv.Itoa(t.next))
}

// reserve advances the allocator by words extra words without handing out an
// address, used to reserve the trailing cells of an array after its base
// cell has already been allocated through alloc.
func (t *tempAllocator) reserve(words int) {
	t.next += words * 4
}
