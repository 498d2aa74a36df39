// Package sequence provides per-kind monotonic identifier allocation.
package sequence

// Allocator issues identifiers per entity kind. Each kind's identifiers
// are strictly increasing and never reused until an explicit Reset.
//
// The allocator is owned exclusively by the store and shares its writer
// lock; it performs no synchronization of its own.
type Allocator struct {
	next []uint64
}

// NewAllocator creates an allocator for the given number of kinds.
// The first identifier issued for every kind is 1.
func NewAllocator(kinds int) *Allocator {
	a := &Allocator{next: make([]uint64, kinds)}
	a.Reset()
	return a
}

// Next returns the next identifier for kind and advances its counter.
func (a *Allocator) Next(kind int) uint64 {
	id := a.next[kind]
	a.next[kind]++
	return id
}

// Current returns the identifier Next would issue, without advancing.
func (a *Allocator) Current(kind int) uint64 {
	return a.next[kind]
}

// Reset rewinds every counter so the next identifier issued is 1 again.
func (a *Allocator) Reset() {
	for i := range a.next {
		a.next[i] = 1
	}
}
