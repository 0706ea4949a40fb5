// Package store holds the fixed-capacity user and task collections.
//
// Both collections are arrays of slots. A slot is either free or occupied;
// occupancy is an explicit flag, never inferred from field contents.
package store

type slot[T any] struct {
	used bool
	rec  T
}

type slots[T any] []slot[T]

// firstFree returns the index of the first free slot, or -1 when all are used.
func (s slots[T]) firstFree() int {
	for i := range s {
		if !s[i].used {
			return i
		}
	}
	return -1
}

func (s slots[T]) count() int {
	n := 0
	for i := range s {
		if s[i].used {
			n++
		}
	}
	return n
}
