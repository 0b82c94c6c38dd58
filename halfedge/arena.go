// SPDX-License-Identifier: MIT

package halfedge

// arena stores elements of one kind behind stable integer handles.
//
//   - items[h] holds the record for handle h (zeroed once h dies).
//   - slot[h] is the position of h inside dense, or -1 when h is dead.
//   - dense lists live handles; remove swaps the last one into the hole.
//   - free holds dead handles, reused LIFO by alloc.
//
// Complexity: alloc, remove, alive, index are O(1).
type arena[T any] struct {
	items []T
	slot  []int
	dense []int
	free  []int
}

// alloc stores v and returns its handle.
func (a *arena[T]) alloc(v T) int {
	var h int
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
		a.items[h] = v
	} else {
		h = len(a.items)
		a.items = append(a.items, v)
		a.slot = append(a.slot, -1)
	}
	a.slot[h] = len(a.dense)
	a.dense = append(a.dense, h)

	return h
}

// alive reports whether h addresses a live element.
func (a *arena[T]) alive(h int) bool {
	return h >= 0 && h < len(a.slot) && a.slot[h] >= 0
}

// at returns the record for a live handle. Callers check alive first.
func (a *arena[T]) at(h int) *T {
	return &a.items[h]
}

// remove kills h with swap-with-last compaction of dense.
// It reports false when h was not alive.
func (a *arena[T]) remove(h int) bool {
	if !a.alive(h) {
		return false
	}
	i := a.slot[h]
	last := len(a.dense) - 1
	moved := a.dense[last]
	a.dense[i] = moved
	a.slot[moved] = i
	a.dense = a.dense[:last]
	a.slot[h] = -1

	var zero T
	a.items[h] = zero
	a.free = append(a.free, h)

	return true
}

// len returns the number of live elements.
func (a *arena[T]) len() int { return len(a.dense) }

// index returns the dense position of h, or -1 when h is dead.
func (a *arena[T]) index(h int) int {
	if !a.alive(h) {
		return -1
	}

	return a.slot[h]
}

// clone returns an independent deep copy (records are plain values).
func (a *arena[T]) clone() arena[T] {
	return arena[T]{
		items: append([]T(nil), a.items...),
		slot:  append([]int(nil), a.slot...),
		dense: append([]int(nil), a.dense...),
		free:  append([]int(nil), a.free...),
	}
}

// handles converts the dense container into a typed snapshot.
func handles[ID ~int, T any](a *arena[T]) []ID {
	out := make([]ID, len(a.dense))
	for i, h := range a.dense {
		out[i] = ID(h)
	}

	return out
}
