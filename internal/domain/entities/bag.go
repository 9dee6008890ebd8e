package entities

// Bag is an ordered collection of domain values. Insertion order is the
// iteration order; indexes carry no meaning. All returns the live backing
// slice, so element mutations through it are visible to the bag (shared
// ownership, not a defensive copy).
type Bag[T any] struct {
	items []T
}

func (b *Bag[T]) Add(item T) *Bag[T] {
	b.items = append(b.items, item)
	return b
}

func (b *Bag[T]) Replace(items []T) *Bag[T] {
	b.items = nil
	b.items = append(b.items, items...)
	return b
}

func (b *Bag[T]) All() []T {
	return b.items
}

func (b *Bag[T]) Count() int {
	return len(b.items)
}
