package tree

import "iter"

// ContentIterator walks a tree in pre-order: an element, then the full
// subtree of each child in declaration order. It cannot be restarted.
type ContentIterator struct {
	// work queue; the front is the end of the slice
	queue []Content
}

// NewIterator returns an iterator positioned before root.
func NewIterator(root Content) *ContentIterator {
	it := &ContentIterator{}
	if root != nil {
		it.queue = append(it.queue, root)
	}
	return it
}

// Next returns the next element, or false once the tree is exhausted.
func (it *ContentIterator) Next() (Content, bool) {
	n := len(it.queue)
	if n == 0 {
		return nil, false
	}
	c := it.queue[n-1]
	it.queue = it.queue[:n-1]

	children := c.Children()
	for i := len(children) - 1; i >= 0; i-- {
		it.queue = append(it.queue, children[i])
	}
	return c, true
}

// All returns the remaining elements as a sequence.
func (it *ContentIterator) All() iter.Seq[Content] {
	return func(yield func(Content) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Walk returns a fresh pre-order sequence over root.
func Walk(root Content) iter.Seq[Content] {
	return NewIterator(root).All()
}
