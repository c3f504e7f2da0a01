package tiermap

// node is one entry of a slot chain. The chain head is stored inline in its
// slot; every successor is a heap node owned by exactly one predecessor.
//
// A slot is empty iff its head holds the null key. Successors are always
// occupied.
type node[K Key[K], V any] struct {
	key   K
	value V
	next  *node[K, V]
}

func (n *node[K, V]) occupied() bool { return !n.key.IsNull() }

// find returns the first chain node holding key, or nil.
func (n *node[K, V]) find(key K) *node[K, V] {
	if !n.occupied() {
		return nil
	}
	for ; n != nil; n = n.next {
		if n.key.Equal(key) {
			return n
		}
	}
	return nil
}

// appendTail links a new node holding key/value after the last chain node.
func (n *node[K, V]) appendTail(key K, value V) {
	for n.next != nil {
		n = n.next
	}
	n.next = &node[K, V]{key: key, value: value}
}

// chainLen counts the entries of the chain headed by n.
func (n *node[K, V]) chainLen() int {
	if !n.occupied() {
		return 0
	}
	c := 0
	for ; n != nil; n = n.next {
		c++
	}
	return c
}

// copyFrom makes n an independent copy of the chain headed by src.
// The walk is iterative so chain length never affects stack depth.
func (n *node[K, V]) copyFrom(src *node[K, V]) {
	n.key, n.value, n.next = src.key, src.value, nil
	dst := n
	for s := src.next; s != nil; s = s.next {
		dst.next = &node[K, V]{key: s.key, value: s.value}
		dst = dst.next
	}
}

// drain appends the chain's pairs to buf in chain order and leaves the slot
// empty.
func (n *node[K, V]) drain(buf []Pair[K, V]) []Pair[K, V] {
	if !n.occupied() {
		return buf
	}
	for p := n; p != nil; p = p.next {
		buf = append(buf, Pair[K, V]{Key: p.key, Value: p.value})
	}
	n.clear()
	return buf
}

// clear empties the slot, unlinking successors one at a time.
func (n *node[K, V]) clear() {
	for p := n.next; p != nil; {
		next := p.next
		p.next = nil
		p = next
	}
	*n = node[K, V]{}
}
