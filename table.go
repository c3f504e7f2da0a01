// Package tiermap provides Table, a chained hash table split across two
// slot regions: a base store whose capacity is fixed when the table is
// created, and an overflow store that is reallocated as the table grows.
//
// Every operation reduces the key hash modulo the combined slot count
// (base + overflow) and then walks the chain of the selected slot, which
// may live in either region. When an insert would push the load factor
// past its threshold, all entries are drained from both regions, the
// overflow store is enlarged and the entries are placed again. The base
// store keeps its capacity for the lifetime of the table.
//
// Tables are not safe for concurrent use.
package tiermap

import (
	"fmt"
	"strings"
)

// Table is a two-tier chained hash table.
//
// The zero value is an empty table with no base store; it is ready to use
// and behaves like a table created by New(0).
type Table[K Key[K], V any] struct {
	base     store[K, V]
	overflow store[K, V]
	count    int
	growths  uint32
	cfg      TableConfig
}

// Pair is a single key/value entry.
type Pair[K Key[K], V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// New creates a table with baseSize fixed base slots and an empty overflow
// store. A negative baseSize is treated as zero.
//
// Parameters:
//   - WithLoadFactor option for the growth threshold
//   - WithOverflowGrowth option for the overflow growth formula
//   - WithGrowHook option to observe growth
func New[K Key[K], V any](
	baseSize int,
	options ...func(*TableConfig),
) *Table[K, V] {
	return &Table[K, V]{
		base: newStore[K, V](baseSize),
		cfg:  newConfig(options),
	}
}

func (t *Table[K, V]) lazyInit() {
	if t.cfg.loadFactor == 0 {
		t.cfg = defaultConfig()
	}
}

// BaseSize returns the fixed number of base slots.
func (t *Table[K, V]) BaseSize() int { return len(t.base) }

// OverflowSize returns the current number of overflow slots.
func (t *Table[K, V]) OverflowSize() int { return len(t.overflow) }

// TotalSlots returns BaseSize()+OverflowSize(), the modulus of every index
// computation.
func (t *Table[K, V]) TotalSlots() int { return len(t.base) + len(t.overflow) }

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int { return t.count }

// LoadFactor returns the current entries/slots ratio.
func (t *Table[K, V]) LoadFactor() float64 {
	total := t.TotalSlots()
	if total == 0 {
		return 0
	}
	return float64(t.count) / float64(total)
}

// indexOf reduces the key hash modulo the total slot count.
// The caller guarantees TotalSlots() > 0.
func (t *Table[K, V]) indexOf(key K) int {
	return int(key.Hash() % uint64(t.TotalSlots()))
}

// slot maps a table index to its chain head in the base or overflow store.
func (t *Table[K, V]) slot(index int) *node[K, V] {
	if index < len(t.base) {
		return &t.base[index]
	}
	return &t.overflow[index-len(t.base)]
}

// place puts key/value at the head of its slot, or at the chain tail when
// the head is taken. It neither checks the load factor nor counts.
func (t *Table[K, V]) place(key K, value V) {
	head := t.slot(t.indexOf(key))
	if !head.occupied() {
		head.key, head.value = key, value
		return
	}
	head.appendTail(key, value)
}

func (t *Table[K, V]) exceedsLoad(count int) bool {
	return float64(count) > float64(t.TotalSlots())*t.cfg.loadFactor
}

// Insert adds key/value to the table, growing it first when the entry
// count after the insert would exceed the load factor threshold. A very
// low load factor may need more than one growth before the entry fits.
//
// Insert does not look for an existing entry with an equal key. A second
// insert of the same key is chained behind the first one and stays
// shadowed: Get keeps returning the first value until that entry is
// removed. Use Store for insert-or-overwrite semantics.
//
// Insert panics if key is the null key.
func (t *Table[K, V]) Insert(key K, value V) {
	if key.IsNull() {
		panic("tiermap: cannot insert the null key")
	}
	t.lazyInit()
	for t.exceedsLoad(t.count + 1) {
		t.grow()
	}
	t.place(key, value)
	t.count++
}

// Store sets the value of the first entry equal to key, or inserts a new
// entry when there is none. It reports whether an existing value was
// replaced.
//
// Store panics if key is the null key.
func (t *Table[K, V]) Store(key K, value V) (replaced bool) {
	if p := t.GetPtr(key); p != nil {
		*p = value
		return true
	}
	t.Insert(key, value)
	return false
}

// Get returns the value stored for key. The ok result reports whether the
// key was found.
func (t *Table[K, V]) Get(key K) (value V, ok bool) {
	if p := t.GetPtr(key); p != nil {
		return *p, true
	}
	return value, false
}

// GetPtr returns a pointer to the value stored for key, or nil if the key
// is absent. The pointer is valid until the next Insert, Store, Remove or
// Clear on the table.
func (t *Table[K, V]) GetPtr(key K) *V {
	if t.TotalSlots() == 0 || key.IsNull() {
		return nil
	}
	if n := t.slot(t.indexOf(key)).find(key); n != nil {
		return &n.value
	}
	return nil
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.GetPtr(key) != nil
}

// Remove deletes the first entry equal to key and reports whether one was
// found. Removing an absent key leaves the table untouched.
func (t *Table[K, V]) Remove(key K) bool {
	if t.TotalSlots() == 0 || key.IsNull() {
		return false
	}
	head := t.slot(t.indexOf(key))
	if !head.occupied() {
		return false
	}
	var prev *node[K, V]
	for n := head; n != nil; prev, n = n, n.next {
		if !n.key.Equal(key) {
			continue
		}
		switch {
		case prev != nil:
			prev.next = n.next
			n.next = nil
		case n.next != nil:
			// promote the successor into the inline head
			succ := n.next
			*head = *succ
			succ.next = nil
		default:
			*head = node[K, V]{}
		}
		t.count--
		return true
	}
	return false
}

// Clear removes every entry. The base store keeps its capacity and the
// overflow store is released.
func (t *Table[K, V]) Clear() {
	t.base.clear()
	t.overflow.clear()
	t.overflow = nil
	t.count = 0
}

// Clone returns a deep copy of the table. The copy shares no chain nodes
// with t, so mutating either table never affects the other.
func (t *Table[K, V]) Clone() *Table[K, V] {
	return &Table[K, V]{
		base:     t.base.clone(),
		overflow: t.overflow.clone(),
		count:    t.count,
		growths:  t.growths,
		cfg:      t.cfg,
	}
}

// Move transfers ownership of every entry to a new table without copying
// any chain. Afterwards t is empty, keeps its base capacity and
// configuration, and can be reused.
func (t *Table[K, V]) Move() *Table[K, V] {
	moved := &Table[K, V]{
		base:     t.base,
		overflow: t.overflow,
		count:    t.count,
		growths:  t.growths,
		cfg:      t.cfg,
	}
	t.base = newStore[K, V](len(moved.base))
	t.overflow = nil
	t.count = 0
	t.growths = 0
	return moved
}

// Range calls yield for every entry, base store first, then overflow
// store, each slot in chain order. Iteration stops when yield returns
// false. The table must not be modified during iteration.
func (t *Table[K, V]) Range(yield func(key K, value V) bool) {
	for _, s := range [2]store[K, V]{t.base, t.overflow} {
		for i := range s {
			if !s[i].occupied() {
				continue
			}
			for n := &s[i]; n != nil; n = n.next {
				if !yield(n.key, n.value) {
					return
				}
			}
		}
	}
}

// All is the iterator version of Range.
func (t *Table[K, V]) All() func(yield func(K, V) bool) {
	return t.Range
}

// Keys is the iterator version for iterating over all keys.
func (t *Table[K, V]) Keys() func(yield func(K) bool) {
	return func(yield func(K) bool) {
		t.Range(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Values is the iterator version for iterating over all values.
func (t *Table[K, V]) Values() func(yield func(V) bool) {
	return func(yield func(V) bool) {
		t.Range(func(_ K, value V) bool {
			return yield(value)
		})
	}
}

// Pairs returns every entry in iteration order.
func (t *Table[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.count)
	t.Range(func(key K, value V) bool {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: value})
		return true
	})
	return pairs
}

// String implement the formatting output interface fmt.Stringer.
// At most 1024 entries are printed; a trailing "..." marks the cut.
func (t *Table[K, V]) String() string {
	const limit = 1024
	var sb strings.Builder
	sb.WriteString("Table[")
	n := 0
	t.Range(func(key K, value V) bool {
		if n > 0 {
			sb.WriteByte(' ')
		}
		if n == limit {
			sb.WriteString("...")
			return false
		}
		fmt.Fprintf(&sb, "%v:%v", key, value)
		n++
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
