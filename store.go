package tiermap

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the CPU cache line size in bytes, as reported by
// `golang.org/x/sys`. It sizes the first overflow allocation.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

const (
	// defaultLoadFactor is the entries/slots ratio that Insert never lets the
	// table exceed.
	defaultLoadFactor = 0.75
	// defaultOverflowMinIncrement is the smallest overflow store ever
	// allocated: one cache line worth of pointers.
	defaultOverflowMinIncrement = int(CacheLineSize / unsafe.Sizeof(unsafe.Pointer(nil)))
	// defaultOverflowMargin is added on top of doubling so small overflow
	// stores do not regrow after a handful of inserts.
	defaultOverflowMargin = 4
)

// store is a contiguous region of slots. Slot i holds the head of the chain
// for every key whose index maps to i.
type store[K Key[K], V any] []node[K, V]

func newStore[K Key[K], V any](size int) store[K, V] {
	if size <= 0 {
		return nil
	}
	return make(store[K, V], size)
}

// clone returns an independent deep copy of every chain in s.
func (s store[K, V]) clone() store[K, V] {
	if len(s) == 0 {
		return nil
	}
	c := make(store[K, V], len(s))
	for i := range s {
		if s[i].occupied() {
			c[i].copyFrom(&s[i])
		}
	}
	return c
}

// drain moves every pair of s into buf in slot order, then chain order,
// leaving all slots empty.
func (s store[K, V]) drain(buf []Pair[K, V]) []Pair[K, V] {
	for i := range s {
		buf = s[i].drain(buf)
	}
	return buf
}

func (s store[K, V]) clear() {
	for i := range s {
		s[i].clear()
	}
}

// nextOverflowSize implements the overflow growth formula
// max(minIncrement, size*2 + margin).
func nextOverflowSize(size, minIncrement, margin int) int {
	return max(minIncrement, size*2+margin)
}
