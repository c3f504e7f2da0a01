package tiermap

import (
	"fmt"
	"strings"
)

// GrowEvent describes one completed growth of a table.
type GrowEvent struct {
	// BaseSize is the fixed base store capacity.
	BaseSize int
	// OldOverflowSize is the overflow store capacity before the growth.
	OldOverflowSize int
	// NewOverflowSize is the overflow store capacity after the growth.
	NewOverflowSize int
	// Entries is the number of entries moved by the growth.
	Entries int
	// Growths is the number of growths the table has gone through,
	// this one included.
	Growths uint32
}

// grow drains every chain of both stores, replaces the overflow store with
// a larger one and places every drained entry again under the new total
// slot count. Placement bypasses the load factor check, so grow never
// recurses.
func (t *Table[K, V]) grow() {
	pairs := make([]Pair[K, V], 0, t.count)
	pairs = t.base.drain(pairs)
	pairs = t.overflow.drain(pairs)
	if len(pairs) != t.count {
		panic(fmt.Sprintf("tiermap: drained %d entries, counter says %d", len(pairs), t.count))
	}

	oldOverflow := len(t.overflow)
	t.overflow = newStore[K, V](nextOverflowSize(oldOverflow, t.cfg.minIncrement, t.cfg.margin))
	for i := range pairs {
		t.place(pairs[i].Key, pairs[i].Value)
	}
	t.count = len(pairs)
	t.growths++

	if t.cfg.growHook != nil {
		t.cfg.growHook(GrowEvent{
			BaseSize:        len(t.base),
			OldOverflowSize: oldOverflow,
			NewOverflowSize: len(t.overflow),
			Entries:         len(pairs),
			Growths:         t.growths,
		})
	}
}

// Stats returns statistics for the table. It walks every chain, so it is an
// O(N) operation meant for diagnostics and tests.
func (t *Table[K, V]) Stats() *TableStats {
	stats := &TableStats{
		BaseSlots:     len(t.base),
		OverflowSlots: len(t.overflow),
		TotalSlots:    t.TotalSlots(),
		Counter:       t.count,
		LoadFactor:    t.LoadFactor(),
		TotalGrowths:  t.growths,
	}
	for _, s := range [2]store[K, V]{t.base, t.overflow} {
		for i := range s {
			n := s[i].chainLen()
			if n == 0 {
				stats.EmptySlots++
				continue
			}
			stats.Size += n
			if n > 1 {
				stats.ChainedEntries += n - 1
			}
			stats.MaxChain = max(stats.MaxChain, n)
		}
	}
	return stats
}

// TableStats is Table statistics.
//
// Warning: table statistics are intended to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type TableStats struct {
	// BaseSlots is the fixed capacity of the base store.
	BaseSlots int
	// OverflowSlots is the current capacity of the overflow store.
	OverflowSlots int
	// TotalSlots is BaseSlots+OverflowSlots.
	TotalSlots int
	// EmptySlots is the number of slots, in either store, without a chain.
	EmptySlots int
	// Size is the exact number of entries reachable by walking all chains.
	Size int
	// Counter is the entry count maintained by the table. It always
	// equals Size.
	Counter int
	// ChainedEntries is the number of entries stored behind a chain head.
	ChainedEntries int
	// MaxChain is the length of the longest chain.
	MaxChain int
	// LoadFactor is Counter/TotalSlots.
	LoadFactor float64
	// TotalGrowths is the number of times the overflow store grew.
	TotalGrowths uint32
}

// ToString returns string representation of table stats.
func (s *TableStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("TableStats{\n")
	sb.WriteString(fmt.Sprintf("BaseSlots:      %d\n", s.BaseSlots))
	sb.WriteString(fmt.Sprintf("OverflowSlots:  %d\n", s.OverflowSlots))
	sb.WriteString(fmt.Sprintf("TotalSlots:     %d\n", s.TotalSlots))
	sb.WriteString(fmt.Sprintf("EmptySlots:     %d\n", s.EmptySlots))
	sb.WriteString(fmt.Sprintf("Size:           %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:        %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("ChainedEntries: %d\n", s.ChainedEntries))
	sb.WriteString(fmt.Sprintf("MaxChain:       %d\n", s.MaxChain))
	sb.WriteString(fmt.Sprintf("LoadFactor:     %.3f\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("TotalGrowths:   %d\n", s.TotalGrowths))
	sb.WriteString("}\n")
	return sb.String()
}
