package tiermap

import (
	"errors"
	"fmt"
)

var (
	// ErrFrozenCollision is returned by BuildFrozen when two keys reduce to
	// the same base slot.
	ErrFrozenCollision = errors.New("tiermap: frozen table slot collision")
	// ErrNullKey is returned when a pair list holds the null key.
	ErrNullKey = errors.New("tiermap: null key")
	// ErrNoBaseStore is returned by BuildFrozen when pairs are given for a
	// table without base slots.
	ErrNoBaseStore = errors.New("tiermap: frozen table has no base slots")
)

// BuildFromPairs creates a table with baseSize base slots and inserts every
// pair in order. Collisions are chained and the table grows as needed.
//
// BuildFromPairs panics if a pair holds the null key.
func BuildFromPairs[K Key[K], V any](
	baseSize int,
	pairs []Pair[K, V],
	options ...func(*TableConfig),
) *Table[K, V] {
	t := New[K, V](baseSize, options...)
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
	return t
}

// BuildFrozen creates a table whose entries all sit at the head of their
// own base slot. Each pair goes to slot hash(key) % baseSize; if that slot
// is already taken construction fails with ErrFrozenCollision and no table
// is returned. The overflow store is left empty and the table does not
// grow during construction.
//
// BuildFrozen is meant for tables assembled once, typically during package
// initialization, and only read afterwards.
func BuildFrozen[K Key[K], V any](
	baseSize int,
	pairs []Pair[K, V],
	options ...func(*TableConfig),
) (*Table[K, V], error) {
	t := New[K, V](baseSize, options...)
	if len(pairs) > 0 && t.BaseSize() == 0 {
		return nil, ErrNoBaseStore
	}
	for i, p := range pairs {
		if p.Key.IsNull() {
			return nil, fmt.Errorf("pair %d: %w", i, ErrNullKey)
		}
		idx := t.indexOf(p.Key)
		if head := t.slot(idx); head.occupied() {
			return nil, fmt.Errorf("pair %d: keys %v and %v both map to base slot %d: %w",
				i, head.key, p.Key, idx, ErrFrozenCollision)
		}
		t.place(p.Key, p.Value)
		t.count++
	}
	return t, nil
}

// MustBuildFrozen is like BuildFrozen but panics if the table cannot be
// built. It simplifies safe initialization of global variables.
func MustBuildFrozen[K Key[K], V any](
	baseSize int,
	pairs []Pair[K, V],
	options ...func(*TableConfig),
) *Table[K, V] {
	t, err := BuildFrozen(baseSize, pairs, options...)
	if err != nil {
		panic(err)
	}
	return t
}
