package tiermap

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Key is the capability every table key must provide.
//
// Requirements on implementations:
//   - Hash is deterministic and stable for the lifetime of the key.
//   - a.Equal(b) implies a.Hash() == b.Hash().
//   - IsNull reports the single reserved value that marks an empty slot.
//     That value can never be stored in a table.
//   - The zero value of K must report IsNull, since freshly allocated
//     slots hold zero keys.
//
// Breaking the Hash/Equal contract is undefined behavior for the table.
type Key[K any] interface {
	Hash() uint64
	Equal(other K) bool
	IsNull() bool
}

// IntKey wraps an integer. Its hash is the integer itself and zero is the
// null key.
type IntKey[T constraints.Integer] struct {
	Value T
}

// Int returns an IntKey holding v.
func Int[T constraints.Integer](v T) IntKey[T] {
	return IntKey[T]{Value: v}
}

func (k IntKey[T]) Hash() uint64 { return uint64(k.Value) }
func (k IntKey[T]) Equal(other IntKey[T]) bool { return k.Value == other.Value }
func (k IntKey[T]) IsNull() bool { return k.Value == 0 }

// String formats the wrapped integer in base 10.
func (k IntKey[T]) String() string {
	if k.Value < 0 {
		return strconv.FormatInt(int64(k.Value), 10)
	}
	return strconv.FormatUint(uint64(k.Value), 10)
}

// StringKey is a string key hashed with xxHash64. The empty string is the
// null key.
type StringKey string

func (k StringKey) Hash() uint64 { return xxhash.Sum64String(string(k)) }
func (k StringKey) Equal(other StringKey) bool { return k == other }
func (k StringKey) IsNull() bool { return k == "" }

// PolyStringKey is a string key using the classic h*31+c polynomial hash.
// The hash is stable across processes and releases, which makes it the
// right choice for tables whose slot layout is checked ahead of time with
// BuildFrozen. The empty string is the null key.
type PolyStringKey string

func (k PolyStringKey) Hash() uint64 {
	var h uint64
	for i := 0; i < len(k); i++ {
		h = h*31 + uint64(k[i])
	}
	return h
}

func (k PolyStringKey) Equal(other PolyStringKey) bool { return k == other }
func (k PolyStringKey) IsNull() bool { return k == "" }
