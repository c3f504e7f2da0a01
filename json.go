package tiermap

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

var (
	jsonMarshal   = sonnet.Marshal
	jsonUnmarshal = sonnet.Unmarshal
)

// SetDefaultJSONMarshal sets the JSON serialization and deserialization
// functions used by Table. If not set, sonnet is used. A nil argument
// keeps the current function.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	if marshal != nil {
		jsonMarshal = marshal
	}
	if unmarshal != nil {
		jsonUnmarshal = unmarshal
	}
}

// MarshalJSON encodes the table as an array of {"key","value"} objects in
// iteration order.
func (t *Table[K, V]) MarshalJSON() ([]byte, error) {
	return jsonMarshal(t.Pairs())
}

// UnmarshalJSON decodes an array of {"key","value"} objects and replaces
// the table contents with them. Pairs are inserted in encoded order, so a
// key encoded more than once keeps its first value visible and the later
// ones shadowed, exactly as MarshalJSON wrote them. On error the table is
// left untouched.
func (t *Table[K, V]) UnmarshalJSON(data []byte) error {
	var pairs []Pair[K, V]
	if err := jsonUnmarshal(data, &pairs); err != nil {
		return fmt.Errorf("failed to decode table pairs: %w", err)
	}
	for i := range pairs {
		if pairs[i].Key.IsNull() {
			return fmt.Errorf("pair %d: %w", i, ErrNullKey)
		}
	}
	t.Clear()
	for i := range pairs {
		t.Insert(pairs[i].Key, pairs[i].Value)
	}
	return nil
}
