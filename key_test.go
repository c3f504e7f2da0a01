package tiermap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestIntKey(t *testing.T) {
	if !Int(0).IsNull() {
		t.Fatal("zero IntKey must be null")
	}
	if (IntKey[int]{}).Hash() != 0 || !(IntKey[int]{}).IsNull() {
		t.Fatal("zero value IntKey must be the null key")
	}
	if Int(42).Hash() != 42 {
		t.Fatalf("hash got %d, want 42", Int(42).Hash())
	}
	if Int(int8(-1)).Hash() != uint64(0xffffffffffffffff) {
		t.Fatalf("hash of -1 got %#x", Int(int8(-1)).Hash())
	}
	if !Int(uint16(7)).Equal(Int(uint16(7))) || Int(7).Equal(Int(8)) {
		t.Fatal("Equal mismatch")
	}
	if s := Int(int8(-5)).String(); s != "-5" {
		t.Fatalf("String got %q", s)
	}
	if s := Int(uint64(1 << 63)).String(); s != "9223372036854775808" {
		t.Fatalf("String got %q", s)
	}
}

func TestStringKey(t *testing.T) {
	var zero StringKey
	if !zero.IsNull() {
		t.Fatal("empty StringKey must be null")
	}
	k := StringKey("hello")
	if k.IsNull() {
		t.Fatal("non-empty StringKey reported null")
	}
	if k.Hash() != xxhash.Sum64String("hello") {
		t.Fatalf("hash got %#x", k.Hash())
	}
	if !k.Equal("hello") || k.Equal("world") {
		t.Fatal("Equal mismatch")
	}
}

func TestPolyStringKey(t *testing.T) {
	if got := PolyStringKey("ab").Hash(); got != 'a'*31+'b' {
		t.Fatalf("hash got %d, want %d", got, 'a'*31+'b')
	}
	if PolyStringKey("").Hash() != 0 || !PolyStringKey("").IsNull() {
		t.Fatal("empty PolyStringKey must be null with zero hash")
	}
	if !PolyStringKey("x").Equal("x") || PolyStringKey("x").Equal("y") {
		t.Fatal("Equal mismatch")
	}
}
