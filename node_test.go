package tiermap

import "testing"

type testNode = node[IntKey[int], int]

func buildChain(n int) *testNode {
	head := &testNode{key: Int(1), value: 1}
	for i := 2; i <= n; i++ {
		head.appendTail(Int(i), i)
	}
	return head
}

func TestNode_AppendTailKeepsOrder(t *testing.T) {
	head := buildChain(5)
	i := 1
	for n := head; n != nil; n = n.next {
		if n.key.Value != i || n.value != i {
			t.Fatalf("position %d holds %v=%d", i, n.key, n.value)
		}
		i++
	}
	if head.chainLen() != 5 {
		t.Fatalf("chainLen got %d", head.chainLen())
	}
}

func TestNode_Find(t *testing.T) {
	head := buildChain(4)
	if n := head.find(Int(3)); n == nil || n.value != 3 {
		t.Fatalf("find(3) got %v", n)
	}
	if n := head.find(Int(9)); n != nil {
		t.Fatalf("find(9) got %v", n)
	}
	var empty testNode
	if empty.find(Int(1)) != nil || empty.chainLen() != 0 {
		t.Fatal("empty slot must hold nothing")
	}
}

func TestNode_CopyFromIsIndependent(t *testing.T) {
	const n = 5000
	src := buildChain(n)
	var dst testNode
	dst.copyFrom(src)
	if dst.chainLen() != n {
		t.Fatalf("copy length got %d", dst.chainLen())
	}
	for a, b := src, &dst; a != nil; a, b = a.next, b.next {
		if a == b {
			t.Fatal("copy shares nodes with source")
		}
		if a.key != b.key || a.value != b.value {
			t.Fatalf("copy mismatch %v/%d vs %v/%d", a.key, a.value, b.key, b.value)
		}
	}
	dst.next.value = -1
	if src.next.value != 2 {
		t.Fatal("mutating copy changed source")
	}
}

func TestNode_DrainEmptiesSlot(t *testing.T) {
	head := buildChain(3)
	pairs := head.drain(nil)
	if len(pairs) != 3 {
		t.Fatalf("drained %d pairs", len(pairs))
	}
	for i, p := range pairs {
		if p.Key.Value != i+1 || p.Value != i+1 {
			t.Fatalf("pair %d got %v", i, p)
		}
	}
	if head.occupied() || head.next != nil {
		t.Fatal("slot not empty after drain")
	}
	if more := head.drain(pairs); len(more) != 3 {
		t.Fatal("draining an empty slot added pairs")
	}
}

func TestNode_ClearLongChain(t *testing.T) {
	head := buildChain(2000)
	second := head.next
	head.clear()
	if head.occupied() || head.next != nil {
		t.Fatal("slot not empty after clear")
	}
	if second.next != nil {
		t.Fatal("successors must be unlinked")
	}
}

func TestNextOverflowSize(t *testing.T) {
	cases := []struct{ size, min, margin, want int }{
		{0, 4, 4, 4},
		{0, 8, 4, 8},
		{4, 4, 4, 12},
		{12, 4, 4, 28},
		{3, 16, 0, 16},
	}
	for _, c := range cases {
		if got := nextOverflowSize(c.size, c.min, c.margin); got != c.want {
			t.Errorf("nextOverflowSize(%d, %d, %d) = %d, want %d", c.size, c.min, c.margin, got, c.want)
		}
	}
	if defaultOverflowMinIncrement < 1 {
		t.Fatalf("defaultOverflowMinIncrement = %d", defaultOverflowMinIncrement)
	}
}
