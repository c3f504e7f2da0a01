package tiermap

import (
	"fmt"
	"testing"
)

var (
	testDataSmall [8]string
	testData      [128]string
	testDataLarge [128 << 10]string
)

func init() {
	for i := range testDataSmall {
		testDataSmall[i] = fmt.Sprintf("%b", i)
	}
	for i := range testData {
		testData[i] = fmt.Sprintf("%b", i)
	}
	for i := range testDataLarge {
		testDataLarge[i] = fmt.Sprintf("%b", i)
	}
}

func BenchmarkTableGetSmall(b *testing.B) {
	benchmarkTableGet(b, testDataSmall[:])
}

func BenchmarkTableGet(b *testing.B) {
	benchmarkTableGet(b, testData[:])
}

func BenchmarkTableGetLarge(b *testing.B) {
	benchmarkTableGet(b, testDataLarge[:])
}

func benchmarkTableGet(b *testing.B, data []string) {
	b.ReportAllocs()
	tb := New[StringKey, int](len(data) / 2)
	for i := range data {
		tb.Insert(StringKey(data[i]), i)
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _ = tb.Get(StringKey(data[i]))
		i++
		if i >= len(data) {
			i = 0
		}
	}
}

func BenchmarkTableInsert(b *testing.B) {
	benchmarkTableInsert(b, testData[:])
}

func BenchmarkTableInsertLarge(b *testing.B) {
	benchmarkTableInsert(b, testDataLarge[:])
}

func benchmarkTableInsert(b *testing.B, data []string) {
	b.ReportAllocs()
	tb := New[StringKey, int](64)
	for n := 0; n < b.N; n++ {
		if n%len(data) == 0 {
			tb.Clear()
		}
		tb.Insert(StringKey(data[n%len(data)]), n)
	}
}

func BenchmarkTableInsertRemove(b *testing.B) {
	b.ReportAllocs()
	tb := New[IntKey[int], int](1024)
	for n := 0; n < b.N; n++ {
		k := Int(n&1023 + 1)
		tb.Insert(k, n)
		tb.Remove(k)
	}
}
