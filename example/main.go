package main

import (
	"fmt"
	"log"

	"github.com/llxisdsh/tiermap"
)

var numbers = tiermap.MustBuildFrozen(5, []tiermap.Pair[tiermap.IntKey[int], string]{
	{Key: tiermap.Int(1), Value: "one"},
	{Key: tiermap.Int(2), Value: "two"},
	{Key: tiermap.Int(3), Value: "three"},
})

func main() {
	table := tiermap.New[tiermap.IntKey[int], string](2,
		tiermap.WithGrowHook(func(e tiermap.GrowEvent) {
			log.Printf("growing: overflow %d -> %d slots, %d entries moved",
				e.OldOverflowSize, e.NewOverflowSize, e.Entries)
		}),
	)

	words := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for i, w := range words {
		table.Insert(tiermap.Int(i+1), w)
	}

	for i := range words {
		v, ok := table.Get(tiermap.Int(i + 1))
		if !ok {
			log.Fatalf("key %d not found", i+1)
		}
		fmt.Printf("%d => %s\n", i+1, v)
	}

	for _, k := range []int{2, 3, 4} {
		if !table.Remove(tiermap.Int(k)) {
			log.Fatalf("failed to remove key %d", k)
		}
	}
	fmt.Print(table.Stats().ToString())

	for k, v := range numbers.All() {
		fmt.Printf("frozen %d => %s\n", k.Value, v)
	}
}
