package crucible_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridmap"
)

// ExampleMinimumCost routes across a heat map under both run rules.
func ExampleMinimumCost() {
	m, err := gridmap.ParseLines([]string{
		"2413432311323",
		"3215453535623",
		"3255245654254",
		"3446585845452",
		"4546657867536",
		"1438598798454",
		"4457876987766",
		"3637877979653",
		"4654967986887",
		"4564679986453",
		"1224686865563",
		"2546548887735",
		"4322674655533",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, rule := range []crucible.Rule{crucible.BasicRule(), crucible.UltraRule()} {
		cost, err := crucible.MinimumCost(m, crucible.WithRule(rule))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%v: %d\n", rule, cost)
	}

	// Output:
	// run[1..3]: 102
	// run[4..10]: 94
}

// ExampleFrontier_Merge shows dominated histories being rejected and swept.
func ExampleFrontier_Merge() {
	f := crucible.NewFrontier(crucible.BasicRule(), true)
	right := func(run int) crucible.History { return crucible.History{Dir: gridmap.Right, Run: run} }

	fmt.Println(f.Merge(right(2), 5)) // new
	fmt.Println(f.Merge(right(3), 5)) // fewer options, same cost
	fmt.Println(f.Merge(right(1), 5)) // more options, same cost: replaces right×2
	fmt.Println(f.Entries())

	// Output:
	// true
	// false
	// true
	// [{>×1 5}]
}
