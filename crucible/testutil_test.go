package crucible_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridmap"
)

// exampleGrid is the 13×13 heat map used by the reference scenarios.
var exampleGrid = []string{
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
}

// corridorGrid punishes every lateral move, forcing long straight runs.
var corridorGrid = []string{
	"111111111111",
	"999999999991",
	"999999999991",
	"999999999991",
	"999999999991",
}

func mustGrid(t testing.TB, rows ...string) *gridmap.Map {
	t.Helper()
	m, err := gridmap.ParseLines(rows)
	require.NoError(t, err)
	return m
}

// randomGrid builds a deterministic w×h grid with costs in [0, maxCost].
// Policy: seed==0 is replaced by 1 so the zero value stays reproducible.
func randomGrid(t testing.TB, seed int64, w, h int, maxCost int64) *gridmap.Map {
	t.Helper()
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int64, h)
	for y := range values {
		row := make([]int64, w)
		for x := range row {
			row[x] = rng.Int63n(maxCost + 1)
		}
		values[y] = row
	}
	m, err := gridmap.New(values)
	require.NoError(t, err)
	return m
}
