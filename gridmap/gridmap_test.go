package gridmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridmap"
)

//----------------------------------------------------------------------------//
// New and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and negative inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int64
		err  error
	}{
		{"EmptyRows", [][]int64{}, gridmap.ErrEmptyGrid},
		{"EmptyCols", [][]int64{{}}, gridmap.ErrEmptyGrid},
		{"NonRectangular", [][]int64{{1, 2}, {3}}, gridmap.ErrNonRectangular},
		{"Negative", [][]int64{{1, 2}, {3, -4}}, gridmap.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.New(tc.grid)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, gridmap.ErrMalformedGrid)
		})
	}
}

func TestNew_ErrorLocation(t *testing.T) {
	_, err := gridmap.New([][]int64{{1, 2}, {3, -4}})
	var mge *gridmap.MalformedGridError
	require.True(t, errors.As(err, &mge))
	assert.Equal(t, 1, mge.Row)
	assert.Equal(t, 1, mge.Col)
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int64{{1, 2}, {3, 4}}
	m, err := gridmap.New(values)
	require.NoError(t, err)
	values[1][1] = 99
	assert.Equal(t, int64(4), m.Cost(m.Target()))
}

func TestMap_Geometry(t *testing.T) {
	m, err := gridmap.New([][]int64{
		{5, 1, 7},
		{2, 0, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, 0, m.Start())
	assert.Equal(t, 5, m.Target())
	assert.Equal(t, int64(0), m.MinCost())
	assert.Equal(t, 4, m.Index(1, 1))

	row, col := m.Coordinate(5)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)

	assert.True(t, m.InBounds(0, 0))
	assert.True(t, m.InBounds(1, 2))
	for _, rc := range [][2]int{{-1, 0}, {0, 3}, {2, 0}, {0, -1}} {
		assert.False(t, m.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func TestAppendNeighbors(t *testing.T) {
	m, err := gridmap.New([][]int64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	cases := []struct {
		name string
		node int
		want []gridmap.Neighbor
	}{
		{"Corner", 0, []gridmap.Neighbor{{Dir: gridmap.Down, Node: 3}, {Dir: gridmap.Right, Node: 1}}},
		{"Center", 4, []gridmap.Neighbor{
			{Dir: gridmap.Up, Node: 1},
			{Dir: gridmap.Down, Node: 7},
			{Dir: gridmap.Left, Node: 3},
			{Dir: gridmap.Right, Node: 5},
		}},
		{"BottomEdge", 7, []gridmap.Neighbor{
			{Dir: gridmap.Up, Node: 4},
			{Dir: gridmap.Left, Node: 6},
			{Dir: gridmap.Right, Node: 8},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.AppendNeighbors(nil, tc.node)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAppendNeighbors_ReusesBuffer(t *testing.T) {
	m, err := gridmap.New([][]int64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	buf := make([]gridmap.Neighbor, 0, 4)
	got := m.AppendNeighbors(buf[:0], 0)
	require.Len(t, got, 2)
	assert.Same(t, &buf[:1][0], &got[0], "expected neighbors written into the caller's buffer")
}

func TestAppendNeighbors_SingleCell(t *testing.T) {
	m, err := gridmap.New([][]int64{{7}})
	require.NoError(t, err)
	assert.Empty(t, m.AppendNeighbors(nil, 0))
}

//----------------------------------------------------------------------------//
// Directions and heuristic
//----------------------------------------------------------------------------//

func TestDirection(t *testing.T) {
	cases := []struct {
		d        gridmap.Direction
		opposite gridmap.Direction
		glyph    string
		dr, dc   int
	}{
		{gridmap.Up, gridmap.Down, "^", -1, 0},
		{gridmap.Down, gridmap.Up, "v", 1, 0},
		{gridmap.Left, gridmap.Right, "<", 0, -1},
		{gridmap.Right, gridmap.Left, ">", 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.glyph, func(t *testing.T) {
			assert.Equal(t, tc.opposite, tc.d.Opposite())
			assert.Equal(t, tc.glyph, tc.d.String())
			dr, dc := tc.d.Delta()
			assert.Equal(t, tc.dr, dr)
			assert.Equal(t, tc.dc, dc)
		})
	}
}

func TestHeuristic(t *testing.T) {
	m, err := gridmap.New([][]int64{
		{9, 9, 9, 9},
		{9, 2, 9, 9},
		{9, 9, 9, 9},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), m.Manhattan(m.Start(), m.Target()))
	assert.Equal(t, int64(10), m.Heuristic(m.Start(), m.Target()))
	assert.Equal(t, int64(0), m.Heuristic(m.Target(), m.Target()))
	assert.Equal(t, int64(3), m.Manhattan(m.Target(), m.Index(1, 1)))
}

func TestHeuristic_ZeroCostCells(t *testing.T) {
	m, err := gridmap.New([][]int64{{0, 5}, {5, 5}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Heuristic(m.Start(), m.Target()))
}
