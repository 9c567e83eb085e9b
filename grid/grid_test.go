package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerace/grid"
)

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"NegativeRows", -1, 5},
		{"NegativeCols", 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols)
			assert.ErrorIs(t, err, grid.ErrBadDimensions)
		})
	}
}

// TestNew_Dimensions checks internal sizing and start/goal placement.
func TestNew_Dimensions(t *testing.T) {
	g, err := grid.New(5, 7)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, 11, g.InternalRows())
	assert.Equal(t, 15, g.InternalCols())
	assert.Equal(t, grid.Coord{R: 1, C: 1}, g.Start())
	assert.Equal(t, grid.Coord{R: 9, C: 13}, g.Goal())
	assert.False(t, g.Finalized())
}

// TestIsPassage_OutOfBounds verifies the neighbor-filter contract:
// out-of-bounds coordinates answer false instead of erroring.
func TestIsPassage_OutOfBounds(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	assert.False(t, g.IsPassage(-1, 0))
	assert.False(t, g.IsPassage(0, -1))
	assert.False(t, g.IsPassage(5, 0))
	assert.False(t, g.IsPassage(0, 5))
	// In bounds but still a wall on a fresh grid.
	assert.False(t, g.IsPassage(1, 1))
}

// TestNeighborsAt_FixedOrder asserts the up, right, down, left order at
// both steps — the sole source of tie-break determinism.
func TestNeighborsAt_FixedOrder(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	// Interior cell center (3,3): all four step-2 neighbors, in order.
	want2 := []grid.Coord{{R: 1, C: 3}, {R: 3, C: 5}, {R: 5, C: 3}, {R: 3, C: 1}}
	assert.Equal(t, want2, g.NeighborsAt(3, 3, 2))

	// Step 1 from the same position.
	want1 := []grid.Coord{{R: 2, C: 3}, {R: 3, C: 4}, {R: 4, C: 3}, {R: 3, C: 2}}
	assert.Equal(t, want1, g.NeighborsAt(3, 3, 1))

	// Corner cell center (1,1): up and left fall off the cell lattice.
	wantCorner := []grid.Coord{{R: 1, C: 3}, {R: 3, C: 1}}
	assert.Equal(t, wantCorner, g.NeighborsAt(1, 1, 2))
}

// TestCarvePassage covers midpoint carving, idempotence, and rejection
// of non-adjacent or non-center endpoints.
func TestCarvePassage(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	a, b := grid.Coord{R: 1, C: 1}, grid.Coord{R: 1, C: 3}
	require.NoError(t, g.CarvePassage(a, b))
	assert.True(t, g.IsPassage(1, 1))
	assert.True(t, g.IsPassage(1, 2), "midpoint wall must be carved")
	assert.True(t, g.IsPassage(1, 3))

	// Idempotent: re-carving is a no-op, not an error.
	require.NoError(t, g.CarvePassage(a, b))

	// Too far apart.
	assert.ErrorIs(t, g.CarvePassage(a, grid.Coord{R: 1, C: 5}), grid.ErrBadCarve)
	// Diagonal.
	assert.ErrorIs(t, g.CarvePassage(a, grid.Coord{R: 3, C: 3}), grid.ErrBadCarve)
	// Wall position as endpoint.
	assert.ErrorIs(t, g.CarvePassage(grid.Coord{R: 0, C: 1}, grid.Coord{R: 2, C: 1}), grid.ErrBadCarve)
}

// TestCarveCell verifies single-cell carving and its validation.
func TestCarveCell(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.CarveCell(grid.Coord{R: 1, C: 1}))
	assert.True(t, g.IsPassage(1, 1))
	// Idempotent.
	require.NoError(t, g.CarveCell(grid.Coord{R: 1, C: 1}))
	// Not a cell center: border and even positions.
	assert.ErrorIs(t, g.CarveCell(grid.Coord{R: 0, C: 1}), grid.ErrBadCarve)
	assert.ErrorIs(t, g.CarveCell(grid.Coord{R: 2, C: 2}), grid.ErrBadCarve)
}

// TestFinalize checks start/goal forcing and the read-only transition.
func TestFinalize(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	g.Finalize()
	assert.True(t, g.Finalized())
	assert.True(t, g.IsPassage(g.Start().R, g.Start().C))
	assert.True(t, g.IsPassage(g.Goal().R, g.Goal().C))

	// Mutations are rejected once finalized.
	assert.ErrorIs(t, g.CarveCell(grid.Coord{R: 1, C: 3}), grid.ErrFinalized)
	assert.ErrorIs(t, g.CarvePassage(grid.Coord{R: 1, C: 1}, grid.Coord{R: 1, C: 3}), grid.ErrFinalized)

	// Finalize is idempotent.
	g.Finalize()
	assert.True(t, g.Finalized())
}

// TestChanged verifies dirty-set accumulation, sorting, and draining.
func TestChanged(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.CarvePassage(grid.Coord{R: 3, C: 1}, grid.Coord{R: 1, C: 1}))
	changed := g.Changed()
	// Sorted by (row, col) regardless of carve argument order.
	assert.Equal(t, []grid.Coord{{R: 1, C: 1}, {R: 2, C: 1}, {R: 3, C: 1}}, changed)

	// Drained: a second query is empty.
	assert.Empty(t, g.Changed())

	// Re-carving already-carved cells stays clean.
	require.NoError(t, g.CarveCell(grid.Coord{R: 1, C: 1}))
	assert.Empty(t, g.Changed())
}

// TestCellCoords_AndID checks the row-major cell lattice and the dense
// id mapping used by Kruskal generation.
func TestCellCoords_AndID(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	coords := g.CellCoords()
	require.Len(t, coords, 6)
	assert.Equal(t, grid.Coord{R: 1, C: 1}, coords[0])
	assert.Equal(t, grid.Coord{R: 1, C: 5}, coords[2])
	assert.Equal(t, grid.Coord{R: 3, C: 1}, coords[3])

	for i, c := range coords {
		assert.Equal(t, i, g.CellID(c), "CellID must invert CellCoords order at %v", c)
		assert.True(t, g.IsCellCenter(c.R, c.C))
	}
	assert.False(t, g.IsCellCenter(0, 0))
	assert.False(t, g.IsCellCenter(1, 2))
}
