package mazegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerace/dsu"
	"github.com/katalvlaran/mazerace/grid"
	"github.com/katalvlaran/mazerace/mazegen"
)

// generate builds a rows×cols maze with the given method and seed and
// runs it to completion, returning the finalized grid and the number of
// Step calls consumed.
func generate(t *testing.T, rows, cols int, method string, seed int64, opts ...mazegen.Option) (*grid.Grid, int) {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)

	all := append([]mazegen.Option{mazegen.WithMethod(method), mazegen.WithSeed(seed)}, opts...)
	gen, err := mazegen.New(g, all...)
	require.NoError(t, err)

	calls := 0
	for {
		calls++
		if gen.Step() {
			break
		}
		require.Less(t, calls, 100000, "generation did not terminate")
	}
	require.True(t, gen.Done())

	return g, calls
}

// snapshot renders the internal matrix as text for bit-identity checks.
func snapshot(g *grid.Grid) string {
	var b strings.Builder
	for r := 0; r < g.InternalRows(); r++ {
		for c := 0; c < g.InternalCols(); c++ {
			if g.IsPassage(r, c) {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// assertPerfectMaze checks the generation correctness invariant: every
// cell center carved, exactly cells−1 carved cell-to-cell edges (no
// cycles), and one union-find component (fully connected).
func assertPerfectMaze(t *testing.T, g *grid.Grid) {
	t.Helper()
	cells := g.CellCoords()
	for _, c := range cells {
		require.True(t, g.IsPassage(c.R, c.C), "cell center %v must be carved", c)
	}

	u, err := dsu.New(len(cells))
	require.NoError(t, err)
	edges := 0
	for _, c := range cells {
		for _, n := range g.NeighborsAt(c.R, c.C, 2) {
			if !c.Less(n) {
				continue // count each undirected edge once
			}
			if g.IsPassage((c.R+n.R)/2, (c.C+n.C)/2) {
				edges++
				u.Union(g.CellID(c), g.CellID(n))
			}
		}
	}
	assert.Equal(t, len(cells)-1, edges, "perfect maze has exactly cells-1 edges")
	assert.Equal(t, 1, u.Count(), "perfect maze is fully connected")
}

// TestNew_Errors verifies construction validation for both methods.
func TestNew_Errors(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	_, err = mazegen.New(nil, mazegen.WithMethod(mazegen.MethodPrim))
	assert.ErrorIs(t, err, mazegen.ErrNilGrid)

	_, err = mazegen.New(g, mazegen.WithMethod("wilson"))
	assert.ErrorIs(t, err, mazegen.ErrUnknownMethod)

	_, err = mazegen.New(g, mazegen.WithMethod(mazegen.MethodKruskal), mazegen.WithBatchSize(0))
	assert.ErrorIs(t, err, mazegen.ErrBadBatchSize)

	g.Finalize()
	_, err = mazegen.New(g, mazegen.WithMethod(mazegen.MethodPrim))
	assert.ErrorIs(t, err, mazegen.ErrFinalizedGrid)
}

// TestDeterminism asserts bit-identical grids for identical seeds, for
// both generators — the reproducibility contract scoring depends on.
func TestDeterminism(t *testing.T) {
	for _, method := range []string{mazegen.MethodPrim, mazegen.MethodKruskal} {
		t.Run(method, func(t *testing.T) {
			for _, seed := range []int64{0, 1, 42, 987654321} {
				a, _ := generate(t, 8, 8, method, seed)
				b, _ := generate(t, 8, 8, method, seed)
				assert.Equal(t, snapshot(a), snapshot(b), "seed %d must reproduce bit-identically", seed)
			}
		})
	}
}

// TestPerfectMaze asserts the acyclic + fully-connected invariant over a
// spread of shapes and seeds, for both generators.
func TestPerfectMaze(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {5, 5}, {7, 4}, {12, 9}}
	for _, method := range []string{mazegen.MethodPrim, mazegen.MethodKruskal} {
		t.Run(method, func(t *testing.T) {
			for _, sh := range shapes {
				for _, seed := range []int64{1, 42, 7} {
					g, _ := generate(t, sh[0], sh[1], method, seed)
					assertPerfectMaze(t, g)
					assert.True(t, g.Finalized(), "generator must finalize the grid")
					assert.True(t, g.IsPassage(g.Start().R, g.Start().C))
					assert.True(t, g.IsPassage(g.Goal().R, g.Goal().C))
				}
			}
		})
	}
}

// TestPrim_Scenario5x5Seed42 is the concrete scenario: a 5×5 logical
// grid (11×11 internal), seed 42, Prim. Generation terminates within
// rows·cols Step calls.
func TestPrim_Scenario5x5Seed42(t *testing.T) {
	g, calls := generate(t, 5, 5, mazegen.MethodPrim, 42)

	assert.LessOrEqual(t, calls, 25, "5x5 Prim must finish within rows*cols steps")
	assert.Equal(t, 11, g.InternalRows())
	assert.Equal(t, 11, g.InternalCols())
	assert.Equal(t, grid.Coord{R: 1, C: 1}, g.Start())
	assert.Equal(t, grid.Coord{R: 9, C: 9}, g.Goal())
	assertPerfectMaze(t, g)
}

// TestKruskal_BatchBoundary is the batch-boundary scenario: a 2×4 grid
// has exactly 2·2·4−2−4 = 10 cell-pair edges; with batch size 8 the
// second Step call drains the list and reports done.
func TestKruskal_BatchBoundary(t *testing.T) {
	g, err := grid.New(2, 4)
	require.NoError(t, err)

	gen, err := mazegen.New(g,
		mazegen.WithMethod(mazegen.MethodKruskal),
		mazegen.WithBatchSize(8),
	)
	require.NoError(t, err)

	assert.False(t, gen.Step(), "first call processes 8 of 10 edges")
	assert.False(t, gen.Done())
	assert.True(t, gen.Step(), "second call drains the list and reports done")
	assert.True(t, gen.Done())
	assertPerfectMaze(t, g)
}

// TestKruskal_SingleComponent asserts the union-find ends as one set
// spanning all logical cells.
func TestKruskal_SingleComponent(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)

	gen, err := mazegen.New(g, mazegen.WithMethod(mazegen.MethodKruskal), mazegen.WithSeed(42))
	require.NoError(t, err)
	for !gen.Step() {
	}

	counter, ok := gen.(interface{ Components() int })
	require.True(t, ok)
	assert.Equal(t, 1, counter.Components())
}

// TestStepAfterDone verifies generators stay done and leave the grid
// untouched once complete.
func TestStepAfterDone(t *testing.T) {
	for _, method := range []string{mazegen.MethodPrim, mazegen.MethodKruskal} {
		t.Run(method, func(t *testing.T) {
			g := mustGrid(t, 4, 4)
			gen, err := mazegen.New(g, mazegen.WithMethod(method), mazegen.WithSeed(42))
			require.NoError(t, err)
			for !gen.Step() {
			}
			before := snapshot(g)

			for i := 0; i < 5; i++ {
				assert.True(t, gen.Step(), "Step after done remains done")
			}
			assert.True(t, gen.Done())
			assert.Equal(t, before, snapshot(g))
		})
	}
}

// TestChangedTracking verifies the dirty set reports carves incrementally.
func TestChangedTracking(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	gen, err := mazegen.New(g, mazegen.WithMethod(mazegen.MethodPrim), mazegen.WithSeed(42))
	require.NoError(t, err)

	// The Prim constructor already carved the start cell.
	first := g.Changed()
	assert.Equal(t, []grid.Coord{g.Start()}, first)

	total := len(first)
	for !gen.Step() {
		total += len(g.Changed())
	}
	total += len(g.Changed())

	// Every passage was reported exactly once across the drains.
	passages := 0
	for r := 0; r < g.InternalRows(); r++ {
		for c := 0; c < g.InternalCols(); c++ {
			if g.IsPassage(r, c) {
				passages++
			}
		}
	}
	assert.Equal(t, passages, total)
}

// TestOneByOne covers the degenerate single-cell maze for both methods.
func TestOneByOne(t *testing.T) {
	for _, method := range []string{mazegen.MethodPrim, mazegen.MethodKruskal} {
		t.Run(method, func(t *testing.T) {
			g, calls := generate(t, 1, 1, method, 42)
			assert.Equal(t, 1, calls, "no edges to process: first Step reports done")
			assert.Equal(t, g.Start(), g.Goal())
			assert.True(t, g.IsPassage(1, 1))
		})
	}
}

func mustGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)

	return g
}
