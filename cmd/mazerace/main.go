// Command mazerace generates a maze and races the four search
// algorithms over it, reporting per-algorithm metrics and optimality.
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazerace/grid"
	"github.com/katalvlaran/mazerace/mazegen"
	"github.com/katalvlaran/mazerace/race"
	"github.com/katalvlaran/mazerace/search"
)

var (
	rows      int
	cols      int
	seed      int64
	method    string
	batchSize int
	maxSteps  int
	verbose   bool
	printMaze bool
	algoNames []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "mazerace",
		Short:        "Generate a maze and race BFS, DFS, Dijkstra and A* over it.",
		Args:         cobra.NoArgs,
		RunE:         runRace,
		SilenceUsage: true,
	}
	rootCmd.Flags().IntVar(&rows, "rows", 20, "logical maze rows")
	rootCmd.Flags().IntVar(&cols, "cols", 20, "logical maze columns")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 = fixed default)")
	rootCmd.Flags().StringVar(&method, "generator", mazegen.MethodPrim, "maze generator: prim or kruskal")
	rootCmd.Flags().IntVar(&batchSize, "batch", mazegen.DefaultBatchSize, "kruskal edges carved per generation step")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "race step budget (0 = derived from maze size)")
	rootCmd.Flags().StringSliceVar(&algoNames, "algos", []string{"BFS", "DFS", "Dijkstra", "A*"}, "algorithms to race")
	rootCmd.Flags().BoolVar(&printMaze, "print", false, "print the maze and the Dijkstra path as ASCII")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRace(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	g, err := grid.New(rows, cols)
	if err != nil {
		return err
	}

	gen, err := mazegen.New(g,
		mazegen.WithMethod(method),
		mazegen.WithSeed(seed),
		mazegen.WithBatchSize(batchSize),
	)
	if err != nil {
		return err
	}

	log.Debugf("generating %dx%d maze with %s, seed=%d", rows, cols, method, seed)
	genSteps := 0
	for !gen.Step() {
		genSteps++
	}
	log.Debugf("generation finished in %d steps", genSteps)

	algos, err := buildAlgorithms(g)
	if err != nil {
		return err
	}

	racer, err := race.NewRacer(algos...)
	if err != nil {
		return err
	}

	budget := maxSteps
	if budget == 0 {
		// Each pass expands one node per algorithm; the internal cell
		// count plus stale heap pops bounds the longest search.
		budget = g.InternalRows() * g.InternalCols() * 8
	}
	if err = racer.Run(budget); err != nil {
		return err
	}

	for _, rep := range racer.Report(g) {
		log.Infof("%-8s explored=%5d path=%4d runtime=%8.3fms optimal=%-5v valid=%v",
			rep.Name, rep.Metrics.Explored, rep.Metrics.PathLen,
			rep.Metrics.RuntimeMS, rep.Optimal, rep.ValidPath)
	}

	if printMaze {
		fmt.Print(renderASCII(g, dijkstraPath(algos)))
	}

	return nil
}

// buildAlgorithms constructs the requested variants over g, in the
// order given on the command line.
func buildAlgorithms(g *grid.Grid) ([]search.Algorithm, error) {
	algos := make([]search.Algorithm, 0, len(algoNames))
	for _, name := range algoNames {
		a, err := search.New(g, search.Algo(name))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
		algos = append(algos, a)
	}

	return algos, nil
}

// dijkstraPath returns the ground-truth path if Dijkstra raced, nil otherwise.
func dijkstraPath(algos []search.Algorithm) []grid.Coord {
	for _, a := range algos {
		if a.Name() == string(search.AlgoDijkstra) {
			return a.Path()
		}
	}

	return nil
}

// renderASCII draws the internal grid: '#' walls, spaces for passages,
// '*' along path, 'S'/'G' endpoints.
func renderASCII(g *grid.Grid, path []grid.Coord) string {
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < g.InternalRows(); r++ {
		for c := 0; c < g.InternalCols(); c++ {
			cur := grid.Coord{R: r, C: c}
			switch {
			case cur == g.Start():
				b.WriteByte('S')
			case cur == g.Goal():
				b.WriteByte('G')
			case onPath[cur]:
				b.WriteByte('*')
			case g.IsPassage(r, c):
				b.WriteByte(' ')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
