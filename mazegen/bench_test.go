package mazegen_test

import (
	"testing"

	"github.com/katalvlaran/mazerace/grid"
	"github.com/katalvlaran/mazerace/mazegen"
)

// benchGenerate runs one full generation of a rows×cols maze.
func benchGenerate(b *testing.B, rows, cols int, method string) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, err := grid.New(rows, cols)
		if err != nil {
			b.Fatal(err)
		}
		gen, err := mazegen.New(g, mazegen.WithMethod(method), mazegen.WithSeed(42))
		if err != nil {
			b.Fatal(err)
		}
		for !gen.Step() {
		}
	}
}

func BenchmarkPrim_20x20(b *testing.B)    { benchGenerate(b, 20, 20, mazegen.MethodPrim) }
func BenchmarkPrim_50x50(b *testing.B)    { benchGenerate(b, 50, 50, mazegen.MethodPrim) }
func BenchmarkKruskal_20x20(b *testing.B) { benchGenerate(b, 20, 20, mazegen.MethodKruskal) }
func BenchmarkKruskal_50x50(b *testing.B) { benchGenerate(b, 50, 50, mazegen.MethodKruskal) }
