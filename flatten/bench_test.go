package flatten_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ndflat/flatten"
	"github.com/katalvlaran/ndflat/nested"
)

// benchShapes cover a wide 2-D input and a deep 5-D input of similar size.
var benchShapes = [][]int{{256, 256}, {8, 8, 8, 8, 16}}

// sink to defeat dead-code elimination
var sinkF []float64

func BenchmarkFlattenLexicographic(b *testing.B) {
	for _, shape := range benchShapes {
		x := nested.Filled(1.0, shape)
		b.Run(fmt.Sprint(shape), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkF = flatten.Flatten(x, shape, false)
			}
		})
	}
}

func BenchmarkFlattenColexicographic(b *testing.B) {
	for _, shape := range benchShapes {
		x := nested.Filled(1.0, shape)
		for _, st := range strategies {
			b.Run(fmt.Sprintf("%v/%s", shape, st), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					sinkF = flatten.Flatten(x, shape, true, flatten.WithStrategy(st))
				}
			})
		}
	}
}

func BenchmarkAssign(b *testing.B) {
	shape := benchShapes[0]
	x := nested.Filled(1.0, shape)
	out := make([]float64, shape[0]*shape[1])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = flatten.Assign(x, shape, true, out, 1, 0)
	}
}
