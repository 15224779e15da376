package rut_test

import (
	"testing"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func BenchmarkChecksum(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = rut.ChecksumByte(22605071)
	}
}

func BenchmarkClean(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = rut.Clean("22.605.071-k")
	}
}

func BenchmarkValidate(b *testing.B) {
	b.Run("single", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = rut.Validate("22.605.071-k")
		}
	})

	b.Run("batch", func(b *testing.B) {
		values, err := rut.NewGenerator(rut.WithSeed(1, 1)).GenerateStrings(100, rut.FormatStrict)
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = rut.Validate(values)
		}
	})
}

func BenchmarkRUT_Strict(b *testing.B) {
	r := rut.MustParse("22605071-K")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Strict()
	}
}

func BenchmarkMaker_MakeValid(b *testing.B) {
	m := rut.NewMaker()
	inputs := []any{"24700909-4", "garbage", "22.605.071-k", "24700909-5"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.MakeValid(inputs...)
	}
}

func BenchmarkGenerator_Generate(b *testing.B) {
	g := rut.NewGenerator(rut.WithoutDuplicates())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(100); err != nil {
			b.Fatal(err)
		}
	}
}
