package oracle_test

import (
	"testing"

	"github.com/katalvlaran/rewind/oracle"
)

// benchmarkTabulate fills a fresh table of size (n, k) on every iteration.
func benchmarkTabulate(b *testing.B, n, k int) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		o := oracle.New(oracle.WithPrealloc(n, k))
		if err := o.Tabulate(n, k); err != nil {
			b.Fatalf("Tabulate failed: %v", err)
		}
	}
}

// BenchmarkTabulate_256x4 is a small table.
func BenchmarkTabulate_256x4(b *testing.B) { benchmarkTabulate(b, 256, 4) }

// BenchmarkTabulate_1024x5 is the default grid of the driver.
func BenchmarkTabulate_1024x5(b *testing.B) { benchmarkTabulate(b, 1024, 5) }

// BenchmarkT_Warm measures a lookup in an already filled table.
func BenchmarkT_Warm(b *testing.B) {
	o := oracle.New()
	if err := o.Tabulate(512, 6); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := o.T(512, 6); err != nil {
			b.Fatal(err)
		}
	}
}
