package data

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
)

// BenchmarkLoadCatalog benchmarks a full parallel load of the sample data dir.
func BenchmarkLoadCatalog(b *testing.B) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	dir := filepath.Join("..", "..", "data")
	ctx := context.Background()

	b.ReportAllocs()
	for range b.N {
		if _, err := LoadCatalog(ctx, dir); err != nil {
			b.Fatalf("LoadCatalog: %v", err)
		}
	}
}

// BenchmarkRepairPrice benchmarks the band lookup on a small price list.
func BenchmarkRepairPrice(b *testing.B) {
	c := NewCatalog()
	c.SetRepairPrices([]RepairPrice{
		{MaxDurabilityRate: 0.25, RequireGold: 80},
		{MaxDurabilityRate: 0.75, RequireGold: 40},
		{MaxDurabilityRate: 1, RequireGold: 10},
	})

	b.ReportAllocs()
	for i := range b.N {
		_, _ = c.RepairPrice(float64(i%100) / 100)
	}
}
