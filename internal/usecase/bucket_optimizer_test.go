package usecase

import (
	"testing"

	"roofquote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combinationTotals(picks []entities.BucketPick, variants []entities.Variant) (size, cost float64) {
	prices := map[float64]float64{}
	for _, v := range variants {
		prices[v.Size] = v.Price
	}
	for _, p := range picks {
		size += p.Size * float64(p.Quantity)
		cost += prices[p.Size] * float64(p.Quantity)
	}
	return size, cost
}

func TestOptimizeBuckets_EmptyInputs(t *testing.T) {
	assert.Empty(t, OptimizeBuckets(10, nil))
	assert.Empty(t, OptimizeBuckets(0, []entities.Variant{{Size: 15, Price: 39.99}}))
	assert.Empty(t, OptimizeBuckets(-3, []entities.Variant{{Size: 15, Price: 39.99}}))
}

func TestOptimizeBuckets_AlwaysCovers(t *testing.T) {
	variants := []entities.Variant{
		{Size: 15, Price: 39.99},
		{Size: 10, Price: 29.99},
		{Size: 5, Price: 15.99},
	}

	for _, needed := range []float64{0.5, 1, 4.99, 5, 7.3, 12, 22.5, 37, 61.17, 123} {
		picks := OptimizeBuckets(needed, variants)
		require.NotEmpty(t, picks, "needed=%v", needed)

		total, _ := combinationTotals(picks, variants)
		assert.GreaterOrEqual(t, total, needed, "needed=%v", needed)
		for _, p := range picks {
			assert.Positive(t, p.Quantity, "needed=%v", needed)
		}
	}
}

func TestOptimizeBuckets_DensityLimit(t *testing.T) {
	variants := []entities.Variant{
		{Size: 15, Price: 39.99},
		{Size: 10, Price: 29.99},
		{Size: 5, Price: 15.99},
	}

	for _, needed := range []float64{3, 18, 42, 97} {
		picks := OptimizeBuckets(needed, variants)
		for _, p := range picks {
			if p.Size == 15 {
				continue // largest size is never capped
			}
			assert.LessOrEqual(t, p.Quantity, DefaultDensityLimit, "needed=%v size=%v", needed, p.Size)
		}
	}
}

func TestOptimizeBuckets_PicksCheapestCoveringCombination(t *testing.T) {
	variants := []entities.Variant{
		{Size: 15, Price: 39.99},
		{Size: 10, Price: 29.99},
		{Size: 5, Price: 15.99},
	}

	picks := OptimizeBuckets(37, variants)
	total, cost := combinationTotals(picks, variants)

	require.GreaterOrEqual(t, total, 37.0)
	// 2x15 + 1x10 covers 40 for 109.97; in particular it must beat both
	// 3x15 (119.97) and 1x15 + 2x10 + 1x5 (115.96).
	assert.InDelta(t, 109.97, cost, 0.001)
	assert.ElementsMatch(t, []entities.BucketPick{
		{Size: 15, Quantity: 2},
		{Size: 10, Quantity: 1},
	}, picks)
}

func TestOptimizeBuckets_TieBreaksTowardSmallestVolume(t *testing.T) {
	// Both 1x10 and 2x5 cost 20 and cover 10; the scan must settle on the
	// first sufficient volume, and the cheapest exact cover wins.
	variants := []entities.Variant{
		{Size: 10, Price: 20},
		{Size: 5, Price: 10},
	}

	picks := OptimizeBuckets(7, variants)
	total, cost := combinationTotals(picks, variants)
	assert.GreaterOrEqual(t, total, 7.0)
	assert.InDelta(t, 20.0, cost, 0.001)
	assert.Equal(t, 10.0, total)
}

func TestOptimizeBuckets_SingleVariant(t *testing.T) {
	picks := OptimizeBuckets(32, []entities.Variant{{Size: 15, Price: 39.99}})
	require.Len(t, picks, 1)
	assert.Equal(t, entities.BucketPick{Size: 15, Quantity: 3}, picks[0])
}

func TestOptimizeBucketsWithLimit_RespectsCustomLimit(t *testing.T) {
	variants := []entities.Variant{
		{Size: 15, Price: 100},
		{Size: 5, Price: 10},
	}

	// With a generous limit the small cheap packs win.
	picks := OptimizeBucketsWithLimit(20, variants, 10)
	total, cost := combinationTotals(picks, variants)
	assert.Equal(t, 20.0, total)
	assert.InDelta(t, 40.0, cost, 0.001)

	// With limit 1 at most one small pack may be used.
	picks = OptimizeBucketsWithLimit(20, variants, 1)
	for _, p := range picks {
		if p.Size == 5 {
			assert.LessOrEqual(t, p.Quantity, 1)
		}
	}
	total, _ = combinationTotals(picks, variants)
	assert.GreaterOrEqual(t, total, 20.0)
}

func TestOptimizeBuckets_FractionalVolumes(t *testing.T) {
	variants := []entities.Variant{{Size: 0.5, Price: 7.5}, {Size: 1, Price: 12}}

	picks := OptimizeBuckets(0.45, variants)
	total, _ := combinationTotals(picks, variants)
	assert.GreaterOrEqual(t, total, 0.45)
}
