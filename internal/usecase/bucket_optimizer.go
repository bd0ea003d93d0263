package usecase

import (
	"math"
	"sort"

	"roofquote/internal/domain/entities"
)

// DefaultDensityLimit caps how many packs of any non-largest size one
// combination may use. Without the cap the optimizer can drift into
// many-small-pack solutions that are cheap on paper but unreasonable to
// apply. The largest pack size is never capped.
const DefaultDensityLimit = 3

// volumeScale discretizes volumes to hundredths so the DP never compares
// drifting floats.
const volumeScale = 100

// OptimizeBuckets finds a minimum-cost multiset of packs whose total size
// covers volumeNeeded, under the default density limit.
func OptimizeBuckets(volumeNeeded float64, variants []entities.Variant) []entities.BucketPick {
	return OptimizeBucketsWithLimit(volumeNeeded, variants, DefaultDensityLimit)
}

// OptimizeBucketsWithLimit is OptimizeBuckets with an explicit density
// limit.
//
// The table is a layered bounded knapsack over discretized volume: one layer
// per variant, largest size first. Each layer records, per reachable
// discrete volume, how many packs of that variant were taken and which
// volume the state was reached from, so combinations are reconstructed by
// backtracking instead of carrying a count vector per state. The volume axis
// is capped at ceil(V*100) plus the largest pack, which guarantees at least
// one feasible overshoot state.
func OptimizeBucketsWithLimit(volumeNeeded float64, variants []entities.Variant, densityLimit int) []entities.BucketPick {
	if volumeNeeded <= 0 || len(variants) == 0 {
		return []entities.BucketPick{}
	}
	if densityLimit < 1 {
		densityLimit = 1
	}

	sorted := append([]entities.Variant{}, variants...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })

	target := int(math.Ceil(volumeNeeded * volumeScale))
	largest := int(math.Round(sorted[0].Size * volumeScale))
	if largest <= 0 {
		return []entities.BucketPick{}
	}
	cap := target + largest

	const inf = math.MaxFloat64
	cost := make([]float64, cap+1)
	for i := range cost {
		cost[i] = inf
	}
	cost[0] = 0

	// Per layer: packs taken at each volume and the volume before this layer.
	taken := make([][]int, len(sorted))
	from := make([][]int, len(sorted))

	for i, v := range sorted {
		size := int(math.Round(v.Size * volumeScale))
		maxUses := densityLimit
		if i == 0 {
			// The largest variant is unconstrained; cap/size+1 uses always
			// suffice to overshoot.
			maxUses = cap/size + 1
		}

		layerCost := make([]float64, cap+1)
		copy(layerCost, cost)
		layerTaken := make([]int, cap+1)
		layerFrom := make([]int, cap+1)
		for vol := range layerFrom {
			layerFrom[vol] = vol
		}

		for c := 1; c <= maxUses; c++ {
			add := c * size
			if add > cap {
				break
			}
			price := float64(c) * v.Price
			for vol := add; vol <= cap; vol++ {
				if cost[vol-add] == inf {
					continue
				}
				if next := cost[vol-add] + price; next < layerCost[vol] {
					layerCost[vol] = next
					layerTaken[vol] = c
					layerFrom[vol] = vol - add
				}
			}
		}

		cost = layerCost
		taken[i] = layerTaken
		from[i] = layerFrom
	}

	// First strictly-better state wins, so ties break toward the smallest
	// sufficient volume.
	best := -1
	bestCost := inf
	for vol := target; vol <= cap; vol++ {
		if cost[vol] < bestCost {
			bestCost = cost[vol]
			best = vol
		}
	}
	if best < 0 {
		return []entities.BucketPick{}
	}

	counts := make([]int, len(sorted))
	vol := best
	for i := len(sorted) - 1; i >= 0; i-- {
		counts[i] = taken[i][vol]
		vol = from[i][vol]
	}

	picks := make([]entities.BucketPick, 0, len(sorted))
	for i, v := range sorted {
		if counts[i] > 0 {
			picks = append(picks, entities.BucketPick{Size: v.Size, Quantity: counts[i]})
		}
	}
	return picks
}
