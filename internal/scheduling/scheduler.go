package scheduling

import (
	"sort"

	"cpr/internal/domain"
)

// Scheduler partitions weighted specs into buckets, one per worker.
type Scheduler interface {
	Schedule(specs []domain.WeightedSpec, buckets int) []domain.Bucket
}

// WeightedScheduler balances buckets with the greedy
// longest-processing-time-first heuristic: place the heaviest remaining
// spec into the currently lightest bucket. Deterministic for a stable
// input order; ties on weight keep input order, ties on bucket totals
// go to the lowest index.
type WeightedScheduler struct{}

// NewWeightedScheduler creates a new WeightedScheduler
func NewWeightedScheduler() *WeightedScheduler {
	return &WeightedScheduler{}
}

// Schedule distributes specs into the given number of buckets. Some
// buckets may come out empty when there are fewer specs than buckets.
func (s *WeightedScheduler) Schedule(specs []domain.WeightedSpec, buckets int) []domain.Bucket {
	if buckets < 1 {
		buckets = 1
	}

	sorted := make([]domain.WeightedSpec, len(specs))
	copy(sorted, specs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	out := make([]domain.Bucket, buckets)
	for _, spec := range sorted {
		min := 0
		for i := 1; i < buckets; i++ {
			if out[i].Weight < out[min].Weight {
				min = i
			}
		}
		out[min].Specs = append(out[min].Specs, spec.Path)
		out[min].Weight += spec.Weight
	}

	return out
}
