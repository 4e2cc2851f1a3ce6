// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import "github.com/pdiddy/memory-insights/pkg/types"

// summarize computes per-model aggregates and, when a base-model pass ran,
// the improvement comparison.
func summarize(results *types.EvaluationResults) types.Summary {
	summary := types.Summary{
		FineTuned: summarizeModel(results.FineTuned),
	}

	if len(results.BaseModel) > 0 {
		base := summarizeModel(results.BaseModel)
		summary.BaseModel = &base
		improvement := computeImprovement(summary.FineTuned, base)
		summary.Improvement = &improvement
	}

	return summary
}

// summarizeModel aggregates one pass: mean score, raw match total, and the
// counts of perfect (1.0) and zero (0.0) results, plus per-category means.
func summarizeModel(results []types.EvaluationResult) types.ModelSummary {
	s := types.ModelSummary{
		CategoryScores: categoryScores(results),
	}

	if len(results) == 0 {
		return s
	}

	var total float64
	for _, r := range results {
		total += r.Score
		s.TotalMatches += r.Matches
		if r.Score == 1.0 {
			s.PerfectScores++
		}
		if r.Score == 0.0 {
			s.ZeroScores++
		}
	}
	s.AverageScore = total / float64(len(results))

	return s
}

// categoryScores computes the mean score per category. Grouping is
// order-independent; CategoryOrder recovers first-seen order for reporting.
func categoryScores(results []types.EvaluationResult) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range results {
		sums[r.Category] += r.Score
		counts[r.Category]++
	}

	scores := make(map[string]float64, len(sums))
	for cat, sum := range sums {
		scores[cat] = sum / float64(counts[cat])
	}
	return scores
}

// computeImprovement derives the fine-tuned-vs-base delta. The percentage is
// relative to the base mean and defined as 0 when the base mean is exactly 0.
func computeImprovement(ft, base types.ModelSummary) types.Improvement {
	delta := ft.AverageScore - base.AverageScore

	pct := 0.0
	if base.AverageScore > 0 {
		pct = delta / base.AverageScore * 100
	}

	return types.Improvement{
		ScoreImprovement:      delta,
		PercentageImprovement: pct,
		BetterPerformance:     ft.AverageScore > base.AverageScore,
	}
}

// CategoryOrder returns the categories in order of first appearance.
func CategoryOrder(results []types.EvaluationResult) []string {
	seen := make(map[string]bool)
	var order []string
	for _, r := range results {
		if !seen[r.Category] {
			seen[r.Category] = true
			order = append(order, r.Category)
		}
	}
	return order
}
