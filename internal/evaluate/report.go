// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/memory-insights/pkg/types"
)

const previewLen = 100

// WriteReport prints the human-readable evaluation report: overall averages,
// perfect-score counts, per-category comparison, and one block per test case
// with both models' scores and a response preview. Base-model lines are
// omitted when the comparison pass was skipped.
func WriteReport(w io.Writer, results *types.EvaluationResults) {
	rule := strings.Repeat("=", 80)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "MEMORY INSIGHTS MODEL EVALUATION REPORT")
	fmt.Fprintln(w, rule)

	summary := results.Summary

	fmt.Fprintln(w, "\nOVERALL PERFORMANCE:")
	fmt.Fprintf(w, "   Fine-tuned Model Average Score: %.3f\n", summary.FineTuned.AverageScore)
	if summary.BaseModel != nil {
		fmt.Fprintf(w, "   Base Model Average Score:       %.3f\n", summary.BaseModel.AverageScore)
	}
	if summary.Improvement != nil {
		fmt.Fprintf(w, "   Improvement:                    %+.3f\n", summary.Improvement.ScoreImprovement)
		fmt.Fprintf(w, "   Percentage Improvement:         %+.1f%%\n", summary.Improvement.PercentageImprovement)
	}

	fmt.Fprintln(w, "\nPERFECT SCORES:")
	fmt.Fprintf(w, "   Fine-tuned Model: %d/%d\n", summary.FineTuned.PerfectScores, len(results.FineTuned))
	if summary.BaseModel != nil {
		fmt.Fprintf(w, "   Base Model:       %d/%d\n", summary.BaseModel.PerfectScores, len(results.BaseModel))
	}

	fmt.Fprintln(w, "\nCATEGORY PERFORMANCE:")
	for _, cat := range CategoryOrder(results.FineTuned) {
		score := summary.FineTuned.CategoryScores[cat]
		if summary.BaseModel != nil {
			base := summary.BaseModel.CategoryScores[cat]
			fmt.Fprintf(w, "   %s: %.3f (vs %.3f, %+.3f)\n", cat, score, base, score-base)
		} else {
			fmt.Fprintf(w, "   %s: %.3f\n", cat, score)
		}
	}

	fmt.Fprintln(w, "\nDETAILED RESULTS:")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i, ft := range results.FineTuned {
		fmt.Fprintf(w, "\n%d. %s - %s\n", i+1, ft.Category, strings.ToUpper(ft.Difficulty))
		fmt.Fprintf(w, "   Question: %s\n", ft.Question)
		fmt.Fprintf(w, "   Fine-tuned Score: %.3f (%d/%d)\n", ft.Score, ft.Matches, ft.TotalKeywords)
		if i < len(results.BaseModel) {
			bm := results.BaseModel[i]
			fmt.Fprintf(w, "   Base Model Score: %.3f (%d/%d)\n", bm.Score, bm.Matches, bm.TotalKeywords)
		}
		fmt.Fprintf(w, "   Response: %s...\n", preview(ft.Response))
		if len(ft.MatchedKeywords) > 0 {
			fmt.Fprintf(w, "   Matched Keywords: %s\n", strings.Join(ft.MatchedKeywords, ", "))
		}
	}
}

// preview truncates a response to the first previewLen runes.
func preview(response string) string {
	runes := []rune(response)
	if len(runes) > previewLen {
		return string(runes[:previewLen])
	}
	return response
}
