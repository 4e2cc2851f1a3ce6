// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ModelType tags an evaluation result with the model variant that produced it.
type ModelType string

const (
	ModelFineTuned ModelType = "fine_tuned"
	ModelBase      ModelType = "base_model"
)

// TestCase is one benchmark item: a question paired with the keywords a good
// answer is expected to contain. Test cases are static; the evaluator never
// mutates them.
type TestCase struct {
	// Category groups related test cases for per-category reporting.
	Category string `json:"category" yaml:"category"`

	// Question is the instruction sent to the model.
	Question string `json:"question" yaml:"question"`

	// ExpectedKeywords are scored by case-insensitive substring presence.
	// Order is irrelevant to scoring but preserved for reporting.
	ExpectedKeywords []string `json:"expected_keywords" yaml:"expected_keywords"`

	// Context is the background text embedded in the prompt.
	Context string `json:"context" yaml:"context"`

	// Difficulty is a free-form label (easy, medium, hard).
	Difficulty string `json:"difficulty" yaml:"difficulty"`
}

// EvaluationResult combines a test case with a generated response and its
// keyword-match score.
type EvaluationResult struct {
	Category         string    `json:"category" yaml:"category"`
	Question         string    `json:"question" yaml:"question"`
	Response         string    `json:"response" yaml:"response"`
	ExpectedKeywords []string  `json:"expected_keywords" yaml:"expected_keywords"`
	MatchedKeywords  []string  `json:"matched_keywords" yaml:"matched_keywords"`
	Matches          int       `json:"matches" yaml:"matches"`
	TotalKeywords    int       `json:"total_keywords" yaml:"total_keywords"`

	// Score is matches/total in [0,1], defined as 0 for an empty keyword list.
	Score float64 `json:"score" yaml:"score"`

	Difficulty string    `json:"difficulty" yaml:"difficulty"`
	ModelType  ModelType `json:"model_type" yaml:"model_type"`
}

// ModelSummary aggregates scores for one model variant across a full pass.
type ModelSummary struct {
	AverageScore   float64            `json:"average_score" yaml:"average_score"`
	TotalMatches   int                `json:"total_matches" yaml:"total_matches"`
	PerfectScores  int                `json:"perfect_scores" yaml:"perfect_scores"`
	ZeroScores     int                `json:"zero_scores" yaml:"zero_scores"`
	CategoryScores map[string]float64 `json:"category_scores" yaml:"category_scores"`
}

// Improvement compares the fine-tuned pass against the base-model pass.
type Improvement struct {
	// ScoreImprovement is the fine-tuned mean minus the base mean.
	ScoreImprovement float64 `json:"score_improvement" yaml:"score_improvement"`

	// PercentageImprovement is the delta relative to the base mean, times 100.
	// Defined as 0 when the base mean is exactly 0.
	PercentageImprovement float64 `json:"percentage_improvement" yaml:"percentage_improvement"`

	// BetterPerformance is true when the fine-tuned mean strictly exceeds the base mean.
	BetterPerformance bool `json:"better_performance" yaml:"better_performance"`
}

// Summary holds per-model aggregates and the improvement comparison.
// BaseModel and Improvement are nil when the base-model pass was skipped.
type Summary struct {
	FineTuned   ModelSummary  `json:"fine_tuned" yaml:"fine_tuned"`
	BaseModel   *ModelSummary `json:"base_model,omitempty" yaml:"base_model,omitempty"`
	Improvement *Improvement  `json:"improvement,omitempty" yaml:"improvement,omitempty"`
}

// EvaluationResults is the full output of one evaluation run, serialized to
// the results JSON file.
type EvaluationResults struct {
	FineTuned []EvaluationResult `json:"fine_tuned" yaml:"fine_tuned"`
	BaseModel []EvaluationResult `json:"base_model" yaml:"base_model"`
	Summary   Summary            `json:"summary" yaml:"summary"`
}
