package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/memory-insights/pkg/types"
)

// mockGenerator returns canned responses keyed by model identifier.
type mockGenerator struct {
	responses map[string]string
	err       error
	calls     int
}

func (m *mockGenerator) Generate(_ context.Context, model, _ string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.responses[model], nil
}

func testSuiteFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	content := `tests:
  - category: Commands
    question: How do I check migration status?
    expected_keywords: ["prisma migrate status", "npx"]
    context: Database migration management
    difficulty: easy
  - category: Auth
    question: What are the working credentials?
    expected_keywords: ["admintest", "localhost:3000"]
    context: Application testing access
    difficulty: easy
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(t *testing.T) types.EvaluationConfig {
	t.Helper()
	return types.EvaluationConfig{
		BaseModel:      "base/model",
		FineTunedModel: t.TempDir(),
		OutputPath:     filepath.Join(t.TempDir(), "results.json"),
		SuiteFile:      testSuiteFile(t),
	}
}

func TestNewEvaluatorMissingModelDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.FineTunedModel = filepath.Join(t.TempDir(), "no-such-model")
	gen := &mockGenerator{}

	_, err := NewEvaluator(cfg, gen)
	if err == nil {
		t.Fatal("NewEvaluator() succeeded with missing model directory")
	}
	if !strings.Contains(err.Error(), cfg.FineTunedModel) {
		t.Errorf("error %q does not name the missing path", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times before validation failure", gen.calls)
	}
}

func TestNewEvaluatorDefaultSuite(t *testing.T) {
	cfg := testConfig(t)
	cfg.SuiteFile = ""

	e, err := NewEvaluator(cfg, &mockGenerator{})
	if err != nil {
		t.Fatal(err)
	}
	if len(e.Suite()) != 12 {
		t.Errorf("built-in suite has %d cases, want 12", len(e.Suite()))
	}
}

func TestRunBothPasses(t *testing.T) {
	cfg := testConfig(t)
	gen := &mockGenerator{responses: map[string]string{
		cfg.FineTunedModel: "Run npx prisma migrate status; log in as admintest at localhost:3000.",
		cfg.BaseModel:      "I don't know.",
	}}

	e, err := NewEvaluator(cfg, gen)
	if err != nil {
		t.Fatal(err)
	}

	var progress bytes.Buffer
	results, err := e.Run(context.Background(), &progress)
	if err != nil {
		t.Fatal(err)
	}

	if len(results.FineTuned) != 2 || len(results.BaseModel) != 2 {
		t.Fatalf("result lengths = %d/%d, want 2/2", len(results.FineTuned), len(results.BaseModel))
	}
	if gen.calls != 4 {
		t.Errorf("generator called %d times, want 4", gen.calls)
	}

	// Parallel ordering: result i corresponds to suite case i in both passes.
	for i := range results.FineTuned {
		if results.FineTuned[i].Question != results.BaseModel[i].Question {
			t.Errorf("pass results diverge at index %d", i)
		}
	}

	if results.FineTuned[0].Score != 1.0 {
		t.Errorf("fine-tuned score = %v, want 1.0", results.FineTuned[0].Score)
	}
	if results.FineTuned[0].ModelType != types.ModelFineTuned {
		t.Errorf("model type = %q", results.FineTuned[0].ModelType)
	}
	if results.BaseModel[0].Score != 0.0 {
		t.Errorf("base score = %v, want 0.0", results.BaseModel[0].Score)
	}

	if results.Summary.FineTuned.PerfectScores != 2 {
		t.Errorf("perfect scores = %d, want 2", results.Summary.FineTuned.PerfectScores)
	}
	if results.Summary.BaseModel == nil || results.Summary.BaseModel.ZeroScores != 2 {
		t.Errorf("base summary = %+v", results.Summary.BaseModel)
	}
	if results.Summary.Improvement == nil || !results.Summary.Improvement.BetterPerformance {
		t.Errorf("improvement = %+v", results.Summary.Improvement)
	}

	out := progress.String()
	if !strings.Contains(out, "fine-tuned model") || !strings.Contains(out, "base model") {
		t.Errorf("progress output = %q", out)
	}
}

func TestRunNoComparison(t *testing.T) {
	cfg := testConfig(t)
	cfg.NoComparison = true
	gen := &mockGenerator{responses: map[string]string{cfg.FineTunedModel: "npx"}}

	e, err := NewEvaluator(cfg, gen)
	if err != nil {
		t.Fatal(err)
	}

	results, err := e.Run(context.Background(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if len(results.BaseModel) != 0 {
		t.Errorf("base pass ran despite no-comparison: %d results", len(results.BaseModel))
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}
	if results.Summary.BaseModel != nil || results.Summary.Improvement != nil {
		t.Error("summary includes base/improvement despite no-comparison")
	}
}

func TestRunGenerationError(t *testing.T) {
	cfg := testConfig(t)
	gen := &mockGenerator{err: fmt.Errorf("connection refused")}

	e, err := NewEvaluator(cfg, gen)
	if err != nil {
		t.Fatal(err)
	}

	_, err = e.Run(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Run() succeeded despite generation failure")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error = %q", err)
	}
}

func TestSaveResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	results := &types.EvaluationResults{
		FineTuned: []types.EvaluationResult{{
			Category:  "Commands",
			Question:  "q",
			Response:  "r",
			Score:     0.5,
			ModelType: types.ModelFineTuned,
		}},
		Summary: types.Summary{FineTuned: types.ModelSummary{AverageScore: 0.5}},
	}

	if err := SaveResults(path, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got types.EvaluationResults
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Summary.FineTuned.AverageScore != 0.5 {
		t.Errorf("round-tripped average = %v", got.Summary.FineTuned.AverageScore)
	}
	if got.FineTuned[0].ModelType != types.ModelFineTuned {
		t.Errorf("round-tripped model type = %q", got.FineTuned[0].ModelType)
	}
}

func TestWriteReport(t *testing.T) {
	results := &types.EvaluationResults{
		FineTuned: []types.EvaluationResult{{
			Category:        "Commands",
			Question:        "How do I check migration status?",
			Response:        "Run npx prisma migrate status.",
			MatchedKeywords: []string{"npx"},
			Matches:         1,
			TotalKeywords:   2,
			Score:           0.5,
			Difficulty:      "easy",
			ModelType:       types.ModelFineTuned,
		}},
		BaseModel: []types.EvaluationResult{{
			Category:      "Commands",
			Question:      "How do I check migration status?",
			Response:      "No idea.",
			TotalKeywords: 2,
			Score:         0.0,
			Difficulty:    "easy",
			ModelType:     types.ModelBase,
		}},
	}
	results.Summary = types.Summary{
		FineTuned: summarizeModel(results.FineTuned),
	}
	base := summarizeModel(results.BaseModel)
	results.Summary.BaseModel = &base
	imp := computeImprovement(results.Summary.FineTuned, base)
	results.Summary.Improvement = &imp

	var buf bytes.Buffer
	WriteReport(&buf, results)
	out := buf.String()

	for _, want := range []string{
		"MEMORY INSIGHTS MODEL EVALUATION REPORT",
		"Fine-tuned Model Average Score: 0.500",
		"Base Model Average Score:       0.000",
		"Improvement:                    +0.500",
		"1. Commands - EASY",
		"Fine-tuned Score: 0.500 (1/2)",
		"Base Model Score: 0.000 (0/2)",
		"Matched Keywords: npx",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, out)
		}
	}
}

func TestWriteReportNoComparison(t *testing.T) {
	results := &types.EvaluationResults{
		FineTuned: []types.EvaluationResult{{
			Category:      "Commands",
			Question:      "q",
			Response:      "r",
			TotalKeywords: 1,
			Score:         0.0,
			Difficulty:    "easy",
		}},
	}
	results.Summary = summarize(results)

	var buf bytes.Buffer
	WriteReport(&buf, results)
	out := buf.String()

	if strings.Contains(out, "Base Model") {
		t.Errorf("report mentions base model despite skipped pass:\n%s", out)
	}
	if strings.Contains(out, "Improvement") {
		t.Errorf("report mentions improvement despite skipped pass:\n%s", out)
	}
}
