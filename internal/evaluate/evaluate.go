// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluate runs a keyword-match benchmark against a fine-tuned model
// and optionally its base model, then aggregates and reports the scores.
//
// Scoring is literal: a keyword counts when it appears as a case-insensitive
// substring of the generated answer. There is no semantic matching.
package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/memory-insights/internal/inference"
	"github.com/pdiddy/memory-insights/pkg/types"
)

// Evaluator holds everything one benchmark run needs: the generator, the two
// model identities, and the suite. Construct once per run; per-case
// operations receive it by reference rather than reading ambient state.
type Evaluator struct {
	generator      inference.Generator
	baseModel      string
	fineTunedModel string
	suite          []types.TestCase
	noComparison   bool
}

// NewEvaluator validates the configuration and builds an Evaluator. The
// fine-tuned model directory must exist on disk; a missing directory is
// reported before any generation is attempted.
func NewEvaluator(cfg types.EvaluationConfig, gen inference.Generator) (*Evaluator, error) {
	if _, err := os.Stat(cfg.FineTunedModel); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fine-tuned model directory %q not found", cfg.FineTunedModel)
		}
		return nil, fmt.Errorf("checking fine-tuned model directory %q: %w", cfg.FineTunedModel, err)
	}

	suite := DefaultSuite()
	if cfg.SuiteFile != "" {
		loaded, err := LoadSuite(cfg.SuiteFile)
		if err != nil {
			return nil, err
		}
		suite = loaded
	}

	return &Evaluator{
		generator:      gen,
		baseModel:      cfg.BaseModel,
		fineTunedModel: cfg.FineTunedModel,
		suite:          suite,
		noComparison:   cfg.NoComparison,
	}, nil
}

// Suite returns the test cases the evaluator will run.
func (e *Evaluator) Suite() []types.TestCase {
	return e.suite
}

// Run executes the benchmark: one full pass over the suite against the
// fine-tuned model, then one against the base model unless comparison is
// disabled. Passes are strictly sequential and deterministic in order; the
// two result lists are parallel. Progress goes to w.
func (e *Evaluator) Run(ctx context.Context, w io.Writer) (*types.EvaluationResults, error) {
	results := &types.EvaluationResults{}

	fmt.Fprintln(w, "Running evaluation on fine-tuned model...")
	for _, tc := range e.suite {
		r, err := e.evaluateCase(ctx, tc, types.ModelFineTuned)
		if err != nil {
			return nil, err
		}
		results.FineTuned = append(results.FineTuned, r)
	}

	if !e.noComparison {
		fmt.Fprintln(w, "Running evaluation on base model for comparison...")
		for _, tc := range e.suite {
			r, err := e.evaluateCase(ctx, tc, types.ModelBase)
			if err != nil {
				return nil, err
			}
			results.BaseModel = append(results.BaseModel, r)
		}
	}

	results.Summary = summarize(results)
	return results, nil
}

// evaluateCase generates a response for one test case and scores it.
func (e *Evaluator) evaluateCase(ctx context.Context, tc types.TestCase, mt types.ModelType) (types.EvaluationResult, error) {
	model := e.fineTunedModel
	if mt == types.ModelBase {
		model = e.baseModel
	}

	prompt := inference.BuildPrompt(tc.Question, tc.Context)
	response, err := e.generator.Generate(ctx, model, prompt)
	if err != nil {
		return types.EvaluationResult{}, fmt.Errorf("generating response for %q: %w", tc.Question, err)
	}

	score, matched := ScoreKeywords(response, tc.ExpectedKeywords)

	return types.EvaluationResult{
		Category:         tc.Category,
		Question:         tc.Question,
		Response:         response,
		ExpectedKeywords: tc.ExpectedKeywords,
		MatchedKeywords:  matched,
		Matches:          len(matched),
		TotalKeywords:    len(tc.ExpectedKeywords),
		Score:            score,
		Difficulty:       tc.Difficulty,
		ModelType:        mt,
	}, nil
}

// SaveResults writes the full result object to a JSON file.
func SaveResults(path string, results *types.EvaluationResults) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing results file %s: %w", path, err)
	}
	return nil
}
