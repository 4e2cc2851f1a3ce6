package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/memory-insights/internal/evaluate"
	"github.com/pdiddy/memory-insights/internal/inference"
	"github.com/pdiddy/memory-insights/pkg/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <base-model> <fine-tuned-model-dir>",
	Short: "Benchmark the fine-tuned model against its base model",
	Long: `Evaluate runs the keyword-match benchmark suite against the fine-tuned
model and, unless --no-comparison is given, against the base model. Each
response is scored by the fraction of expected keywords it contains as
case-insensitive substrings.

Generation goes through an OpenAI-compatible completions endpoint; the
fine-tuned model is addressed by its directory path, the base model by its
identifier. Results are printed as a report and written to a JSON file.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	noComparison, _ := cmd.Flags().GetBool("no-comparison")
	suiteFile, _ := cmd.Flags().GetString("suite")

	cfg := types.EvaluationConfig{
		Inference:      inferenceConfig(),
		BaseModel:      args[0],
		FineTunedModel: args[1],
		OutputPath:     output,
		SuiteFile:      suiteFile,
		NoComparison:   noComparison,
	}

	gen := inference.NewClient(cfg.Inference)

	evaluator, err := evaluate.NewEvaluator(cfg, gen)
	if err != nil {
		return err
	}

	results, err := evaluator.Run(context.Background(), os.Stdout)
	if err != nil {
		return err
	}

	evaluate.WriteReport(os.Stdout, results)

	if err := evaluate.SaveResults(cfg.OutputPath, results); err != nil {
		return err
	}
	fmt.Printf("\nResults saved to %s\n", cfg.OutputPath)

	return nil
}

// inferenceConfig assembles the inference provider settings from the config
// file, environment, and loaded secrets.
func inferenceConfig() types.InferenceConfig {
	viper.SetDefault("inference.base_url", "http://localhost:8080/v1")
	viper.SetDefault("inference.timeout", 120*time.Second)
	viper.SetDefault("inference.max_retries", 3)
	viper.SetDefault("inference.max_new_tokens", 200)
	viper.SetDefault("inference.temperature", 0.7)
	viper.SetDefault("inference.max_prompt_tokens", 512)

	return types.InferenceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("inference.timeout"),
			UserAgent: "memory-insights/" + version,
		},
		BaseURL:         viper.GetString("inference.base_url"),
		APIKey:          secretDefault("inference-api-key", viper.GetString("inference.api_key")),
		MaxRetries:      viper.GetInt("inference.max_retries"),
		MaxNewTokens:    viper.GetInt("inference.max_new_tokens"),
		Temperature:     float32(viper.GetFloat64("inference.temperature")),
		MaxPromptTokens: viper.GetInt("inference.max_prompt_tokens"),
	}
}

func init() {
	evaluateCmd.Flags().StringP("output", "o", "evaluation_results.json", "output file for results")
	evaluateCmd.Flags().Bool("no-comparison", false, "skip the base model comparison pass")
	evaluateCmd.Flags().String("suite", "", "YAML file with test cases (default: built-in suite)")

	rootCmd.AddCommand(evaluateCmd)
}
