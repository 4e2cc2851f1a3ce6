package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/memory-insights/internal/extract"
	"github.com/pdiddy/memory-insights/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <memory-file>",
	Short: "Extract training examples from a memory document",
	Long: `Extract reads a structured markdown memory document, pulls out the
architecture patterns, environment gotchas, critical commands, lessons
learned, authentication information, and environment configuration it
records, and writes each fact as an instruction/context/response training
example.

Missing or malformed sections contribute nothing; the command fails only
when the input file is absent or no examples were extracted at all.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	memoryFile := args[0]
	cfg := extractionConfig(cmd)

	if !cfg.Format.Valid() {
		return fmt.Errorf("unsupported format %q: use jsonl or json", cfg.Format)
	}

	if _, err := os.Stat(memoryFile); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("memory file %q not found", memoryFile)
		}
		return fmt.Errorf("checking memory file %q: %w", memoryFile, err)
	}

	examples, err := extract.ExtractFile(memoryFile)
	if err != nil {
		return err
	}

	if len(examples) == 0 {
		return fmt.Errorf("no training examples extracted from %s: check the document format", memoryFile)
	}

	if err := extract.WriteTrainingData(cfg.OutputPath, cfg.Format, examples); err != nil {
		return err
	}

	fmt.Printf("Saved %d training examples to %s\n", len(examples), cfg.OutputPath)
	fmt.Println("\nExtraction Summary:")
	fmt.Printf("- Total examples: %d\n", len(examples))
	fmt.Printf("- Output format: %s\n", cfg.Format)
	fmt.Printf("- Output file: %s\n", cfg.OutputPath)

	return nil
}

// extractionConfig assembles extraction settings from flags and the config
// file. Explicit flags win over config file values.
func extractionConfig(cmd *cobra.Command) types.ExtractionConfig {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	if v := viper.GetString("extraction.output_path"); v != "" && !cmd.Flags().Changed("output") {
		output = v
	}
	if v := viper.GetString("extraction.format"); v != "" && !cmd.Flags().Changed("format") {
		format = v
	}

	return types.ExtractionConfig{
		OutputPath: output,
		Format:     types.OutputFormat(format),
	}
}

func init() {
	extractCmd.Flags().StringP("output", "o", "training_data.jsonl", "output file path")
	extractCmd.Flags().StringP("format", "f", "jsonl", "output format: jsonl or json")

	rootCmd.AddCommand(extractCmd)
}
