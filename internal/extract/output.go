// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/memory-insights/pkg/types"
)

// WriteTrainingData serializes examples to path. The jsonl format writes one
// JSON object per line; the json format writes a single indented array.
func WriteTrainingData(path string, format types.OutputFormat, examples []types.TrainingExample) error {
	if !format.Valid() {
		return fmt.Errorf("unsupported output format %q", format)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	switch format {
	case types.FormatJSONL:
		for _, ex := range examples {
			if err := enc.Encode(ex); err != nil {
				return fmt.Errorf("encoding example: %w", err)
			}
		}
	case types.FormatJSON:
		enc.SetIndent("", "  ")
		if err := enc.Encode(examples); err != nil {
			return fmt.Errorf("encoding examples: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}

// ReadJSONL loads training examples from a line-delimited JSON file, in file
// order. Blank lines are skipped.
func ReadJSONL(path string) ([]types.TrainingExample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening training data %s: %w", path, err)
	}
	defer f.Close()

	var examples []types.TrainingExample

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ex types.TrainingExample
		if err := json.Unmarshal(line, &ex); err != nil {
			return nil, fmt.Errorf("parsing training data line: %w", err)
		}
		examples = append(examples, ex)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading training data: %w", err)
	}

	return examples, nil
}
