// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TrainingExample is one instruction-following fine-tuning sample extracted
// from a memory document. Examples are immutable once created and keep the
// document order of the text they were extracted from.
type TrainingExample struct {
	// Instruction is the synthesized question the model should answer.
	Instruction string `json:"instruction" yaml:"instruction"`

	// Context is a fixed descriptive sentence framing the instruction.
	Context string `json:"context" yaml:"context"`

	// Response is the explanatory text extracted from the document.
	Response string `json:"response" yaml:"response"`
}

// OutputFormat selects the training data serialization format.
type OutputFormat string

const (
	FormatJSONL OutputFormat = "jsonl"
	FormatJSON  OutputFormat = "json"
)

// Valid reports whether the format is one of the supported values.
func (f OutputFormat) Valid() bool {
	return f == FormatJSONL || f == FormatJSON
}
