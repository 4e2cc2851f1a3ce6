package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "memory-insights/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExtractionConfig holds settings for the training data extraction stage.
type ExtractionConfig struct {
	// OutputPath is the training data file to write (default training_data.jsonl).
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the serialization format: jsonl or json.
	Format OutputFormat `json:"format" yaml:"format"`
}

// InferenceConfig holds settings for the model inference provider. Generation
// is delegated to an OpenAI-compatible completions endpoint; a local server
// (llama.cpp, vLLM) serves the fine-tuned model from its directory.
type InferenceConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the OpenAI-compatible API root (default http://localhost:8080/v1).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey authenticates against the inference server. Optional for local servers.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the retry budget for rate-limited requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxNewTokens bounds the generated continuation (default 200).
	MaxNewTokens int `json:"max_new_tokens" yaml:"max_new_tokens"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float32 `json:"temperature" yaml:"temperature"`

	// MaxPromptTokens is the truncation limit applied to the prompt by the
	// provider's tokenizer (default 512).
	MaxPromptTokens int `json:"max_prompt_tokens" yaml:"max_prompt_tokens"`
}

// EvaluationConfig holds settings for the benchmark evaluation stage.
type EvaluationConfig struct {
	Inference InferenceConfig `json:"inference" yaml:"inference"`

	// BaseModel is the base model identifier (e.g. "microsoft/DialoGPT-medium").
	BaseModel string `json:"base_model" yaml:"base_model"`

	// FineTunedModel is the fine-tuned model directory path. It must exist on
	// disk before any generation is attempted.
	FineTunedModel string `json:"fine_tuned_model" yaml:"fine_tuned_model"`

	// OutputPath is the results file to write (default evaluation_results.json).
	OutputPath string `json:"output_path" yaml:"output_path"`

	// SuiteFile optionally replaces the built-in benchmark suite with test
	// cases loaded from a YAML file.
	SuiteFile string `json:"suite_file,omitempty" yaml:"suite_file,omitempty"`

	// NoComparison skips the base-model pass when true.
	NoComparison bool `json:"no_comparison" yaml:"no_comparison"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Evaluation EvaluationConfig `json:"evaluation" yaml:"evaluation"`
}
