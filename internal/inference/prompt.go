// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inference sends prompts to a language model and returns generated
// continuations. The model itself lives behind an OpenAI-compatible
// completions API; a local server (llama.cpp, vLLM) serves the fine-tuned
// model from its directory while the base model is addressed by identifier.
package inference

import (
	"bytes"
	"strings"
	"text/template"
)

// ResponseCue marks where the model's answer begins in the prompt. Generated
// text after the last occurrence of the cue is the answer.
const ResponseCue = "### Response:\n"

// promptTmpl is the instruction-following template used for every benchmark
// question. It mirrors the format the fine-tuning data was written in.
var promptTmpl = template.Must(template.New("prompt").Parse(
	"### Instruction:\n{{.Question}}\n\n### Context:\n{{.Context}}\n\n### Response:\n"))

// BuildPrompt renders the instruction/context/response-cue prompt for one
// question.
func BuildPrompt(question, context string) string {
	var buf bytes.Buffer
	// Execute on a bytes.Buffer with a static template never errors.
	_ = promptTmpl.Execute(&buf, struct{ Question, Context string }{question, context})
	return buf.String()
}

// ExtractResponse isolates the generated answer. Servers that echo the prompt
// return the full text; only what follows the last response cue counts. The
// result is trimmed of surrounding whitespace.
func ExtractResponse(generated string) string {
	if idx := strings.LastIndex(generated, ResponseCue); idx >= 0 {
		generated = generated[idx+len(ResponseCue):]
	}
	return strings.TrimSpace(generated)
}
