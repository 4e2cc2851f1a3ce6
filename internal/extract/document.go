// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts a structured memory Markdown document into
// instruction-following training examples.
//
// The document uses a two-level heading convention: ## marks a top-level
// section, ### a subsection. Facts appear as "- **Name**: Description"
// bullets, command listings as fenced bash blocks, and configuration as
// KEY=value lines.
package extract

import (
	"regexp"
	"strings"
)

// sectionBody returns the body of the named heading: the text from just after
// the heading line up to the next top-level (##) heading or end of content,
// trimmed of surrounding whitespace. It returns "" when the heading is absent.
//
// The same function serves nested lookups: pass a section body and a ###
// heading to slice a subsection out of it.
func sectionBody(content, heading string) string {
	lines := strings.Split(content, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimRight(line, " \t") == heading {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// subsection is a ###-delimited chunk within a top-level section.
type subsection struct {
	name string
	body string
}

// subsections slices a section body into its ### subsections. Each body runs
// from after the subsection heading to the next ### heading or end of input.
// Text before the first ### heading is not part of any subsection.
func subsections(body string) []subsection {
	lines := strings.Split(body, "\n")
	var subs []subsection

	current := ""
	var bodyLines []string

	flush := func() {
		if current != "" {
			subs = append(subs, subsection{
				name: current,
				body: strings.TrimSpace(strings.Join(bodyLines, "\n")),
			})
		}
		bodyLines = nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "### ") {
			flush()
			current = strings.TrimSpace(strings.TrimPrefix(line, "### "))
			continue
		}
		bodyLines = append(bodyLines, line)
	}

	flush()
	return subs
}

// bulletPair is one "- **Name**: Description" fact.
type bulletPair struct {
	name        string
	description string
}

// bulletPairs extracts "- **Name**: Description" pairs from text. A
// description runs until the next bullet, a blank line, or end of input, and
// may span continuation lines. Pairs whose name or trimmed description is
// empty are skipped.
func bulletPairs(text string) []bulletPair {
	lines := strings.Split(text, "\n")
	var pairs []bulletPair

	const marker = "- **"

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}

		rest := line[idx+len(marker):]
		sep := strings.Index(rest, "**: ")
		if sep < 0 {
			continue
		}

		name := strings.TrimSpace(rest[:sep])
		descLines := []string{rest[sep+len("**: "):]}

		// Continuation lines until the next bullet, a blank line, or EOF.
		for i+1 < len(lines) {
			next := lines[i+1]
			if next == "" || strings.HasPrefix(next, "-") {
				break
			}
			descLines = append(descLines, next)
			i++
		}

		description := strings.TrimSpace(strings.Join(descLines, "\n"))
		if name == "" || description == "" {
			continue
		}

		pairs = append(pairs, bulletPair{name: name, description: description})
	}

	return pairs
}

// bashBlockPattern matches fenced bash code blocks.
var bashBlockPattern = regexp.MustCompile("(?s)```bash\n(.*?)\n```")

// bashBlocks returns the contents of all fenced bash blocks in document order.
func bashBlocks(text string) []string {
	matches := bashBlockPattern.FindAllStringSubmatch(text, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return blocks
}

// envVarPattern matches UPPER_SNAKE_CASE=value configuration lines. The value
// is the remainder of the line.
var envVarPattern = regexp.MustCompile(`([A-Z_]+)=([^\n]+)`)

// envVars returns KEY=value assignments found in text, in document order.
func envVars(text string) []string {
	matches := envVarPattern.FindAllStringSubmatch(text, -1)
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		vars = append(vars, m[1]+"="+m[2])
	}
	return vars
}
