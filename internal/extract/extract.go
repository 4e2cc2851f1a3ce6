// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/memory-insights/pkg/types"
)

// Top-level section headings recognized in a memory document.
const (
	headingArchitecture = "## Architecture Patterns Discovered"
	headingGotchas      = "## Environment Gotchas"
	headingCommands     = "## Critical Commands"
	headingLessons      = "## Key Lessons Learned"
	headingAuth         = "## Authentication Information"
	headingEnvConfig    = "## Environment Configuration"
)

// ExtractFile reads a memory document and extracts training examples from it.
func ExtractFile(path string) ([]types.TrainingExample, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading memory document %s: %w", path, err)
	}
	return ExtractAll(string(content)), nil
}

// ExtractAll runs the extraction routines over the document in a fixed order
// and returns the collected examples. Each routine targets one top-level
// section; a missing or malformed section contributes zero examples and never
// aborts the run. Examples keep document order within each routine.
func ExtractAll(content string) []types.TrainingExample {
	var examples []types.TrainingExample

	examples = append(examples, extractArchitecturePatterns(content)...)
	examples = append(examples, extractEnvironmentGotchas(content)...)
	examples = append(examples, extractCriticalCommands(content)...)
	examples = append(examples, extractLessonsLearned(content)...)
	examples = append(examples, extractAuthenticationInfo(content)...)
	examples = append(examples, extractEnvironmentConfig(content)...)

	return examples
}

// extractArchitecturePatterns produces examples from the architecture section:
// generic field-implementation bullets, then the resolver priority subsection,
// then the UI rendering subsection.
func extractArchitecturePatterns(content string) []types.TrainingExample {
	section := sectionBody(content, headingArchitecture)
	if section == "" {
		return nil
	}

	var examples []types.TrainingExample

	for _, p := range bulletPairs(section) {
		examples = append(examples, types.TrainingExample{
			Instruction: fmt.Sprintf("What is the %s and how should I implement it?", p.name),
			Context:     "I'm working on a GraphQL/Prisma/React application with PostgreSQL database",
			Response:    fmt.Sprintf("The %s: %s", p.name, p.description),
		})
	}

	if resolver := sectionBody(section, "### GraphQL Resolver Priority"); resolver != "" {
		for _, p := range bulletPairs(resolver) {
			examples = append(examples, types.TrainingExample{
				Instruction: "How do GraphQL resolvers work in this codebase?",
				Context:     "I'm implementing GraphQL resolvers and need to understand the priority system",
				Response:    fmt.Sprintf("%s: %s", p.name, p.description),
			})
		}
	}

	if ui := sectionBody(section, "### UI Conditional Rendering Patterns"); ui != "" {
		for _, p := range bulletPairs(ui) {
			examples = append(examples, types.TrainingExample{
				Instruction: fmt.Sprintf("How should I handle %s in the UI?", strings.ToLower(p.name)),
				Context:     "I'm implementing UI components and need to understand rendering patterns",
				Response:    fmt.Sprintf("For %s: %s", p.name, p.description),
			})
		}
	}

	return examples
}

// extractEnvironmentGotchas produces one example per bullet in each gotcha
// subsection.
func extractEnvironmentGotchas(content string) []types.TrainingExample {
	section := sectionBody(content, headingGotchas)
	if section == "" {
		return nil
	}

	var examples []types.TrainingExample

	for _, sub := range subsections(section) {
		for _, p := range bulletPairs(sub.body) {
			examples = append(examples, types.TrainingExample{
				Instruction: fmt.Sprintf("I'm having issues with %s. What should I do?", strings.ToLower(p.name)),
				Context:     fmt.Sprintf("I'm working on %s in my development environment", strings.ToLower(sub.name)),
				Response:    fmt.Sprintf("For %s: %s", p.name, p.description),
			})
		}
	}

	return examples
}

// extractCriticalCommands produces one example per command subsection,
// concatenating all of its fenced bash blocks into a single re-fenced
// response. A subsection without bash blocks contributes nothing.
func extractCriticalCommands(content string) []types.TrainingExample {
	section := sectionBody(content, headingCommands)
	if section == "" {
		return nil
	}

	var examples []types.TrainingExample

	for _, sub := range subsections(section) {
		blocks := bashBlocks(sub.body)
		if len(blocks) == 0 {
			continue
		}

		combined := strings.TrimSpace(strings.Join(blocks, "\n"))
		examples = append(examples, types.TrainingExample{
			Instruction: fmt.Sprintf("How do I %s?", strings.ToLower(sub.name)),
			Context:     "I need to execute commands for development environment management",
			Response:    fmt.Sprintf("For %s:\n```bash\n%s\n```", sub.name, combined),
		})
	}

	return examples
}

// extractLessonsLearned produces one example per bullet in each lessons
// subsection.
func extractLessonsLearned(content string) []types.TrainingExample {
	section := sectionBody(content, headingLessons)
	if section == "" {
		return nil
	}

	var examples []types.TrainingExample

	for _, sub := range subsections(section) {
		for _, p := range bulletPairs(sub.body) {
			examples = append(examples, types.TrainingExample{
				Instruction: fmt.Sprintf("What should I know about %s?", strings.ToLower(p.name)),
				Context:     fmt.Sprintf("I'm following %s methodology", strings.ToLower(sub.name)),
				Response:    fmt.Sprintf("%s: %s", p.name, p.description),
			})
		}
	}

	return examples
}

// extractAuthenticationInfo produces examples from the credentials and access
// requirement subsections.
func extractAuthenticationInfo(content string) []types.TrainingExample {
	section := sectionBody(content, headingAuth)
	if section == "" {
		return nil
	}

	var examples []types.TrainingExample

	if creds := sectionBody(section, "### Working Credentials"); creds != "" {
		for _, p := range bulletPairs(creds) {
			examples = append(examples, types.TrainingExample{
				Instruction: "What are the working authentication credentials?",
				Context:     "I need to access the application for testing",
				Response:    fmt.Sprintf("%s: %s", p.name, p.description),
			})
		}
	}

	if access := sectionBody(section, "### Access Requirements"); access != "" {
		for _, p := range bulletPairs(access) {
			examples = append(examples, types.TrainingExample{
				Instruction: "What are the access requirements for this application?",
				Context:     "I'm setting up access to the application",
				Response:    fmt.Sprintf("%s: %s", p.name, p.description),
			})
		}
	}

	return examples
}

// extractEnvironmentConfig produces one example per configuration subsection,
// listing its KEY=value lines. A subsection without any contributes nothing.
func extractEnvironmentConfig(content string) []types.TrainingExample {
	section := sectionBody(content, headingEnvConfig)
	if section == "" {
		return nil
	}

	var examples []types.TrainingExample

	for _, sub := range subsections(section) {
		vars := envVars(sub.body)
		if len(vars) == 0 {
			continue
		}

		examples = append(examples, types.TrainingExample{
			Instruction: fmt.Sprintf("How do I configure %s?", strings.ToLower(sub.name)),
			Context:     "I'm setting up environment variables for development",
			Response:    fmt.Sprintf("For %s, set these environment variables:\n%s", sub.name, strings.Join(vars, "\n")),
		})
	}

	return examples
}
