// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/memory-insights/pkg/types"
)

// SuiteFile is the on-disk representation of a benchmark suite. A researcher
// can maintain alternative suites in YAML and point the evaluator at one
// instead of the built-in suite.
type SuiteFile struct {
	Tests []types.TestCase `yaml:"tests"`
}

// LoadSuite reads test cases from a YAML suite file.
func LoadSuite(path string) ([]types.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file %s: %w", path, err)
	}
	var sf SuiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing suite file %s: %w", path, err)
	}
	if len(sf.Tests) == 0 {
		return nil, fmt.Errorf("suite file %s contains no test cases", path)
	}
	return sf.Tests, nil
}

// DefaultSuite returns the built-in benchmark: hand-written questions derived
// from the memory document's sections, each with the keywords a grounded
// answer should mention.
func DefaultSuite() []types.TestCase {
	return []types.TestCase{
		{
			Category:         "Architecture Patterns",
			Question:         "How should I implement a new auto-generated field in the Estate model?",
			ExpectedKeywords: []string{"scanBoxId", "backend generation", "display-only", "frontend", "auto-generated"},
			Context:          "I'm implementing new fields in a GraphQL/Prisma/React application",
			Difficulty:       "medium",
		},
		{
			Category:         "Architecture Patterns",
			Question:         "What's the difference between Estate Email Pattern and taxId Pattern?",
			ExpectedKeywords: []string{"Estate Email", "taxId", "unique constraint", "migration", "nullable"},
			Context:          "I need to understand field implementation patterns",
			Difficulty:       "medium",
		},
		{
			Category:         "Architecture Patterns",
			Question:         "How do GraphQL resolvers work in this codebase?",
			ExpectedKeywords: []string{"generated resolvers", "custom resolvers", "priority", "registered", "both"},
			Context:          "I'm implementing GraphQL resolvers",
			Difficulty:       "hard",
		},
		{
			Category:         "Environment Gotchas",
			Question:         "I'm getting dependency conflicts with MUI Lab. What should I do?",
			ExpectedKeywords: []string{"legacy-peer-deps", "npm install", "React 19", "MUI Lab"},
			Context:          "Frontend dependency resolution issues",
			Difficulty:       "easy",
		},
		{
			Category:         "Environment Gotchas",
			Question:         "How do I start the backend service properly?",
			ExpectedKeywords: []string{"Node 22", "nvm use", "background", "yarn start", "foreground"},
			Context:          "Backend service management",
			Difficulty:       "medium",
		},
		{
			Category:         "Environment Gotchas",
			Question:         "I'm having database permission issues with Prisma migrations. What's wrong?",
			ExpectedKeywords: []string{"patrickclawson", "CREATEDB", "permissions", "superuser", "shadow database"},
			Context:          "Database migration problems",
			Difficulty:       "hard",
		},
		{
			Category:         "Critical Commands",
			Question:         "How do I check migration status and apply pending migrations?",
			ExpectedKeywords: []string{"prisma migrate status", "prisma migrate deploy", "npx"},
			Context:          "Database migration management",
			Difficulty:       "easy",
		},
		{
			Category:         "Critical Commands",
			Question:         "How do I kill all backend processes and clean up services?",
			ExpectedKeywords: []string{"pkill", "ts-node-dev", "yarn start", "ps aux"},
			Context:          "Service cleanup and management",
			Difficulty:       "medium",
		},
		{
			Category:         "Lessons Learned",
			Question:         "What's the proper methodology for implementing new fields?",
			ExpectedKeywords: []string{"Jira-First", "Complete Field Analysis", "Backend-First", "Data Flow Tracing"},
			Context:          "Implementation methodology",
			Difficulty:       "hard",
		},
		{
			Category:         "Lessons Learned",
			Question:         "I'm confused about 'crud resolvers'. What's happening?",
			ExpectedKeywords: []string{"generated resolvers", "custom resolvers", "precedence", "both"},
			Context:          "GraphQL resolver confusion",
			Difficulty:       "medium",
		},
		{
			Category:         "Authentication",
			Question:         "What are the working authentication credentials for testing?",
			ExpectedKeywords: []string{"admintest@meetalix.com", "te8mAlix!", "Admin", "localhost:3000"},
			Context:          "Application testing access",
			Difficulty:       "easy",
		},
		{
			Category:         "Authentication",
			Question:         "What are the access requirements for this application?",
			ExpectedKeywords: []string{"AWS Cognito", "Admin", "SuperAdmin", "authentication required"},
			Context:          "Application access setup",
			Difficulty:       "medium",
		},
	}
}
