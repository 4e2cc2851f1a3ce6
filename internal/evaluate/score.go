// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import "strings"

// ScoreKeywords checks each expected keyword for case-insensitive substring
// presence in response. It returns the matched keywords in their original
// order and the score matched/expected in [0,1]. The score is defined as 0
// for an empty keyword list.
func ScoreKeywords(response string, expected []string) (float64, []string) {
	if len(expected) == 0 {
		return 0, nil
	}

	responseLower := strings.ToLower(response)

	var matched []string
	for _, kw := range expected {
		if strings.Contains(responseLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}

	return float64(len(matched)) / float64(len(expected)), matched
}
