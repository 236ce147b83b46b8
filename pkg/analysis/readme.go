package analysis

import (
	"strings"
	"unicode/utf8"
)

// ReadmeSections flags which common README sections are present, based on
// case-insensitive keyword search.
type ReadmeSections struct {
	Installation bool `json:"installation"`
	Usage        bool `json:"usage"`
	Contributing bool `json:"contributing"`
	License      bool `json:"license"`
	Badges       bool `json:"badges"`
}

// ReadmeReport holds completeness heuristics for a README file.
type ReadmeReport struct {
	Length        int            `json:"length"`
	LineCount     int            `json:"line_count"`
	HeaderCount   int            `json:"header_count"`
	Sections      ReadmeSections `json:"sections"`
	HasCodeBlocks bool           `json:"has_code_blocks"`
	WordCount     int            `json:"word_count"`
}

var (
	installKeywords = []string{"install", "setup", "getting started"}
	usageKeywords   = []string{"usage", "example", "how to"}
)

// Readme computes completeness signals for README content. Returns nil when
// there is no README.
func Readme(content string) *ReadmeReport {
	if content == "" {
		return nil
	}

	lower := strings.ToLower(content)
	lines := strings.Split(content, "\n")

	headers := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			headers++
		}
	}

	return &ReadmeReport{
		Length:      utf8.RuneCountInString(content),
		LineCount:   len(lines),
		HeaderCount: headers,
		Sections: ReadmeSections{
			Installation: containsAny(lower, installKeywords),
			Usage:        containsAny(lower, usageKeywords),
			Contributing: strings.Contains(lower, "contribut"),
			License:      strings.Contains(lower, "license"),
			Badges:       strings.Contains(content, "!["),
		},
		HasCodeBlocks: strings.Contains(content, "```"),
		WordCount:     len(strings.Fields(content)),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
