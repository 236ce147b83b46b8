package analysis

import "sort"

// LanguageReport summarizes the language byte breakdown of a repository.
type LanguageReport struct {
	Languages          map[string]int     `json:"languages"`
	PrimaryLanguage    string             `json:"primary_language"`
	LanguagePercentage map[string]float64 `json:"language_percentage"`
}

// Languages computes per-language percentages and the primary language from
// a byte-count breakdown. Ties on byte count resolve alphabetically so the
// result is deterministic. Empty input yields "Unknown" with empty maps.
func Languages(languages map[string]int) *LanguageReport {
	report := &LanguageReport{
		Languages:          map[string]int{},
		PrimaryLanguage:    "Unknown",
		LanguagePercentage: map[string]float64{},
	}
	if len(languages) == 0 {
		return report
	}

	report.Languages = languages

	total := 0
	names := make([]string, 0, len(languages))
	for name, bytes := range languages {
		total += bytes
		names = append(names, name)
	}
	sort.Strings(names)

	best := -1
	for _, name := range names {
		report.LanguagePercentage[name] = round2(float64(languages[name]) / float64(total) * 100)
		if languages[name] > best {
			best = languages[name]
			report.PrimaryLanguage = name
		}
	}
	return report
}
