// Package analysis derives descriptive statistics from repository data:
// commit patterns, language breakdowns, README completeness signals, and
// file-tree structure. All functions are pure and degrade to zero-valued
// reports on empty input rather than failing.
package analysis

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/repolens/repolens/pkg/github"
)

// AuthorStat is one entry of the top-authors list.
type AuthorStat struct {
	Name        string `json:"name"`
	CommitCount int    `json:"commit_count"`
}

// CommitReport summarizes commit patterns for a repository.
type CommitReport struct {
	TotalCommits     int            `json:"total_commits"`
	CommitCategories map[string]int `json:"commit_categories"`
	TopAuthors       []AuthorStat   `json:"top_authors"`
	CommitFrequency  map[string]int `json:"commit_frequency"`
	AvgCommitsPerDay float64        `json:"avg_commits_per_day"`
}

// categoryRules are checked in order against the lower-cased commit message;
// the first matching category wins, so a message mentioning both "fix:" and
// "test:" counts as a fix.
var categoryRules = []struct {
	name     string
	keywords []string
}{
	{"feat", []string{"feat:", "feature:"}},
	{"fix", []string{"fix:", "bug:", "hotfix:"}},
	{"docs", []string{"docs:", "doc:"}},
	{"style", []string{"style:", "format:"}},
	{"refactor", []string{"refactor:", "refact:"}},
	{"test", []string{"test:", "tests:"}},
	{"chore", []string{"chore:", "build:", "ci:"}},
}

// Commits classifies commits into conventional-commit categories, tallies
// per-author counts, computes day-of-week frequency, and the average number
// of commits per active day. Empty input yields a zero-valued report.
func Commits(commits []github.CommitRecord) *CommitReport {
	report := &CommitReport{
		CommitCategories: map[string]int{},
		TopAuthors:       []AuthorStat{},
		CommitFrequency:  map[string]int{},
	}
	if len(commits) == 0 {
		return report
	}

	report.TotalCommits = len(commits)
	for _, rule := range categoryRules {
		report.CommitCategories[rule.name] = 0
	}
	report.CommitCategories["others"] = 0

	counts := make(map[string]int)
	var order []string // authors in first-encountered order, for stable ties
	days := make(map[string]struct{})

	for _, c := range commits {
		report.CommitCategories[categorize(strings.ToLower(c.Message))]++

		author := c.AuthorName
		if author == "" {
			author = "Unknown"
		}
		if _, seen := counts[author]; !seen {
			order = append(order, author)
		}
		counts[author]++

		// Dates that fail to parse are dropped from frequency and the
		// active-day set but still count toward the total.
		t, err := time.Parse(time.RFC3339, c.AuthorDate)
		if err != nil {
			continue
		}
		report.CommitFrequency[t.Weekday().String()]++
		days[c.AuthorDate[:10]] = struct{}{}
	}

	stats := make([]AuthorStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, AuthorStat{Name: name, CommitCount: counts[name]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].CommitCount > stats[j].CommitCount
	})
	if len(stats) > 10 {
		stats = stats[:10]
	}
	report.TopAuthors = stats

	divisor := len(days)
	if divisor == 0 {
		divisor = 1
	}
	report.AvgCommitsPerDay = round2(float64(len(commits)) / float64(divisor))

	return report
}

func categorize(message string) string {
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(message, keyword) {
				return rule.name
			}
		}
	}
	return "others"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
