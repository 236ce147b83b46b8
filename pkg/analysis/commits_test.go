package analysis

import (
	"fmt"
	"testing"

	"github.com/repolens/repolens/pkg/github"
)

func TestCommits_Empty(t *testing.T) {
	report := Commits(nil)

	if report.TotalCommits != 0 {
		t.Errorf("TotalCommits = %d, want 0", report.TotalCommits)
	}
	// Zero report carries empty collections, not pre-seeded categories.
	if len(report.CommitCategories) != 0 {
		t.Errorf("CommitCategories = %v, want empty", report.CommitCategories)
	}
	if report.TopAuthors == nil || len(report.TopAuthors) != 0 {
		t.Errorf("TopAuthors = %v, want empty slice", report.TopAuthors)
	}
	if report.AvgCommitsPerDay != 0 {
		t.Errorf("AvgCommitsPerDay = %v, want 0", report.AvgCommitsPerDay)
	}
}

func TestCommits_Categorization(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"feat: add login", "feat"},
		{"Feature: dark mode", "feat"},
		{"Fix: null pointer", "fix"},
		{"hotfix: rollback deploy", "fix"},
		{"docs: update readme", "docs"},
		{"style: gofmt", "style"},
		{"refactor: extract helper", "refactor"},
		{"test: cover edge cases", "test"},
		{"chore: bump deps", "chore"},
		{"ci: cache modules", "chore"},
		{"update stuff", "others"},
		// First matching category wins.
		{"fix: broken test: timeout", "fix"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			report := Commits([]github.CommitRecord{{
				Message:    tt.message,
				AuthorName: "dev",
				AuthorDate: "2024-01-15T10:00:00Z",
			}})
			if got := report.CommitCategories[tt.want]; got != 1 {
				t.Errorf("CommitCategories[%q] = %d, want 1 (full map: %v)", tt.want, got, report.CommitCategories)
			}
		})
	}
}

func TestCommits_AllCategoriesPresent(t *testing.T) {
	report := Commits([]github.CommitRecord{{Message: "anything", AuthorDate: "2024-01-15T10:00:00Z"}})

	for _, name := range []string{"feat", "fix", "docs", "style", "refactor", "test", "chore", "others"} {
		if _, found := report.CommitCategories[name]; !found {
			t.Errorf("CommitCategories missing %q", name)
		}
	}
}

func TestCommits_TopAuthors(t *testing.T) {
	var commits []github.CommitRecord
	// 12 authors with descending commit counts, plus an empty author name.
	for i := 0; i < 12; i++ {
		for j := 0; j <= i; j++ {
			commits = append(commits, github.CommitRecord{
				Message:    "work",
				AuthorName: fmt.Sprintf("author-%d", i),
				AuthorDate: "2024-01-15T10:00:00Z",
			})
		}
	}
	commits = append(commits, github.CommitRecord{Message: "drive-by", AuthorDate: "2024-01-15T10:00:00Z"})

	report := Commits(commits)

	if len(report.TopAuthors) != 10 {
		t.Fatalf("len(TopAuthors) = %d, want 10", len(report.TopAuthors))
	}
	if report.TopAuthors[0].Name != "author-11" || report.TopAuthors[0].CommitCount != 12 {
		t.Errorf("TopAuthors[0] = %+v, want author-11 with 12 commits", report.TopAuthors[0])
	}
	for i := 1; i < len(report.TopAuthors); i++ {
		if report.TopAuthors[i].CommitCount > report.TopAuthors[i-1].CommitCount {
			t.Errorf("TopAuthors not sorted descending at index %d", i)
		}
	}
}

// Authors with equal commit counts keep their first-encountered order.
func TestCommits_TopAuthorsTieOrder(t *testing.T) {
	commits := []github.CommitRecord{
		{Message: "a", AuthorName: "zoe", AuthorDate: "2024-01-15T10:00:00Z"},
		{Message: "b", AuthorName: "amy", AuthorDate: "2024-01-15T11:00:00Z"},
		{Message: "c", AuthorName: "zoe", AuthorDate: "2024-01-15T12:00:00Z"},
		{Message: "d", AuthorName: "amy", AuthorDate: "2024-01-15T13:00:00Z"},
		{Message: "e", AuthorName: "bob", AuthorDate: "2024-01-15T14:00:00Z"},
	}
	report := Commits(commits)

	want := []AuthorStat{
		{Name: "zoe", CommitCount: 2},
		{Name: "amy", CommitCount: 2},
		{Name: "bob", CommitCount: 1},
	}
	if len(report.TopAuthors) != len(want) {
		t.Fatalf("len(TopAuthors) = %d, want %d", len(report.TopAuthors), len(want))
	}
	for i, w := range want {
		if report.TopAuthors[i] != w {
			t.Errorf("TopAuthors[%d] = %+v, want %+v", i, report.TopAuthors[i], w)
		}
	}
}

func TestCommits_UnknownAuthor(t *testing.T) {
	report := Commits([]github.CommitRecord{{Message: "x", AuthorDate: "2024-01-15T10:00:00Z"}})
	if report.TopAuthors[0].Name != "Unknown" {
		t.Errorf("TopAuthors[0].Name = %q, want %q", report.TopAuthors[0].Name, "Unknown")
	}
}

func TestCommits_AvgPerDay(t *testing.T) {
	// 5 commits on one day: average is 5.00.
	var commits []github.CommitRecord
	for i := 0; i < 5; i++ {
		commits = append(commits, github.CommitRecord{
			Message:    "work",
			AuthorName: "dev",
			AuthorDate: fmt.Sprintf("2024-03-01T0%d:00:00Z", i),
		})
	}
	report := Commits(commits)
	if report.AvgCommitsPerDay != 5.00 {
		t.Errorf("AvgCommitsPerDay = %v, want 5.00", report.AvgCommitsPerDay)
	}

	// Spread over two days: 2.5.
	commits[0].AuthorDate = "2024-03-02T10:00:00Z"
	report = Commits(commits)
	if report.AvgCommitsPerDay != 2.5 {
		t.Errorf("AvgCommitsPerDay = %v, want 2.5", report.AvgCommitsPerDay)
	}
}

func TestCommits_UnparseableDates(t *testing.T) {
	commits := []github.CommitRecord{
		{Message: "a", AuthorName: "dev", AuthorDate: "2024-03-01T10:00:00Z"},
		{Message: "b", AuthorName: "dev", AuthorDate: "not a date"},
		{Message: "c", AuthorName: "dev", AuthorDate: ""},
	}
	report := Commits(commits)

	if report.TotalCommits != 3 {
		t.Errorf("TotalCommits = %d, want 3", report.TotalCommits)
	}
	// Only the parseable date contributes a weekday and an active day, so
	// the divisor is 1.
	if report.AvgCommitsPerDay != 3.00 {
		t.Errorf("AvgCommitsPerDay = %v, want 3.00", report.AvgCommitsPerDay)
	}
	total := 0
	for _, n := range report.CommitFrequency {
		total += n
	}
	if total != 1 {
		t.Errorf("CommitFrequency totals %d entries, want 1", total)
	}
}

func TestCommits_Weekday(t *testing.T) {
	// 2024-03-01 is a Friday.
	report := Commits([]github.CommitRecord{{Message: "x", AuthorName: "dev", AuthorDate: "2024-03-01T10:00:00Z"}})
	if got := report.CommitFrequency["Friday"]; got != 1 {
		t.Errorf("CommitFrequency[Friday] = %d, want 1 (full map: %v)", got, report.CommitFrequency)
	}
}
