package analysis

import (
	"testing"

	"github.com/repolens/repolens/pkg/github"
)

func TestFileStructure(t *testing.T) {
	entries := []github.TreeEntry{
		{Path: "a.py", Type: "blob"},
		{Path: "b", Type: "tree"},
		{Path: "b/c.py", Type: "blob"},
		{Path: "README.md", Type: "blob"},
		{Path: "Makefile", Type: "blob"},
	}
	report := FileStructure(entries, 4096)

	if report.FileCount != 4 {
		t.Errorf("FileCount = %d, want 4", report.FileCount)
	}
	if report.DirectoryCount != 1 {
		t.Errorf("DirectoryCount = %d, want 1", report.DirectoryCount)
	}
	if got := report.FileTypes["py"]; got != 2 {
		t.Errorf("FileTypes[py] = %d, want 2", got)
	}
	if got := report.FileTypes["md"]; got != 1 {
		t.Errorf("FileTypes[md] = %d, want 1", got)
	}
	// Extensionless files contribute to the count but not to FileTypes.
	if len(report.FileTypes) != 2 {
		t.Errorf("FileTypes = %v, want 2 entries", report.FileTypes)
	}
	if report.TotalSize != 4096 {
		t.Errorf("TotalSize = %d, want 4096", report.TotalSize)
	}
}

func TestFileStructure_ExtensionLowercased(t *testing.T) {
	report := FileStructure([]github.TreeEntry{
		{Path: "Main.GO", Type: "blob"},
		{Path: "util.go", Type: "blob"},
	}, 0)
	if got := report.FileTypes["go"]; got != 2 {
		t.Errorf("FileTypes[go] = %d, want 2 (full map: %v)", got, report.FileTypes)
	}
}

func TestFileStructure_TopTenExtensions(t *testing.T) {
	var entries []github.TreeEntry
	exts := []string{"go", "py", "js", "ts", "rb", "rs", "c", "h", "md", "txt", "yml", "json"}
	for i, ext := range exts {
		// ext i appears len(exts)-i times, so "go" is most frequent.
		for j := 0; j < len(exts)-i; j++ {
			entries = append(entries, github.TreeEntry{Path: "f." + ext, Type: "blob"})
		}
	}
	report := FileStructure(entries, 0)

	if len(report.FileTypes) != 10 {
		t.Fatalf("FileTypes has %d entries, want 10", len(report.FileTypes))
	}
	if _, found := report.FileTypes["go"]; !found {
		t.Error("most frequent extension missing from FileTypes")
	}
	if _, found := report.FileTypes["json"]; found {
		t.Error("least frequent extension present, want trimmed to top 10")
	}
}

func TestFileStructure_Empty(t *testing.T) {
	report := FileStructure(nil, 0)
	if report.FileCount != 0 || report.DirectoryCount != 0 {
		t.Errorf("report = %+v, want zero counts", report)
	}
	if report.FileTypes == nil {
		t.Error("FileTypes is nil, want empty map")
	}
}
