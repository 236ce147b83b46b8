package analysis

import (
	"sort"
	"strings"

	"github.com/repolens/repolens/pkg/github"
)

// StructureReport summarizes the shape of a repository file tree.
// FileTypes holds the 10 most frequent file extensions with their counts.
type StructureReport struct {
	FileCount      int            `json:"file_count"`
	DirectoryCount int            `json:"directory_count"`
	FileTypes      map[string]int `json:"file_types"`
	TotalSize      int            `json:"total_size"`
}

// FileStructure counts files and directories in a flat tree listing and
// tallies file extensions (the lower-cased text after the last dot in the
// path). totalSize is the tree's declared size, 0 when the API reports none.
func FileStructure(entries []github.TreeEntry, totalSize int) *StructureReport {
	report := &StructureReport{
		FileTypes: map[string]int{},
		TotalSize: totalSize,
	}

	counts := make(map[string]int)
	var order []string // extensions in first-encountered order, for stable ties

	for _, entry := range entries {
		switch entry.Type {
		case "blob":
			report.FileCount++
			if i := strings.LastIndex(entry.Path, "."); i >= 0 {
				ext := strings.ToLower(entry.Path[i+1:])
				if _, seen := counts[ext]; !seen {
					order = append(order, ext)
				}
				counts[ext]++
			}
		case "tree":
			report.DirectoryCount++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	for i, ext := range order {
		if i == 10 {
			break
		}
		report.FileTypes[ext] = counts[ext]
	}
	return report
}
