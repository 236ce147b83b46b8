// Package python parses pip requirements.txt and Pipfile manifests.
package python

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/repolens/repolens/pkg/deps"
)

// requirementRE matches "name" followed by a run of comparator characters
// and the version remainder, e.g. "requests>=2.28.0".
var requirementRE = regexp.MustCompile(`^([a-zA-Z0-9\-_]+)([><=!]+)(.+)$`)

// Requirements parses requirements.txt files. Each non-blank, non-comment
// line yields exactly one entry; a line without a recognized comparator is
// treated as a bare package name pinned to "latest".
type Requirements struct{}

func (r *Requirements) Filename() string { return "requirements.txt" }

func (r *Requirements) Parse(content string) (*deps.Result, bool) {
	found := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if m := requirementRE.FindStringSubmatch(line); m != nil {
			found[m[1]] = m[2] + m[3]
		} else {
			found[line] = "latest"
		}
	}

	if len(found) == 0 {
		return nil, false
	}
	return &deps.Result{Dependencies: found}, true
}
