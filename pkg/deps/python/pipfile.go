package python

import (
	"bufio"
	"strings"

	"github.com/repolens/repolens/pkg/deps"
)

// Pipfile parses Pipfile manifests. It scans the INI-like sections
// [packages] and [dev-packages]; any other section header ends capture.
// Values have surrounding whitespace and double quotes stripped.
type Pipfile struct{}

func (p *Pipfile) Filename() string { return "Pipfile" }

func (p *Pipfile) Parse(content string) (*deps.Result, bool) {
	packages := make(map[string]string)
	devPackages := make(map[string]string)
	section := ""

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "[packages]"):
			section = "packages"
		case strings.HasPrefix(line, "[dev-packages]"):
			section = "dev-packages"
		case strings.HasPrefix(line, "["):
			section = ""
		case section != "" && strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")
			key = strings.TrimSpace(key)
			value = strings.Trim(strings.TrimSpace(value), `"`)
			if section == "packages" {
				packages[key] = value
			} else {
				devPackages[key] = value
			}
		}
	}

	if len(packages) == 0 && len(devPackages) == 0 {
		return nil, false
	}
	return &deps.Result{Dependencies: packages, DevDependencies: devPackages}, true
}
