// Package ruby parses Bundler Gemfile manifests.
package ruby

import (
	"regexp"

	"github.com/repolens/repolens/pkg/deps"
)

// gemRE matches `gem 'name'` with an optional second quoted version
// argument. Further arguments (groups, platforms) are ignored.
var gemRE = regexp.MustCompile(`gem\s+['"]([^'"]+)['"](?:,\s*['"]([^'"]+)['"])?`)

// Gemfile parses Gemfile files. A gem without a version constraint is
// recorded as "latest".
type Gemfile struct{}

func (g *Gemfile) Filename() string { return "Gemfile" }

func (g *Gemfile) Parse(content string) (*deps.Result, bool) {
	found := make(map[string]string)
	for _, m := range gemRE.FindAllStringSubmatch(content, -1) {
		version := m[2]
		if version == "" {
			version = "latest"
		}
		found[m[1]] = version
	}

	if len(found) == 0 {
		return nil, false
	}
	return &deps.Result{Dependencies: found}, true
}
