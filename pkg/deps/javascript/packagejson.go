// Package javascript parses npm package.json manifests.
package javascript

import (
	"encoding/json"

	"github.com/repolens/repolens/pkg/deps"
)

// PackageJSON parses package.json files. It extracts dependencies and
// devDependencies as verbatim name→version constraint maps.
type PackageJSON struct{}

func (p *PackageJSON) Filename() string { return "package.json" }

// Parse decodes content as JSON. Malformed JSON means the content is not a
// package.json, not an error. Missing sections default to empty maps.
func (p *PackageJSON) Parse(content string) (*deps.Result, bool) {
	var pkg packageFile
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil, false
	}

	result := &deps.Result{
		Dependencies:    pkg.Dependencies,
		DevDependencies: pkg.DevDependencies,
	}
	if result.Dependencies == nil {
		result.Dependencies = map[string]string{}
	}
	if result.DevDependencies == nil {
		result.DevDependencies = map[string]string{}
	}
	return result, true
}

type packageFile struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}
