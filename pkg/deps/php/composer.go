// Package php parses Composer composer.json manifests.
package php

import (
	"encoding/json"

	"github.com/repolens/repolens/pkg/deps"
)

// Composer parses composer.json files. It extracts require and require-dev
// as verbatim name→version constraint maps.
type Composer struct{}

func (c *Composer) Filename() string { return "composer.json" }

func (c *Composer) Parse(content string) (*deps.Result, bool) {
	var pkg composerFile
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil, false
	}

	result := &deps.Result{
		Dependencies:    pkg.Require,
		DevDependencies: pkg.RequireDev,
	}
	if result.Dependencies == nil {
		result.Dependencies = map[string]string{}
	}
	if result.DevDependencies == nil {
		result.DevDependencies = map[string]string{}
	}
	return result, true
}

type composerFile struct {
	Name       string            `json:"name"`
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}
