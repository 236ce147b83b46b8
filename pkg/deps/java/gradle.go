package java

import (
	"regexp"

	"github.com/repolens/repolens/pkg/deps"
)

// gradleDepRE matches implementation/compile/api declarations with a quoted
// "group:artifact:version" coordinate.
var gradleDepRE = regexp.MustCompile(`(?:implementation|compile|api)\s+['"]([^:]+):([^:]+):([^'"]+)['"]`)

// Gradle parses build.gradle files. Keys are "group:artifact" coordinates.
type Gradle struct{}

func (g *Gradle) Filename() string { return "build.gradle" }

func (g *Gradle) Parse(content string) (*deps.Result, bool) {
	found := make(map[string]string)
	for _, m := range gradleDepRE.FindAllStringSubmatch(content, -1) {
		found[m[1]+":"+m[2]] = m[3]
	}

	if len(found) == 0 {
		return nil, false
	}
	return &deps.Result{Dependencies: found}, true
}
