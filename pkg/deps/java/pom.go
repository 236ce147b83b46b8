// Package java parses Maven pom.xml and Gradle build.gradle manifests.
//
// Both parsers are regex-driven rather than full grammars. For pom.xml this
// means a dependency block is recognized whenever it contains groupId,
// artifactId, and version in order, regardless of what else sits between the
// tags. That trades standards compliance for robustness against the many
// slightly-off POM files in the wild.
package java

import (
	"regexp"
	"strings"

	"github.com/repolens/repolens/pkg/deps"
)

// dependencyRE extracts groupId/artifactId/version from a <dependency>
// block. Non-greedy and dot-matches-newline so blocks may span lines and
// carry arbitrary intervening elements (scope, exclusions, comments).
var dependencyRE = regexp.MustCompile(`(?s)<dependency>.*?<groupId>(.*?)</groupId>.*?<artifactId>(.*?)</artifactId>.*?<version>(.*?)</version>.*?</dependency>`)

// POM parses pom.xml files. Keys are "group:artifact" coordinates.
type POM struct{}

func (p *POM) Filename() string { return "pom.xml" }

func (p *POM) Parse(content string) (*deps.Result, bool) {
	found := make(map[string]string)
	for _, m := range dependencyRE.FindAllStringSubmatch(content, -1) {
		found[m[1]+":"+m[2]] = strings.TrimSpace(m[3])
	}

	if len(found) == 0 {
		return nil, false
	}
	return &deps.Result{Dependencies: found}, true
}
