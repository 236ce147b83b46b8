// Package golang parses go.mod manifests.
package golang

import (
	"bufio"
	"strings"

	"github.com/repolens/repolens/pkg/deps"
)

// GoMod parses go.mod files. It handles both the parenthesized require
// block and single-line require directives. The module path — the first
// whitespace-separated token of each require line — becomes the map key and
// the second token the version; lines with fewer than two tokens are
// skipped silently.
type GoMod struct{}

func (g *GoMod) Filename() string { return "go.mod" }

func (g *GoMod) Parse(content string) (*deps.Result, bool) {
	found := make(map[string]string)
	inBlock := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "require ("):
			inBlock = true
		case line == ")" && inBlock:
			inBlock = false
		case strings.HasPrefix(line, "//"):
			// standalone comment, common inside require blocks
		case inBlock || strings.HasPrefix(line, "require "):
			fields := strings.Fields(strings.TrimPrefix(line, "require "))
			if len(fields) >= 2 {
				found[fields[0]] = fields[1]
			}
		}
	}

	if len(found) == 0 {
		return nil, false
	}
	return &deps.Result{Dependencies: found}, true
}
