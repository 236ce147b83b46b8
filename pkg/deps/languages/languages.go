// Package languages wires the individual manifest parsers into the fixed,
// order-significant probe list used by the dependency analyzer.
package languages

import (
	"github.com/repolens/repolens/pkg/deps"
	"github.com/repolens/repolens/pkg/deps/golang"
	"github.com/repolens/repolens/pkg/deps/java"
	"github.com/repolens/repolens/pkg/deps/javascript"
	"github.com/repolens/repolens/pkg/deps/php"
	"github.com/repolens/repolens/pkg/deps/python"
	"github.com/repolens/repolens/pkg/deps/ruby"
)

// Parsers returns the known manifest parsers in probe order. The order is
// part of the API contract: Report.PackageManagers lists manifests in this
// sequence.
func Parsers() []deps.Parser {
	return []deps.Parser{
		&javascript.PackageJSON{},
		&python.Requirements{},
		&python.Pipfile{},
		&java.POM{},
		&java.Gradle{},
		&ruby.Gemfile{},
		&php.Composer{},
		&golang.GoMod{},
	}
}
