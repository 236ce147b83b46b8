package python

import (
	"testing"
)

func TestRequirements_Filename(t *testing.T) {
	parser := &Requirements{}
	if got := parser.Filename(); got != "requirements.txt" {
		t.Errorf("Filename() = %q, want %q", got, "requirements.txt")
	}
}

func TestRequirements_Parse(t *testing.T) {
	content := `# Test requirements
requests>=2.28.0
click==8.1.0
pydantic!=1.0
httpx

# Empty lines above
`
	parser := &Requirements{}
	result, ok := parser.Parse(content)
	if !ok {
		t.Fatal("Parse returned ok=false")
	}

	want := map[string]string{
		"requests": ">=2.28.0",
		"click":    "==8.1.0",
		"pydantic": "!=1.0",
		"httpx":    "latest",
	}
	if len(result.Dependencies) != len(want) {
		t.Fatalf("got %d dependencies, want %d", len(result.Dependencies), len(want))
	}
	for name, version := range want {
		if got := result.Dependencies[name]; got != version {
			t.Errorf("Dependencies[%q] = %q, want %q", name, got, version)
		}
	}
	if result.DevDependencies != nil {
		t.Error("requirements.txt has no dev section, DevDependencies should be nil")
	}
}

func TestRequirements_Parse_BareNames(t *testing.T) {
	parser := &Requirements{}
	result, ok := parser.Parse("flask\nnumpy\n")
	if !ok {
		t.Fatal("Parse returned ok=false")
	}
	for _, name := range []string{"flask", "numpy"} {
		if got := result.Dependencies[name]; got != "latest" {
			t.Errorf("Dependencies[%q] = %q, want %q", name, got, "latest")
		}
	}
}

// A package declared twice keeps the later version, matching manifest
// semantics where redeclaration replaces.
func TestRequirements_Parse_DuplicateLastWriteWins(t *testing.T) {
	parser := &Requirements{}
	result, ok := parser.Parse("requests>=1.0\nrequests>=2.28.0\n")
	if !ok {
		t.Fatal("Parse returned ok=false")
	}
	if got := result.Dependencies["requests"]; got != ">=2.28.0" {
		t.Errorf("Dependencies[requests] = %q, want later declaration %q", got, ">=2.28.0")
	}
	if len(result.Dependencies) != 1 {
		t.Errorf("got %d dependencies, want 1", len(result.Dependencies))
	}
}

func TestRequirements_Parse_Empty(t *testing.T) {
	parser := &Requirements{}

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"only comments", "# nothing here\n# still nothing\n"},
		{"only blanks", "\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result, ok := parser.Parse(tt.content); ok {
				t.Errorf("Parse(%q) ok=true with result %v, want ok=false", tt.content, result)
			}
		})
	}
}
