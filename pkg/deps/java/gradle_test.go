package java

import "testing"

func TestGradle_Filename(t *testing.T) {
	parser := &Gradle{}
	if got := parser.Filename(); got != "build.gradle" {
		t.Errorf("Filename() = %q, want %q", got, "build.gradle")
	}
}

func TestGradle_Parse(t *testing.T) {
	content := `plugins {
    id 'java'
}

dependencies {
    implementation 'org.springframework:spring-core:6.1.0'
    api "com.google.guava:guava:33.0.0-jre"
    compile 'junit:junit:4.13.2'
    testImplementation 'org.mockito:mockito-core:5.0.0'
}`
	parser := &Gradle{}
	result, ok := parser.Parse(content)
	if !ok {
		t.Fatal("Parse returned ok=false")
	}

	want := map[string]string{
		"org.springframework:spring-core": "6.1.0",
		"com.google.guava:guava":          "33.0.0-jre",
		"junit:junit":                     "4.13.2",
		// testImplementation contains "implementation" as a substring and
		// matches too.
		"org.mockito:mockito-core": "5.0.0",
	}
	for coord, version := range want {
		if got := result.Dependencies[coord]; got != version {
			t.Errorf("Dependencies[%q] = %q, want %q", coord, got, version)
		}
	}
}

func TestGradle_Parse_NoDeclarations(t *testing.T) {
	parser := &Gradle{}
	if _, ok := parser.Parse("plugins { id 'java' }\n"); ok {
		t.Error("Parse ok=true for build file without dependencies, want false")
	}
}
