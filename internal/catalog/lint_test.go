package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestLint_Valid(t *testing.T) {
	result, err := Lint(readTestdata(t, "audit-catalog.json"))
	if err != nil {
		t.Fatalf("Lint error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("unexpected issue: path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestLint_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantPath string
	}{
		{"missing events", `{"attributes": []}`, ""},
		{"attribute without name", `{"attributes": [{"catalogId": "x"}], "events": []}`, "/attributes/0"},
		{"empty event name", `{"attributes": [], "events": [{"name": ""}]}`, "/events/0/name"},
		{"flag not boolean", `{"attributes": [{"name": "a", "isRequired": "yes"}], "events": []}`, "/attributes/0/isRequired"},
		{"reference without name", `{"attributes": [], "events": [{"name": "Login", "attributes": [{}]}]}`, "/events/0/attributes/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Lint(tt.text)
			if err != nil {
				t.Fatalf("Lint error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			if len(result.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no issue at %q in %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestLint_NotJSON(t *testing.T) {
	_, err := Lint(`{"attributes": [`)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestLintIssueString(t *testing.T) {
	issue := LintIssue{Path: "/events/0", Message: "missing property 'name'"}
	if got := issue.String(); !strings.HasPrefix(got, "/events/0: ") {
		t.Errorf("String() = %q", got)
	}
}

func TestSchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
