package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(testPath(name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func TestParse_CommentedDocument(t *testing.T) {
	doc, err := Parse(readTestdata(t, "audit-catalog.json"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if doc.Version != "1.4.0" {
		t.Errorf("Version = %q, want %q", doc.Version, "1.4.0")
	}
	if len(doc.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(doc.Attributes))
	}
	if len(doc.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(doc.Events))
	}

	want := Attribute{
		Name:        "completionStatus",
		DisplayName: "Completion Status",
		Description: "Whether the action completed",
		DataType:    "STRING",
		CatalogID:   "default",
		Examples:    []string{"Success", "Failure"},
		Constraints: []Constraint{{Type: ConstraintType{Name: "enum"}, Value: "Success|Failure"}},
	}
	if diff := cmp.Diff(want, doc.Attributes[0]); diff != "" {
		t.Errorf("attribute mismatch (-want +got):\n%s", diff)
	}

	login := doc.Events[0]
	if login.CatalogID != "" {
		t.Errorf("null catalogId decoded as %q, want empty", login.CatalogID)
	}
	if login.IndexCatalog() != DefaultCatalog {
		t.Errorf("IndexCatalog() = %q, want %q", login.IndexCatalog(), DefaultCatalog)
	}
	names := []string{login.Attributes[0].Name, login.Attributes[1].Name}
	if diff := cmp.Diff([]string{"completionStatus", "ReqCtx_userId"}, names); diff != "" {
		t.Errorf("event attribute order (-want +got):\n%s", diff)
	}
}

func TestParse_ShortFlagKeys(t *testing.T) {
	doc, err := Parse(readTestdata(t, "audit-catalog.json"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	userID := doc.Attributes[1]
	if !userID.RequestContext || !userID.Required {
		t.Errorf("short keys not honored: requestContext=%v required=%v", userID.RequestContext, userID.Required)
	}
	if !userID.IsRequiredContext() {
		t.Error("IsRequiredContext() = false, want true")
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"unterminated object", `{"attributes": [`},
		{"unterminated comment", `{"attributes": [] /* open`},
		{"attributes wrong type", `{"attributes": "nope", "events": []}`},
		{"top-level array", `[]`},
		{"flag wrong type", `{"attributes": [{"name": "a", "isRequired": "yes"}]}`},
		{"null document", `null`},
		{"empty object", `{}`},
		{"misspelled keys", `{"attribute": [{"name": "a"}], "event": []}`},
		{"null sequences", `{"attributes": null, "events": null}`},
		{"events missing", `{"attributes": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %T is not *ParseError", err)
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	text := "{\n  \"attributes\": [],\n  \"events\": 7\n}"
	_, err := Parse(text)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Line != 3 {
		t.Errorf("Line = %d, want 3", pe.Line)
	}
}

func TestParse_EmptySequences(t *testing.T) {
	doc, err := Parse(`{"attributes": [], "events": []}`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(doc.Attributes) != 0 || len(doc.Events) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}

func TestIndexCatalog(t *testing.T) {
	tests := []struct {
		catalogID string
		want      string
	}{
		{"", DefaultCatalog},
		{DefaultCatalog, DefaultCatalog},
		{"bank", "bank"},
	}

	for _, tt := range tests {
		if got := (Attribute{CatalogID: tt.catalogID}).IndexCatalog(); got != tt.want {
			t.Errorf("Attribute{CatalogID: %q}.IndexCatalog() = %q, want %q", tt.catalogID, got, tt.want)
		}
		if got := (Event{CatalogID: tt.catalogID}).IndexCatalog(); got != tt.want {
			t.Errorf("Event{CatalogID: %q}.IndexCatalog() = %q, want %q", tt.catalogID, got, tt.want)
		}
	}
}
