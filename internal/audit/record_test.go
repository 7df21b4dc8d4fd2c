package audit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/agentx-labs/auditcat/internal/catalog"
	"github.com/agentx-labs/auditcat/internal/registry"
	"github.com/google/go-cmp/cmp"
)

const testCatalog = `{
	"attributes": [
		{"name": "completionStatus", "isRequired": true},
		{"name": "note"},
		{"name": "account.number", "isRequired": true},
		{"name": "ReqCtx_userId", "isRequestContext": true, "isRequired": true},
		{"name": "ReqCtx_sessionId", "isRequestContext": true},
		{"name": "currency", "catalogId": "bank"}
	],
	"events": [
		{"name": "Login", "attributes": [
			{"name": "completionStatus"}, {"name": "note"},
			{"name": "ReqCtx_userId"}, {"name": "ReqCtx_sessionId"}
		]},
		{"name": "Transfer Funds", "catalogId": "bank", "attributes": [
			{"name": "account.number"}, {"name": "currency"}
		]}
	]
}`

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(catalog.StringSource(testCatalog))
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

func TestNewRecordNormalizesName(t *testing.T) {
	reg := newTestRegistry(t)

	rec, err := NewRecord(reg, "Transfer Funds", "bank")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if rec.Event() != "transferFunds" {
		t.Errorf("Event() = %q, want %q", rec.Event(), "transferFunds")
	}
}

func TestNewRecordUnknownEvent(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		event     string
		catalogID string
	}{
		{"Signup", ""},
		{"Transfer Funds", ""},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			_, err := NewRecord(reg, tt.event, tt.catalogID)
			if !errors.Is(err, registry.ErrEventNotFound) {
				t.Errorf("NewRecord error = %v, want ErrEventNotFound", err)
			}
		})
	}
}

func TestRecordString(t *testing.T) {
	reg := newTestRegistry(t)

	rec, err := NewRecord(reg, "Login", "")
	if err != nil {
		t.Fatal(err)
	}
	rec.Set("completionStatus", "Success")

	if got := rec.String(); got != `[login completionStatus="Success"]` {
		t.Errorf("String() = %s", got)
	}

	rec.Set("note", `say "hi"] \o/`)
	rec.Set("completionStatus", "Failure")
	want := `[login completionStatus="Failure" note="say \"hi\"\] \\o/"]`
	if got := rec.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestRecordSetSanitizes(t *testing.T) {
	reg := newTestRegistry(t)

	rec, err := NewRecord(reg, "Transfer Funds", "bank")
	if err != nil {
		t.Fatal(err)
	}
	rec.Set("account.number", "42")

	if v, ok := rec.Get("accountnumber"); !ok || v != "42" {
		t.Errorf("Get(accountnumber) = %q, %v", v, ok)
	}
	if v, ok := rec.Get("account.number"); !ok || v != "42" {
		t.Errorf("Get(account.number) = %q, %v", v, ok)
	}
}

func TestValidate(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name    string
		event   string
		catalog string
		fields  map[string]string
		context map[string]string
		want    *ValidationError
	}{
		{
			name:    "complete",
			event:   "Login",
			fields:  map[string]string{"completionStatus": "Success"},
			context: map[string]string{"userId": "u-1"},
		},
		{
			name:    "optional context not required",
			event:   "Login",
			fields:  map[string]string{"completionStatus": "Success", "note": "n"},
			context: map[string]string{"userId": "u-1"},
		},
		{
			name:  "missing everything",
			event: "Login",
			want: &ValidationError{
				Event:             "login",
				MissingAttributes: []string{"completionStatus"},
				MissingContext:    []string{"userId"},
			},
		},
		{
			name:    "unknown field",
			event:   "Login",
			fields:  map[string]string{"completionStatus": "Success", "color": "red"},
			context: map[string]string{"userId": "u-1"},
			want:    &ValidationError{Event: "login", UnknownAttributes: []string{"color"}},
		},
		{
			name:    "context attribute is not a field",
			event:   "Login",
			fields:  map[string]string{"completionStatus": "Success", "ReqCtx_userId": "u-1"},
			context: map[string]string{"userId": "u-1"},
			want:    &ValidationError{Event: "login", UnknownAttributes: []string{"ReqCtx_userId"}},
		},
		{
			name:    "sanitized required attribute",
			event:   "Transfer Funds",
			catalog: "bank",
			fields:  map[string]string{"currency": "EUR"},
			want:    &ValidationError{Event: "transferFunds", MissingAttributes: []string{"accountnumber"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecord(reg, tt.event, tt.catalog)
			if err != nil {
				t.Fatal(err)
			}
			for _, k := range sortedKeys(tt.fields) {
				rec.Set(k, tt.fields[k])
			}
			rec.SetContext(tt.context)

			err = rec.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if diff := cmp.Diff(tt.want, verr); diff != "" {
				t.Errorf("ValidationError (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{
		Event:             "login",
		MissingAttributes: []string{"completionStatus"},
		MissingContext:    []string{"userId"},
	}
	msg := err.Error()
	for _, want := range []string{"login", "missing attributes: completionStatus", "missing request context: userId"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestRecordLog(t *testing.T) {
	reg := newTestRegistry(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rec, err := NewRecord(reg, "Login", "")
	if err != nil {
		t.Fatal(err)
	}
	rec.Set("completionStatus", "Success").SetContext(map[string]string{"userId": "u-1"})
	rec.Log(context.Background(), logger)

	out := buf.String()
	for _, want := range []string{"msg=\"audit event\"", "event=login", "catalog=default", "fields.completionStatus=Success", "context.userId=u-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRecordLogResolvedCatalog(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name      string
		event     string
		catalogID string
		want      string
	}{
		{"overlay event", "Transfer Funds", "bank", "catalog=bank"},
		{"fallback to default", "Login", "bank", "catalog=default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			rec, err := NewRecord(reg, tt.event, tt.catalogID)
			if err != nil {
				t.Fatal(err)
			}
			rec.Log(context.Background(), logger)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}
