package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// withRouteParams attaches chi URL parameters so handlers can be called
// without a router.
func withRouteParams(r *http.Request, params map[string]string) *http.Request {
	rc := chi.NewRouteContext()
	for name, value := range params {
		rc.URLParams.Add(name, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
}

func validRecord() submission.Record {
	return submission.Record{
		Name:             "Ada Lovelace",
		LinkedIn:         "https://www.linkedin.com/in/ada",
		Email:            "ada@example.com",
		Codebase:         "https://github.com/ada/engine",
		Title:            "Analytical Engine",
		Description:      "A general purpose computer",
		ProblemStatement: "Tables are computed by hand",
		Resources:        []submission.ResourceItem{{ID: "r1", Remark: "Notes", Link: "https://example.com/notes"}},
	}
}

func stateOf(rec submission.Record) ports.FormState {
	return ports.FormState{
		Record:     rec,
		Validation: submission.NewValidationState(),
		Progress:   submission.ComputeProgress(rec),
	}
}

func encodeBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(v); err != nil {
		t.Fatalf("encoding request body: %v", err)
	}
	return &b
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}
