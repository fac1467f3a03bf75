package dto

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
)

// ContentTypeProblem is the media type of every error body the API writes.
const ContentTypeProblem = "application/problem+json"

// Problem is an RFC 9457 problem details body. State is an extension member
// carrying the form state after a failed submission, so the caller sees the
// recorded validation and the last result.
type Problem struct {
	Type     string             `json:"type"`
	Title    string             `json:"title"`
	Status   int                `json:"status"`
	Detail   string             `json:"detail,omitempty"`
	Instance string             `json:"instance,omitempty"`
	Errors   []FieldProblem     `json:"errors,omitempty"`
	State    *FormStateResponse `json:"state,omitempty"`
}

// FieldProblem is one rejected field, keyed by its record location such as
// "email" or "resources.r1.link".
type FieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statuses is checked in order. Timeout precedes transport so a timed-out
// delivery is never reported as 502. A bare deadline comes last so a
// transport error carrying one stays a 502.
var statuses = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrSubmissionTimeout, http.StatusGatewayTimeout},
	{domain.ErrSubmissionTransport, http.StatusBadGateway},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusOf maps err onto an HTTP status through the domain sentinels it
// wraps. Anything unrecognized is a 500.
func StatusOf(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewProblem builds a bare problem for status, scoped to the request URI.
func NewProblem(r *http.Request, status int, detail string) Problem {
	return Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// ProblemFor describes err. A *domain.ValidationError contributes its
// fields, sorted by location.
func ProblemFor(r *http.Request, err error) Problem {
	p := NewProblem(r, StatusOf(err), err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, loc := range slices.Sorted(maps.Keys(verr.Fields)) {
			p.Errors = append(p.Errors, FieldProblem{Location: loc, Message: verr.Fields[loc]})
		}
	}
	return p
}

// WriteProblem writes p with its status and the problem media type.
func WriteProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(p.Status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "writing problem body",
			logging.Operation("dto.WriteProblem"),
			logging.Err(err),
		)
	}
}

// WriteErrorResponse writes the problem describing err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, ProblemFor(r, err))
}

// WriteStateErrorResponse is WriteErrorResponse with the form state attached.
func WriteStateErrorResponse(w http.ResponseWriter, r *http.Request, err error, state *FormStateResponse) {
	p := ProblemFor(r, err)
	p.State = state
	WriteProblem(w, r, p)
}
