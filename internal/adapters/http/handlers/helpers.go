package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-collector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// maxBodyBytes caps request bodies. Form edits are a few hundred bytes.
const maxBodyBytes = 1 << 20

func parseField(r *http.Request) (submission.Field, error) {
	return submission.ParseField(chi.URLParam(r, "field"))
}

// resourceID returns the {id} path parameter. Ids are opaque; an unknown id
// is the service's not-found.
func resourceID(r *http.Request) (string, error) {
	if id := chi.URLParam(r, "id"); id != "" {
		return id, nil
	}
	return "", &domain.ValidationError{Fields: map[string]string{"id": domain.MsgRequired}}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "writing response body",
			logging.Operation("handlers.respondJSON"),
			logging.Err(err),
		)
	}
}

func respondState(w http.ResponseWriter, r *http.Request, state ports.FormState) {
	respondJSON(w, r, http.StatusOK, dto.ToFormStateResponse(state))
}

type validatable interface {
	Validate() error
}

// bind decodes the request body into dst and validates it. On failure it
// writes the 400 problem and reports false.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": bodyProblem(err)}})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return "must not exceed 1 MiB"
	case errors.Is(err, io.EOF):
		return domain.MsgRequired
	default:
		return "invalid JSON"
	}
}
