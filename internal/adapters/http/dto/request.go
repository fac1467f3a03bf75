package dto

import (
	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
)

const msgRequired = "is required"

// SetFieldRequest is the body of PUT /api/v1/form/fields/{field}. An empty
// string is a valid value; only a missing key is rejected.
type SetFieldRequest struct {
	Value *string `json:"value"`
}

// Validate checks that the value key is present.
func (r *SetFieldRequest) Validate() error {
	if r.Value == nil {
		return &domain.ValidationError{Fields: map[string]string{"value": msgRequired}}
	}
	return nil
}

// UpdateResourceRequest is the body of PATCH /api/v1/form/resources/{id}.
// Nil means "do not change this field"; at least one must be set.
type UpdateResourceRequest struct {
	Remark *string `json:"remark,omitempty"`
	Link   *string `json:"link,omitempty"`
}

// Validate checks that at least one sub-field is provided.
func (r *UpdateResourceRequest) Validate() error {
	if r.Remark == nil && r.Link == nil {
		return &domain.ValidationError{Fields: map[string]string{"body": "remark or link is required"}}
	}
	return nil
}

// Changes lists the requested sub-field updates in a fixed order.
func (r *UpdateResourceRequest) Changes() []ResourceChange {
	changes := make([]ResourceChange, 0, 2)
	if r.Remark != nil {
		changes = append(changes, ResourceChange{Field: submission.ResourceRemark, Value: *r.Remark})
	}
	if r.Link != nil {
		changes = append(changes, ResourceChange{Field: submission.ResourceLink, Value: *r.Link})
	}
	return changes
}

// ResourceChange is one sub-field update from an UpdateResourceRequest.
type ResourceChange struct {
	Field submission.ResourceField
	Value string
}

// MoveResourceRequest is the body of POST /api/v1/form/resources/{id}/move.
type MoveResourceRequest struct {
	Position *int `json:"position"`
}

// Validate checks that the position is present. Out-of-range values are
// clamped by the store rather than rejected.
func (r *MoveResourceRequest) Validate() error {
	if r.Position == nil {
		return &domain.ValidationError{Fields: map[string]string{"position": msgRequired}}
	}
	return nil
}
