// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// RecordResponse mirrors the persisted record shape.
type RecordResponse struct {
	Name             string             `json:"name"`
	WhatsApp         string             `json:"whatsapp"`
	LinkedIn         string             `json:"linkedin"`
	Email            string             `json:"email"`
	Codebase         string             `json:"codebase"`
	Demo             string             `json:"demo"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	ProblemStatement string             `json:"problemStatement"`
	Resources        []ResourceResponse `json:"resources"`
}

// ResourceResponse is one resource item.
type ResourceResponse struct {
	ID     string `json:"id"`
	Remark string `json:"remark"`
	Link   string `json:"link"`
}

// ValidationResponse holds the current messages. Only fields with a message
// are present.
type ValidationResponse struct {
	Fields    map[string]string `json:"fields"`
	Resources map[string]string `json:"resources"`
}

// ProgressResponse reports overall and per-section completion.
type ProgressResponse struct {
	Percent  int               `json:"percent"`
	Filled   int               `json:"filled"`
	Total    int               `json:"total"`
	Sections []SectionResponse `json:"sections"`
}

// SectionResponse reports one section's completion.
type SectionResponse struct {
	Section  string `json:"section"`
	Complete bool   `json:"complete"`
}

// NoticeResponse is a user-facing title and description.
type NoticeResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubmissionResultResponse describes the last completed submission.
type SubmissionResultResponse struct {
	Status       string         `json:"status"`
	Acknowledged bool           `json:"acknowledged"`
	Notice       NoticeResponse `json:"notice"`
	Error        string         `json:"error,omitempty"`
	CompletedAt  string         `json:"completed_at"`
}

// FormStateResponse is returned by every form endpoint.
type FormStateResponse struct {
	Record       RecordResponse            `json:"record"`
	Validation   ValidationResponse        `json:"validation"`
	Progress     ProgressResponse          `json:"progress"`
	IsSubmitting bool                      `json:"isSubmitting"`
	LastResult   *SubmissionResultResponse `json:"lastResult"`
	Notice       *NoticeResponse           `json:"notice,omitempty"`
}

// AddResourceResponse is returned by POST /api/v1/form/resources.
type AddResourceResponse struct {
	Item  ResourceResponse  `json:"item"`
	State FormStateResponse `json:"state"`
}

// ToFormStateResponse converts a ports.FormState to its HTTP representation.
func ToFormStateResponse(s ports.FormState) FormStateResponse {
	resp := FormStateResponse{
		Record:       ToRecordResponse(s.Record),
		Validation:   toValidationResponse(s.Validation),
		Progress:     toProgressResponse(s.Progress),
		IsSubmitting: s.Submitting,
	}
	if s.LastResult != nil {
		resp.LastResult = toSubmissionResultResponse(s.LastResult)
	}
	if s.Notice != nil {
		n := toNoticeResponse(*s.Notice)
		resp.Notice = &n
	}
	return resp
}

// ToRecordResponse converts a domain record. Resources is never null.
func ToRecordResponse(r submission.Record) RecordResponse {
	resp := RecordResponse{
		Name:             r.Name,
		WhatsApp:         r.WhatsApp,
		LinkedIn:         r.LinkedIn,
		Email:            r.Email,
		Codebase:         r.Codebase,
		Demo:             r.Demo,
		Title:            r.Title,
		Description:      r.Description,
		ProblemStatement: r.ProblemStatement,
		Resources:        make([]ResourceResponse, len(r.Resources)),
	}
	for i, item := range r.Resources {
		resp.Resources[i] = ToResourceResponse(item)
	}
	return resp
}

// ToResourceResponse converts one resource item.
func ToResourceResponse(item submission.ResourceItem) ResourceResponse {
	return ResourceResponse{ID: item.ID, Remark: item.Remark, Link: item.Link}
}

func toValidationResponse(v submission.ValidationState) ValidationResponse {
	resp := ValidationResponse{
		Fields:    make(map[string]string, len(v.Fields)),
		Resources: make(map[string]string, len(v.Resources)),
	}
	for f, msg := range v.Fields {
		resp.Fields[f.String()] = msg
	}
	for id, msg := range v.Resources {
		resp.Resources[id] = msg
	}
	return resp
}

func toProgressResponse(p submission.Progress) ProgressResponse {
	resp := ProgressResponse{
		Percent:  p.Percent,
		Filled:   p.Filled,
		Total:    p.Total,
		Sections: make([]SectionResponse, len(p.Sections)),
	}
	for i, s := range p.Sections {
		resp.Sections[i] = SectionResponse{Section: string(s.Section), Complete: s.Complete}
	}
	return resp
}

func toNoticeResponse(n ports.Notice) NoticeResponse {
	return NoticeResponse{Title: n.Title, Description: n.Description}
}

func toSubmissionResultResponse(r *ports.SubmissionResult) *SubmissionResultResponse {
	resp := &SubmissionResultResponse{
		Status:       string(r.Status),
		Acknowledged: r.Acknowledged,
		Notice:       toNoticeResponse(r.Notice),
		CompletedAt:  r.CompletedAt.UTC().Format(time.RFC3339),
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}
