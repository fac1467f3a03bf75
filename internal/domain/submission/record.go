// Package submission models one contributor's project submission: the
// Record with its identity-stable resource list, the fixed validation rule
// table, the validation trigger policy, and progress computation.
//
// Every operation in this package is pure. Mutators take a Record by value
// and return a new Record; the receiver's resource slice is never shared
// with the result, so callers can hold on to older values safely.
package submission

import (
	"fmt"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

// Field names a scalar field of a Record. The string values double as the
// wire and storage keys.
type Field string

const (
	FieldName             Field = "name"
	FieldWhatsApp         Field = "whatsapp"
	FieldLinkedIn         Field = "linkedin"
	FieldEmail            Field = "email"
	FieldCodebase         Field = "codebase"
	FieldDemo             Field = "demo"
	FieldTitle            Field = "title"
	FieldDescription      Field = "description"
	FieldProblemStatement Field = "problemStatement"
)

// FieldResources is the key used for the resource list in progress and
// validation output. It is not a scalar Field.
const FieldResources = "resources"

// Fields lists every scalar field in display order.
var Fields = []Field{
	FieldName,
	FieldWhatsApp,
	FieldLinkedIn,
	FieldEmail,
	FieldCodebase,
	FieldDemo,
	FieldTitle,
	FieldDescription,
	FieldProblemStatement,
}

// IdentityFields survive a successful submission so the same contributor
// can submit several projects.
var IdentityFields = []Field{FieldName, FieldWhatsApp, FieldLinkedIn, FieldEmail}

// ParseField converts a raw field name into a Field. Returns a
// *domain.ValidationError for unknown names.
func ParseField(raw string) (Field, error) {
	f := Field(raw)
	if !f.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{"field": fmt.Sprintf("unknown field %q", raw)},
		}
	}
	return f, nil
}

// IsValid returns true if the field is one of the defined constants.
func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldWhatsApp, FieldLinkedIn, FieldEmail, FieldCodebase,
		FieldDemo, FieldTitle, FieldDescription, FieldProblemStatement:
		return true
	default:
		return false
	}
}

// IsIdentity reports whether the field belongs to the contributor's identity.
func (f Field) IsIdentity() bool {
	switch f {
	case FieldName, FieldWhatsApp, FieldLinkedIn, FieldEmail:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}

// ResourceItem is one citation within a Record. ID is assigned once when the
// item is created and is the only key used to address it.
type ResourceItem struct {
	ID     string
	Remark string
	Link   string
}

// IsEmpty reports whether both remark and link are blank after trimming.
func (r ResourceItem) IsEmpty() bool {
	return isBlank(r.Remark) && isBlank(r.Link)
}

// Record is the complete submission for one project contribution.
type Record struct {
	Name             string
	WhatsApp         string
	LinkedIn         string
	Email            string
	Codebase         string
	Demo             string
	Title            string
	Description      string
	ProblemStatement string
	Resources        []ResourceItem
}

// NewRecord returns the fresh default: every field empty and a single blank
// resource item.
func NewRecord(newID IDGenerator) Record {
	return Record{
		Resources: []ResourceItem{{ID: newID()}},
	}
}

// Value returns the current value of a scalar field. Unknown fields yield "".
func (r Record) Value(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldWhatsApp:
		return r.WhatsApp
	case FieldLinkedIn:
		return r.LinkedIn
	case FieldEmail:
		return r.Email
	case FieldCodebase:
		return r.Codebase
	case FieldDemo:
		return r.Demo
	case FieldTitle:
		return r.Title
	case FieldDescription:
		return r.Description
	case FieldProblemStatement:
		return r.ProblemStatement
	default:
		return ""
	}
}

// With returns a copy of the record with one scalar field replaced.
func (r Record) With(f Field, value string) (Record, error) {
	out := r.Clone()
	switch f {
	case FieldName:
		out.Name = value
	case FieldWhatsApp:
		out.WhatsApp = value
	case FieldLinkedIn:
		out.LinkedIn = value
	case FieldEmail:
		out.Email = value
	case FieldCodebase:
		out.Codebase = value
	case FieldDemo:
		out.Demo = value
	case FieldTitle:
		out.Title = value
	case FieldDescription:
		out.Description = value
	case FieldProblemStatement:
		out.ProblemStatement = value
	default:
		_, err := ParseField(string(f))
		return r, err
	}
	return out, nil
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	if r.Resources != nil {
		out.Resources = make([]ResourceItem, len(r.Resources))
		copy(out.Resources, r.Resources)
	}
	return out
}

// ResetProject keeps the identity fields and clears everything else. The
// resource list is reseeded with one blank item carrying a fresh id.
func (r Record) ResetProject(newID IDGenerator) Record {
	return Record{
		Name:      r.Name,
		WhatsApp:  r.WhatsApp,
		LinkedIn:  r.LinkedIn,
		Email:     r.Email,
		Resources: []ResourceItem{{ID: newID()}},
	}
}

// FilledResources returns the items that carry a remark or a link, in order.
// Fully blank items are dropped; they are placeholders, not citations.
func (r Record) FilledResources() []ResourceItem {
	out := make([]ResourceItem, 0, len(r.Resources))
	for _, item := range r.Resources {
		if !item.IsEmpty() {
			out = append(out, item)
		}
	}
	return out
}
