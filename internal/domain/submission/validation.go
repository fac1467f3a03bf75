package submission

import (
	"maps"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

// Trigger identifies the user interaction that may cause validation.
type Trigger int

const (
	// TriggerChange fires on every edit of a value.
	TriggerChange Trigger = iota
	// TriggerBlur fires when a value loses focus.
	TriggerBlur
)

// String implements fmt.Stringer.
func (t Trigger) String() string {
	if t == TriggerBlur {
		return "blur"
	}
	return "change"
}

// ShouldValidate applies the trigger policy: blur always validates, change
// validates only once the value has been touched (blurred at least once).
func ShouldValidate(t Trigger, touched bool) bool {
	return t == TriggerBlur || touched
}

// ValidationState maps fields, and resource ids for their link sub-field, to
// the last known error message. A missing entry means "no known error",
// which is not the same as valid.
type ValidationState struct {
	Fields    map[Field]string
	Resources map[string]string
}

// NewValidationState returns an empty state.
func NewValidationState() ValidationState {
	return ValidationState{
		Fields:    make(map[Field]string),
		Resources: make(map[string]string),
	}
}

// Set records msg for field. An empty msg removes the entry.
func (s ValidationState) Set(field Field, msg string) {
	if msg == "" {
		delete(s.Fields, field)
		return
	}
	s.Fields[field] = msg
}

// SetResource records msg for the link of the item with the given id.
func (s ValidationState) SetResource(id, msg string) {
	if msg == "" {
		delete(s.Resources, id)
		return
	}
	s.Resources[id] = msg
}

// Message returns the recorded message for field, or "".
func (s ValidationState) Message(field Field) string {
	return s.Fields[field]
}

// ResourceMessage returns the recorded link message for the item, or "".
func (s ValidationState) ResourceMessage(id string) string {
	return s.Resources[id]
}

// HasErrors reports whether any message is recorded.
func (s ValidationState) HasErrors() bool {
	return len(s.Fields) > 0 || len(s.Resources) > 0
}

// ClearProject drops every entry except those of the identity fields.
func (s ValidationState) ClearProject() {
	for f := range s.Fields {
		if !f.IsIdentity() {
			delete(s.Fields, f)
		}
	}
	clear(s.Resources)
}

// Clear drops every entry.
func (s ValidationState) Clear() {
	clear(s.Fields)
	clear(s.Resources)
}

// Clone returns an independent copy.
func (s ValidationState) Clone() ValidationState {
	out := NewValidationState()
	maps.Copy(out.Fields, s.Fields)
	maps.Copy(out.Resources, s.Resources)
	return out
}

// AsError flattens the state into a *domain.ValidationError keyed by field
// name, with resource links keyed as "resources.<id>.link". Returns nil when
// the state holds no messages.
func (s ValidationState) AsError() error {
	if !s.HasErrors() {
		return nil
	}

	fields := make(map[string]string, len(s.Fields)+len(s.Resources))
	for f, msg := range s.Fields {
		fields[string(f)] = msg
	}
	for id, msg := range s.Resources {
		fields[FieldResources+"."+id+"."+string(ResourceLink)] = msg
	}
	return &domain.ValidationError{Fields: fields}
}
