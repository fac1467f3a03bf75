package submission

import (
	"fmt"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

// ResourceField names an editable sub-field of a ResourceItem.
type ResourceField string

const (
	ResourceRemark ResourceField = "remark"
	ResourceLink   ResourceField = "link"
)

// IsValid returns true if the sub-field is remark or link.
func (f ResourceField) IsValid() bool {
	return f == ResourceRemark || f == ResourceLink
}

// String implements fmt.Stringer.
func (f ResourceField) String() string {
	return string(f)
}

// IndexOf returns the position of the item with the given id, or -1.
func (r Record) IndexOf(id string) int {
	for i := range r.Resources {
		if r.Resources[i].ID == id {
			return i
		}
	}
	return -1
}

// Resource returns the item with the given id.
// Returns domain.ErrNotFound if no item has that id.
func (r Record) Resource(id string) (ResourceItem, error) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return ResourceItem{}, notFound(id)
	}
	return r.Resources[idx], nil
}

// AddResource appends a blank item with a freshly generated id and returns
// the new record together with the created item.
func (r Record) AddResource(newID IDGenerator) (Record, ResourceItem) {
	item := ResourceItem{ID: newID()}
	out := r.Clone()
	out.Resources = append(out.Resources, item)
	return out, item
}

// UpdateResource replaces the remark or link of the item with the given id.
// Returns domain.ErrNotFound for an unknown id and a *domain.ValidationError
// for an unknown sub-field; the receiver is returned unchanged in both cases.
func (r Record) UpdateResource(id string, field ResourceField, value string) (Record, error) {
	if !field.IsValid() {
		return r, &domain.ValidationError{
			Fields: map[string]string{"field": fmt.Sprintf("unknown resource field %q", field)},
		}
	}
	idx := r.IndexOf(id)
	if idx < 0 {
		return r, notFound(id)
	}

	out := r.Clone()
	switch field {
	case ResourceRemark:
		out.Resources[idx].Remark = value
	case ResourceLink:
		out.Resources[idx].Link = value
	}
	return out, nil
}

// RemoveResource deletes the item with the given id. Removing the last item
// leaves an empty list; reseeding a blank item is the caller's decision.
func (r Record) RemoveResource(id string) (Record, error) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return r, notFound(id)
	}

	out := r.Clone()
	out.Resources = append(out.Resources[:idx], out.Resources[idx+1:]...)
	return out, nil
}

// MoveResource moves the item with the given id to position, shifting the
// items in between. Positions outside [0, len-1] clamp to the nearest end.
func (r Record) MoveResource(id string, position int) (Record, error) {
	from := r.IndexOf(id)
	if from < 0 {
		return r, notFound(id)
	}

	to := min(max(position, 0), len(r.Resources)-1)
	out := r.Clone()
	if from == to {
		return out, nil
	}

	item := out.Resources[from]
	if from < to {
		copy(out.Resources[from:to], out.Resources[from+1:to+1])
	} else {
		copy(out.Resources[to+1:from+1], out.Resources[to:from])
	}
	out.Resources[to] = item
	return out, nil
}

func notFound(id string) error {
	return fmt.Errorf("resource %q: %w", id, domain.ErrNotFound)
}
