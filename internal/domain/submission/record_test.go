package submission

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

// sequentialIDs returns a deterministic generator yielding id-1, id-2, ...
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func ids(r Record) []string {
	out := make([]string, len(r.Resources))
	for i, item := range r.Resources {
		out[i] = item.ID
	}
	return out
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	r := NewRecord(sequentialIDs())

	for _, f := range Fields {
		if got := r.Value(f); got != "" {
			t.Errorf("Value(%s) = %q, want empty", f, got)
		}
	}
	if len(r.Resources) != 1 {
		t.Fatalf("len(Resources) = %d, want 1", len(r.Resources))
	}
	if r.Resources[0].ID != "id-1" || !r.Resources[0].IsEmpty() {
		t.Errorf("Resources[0] = %+v, want blank item with id-1", r.Resources[0])
	}
}

func TestParseField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Field
		wantErr bool
	}{
		{name: "name", raw: "name", want: FieldName},
		{name: "camel case problem statement", raw: "problemStatement", want: FieldProblemStatement},
		{name: "resources is not scalar", raw: "resources", wantErr: true},
		{name: "case sensitive", raw: "Email", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseField(tt.raw)
			if tt.wantErr {
				requireValidationField(t, err, "field")
				return
			}
			if err != nil {
				t.Fatalf("ParseField(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseField(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRecord_With(t *testing.T) {
	t.Parallel()

	t.Run("every field round trips through Value", func(t *testing.T) {
		t.Parallel()
		r := NewRecord(sequentialIDs())
		for _, f := range Fields {
			next, err := r.With(f, "v-"+string(f))
			if err != nil {
				t.Fatalf("With(%s) error = %v", f, err)
			}
			if got := next.Value(f); got != "v-"+string(f) {
				t.Errorf("Value(%s) = %q, want %q", f, got, "v-"+string(f))
			}
			if r.Value(f) != "" {
				t.Errorf("With(%s) mutated the receiver", f)
			}
		}
	})

	t.Run("unknown field leaves record unchanged", func(t *testing.T) {
		t.Parallel()
		r := NewRecord(sequentialIDs())
		got, err := r.With("nickname", "x")
		requireValidationField(t, err, "field")
		if !slices.Equal(ids(got), ids(r)) {
			t.Errorf("With() returned modified record on error")
		}
	})
}

func TestRecord_ResetProject(t *testing.T) {
	t.Parallel()

	gen := sequentialIDs()
	r := Record{
		Name:             "Ada",
		WhatsApp:         "1234567890",
		LinkedIn:         "linkedin.com/in/ada",
		Email:            "ada@example.com",
		Codebase:         "github.com/ada/engine",
		Demo:             "ada.dev",
		Title:            "Engine",
		Description:      "Analytical",
		ProblemStatement: "Compute",
		Resources:        []ResourceItem{{ID: "keep", Remark: "paper", Link: "ada.dev/paper"}},
	}

	got := r.ResetProject(gen)

	want := Record{
		Name:      "Ada",
		WhatsApp:  "1234567890",
		LinkedIn:  "linkedin.com/in/ada",
		Email:     "ada@example.com",
		Resources: []ResourceItem{{ID: "id-1"}},
	}
	if got.Name != want.Name || got.WhatsApp != want.WhatsApp ||
		got.LinkedIn != want.LinkedIn || got.Email != want.Email {
		t.Errorf("identity fields not kept: %+v", got)
	}
	for _, f := range Fields {
		if !f.IsIdentity() && got.Value(f) != "" {
			t.Errorf("Value(%s) = %q after ResetProject, want empty", f, got.Value(f))
		}
	}
	if !slices.Equal(got.Resources, want.Resources) {
		t.Errorf("Resources = %+v, want %+v", got.Resources, want.Resources)
	}
	if r.Title != "Engine" {
		t.Error("ResetProject mutated the receiver")
	}
}

func TestRecord_FilledResources(t *testing.T) {
	t.Parallel()

	r := Record{Resources: []ResourceItem{
		{ID: "a", Remark: "", Link: ""},
		{ID: "b", Remark: "  ", Link: "\t"},
		{ID: "c", Remark: "talk", Link: ""},
		{ID: "d", Remark: "", Link: "x.io"},
	}}

	got := r.FilledResources()

	if want := []string{"c", "d"}; !slices.Equal(ids(Record{Resources: got}), want) {
		t.Errorf("FilledResources() ids = %v, want %v", ids(Record{Resources: got}), want)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		in           []ResourceItem
		want         []string
		wantReissued bool
	}{
		{
			name: "unique ids untouched",
			in:   []ResourceItem{{ID: "a"}, {ID: "b"}},
			want: []string{"a", "b"},
		},
		{
			name:         "missing ids assigned",
			in:           []ResourceItem{{}, {ID: "b"}, {}},
			want:         []string{"id-1", "b", "id-2"},
			wantReissued: true,
		},
		{
			name:         "duplicate ids repaired after first occurrence",
			in:           []ResourceItem{{ID: "a"}, {ID: "a"}, {ID: "b"}},
			want:         []string{"a", "id-1", "b"},
			wantReissued: true,
		},
		{
			name: "nil list becomes empty",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, reissued := Normalize(Record{Resources: tt.in}, sequentialIDs())
			if reissued != tt.wantReissued {
				t.Errorf("reissued = %v, want %v", reissued, tt.wantReissued)
			}
			if got.Resources == nil {
				t.Fatal("Normalize() left Resources nil")
			}
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestNewID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID() repeated %q", id)
		}
		seen[id] = struct{}{}
	}
}
