package submission

import (
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

func threeItems() Record {
	return Record{Resources: []ResourceItem{
		{ID: "a", Remark: "A"},
		{ID: "b", Remark: "B"},
		{ID: "c", Remark: "C"},
	}}
}

func TestRecord_AddResource(t *testing.T) {
	t.Parallel()

	gen := sequentialIDs()
	r := NewRecord(gen)

	next, item := r.AddResource(gen)

	if item.ID != "id-2" || !item.IsEmpty() {
		t.Errorf("AddResource() item = %+v, want blank id-2", item)
	}
	if want := []string{"id-1", "id-2"}; !slices.Equal(ids(next), want) {
		t.Errorf("ids = %v, want %v", ids(next), want)
	}
	if len(r.Resources) != 1 {
		t.Error("AddResource mutated the receiver")
	}
}

func TestRecord_UpdateResource(t *testing.T) {
	t.Parallel()

	t.Run("updates remark and link independently", func(t *testing.T) {
		t.Parallel()
		r := threeItems()

		r2, err := r.UpdateResource("b", ResourceLink, "example.com")
		if err != nil {
			t.Fatalf("UpdateResource(link) error = %v", err)
		}
		r3, err := r2.UpdateResource("b", ResourceRemark, "changed")
		if err != nil {
			t.Fatalf("UpdateResource(remark) error = %v", err)
		}

		got, _ := r3.Resource("b")
		if got.Link != "example.com" || got.Remark != "changed" {
			t.Errorf("Resource(b) = %+v", got)
		}
		if orig, _ := r.Resource("b"); orig.Link != "" {
			t.Error("UpdateResource mutated the receiver")
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()
		_, err := threeItems().UpdateResource("zzz", ResourceLink, "x")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown sub-field is a validation error", func(t *testing.T) {
		t.Parallel()
		_, err := threeItems().UpdateResource("a", "title", "x")
		requireValidationField(t, err, "field")
	})
}

func TestRecord_RemoveResource(t *testing.T) {
	t.Parallel()

	t.Run("removes by id and keeps other ids", func(t *testing.T) {
		t.Parallel()
		got, err := threeItems().RemoveResource("b")
		if err != nil {
			t.Fatalf("RemoveResource() error = %v", err)
		}
		if want := []string{"a", "c"}; !slices.Equal(ids(got), want) {
			t.Errorf("ids = %v, want %v", ids(got), want)
		}
	})

	t.Run("removing last item yields empty list", func(t *testing.T) {
		t.Parallel()
		got, err := Record{Resources: []ResourceItem{{ID: "only"}}}.RemoveResource("only")
		if err != nil {
			t.Fatalf("RemoveResource() error = %v", err)
		}
		if len(got.Resources) != 0 {
			t.Errorf("len(Resources) = %d, want 0", len(got.Resources))
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()
		_, err := threeItems().RemoveResource("zzz")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("receiver keeps its items", func(t *testing.T) {
		t.Parallel()
		r := threeItems()
		_, _ = r.RemoveResource("a")
		if want := []string{"a", "b", "c"}; !slices.Equal(ids(r), want) {
			t.Errorf("receiver ids = %v, want %v", ids(r), want)
		}
	})
}

func TestRecord_MoveResource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       string
		position int
		want     []string
	}{
		{name: "first to last", id: "a", position: 2, want: []string{"b", "c", "a"}},
		{name: "last to first", id: "c", position: 0, want: []string{"c", "a", "b"}},
		{name: "middle forward", id: "b", position: 2, want: []string{"a", "c", "b"}},
		{name: "same position", id: "b", position: 1, want: []string{"a", "b", "c"}},
		{name: "negative clamps to start", id: "c", position: -5, want: []string{"c", "a", "b"}},
		{name: "past end clamps to end", id: "a", position: 99, want: []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := threeItems()
			got, err := r.MoveResource(tt.id, tt.position)
			if err != nil {
				t.Fatalf("MoveResource() error = %v", err)
			}
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
			if want := []string{"a", "b", "c"}; !slices.Equal(ids(r), want) {
				t.Errorf("receiver ids = %v, want %v", ids(r), want)
			}
		})
	}

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()
		_, err := threeItems().MoveResource("zzz", 0)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestResourceIdentity_StableAcrossOperations(t *testing.T) {
	t.Parallel()

	gen := sequentialIDs()
	r := NewRecord(gen)
	r, b := r.AddResource(gen)
	r, c := r.AddResource(gen)

	r, err := r.UpdateResource(b.ID, ResourceRemark, "second")
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.MoveResource(c.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.RemoveResource("id-1")
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.Resource(b.ID)
	if err != nil {
		t.Fatalf("Resource(%s) error = %v", b.ID, err)
	}
	if got.Remark != "second" {
		t.Errorf("Remark = %q, want %q", got.Remark, "second")
	}
	if want := []string{c.ID, b.ID}; !slices.Equal(ids(r), want) {
		t.Errorf("ids = %v, want %v", ids(r), want)
	}
}
