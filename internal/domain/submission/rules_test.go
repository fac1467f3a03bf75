package submission

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		value string
		want  string
	}{
		{name: "whatsapp empty is optional", field: FieldWhatsApp, value: "", want: ""},
		{name: "whatsapp ten digits", field: FieldWhatsApp, value: "0123456789", want: ""},
		{name: "whatsapp nine digits", field: FieldWhatsApp, value: "123456789", want: MsgWhatsApp},
		{name: "whatsapp eleven digits", field: FieldWhatsApp, value: "12345678901", want: MsgWhatsApp},
		{name: "whatsapp letters", field: FieldWhatsApp, value: "12345abcde", want: MsgWhatsApp},
		{name: "whatsapp plus prefix", field: FieldWhatsApp, value: "+123456789", want: MsgWhatsApp},
		{name: "whatsapp leading space", field: FieldWhatsApp, value: " 1234567890", want: MsgWhatsApp},
		{name: "whatsapp trailing space", field: FieldWhatsApp, value: "1234567890 ", want: MsgWhatsApp},
		{name: "whatsapp only spaces", field: FieldWhatsApp, value: "   ", want: MsgWhatsApp},
		{name: "whatsapp tab", field: FieldWhatsApp, value: "\t", want: MsgWhatsApp},

		{name: "linkedin without scheme", field: FieldLinkedIn, value: "linkedin.com/in/x", want: ""},
		{name: "linkedin with scheme", field: FieldLinkedIn, value: "https://linkedin.com/in/x", want: ""},
		{name: "linkedin subdomain", field: FieldLinkedIn, value: "https://www.linkedin.com/in/x", want: ""},
		{name: "linkedin double dot", field: FieldLinkedIn, value: "linkedin..com", want: MsgLinkedIn},
		{name: "linkedin other host", field: FieldLinkedIn, value: "github.com/x", want: MsgLinkedIn},
		{name: "linkedin missing", field: FieldLinkedIn, value: "  ", want: domain.MsgRequired},

		{name: "email valid", field: FieldEmail, value: "ada@example.com", want: ""},
		{name: "email no at", field: FieldEmail, value: "ada.example.com", want: MsgEmail},
		{name: "email no dot in domain", field: FieldEmail, value: "ada@example", want: MsgEmail},
		{name: "email space", field: FieldEmail, value: "a da@example.com", want: MsgEmail},
		{name: "email padded", field: FieldEmail, value: " ada@example.com", want: MsgEmail},
		{name: "email missing", field: FieldEmail, value: "", want: domain.MsgRequired},

		{name: "codebase valid", field: FieldCodebase, value: "github.com/ada/engine", want: ""},
		{name: "codebase not a url", field: FieldCodebase, value: "not a url", want: MsgURL},
		{name: "codebase missing", field: FieldCodebase, value: "", want: domain.MsgRequired},

		{name: "demo empty is optional", field: FieldDemo, value: "", want: ""},
		{name: "demo invalid", field: FieldDemo, value: "localhost", want: MsgURL},
		{name: "demo blank is present", field: FieldDemo, value: "  ", want: MsgURL},
		{name: "demo mailto", field: FieldDemo, value: "mailto:ada@example.com", want: MsgURL},

		{name: "name blank", field: FieldName, value: " \t", want: domain.MsgRequired},
		{name: "name present", field: FieldName, value: "Ada", want: ""},
		{name: "title blank", field: FieldTitle, value: "", want: domain.MsgRequired},
		{name: "description blank", field: FieldDescription, value: "", want: domain.MsgRequired},
		{name: "problem statement blank", field: FieldProblemStatement, value: "", want: domain.MsgRequired},

		{name: "unknown field", field: "nickname", value: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Validate(tt.field, tt.value); got != tt.want {
				t.Errorf("Validate(%s, %q) = %q, want %q", tt.field, tt.value, got, tt.want)
			}
		})
	}
}

func TestIsWellFormedURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "linkedin.com/in/x", want: true},
		{raw: "https://linkedin.com/in/x", want: true},
		{raw: "http://sub.example.co.uk:8080/path?q=1", want: true},
		{raw: "  example.io  ", want: true},
		{raw: "linkedin..com", want: false},
		{raw: "not a url", want: false},
		{raw: "localhost", want: false},
		{raw: "example.c", want: false},
		{raw: ".example.com", want: false},
		{raw: "example.com.", want: false},
		{raw: "https://", want: false},
		{raw: "example.com:8080/docs", want: true},
		{raw: "ftp://files.example.org", want: true},
		{raw: "mailto:ada@example.com", want: false},
		{raw: "javascript:alert(1)", want: false},
		{raw: "localhost:3000", want: false},
		{raw: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			if got := IsWellFormedURL(tt.raw); got != tt.want {
				t.Errorf("IsWellFormedURL(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateResourceLink(t *testing.T) {
	t.Parallel()

	if got := ValidateResourceLink(""); got != "" {
		t.Errorf("ValidateResourceLink(\"\") = %q, want empty", got)
	}
	if got := ValidateResourceLink("docs.example.com/guide"); got != "" {
		t.Errorf("ValidateResourceLink(valid) = %q, want empty", got)
	}
	if got := ValidateResourceLink("not a url"); got != MsgURL {
		t.Errorf("ValidateResourceLink(invalid) = %q, want %q", got, MsgURL)
	}
}

func validRecord() Record {
	return Record{
		Name:             "Ada",
		LinkedIn:         "linkedin.com/in/ada",
		Email:            "ada@example.com",
		Codebase:         "github.com/ada/engine",
		Title:            "Engine",
		Description:      "Analytical engine",
		ProblemStatement: "Compute tables",
		Resources:        []ResourceItem{{ID: "r1"}},
	}
}

func TestIsSubmittable(t *testing.T) {
	t.Parallel()

	t.Run("complete record", func(t *testing.T) {
		t.Parallel()
		if !IsSubmittable(validRecord()) {
			t.Error("IsSubmittable() = false, want true")
		}
	})

	t.Run("independent of resources", func(t *testing.T) {
		t.Parallel()
		r := validRecord()
		r.Resources = nil
		if !IsSubmittable(r) {
			t.Error("IsSubmittable() = false with no resources, want true")
		}
		r.Resources = []ResourceItem{{ID: "x", Link: "not a url"}}
		if !IsSubmittable(r) {
			t.Error("IsSubmittable() = false with bad resource, want true")
		}
	})

	t.Run("optional fields do not gate", func(t *testing.T) {
		t.Parallel()
		r := validRecord()
		r.WhatsApp, r.Demo = "", ""
		if !IsSubmittable(r) {
			t.Error("IsSubmittable() = false, want true")
		}
	})

	for _, f := range submittable {
		t.Run("missing "+string(f), func(t *testing.T) {
			t.Parallel()
			r, err := validRecord().With(f, "")
			if err != nil {
				t.Fatal(err)
			}
			if IsSubmittable(r) {
				t.Errorf("IsSubmittable() = true without %s", f)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	t.Run("valid record has no errors", func(t *testing.T) {
		t.Parallel()
		if state := ValidateAll(validRecord()); state.HasErrors() {
			t.Errorf("ValidateAll() = %+v, want no errors", state)
		}
	})

	t.Run("collects field and filled resource errors", func(t *testing.T) {
		t.Parallel()
		r := validRecord()
		r.WhatsApp = "123"
		r.Resources = []ResourceItem{
			{ID: "blank"},
			{ID: "bad", Remark: "x", Link: "not a url"},
			{ID: "good", Link: "example.com"},
		}

		state := ValidateAll(r)

		if got := state.Message(FieldWhatsApp); got != MsgWhatsApp {
			t.Errorf("Message(whatsapp) = %q, want %q", got, MsgWhatsApp)
		}
		if got := state.ResourceMessage("bad"); got != MsgURL {
			t.Errorf("ResourceMessage(bad) = %q, want %q", got, MsgURL)
		}
		if len(state.Resources) != 1 {
			t.Errorf("Resources = %v, want only bad", state.Resources)
		}

		err := state.AsError()
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("AsError() = %v, want ErrValidation", err)
		}
		requireValidationField(t, err, "whatsapp")
		requireValidationField(t, err, "resources.bad.link")
	})
}
