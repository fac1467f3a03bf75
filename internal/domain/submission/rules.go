package submission

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jsamuelsen11/project-collector/internal/domain"
)

// User-facing validation messages.
const (
	MsgWhatsApp = "Please enter a 10-digit number"
	MsgLinkedIn = "Please enter a valid LinkedIn URL"
	MsgEmail    = "Please enter a valid email address"
	MsgURL      = "Please enter a valid URL"
)

var (
	whatsAppPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hostLabel       = regexp.MustCompile(`^[\p{L}\p{N}](?:[\p{L}\p{N}-]*[\p{L}\p{N}])?$`)
)

// rule is one row of the validation table. A required field fails with
// domain.MsgRequired when blank; an optional field skips check only when
// empty. check always sees the value exactly as entered.
type rule struct {
	required bool
	check    func(value string) bool
	message  string
}

var rules = map[Field]rule{
	FieldName:             {required: true},
	FieldWhatsApp:         {check: whatsAppPattern.MatchString, message: MsgWhatsApp},
	FieldLinkedIn:         {required: true, check: isLinkedInURL, message: MsgLinkedIn},
	FieldEmail:            {required: true, check: emailPattern.MatchString, message: MsgEmail},
	FieldCodebase:         {required: true, check: IsWellFormedURL, message: MsgURL},
	FieldDemo:             {check: IsWellFormedURL, message: MsgURL},
	FieldTitle:            {required: true},
	FieldDescription:      {required: true},
	FieldProblemStatement: {required: true},
}

// submittable lists the fields whose presence gates submission. whatsapp and
// demo are optional; resources never participate.
var submittable = []Field{
	FieldName,
	FieldLinkedIn,
	FieldEmail,
	FieldCodebase,
	FieldTitle,
	FieldDescription,
	FieldProblemStatement,
}

// Validate applies the rule for field to value and returns the error message,
// or "" when no error is known. Unknown fields never produce a message.
func Validate(field Field, value string) string {
	r, ok := rules[field]
	if !ok {
		return ""
	}

	switch {
	case r.required && isBlank(value):
		return domain.MsgRequired
	case value == "":
		return ""
	case r.check != nil && !r.check(value):
		return r.message
	}
	return ""
}

// ValidateResourceLink validates a resource item's link independently of its
// remark. A blank link carries no error.
func ValidateResourceLink(value string) string {
	if isBlank(value) {
		return ""
	}
	if !IsWellFormedURL(value) {
		return MsgURL
	}
	return ""
}

// ValidateAll runs every field rule plus the link rule of each resource that
// would be submitted, and returns the complete validation state.
func ValidateAll(r Record) ValidationState {
	state := NewValidationState()
	for _, f := range Fields {
		state.Set(f, Validate(f, r.Value(f)))
	}
	for _, item := range r.FilledResources() {
		state.SetResource(item.ID, ValidateResourceLink(item.Link))
	}
	return state
}

// IsSubmittable reports whether every submission-gating field is non-empty.
// It checks presence only; format errors are reported by ValidateAll.
func IsSubmittable(r Record) bool {
	for _, f := range submittable {
		if isBlank(r.Value(f)) {
			return false
		}
	}
	return true
}

// IsWellFormedURL accepts a URL as given, or with an implicit https:// when
// no scheme is present. The hostname must have at least two labels, no
// empty label, and a final label of two or more characters.
func IsWellFormedURL(raw string) bool {
	_, ok := parseURL(raw)
	return ok
}

func isLinkedInURL(raw string) bool {
	u, ok := parseURL(raw)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(u.Hostname()), "linkedin.com")
}

// parseURL takes a value with a scheme as given, so schemes without a host
// such as mailto: fail the hostname check. Values without one are retried
// under https://.
func parseURL(raw string) (*url.URL, bool) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil, false
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Scheme == "" || isPort(u.Opaque) {
		if u, err = url.Parse("https://" + candidate); err != nil {
			return nil, false
		}
	}
	if !validHostname(u.Hostname()) {
		return nil, false
	}
	return u, true
}

// isPort reports whether the opaque part of a parsed value starts with a
// port, as in "example.com:8080/docs" where the apparent scheme is a host.
func isPort(opaque string) bool {
	port, _, _ := strings.Cut(opaque, "/")
	if port == "" {
		return false
	}
	for _, c := range port {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validHostname(host string) bool {
	if host == "" || strings.Contains(host, "..") {
		return false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !hostLabel.MatchString(label) {
			return false
		}
	}
	return len([]rune(labels[len(labels)-1])) >= 2
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
