package logging

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Redacted replaces every masked value. It matches masq's default message so
// header masking in the HTTP layer reads the same as handler-level redaction.
const Redacted = "[REDACTED]"

// sensitiveHeaders holds canonical names of headers that carry credentials.
var sensitiveHeaders = map[string]bool{
	"Authorization": true,
	"X-Api-Key":     true,
	"Cookie":        true,
	"Set-Cookie":    true,
}

// IsSensitiveHeader reports whether the named header carries credentials.
// The match ignores case.
func IsSensitiveHeader(name string) bool {
	return sensitiveHeaders[http.CanonicalHeaderKey(name)]
}

// redactRules lists what the handler masks. Field names match attribute keys
// exactly, prefixes match key starts, and patterns match inside string values
// that escaped call-site care.
var redactRules = struct {
	fields   []string
	prefixes []string
	patterns []*regexp.Regexp
}{
	fields: []string{
		"authorization", "x-api-key", "cookie",
		"password", "secret", "token",
		// contributor identity
		"email", "whatsapp", "phone", "linkedin",
	},
	prefixes: []string{"secret_", "api_key"},
	patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// JWTs; ten characters per segment keeps version strings out.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		regexp.MustCompile(`[^\s@"]+@[^\s@"]+\.[^\s@"]+`),
		// a value that is nothing but a phone number
		regexp.MustCompile(`^\+?\d{10,15}$`),
	},
}

// newRedactAttr returns the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(redactRules.fields)+len(redactRules.prefixes)+len(redactRules.patterns))

	for _, name := range redactRules.fields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactRules.prefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactRules.patterns {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
