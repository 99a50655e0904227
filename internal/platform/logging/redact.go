package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted is masq's replacement text, reused by callers that mask values
// themselves, such as the HTTP header dump.
const Redacted = "[REDACTED]"

// credentialHeaders are lowercase header names whose values are credentials.
var credentialHeaders = []string{"authorization", "cookie", "x-api-key"}

// IsSensitiveHeader reports whether the named header carries a credential.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(credentialHeaders, strings.ToLower(name))
}

// Attribute keys that never reach the output. The postgres DSN embeds a
// password, and the JWT signing key appears when auth config is logged.
var secretKeys = []string{"password", "secret", "token", "dsn", "signing_key"}

var secretPrefixes = []string{"secret_", "api_key"}

// Value patterns for credentials that slipped into ordinary attributes.
var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Ten characters per segment keeps version strings like 1.2.3 intact.
	jwtValue = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	inlineKeyValue = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// redactAttr builds the masq ReplaceAttr shared by every handler format.
// Struct fields tagged `masq:"secret"` are masked too.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, key := range slices.Concat(credentialHeaders, secretKeys) {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, p := range secretPrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	opts = append(opts,
		masq.WithTag("secret"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(inlineKeyValue),
	)
	return masq.New(opts...)
}
