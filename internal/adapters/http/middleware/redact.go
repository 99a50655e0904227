package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// RedactHeaders turns headers into log attributes, masking every header listed
// as a credential by logging.IsSensitiveHeader. Multi-value headers are comma joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		val := strings.Join(vals, ",")
		if logging.IsSensitiveHeader(key) {
			val = logging.Redacted
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return attrs
}
