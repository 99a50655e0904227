package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"level":"INFO"`, `"msg":"stage created"`, `"position":3`}},
		{format: "text", want: []string{"level=INFO", `msg="stage created"`, "position=3"}},
		{format: "pretty", want: []string{"stage created", "position="}},
		{format: "xml", want: []string{`"msg":"stage created"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("stage created", slog.Int("position", 3))

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		emit    slog.Level
		visible bool
	}{
		{level: "debug", emit: slog.LevelDebug, visible: true},
		{level: "DEBUG", emit: slog.LevelDebug, visible: true},
		{level: "info", emit: slog.LevelDebug, visible: false},
		{level: "warn", emit: slog.LevelInfo, visible: false},
		{level: "error", emit: slog.LevelWarn, visible: false},
		{level: "error", emit: slog.LevelError, visible: true},
		{level: "chatty", emit: slog.LevelDebug, visible: false},
		{level: "chatty", emit: slog.LevelInfo, visible: true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logging.New(tt.level, "json", &buf).Log(context.Background(), tt.emit, "renumbered")

		assert.Equal(t, tt.visible, buf.Len() > 0, "level %q emitting %s", tt.level, tt.emit)
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Warn("drain slow")
	logging.New("info", "json", &info).Warn("drain slow")

	assert.Contains(t, debug.String(), `"source"`)
	assert.NotContains(t, info.String(), `"source"`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"Info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	} {
		assert.Equal(t, want, logging.ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	first := slog.New(slog.DiscardHandler)
	second := slog.New(slog.DiscardHandler)
	ctx := logging.WithLogger(context.Background(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx))
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	type authSettings struct {
		Issuer     string
		SigningKey string `masq:"secret"`
	}

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization key", attr: slog.String("authorization", "Bearer stage-admin-token"), secret: "stage-admin-token"},
		{name: "password key", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "postgres dsn", attr: slog.String("dsn", "postgres://board:pw@db/stageboard"), secret: "board:pw"},
		{name: "secret prefix", attr: slog.String("secret_salt", "pepper"), secret: "pepper"},
		{name: "bearer in value", attr: slog.String("raw_header", "Bearer eyJhbGciOiJIUzI1NiJ9"), secret: "eyJhbGciOiJIUzI1NiJ9"},
		{name: "inline api key", attr: slog.String("note", "api_key=abc123xyz"), secret: "abc123xyz"},
		{
			name:   "tagged struct field",
			attr:   slog.Any("auth", authSettings{Issuer: "accounts", SigningKey: "0123456789abcdef0123456789abcdef"}),
			secret: "0123456789abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, format := range []string{"json", "pretty"} {
				var buf bytes.Buffer
				logging.New("info", format, &buf).Info("config loaded", tt.attr)

				assert.NotContains(t, buf.String(), tt.secret, format)
				assert.Contains(t, buf.String(), logging.Redacted, format)
			}
		})
	}
}

func TestNew_LeavesOrdinaryFieldsAlone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("stage moved",
		slog.Int64("stage_id", 42),
		slog.String("path", "/api/v1/stages/42/move"),
		slog.String("version", "1.2.3"),
	)

	out := buf.String()
	assert.Contains(t, out, `"stage_id":42`)
	assert.Contains(t, out, "/api/v1/stages/42/move")
	assert.Contains(t, out, "1.2.3")
	assert.NotContains(t, out, logging.Redacted)
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	assert.True(t, logging.IsSensitiveHeader("Authorization"))
	assert.True(t, logging.IsSensitiveHeader("X-API-Key"))
	assert.True(t, logging.IsSensitiveHeader("cookie"))
	assert.False(t, logging.IsSensitiveHeader("X-Request-ID"))
}
