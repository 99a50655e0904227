package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/stageboard/internal/platform/config"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Enabled:    true,
		Issuer:     "accounts",
		Audience:   "stageboard",
		SigningKey: testSigningKey,
		MutateRole: "admin",
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims middleware.Claims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return raw
}

func validClaims(role string) middleware.Claims {
	now := time.Now()
	return middleware.Claims{
		Name: "Dana",
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			Issuer:    "accounts",
			Audience:  jwt.ClaimStrings{"stageboard"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestNewAuthenticator_RequiresKey(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.SigningKey = ""

	_, err := middleware.NewAuthenticator(cfg)
	require.Error(t, err)
}

func TestAuthenticate_ValidTokenStoresPrincipal(t *testing.T) {
	t.Parallel()

	auth, err := middleware.NewAuthenticator(testAuthConfig())
	require.NoError(t, err)

	var got middleware.Principal
	var found bool
	handler := auth.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = middleware.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stages", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), validClaims("member")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, middleware.Principal{Subject: "user-42", Name: "Dana", Role: "member"}, got)
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Parallel()

	expired := validClaims("admin")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims("admin")
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := validClaims("admin")
	wrongAudience.Audience = jwt.ClaimStrings{"billing"}

	noSubject := validClaims("admin")
	noSubject.Subject = ""

	noExpiry := validClaims("admin")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{
			name:   "missing header",
			header: func(*testing.T) string { return "" },
		},
		{
			name:   "wrong scheme",
			header: func(*testing.T) string { return "Basic dXNlcjpwYXNz" },
		},
		{
			name:   "garbage token",
			header: func(*testing.T) string { return "Bearer not-a-jwt" },
		},
		{
			name: "wrong key",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("another-key-another-key-another!"), validClaims("admin"))
			},
		},
		{
			name: "HS512 not accepted",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSigningKey), validClaims("admin"))
			},
		},
		{
			name: "expired",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), expired)
			},
		},
		{
			name: "no expiry",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), noExpiry)
			},
		},
		{
			name: "wrong issuer",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), wrongIssuer)
			},
		},
		{
			name: "wrong audience",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), wrongAudience)
			},
		},
		{
			name: "no subject",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey), noSubject)
			},
		},
	}

	auth, err := middleware.NewAuthenticator(testAuthConfig())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := auth.Authenticate()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, `Bearer realm="stageboard"`, rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal *middleware.Principal
		want      int
	}{
		{name: "matching role", principal: &middleware.Principal{Subject: "u1", Role: "admin"}, want: http.StatusNoContent},
		{name: "other role", principal: &middleware.Principal{Subject: "u2", Role: "member"}, want: http.StatusForbidden},
		{name: "no principal", principal: nil, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/stages/5", http.NoBody)
			if tt.principal != nil {
				req = req.WithContext(middleware.WithPrincipal(req.Context(), *tt.principal))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				var body dto.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Contains(t, body.Detail, `role "admin" required`)
			}
		})
	}
}
