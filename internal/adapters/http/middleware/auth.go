package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/platform/config"
)

// Claims is the token payload accepted by Authenticator.
type Claims struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the verified caller attached to the request context.
type Principal struct {
	Subject string
	Name    string
	Role    string
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller stored by Authenticate.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Authenticator verifies HS256 bearer tokens issued by the identity service.
type Authenticator struct {
	key    []byte
	parser *jwt.Parser
}

// NewAuthenticator builds an Authenticator from cfg. Issuer and audience are
// only enforced when configured.
func NewAuthenticator(cfg config.AuthConfig) (*Authenticator, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("auth: signing key is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Authenticator{
		key:    []byte(cfg.SigningKey),
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify parses and validates a raw token.
func (a *Authenticator) Verify(raw string) (Principal, error) {
	var claims Claims
	_, err := a.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.key, nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return Principal{}, fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}
	return Principal{Subject: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}

// Authenticate returns middleware that rejects requests without a valid
// bearer token and stores the Principal for the rest of the chain.
func (a *Authenticator) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized))
				return
			}

			p, err := a.Verify(raw)
			if err != nil {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: invalid bearer token", domain.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole returns middleware that admits only principals holding role.
// It must run after Authenticate.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: no authenticated caller", domain.ErrUnauthorized))
				return
			}
			if p.Role != role {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: role %q required", domain.ErrForbidden, role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
