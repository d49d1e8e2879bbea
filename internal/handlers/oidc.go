package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/oauth2"

	"sentimate/internal/config"
	"sentimate/internal/db"
	"sentimate/internal/middleware"
)

// OIDCHandler handles single sign-on authentication flows.
type OIDCHandler struct {
	provider     *oidc.Provider
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
	db           *db.DB
	cfg          *config.Config
}

// NewOIDCHandler creates a new SSO handler with OIDC configuration.
func NewOIDCHandler(ctx context.Context, cfg *config.Config, database *db.DB) (*OIDCHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	oauth2Config := oauth2.Config{
		ClientID:     cfg.OIDCClientID,
		ClientSecret: cfg.OIDCClientSecret,
		RedirectURL:  cfg.OIDCRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	verifier := provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID})

	return &OIDCHandler{
		provider:     provider,
		oauth2Config: oauth2Config,
		verifier:     verifier,
		db:           database,
		cfg:          cfg,
	}, nil
}

// Login initiates the OIDC login flow.
func (h *OIDCHandler) Login(c fiber.Ctx) error {
	state := generateState()

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	sess.Set("oauth_state", state)

	url := h.oauth2Config.AuthCodeURL(state)
	return c.Redirect().To(url)
}

// Callback handles the OIDC callback after authentication.
func (h *OIDCHandler) Callback(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	// Verify state
	savedState := sess.Get("oauth_state")
	if savedState == nil || savedState.(string) != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	sess.Delete("oauth_state")

	// Exchange code for token
	oauth2Token, err := h.oauth2Config.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	// Extract and verify ID token
	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}

	idToken, err := h.verifier.Verify(c.Context(), rawIDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}

	claimsMap := make(map[string]any)
	if err := idToken.Claims(&claimsMap); err != nil {
		return err
	}

	// Some providers only include minimal claims in the ID token, so merge in
	// the userinfo endpoint's claims as well (userinfo takes precedence).
	userInfo, err := h.provider.UserInfo(c.Context(), oauth2.StaticTokenSource(oauth2Token))
	if err == nil {
		var userInfoClaims map[string]any
		if err := userInfo.Claims(&userInfoClaims); err == nil {
			for k, v := range userInfoClaims {
				claimsMap[k] = v
			}
		}
	} else {
		log.Printf("Warning: Failed to fetch userinfo: %v", err)
	}

	if h.cfg.IsDev() {
		log.Printf("OIDC claims received: %v", claimsMap)
	}

	sub, _ := claimsMap["sub"].(string)
	if sub == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing sub claim")
	}

	username := usernameFromClaims(claimsMap, sub)
	user, err := h.db.UpsertOIDCUser(c.Context(), sub, username)
	if errors.Is(err, db.ErrDuplicateUsername) {
		// The claimed username belongs to a local account; disambiguate with
		// a stable suffix from the subject.
		suffix := sub
		if len(suffix) > 8 {
			suffix = suffix[:8]
		}
		user, err = h.db.UpsertOIDCUser(c.Context(), sub, username+"-"+suffix)
	}
	if err != nil {
		return err
	}

	sess.Set(middleware.SessionUserKey, user.ID.String())
	return c.Redirect().To("/chat")
}

// Logout clears the user session.
func (h *OIDCHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/")
}

// usernameFromClaims derives an account username from the standard OIDC
// claims, falling back to the subject identifier when nothing usable is
// present.
func usernameFromClaims(claims map[string]any, sub string) string {
	if preferred, _ := claims["preferred_username"].(string); preferred != "" {
		return strings.ToLower(preferred)
	}
	if email, _ := claims["email"].(string); email != "" {
		if local, _, found := strings.Cut(email, "@"); found && local != "" {
			return strings.ToLower(local)
		}
		return strings.ToLower(email)
	}
	if name, _ := claims["name"].(string); name != "" {
		return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	}
	return "user-" + sub
}

// generateState creates a random state parameter for CSRF protection.
func generateState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
