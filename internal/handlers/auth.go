package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"sentimate/internal/auth"
	"sentimate/internal/config"
	"sentimate/internal/db"
	"sentimate/internal/middleware"
	"sentimate/internal/models"
	"sentimate/internal/validation"
)

// LocalAuthHandler handles username/password registration and login.
type LocalAuthHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewLocalAuthHandler creates a new local auth handler.
func NewLocalAuthHandler(database *db.DB, cfg *config.Config) *LocalAuthHandler {
	return &LocalAuthHandler{db: database, cfg: cfg}
}

// Register creates a new account from the registration form.
func (h *LocalAuthHandler) Register(c fiber.Ctx) error {
	username := validation.NormalizeUsername(c.FormValue("username"))
	password := c.FormValue("password")

	if ok, reason := validation.ValidateUsername(username); !ok {
		return h.renderRegister(c, reason)
	}
	if ok, reason := validation.ValidatePassword(password); !ok {
		return h.renderRegister(c, reason)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := h.db.CreateUser(c.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return h.renderRegister(c, "That username is already taken")
		}
		return err
	}

	log.Printf("New account registered: %s", user.Username)
	return h.startSession(c, user.ID.String())
}

// Login authenticates a user from the login form.
func (h *LocalAuthHandler) Login(c fiber.Ctx) error {
	username := validation.NormalizeUsername(c.FormValue("username"))
	password := c.FormValue("password")

	user, err := h.db.GetUserByUsername(c.Context(), username)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return h.renderLogin(c, "Invalid username or password")
		}
		return err
	}

	if user.PasswordHash == "" || !auth.CheckPassword(user.PasswordHash, password) {
		return h.renderLogin(c, "Invalid username or password")
	}

	return h.startSession(c, user.ID.String())
}

// Logout clears the user session.
func (h *LocalAuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/")
}

func (h *LocalAuthHandler) startSession(c fiber.Ctx, userID string) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	sess.Set(middleware.SessionUserKey, userID)
	return c.Redirect().To("/chat")
}

func (h *LocalAuthHandler) renderLogin(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
		"Error":       message,
		"Username":    c.FormValue("username"),
		"OIDCEnabled": h.cfg.IsOIDCEnabled(),
	})
}

func (h *LocalAuthHandler) renderRegister(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
		"Error":    message,
		"Username": c.FormValue("username"),
	})
}
