package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"sentimate/internal/db"
	"sentimate/internal/models"
)

// SessionUserKey is the session key holding the authenticated user's ID.
const SessionUserKey = "user_id"

// AuthMiddleware handles user authentication via sessions.
type AuthMiddleware struct {
	store *session.Store
	db    *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(store *session.Store, db *db.DB) *AuthMiddleware {
	return &AuthMiddleware{store: store, db: db}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	user, sess := m.loadUser(c)
	if user == nil {
		if sess != nil {
			sess.Destroy()
		}
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAuthAPI ensures the user is authenticated, returning 401 JSON
// instead of a redirect. Used by the /api routes.
func (m *AuthMiddleware) RequireAuthAPI(c fiber.Ctx) error {
	user, _ := m.loadUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
			"code":  fiber.StatusUnauthorized,
		})
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user, _ := m.loadUser(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

func (m *AuthMiddleware) loadUser(c fiber.Ctx) (*models.User, *session.Session) {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil, nil
	}

	raw := sess.Get(SessionUserKey)
	if raw == nil {
		return nil, sess
	}

	idStr, ok := raw.(string)
	if !ok {
		return nil, sess
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, sess
	}

	u, err := m.db.GetUserByID(c.Context(), userID)
	if err != nil {
		return nil, sess
	}
	return u, sess
}
