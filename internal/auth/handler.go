package auth

import (
	"strings"

	"cloudk-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Admin is the single back-office principal, configured through the
// environment. The system models no concurrent multi-user editing, so there
// is no user table.
type Admin struct {
	Email        string
	PasswordHash []byte
}

func NewAdmin(cfg *config.Config) (*Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Admin{
		Email:        strings.TrimSpace(strings.ToLower(cfg.AdminEmail)),
		PasswordHash: hash,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(cfg *config.Config, admin *Admin) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email != admin.Email {
			return fiber.NewError(fiber.StatusUnauthorized, "Wrong email or password")
		}
		if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Wrong email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, admin.Email)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"email": admin.Email,
		})
	}
}
