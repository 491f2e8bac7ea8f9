package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"os"

	"benefits-event-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier decides whether a caller-supplied secret is valid. It is
// injected so the shared-secret scheme can be replaced without touching the
// routes that consume it.
type PasswordVerifier func(secret string) bool

// EnvPasswordVerifier builds the default verifier: bcrypt comparison when
// ADMIN_PWD_HASH is set, otherwise a constant-time comparison against the
// INTERNAL_PWD plaintext. An unset secret rejects everything.
func EnvPasswordVerifier() PasswordVerifier {
	hash := os.Getenv("ADMIN_PWD_HASH")
	plain := os.Getenv("INTERNAL_PWD")

	return func(secret string) bool {
		if secret == "" {
			return false
		}
		if hash != "" {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
		}
		if plain == "" {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(plain), []byte(secret)) == 1
	}
}

// AdminAuth gates every mutating session and registration route behind the
// shared secret, read from the x-admin-password header first and the JSON
// body "password" field second. The same check applies uniformly; no
// mutating route skips it.
func AdminAuth(verify PasswordVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := c.Get("x-admin-password")
		if secret == "" {
			var body struct {
				Password string `json:"password"`
			}
			if err := json.Unmarshal(c.Body(), &body); err == nil {
				secret = body.Password
			}
		}

		if !verify(secret) {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing password")
		}

		return c.Next()
	}
}
