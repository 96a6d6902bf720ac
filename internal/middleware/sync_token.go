package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// VerifySyncToken compares the presented feed credential against the
// configured SHA-256 digest in constant time. The server only ever stores the
// digest, never the credential itself.
func VerifySyncToken(token, hexDigest string) bool {
	want, err := hex.DecodeString(hexDigest)
	if err != nil || len(want) != sha256.Size {
		return false
	}
	got := sha256.Sum256([]byte(token))
	return subtle.ConstantTimeCompare(got[:], want) == 1
}

// RequireSyncToken guards the feed endpoints. The POS supplies the credential
// generated by cmd/sync-token as a bearer token; the server is configured
// with its digest via SYNC_TOKEN_SHA256.
func RequireSyncToken(hexDigest string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hexDigest == "" {
			return c.Status(503).JSON(fiber.Map{"error": "Sync credential not configured"})
		}

		authHeader := c.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing sync credential"})
		}

		if !VerifySyncToken(parts[1], hexDigest) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid sync credential"})
		}
		return c.Next()
	}
}
