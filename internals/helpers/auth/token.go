// file: internals/helpers/auth/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, false
	}
	switch t := v.(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, true
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil && id != uuid.Nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetRoleFromToken membaca role dari locals; string kosong kalau tidak ada.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// GetUserIDFromToken: identitas pemanggil. Wajib ada di semua route ber-JWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocUserID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan pada token")
}

// GetSchoolIDFromToken: tenant aktif pemanggil.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocSchoolID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id tidak ditemukan pada token")
}

// GetTeacherIDFromToken: id guru untuk cek penugasan. Token admin tidak punya
// teacher_id → 403, karena operasi nilai memang per-guru.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocTeacherID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Token tidak memiliki teacher_id")
}
