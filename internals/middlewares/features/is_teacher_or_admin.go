package features

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// IsTeacherOrAdmin: guru, admin sekolah, atau super admin.
// Catatan: otorisasi per kelas/mapel tetap dicek di service (assignment aktif),
// middleware ini hanya gerbang peran kasar.
func IsTeacherOrAdmin(featureName ...string) fiber.Handler {
	feature := "ini"
	if len(featureName) > 0 {
		feature = featureName[0]
	}
	return func(c *fiber.Ctx) error {
		switch helperAuth.GetRoleFromToken(c) {
		case helperAuth.RoleTeacher, helperAuth.RoleSchoolAdmin, helperAuth.RoleSuperAdmin:
			return c.Next()
		default:
			return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf(constants.ErrOnlyTeachersCanAccess, feature))
		}
	}
}
