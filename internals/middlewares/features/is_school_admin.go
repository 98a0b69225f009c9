package features

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// IsSchoolAdmin: hanya admin sekolah (atau super admin diosesan) yang boleh lewat.
func IsSchoolAdmin(featureName ...string) fiber.Handler {
	feature := "ini"
	if len(featureName) > 0 {
		feature = featureName[0]
	}
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRoleFromToken(c)
		if role != helperAuth.RoleSchoolAdmin && role != helperAuth.RoleSuperAdmin {
			return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, feature))
		}
		return c.Next()
	}
}
