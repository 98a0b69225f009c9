// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/features/users/auth/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

const accessTokenTTL = 24 * time.Hour

// =============================
// POST /api/auth/login
// =============================
// Pesan error sengaja sama untuk email tak dikenal & password salah.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_email = ? AND user_is_active = TRUE", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal memproses login")
	}

	if !helperAuth.CheckPassword(user.UserPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"role":      user.UserRole,
		"school_id": user.UserSchoolID.String(),
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}
	if user.UserTeacherID != nil {
		claims["teacher_id"] = user.UserTeacherID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      user.UserID,
		Name:        user.UserName,
		Role:        user.UserRole,
		SchoolID:    user.UserSchoolID,
		TeacherID:   user.UserTeacherID,
	})
}
