// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`

	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	SchoolID  uuid.UUID  `json:"school_id"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
}
