// file: internals/seeds/seeds.go
package seeds

import (
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "schoolku_backend/internals/features/users/user/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// RunIfRequested: seed akun awal untuk dev/demo (SEED_ON_BOOT=true).
// Idempotent by email — akun yang sudah ada dilewati.
func RunIfRequested(db *gorm.DB) {
	if os.Getenv("SEED_ON_BOOT") != "true" {
		return
	}

	schoolID := uuid.New()
	if v := os.Getenv("SEED_SCHOOL_ID"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			schoolID = id
		}
	}

	teacherID := uuid.New()
	seedUser(db, userModel.UserModel{
		UserSchoolID: schoolID,
		UserName:     "Admin Sekolah",
		UserEmail:    "admin@schoolku.local",
		UserRole:     helperAuth.RoleSchoolAdmin,
	}, "admin123")
	seedUser(db, userModel.UserModel{
		UserSchoolID:  schoolID,
		UserName:      "Guru Demo",
		UserEmail:     "guru@schoolku.local",
		UserRole:      helperAuth.RoleTeacher,
		UserTeacherID: &teacherID,
	}, "guru1234")
}

func seedUser(db *gorm.DB, u userModel.UserModel, plain string) {
	var cnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", u.UserEmail).
		Count(&cnt).Error; err != nil {
		log.Printf("seed check err: %v", err)
		return
	}
	if cnt > 0 {
		return
	}

	hash, err := helperAuth.HashPassword(plain)
	if err != nil {
		log.Printf("seed hash err: %v", err)
		return
	}
	u.UserPassword = hash
	if err := db.Create(&u).Error; err != nil {
		log.Printf("seed create err: %v", err)
		return
	}
	log.Printf("✅ Seed user %s (%s)", u.UserEmail, u.UserRole)
}
