// file: internals/helpers/auth/locals.go
package helper

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocRole      = "role"       // string: teacher | school_admin | super_admin
	LocUserID    = "user_id"    // string UUID
	LocSchoolID  = "school_id"  // string UUID (tenant aktif)
	LocTeacherID = "teacher_id" // string UUID (hanya token guru)
)

/* ============================================
   Roles
   ============================================ */

const (
	RoleTeacher     = "teacher"
	RoleSchoolAdmin = "school_admin"
	RoleSuperAdmin  = "super_admin" // admin diosesan, lintas sekolah
)
