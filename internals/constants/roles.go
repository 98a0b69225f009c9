package constants

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya guru atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin sekolah yang boleh mengakses fitur %s."
	ErrOnlySuperAdminAccess  = "❌ Hanya super admin diosesan yang boleh mengakses fitur %s."
)
