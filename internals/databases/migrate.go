// file: internals/databases/migrate.go
package database

import (
	"log"
	"os"

	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/academics/classes/model"
	enrollModel "schoolku_backend/internals/features/school/academics/enrollments/model"
	subjectModel "schoolku_backend/internals/features/school/academics/subjects/model"
	resultModel "schoolku_backend/internals/features/school/results/model"
	scoreModel "schoolku_backend/internals/features/school/scores/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// MigrateIfRequested: AutoMigrate + perbaikan index yang tidak bisa
// dinyatakan lewat tag gorm. Dipicu env DB_AUTOMIGRATE=true (dev/staging);
// production pakai migrasi SQL terkelola.
func MigrateIfRequested() {
	if os.Getenv("DB_AUTOMIGRATE") != "true" {
		return
	}
	log.Println("⚙️ AutoMigrate berjalan...")

	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&subjectModel.ClassSubjectModel{},
		&enrollModel.StudentClassMembershipModel{},
		&enrollModel.StudentSubjectEnrollmentModel{},
		&enrollModel.TeacherSubjectAssignmentModel{},
		&enrollModel.FormTeacherAssignmentModel{},
		&scoreModel.StudentScoreModel{},
		&resultModel.ResultSummaryModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	fixupIndexes(DB)
	log.Println("✅ AutoMigrate selesai.")
}

// fixupIndexes: bentuk index spesial (partial / NULLS NOT DISTINCT) yang
// tag gorm hanya bisa dokumentasikan, tidak bisa buat.
func fixupIndexes(db *gorm.DB) {
	stmts := []string{
		// natural key nilai: unik hanya utk baris hidup, supaya soft delete
		// tidak memblok entri ulang
		`DROP INDEX IF EXISTS uq_student_scores_natural_key`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_student_scores_natural_key
		 ON student_scores (
			student_score_student_id, student_score_class_id,
			student_score_subject_id, student_score_session, student_score_term
		 ) WHERE student_score_deleted_at IS NULL`,

		// scope approval: dua NULL group dihitung sama (PG15+)
		`DROP INDEX IF EXISTS uq_result_summaries_scope`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_result_summaries_scope
		 ON result_summaries (
			result_summary_school_id, result_summary_class_id,
			result_summary_class_group, result_summary_session, result_summary_term
		 ) NULLS NOT DISTINCT`,

		// wali kelas: satu wali hidup per (class, group, session)
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_form_teachers_scope
		 ON form_teacher_assignments (
			form_teacher_assignment_class_id, form_teacher_assignment_class_group,
			form_teacher_assignment_session
		 ) NULLS NOT DISTINCT WHERE form_teacher_assignment_deleted_at IS NULL`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			log.Printf("index fixup err: %v", err)
		}
	}
}
