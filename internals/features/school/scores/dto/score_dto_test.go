// file: internals/features/school/scores/dto/score_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var v = validator.New()

func validSaveReq() SaveScoreRequest {
	return SaveScoreRequest{
		StudentID: uuid.New(),
		ClassID:   uuid.New(),
		SubjectID: uuid.New(),
		Session:   "2025/2026",
		Term:      "1st",
	}
}

func f(x float64) *float64 { return &x }

func TestSaveScoreRequestValidation(t *testing.T) {
	t.Run("request minimal valid", func(t *testing.T) {
		req := validSaveReq()
		assert.NoError(t, v.Struct(req))
	})

	t.Run("komponen negatif ditolak", func(t *testing.T) {
		req := validSaveReq()
		req.Exam = f(-1)
		assert.Error(t, v.Struct(req))
	})

	t.Run("komponen absen boleh", func(t *testing.T) {
		req := validSaveReq()
		req.Assessment1 = nil
		req.Exam = f(55)
		require.NoError(t, v.Struct(req))

		comp := req.Components()
		assert.Equal(t, 0.0, comp.Assessment1)
		assert.Equal(t, 55.0, comp.Exam)
	})

	t.Run("student_id wajib", func(t *testing.T) {
		req := validSaveReq()
		req.StudentID = uuid.Nil
		assert.Error(t, v.Struct(req))
	})

	t.Run("session wajib", func(t *testing.T) {
		req := validSaveReq()
		req.Session = ""
		assert.Error(t, v.Struct(req))
	})
}

func TestUpdateScoreRequestComponents(t *testing.T) {
	req := UpdateScoreRequest{
		Assessment1: f(5),
		Test2:       f(7),
	}
	require.NoError(t, v.Struct(req))

	comp := req.Components()
	assert.Equal(t, 5.0, comp.Assessment1)
	assert.Equal(t, 0.0, comp.Assessment2)
	assert.Equal(t, 7.0, comp.Test2)
	assert.Equal(t, 0.0, comp.Exam)
}
