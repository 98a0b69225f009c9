// file: internals/features/school/results/dto/result_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/school/results/model"
	"schoolku_backend/internals/features/school/results/service"
)

func TestFromSummaryModel(t *testing.T) {
	t.Run("nil tetap nil", func(t *testing.T) {
		assert.Nil(t, FromSummaryModel(nil))
	})

	t.Run("mapping lengkap", func(t *testing.T) {
		group := "A"
		avg := 87.5
		m := &model.ResultSummaryModel{
			ResultSummaryID:            uuid.New(),
			ResultSummarySchoolID:      uuid.New(),
			ResultSummaryClassID:       uuid.New(),
			ResultSummaryClassGroup:    &group,
			ResultSummarySession:       "2025/2026",
			ResultSummaryTerm:          "1st",
			ResultSummaryTotalStudents: 2,
			ResultSummaryTotalScore:    175,
			ResultSummaryAverageScore:  &avg,
			ResultSummaryStatus:        model.ResultSummaryStatusApproved,
			ResultSummaryApprovedBy:    uuid.New(),
		}

		resp := FromSummaryModel(m)
		require.NotNil(t, resp)
		assert.Equal(t, m.ResultSummaryID, resp.SummaryID)
		assert.Equal(t, 2, resp.TotalStudents)
		assert.Equal(t, 175.0, resp.TotalScore)
		require.NotNil(t, resp.AverageScore)
		assert.Equal(t, 87.5, *resp.AverageScore)
		assert.Equal(t, "approved", resp.Status)
	})
}

func TestFromApprovalStatus(t *testing.T) {
	t.Run("scope masih open", func(t *testing.T) {
		group := "B"
		resp := FromApprovalStatus(&service.ApprovalStatus{
			Approved:   false,
			CanApprove: true,
			ClassGroup: &group,
		})
		assert.False(t, resp.Approved)
		assert.True(t, resp.CanApprove)
		assert.Nil(t, resp.Summary)
		require.NotNil(t, resp.ClassGroup)
		assert.Equal(t, "B", *resp.ClassGroup)
	})

	t.Run("scope sudah approved", func(t *testing.T) {
		// wali kelas tetap can_approve setelah approved (approve ulang idempotent)
		resp := FromApprovalStatus(&service.ApprovalStatus{
			Approved:   true,
			CanApprove: true,
			Summary:    &model.ResultSummaryModel{ResultSummaryTerm: "2nd"},
		})
		assert.True(t, resp.Approved)
		assert.True(t, resp.CanApprove)
		require.NotNil(t, resp.Summary)
		assert.Equal(t, "2nd", resp.Summary.Term)
	})
}
