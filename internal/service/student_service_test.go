package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

func newStudentService(t *testing.T) StudentService {
	t.Helper()
	db := setupTestDB(t)
	return NewStudentService(repository.NewStudentRepository(db), testValidator(), testLogger())
}

func createStudent(t *testing.T, svc StudentService, regno string) models.Student {
	t.Helper()
	student, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		Name:   "Student " + regno,
		RegNo:  regno,
		Mobile: "9876543210",
	})
	require.NoError(t, err)
	return student
}

func strptr(s string) *string   { return &s }
func f64ptr(f float64) *float64 { return &f }

func TestStudentCreateDefaults(t *testing.T) {
	svc := newStudentService(t)

	student := createStudent(t, svc, "REG-001")
	require.Equal(t, models.FeeStatusPending, student.FeeStatus)
	require.Equal(t, "", student.Division)
	require.Zero(t, student.Marks)
	require.Zero(t, student.CGPA)
	require.Empty(t, student.Leaves)
}

func TestStudentCreateRequiresCoreFields(t *testing.T) {
	svc := newStudentService(t)

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{Name: "No RegNo"})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Contains(t, err.Error(), "name, regno and mobile")
}

func TestStudentCreateRejectsDuplicateRegNo(t *testing.T) {
	svc := newStudentService(t)
	createStudent(t, svc, "REG-001")

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		Name:   "Other",
		RegNo:  "REG-001",
		Mobile: "1112223334",
	})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Contains(t, err.Error(), "already exists")
}

func TestStudentUpdateTouchesOnlyIdentityAndFeeFields(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	updated, err := svc.UpdateMarks(context.Background(), student.ID, dto.MarksUpdateRequest{CGPA: f64ptr(8.4)})
	require.NoError(t, err)
	require.InDelta(t, 8.4, updated.CGPA, 1e-9)

	updated, err = svc.Update(context.Background(), student.ID, dto.StudentUpdateRequest{
		Name:      strptr("Renamed"),
		Division:  strptr("A"),
		FeeStatus: strptr(models.FeeStatusPaid),
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "A", updated.Division)
	require.Equal(t, models.FeeStatusPaid, updated.FeeStatus)
	// cgpa is untouched by the general update path
	require.InDelta(t, 8.4, updated.CGPA, 1e-9)
}

func TestStudentUpdateRejectsRegNoCollision(t *testing.T) {
	svc := newStudentService(t)
	createStudent(t, svc, "REG-001")
	second := createStudent(t, svc, "REG-002")

	_, err := svc.Update(context.Background(), second.ID, dto.StudentUpdateRequest{RegNo: strptr("REG-001")})
	require.Error(t, err)
	require.True(t, IsValidationError(err))

	// Re-submitting the current regno is not a collision.
	updated, err := svc.Update(context.Background(), second.ID, dto.StudentUpdateRequest{RegNo: strptr("REG-002")})
	require.NoError(t, err)
	require.Equal(t, "REG-002", updated.RegNo)
}

func TestStudentUpdateRejectsBadDivision(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	_, err := svc.Update(context.Background(), student.ID, dto.StudentUpdateRequest{Division: strptr("C")})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
}

func TestUpdateMarksClampsCGPA(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	updated, err := svc.UpdateMarks(context.Background(), student.ID, dto.MarksUpdateRequest{CGPA: f64ptr(12.5)})
	require.NoError(t, err)
	require.Equal(t, 10.0, updated.CGPA)

	updated, err = svc.UpdateMarks(context.Background(), student.ID, dto.MarksUpdateRequest{CGPA: f64ptr(-3)})
	require.NoError(t, err)
	require.Equal(t, 0.0, updated.CGPA)

	_, err = svc.UpdateMarks(context.Background(), student.ID, dto.MarksUpdateRequest{})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Contains(t, err.Error(), "cgpa must be a number")
}

func TestStudentDelete(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	require.NoError(t, svc.Delete(context.Background(), student.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), student.ID), ErrStudentNotFound)
}

func TestAddLeaveEnforcesMonthlyCap(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	for day := 1; day <= studentLeaveCap; day++ {
		_, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{
			Date:   fmt.Sprintf("2026-03-%02d", day),
			Reason: "sick",
		})
		require.NoError(t, err)
	}

	_, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "2026-03-20"})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Contains(t, err.Error(), "monthly leave limit")

	// A different month is a fresh budget.
	leaves, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "2026-04-01"})
	require.NoError(t, err)
	require.Len(t, leaves, studentLeaveCap+1)
}

func TestAddLeaveDefaultsStatusAndIgnoresInvalid(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	leaves, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "2026-03-01", Status: "Maybe"})
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	require.Equal(t, models.LeaveStatusPending, leaves[0].Status)
	require.NotEmpty(t, leaves[0].ID)

	leaves, err = svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "2026-03-02", Status: models.LeaveStatusApproved})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, leaves[1].Status)
}

func TestAddLeaveRequiresParsableDate(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	_, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Contains(t, err.Error(), "date is required")

	_, err = svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "yesterday"})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Contains(t, err.Error(), "invalid date")
}

func TestUpdateLeaveMoveRechecksCapExcludingItself(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	var leaves []models.Leave
	var err error
	for day := 1; day <= studentLeaveCap; day++ {
		leaves, err = svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{
			Date: fmt.Sprintf("2026-03-%02d", day),
		})
		require.NoError(t, err)
	}
	outside, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "2026-04-01"})
	require.NoError(t, err)

	// Moving a leave within its own full month does not count itself.
	moved, err := svc.UpdateLeave(context.Background(), student.ID, leaves[0].ID, dto.LeaveUpdateRequest{Date: strptr("2026-03-25")})
	require.NoError(t, err)
	require.Len(t, moved, studentLeaveCap+1)

	// Moving the April leave into the full March month is over budget.
	aprilID := outside[len(outside)-1].ID
	_, err = svc.UpdateLeave(context.Background(), student.ID, aprilID, dto.LeaveUpdateRequest{Date: strptr("2026-03-26")})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
}

func TestUpdateLeaveIgnoresInvalidStatus(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	leaves, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "2026-03-01"})
	require.NoError(t, err)

	updated, err := svc.UpdateLeave(context.Background(), student.ID, leaves[0].ID, dto.LeaveUpdateRequest{
		Status: strptr("Escalated"),
		Reason: strptr("family function"),
	})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusPending, updated[0].Status)
	require.Equal(t, "family function", updated[0].Reason)

	updated, err = svc.UpdateLeave(context.Background(), student.ID, leaves[0].ID, dto.LeaveUpdateRequest{
		Status: strptr(models.LeaveStatusRejected),
	})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, updated[0].Status)
}

func TestDeleteLeave(t *testing.T) {
	svc := newStudentService(t)
	student := createStudent(t, svc, "REG-001")

	leaves, err := svc.AddLeave(context.Background(), student.ID, dto.LeaveCreateRequest{Date: "2026-03-01"})
	require.NoError(t, err)

	remaining, err := svc.DeleteLeave(context.Background(), student.ID, leaves[0].ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	_, err = svc.DeleteLeave(context.Background(), student.ID, leaves[0].ID)
	require.ErrorIs(t, err, ErrLeaveNotFound)
}
