package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

func newSalaryService(t *testing.T) (TeacherSalaryService, models.User) {
	t.Helper()
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	teacher := seedUser(t, users, models.RoleTeacher)
	return NewTeacherSalaryService(users, testLogger()), teacher
}

func TestUpdateSalaryClampsPaidToTotal(t *testing.T) {
	svc, teacher := newSalaryService(t)

	resp, err := svc.UpdateSalary(context.Background(), teacher.ID, dto.SalaryUpdateRequest{
		TotalSalary: f64ptr(50000),
		PaidSalary:  f64ptr(60000),
	})
	require.NoError(t, err)
	require.Equal(t, 50000.0, resp.TotalSalary)
	require.Equal(t, 50000.0, resp.PaidSalary)
	require.Equal(t, 0.0, resp.Remaining)
}

func TestUpdateSalaryDerivesRemaining(t *testing.T) {
	svc, teacher := newSalaryService(t)

	resp, err := svc.UpdateSalary(context.Background(), teacher.ID, dto.SalaryUpdateRequest{
		TotalSalary: f64ptr(50000),
		PaidSalary:  f64ptr(20000),
	})
	require.NoError(t, err)
	require.Equal(t, 30000.0, resp.Remaining)

	read, err := svc.Salary(context.Background(), teacher.ID)
	require.NoError(t, err)
	require.Equal(t, resp, read)
}

func TestUpdateSalaryPayIncrement(t *testing.T) {
	svc, teacher := newSalaryService(t)

	_, err := svc.UpdateSalary(context.Background(), teacher.ID, dto.SalaryUpdateRequest{
		TotalSalary: f64ptr(50000),
		PaidSalary:  f64ptr(10000),
	})
	require.NoError(t, err)

	resp, err := svc.UpdateSalary(context.Background(), teacher.ID, dto.SalaryUpdateRequest{
		PayIncrement: f64ptr(5000),
	})
	require.NoError(t, err)
	require.Equal(t, 15000.0, resp.PaidSalary)

	// A large negative increment floors the paid amount at zero.
	resp, err = svc.UpdateSalary(context.Background(), teacher.ID, dto.SalaryUpdateRequest{
		PayIncrement: f64ptr(-99999),
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, resp.PaidSalary)
	require.Equal(t, 50000.0, resp.Remaining)
}

func TestUpdateSalaryRejectsNegativeAbsolutes(t *testing.T) {
	svc, teacher := newSalaryService(t)

	_, err := svc.UpdateSalary(context.Background(), teacher.ID, dto.SalaryUpdateRequest{TotalSalary: f64ptr(-1)})
	require.Error(t, err)
	require.True(t, IsValidationError(err))

	_, err = svc.UpdateSalary(context.Background(), teacher.ID, dto.SalaryUpdateRequest{PaidSalary: f64ptr(-1)})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
}

func TestAddRecordReplacesExistingMonthInPlace(t *testing.T) {
	svc, teacher := newSalaryService(t)

	records, err := svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
		Month: "2026-03", Total: f64ptr(50000), Paid: f64ptr(25000), Status: models.SalaryStatusHalfPaid,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	originalID := records[0].ID

	records, err = svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
		Month: "2026-03", Total: f64ptr(50000), Paid: f64ptr(50000), Status: models.SalaryStatusFullyPaid,
	})
	require.NoError(t, err)
	require.Len(t, records, 1, "re-posting a month must not grow the list")
	require.Equal(t, originalID, records[0].ID, "replacing keeps the record id")
	require.Equal(t, models.SalaryStatusFullyPaid, records[0].Status)
	require.Equal(t, 50000.0, records[0].Paid)
}

func TestAddRecordValidation(t *testing.T) {
	svc, teacher := newSalaryService(t)

	_, err := svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
		Total: f64ptr(1), Paid: f64ptr(1), Status: models.SalaryStatusFullyPaid,
	})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Contains(t, err.Error(), "month")

	_, err = svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
		Month: "2026-03", Status: models.SalaryStatusFullyPaid,
	})
	require.Error(t, err)
	require.True(t, IsValidationError(err))

	_, err = svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
		Month: "2026-03", Total: f64ptr(1), Paid: f64ptr(1), Status: "Overdue",
	})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
}

func TestRecordsSortedByMonthDescending(t *testing.T) {
	svc, teacher := newSalaryService(t)

	for _, month := range []string{"2026-01", "2026-03", "2025-12", "2026-02"} {
		_, err := svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
			Month: month, Total: f64ptr(50000), Paid: f64ptr(50000), Status: models.SalaryStatusFullyPaid,
		})
		require.NoError(t, err)
	}

	records, err := svc.Records(context.Background(), teacher.ID)
	require.NoError(t, err)
	require.Len(t, records, 4)
	months := []string{records[0].Month, records[1].Month, records[2].Month, records[3].Month}
	require.Equal(t, []string{"2026-03", "2026-02", "2026-01", "2025-12"}, months)
}

func TestUpdateRecordPartial(t *testing.T) {
	svc, teacher := newSalaryService(t)

	records, err := svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
		Month: "2026-03", Total: f64ptr(50000), Paid: f64ptr(25000), Status: models.SalaryStatusHalfPaid,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRecord(context.Background(), teacher.ID, records[0].ID, dto.SalaryRecordUpdateRequest{
		Paid:   f64ptr(50000),
		Status: strptr(models.SalaryStatusFullyPaid),
	})
	require.NoError(t, err)
	require.Equal(t, 50000.0, updated[0].Paid)
	require.Equal(t, models.SalaryStatusFullyPaid, updated[0].Status)
	require.Equal(t, "2026-03", updated[0].Month)

	_, err = svc.UpdateRecord(context.Background(), teacher.ID, records[0].ID, dto.SalaryRecordUpdateRequest{
		Paid: f64ptr(-1),
	})
	require.Error(t, err)
	require.True(t, IsValidationError(err))

	_, err = svc.UpdateRecord(context.Background(), teacher.ID, "no-such-record", dto.SalaryRecordUpdateRequest{})
	require.ErrorIs(t, err, ErrSalaryRecordNotFound)
}

func TestDeleteRecord(t *testing.T) {
	svc, teacher := newSalaryService(t)

	records, err := svc.AddRecord(context.Background(), teacher.ID, dto.SalaryRecordCreateRequest{
		Month: "2026-03", Total: f64ptr(50000), Paid: f64ptr(50000), Status: models.SalaryStatusFullyPaid,
	})
	require.NoError(t, err)

	remaining, err := svc.DeleteRecord(context.Background(), teacher.ID, records[0].ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	_, err = svc.DeleteRecord(context.Background(), teacher.ID, records[0].ID)
	require.ErrorIs(t, err, ErrSalaryRecordNotFound)
}
