package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampSalary(t *testing.T) {
	user := User{TotalSalary: 50000, PaidSalary: 60000}
	user.ClampSalary()
	require.Equal(t, 50000.0, user.PaidSalary)

	user = User{TotalSalary: -100, PaidSalary: -50}
	user.ClampSalary()
	require.Equal(t, 0.0, user.TotalSalary)
	require.Equal(t, 0.0, user.PaidSalary)
}

func TestRemainingSalary(t *testing.T) {
	user := User{TotalSalary: 50000, PaidSalary: 20000}
	require.Equal(t, 30000.0, user.RemainingSalary())

	// Never negative, even before a clamp runs.
	user = User{TotalSalary: 100, PaidSalary: 500}
	require.Equal(t, 0.0, user.RemainingSalary())
}

func TestClampCGPA(t *testing.T) {
	require.Equal(t, 0.0, ClampCGPA(-1))
	require.Equal(t, 10.0, ClampCGPA(11))
	require.Equal(t, 7.5, ClampCGPA(7.5))
}
