package postgresql

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 8})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, Migrate(ctx, db))
	_, err = db.Exec(ctx, `TRUNCATE TABLE attendance_entries, employees CASCADE`)
	require.NoError(t, err)
	return db
}

func sampleEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:            id,
		Name:          "فاطمة علي",
		Position:      "نادل",
		BaseSalary:    decimal.NewFromInt(3000),
		WorkStartTime: clock.MustParseWallTime("09:00"),
		WorkEndTime:   clock.MustParseWallTime("18:00"),
		JoinDate:      "2024-01-15",
	}
}

func TestEmployeeRepository_Postgres(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	created, err := repo.Create(ctx, sampleEmployee("100002"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", created.JoinDate)
	assert.Equal(t, "09:00", created.WorkStartTime.String())
	assert.True(t, decimal.NewFromInt(3000).Equal(created.BaseSalary))

	_, err = repo.Create(ctx, sampleEmployee("100002"))
	assert.ErrorIs(t, err, employee.ErrDuplicateEmployeeID)

	_, err = repo.GetByID(ctx, "999999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAttendanceRepository_Postgres(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	emp := sampleEmployee("100002")
	_, err := NewEmployeeRepository(db).Create(ctx, emp)
	require.NoError(t, err)

	repo := NewAttendanceRepository(db)
	now := time.Date(2024, 3, 5, 9, 5, 0, 0, time.UTC)
	date := clock.DateKey(now)

	// Concurrent first check-ins: exactly one wins.
	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Mutate(ctx, date, emp.ID, func(l attendance.Ledger) error {
				_, err := l.CheckIn(emp, date, now)
				return err
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	}
	assert.Equal(t, 1, succeeded)

	err = repo.Mutate(ctx, date, emp.ID, func(l attendance.Ledger) error {
		return l.CheckOut(emp, date, now.Add(8*time.Hour))
	})
	require.NoError(t, err)

	day, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	require.Contains(t, day, emp.ID)
	assert.True(t, day[emp.ID].IsLate)
	assert.Equal(t, "17:05", day[emp.ID].CheckOut.String())

	ledger, err := repo.LedgerBetween(ctx, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.NotNil(t, ledger.Lookup(emp.ID, date))
}
