package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-payroll/internal/fixtures"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-payroll/internal/repository/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() employee.EmployeeService {
	clk := &clock.Fixed{T: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}
	return NewEmployeeService(localstore.NewEmployeeRepository(localstore.NewMemory()), clk)
}

func validRequest(id string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		ID:            id,
		Name:          "Sara",
		Position:      "Cashier",
		Salary:        "4000.50",
		WorkStartTime: "08:30",
		WorkEndTime:   "17:30",
	}
}

func TestEmployeeService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Register(ctx, validRequest("100004"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", created.JoinDate)
	assert.Equal(t, "4000.5", created.Salary.String())
	assert.Equal(t, "08:30", created.WorkStartTime)

	_, err = svc.Register(ctx, validRequest("100004"))
	assert.ErrorIs(t, err, employee.ErrDuplicateEmployeeID)
}

func TestEmployeeService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tests := []struct {
		name    string
		mutate  func(r *employee.CreateEmployeeRequest)
		wantErr error
		field   string
	}{
		{"missing name", func(r *employee.CreateEmployeeRequest) { r.Name = " " }, employee.ErrMissingRequiredField, "name"},
		{"short id", func(r *employee.CreateEmployeeRequest) { r.ID = "12345" }, employee.ErrInvalidEmployeeID, "id"},
		{"letters in id", func(r *employee.CreateEmployeeRequest) { r.ID = "12345a" }, employee.ErrInvalidEmployeeID, "id"},
		{"zero salary", func(r *employee.CreateEmployeeRequest) { r.Salary = "0" }, employee.ErrInvalidSalary, "salary"},
		{"bad start", func(r *employee.CreateEmployeeRequest) { r.WorkStartTime = "25:00" }, nil, "work_start_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest("100009")
			tt.mutate(&req)

			_, err := svc.Register(ctx, req)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "failed registrations leave the directory unchanged")
}

func TestEmployeeService_Lookup(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	seeded, err := svc.SeedIfEmpty(ctx, fixtures.SampleEmployees())
	require.NoError(t, err)
	assert.Equal(t, 3, seeded)

	again, err := svc.SeedIfEmpty(ctx, fixtures.SampleEmployees())
	require.NoError(t, err)
	assert.Zero(t, again, "seeding only touches an empty directory")

	found, err := svc.Get(ctx, "100003")
	require.NoError(t, err)
	assert.Equal(t, "محمد حسن", found.Name)

	_, err = svc.Get(ctx, "100")
	assert.ErrorIs(t, err, employee.ErrInvalidEmployeeID)

	_, err = svc.Get(ctx, "123456")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"100001", "100002", "100003"}, []string{list[0].ID, list[1].ID, list[2].ID})
}
