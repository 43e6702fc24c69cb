package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
	"github.com/cmlabs-hris/attendance-payroll/internal/fixtures"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-payroll/internal/repository/localstore"
	attendanceService "github.com/cmlabs-hris/attendance-payroll/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/attendance-payroll/internal/service/employee"
	payrollService "github.com/cmlabs-hris/attendance-payroll/internal/service/payroll"
	reportService "github.com/cmlabs-hris/attendance-payroll/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server *httptest.Server
	clock  *clock.Fixed
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clk := &clock.Fixed{T: time.Date(2024, 3, 5, 9, 10, 0, 0, time.UTC)}
	store := localstore.NewMemory()
	employeeRepo := localstore.NewEmployeeRepository(store)
	attendanceRepo := localstore.NewAttendanceRepository(store)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clk)
	_, err := employeeSvc.SeedIfEmpty(context.Background(), fixtures.SampleEmployees())
	require.NoError(t, err)

	hub := sse.NewHub()
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, hub)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, employeeRepo, payrollService.NewCalculator(payroll.DefaultPolicy()))
	reportSvc := reportService.NewReportService(attendanceSvc, payrollSvc, reportService.NewFormatter(report.English))

	exports, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	router := NewRouter(
		RouterConfig{
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			AllowedOrigins: []string{"*"},
			LogLevel:       slog.LevelInfo,
		},
		NewEmployeeHandler(employeeSvc),
		NewAttendanceHandler(attendanceSvc, hub),
		NewPayrollHandler(payrollSvc),
		NewReportHandler(reportSvc, attendanceSvc.Today, exports),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testEnv{server: server, clock: clk}
}

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Severity string          `json:"severity"`
	Data     json.RawMessage `json:"data"`
	Error    *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestRouter_CheckInFlow(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]string{"employee_id": "100002"}

	resp, got := env.do(t, http.MethodPost, "/api/v1/attendance/check-in", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", got.Severity)

	var checked struct {
		CheckIn string `json:"check_in"`
		IsLate  bool   `json:"is_late"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &checked))
	assert.Equal(t, "09:10", checked.CheckIn)
	assert.True(t, checked.IsLate)
	assert.Equal(t, "Late", checked.Status)

	resp, got = env.do(t, http.MethodPost, "/api/v1/attendance/check-in", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "warning", got.Severity)

	env.clock.Set(time.Date(2024, 3, 5, 17, 40, 0, 0, time.UTC))
	resp, _ = env.do(t, http.MethodPost, "/api/v1/attendance/check-out", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, got = env.do(t, http.MethodPost, "/api/v1/attendance/check-out", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "warning", got.Severity)

	resp, got = env.do(t, http.MethodGet, "/api/v1/attendance/summary?date=2024-03-05", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary struct {
		TotalEmployees int `json:"total_employees"`
		Present        int `json:"present"`
		Absent         int `json:"absent"`
		Late           int `json:"late"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &summary))
	assert.Equal(t, 3, summary.TotalEmployees)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 2, summary.Absent)
	assert.Equal(t, 1, summary.Late)
}

func TestRouter_CheckOutErrors(t *testing.T) {
	env := newTestEnv(t)

	resp, got := env.do(t, http.MethodPost, "/api/v1/attendance/check-out", map[string]string{"employee_id": "100001"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error", got.Severity)

	resp, _ = env.do(t, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"employee_id": "12345"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"employee_id": "999999"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Employees(t *testing.T) {
	env := newTestEnv(t)

	resp, got := env.do(t, http.MethodPost, "/api/v1/employees", map[string]string{
		"id": "100004", "name": "Sara", "position": "Cashier", "salary": "4000",
		"work_start_time": "08:30", "work_end_time": "17:30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID       string `json:"id"`
		JoinDate string `json:"join_date"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &created))
	assert.Equal(t, "100004", created.ID)
	assert.Equal(t, "2024-03-05", created.JoinDate)

	resp, _ = env.do(t, http.MethodPost, "/api/v1/employees", map[string]string{
		"id": "100004", "name": "Dup", "position": "Cashier", "salary": "4000",
		"work_start_time": "08:30", "work_end_time": "17:30",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, got = env.do(t, http.MethodPost, "/api/v1/employees", map[string]string{"id": "100005"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NotNil(t, got.Error)
	assert.Contains(t, got.Error.Details, "name")

	resp, got = env.do(t, http.MethodGet, "/api/v1/employees", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &list))
	require.Len(t, list, 4)
	assert.Equal(t, "100001", list[0].ID)
	assert.Equal(t, "100004", list[3].ID)

	resp, _ = env.do(t, http.MethodGet, "/api/v1/employees/100003", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = env.do(t, http.MethodGet, "/api/v1/employees/777777", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Payroll(t *testing.T) {
	env := newTestEnv(t)

	resp, got := env.do(t, http.MethodGet, "/api/v1/payroll", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", got.Severity)

	resp, got = env.do(t, http.MethodGet, "/api/v1/payroll?month=2024-03", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var monthly struct {
		Summaries []struct {
			EmployeeID string `json:"employee_id"`
			AbsentDays int    `json:"absent_days"`
		} `json:"summaries"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &monthly))
	require.Len(t, monthly.Summaries, 3)
	// March 2024 has 21 Sunday to Thursday days.
	assert.Equal(t, 21, monthly.Summaries[0].AbsentDays)

	resp, _ = env.do(t, http.MethodGet, "/api/v1/payroll/100001?month=2024-03", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ExportAttendanceCSV(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/api/v1/attendance/export?date=2024-03-05")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename=attendance_2024-03-05.csv`, resp.Header.Get("Content-Disposition"))

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, report.English.AttendanceHeader, records[0])
	assert.Equal(t, "Absent", records[1][5])
}

func TestRouter_ExportPayrollUnsupportedFormat(t *testing.T) {
	env := newTestEnv(t)

	resp, got := env.do(t, http.MethodGet, "/api/v1/payroll/export?month=2024-03&format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, got.Success)
}

func TestRouter_Heartbeat(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// readEvent returns the name and data of the next server-sent event.
func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "" && name != "":
			return name, data
		}
	}
}

func TestRouter_Stream(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, env.server.URL+"/api/v1/attendance/stream", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	name, data := readEvent(t, reader)
	require.Equal(t, "connected", name)
	assert.Contains(t, data, `"absent":3`)

	env.do(t, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"employee_id": "100001"})

	name, data = readEvent(t, reader)
	assert.Equal(t, "check_in", name)
	assert.Contains(t, data, `"employee_id":"100001"`)

	name, data = readEvent(t, reader)
	assert.Equal(t, "summary", name)
	assert.Contains(t, data, `"present":1`)
}
