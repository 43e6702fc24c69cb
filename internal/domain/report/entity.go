package report

// AttendanceRow is one line of a daily attendance sheet, already formatted.
type AttendanceRow struct {
	EmployeeID   string `csv:"employee_id"`
	EmployeeName string `csv:"employee_name"`
	CheckIn      string `csv:"check_in"`
	CheckOut     string `csv:"check_out"`
	WorkHours    string `csv:"work_hours"`
	Status       string `csv:"status"`
}

func (r AttendanceRow) Cells() []string {
	return []string{r.EmployeeID, r.EmployeeName, r.CheckIn, r.CheckOut, r.WorkHours, r.Status}
}

// PayrollRow is one line of a monthly salary report, already formatted.
type PayrollRow struct {
	EmployeeID   string `csv:"employee_id"`
	EmployeeName string `csv:"employee_name"`
	BaseSalary   string `csv:"base_salary"`
	PresentDays  int    `csv:"present_days"`
	AbsentDays   int    `csv:"absent_days"`
	LateDays     int    `csv:"late_days"`
	TotalHours   string `csv:"total_hours"`
	Deductions   string `csv:"deductions"`
	FinalSalary  string `csv:"final_salary"`
}

func (r PayrollRow) Cells() []string {
	return []string{
		r.EmployeeID,
		r.EmployeeName,
		r.BaseSalary,
		itoa(r.PresentDays),
		itoa(r.AbsentDays),
		itoa(r.LateDays),
		r.TotalHours,
		r.Deductions,
		r.FinalSalary,
	}
}

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// File is a rendered export ready to hand to a sink.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// AttendanceFileName is attendance_<YYYY-MM-DD>.<format>.
func AttendanceFileName(date string, format Format) string {
	return "attendance_" + date + "." + string(format)
}

// PayrollFileName is salary_report_<YYYY-MM>.<format>.
func PayrollFileName(period string, format Format) string {
	return "salary_report_" + period + "." + string(format)
}
