package report

import "strconv"

// Labels is the localized text a report is rendered with.
type Labels struct {
	AttendanceHeader []string
	PayrollHeader    []string
	Present          string
	Late             string
	Absent           string
	HoursUnit        string
	CurrencyUnit     string
	Blank            string
	AttendanceSheet  string
	PayrollSheet     string
	RightToLeft      bool
}

var Arabic = Labels{
	AttendanceHeader: []string{"رقم الموظف", "اسم الموظف", "وقت الحضور", "وقت الانصراف", "ساعات العمل", "الحالة"},
	PayrollHeader:    []string{"رقم الموظف", "اسم الموظف", "الراتب الأساسي", "أيام الحضور", "أيام الغياب", "أيام التأخير", "ساعات العمل الإجمالية", "الخصومات", "الراتب النهائي"},
	Present:          "حاضر",
	Late:             "متأخر",
	Absent:           "غائب",
	HoursUnit:        "ساعة",
	CurrencyUnit:     "ريال",
	Blank:            "-",
	AttendanceSheet:  "الحضور",
	PayrollSheet:     "الرواتب",
	RightToLeft:      true,
}

var English = Labels{
	AttendanceHeader: []string{"Employee ID", "Employee Name", "Check In", "Check Out", "Work Hours", "Status"},
	PayrollHeader:    []string{"Employee ID", "Employee Name", "Base Salary", "Present Days", "Absent Days", "Late Days", "Total Work Hours", "Deductions", "Final Salary"},
	Present:          "Present",
	Late:             "Late",
	Absent:           "Absent",
	HoursUnit:        "hours",
	CurrencyUnit:     "SAR",
	Blank:            "-",
	AttendanceSheet:  "Attendance",
	PayrollSheet:     "Payroll",
}

// LabelsFor returns the labels for a locale code, defaulting to Arabic.
func LabelsFor(locale string) Labels {
	switch locale {
	case "en":
		return English
	default:
		return Arabic
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
