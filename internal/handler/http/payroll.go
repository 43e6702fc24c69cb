package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	EmployeeSalary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Monthly implements PayrollHandler.
func (h *payrollHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := payroll.MonthlyPayrollRequest{Month: r.URL.Query().Get("month")}

	result, err := h.payrollService.MonthlyPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll calculated successfully", result)
}

// EmployeeSalary implements PayrollHandler.
func (h *payrollHandlerImpl) EmployeeSalary(w http.ResponseWriter, r *http.Request) {
	req := payroll.EmployeeSalaryRequest{
		EmployeeID: chi.URLParam(r, "employee_id"),
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.payrollService.EmployeeSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
