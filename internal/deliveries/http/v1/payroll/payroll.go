package payroll

import (
	"errors"
	nethttp "net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/common/http"
	"github.com/vpena/go-payroll-disbursement/internal/common/http/middleware"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/services"
)

type payrollHandler struct {
	payrollSvc services.PayrollService
}

// New payroll handler will initialize the payroll/ resources endpoint
func New(app *echo.Group, payrollSvc services.PayrollService, m middleware.AppMiddleware) {
	handler := payrollHandler{
		payrollSvc: payrollSvc,
	}
	api := app.Group("/payroll")
	api.POST("/pay", handler.submitPayroll, m.CheckIdempotentRequest())
	api.GET("/payable-employees", handler.getPayableEmployees)
	api.GET("/history", handler.getHistory)
}

type (
	SubmitPayrollResponse struct {
		Success bool                    `json:"success"`
		Data    []models.PaymentOutcome `json:"data"`
		Summary models.BatchSummary     `json:"summary"`
	}

	PayableEmployeesResponse struct {
		Success bool                     `json:"success"`
		Data    []models.PayableEmployee `json:"data"`
	}

	HistoryResponse struct {
		Success bool                   `json:"success"`
		Data    []models.PayrollRecord `json:"data"`
		Source  models.HistorySource   `json:"source"`
	}
)

func (h *payrollHandler) submitPayroll(c echo.Context) error {
	req := new(models.SubmitPayrollRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	res, err := h.payrollSvc.SubmitPayroll(c.Request().Context(), *req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidApproval) {
			return http.RestErrorResponse(c, nethttp.StatusUnauthorized, err)
		}

		var merr *multierror.Error
		if errors.As(err, &merr) {
			return http.RestErrorValidationResponse(c, merr)
		}

		if errors.Is(err, common.ErrEmployeeNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, SubmitPayrollResponse{
		Success: true,
		Data:    res.Outcomes,
		Summary: res.Summary,
	})
}

type payablePeriodQuery struct {
	Month int `query:"month"`
	Year  int `query:"year"`
}

func (h *payrollHandler) getPayableEmployees(c echo.Context) error {
	// absent params bind to zero, the service treats that as the
	// current period
	period := new(payablePeriodQuery)
	if err := c.Bind(period); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	res, err := h.payrollSvc.GetPayableEmployees(c.Request().Context(), period.Month, period.Year)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, PayableEmployeesResponse{
		Success: true,
		Data:    res,
	})
}

func (h *payrollHandler) getHistory(c echo.Context) error {
	opts := new(models.PayrollFilterOptions)

	if err := c.Bind(opts); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	records, source, err := h.payrollSvc.GetHistory(c.Request().Context(), *opts)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, HistoryResponse{
		Success: true,
		Data:    records,
		Source:  source,
	})
}
