package employee

import (
	"errors"
	nethttp "net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/common/http"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/services"
)

type employeeHandler struct {
	employeeSvc services.EmployeeService
}

// New employee handler will initialize the employees/ resources endpoint
func New(app *echo.Group, employeeSvc services.EmployeeService) {
	handler := employeeHandler{
		employeeSvc: employeeSvc,
	}
	api := app.Group("/employees")
	api.POST("", handler.createEmployee)
	api.GET("", handler.getAllEmployees)
	api.GET("/:id", handler.getEmployee)
}

func (h *employeeHandler) createEmployee(c echo.Context) error {
	req := new(models.CreateEmployeeRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	res, err := h.employeeSvc.CreateEmployee(c.Request().Context(), *req)
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			return http.RestErrorValidationResponse(c, merr)
		}

		if errors.Is(err, common.ErrMobileNumberTaken) {
			return http.RestErrorResponse(c, nethttp.StatusConflict, err)
		}

		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

func (h *employeeHandler) getAllEmployees(c echo.Context) error {
	res, err := h.employeeSvc.GetEmployees(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *employeeHandler) getEmployee(c echo.Context) error {
	res, err := h.employeeSvc.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrEmployeeNotFound) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
		if errors.Is(err, common.ErrIDEmpty) {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
