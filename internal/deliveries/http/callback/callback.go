package callback

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/vpena/go-payroll-disbursement/internal/common/http"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/services"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"
)

type callbackHandler struct {
	payrollSvc services.PayrollService
}

// New callback handler registers the provider-facing momo/ endpoint.
// It sits outside internal auth: the provider cannot send our secret
// key, the reference id is the only thing tying a callback to a record.
func New(app *echo.Group, payrollSvc services.PayrollService) {
	handler := callbackHandler{
		payrollSvc: payrollSvc,
	}
	api := app.Group("/momo")
	api.POST("/callback", handler.transferCallback)
}

type (
	TransferCallbackRequest struct {
		ReferenceID string `json:"referenceId"`
		Status      string `json:"status"`
	}

	TransferCallbackResponse struct {
		Success bool `json:"success"`
	}
)

func (h *callbackHandler) transferCallback(c echo.Context) error {
	req := new(TransferCallbackRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	ctx := c.Request().Context()

	xlog.Info(ctx, "momo callback received",
		xlog.String("referenceId", req.ReferenceID),
		xlog.String("status", req.Status),
	)

	if req.ReferenceID != "" && req.Status != "" {
		err := h.payrollSvc.UpdatePaymentStatus(ctx, req.ReferenceID, models.NormalizeTransferStatus(req.Status))
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, TransferCallbackResponse{Success: true})
}
