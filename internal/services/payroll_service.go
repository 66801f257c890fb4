package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/common/momo"
	"github.com/vpena/go-payroll-disbursement/internal/common/validation"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/monitoring"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"
)

type PayrollService interface {
	SubmitPayroll(ctx context.Context, req models.SubmitPayrollRequest) (out models.BatchResult, err error)
	GetPayableEmployees(ctx context.Context, month, year int) (out []models.PayableEmployee, err error)
	GetHistory(ctx context.Context, opts models.PayrollFilterOptions) (records []models.PayrollRecord, source models.HistorySource, err error)
	UpdatePaymentStatus(ctx context.Context, referenceID string, status models.TransferStatus) (err error)
}

type payroll service

var _ PayrollService = (*payroll)(nil)

const (
	transferModeLive      = "live"
	transferModeSimulated = "simulated"
)

// SubmitPayroll runs one disbursement batch. The approval password is
// checked before anything else, a wrong password rejects the whole
// request. A payment referencing an unknown employee also aborts the
// batch: it means the request was built against stale employee data.
func (ps *payroll) SubmitPayroll(ctx context.Context, req models.SubmitPayrollRequest) (out models.BatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if req.ApprovalPassword == "" || req.ApprovalPassword != ps.srv.conf.Payroll.ApprovalPassword {
		err = common.ErrInvalidApproval
		return
	}

	if err = validation.ValidateStruct(req); err != nil {
		return
	}

	instructions, err := ps.enrichPayments(ctx, req.Payments)
	if err != nil {
		return
	}

	out = ps.processBatch(ctx, instructions)

	xlog.Info(ctx, "payroll batch processed",
		xlog.Int("total", out.Summary.Total),
		xlog.Int("successful", out.Summary.Successful),
		xlog.Int("failed", out.Summary.Failed),
	)

	return
}

// enrichPayments resolves each payment's employee and attaches the
// mobile money number the transfer goes to.
func (ps *payroll) enrichPayments(ctx context.Context, payments []models.PaymentRequest) ([]models.PaymentInstruction, error) {
	employeeRepo := ps.srv.sqlRepo.GetEmployeeRepository()

	instructions := make([]models.PaymentInstruction, 0, len(payments))
	for _, p := range payments {
		en, err := employeeRepo.GetByID(ctx, p.EmployeeID)
		if err != nil {
			if errors.Is(err, common.ErrEmployeeNotFound) {
				return nil, fmt.Errorf("%w: %s", common.ErrEmployeeNotFound, p.EmployeeID)
			}
			return nil, fmt.Errorf("unable to resolve employee %s: %w", p.EmployeeID, err)
		}

		instructions = append(instructions, models.PaymentInstruction{
			EmployeeID:        en.ID,
			Amount:            p.Amount,
			Reason:            p.Reason,
			MobileMoneyNumber: en.MobileMoneyNumber,
		})
	}

	return instructions, nil
}

// processBatch walks the instructions sequentially. Per-item failures
// are folded into the outcome list, one bad payment never stops the
// rest of the batch.
func (ps *payroll) processBatch(ctx context.Context, instructions []models.PaymentInstruction) models.BatchResult {
	outcomes := make([]models.PaymentOutcome, 0, len(instructions))
	for _, in := range instructions {
		outcomes = append(outcomes, ps.processPayment(ctx, in))
	}

	return models.NewBatchResult(outcomes)
}

func (ps *payroll) processPayment(ctx context.Context, in models.PaymentInstruction) (out models.PaymentOutcome) {
	defer func() {
		if r := recover(); r != nil {
			xlog.Error(ctx, "panic while processing payment",
				xlog.String("employeeId", in.EmployeeID),
				xlog.Any("panic", r),
			)
			out = models.PaymentOutcome{
				EmployeeID: in.EmployeeID,
				Amount:     in.Amount,
				Status:     models.OutcomeStatusFailed,
				Message:    fmt.Sprintf("%v", r),
			}
		}
	}()

	out = models.PaymentOutcome{
		EmployeeID: in.EmployeeID,
		Amount:     in.Amount,
		Status:     models.OutcomeStatusFailed,
	}

	if in.MobileMoneyNumber == "" {
		out.Message = models.MsgMissingMobileNumber
		return
	}

	phone := validation.SanitizePhone(in.MobileMoneyNumber)
	if !validation.IsValidGhanaPhone(phone) {
		out.Message = models.MsgInvalidPhoneFormat
		return
	}

	if !validation.IsValidAmount(in.Amount) {
		out.Message = models.MsgInvalidAmount
		return
	}

	externalID := ps.srv.idgenerator.ExternalID(models.ExternalIDPrefix, in.EmployeeID)

	res := ps.srv.momoClient.Transfer(ctx, momo.TransferIn{
		Amount:      in.Amount,
		PayeeNumber: phone,
		ExternalID:  externalID,
		PayeeNote:   in.Reason,
	})

	mode := transferModeLive
	if res.Simulated {
		mode = transferModeSimulated
	}
	ps.srv.metrics.GetDisbursementPrometheus().RecordTransfer(res.Status.String(), mode)

	if res.Status != models.TransferStatusPending {
		out.Message = res.Message
		return
	}

	ps.persistRecord(ctx, models.PayrollRecord{
		TransactionID: res.ReferenceID,
		EmployeeID:    in.EmployeeID,
		Amount:        in.Amount,
		Reason:        in.Reason,
		Status:        models.TransferStatusPending,
		ExternalID:    externalID,
	})

	out.Status = models.OutcomeStatusSuccess
	out.ReferenceID = res.ReferenceID
	out.Message = models.MsgPaymentQueued
	return
}

// persistRecord writes an accepted transfer to the reconciliation
// store. The money already left with the provider at this point, a
// database outage must not lose the record, so exhausted retries land
// the row in the in-memory fallback log instead.
func (ps *payroll) persistRecord(ctx context.Context, record models.PayrollRecord) {
	payrollRepo := ps.srv.sqlRepo.GetPayrollRepository()

	_ = ps.srv.retryer.Retry(ctx, func() error {
		return payrollRepo.Store(ctx, &record)
	}, func() error {
		xlog.Warn(ctx, "database unavailable, appending payroll record to fallback log",
			xlog.String("transactionId", record.TransactionID),
			xlog.String("employeeId", record.EmployeeID),
		)
		ps.srv.metrics.GetDisbursementPrometheus().RecordPersistFallback()
		record.CreatedAt = time.Now()
		record.UpdatedAt = record.CreatedAt
		ps.srv.fallbackLog.Append(record)
		return nil
	})
}

// GetPayableEmployees returns every employee with the net amount due
// for the given period and whether a counted payment already exists
// for them in that period. A zero month or year falls back to the
// current one.
func (ps *payroll) GetPayableEmployees(ctx context.Context, month, year int) (out []models.PayableEmployee, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	employees, err := ps.srv.sqlRepo.GetEmployeeRepository().GetAll(ctx)
	if err != nil {
		err = fmt.Errorf("unable to list employees: %w", err)
		return
	}

	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	opts := models.PayrollFilterOptions{
		Month:    month,
		Year:     year,
		Statuses: []models.TransferStatus{models.TransferStatusPending, models.TransferStatusSuccess},
	}

	records, listErr := ps.srv.sqlRepo.GetPayrollRepository().GetList(ctx, opts)
	if listErr != nil {
		xlog.Warn(ctx, "database unavailable, reading paid state from fallback log", xlog.Err(listErr))
		records = ps.srv.fallbackLog.List(opts)
	}

	// records come back newest first, keep the latest per employee
	paid := make(map[string]models.PayrollRecord, len(records))
	for _, r := range records {
		if _, ok := paid[r.EmployeeID]; !ok {
			paid[r.EmployeeID] = r
		}
	}

	out = make([]models.PayableEmployee, 0, len(employees))
	for _, en := range employees {
		pe := models.PayableEmployee{
			ID:                en.ID,
			Name:              en.Name,
			Email:             en.Email,
			MobileMoneyNumber: en.MobileMoneyNumber,
			BasicSalary:       en.BasicSalary,
			NetPay:            en.NetPay(),
		}

		if r, ok := paid[en.ID]; ok {
			paidDate := r.CreatedAt
			pe.IsPaid = true
			pe.PaidAmount = r.Amount
			pe.PaidDate = &paidDate
			pe.PaidReason = r.Reason
		}

		out = append(out, pe)
	}

	return
}

// GetHistory lists payroll records, preferring durable storage and
// degrading to the in-memory fallback log when the database is down.
// The source tells the caller which one answered.
func (ps *payroll) GetHistory(ctx context.Context, opts models.PayrollFilterOptions) (records []models.PayrollRecord, source models.HistorySource, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	records, listErr := ps.srv.sqlRepo.GetPayrollRepository().GetList(ctx, opts)
	if listErr != nil {
		xlog.Warn(ctx, "database unavailable, serving history from fallback log", xlog.Err(listErr))
		return ps.srv.fallbackLog.List(opts), models.HistorySourceFallback, nil
	}

	return records, models.HistorySourceDatabase, nil
}

// UpdatePaymentStatus applies a provider callback. A reference we have
// no record of is ignored: callbacks can arrive more than once and in
// any order, replays must stay a no-op.
func (ps *payroll) UpdatePaymentStatus(ctx context.Context, referenceID string, status models.TransferStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	_, err = ps.srv.sqlRepo.GetPayrollRepository().UpdateStatusByReference(ctx, referenceID, status)
	if err == nil {
		xlog.Info(ctx, "payment status updated",
			xlog.String("referenceId", referenceID),
			xlog.String("status", status.String()),
		)
		return nil
	}

	if !errors.Is(err, common.ErrRecordNotFound) {
		return fmt.Errorf("unable to update payment status: %w", err)
	}

	if ps.srv.fallbackLog.UpdateStatusByReference(referenceID, status) {
		xlog.Info(ctx, "payment status updated in fallback log",
			xlog.String("referenceId", referenceID),
			xlog.String("status", status.String()),
		)
		return nil
	}

	xlog.Warn(ctx, "callback for unknown reference ignored", xlog.String("referenceId", referenceID))
	return nil
}
