package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/monitoring"
)

type PayrollRepository interface {
	Store(ctx context.Context, en *models.PayrollRecord) (err error)
	UpdateStatusByReference(ctx context.Context, transactionID string, status models.TransferStatus) (en *models.PayrollRecord, err error)
	GetByTransactionID(ctx context.Context, transactionID string) (en *models.PayrollRecord, err error)
	GetList(ctx context.Context, opts models.PayrollFilterOptions) ([]models.PayrollRecord, error)
}

type payrollRepository sqlRepo

var _ PayrollRepository = (*payrollRepository)(nil)

func (pr *payrollRepository) Store(ctx context.Context, en *models.PayrollRecord) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, queryPayrollStore,
			en.TransactionID,
			en.EmployeeID,
			en.Amount,
			en.Reason,
			en.Status,
			en.ExternalID).
		Scan(&en.ID,
			&en.CreatedAt,
			&en.UpdatedAt)
	if err != nil {
		return
	}

	return
}

func (pr *payrollRepository) UpdateStatusByReference(ctx context.Context, transactionID string, status models.TransferStatus) (en *models.PayrollRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxWrite(ctx)

	en = &models.PayrollRecord{}
	err = db.QueryRowContext(ctx, queryPayrollUpdateStatus, transactionID, status).Scan(
		&en.ID,
		&en.TransactionID,
		&en.EmployeeID,
		&en.Amount,
		&en.Reason,
		&en.Status,
		&en.ExternalID,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrRecordNotFound
		}
		return nil, err
	}

	return en, nil
}

func (pr *payrollRepository) GetByTransactionID(ctx context.Context, transactionID string) (en *models.PayrollRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxRead(ctx)

	en = &models.PayrollRecord{}
	err = db.QueryRowContext(ctx, queryPayrollGetByTransactionID, transactionID).Scan(
		&en.ID,
		&en.TransactionID,
		&en.EmployeeID,
		&en.Amount,
		&en.Reason,
		&en.Status,
		&en.ExternalID,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrRecordNotFound
		}
		return nil, err
	}

	return en, nil
}

func (pr *payrollRepository) GetList(ctx context.Context, opts models.PayrollFilterOptions) ([]models.PayrollRecord, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := pr.r.extractTxRead(ctx)

	query, args, err := buildListPayrollQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []models.PayrollRecord
	for rows.Next() {
		var rec = models.PayrollRecord{}
		var err = rows.Scan(
			&rec.ID,
			&rec.TransactionID,
			&rec.EmployeeID,
			&rec.Amount,
			&rec.Reason,
			&rec.Status,
			&rec.ExternalID,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if rows.Err() != nil {
		return result, rows.Err()
	}

	return result, nil
}
