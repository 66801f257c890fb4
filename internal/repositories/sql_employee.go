package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/monitoring"
)

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	CountByMobileNumber(ctx context.Context, mobileNumber string) (int, error)
	Store(ctx context.Context, en *models.Employee) error
}

type employeeRepository sqlRepo

var _ EmployeeRepository = (*employeeRepository)(nil)

func (er *employeeRepository) GetAll(ctx context.Context) (result []models.Employee, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := er.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryEmployeeGetAll)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		var en = models.Employee{}
		err = rows.Scan(
			&en.ID,
			&en.Name,
			&en.Email,
			&en.MobileMoneyNumber,
			&en.BasicSalary,
			&en.Role,
			&en.CreatedAt,
			&en.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, en)
	}
	if rows.Err() != nil {
		return result, rows.Err()
	}

	return result, nil
}

func (er *employeeRepository) GetByID(ctx context.Context, id string) (en *models.Employee, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := er.r.extractTxRead(ctx)

	en = &models.Employee{}
	err = db.QueryRowContext(ctx, queryEmployeeGetByID, id).Scan(
		&en.ID,
		&en.Name,
		&en.Email,
		&en.MobileMoneyNumber,
		&en.BasicSalary,
		&en.Role,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrEmployeeNotFound
		}
		return nil, err
	}

	return en, nil
}

func (er *employeeRepository) CountByMobileNumber(ctx context.Context, mobileNumber string) (count int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := er.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryEmployeeCountByMobileNumber, mobileNumber).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (er *employeeRepository) Store(ctx context.Context, en *models.Employee) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := er.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, queryEmployeeStore,
			en.ID,
			en.Name,
			en.Email,
			en.MobileMoneyNumber,
			en.BasicSalary,
			en.Role).
		Scan(&en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		return
	}

	return
}
