package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/common/validation"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/monitoring"
	"github.com/vpena/go-payroll-disbursement/internal/repositories"
)

type EmployeeService interface {
	GetEmployees(ctx context.Context) (out []models.Employee, err error)
	GetEmployee(ctx context.Context, id string) (out *models.Employee, err error)
	CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (out *models.Employee, err error)
}

type employee service

var _ EmployeeService = (*employee)(nil)

func (es *employee) GetEmployees(ctx context.Context) (out []models.Employee, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	out, err = es.srv.sqlRepo.GetEmployeeRepository().GetAll(ctx)
	return
}

func (es *employee) GetEmployee(ctx context.Context, id string) (out *models.Employee, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if id == "" {
		err = common.ErrIDEmpty
		return
	}

	out, err = es.srv.sqlRepo.GetEmployeeRepository().GetByID(ctx, id)
	return
}

// CreateEmployee registers a new employee. The mobile money number is
// sanitized before storage and must be unique, the uniqueness check and
// the insert run in one transaction.
func (es *employee) CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (out *models.Employee, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	req.MobileMoneyNumber = validation.SanitizePhone(req.MobileMoneyNumber)

	if err = validation.ValidateStruct(req); err != nil {
		return
	}

	en := &models.Employee{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		MobileMoneyNumber: req.MobileMoneyNumber,
		BasicSalary:       req.BasicSalary,
		Role:              req.Role,
	}

	err = es.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		employeeRepo := r.GetEmployeeRepository()

		if en.MobileMoneyNumber != "" {
			count, err := employeeRepo.CountByMobileNumber(ctx, en.MobileMoneyNumber)
			if err != nil {
				return fmt.Errorf("unable to check mobile number uniqueness: %w", err)
			}
			if count > 0 {
				return common.ErrMobileNumberTaken
			}
		}

		return employeeRepo.Store(ctx, en)
	})
	if err != nil {
		return
	}

	out = en
	return
}
