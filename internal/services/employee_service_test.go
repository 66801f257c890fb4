package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/repositories"
)

func TestEmployeeService_GetEmployees(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().
		GetAll(gomock.Any()).
		Return([]models.Employee{{ID: "EMP001", Name: "Ama"}}, nil)

	out, err := testHelper.employeeService.GetEmployees(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestEmployeeService_GetEmployee(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("empty id", func(t *testing.T) {
		_, err := testHelper.employeeService.GetEmployee(context.Background(), "")
		assert.ErrorIs(t, err, common.ErrIDEmpty)
	})

	t.Run("found", func(t *testing.T) {
		testHelper.mockEmployeeRepository.EXPECT().
			GetByID(gomock.Any(), "EMP001").
			Return(&models.Employee{ID: "EMP001", Name: "Ama"}, nil)

		out, err := testHelper.employeeService.GetEmployee(context.Background(), "EMP001")
		assert.NoError(t, err)
		assert.Equal(t, "Ama", out.Name)
	})

	t.Run("not found", func(t *testing.T) {
		testHelper.mockEmployeeRepository.EXPECT().
			GetByID(gomock.Any(), "EMP404").
			Return(nil, common.ErrEmployeeNotFound)

		_, err := testHelper.employeeService.GetEmployee(context.Background(), "EMP404")
		assert.ErrorIs(t, err, common.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	testHelper := serviceTestHelper(t)

	passAtomic := func() {
		testHelper.mockSQLRepository.EXPECT().
			Atomic(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, steps func(ctx context.Context, r repositories.SQLRepository) error) error {
				return steps(ctx, testHelper.mockSQLRepository)
			})
	}

	type args struct {
		req models.CreateEmployeeRequest
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		wantErr error
	}{
		{
			name: "test success",
			args: args{
				req: models.CreateEmployeeRequest{
					Name:              "Ama Mensah",
					Email:             "ama@example.com",
					MobileMoneyNumber: "024 012 3456",
					BasicSalary:       decimal.NewFromInt(1000),
				},
			},
			doMock: func(args args) {
				passAtomic()
				testHelper.mockEmployeeRepository.EXPECT().
					CountByMobileNumber(gomock.Any(), "0240123456").
					Return(0, nil)
				testHelper.mockEmployeeRepository.EXPECT().
					Store(gomock.Any(), gomock.AssignableToTypeOf(&models.Employee{})).
					DoAndReturn(func(_ context.Context, en *models.Employee) error {
						assert.NotEmpty(t, en.ID)
						assert.Equal(t, "0240123456", en.MobileMoneyNumber)
						return nil
					})
			},
		},
		{
			name: "test success without mobile number",
			args: args{
				req: models.CreateEmployeeRequest{
					Name:        "Kojo Asante",
					BasicSalary: decimal.NewFromInt(2000),
				},
			},
			doMock: func(args args) {
				passAtomic()
				testHelper.mockEmployeeRepository.EXPECT().
					Store(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "test invalid mobile number",
			args: args{
				req: models.CreateEmployeeRequest{
					Name:              "Esi Boateng",
					MobileMoneyNumber: "024012345",
				},
			},
			doMock:  func(args args) {},
			wantErr: common.ErrValidation,
		},
		{
			name: "test duplicate mobile number",
			args: args{
				req: models.CreateEmployeeRequest{
					Name:              "Yaw Owusu",
					MobileMoneyNumber: "0240123456",
				},
			},
			doMock: func(args args) {
				passAtomic()
				testHelper.mockEmployeeRepository.EXPECT().
					CountByMobileNumber(gomock.Any(), "0240123456").
					Return(1, nil)
			},
			wantErr: common.ErrMobileNumberTaken,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock(tt.args)

			out, err := testHelper.employeeService.CreateEmployee(context.Background(), tt.args.req)
			if tt.wantErr != nil {
				if tt.wantErr == common.ErrValidation {
					assert.Error(t, err)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, out)
		})
	}
}
