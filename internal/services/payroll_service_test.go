package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/common/momo"
	"github.com/vpena/go-payroll-disbursement/internal/models"
)

func TestPayrollService_SubmitPayroll_InvalidApproval(t *testing.T) {
	testHelper := serviceTestHelper(t)

	tests := []struct {
		name     string
		password string
	}{
		{name: "empty password", password: ""},
		{name: "wrong password", password: "guess"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := testHelper.payrollService.SubmitPayroll(context.Background(), models.SubmitPayrollRequest{
				ApprovalPassword: tt.password,
				Payments: []models.PaymentRequest{
					{EmployeeID: "EMP001", Amount: decimal.NewFromInt(500)},
				},
			})
			assert.ErrorIs(t, err, common.ErrInvalidApproval)
		})
	}
}

func TestPayrollService_SubmitPayroll_EmptyPayments(t *testing.T) {
	testHelper := serviceTestHelper(t)

	_, err := testHelper.payrollService.SubmitPayroll(context.Background(), models.SubmitPayrollRequest{
		ApprovalPassword: testApprovalPassword,
	})
	assert.Error(t, err)
}

func TestPayrollService_SubmitPayroll_UnknownEmployee(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().
		GetByID(gomock.Any(), "EMP404").
		Return(nil, common.ErrEmployeeNotFound)

	_, err := testHelper.payrollService.SubmitPayroll(context.Background(), models.SubmitPayrollRequest{
		ApprovalPassword: testApprovalPassword,
		Payments: []models.PaymentRequest{
			{EmployeeID: "EMP404", Amount: decimal.NewFromInt(500)},
		},
	})
	assert.ErrorIs(t, err, common.ErrEmployeeNotFound)
	assert.ErrorContains(t, err, "EMP404")
}

func TestPayrollService_SubmitPayroll_MixedBatch(t *testing.T) {
	testHelper := serviceTestHelper(t)

	employees := map[string]*models.Employee{
		"EMP001": {ID: "EMP001", Name: "Ama", MobileMoneyNumber: "0240123456"},
		"EMP002": {ID: "EMP002", Name: "Kojo"},
		"EMP003": {ID: "EMP003", Name: "Esi", MobileMoneyNumber: "024012345"},
		"EMP004": {ID: "EMP004", Name: "Yaw", MobileMoneyNumber: "0550123456"},
	}
	for id, en := range employees {
		testHelper.mockEmployeeRepository.EXPECT().GetByID(gomock.Any(), id).Return(en, nil)
	}

	testHelper.mockIDGenerator.EXPECT().
		ExternalID(models.ExternalIDPrefix, "EMP001").
		Return("PAY_1735689600000_EMP001")
	testHelper.mockMomoClient.EXPECT().
		Transfer(gomock.Any(), momo.TransferIn{
			Amount:      decimal.NewFromInt(500),
			PayeeNumber: "0240123456",
			ExternalID:  "PAY_1735689600000_EMP001",
			PayeeNote:   "January salary",
		}).
		Return(momo.TransferOut{
			Status:      models.TransferStatusPending,
			ReferenceID: "ref-001",
		})
	testHelper.mockPayrollRepository.EXPECT().
		Store(gomock.Any(), gomock.AssignableToTypeOf(&models.PayrollRecord{})).
		DoAndReturn(func(_ context.Context, record *models.PayrollRecord) error {
			assert.Equal(t, "ref-001", record.TransactionID)
			assert.Equal(t, "EMP001", record.EmployeeID)
			assert.Equal(t, models.TransferStatusPending, record.Status)
			assert.Equal(t, "PAY_1735689600000_EMP001", record.ExternalID)
			return nil
		})

	out, err := testHelper.payrollService.SubmitPayroll(context.Background(), models.SubmitPayrollRequest{
		ApprovalPassword: testApprovalPassword,
		Payments: []models.PaymentRequest{
			{EmployeeID: "EMP001", Amount: decimal.NewFromInt(500), Reason: "January salary"},
			{EmployeeID: "EMP002", Amount: decimal.NewFromInt(500)},
			{EmployeeID: "EMP003", Amount: decimal.NewFromInt(500)},
			{EmployeeID: "EMP004", Amount: decimal.NewFromInt(-5)},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.BatchSummary{Total: 4, Successful: 1, Failed: 3}, out.Summary)

	assert.Equal(t, models.OutcomeStatusSuccess, out.Outcomes[0].Status)
	assert.Equal(t, "ref-001", out.Outcomes[0].ReferenceID)
	assert.Equal(t, models.MsgPaymentQueued, out.Outcomes[0].Message)

	assert.Equal(t, models.OutcomeStatusFailed, out.Outcomes[1].Status)
	assert.Equal(t, models.MsgMissingMobileNumber, out.Outcomes[1].Message)

	assert.Equal(t, models.OutcomeStatusFailed, out.Outcomes[2].Status)
	assert.Equal(t, models.MsgInvalidPhoneFormat, out.Outcomes[2].Message)

	assert.Equal(t, models.OutcomeStatusFailed, out.Outcomes[3].Status)
	assert.Equal(t, models.MsgInvalidAmount, out.Outcomes[3].Message)
}

func TestPayrollService_SubmitPayroll_PanicIsolation(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().
		GetByID(gomock.Any(), "EMP001").
		Return(&models.Employee{ID: "EMP001", MobileMoneyNumber: "0240123456"}, nil)
	testHelper.mockEmployeeRepository.EXPECT().
		GetByID(gomock.Any(), "EMP002").
		Return(&models.Employee{ID: "EMP002", MobileMoneyNumber: "0550123456"}, nil)

	testHelper.mockIDGenerator.EXPECT().
		ExternalID(models.ExternalIDPrefix, "EMP001").
		Return("PAY_1735689600000_EMP001")
	testHelper.mockIDGenerator.EXPECT().
		ExternalID(models.ExternalIDPrefix, "EMP002").
		Return("PAY_1735689600001_EMP002")

	testHelper.mockMomoClient.EXPECT().
		Transfer(gomock.Any(), momo.TransferIn{
			Amount:      decimal.NewFromInt(500),
			PayeeNumber: "0240123456",
			ExternalID:  "PAY_1735689600000_EMP001",
		}).
		DoAndReturn(func(context.Context, momo.TransferIn) momo.TransferOut {
			panic("provider client blew up")
		})
	testHelper.mockMomoClient.EXPECT().
		Transfer(gomock.Any(), momo.TransferIn{
			Amount:      decimal.NewFromInt(500),
			PayeeNumber: "0550123456",
			ExternalID:  "PAY_1735689600001_EMP002",
		}).
		Return(momo.TransferOut{Status: models.TransferStatusPending, ReferenceID: "ref-002"})
	testHelper.mockPayrollRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		Return(nil)

	out, err := testHelper.payrollService.SubmitPayroll(context.Background(), models.SubmitPayrollRequest{
		ApprovalPassword: testApprovalPassword,
		Payments: []models.PaymentRequest{
			{EmployeeID: "EMP001", Amount: decimal.NewFromInt(500)},
			{EmployeeID: "EMP002", Amount: decimal.NewFromInt(500)},
		},
	})

	// a panic on one item must fail only that item, the rest of the
	// batch still runs in order
	assert.NoError(t, err)
	assert.Equal(t, models.BatchSummary{Total: 2, Successful: 1, Failed: 1}, out.Summary)

	assert.Equal(t, "EMP001", out.Outcomes[0].EmployeeID)
	assert.Equal(t, models.OutcomeStatusFailed, out.Outcomes[0].Status)
	assert.Equal(t, "provider client blew up", out.Outcomes[0].Message)

	assert.Equal(t, "EMP002", out.Outcomes[1].EmployeeID)
	assert.Equal(t, models.OutcomeStatusSuccess, out.Outcomes[1].Status)
	assert.Equal(t, "ref-002", out.Outcomes[1].ReferenceID)
}

func TestPayrollService_SubmitPayroll_TransferFailed(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().
		GetByID(gomock.Any(), "EMP001").
		Return(&models.Employee{ID: "EMP001", MobileMoneyNumber: "0240123456"}, nil)
	testHelper.mockIDGenerator.EXPECT().
		ExternalID(models.ExternalIDPrefix, "EMP001").
		Return("PAY_1735689600000_EMP001")
	testHelper.mockMomoClient.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		Return(momo.TransferOut{
			Status:    models.TransferStatusFailed,
			Message:   "Simulated Network Error",
			Simulated: true,
		})

	out, err := testHelper.payrollService.SubmitPayroll(context.Background(), models.SubmitPayrollRequest{
		ApprovalPassword: testApprovalPassword,
		Payments: []models.PaymentRequest{
			{EmployeeID: "EMP001", Amount: decimal.NewFromInt(500)},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.BatchSummary{Total: 1, Successful: 0, Failed: 1}, out.Summary)
	assert.Equal(t, "Simulated Network Error", out.Outcomes[0].Message)
	assert.Empty(t, out.Outcomes[0].ReferenceID)
}

func TestPayrollService_SubmitPayroll_PersistFallback(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().
		GetByID(gomock.Any(), "EMP001").
		Return(&models.Employee{ID: "EMP001", MobileMoneyNumber: "0240123456"}, nil)
	testHelper.mockIDGenerator.EXPECT().
		ExternalID(models.ExternalIDPrefix, "EMP001").
		Return("PAY_1735689600000_EMP001")
	testHelper.mockMomoClient.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		Return(momo.TransferOut{Status: models.TransferStatusPending, ReferenceID: "ref-001"})
	testHelper.mockPayrollRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		Return(assert.AnError)
	testHelper.mockFallbackLog.EXPECT().
		Append(gomock.AssignableToTypeOf(models.PayrollRecord{})).
		Do(func(record models.PayrollRecord) {
			assert.Equal(t, "ref-001", record.TransactionID)
			assert.False(t, record.CreatedAt.IsZero())
		})

	out, err := testHelper.payrollService.SubmitPayroll(context.Background(), models.SubmitPayrollRequest{
		ApprovalPassword: testApprovalPassword,
		Payments: []models.PaymentRequest{
			{EmployeeID: "EMP001", Amount: decimal.NewFromInt(500)},
		},
	})

	// the transfer was accepted, a storage outage must not fail the item
	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeStatusSuccess, out.Outcomes[0].Status)
}

func TestPayrollService_GetPayableEmployees(t *testing.T) {
	testHelper := serviceTestHelper(t)

	paidAt := time.Now()
	employees := []models.Employee{
		{ID: "EMP001", Name: "Ama", BasicSalary: decimal.NewFromInt(1000)},
		{ID: "EMP002", Name: "Kojo", BasicSalary: decimal.NewFromInt(2000)},
	}

	testHelper.mockEmployeeRepository.EXPECT().GetAll(gomock.Any()).Return(employees, nil)
	testHelper.mockPayrollRepository.EXPECT().
		GetList(gomock.Any(), gomock.AssignableToTypeOf(models.PayrollFilterOptions{})).
		DoAndReturn(func(_ context.Context, opts models.PayrollFilterOptions) ([]models.PayrollRecord, error) {
			assert.Equal(t, 1, opts.Month)
			assert.Equal(t, 2026, opts.Year)
			assert.ElementsMatch(t, []models.TransferStatus{models.TransferStatusPending, models.TransferStatusSuccess}, opts.Statuses)
			return []models.PayrollRecord{
				{EmployeeID: "EMP001", Amount: decimal.NewFromInt(900), Reason: "January salary", Status: models.TransferStatusSuccess, CreatedAt: paidAt},
			}, nil
		})

	out, err := testHelper.payrollService.GetPayableEmployees(context.Background(), 1, 2026)
	assert.NoError(t, err)
	assert.Len(t, out, 2)

	assert.True(t, out[0].IsPaid)
	assert.True(t, out[0].NetPay.Equal(decimal.NewFromInt(900)))
	assert.True(t, out[0].PaidAmount.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "January salary", out[0].PaidReason)
	assert.NotNil(t, out[0].PaidDate)

	assert.False(t, out[1].IsPaid)
	assert.True(t, out[1].NetPay.Equal(decimal.NewFromInt(1800)))
	assert.Nil(t, out[1].PaidDate)
}

func TestPayrollService_GetPayableEmployees_DefaultPeriod(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().
		GetAll(gomock.Any()).
		Return([]models.Employee{{ID: "EMP001", BasicSalary: decimal.NewFromInt(1000)}}, nil)
	testHelper.mockPayrollRepository.EXPECT().
		GetList(gomock.Any(), gomock.AssignableToTypeOf(models.PayrollFilterOptions{})).
		DoAndReturn(func(_ context.Context, opts models.PayrollFilterOptions) ([]models.PayrollRecord, error) {
			now := time.Now()
			assert.Equal(t, int(now.Month()), opts.Month)
			assert.Equal(t, now.Year(), opts.Year)
			return nil, nil
		})

	// zero month and year mean the current period
	out, err := testHelper.payrollService.GetPayableEmployees(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.False(t, out[0].IsPaid)
}

func TestPayrollService_GetPayableEmployees_FallbackPaidState(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().
		GetAll(gomock.Any()).
		Return([]models.Employee{{ID: "EMP001", BasicSalary: decimal.NewFromInt(1000)}}, nil)
	testHelper.mockPayrollRepository.EXPECT().
		GetList(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	testHelper.mockFallbackLog.EXPECT().
		List(gomock.Any()).
		Return([]models.PayrollRecord{
			{EmployeeID: "EMP001", Amount: decimal.NewFromInt(900), Status: models.TransferStatusPending, CreatedAt: time.Now()},
		})

	out, err := testHelper.payrollService.GetPayableEmployees(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.True(t, out[0].IsPaid)
}

func TestPayrollService_GetPayableEmployees_EmployeeListError(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockEmployeeRepository.EXPECT().GetAll(gomock.Any()).Return(nil, assert.AnError)

	_, err := testHelper.payrollService.GetPayableEmployees(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestPayrollService_GetHistory(t *testing.T) {
	testHelper := serviceTestHelper(t)

	opts := models.PayrollFilterOptions{EmployeeID: "EMP001"}

	t.Run("from database", func(t *testing.T) {
		testHelper.mockPayrollRepository.EXPECT().
			GetList(gomock.Any(), opts).
			Return([]models.PayrollRecord{{TransactionID: "ref-001"}}, nil)

		records, source, err := testHelper.payrollService.GetHistory(context.Background(), opts)
		assert.NoError(t, err)
		assert.Equal(t, models.HistorySourceDatabase, source)
		assert.Len(t, records, 1)
	})

	t.Run("from fallback log", func(t *testing.T) {
		testHelper.mockPayrollRepository.EXPECT().
			GetList(gomock.Any(), opts).
			Return(nil, assert.AnError)
		testHelper.mockFallbackLog.EXPECT().
			List(opts).
			Return([]models.PayrollRecord{{TransactionID: "ref-002"}})

		records, source, err := testHelper.payrollService.GetHistory(context.Background(), opts)
		assert.NoError(t, err)
		assert.Equal(t, models.HistorySourceFallback, source)
		assert.Len(t, records, 1)
	})
}

func TestPayrollService_UpdatePaymentStatus(t *testing.T) {
	testHelper := serviceTestHelper(t)

	tests := []struct {
		name    string
		doMock  func()
		wantErr bool
	}{
		{
			name: "updated in database",
			doMock: func() {
				testHelper.mockPayrollRepository.EXPECT().
					UpdateStatusByReference(gomock.Any(), "ref-001", models.TransferStatusSuccess).
					Return(&models.PayrollRecord{TransactionID: "ref-001", Status: models.TransferStatusSuccess}, nil)
			},
		},
		{
			name: "updated in fallback log",
			doMock: func() {
				testHelper.mockPayrollRepository.EXPECT().
					UpdateStatusByReference(gomock.Any(), "ref-001", models.TransferStatusSuccess).
					Return(nil, common.ErrRecordNotFound)
				testHelper.mockFallbackLog.EXPECT().
					UpdateStatusByReference("ref-001", models.TransferStatusSuccess).
					Return(true)
			},
		},
		{
			name: "unknown reference is a no-op",
			doMock: func() {
				testHelper.mockPayrollRepository.EXPECT().
					UpdateStatusByReference(gomock.Any(), "ref-001", models.TransferStatusSuccess).
					Return(nil, common.ErrRecordNotFound)
				testHelper.mockFallbackLog.EXPECT().
					UpdateStatusByReference("ref-001", models.TransferStatusSuccess).
					Return(false)
			},
		},
		{
			name: "database error",
			doMock: func() {
				testHelper.mockPayrollRepository.EXPECT().
					UpdateStatusByReference(gomock.Any(), "ref-001", models.TransferStatusSuccess).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			err := testHelper.payrollService.UpdatePaymentStatus(context.Background(), "ref-001", models.TransferStatusSuccess)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
