package services_test

import (
	"context"
	"os"
	"testing"

	"go.uber.org/mock/gomock"

	mockIDGenerator "github.com/vpena/go-payroll-disbursement/internal/common/idgenerator/mock"
	mockMetrics "github.com/vpena/go-payroll-disbursement/internal/common/metrics/mock"
	mockMomo "github.com/vpena/go-payroll-disbursement/internal/common/momo/mock"
	mockRetry "github.com/vpena/go-payroll-disbursement/internal/common/retry/mock"
	"github.com/vpena/go-payroll-disbursement/internal/config"
	"github.com/vpena/go-payroll-disbursement/internal/repositories/mock"
	"github.com/vpena/go-payroll-disbursement/internal/services"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

const testApprovalPassword = "super-secret"

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository      *mock.MockSQLRepository
	mockPayrollRepository  *mock.MockPayrollRepository
	mockEmployeeRepository *mock.MockEmployeeRepository
	mockCacheRepository    *mock.MockCacheRepository
	mockFallbackLog        *mock.MockPayrollFallbackLog
	mockMomoClient         *mockMomo.MockClient
	mockIDGenerator        *mockIDGenerator.MockGenerator
	mockRetryer            *mockRetry.MockRetryer

	payrollService  services.PayrollService
	employeeService services.EmployeeService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockPayrollRepository := mock.NewMockPayrollRepository(mockCtrl)
	mockEmployeeRepository := mock.NewMockEmployeeRepository(mockCtrl)
	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)
	mockFallbackLog := mock.NewMockPayrollFallbackLog(mockCtrl)
	mockMomoClient := mockMomo.NewMockClient(mockCtrl)
	mockIDGen := mockIDGenerator.NewMockGenerator(mockCtrl)
	mockRetryer := mockRetry.NewMockRetryer(mockCtrl)

	metrics := mockMetrics.NewMockMetrics(mockCtrl)
	metrics.EXPECT().GetDisbursementPrometheus().Return(nil).AnyTimes()

	mockSQLRepository.EXPECT().GetPayrollRepository().Return(mockPayrollRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetEmployeeRepository().Return(mockEmployeeRepository).AnyTimes()

	// run the operation once, fall back when it fails
	mockRetryer.EXPECT().
		Retry(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, operation, fallback func() error) error {
			if err := operation(); err != nil {
				return fallback()
			}
			return nil
		}).
		AnyTimes()

	conf := config.Config{}
	conf.Payroll.ApprovalPassword = testApprovalPassword
	conf.Payroll.Currency = "GHS"
	conf.Payroll.PayerMessage = "Salary Payment"

	srv := services.New(
		conf,
		mockSQLRepository,
		mockCacheRepository,
		mockFallbackLog,
		mockMomoClient,
		mockIDGen,
		mockRetryer,
		metrics,
	)

	return testServiceHelper{
		mockCtrl:               mockCtrl,
		config:                 conf,
		mockSQLRepository:      mockSQLRepository,
		mockPayrollRepository:  mockPayrollRepository,
		mockEmployeeRepository: mockEmployeeRepository,
		mockCacheRepository:    mockCacheRepository,
		mockFallbackLog:        mockFallbackLog,
		mockMomoClient:         mockMomoClient,
		mockIDGenerator:        mockIDGen,
		mockRetryer:            mockRetryer,

		payrollService:  srv.Payroll,
		employeeService: srv.Employee,
	}
}
