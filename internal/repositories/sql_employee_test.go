package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/config"
	"github.com/vpena/go-payroll-disbursement/internal/models"
)

func TestEmployeeRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(EmployeeTestSuite))
}

type EmployeeTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	mock    sqlmock.Sqlmock
	repo    EmployeeRepository
}

func (suite *EmployeeTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.writeDB, cfg).GetEmployeeRepository()
}

func (suite *EmployeeTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

var employeeColumns = []string{"id", "name", "email", "mobileMoneyNumber", "basicSalary", "role", "createdAt", "updatedAt"}

func (suite *EmployeeTestSuite) TestRepository_GetAll() {
	ct := time.Now()

	suite.t.Run("success", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryEmployeeGetAll)).
			WillReturnRows(sqlmock.
				NewRows(employeeColumns).
				AddRow("EMP001", "Ama Serwaa", "ama@example.com", "0241234567", "1500", "Engineer", ct, ct).
				AddRow("EMP002", "Kofi Mensah", "kofi@example.com", "0501234567", "2000", "Accountant", ct, ct))

		result, err := suite.repo.GetAll(context.TODO())
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "EMP001", result[0].ID)
		assert.True(t, result[1].BasicSalary.Equal(decimal.NewFromInt(2000)))
	})

	suite.t.Run("query error", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryEmployeeGetAll)).
			WillReturnError(assert.AnError)

		_, err := suite.repo.GetAll(context.TODO())
		assert.Error(t, err)
	})
}

func (suite *EmployeeTestSuite) TestRepository_GetByID() {
	ct := time.Now()

	suite.t.Run("success", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryEmployeeGetByID)).
			WillReturnRows(sqlmock.
				NewRows(employeeColumns).
				AddRow("EMP001", "Ama Serwaa", "ama@example.com", "0241234567", "1500", "Engineer", ct, ct))

		en, err := suite.repo.GetByID(context.TODO(), "EMP001")
		require.NoError(t, err)
		assert.Equal(t, "Ama Serwaa", en.Name)
	})

	suite.t.Run("not found", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryEmployeeGetByID)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.GetByID(context.TODO(), "EMP404")
		assert.ErrorIs(t, err, common.ErrEmployeeNotFound)
	})
}

func (suite *EmployeeTestSuite) TestRepository_Store() {
	ct := time.Now()

	suite.t.Run("success", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryEmployeeStore)).
			WillReturnRows(sqlmock.NewRows([]string{"createdAt", "updatedAt"}).AddRow(ct, ct))

		en := &models.Employee{
			ID:                "EMP003",
			Name:              "Abena Osei",
			MobileMoneyNumber: "0231234567",
			BasicSalary:       decimal.NewFromInt(1800),
		}
		require.NoError(t, suite.repo.Store(context.TODO(), en))
		assert.False(t, en.CreatedAt.IsZero())
	})
}

func (suite *EmployeeTestSuite) TestRepository_CountByMobileNumber() {
	suite.t.Run("found", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryEmployeeCountByMobileNumber)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := suite.repo.CountByMobileNumber(context.TODO(), "0241234567")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
