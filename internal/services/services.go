package services

import (
	"github.com/vpena/go-payroll-disbursement/internal/common/idgenerator"
	"github.com/vpena/go-payroll-disbursement/internal/common/metrics"
	"github.com/vpena/go-payroll-disbursement/internal/common/momo"
	"github.com/vpena/go-payroll-disbursement/internal/common/retry"
	"github.com/vpena/go-payroll-disbursement/internal/config"
	"github.com/vpena/go-payroll-disbursement/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	cacheRepo   repositories.CacheRepository
	fallbackLog repositories.PayrollFallbackLog

	momoClient  momo.Client
	idgenerator idgenerator.Generator
	retryer     retry.Retryer
	metrics     metrics.Metrics

	common service

	Payroll  *payroll
	Employee *employee
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	fallbackLog repositories.PayrollFallbackLog,
	momoClient momo.Client,
	idgenerator idgenerator.Generator,
	retryer retry.Retryer,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		cacheRepo:   cacheRepo,
		fallbackLog: fallbackLog,
		momoClient:  momoClient,
		idgenerator: idgenerator,
		retryer:     retryer,
		metrics:     metrics,
	}
	srv.common.srv = srv
	srv.Payroll = (*payroll)(&srv.common)
	srv.Employee = (*employee)(&srv.common)

	return srv
}
