package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/vpena/go-payroll-disbursement/internal/common/graceful"
	commonhttp "github.com/vpena/go-payroll-disbursement/internal/common/http"
	"github.com/vpena/go-payroll-disbursement/internal/common/http/middleware"
	"github.com/vpena/go-payroll-disbursement/internal/config"
	"github.com/vpena/go-payroll-disbursement/internal/deliveries/http/callback"
	"github.com/vpena/go-payroll-disbursement/internal/deliveries/http/health"
	"github.com/vpena/go-payroll-disbursement/internal/repositories"
	"github.com/vpena/go-payroll-disbursement/internal/services"

	v1employee "github.com/vpena/go-payroll-disbursement/internal/deliveries/http/v1/employee"
	v1payroll "github.com/vpena/go-payroll-disbursement/internal/deliveries/http/v1/payroll"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	cacheRepo repositories.CacheRepository,
	payrollService services.PayrollService,
	employeeService services.EmployeeService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// provider callbacks carry no secret key, they stay outside internal auth
	callback.New(apiGroup, payrollService)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth())
	// v1Group register api
	v1payroll.New(v1Group, payrollService, m)
	v1employee.New(v1Group, employeeService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
