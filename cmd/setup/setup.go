package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	genericCache "github.com/vpena/go-payroll-disbursement/internal/common/cache"
	"github.com/vpena/go-payroll-disbursement/internal/common/graceful"
	"github.com/vpena/go-payroll-disbursement/internal/common/httpclient"
	"github.com/vpena/go-payroll-disbursement/internal/common/idgenerator"
	cMetrics "github.com/vpena/go-payroll-disbursement/internal/common/metrics"
	"github.com/vpena/go-payroll-disbursement/internal/common/momo"
	"github.com/vpena/go-payroll-disbursement/internal/common/retry"
	"github.com/vpena/go-payroll-disbursement/internal/config"
	"github.com/vpena/go-payroll-disbursement/internal/repositories"
	"github.com/vpena/go-payroll-disbursement/internal/services"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"

	_ "github.com/lib/pq"
)

type Setup struct {
	Config      config.Config
	WriteDB     *sql.DB
	ReadDB      *sql.DB
	Cache       *redis.Client
	RepoCache   repositories.CacheRepository
	FallbackLog repositories.PayrollFallbackLog
	Service     *services.Services
	Metrics     cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	var cfg config.Config
	err = loadConfig(&cfg)
	if err != nil {
		return
	}

	logLevel := "debug"
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = "info"
	}

	if cfg.App.LogLevel != "" {
		logLevel = cfg.App.LogLevel
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(1),
		xlog.WithLogLevel(logLevel))

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	// register DB stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	// register redis prometheus metrics
	err = mtc.RegisterRedis(cache, cfg.App.Name, command)
	if err != nil {
		err = fmt.Errorf("failed register redis prometheus: %w", err)
		return
	}

	tokenCache := genericCache.NewInMemoryClient[string]()
	stopper = append(stopper, func(ctx context.Context) error {
		tokenCache.Close()
		return nil
	})

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)
	fallbackLog := repositories.NewPayrollFallbackLog()

	idGenerator := idgenerator.New()

	// momo transfer client
	momoRequest := httpclient.NewRequestWrapper(momo.NewRestyClient(cfg.Momo), mtc, momo.ServiceName, "[MOMO-CLIENT]")
	tokenProvider := momo.NewTokenProvider(cfg.Momo, momoRequest, tokenCache)
	momoClient := momo.NewClient(cfg.Momo, cfg.Payroll, tokenProvider, momoRequest, idGenerator)
	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		fallbackLog,
		momoClient,
		idGenerator,
		retryer,
		mtc,
	)

	return &Setup{
		Config:      cfg,
		WriteDB:     writeDB,
		ReadDB:      readDB,
		Cache:       cache,
		RepoCache:   cacheRepo,
		FallbackLog: fallbackLog,
		Service:     srv,
		Metrics:     mtc,
	}, stopper, nil
}

func loadConfig(cfg *config.Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("GO_PAYROLL_DISBURSEMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// config structs carry json tags only
	return v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
