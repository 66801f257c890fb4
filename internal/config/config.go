package config

import (
	"time"
)

type (
	Config struct {
		App       App      `json:"app"`
		Postgres  Postgres `json:"postgres"`
		Redis     Redis    `json:"redis"`
		SecretKey string   `json:"secret_key"`

		Momo               MomoConfig               `json:"momo"`
		Payroll            PayrollConfig            `json:"payroll"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	// MomoConfig holds credentials and endpoints for the mobile money
	// disbursement provider. When UserID or APIKey is empty the transfer
	// client runs in simulated mode and never leaves the process.
	MomoConfig struct {
		BaseURL           string        `json:"base_url"`
		UserID            string        `json:"user_id"`
		APIKey            string        `json:"api_key"`
		SubscriptionKey   string        `json:"subscription_key"`
		TargetEnvironment string        `json:"target_environment"`
		CallbackHost      string        `json:"callback_host"`
		RetryCount        int           `json:"retry_count"`
		RetryWaitTime     int           `json:"retry_wait_time"`
		Timeout           time.Duration `json:"timeout"`
	}

	PayrollConfig struct {
		ApprovalPassword string `json:"approval_password"`
		Currency         string `json:"currency"`
		PayerMessage     string `json:"payer_message"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}
)

// Simulated reports whether the provider credentials are incomplete,
// which switches the transfer client to its local simulation path.
func (m MomoConfig) Simulated() bool {
	return m.UserID == "" || m.APIKey == ""
}
