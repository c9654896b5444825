// Package config loads the viper configuration of the helpdesk.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	sharedConfig "github.com/synerjet/bendesk/internal/shared/config"
)

type Config struct {
	Server        sharedConfig.ServerConfig        `mapstructure:"server"`
	Database      sharedConfig.DatabaseConfig      `mapstructure:"database"`
	Logger        sharedConfig.LoggerConfig        `mapstructure:"logger"`
	Auth          sharedConfig.AuthConfig          `mapstructure:"auth"`
	Authorization sharedConfig.AuthorizationConfig `mapstructure:"authorization"`
	Email         sharedConfig.EmailConfig         `mapstructure:"email"`
	Mail          sharedConfig.MailConfig          `mapstructure:"mail"`
	Redis         sharedConfig.RedisConfig         `mapstructure:"redis"`
	Storage       sharedConfig.StorageConfig       `mapstructure:"storage"`
	SLA           sharedConfig.SLAConfig           `mapstructure:"sla"`
	Stock         sharedConfig.StockConfig         `mapstructure:"stock"`
	Metrics       sharedConfig.MetricsConfig       `mapstructure:"metrics"`
	Timezone      string                           `mapstructure:"timezone"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or configFile when given), a .env file
// when present, and BENDESK_* environment overrides. A non-default env
// overrides server.mode.
func Load(env, configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("BENDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !asNotFound(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

func asNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	nf, ok := err.(viper.ConfigFileNotFoundError)
	if ok {
		*target = nf
	}
	return ok
}

func (c *Config) TicketThresholds() ticket.Thresholds {
	return ticket.Thresholds{OnTargetHours: c.SLA.OnTargetHours, AtRiskHours: c.SLA.AtRiskHours}
}

func (c *Config) StockThresholds() stock.Thresholds {
	return stock.Thresholds{Reserved: c.Stock.ReservedThreshold, Low: c.Stock.LowThreshold}
}

// Get returns the last loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "bendesk_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 480)
	v.SetDefault("auth.jwt.cookie_name", "access_token")
	v.SetDefault("auth.jwt.cookie_secure", false)
	v.SetDefault("auth.login_rate_limit.requests", 10)
	v.SetDefault("auth.login_rate_limit.window", "1m")

	v.SetDefault("authorization.use_casbin", true)

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "smtp.office365.com")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.from_name", "Equipe de TI")

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.folder", "Inbox")
	v.SetDefault("mail.graph_base_url", "https://graph.microsoft.com/v1.0")
	v.SetDefault("mail.authority_url", "https://login.microsoftonline.com")
	v.SetDefault("mail.poll_schedule", "@every 2m")
	v.SetDefault("mail.token_cache", "memory")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.max_upload_size", 16<<20)

	v.SetDefault("sla.on_target_hours", 4)
	v.SetDefault("sla.at_risk_hours", 8)

	v.SetDefault("stock.reserved_threshold", 0)
	v.SetDefault("stock.low_threshold", 5)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("timezone", "America/Sao_Paulo")
}
