package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects mysql in production; sqlite is accepted for local
// runs, in which case Database is the file path.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) IsSQLite() bool {
	return strings.EqualFold(d.Driver, "sqlite")
}

func (d *DatabaseConfig) GetDSN() string {
	if d.IsSQLite() {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	CookieName       string `mapstructure:"cookie_name"`
	CookieSecure     bool   `mapstructure:"cookie_secure"`
}

func (j *JWTConfig) AccessTTL() time.Duration {
	return time.Duration(j.AccessExpMinutes) * time.Minute
}

type AuthConfig struct {
	BcryptCost     int             `mapstructure:"bcrypt_cost"`
	JWT            JWTConfig       `mapstructure:"jwt"`
	LoginRateLimit RateLimitConfig `mapstructure:"login_rate_limit"`
}

// RateLimitConfig allows Requests attempts per client within Window. Zero
// Requests disables the limit.
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// EmailConfig is the outbound SMTP channel used for requester notifications.
type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// MailConfig is the cloud mailbox polled for inbound tickets.
type MailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	TenantID     string `mapstructure:"tenant_id"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Mailbox      string `mapstructure:"mailbox"`
	Folder       string `mapstructure:"folder"`
	GraphBaseURL string `mapstructure:"graph_base_url"`
	AuthorityURL string `mapstructure:"authority_url"`
	PollSchedule string `mapstructure:"poll_schedule"`
	TokenCache   string `mapstructure:"token_cache"`
}

func (m *MailConfig) TokenURL() string {
	return fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimRight(m.AuthorityURL, "/"), m.TenantID)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type StorageConfig struct {
	UploadDir     string `mapstructure:"upload_dir"`
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
}

// SLAConfig holds the elapsed-hour boundaries of the SLA tiers.
type SLAConfig struct {
	OnTargetHours float64 `mapstructure:"on_target_hours"`
	AtRiskHours   float64 `mapstructure:"at_risk_hours"`
}

// StockConfig holds the quantity boundaries of the stock status tiers.
type StockConfig struct {
	ReservedThreshold float64 `mapstructure:"reserved_threshold"`
	LowThreshold      float64 `mapstructure:"low_threshold"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type AuthorizationConfig struct {
	UseCasbin bool `mapstructure:"use_casbin"`
}
