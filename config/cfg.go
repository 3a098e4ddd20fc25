package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/sales-panel/internal/api/http"
	"github.com/jekabolt/sales-panel/internal/apisrv/admin"
	"github.com/jekabolt/sales-panel/internal/marketplace"
	"github.com/jekabolt/sales-panel/internal/ratelimit"
	"github.com/jekabolt/sales-panel/internal/reenrich"
	"github.com/jekabolt/sales-panel/internal/report"
	"github.com/jekabolt/sales-panel/internal/store"
	"github.com/jekabolt/sales-panel/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB          store.Config       `mapstructure:"mysql"`
	Logger      log.Config         `mapstructure:"logger"`
	HTTP        httpapi.Config     `mapstructure:"http"`
	Marketplace marketplace.Config `mapstructure:"marketplace"`
	Reports     admin.Config       `mapstructure:"reports"`
	Reenrich    reenrich.Config    `mapstructure:"reenrich"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	// e.g., mysql.dsn -> MYSQL__DSN, http.jwt_secret -> HTTP__JWT_SECRET
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults()
	bindEnvVars()

	// Config file is optional, the service can run with env vars only
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/sales-panel")
		viper.AddConfigPath("/etc/sales-panel")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the DSN from MYSQL_* parts when it is not set directly
	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")

		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				tls := ""
				if config.DB.TLSCAPath != "" {
					tls = "&tls=custom"
				}
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true%s",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase, tls)
			}
		}
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("mysql.automigrate", true)
	viper.SetDefault("mysql.max_open_connections", 10)
	viper.SetDefault("mysql.max_idle_connections", 5)

	viper.SetDefault("logger.level", 0)

	viper.SetDefault("http.port", "8081")
	viper.SetDefault("http.webhook_timeout", "10s")
	rl := ratelimit.DefaultConfig()
	viper.SetDefault("http.rate_limit.window", rl.Window.String())
	viper.SetDefault("http.rate_limit.read_max", rl.ReadMax)
	viper.SetDefault("http.rate_limit.write_max", rl.WriteMax)
	viper.SetDefault("http.rate_limit.webhook_max", rl.WebhookMax)

	viper.SetDefault("marketplace.base_url", marketplace.DefaultBaseURL)
	viper.SetDefault("marketplace.token_url", marketplace.DefaultTokenURL)
	viper.SetDefault("marketplace.http_timeout", "10s")

	viper.SetDefault("reports.time_zone", report.DefaultTimeZone)
	viper.SetDefault("reports.label_layout", report.DefaultLabelLayout)
	viper.SetDefault("reports.top_products", report.DefaultTopProducts)
	viper.SetDefault("reports.default_months", 0)
	viper.SetDefault("reports.group_by", "title")

	re := reenrich.DefaultConfig()
	viper.SetDefault("reenrich.enabled", re.Enabled)
	viper.SetDefault("reenrich.worker_interval", re.WorkerInterval.String())
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	viper.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.jwt_secret", "HTTP_JWT_SECRET", "AUTH_JWT_SECRET")
	viper.BindEnv("http.webhook_timeout", "HTTP_WEBHOOK_TIMEOUT")
	viper.BindEnv("http.rate_limit.window", "HTTP_RATE_LIMIT_WINDOW")
	viper.BindEnv("http.rate_limit.read_max", "HTTP_RATE_LIMIT_READ_MAX")
	viper.BindEnv("http.rate_limit.write_max", "HTTP_RATE_LIMIT_WRITE_MAX")
	viper.BindEnv("http.rate_limit.webhook_max", "HTTP_RATE_LIMIT_WEBHOOK_MAX")

	// Marketplace
	viper.BindEnv("marketplace.base_url", "MARKETPLACE_BASE_URL")
	viper.BindEnv("marketplace.token_url", "MARKETPLACE_TOKEN_URL")
	viper.BindEnv("marketplace.client_id", "MARKETPLACE_CLIENT_ID")
	viper.BindEnv("marketplace.client_secret", "MARKETPLACE_CLIENT_SECRET")
	viper.BindEnv("marketplace.http_timeout", "MARKETPLACE_HTTP_TIMEOUT")

	// Reports
	viper.BindEnv("reports.time_zone", "REPORTS_TIME_ZONE")
	viper.BindEnv("reports.label_layout", "REPORTS_LABEL_LAYOUT")
	viper.BindEnv("reports.top_products", "REPORTS_TOP_PRODUCTS")
	viper.BindEnv("reports.default_months", "REPORTS_DEFAULT_MONTHS")
	viper.BindEnv("reports.group_by", "REPORTS_GROUP_BY")

	// Re-enrichment worker
	viper.BindEnv("reenrich.enabled", "REENRICH_ENABLED")
	viper.BindEnv("reenrich.worker_interval", "REENRICH_WORKER_INTERVAL")
}
