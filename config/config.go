package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Security    SecurityConfig
	Tracing     TracingConfig
	Designer    DesignerConfig
	Editor      map[string]interface{} // editor section served by the store on GET /{plugin}/config
	Environment string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port            int
	Host            string
	CORSAllowOrigin string
	// template writes allowed per client and minute, 0 disables the limit
	SaveRateLimit int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SecurityConfig struct {
	// HMAC secret used to sign and verify admin tokens
	JWTSecret string
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64

	TraceExporter  string // "jaeger", "zipkin", "stackdriver", "datadog", "xray", "none"
	JaegerEndpoint string
	ZipkinEndpoint string

	StackdriverProjectID string
	DatadogAgentAddress  string
	DatadogAPIKey        string
	XRayRegion           string

	MetricsExporter string // "prometheus", "stackdriver", "datadog", "none"
}

// DesignerConfig holds what the editor session needs from its host:
// where the template store lives, who is editing and in which locale.
type DesignerConfig struct {
	PluginID           string
	APIEndpoint        string
	APIToken           string
	HTTPTimeout        time.Duration
	Locale             string
	User               UserConfig
	EditorReadyTimeout time.Duration
}

type UserConfig struct {
	FirstName string
	LastName  string
	Username  string
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 1337)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("SAVE_RATE_LIMIT", 60)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "email_designer")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	v.SetDefault("PLUGIN_ID", "email-designer")
	v.SetDefault("API_ENDPOINT", "http://localhost:1337")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("LOCALE", "en")
	v.SetDefault("EDITOR_READY_TIMEOUT", "10s")
	v.SetDefault("EDITOR_CONFIG", "")

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "email-designer")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")
	v.SetDefault("TRACING_XRAY_REGION", "us-west-2")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	pluginID := strings.Trim(v.GetString("PLUGIN_ID"), "/")
	if pluginID == "" {
		return nil, fmt.Errorf("PLUGIN_ID must not be empty")
	}

	var editor map[string]interface{}
	if raw := strings.TrimSpace(v.GetString("EDITOR_CONFIG")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &editor); err != nil {
			return nil, fmt.Errorf("error decoding EDITOR_CONFIG: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
			SaveRateLimit:   v.GetInt("SAVE_RATE_LIMIT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Security: SecurityConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		Tracing: TracingConfig{
			Enabled:              v.GetBool("TRACING_ENABLED"),
			ServiceName:          v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability:  v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:        v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:       v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:       v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			DatadogAPIKey:        v.GetString("TRACING_DATADOG_API_KEY"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
			MetricsExporter:      v.GetString("TRACING_METRICS_EXPORTER"),
		},
		Designer: DesignerConfig{
			PluginID:    pluginID,
			APIEndpoint: strings.TrimRight(v.GetString("API_ENDPOINT"), "/"),
			APIToken:    v.GetString("API_TOKEN"),
			HTTPTimeout: v.GetDuration("HTTP_TIMEOUT"),
			Locale:      v.GetString("LOCALE"),
			User: UserConfig{
				FirstName: v.GetString("USER_FIRSTNAME"),
				LastName:  v.GetString("USER_LASTNAME"),
				Username:  v.GetString("USER_USERNAME"),
			},
			EditorReadyTimeout: v.GetDuration("EDITOR_READY_TIMEOUT"),
		},
		Editor:      editor,
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	return config, nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DSN returns the lib/pq connection string for the template store database
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
