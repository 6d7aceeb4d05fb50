package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"sevdesk-export/internal/logger"
	"sevdesk-export/internal/sevdesk"
	"sevdesk-export/internal/storage"
)

// DateLayout is the format of --start and --end.
const DateLayout = "2006-01-02"

var ErrEndBeforeStart = errors.New("end date is before start date")

type Config struct {
	// sevDesk Configuration
	APIToken string        `validate:"required"`
	APIURL   string        `validate:"omitempty,url"`
	Timeout  time.Duration `validate:"gte=0"`

	// Export Configuration
	Start             time.Time
	End               time.Time
	Dir               string `validate:"required"`
	DeleteExisting    bool
	Report            bool
	ExtraInfoFilename bool
	Concurrency       int `validate:"gte=0"`

	// WebDAV Configuration
	WebDAVAddress  string `validate:"omitempty,url"`
	WebDAVUsername string `validate:"required_with=WebDAVPassword"`
	WebDAVPassword string

	// Google Sheets Configuration
	GoogleSheetURL       string `validate:"omitempty,url"`
	GoogleSheetWorksheet string `validate:"required_with=GoogleSheetURL"`

	// Logging Configuration
	LogLevel      string `validate:"oneof=trace debug info warn error fatal panic"`
	LogFormat     string `validate:"oneof=console json"`
	LogTimeFormat string
	LogOutput     string
}

// settingNames maps config fields to the names users know them by.
var settingNames = map[string]string{
	"APIToken":             "SEVDESK_API_KEY / --api-token",
	"APIURL":               "SEVDESK_API_URL",
	"Timeout":              "SEVDESK_TIMEOUT",
	"Dir":                  "EXPORT_DIR / --dir",
	"Concurrency":          "EXPORT_CONCURRENCY / --concurrency",
	"WebDAVAddress":        "WEBDAV_ADDRESS / --webdav-address",
	"WebDAVUsername":       "WEBDAV_USERNAME / --webdav-username",
	"GoogleSheetURL":       "GOOGLE_SHEET_URL / --sheet-url",
	"GoogleSheetWorksheet": "GOOGLE_SHEET_WORKSHEET",
	"LogLevel":             "LOG_LEVEL",
	"LogFormat":            "LOG_FORMAT",
}

var validate = validator.New()

// Load reads the configuration from the environment. The date range
// defaults to the previous calendar month. Command line flags are applied
// on top by the caller, Validate runs afterwards.
func Load() (*Config, error) {
	start, end := DefaultRange(time.Now())

	config := &Config{
		APIToken:             getEnv("SEVDESK_API_KEY", ""),
		APIURL:               getEnv("SEVDESK_API_URL", sevdesk.DefaultBaseURL),
		Start:                start,
		End:                  end,
		Dir:                  getEnv("EXPORT_DIR", "export"),
		WebDAVAddress:        getEnv("WEBDAV_ADDRESS", ""),
		WebDAVUsername:       getEnv("WEBDAV_USERNAME", ""),
		WebDAVPassword:       getEnv("WEBDAV_PASSWORD", ""),
		GoogleSheetURL:       getEnv("GOOGLE_SHEET_URL", ""),
		GoogleSheetWorksheet: getEnv("GOOGLE_SHEET_WORKSHEET", "Journal"),
		LogLevel:             getEnv("LOG_LEVEL", "warn"),
		LogFormat:            getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:        getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:            getEnv("LOG_OUTPUT", "stderr"),
	}

	timeout, err := time.ParseDuration(getEnv("SEVDESK_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("SEVDESK_TIMEOUT: %w", err)
	}
	config.Timeout = timeout

	concurrency, err := strconv.Atoi(getEnv("EXPORT_CONCURRENCY", "0"))
	if err != nil {
		return nil, fmt.Errorf("EXPORT_CONCURRENCY: %w", err)
	}
	config.Concurrency = concurrency

	return config, nil
}

// Validate checks the complete configuration. All problems are reported
// at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("config validation failed: %w", err)
		}
		for _, fe := range fieldErrs {
			result = multierror.Append(result, fieldError(fe))
		}
	}

	if c.End.Before(c.Start) {
		result = multierror.Append(result, fmt.Errorf("%w: %s < %s",
			ErrEndBeforeStart, c.End.Format(DateLayout), c.Start.Format(DateLayout)))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	name, ok := settingNames[fe.Field()]
	if !ok {
		name = fe.Field()
	}
	switch fe.Tag() {
	case "required", "required_with":
		return fmt.Errorf("%s is required", name)
	case "url":
		return fmt.Errorf("%s must be a URL, got %q", name, fe.Value())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	case "gte":
		return fmt.Errorf("%s must not be negative", name)
	default:
		return fmt.Errorf("%s is invalid (%s)", name, fe.Tag())
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// ClientConfig returns the sevDesk client settings.
func (c *Config) ClientConfig() sevdesk.ClientConfig {
	return sevdesk.ClientConfig{
		BaseURL:     c.APIURL,
		Token:       c.APIToken,
		Timeout:     c.Timeout,
		Concurrency: c.Concurrency,
	}
}

// StorageConfig returns the storage provider settings.
func (c *Config) StorageConfig() storage.Config {
	return storage.Config{
		WebDAVAddress:  c.WebDAVAddress,
		WebDAVUsername: c.WebDAVUsername,
		WebDAVPassword: c.WebDAVPassword,
	}
}

// ParseDate parses a YYYY-MM-DD date as local midnight.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

// EndOfDay returns the last instant of the day of t.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// DefaultRange returns the calendar month before now, from its first day
// to the end of its last day.
func DefaultRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	lastDay := start.AddDate(0, 1, -1)
	return start, EndOfDay(lastDay)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
