package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "https://www.courtlistener.com/api/rest/v4"
	DefaultSiteURL = "https://www.courtlistener.com"
)

// Init wires environment variables, the optional .env file and the command's
// persistent flags into viper. Flags take precedence over the environment.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	envFile := os.Getenv(strings.ToUpper(KeyEnvFile))
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)
	if root != nil {
		bindFlags(root.PersistentFlags())
	}
	setDefaults()
}

// bindFlags binds kebab-case flags to their snake_case config keys.
func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeySiteURL, DefaultSiteURL)
	viper.SetDefault(KeyRequestTimeout, "30s")
	viper.SetDefault(KeyMaxAttempts, 3)
	viper.SetDefault(KeyRetryBackoff, "1s")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp")
}

func APIToken() string     { return strings.TrimSpace(viper.GetString(KeyAPIToken)) }
func BaseURL() string      { return viper.GetString(KeyBaseURL) }
func SiteURL() string      { return viper.GetString(KeySiteURL) }
func MaxAttempts() int     { return viper.GetInt(KeyMaxAttempts) }
func LogLevel() string     { return viper.GetString(KeyLogLevel) }
func Transport() string    { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string         { return viper.GetString(KeyHost) }
func Port() int            { return viper.GetInt(KeyPort) }
func EndpointPath() string { return viper.GetString(KeyEndpointPath) }

func RequestTimeout() (time.Duration, error) {
	return parseDuration(KeyRequestTimeout, viper.GetString(KeyRequestTimeout), 30*time.Second)
}

func RetryBackoff() (time.Duration, error) {
	return parseDuration(KeyRetryBackoff, viper.GetString(KeyRetryBackoff), time.Second)
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}
