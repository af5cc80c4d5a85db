package config

import (
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	forgeconfig "github.com/gaze-network/orb-forge/modules/forge/config"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
	"github.com/gaze-network/orb-forge/pkg/middleware/requestcontext"
	"github.com/gaze-network/orb-forge/pkg/middleware/requestlogger"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit bool
	mu     sync.Mutex
	config = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		HTTPServer: HTTPServerConfig{
			Port: 8080,
		},
		EnableModules: []string{"forge"},
		Modules: Modules{
			Forge: forgeconfig.Default(),
		},
	}
)

type Config struct {
	Logger        logger.Config    `mapstructure:"logger"`
	HTTPServer    HTTPServerConfig `mapstructure:"http_server"`
	EnableModules []string         `mapstructure:"enable_modules"`
	APIOnly       bool             `mapstructure:"api_only"`
	Modules       Modules          `mapstructure:"modules"`
}

type Modules struct {
	Forge forgeconfig.Config `mapstructure:"forge"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"requestip"`
}

// Parse parse the configuration from environment variables, an optional .env file and the config file.
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

// Load returns the loaded configuration
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if isInit {
		return *config
	}
	return parse()
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slog.String("package", "config"), slogx.Error(err))
	}
}

// SetDefault sets the default value for this key.
func SetDefault(key string, value any) {
	viper.SetDefault(key, value)
}

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.WarnContext(ctx, "Failed to load .env file", slogx.Error(err))
	}

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default config value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}
