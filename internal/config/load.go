package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. DATAKIT_LOG_LEVEL for log.level.
const EnvPrefix = "DATAKIT"

// Default values applied before any other source.
const (
	DefaultLogLevel     = "warn"
	DefaultOutputFormat = "text"
	DefaultTopWords     = 10
	DefaultUserFormat   = "json"
)

// FlagKeys maps command line flag names to the configuration keys they set.
// Flags that are not present in the flag set passed to Load are ignored.
var FlagKeys = map[string]string{
	"log-level":   "log.level",
	"format":      "output.format",
	"color":       "output.color",
	"top":         "output.top_words",
	"user-format": "user.format",
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, Load looks
	// for an optional datakit.yaml in the working directory and in
	// $HOME/.config/datakit.
	ConfigFile string

	// Flags, when set, are bound on top of every other source. Only flags
	// the user actually changed take effect.
	Flags *pflag.FlagSet
}

// Load configuration from defaults, an optional config file, environment
// variables and command line flags, in increasing order of precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.color", true)
	v.SetDefault("output.top_words", DefaultTopWords)
	v.SetDefault("user.format", DefaultUserFormat)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("datakit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/datakit")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ErrInvalidConfig is wrapped by every ValidationError.
var ErrInvalidConfig = errors.New("config validation failed")

// FieldError describes one configuration value that failed validation.
type FieldError struct {
	// Key is the configuration key, e.g. output.top_words.
	Key     string
	Message string
}

// ValidationError lists every invalid configuration value.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Keys returns the configuration keys of the invalid values.
func (e *ValidationError) Keys() []string {
	keys := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Validate checks cfg against its struct tags. Field failures are reported
// as a *ValidationError keyed by configuration key.
func Validate(cfg *Config) error {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	ve := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		// Namespace is "Config.output.top_words"; drop the type name.
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		ve.Fields = append(ve.Fields, FieldError{Key: key, Message: fieldMessage(key, fe)})
	}
	return ve
}

func fieldMessage(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", key)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", key, strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", key, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", key, fe.Tag())
	}
}
