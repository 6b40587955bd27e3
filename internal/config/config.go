package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	User   UserConfig   `mapstructure:"user"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
	Color  bool   `mapstructure:"color"`
	// TopWords caps the number of words listed by the frequency command.
	TopWords int `mapstructure:"top_words" validate:"gte=1,lte=1000"`
}

// UserConfig contains settings for user record handling.
type UserConfig struct {
	// Format is the textual record format used to print and read users.
	Format string `mapstructure:"format" validate:"required,oneof=json yaml"`
}
