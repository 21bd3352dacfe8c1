package domain

// Config represents the complete application configuration
type Config struct {
	Templates TemplatesConfig `mapstructure:"templates"`
	Intake    IntakeConfig    `mapstructure:"intake"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// TemplatesConfig locates the report assets on disk
type TemplatesConfig struct {
	Report       string `mapstructure:"report"`
	Closing      string `mapstructure:"closing"`
	SignatureDir string `mapstructure:"signature_dir"`
	CacheSize    int    `mapstructure:"cache_size"`
}

// IntakeConfig represents survey interpretation configuration
type IntakeConfig struct {
	// Timezone is the IANA name of the timezone intake dates are recorded in
	Timezone string `mapstructure:"timezone"`
}

// OutputConfig represents report output configuration
type OutputConfig struct {
	Directory string `mapstructure:"directory"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
