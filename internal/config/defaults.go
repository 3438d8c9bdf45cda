package config

const (
	defaultProgressInterval = 500
	defaultSkipPixelData    = true
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultConfigPath       = "~/.config/dicomtags/config.toml"
	projectConfigName       = "dicomtags.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			ProgressInterval: defaultProgressInterval,
			SkipPixelData:    defaultSkipPixelData,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
