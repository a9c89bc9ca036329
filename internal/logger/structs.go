package logger

// Console configures logging to stdout/stderr.
type Console struct {
	Enabled          bool `toml:"enabled"          mapstructure:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter" mapstructure:"useConsoleWriter"` // human readable instead of JSON
}

// Rotation configures one rolling log file.
type Rotation struct {
	File       string `toml:"file"       mapstructure:"file"`
	MaxSize    int    `toml:"maxSize"    mapstructure:"maxSize"` // megabytes
	MaxBackups int    `toml:"maxBackups" mapstructure:"maxBackups"`
	MaxAge     int    `toml:"maxAge"     mapstructure:"maxAge"` // days
}

// LogFile configures file based logging, split by level.
type LogFile struct {
	Enabled bool   `toml:"enabled" mapstructure:"enabled"`
	Path    string `toml:"path"    mapstructure:"path"`

	Access Rotation `toml:"access" mapstructure:"access"` // mock server access log
	Error  Rotation `toml:"error"  mapstructure:"error"`
	Info   Rotation `toml:"info"   mapstructure:"info"`
	Trace  Rotation `toml:"trace"  mapstructure:"trace"`
	Warn   Rotation `toml:"warn"   mapstructure:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `toml:"logLevel" mapstructure:"logLevel"` // trace, debug, info, warn, error.

	// EnableAccessLogToConsole writes the mock server access log to the console.
	// Does not overrule Console.Enabled.
	EnableAccessLogToConsole bool `toml:"enableAccessLogToConsole" mapstructure:"enableAccessLogToConsole"`
	ReportCaller             bool `toml:"reportCaller"             mapstructure:"reportCaller"`

	AppName     string `toml:"appName"     mapstructure:"appName"`
	ServiceName string `toml:"serviceName" mapstructure:"serviceName"`

	Console Console `toml:"console" mapstructure:"console"`
	File    LogFile `toml:"file"    mapstructure:"file"`
}
