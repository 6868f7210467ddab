package settings

import (
	"encoding/json"
	"log/slog"
	"strings"

	"pfeifer.dev/acc/params"
	"pfeifer.dev/acc/utils"
)

var (
	Settings = AccSettings{}
)

type AccSettings struct {
	LogLevel           string `json:"log_level"`
	LogFile            string `json:"log_file"`
	DemoLogFile        string `json:"demo_log_file"`
	InteractiveLogFile string `json:"interactive_log_file"`
}

func (s *AccSettings) Default() {
	s.LogLevel = "error"
	s.LogFile = DEFAULT_LOG_FILE
	s.DemoLogFile = DEFAULT_DEMO_LOG_FILE
	s.InteractiveLogFile = DEFAULT_INTERACTIVE_LOG_FILE
}

// Load resets to defaults and overlays whatever is stored in the
// AccSettings param. A missing param is not an error worth logging.
func (s *AccSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	exists, err := params.Exists(params.ACC_SETTINGS())
	if err != nil || !exists {
		utils.Logde(err)
		s.setLogLevel()
		return false
	}

	data, err := params.GetParam(params.ACC_SETTINGS())
	if err != nil {
		utils.Logde(err)
		s.setLogLevel()
		return false
	}

	if !s.Unmarshal(data) {
		s.setLogLevel()
		return false
	}

	s.setLogLevel()
	return true
}

func (s *AccSettings) Unmarshal(data []byte) (success bool) {
	err := json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}
	return true
}

func (s *AccSettings) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	params.EnsureParamDirectories()
	return params.PutParam(params.ACC_SETTINGS(), data)
}

// Reset restores the defaults and deletes the stored param so later
// sessions start from defaults too.
func (s *AccSettings) Reset() error {
	s.Default()
	s.setLogLevel()
	if exists, err := params.Exists(params.ACC_SETTINGS()); err != nil || !exists {
		return err
	}
	return params.RemoveParam(params.ACC_SETTINGS())
}

func (s *AccSettings) SetLogLevel(level string) {
	s.LogLevel = level
	s.setLogLevel()
}

func (s *AccSettings) setLogLevel() {
	slog.SetLogLoggerLevel(ParseLogLevel(s.LogLevel))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Path returns the configured log file for a mode, falling back to the
// built-in default when the setting is blank.
func (s *AccSettings) Path(mode string) string {
	switch mode {
	case "demo":
		return orDefault(s.DemoLogFile, DEFAULT_DEMO_LOG_FILE)
	case "interactive":
		return orDefault(s.InteractiveLogFile, DEFAULT_INTERACTIVE_LOG_FILE)
	default:
		return orDefault(s.LogFile, DEFAULT_LOG_FILE)
	}
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}
