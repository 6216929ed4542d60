package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ConfigPathEnv names a directory searched first for .storyjournal.yaml.
const ConfigPathEnv = "STORYJOURNAL_CONFIG_PATH"

// Backends understood by Load.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

type Config interface {
	BasePath() string
	Backend() string
	Debug() bool
	SprintMinutes() int
	MorningMinutes() int
	Notify() bool
}

// LoadConfig reads .storyjournal.yaml from $STORYJOURNAL_CONFIG_PATH, the
// working directory or $HOME, overlaid with STORYJOURNAL_* environment
// variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.storyjournal")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("debug", false)
	v.SetDefault("sprint.minutes", 10)
	v.SetDefault("morning.minutes", 20)
	v.SetDefault("notify", true)

	v.SetConfigName(".storyjournal") // .yaml is implicit
	v.SetEnvPrefix("STORYJOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	cfg := &fileConfig{
		Path:           path,
		StoreBackend:   v.GetString("backend"),
		DebugLogging:   v.GetBool("debug"),
		Sprint:         v.GetInt("sprint.minutes"),
		Morning:        v.GetInt("morning.minutes"),
		Notifications:  v.GetBool("notify"),
		ConfigFileUsed: v.ConfigFileUsed(),
	}
	switch cfg.StoreBackend {
	case BackendDiskv, BackendSQLite:
	default:
		return nil, fmt.Errorf("store: unknown backend %q (expected %s or %s)", cfg.StoreBackend, BackendDiskv, BackendSQLite)
	}
	return cfg, nil
}

type fileConfig struct {
	Path           string `json:"path"`
	StoreBackend   string `json:"backend"`
	DebugLogging   bool   `json:"debug"`
	Sprint         int    `json:"sprintMinutes"`
	Morning        int    `json:"morningMinutes"`
	Notifications  bool   `json:"notify"`
	ConfigFileUsed string `json:"configFile,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.StoreBackend
}

func (f *fileConfig) Debug() bool {
	return f.DebugLogging
}

func (f *fileConfig) SprintMinutes() int {
	return f.Sprint
}

func (f *fileConfig) MorningMinutes() int {
	return f.Morning
}

func (f *fileConfig) Notify() bool {
	return f.Notifications
}

// ConfigFile reports the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.ConfigFileUsed
	}
	return ""
}

// DataPath is where the selected backend keeps its data.
func DataPath(cfg Config) string {
	if cfg.Backend() == BackendSQLite {
		return filepath.Join(cfg.BasePath(), "journal.db")
	}
	return filepath.Join(cfg.BasePath(), "data")
}

// LogDir is where the rotating log file lives.
func LogDir(cfg Config) string {
	return filepath.Join(cfg.BasePath(), "logs")
}

// Load opens the store the config selects. A nil config is loaded from
// the environment.
func Load(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch cfg.Backend() {
	case BackendSQLite:
		return OpenSQLite(DataPath(cfg))
	default:
		return OpenDiskv(DataPath(cfg))
	}
}
