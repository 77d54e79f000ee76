package config

import (
	"path/filepath"
)

type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`
	// Options for services
	Worker *WorkerConfig `mapstructure:"worker"`
	Accel  *AccelConfig  `mapstructure:"accel"`
}

// Default configurable parameters.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Worker:     DefaultWorkerConfig(),
		Accel:      DefaultAccelConfig(),
	}
}

// Set the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

//-----------------------------------------------------------------------------
// BaseConfig
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	//log level to set
	LogLevel string `mapstructure:"log_level"`

	// log file name
	LogFile string `mapstructure:"log_file"`

	// Digest width in bits, 128 or 256
	Width int `mapstructure:"width"`
}

// Default configurable base parameters.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel: "info",
		LogFile:  "log",
		Width:    256,
	}
}

func (b BaseConfig) LogDir() string {
	return rootify(b.LogFile, b.RootDir)
}

//-----------------------------------------------------------------------------
type WorkerConfig struct {
	// Threads is the dispatcher thread hint; 0 means one per CPU.
	Threads  int  `mapstructure:"threads"`
	Affinity bool `mapstructure:"affinity"`
}

type AccelConfig struct {
	Enable bool `mapstructure:"enable"`
}

// Default configurable worker parameters.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		Threads:  0,
		Affinity: false,
	}
}

// Default configurable accel parameters.
func DefaultAccelConfig() *AccelConfig {
	return &AccelConfig{
		Enable: false,
	}
}

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
