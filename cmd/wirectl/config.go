package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/linera-bridge/decode"
	"github.com/wippyai/linera-bridge/errors"
)

const (
	formatYAML = "yaml"
	formatText = "text"
)

type config struct {
	Schema           string
	Format           string
	LogLevel         string
	MemoryLimitPages uint32
}

// wirectl config.toml keys.
type fileConfig struct {
	Schema           string `toml:"schema"`
	Format           string `toml:"format"`
	LogLevel         string `toml:"log_level"`
	MemoryLimitPages uint32 `toml:"memory_limit_pages"`
}

func defaultConfig() config {
	return config{
		Schema:   decode.SchemaService,
		Format:   formatYAML,
		LogLevel: "warn",
	}
}

// loadConfig overlays the keys set in the TOML file at path onto the
// defaults. An empty path returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "load config "+path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, errors.InvalidInput(errors.PhaseConfig, "unknown config key "+undecoded[0].String())
	}

	if meta.IsDefined("schema") {
		cfg.Schema = strings.TrimSpace(raw.Schema)
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("memory_limit_pages") {
		cfg.MemoryLimitPages = raw.MemoryLimitPages
	}
	return cfg, nil
}

func (c config) validate() error {
	if _, err := decode.ForSchema(c.Schema); err != nil {
		return err
	}
	switch c.Format {
	case formatYAML, formatText:
	default:
		return errors.InvalidInput(errors.PhaseConfig, "format must be yaml or text, got "+c.Format)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log level")
	}
	return nil
}

func (c config) logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	return zc.Build()
}
