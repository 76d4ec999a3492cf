package platform

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"firstgame/internal/config"
	"firstgame/internal/logsink"
	"firstgame/internal/render"
)

// LoadConfig resolves the configuration: the file named by FIRSTGAME_CONFIG,
// else config.yaml from assets, else the defaults. Environment overrides are
// applied last. An invalid result falls back to the defaults with the
// environment overrides reapplied, or to the bare defaults if those are
// invalid too. The returned error lists every problem met on the way.
func LoadConfig(assets render.AssetSource, lookup func(string) (string, bool)) (config.Config, error) {
	cfg := config.Default()
	var errs []error

	if path, ok := lookup(config.EnvConfigPath); ok && path != "" {
		c, err := config.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg = c
		}
	} else if assets != nil {
		c, err := loadAssetConfig(assets)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg = c
		}
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
		cfg = config.Default()
		if cfg.ApplyEnv(lookup) != nil || cfg.Validate() != nil {
			cfg = config.Default()
		}
	}
	return cfg, errors.Join(errs...)
}

func loadAssetConfig(assets render.AssetSource) (config.Config, error) {
	rc, err := assets.Open(config.FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Default(), err
	}
	defer rc.Close()
	return config.Load(rc)
}

// SetupLogging installs the tagged sink at the configured level and reports
// any configuration problem through it. A nil w selects the system log.
func SetupLogging(w io.Writer, cfg config.Config, cfgErr error) {
	level, err := logsink.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	logsink.Setup(w, level)
	if cfgErr != nil {
		logsink.For(logsink.TagConfig).Warn("configuration problem, using fallbacks", "err", cfgErr)
	}
}
