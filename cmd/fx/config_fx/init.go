package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmate/pkg/config"
	"tripmate/pkg/logger"
)

var Module = fx.Provide(config.Load, provideLogger)

// provideLogger also installs the logger as zap's global so package level
// helpers that call zap.L() share it.
func provideLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(log)

	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
		restore()
	}))
	return log, nil
}
