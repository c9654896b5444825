// Package bootstrap holds the start-up steps shared by the bendesk commands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/synerjet/bendesk/internal/infrastructure/config"
	"github.com/synerjet/bendesk/internal/infrastructure/database"
	"github.com/synerjet/bendesk/internal/shared/biztime"
	"github.com/synerjet/bendesk/internal/shared/constants"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flag string) string {
	if v := os.Getenv("ENV"); v != "" {
		return v
	}
	if flag == "" {
		return constants.EnvDevelopment
	}
	return flag
}

// Load reads the configuration, then initializes the logger and the
// business timezone.
func Load(env, configFile string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// LoadWithDatabase is Load followed by database.Init. Callers defer
// database.Close.
func LoadWithDatabase(env, configFile string) (*config.Config, logger.Interface, error) {
	cfg, log, err := Load(env, configFile)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, log, nil
}
