package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appSeed "github.com/synerjet/bendesk/internal/application/seed"
	"github.com/synerjet/bendesk/internal/infrastructure/auth"
	"github.com/synerjet/bendesk/internal/infrastructure/database"
	"github.com/synerjet/bendesk/internal/infrastructure/repository"
	"github.com/synerjet/bendesk/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users and asset types from a YAML file",
		Long:  `Upsert users (by username) and asset types (by name) from a YAML seed file. Safe to run repeatedly.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seed.example.yaml", "Seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.LoadWithDatabase(bootstrap.ResolveEnv(env), configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	fh, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()

	doc, err := appSeed.Parse(fh)
	if err != nil {
		return err
	}

	gdb := database.Get()
	loader := appSeed.NewLoader(
		repository.NewUserRepository(gdb, log),
		repository.NewAssetTypeRepository(gdb),
		auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost),
		log.Named("seed"),
	)

	res, err := loader.Apply(cmd.Context(), doc)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "users created: %d, users updated: %d, asset types created: %d\n",
		res.UsersCreated, res.UsersUpdated, res.AssetTypesCreated)
	return nil
}
