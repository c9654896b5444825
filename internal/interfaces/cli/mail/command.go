package mail

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synerjet/bendesk/internal/infrastructure/database"
	"github.com/synerjet/bendesk/internal/infrastructure/metrics"
	"github.com/synerjet/bendesk/internal/interfaces/cli/bootstrap"
	"github.com/synerjet/bendesk/internal/interfaces/worker"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Helpdesk mailbox tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "poll",
		Short: "Run one mail ingestion pass",
		Long:  `Fetch unread messages from the helpdesk mailbox once, turning them into tickets and comments.`,
		RunE:  runPoll,
	})

	return cmd
}

func runPoll(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.LoadWithDatabase(bootstrap.ResolveEnv(env), configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	poller, closeCache, err := worker.BuildMailPoller(cmd.Context(), database.Get(), cfg, metrics.New(), log)
	if err != nil {
		return err
	}
	defer closeCache()

	fetched, err := poller.Execute(cmd.Context())
	if err != nil {
		return fmt.Errorf("mail poll failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "messages fetched: %d\n", fetched)
	return nil
}
