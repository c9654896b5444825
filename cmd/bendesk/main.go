package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/synerjet/bendesk/internal/interfaces/cli/mail"
	"github.com/synerjet/bendesk/internal/interfaces/cli/migrate"
	"github.com/synerjet/bendesk/internal/interfaces/cli/seed"
	"github.com/synerjet/bendesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bendesk",
		Short:        "Bendesk - internal IT helpdesk",
		Long:         `Bendesk serves the helpdesk API (tickets, assets, stock) and ships the migration, seed and mailbox tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		mail.NewCommand(),
		seed.NewCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
