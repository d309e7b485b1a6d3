// Package cli wires the command surface: argument parsing, flag handling,
// and composition of the auth, api, render, and bulk packages into the
// individual subcommands.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"ytctl/internal/api"
	"ytctl/internal/auth"
	"ytctl/internal/config"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd(version string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:     "ytctl",
		Short:   "Manage a YouTube channel from the command line",
		Long:    "ytctl is a YouTube Data API v3 client for channel owners: video and playlist management, comments, search, and bulk metadata operations.",
		Version: version,
		// Errors are printed once, by main, with the exit code attached.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = setupLogging(debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newAuthCmd(),
		newWhoamiCmd(),
		newVideosCmd(),
		newPlaylistsCmd(),
		newCommentsCmd(),
		newSearchCmd(),
		newExportCmd(),
		newBulkUpdateCmd(),
	)
	return cmd
}

// newClient runs the credential lifecycle and returns an authenticated API
// client. Every remote subcommand starts here.
func newClient(ctx context.Context) (*api.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	authn := auth.NewAuthenticator(
		auth.NewFileStore(cfg.CredentialsFile()),
		cfg.ClientSecretsFile(),
		logger,
	)
	ts, err := authn.TokenSource(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, err := api.NewClient(ctx, ts, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
