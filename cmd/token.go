package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCmd is the parent command for receiver token operations.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the token senders authenticate with",
}

// tokenRegenerateCmd rotates the receiver token.
var tokenRegenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Generate a new receiver token",
	Long: `Generates a new 32 character receiver token and prints it once.
The previous token stops working immediately; copy the new one into the sending site.

Examples:
  # Rotate with interactive confirmation
  token regenerate

  # Rotate non-interactively
  token regenerate --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		snap, err := a.settings.Snapshot(ctx)
		if err != nil {
			return err
		}
		if snap.HasAuthToken() && !confirmDestructiveAction("The current token will stop working.") {
			a.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		token, err := a.settings.RegenerateToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to regenerate token: %w", err)
		}

		a.logger.Info("Receiver token regenerated")
		fmt.Println(token)
		return nil
	},
}

// tokenStatusCmd reports whether a token is configured without revealing it.
var tokenStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a receiver token is configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		snap, err := a.settings.Snapshot(ctx)
		if err != nil {
			return err
		}

		a.logger.Info("Receiver token",
			zap.Bool("configured", snap.HasAuthToken()),
			zap.String("base_path", a.cfg.Receptor.Prefix()),
		)
		return nil
	},
}

func init() {
	tokenRegenerateCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm token rotation (non-interactive)")

	tokenCmd.AddCommand(tokenRegenerateCmd)
	tokenCmd.AddCommand(tokenStatusCmd)
	RootCmd.AddCommand(tokenCmd)
}
