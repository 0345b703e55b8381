package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"post-receptor/core/storage"
	"post-receptor/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag        bool
	jsonOutputFlag bool
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check database schema, media bucket and settings",
	Long: `Runs the same checks as GET /integrity and exits non-zero when a required check fails.

Examples:
  integrity
  integrity --fix
  integrity --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		objects, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return err
		}

		svc := newIntegrityService(a, objects)
		if fixFlag {
			if err := svc.FixStorage(ctx); err != nil {
				return err
			}
		}

		report := svc.Run(ctx)
		if jsonOutputFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			for _, c := range report.Checks {
				a.logger.Info("Integrity check",
					zap.String("check", c.Name),
					zap.Bool("ok", c.OK),
					zap.Bool("required", c.Required),
					zap.String("detail", c.Detail),
				)
			}
		}

		if !report.Healthy {
			return errors.New("integrity check failed")
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the media bucket when missing")
	integrityCmd.Flags().BoolVar(&jsonOutputFlag, "json", false, "Print the report as JSON")
	RootCmd.AddCommand(integrityCmd)
}

func newIntegrityService(a *app, objects storage.Client) *integrity.Service {
	return integrity.NewService(objects, a.cfg.Storage, a.settings, a.logger,
		integrity.Schema{Name: "settings", Verifier: a.settings},
		integrity.Schema{Name: "content", Verifier: a.content},
	)
}
