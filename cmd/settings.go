package cmd

import (
	"fmt"
	"strings"

	"post-receptor/core/settings"
	"post-receptor/feature/translation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for settings set command
	apiKeyFlag         string
	systemPromptFlag   string
	targetLanguageFlag string
	senderURLFlag      string
	clearAPIKey        bool
)

// settingsCmd is the parent command for runtime option management.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change runtime options",
}

// settingsShowCmd prints the current options with the API key masked.
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current options",
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

		fmt.Printf("openai_api_key:  %s\n", maskSecret(snap.APIKey))
		fmt.Printf("target_language: %s (%s)\n", snap.TargetLanguage, translation.LanguageName(snap.TargetLanguage))
		fmt.Printf("system_prompt:   %s\n", snap.SystemPrompt)
		fmt.Printf("sender_url:      %s\n", snap.SenderURL)
		fmt.Printf("auth_token:      %s\n", configuredLabel(snap.HasAuthToken()))
		return nil
	},
}

// settingsSetCmd updates one or more options.
var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update runtime options",
	Long: `Updates the options read by the receiver on every request.
Only flags that are passed are changed. An empty --api-key keeps the current
key; use --clear to remove it.

Examples:
  settings set --api-key sk-... --target-language en_US
  settings set --system-prompt "Friendly, concise tone"
  settings set --clear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()

		if flags.Changed("target-language") && !translation.IsSupported(targetLanguageFlag) {
			return fmt.Errorf("unsupported target language %q (supported: %s)",
				targetLanguageFlag, strings.Join(translation.SupportedLanguages(), ", "))
		}

		updates := map[string]string{}
		if clearAPIKey {
			updates[settings.OptionAPIKey] = ""
		} else if flags.Changed("api-key") && strings.TrimSpace(apiKeyFlag) != "" {
			updates[settings.OptionAPIKey] = strings.TrimSpace(apiKeyFlag)
		}
		if flags.Changed("system-prompt") {
			updates[settings.OptionSystemPrompt] = systemPromptFlag
		}
		if flags.Changed("target-language") {
			updates[settings.OptionTargetLanguage] = targetLanguageFlag
		}
		if flags.Changed("sender-url") {
			updates[settings.OptionSenderURL] = strings.TrimSpace(senderURLFlag)
		}

		if len(updates) == 0 {
			return cmd.Help()
		}

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		for name, value := range updates {
			if err := a.settings.Set(ctx, name, value); err != nil {
				return fmt.Errorf("failed to save %s: %w", name, err)
			}
			a.logger.Info("Option updated", zap.String("name", name))
		}
		return nil
	},
}

// settingsRevokeKeyCmd removes the stored OpenAI API key.
var settingsRevokeKeyCmd = &cobra.Command{
	Use:   "revoke-key",
	Short: "Remove the stored OpenAI API key",
	Long:  `Removes the OpenAI API key. Posts received afterwards are stored untranslated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if !confirmDestructiveAction("Translation will be disabled until a new key is set.") {
			a.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		if err := a.settings.Set(ctx, settings.OptionAPIKey, ""); err != nil {
			return fmt.Errorf("failed to revoke api key: %w", err)
		}
		a.logger.Info("OpenAI API key revoked")
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "OpenAI API key (empty keeps the current key)")
	settingsSetCmd.Flags().StringVar(&systemPromptFlag, "system-prompt", "", "Style and tone prompt for title, body and excerpt")
	settingsSetCmd.Flags().StringVar(&targetLanguageFlag, "target-language", "", "Language posts are translated into (e.g. en_US)")
	settingsSetCmd.Flags().StringVar(&senderURLFlag, "sender-url", "", "Address of the sending site")
	settingsSetCmd.Flags().BoolVar(&clearAPIKey, "clear", false, "Remove the stored API key")

	settingsRevokeKeyCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsRevokeKeyCmd)
	RootCmd.AddCommand(settingsCmd)
}

// maskSecret keeps the first three and last four characters of long secrets.
func maskSecret(s string) string {
	switch {
	case s == "":
		return "(not set)"
	case len(s) <= 10:
		return strings.Repeat("*", len(s))
	default:
		return s[:3] + strings.Repeat("*", len(s)-7) + s[len(s)-4:]
	}
}

func configuredLabel(ok bool) string {
	if ok {
		return "configured"
	}
	return "(not set)"
}
