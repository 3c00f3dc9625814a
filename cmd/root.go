package cmd

import (
	"errors"
	"fmt"

	"github.com/KimSchm/gh-models-cli/api"
	"github.com/KimSchm/gh-models-cli/common"
	"github.com/KimSchm/gh-models-cli/config"
	"github.com/KimSchm/gh-models-cli/display"
	"github.com/KimSchm/gh-models-cli/filectx"
	"github.com/KimSchm/gh-models-cli/logger"
	"github.com/KimSchm/gh-models-cli/prompt"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel   string
	listModels bool
	filePath   string
	dirPath    string
	rateModel  string
)

var rootCmd = &cobra.Command{
	Use:   "gh-models [flags] <prompt> <model> <token>",
	Short: "GitHub Models CLI - chat completions from the command line",
	Long: `gh-models sends a prompt, with optional file or directory context, to the
GitHub Models chat-completion API and prints the response.
It can also list the model catalog and look up a model's rate-limit tier.

Usage forms:
  gh-models -l <token>                            list the model catalog
  gh-models --rate <model> <token>                look up a rate-limit tier
  gh-models [-f file | -d dir] <prompt> <model> <token>
  gh-models <token>                               print this help text`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.WithYamlFile()

		level := logLevel
		if !cmd.Flags().Changed("log-level") && settings.LogLevel != "" {
			level = settings.LogLevel
		}
		logger.Init(level)
		logger.Debugf("Log level set to: %s", level)

		inv, err := config.NewInvocation(config.Flags{
			ListModels: listModels,
			FilePath:   filePath,
			DirPath:    dirPath,
			RateModel:  rateModel,
		}, args)
		if err != nil {
			if errors.Is(err, common.ErrUsage) {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				fmt.Fprintln(cmd.ErrOrStderr())
				_ = cmd.Usage()
			}
			return err
		}

		return run(cmd, inv, settings)
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, common.ErrUsage) {
		// Usage errors already printed themselves along with the usage text;
		// every other failure class is reported here before the exit 1.
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel,
		"Set the logging level (debug, info, warn, error)")

	rootCmd.Flags().BoolVarP(&listModels, "list-models", "l", false, "List the model catalog")
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Attach a single file as context")
	rootCmd.Flags().StringVarP(&dirPath, "dir", "d", "", "Attach every file directly inside a directory as context")
	rootCmd.Flags().StringVar(&rateModel, "rate", "", "Look up the rate-limit tier of the given model")
}

func run(cmd *cobra.Command, inv config.Invocation, settings config.Settings) error {
	if inv.Mode == config.ModeHelp {
		return cmd.Help()
	}

	opts := []api.Option{api.WithAPIToken(inv.Token)}
	if settings.BaseURL != "" {
		opts = append(opts, api.WithBaseURL(settings.BaseURL))
	}
	if settings.APIVersion != "" {
		opts = append(opts, api.WithAPIVersion(settings.APIVersion))
	}
	if settings.Timeout > 0 {
		opts = append(opts, api.WithTimeout(settings.Timeout))
	}

	client, err := api.NewClient(opts...)
	if err != nil {
		return err
	}

	switch inv.Mode {
	case config.ModeListModels:
		body, err := client.ListModels(cmd.Context())
		if err != nil {
			logger.Errorf("Failed to list models: %v", err)
			return err
		}
		return display.Catalog(cmd.OutOrStdout(), body)

	case config.ModeRateTier:
		tier, err := client.RateTier(cmd.Context(), inv.RateModel)
		if err != nil {
			logger.Errorf("Failed to look up rate tier: %v", err)
			return err
		}
		if tier == "" {
			// Degrades to an informational line; only this subcommand
			// exits non-zero.
			fmt.Fprintf(cmd.OutOrStdout(), "No rate-limit tier found for model %s\n", inv.RateModel)
			return fmt.Errorf("no rate-limit tier found for model %s", inv.RateModel)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rate-limit tier for %s: %s\n", inv.RateModel, tier)
		return nil

	case config.ModeComplete:
		return runComplete(cmd, inv, client)
	}

	return fmt.Errorf("unknown mode: %d", inv.Mode)
}

func runComplete(cmd *cobra.Command, inv config.Invocation, client *api.Client) error {
	fileContext := filectx.Context{}
	if path := inv.ContextPath(); path != "" {
		var err error
		fileContext, err = filectx.Build(path)
		if err != nil {
			return err
		}
	}

	chatReq, err := prompt.Build(inv.Prompt, inv.Model, fileContext)
	if err != nil {
		return err
	}

	body, err := client.Complete(cmd.Context(), chatReq)
	if err != nil {
		// Transport failures render as placeholder fields instead of aborting.
		logger.Warnf("Completion request failed: %v", err)
		body = nil
	}

	display.Completion(cmd.OutOrStdout(), body)
	return nil
}
