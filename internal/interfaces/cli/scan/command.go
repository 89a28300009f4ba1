package scan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/config"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/scanner"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

var (
	env        string
	configPath string
	cardID     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report a card read as the NFC scanner",
		Long: `Authenticate with the scanner service account (client credentials)
and submit one card UID to the badge scan endpoint.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&cardID, "card-id", "", "UID of the scanned card (required)")
	_ = cmd.MarkFlagRequired("card-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return fmt.Errorf("card-id must not be empty")
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slogLog, err := logger.New(&cfg.Logger, cfg.Server.Mode)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger(slogLog)

	client := scanner.NewClient(cmd.Context(), &cfg.Scanner, cfg.Identity.TokenURL(), log)

	result, err := client.Scan(cmd.Context(), cardID)
	if err != nil {
		var apiErr *scanner.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("card %s rejected: %s", cardID, apiErr.Message)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (card %s)\n", result.Message, result.CardID)
	return nil
}
