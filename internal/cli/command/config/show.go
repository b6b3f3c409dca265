package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("config_current", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			ui.PrintKeyValue("language", cfg.Language)
			ui.PrintKeyValue("active_ai", string(cfg.AIConfig.ActiveAI))

			for _, ai := range config.SupportedAIs() {
				model := cfg.AIConfig.Models[ai]
				keyStatus := "not set"
				if config.ResolveAPIKey(cfg, ai) != "" {
					keyStatus = "set"
				}
				ui.PrintKeyValue(string(ai), fmt.Sprintf("%s (api key: %s)", model, keyStatus))
			}

			ui.PrintKeyValue("concurrency", fmt.Sprintf("%d", cfg.ScanConfig.Concurrency))
			ui.PrintKeyValue("timeout_seconds", fmt.Sprintf("%d", cfg.ScanConfig.TimeoutSeconds))
			ui.PrintKeyValue("max_file_bytes", fmt.Sprintf("%d", cfg.ScanConfig.MaxFileBytes))

			return nil
		},
	}
}
