package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetAPIKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-api-key",
		Usage:     t.GetMessage("config_set_api_key_usage", 0, nil),
		ArgsUsage: "<provider> <api-key>",
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := config.AI(command.Args().Get(0))
			apiKey := command.Args().Get(1)

			if !isSupportedAI(provider) || apiKey == "" {
				return fmt.Errorf("%s", t.GetMessage("config_set_api_key_args", 0, nil))
			}

			if cfg.AIProviders == nil {
				cfg.AIProviders = map[string]config.ProviderConfig{}
			}
			pc := cfg.AIProviders[string(provider)]
			pc.APIKey = apiKey
			cfg.AIProviders[string(provider)] = pc

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			ui.PrintInfo(t.GetMessage("config_api_key_env_hint", 0, map[string]interface{}{
				"EnvVar": config.EnvVarForAI(provider),
			}))
			return nil
		},
	}
}
