package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetAICommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-ai",
		Usage:     t.GetMessage("config_set_ai_usage", 0, nil),
		ArgsUsage: "<provider>",
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := config.AI(command.Args().First())

			if !isSupportedAI(provider) {
				supported := make([]string, 0)
				for _, ai := range config.SupportedAIs() {
					supported = append(supported, string(ai))
				}
				msg := t.GetMessage("config_invalid_provider", 0, map[string]interface{}{
					"Provider":  string(provider),
					"Supported": strings.Join(supported, ", "),
				})
				return fmt.Errorf("%s", msg)
			}

			cfg.AIConfig.ActiveAI = provider
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-model",
		Usage:     t.GetMessage("config_set_model_usage", 0, nil),
		ArgsUsage: "<model>",
		Action: func(ctx context.Context, command *cli.Command) error {
			model := config.Model(command.Args().First())
			provider := cfg.AIConfig.ActiveAI

			if !isValidModel(provider, model) {
				msg := t.GetMessage("config_invalid_model", 0, map[string]interface{}{
					"Model":    string(model),
					"Provider": string(provider),
				})
				return fmt.Errorf("%s", msg)
			}

			if cfg.AIConfig.Models == nil {
				cfg.AIConfig.Models = map[config.AI]config.Model{}
			}
			cfg.AIConfig.Models[provider] = model
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}

func isSupportedAI(provider config.AI) bool {
	for _, ai := range config.SupportedAIs() {
		if provider == ai {
			return true
		}
	}
	return false
}

func isValidModel(provider config.AI, model config.Model) bool {
	for _, m := range config.ModelsForAI(provider) {
		if model == m {
			return true
		}
	}
	return false
}
