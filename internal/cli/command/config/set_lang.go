package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<en|es>",
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.Args().First()
			if lang != config.LangEN && lang != config.LangES {
				return fmt.Errorf("%s", t.GetMessage("config_invalid_lang", 0, map[string]interface{}{
					"Lang": lang,
				}))
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			if err := t.SetLanguage(lang); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}
