package scan

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateScan/internal/cli/command/handler"
	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/services"
	"github.com/Tomas-vilte/MateScan/internal/ui"
	"github.com/urfave/cli/v3"
)

// ScanServiceProvider builds the pipeline lazily so the AI client is only
// created when the command actually runs.
type ScanServiceProvider func(ctx context.Context) (*services.ScanService, error)

type ScanCommandFactory struct {
	serviceProvider ScanServiceProvider
	reportHandler   *handler.ReportHandler
}

func NewScanCommandFactory(serviceProvider ScanServiceProvider, reportHandler *handler.ReportHandler) *ScanCommandFactory {
	return &ScanCommandFactory{
		serviceProvider: serviceProvider,
		reportHandler:   reportHandler,
	}
}

func (f *ScanCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "scan",
		Aliases:     []string{"s"},
		Usage:       t.GetMessage("scan_command_usage", 0, nil),
		Description: t.GetMessage("scan_command_description", 0, nil),
		ArgsUsage:   "<directory>",
		Flags:       f.createFlags(cfg, t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *ScanCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "concurrency",
			Aliases: []string{"c"},
			Value:   int64(cfg.ScanConfig.Concurrency),
			Usage:   t.GetMessage("scan_concurrency_flag_usage", 0, nil),
		},
		&cli.IntFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Value:   int64(cfg.ScanConfig.TimeoutSeconds),
			Usage:   t.GetMessage("scan_timeout_flag_usage", 0, nil),
		},
		&cli.IntFlag{
			Name:  "max-bytes",
			Value: cfg.ScanConfig.MaxFileBytes,
			Usage: t.GetMessage("scan_max_bytes_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Value:   cfg.Language,
			Usage:   t.GetMessage("scan_lang_flag_usage", 0, nil),
		},
	}
}

func (f *ScanCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		directory := command.Args().First()
		if directory == "" {
			return fmt.Errorf("%s", t.GetMessage("scan_missing_directory", 0, nil))
		}

		if lang := command.String("lang"); lang != cfg.Language {
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
			cfg.Language = lang
		}

		cfg.ScanConfig.Concurrency = int(command.Int("concurrency"))
		cfg.ScanConfig.TimeoutSeconds = int(command.Int("timeout"))
		cfg.ScanConfig.MaxFileBytes = command.Int("max-bytes")

		service, err := f.serviceProvider(ctx)
		if err != nil {
			return err
		}

		ui.PrintSectionBanner(t.GetMessage("scanning_directory", 0, map[string]interface{}{
			"Directory": directory,
		}))

		sp := ui.NewSmartSpinner(t.GetMessage("scanning_directory", 0, map[string]interface{}{
			"Directory": directory,
		}))
		service.SetProgress(func(path string) {
			sp.UpdateMessage(t.GetMessage("analyzing_file", 0, map[string]interface{}{
				"Path": path,
			}))
		})

		sp.Start()
		summary, err := service.Scan(ctx, directory)
		sp.Stop()
		if err != nil {
			return err
		}

		return f.reportHandler.HandleSummary(summary)
	}
}
