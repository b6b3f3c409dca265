package main

import (
	"context"
	"fmt"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/MateScan/internal/cli/command/config"
	"github.com/Tomas-vilte/MateScan/internal/cli/command/handler"
	"github.com/Tomas-vilte/MateScan/internal/cli/command/scan"
	"github.com/Tomas-vilte/MateScan/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateScan/internal/infrastructure/ai/groq"
	"github.com/Tomas-vilte/MateScan/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateScan/internal/logger"
	"github.com/Tomas-vilte/MateScan/internal/services"
	"github.com/Tomas-vilte/MateScan/internal/ui"
	"github.com/Tomas-vilte/MateScan/internal/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	// A .env in the working directory is optional.
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("MATESCAN_DEBUG") != "")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfg.GetLocaleConfig(cfgApp.Language), "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, translations, err
	}

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterAIProvider("gemini", gemini.NewGeminiProviderFactory()); err != nil {
		log.Printf("Warning: could not register the Gemini provider: %v", err)
	}

	if err := container.RegisterAIProvider("groq", groq.NewGroqProviderFactory()); err != nil {
		log.Printf("Warning: could not register the Groq provider: %v", err)
	}

	scanServiceProvider := func(ctx context.Context) (*services.ScanService, error) {
		return container.GetScanService(ctx)
	}
	reportHandler := handler.NewReportHandler(os.Stdout, translations)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("scan", scan.NewScanCommandFactory(scanServiceProvider, reportHandler)); err != nil {
		log.Fatalf("Error registering the 'scan' command: %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'config' command: %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "matescan",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
