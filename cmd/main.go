package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"xtinypng/internal/domain/repositories"
	"xtinypng/internal/infrastructure/config"
	"xtinypng/internal/infrastructure/logging"
	"xtinypng/internal/interface/controllers"
)

// version подставляется при сборке: -ldflags "-X main.version=..."
var version = "1.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := controllers.ParseOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✘ %v\n\n", err)
		controllers.PrintUsage(os.Stderr)
		return controllers.ExitUsage
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Предупреждение: не удалось определить домашнюю директорию: %v", err)
	}

	configPath := opts.ConfigPath
	if configPath == "" && homeDir != "" {
		configPath = config.DefaultPath(homeDir)
	}

	// Загрузка конфигурации
	var configRepo repositories.AppConfigRepository = config.NewRepository()
	appConfig := configRepo.Default()
	if configPath != "" {
		if appConfig, err = configRepo.Load(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "✘ Ошибка загрузки конфигурации: %v\n", err)
			return controllers.ExitUsage
		}
	}

	controllers.ApplyOverrides(appConfig, opts)
	if err := appConfig.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "✘ Некорректная конфигурация: %v\n", err)
		return controllers.ExitUsage
	}

	if opts.WriteConfig {
		if err := configRepo.Save(configPath, appConfig); err != nil {
			fmt.Fprintf(os.Stderr, "✘ Не удалось сохранить конфигурацию: %v\n", err)
			return controllers.ExitUsage
		}
		fmt.Printf("Конфигурация сохранена: %s\n", configPath)
		return controllers.ExitOK
	}

	// Инициализация базового логгера (в файл)
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	}
	if fileLogger != nil {
		defer fileLogger.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	processor := NewApplicationProcessor(ctx, appConfig, homeDir, fileLogger, os.Stdout)
	defer processor.Shutdown()

	return processor.Run(opts)
}
