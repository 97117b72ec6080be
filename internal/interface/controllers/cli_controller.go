package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"xtinypng/internal/domain/entities"
	"xtinypng/internal/domain/repositories"
	usecases "xtinypng/internal/usecase"
)

// Коды завершения процесса
const (
	ExitOK             = 0
	ExitUsage          = 1
	ExitCredential     = 2
	ExitPartialFailure = 3
)

// BatchProcessor запускает обработку найденных изображений
type BatchProcessor interface {
	Execute(ctx context.Context, req usecases.BatchRequest) (*usecases.BatchSummary, error)
}

// CLIController проверяет аргументы, ищет ключ и запускает обработку
type CLIController struct {
	resolver repositories.CredentialResolver
	batch    BatchProcessor
	config   *entities.Config
	logger   repositories.Logger
	out      io.Writer
	version  string
}

// NewCLIController создает новый CLI контроллер
func NewCLIController(
	resolver repositories.CredentialResolver,
	batch BatchProcessor,
	config *entities.Config,
	logger repositories.Logger,
	out io.Writer,
	version string,
) *CLIController {
	return &CLIController{
		resolver: resolver,
		batch:    batch,
		config:   config,
		logger:   logger,
		out:      out,
		version:  version,
	}
}

// Execute выполняет запуск и возвращает код завершения.
// Ошибки аргументов и ключа прерывают запуск до обращения к сервису.
func (c *CLIController) Execute(ctx context.Context, opts *Options) int {
	if opts.Help {
		PrintUsage(c.out)
		return ExitOK
	}
	if opts.Version {
		fmt.Fprintln(c.out, c.version)
		return ExitOK
	}

	resize, err := entities.NewResizeSpec(opts.Width, opts.Height, opts.Method)
	if err != nil {
		c.logger.Error("%v", err)
		return ExitUsage
	}

	resolution, err := c.resolver.Resolve(opts.Key)
	if err != nil {
		c.logger.Error("%v", err)
		return ExitCredential
	}
	if err := resolution.Credential.Validate(c.config.Credentials.StrictKeyLength); err != nil {
		c.logger.Error("%v (%s)", err, resolution.Origin)
		return ExitCredential
	}

	c.logger.Info("xTinyPNG %s", c.version)
	c.logger.Info("API ключ: %s (%s)", resolution.Credential.Masked(), resolution.Origin)
	if resize.Requested() {
		c.logger.Info("Ресайз: %s", resize)
	}

	summary, err := c.batch.Execute(ctx, usecases.BatchRequest{
		Paths: opts.Paths,
		Discovery: entities.DiscoveryOptions{
			Recursive: opts.Recursive,
			MatchDot:  opts.MatchDot,
			SkipEmpty: c.config.Processing.SkipEmpty,
		},
		Credential: resolution.Credential,
		Resize:     resize,
		Workers:    c.config.Processing.ParallelWorkers,
	})
	switch {
	case errors.Is(err, entities.ErrNoImagesFound):
		return ExitOK
	case err != nil:
		c.logger.Error("Ошибка обработки: %v", err)
		return ExitPartialFailure
	case summary.HasFailures():
		return ExitPartialFailure
	default:
		return ExitOK
	}
}

// ApplyOverrides переносит флаги, перекрывающие файл конфигурации
func ApplyOverrides(cfg *entities.Config, opts *Options) {
	if opts.UserAgent != "" {
		cfg.API.UserAgent = opts.UserAgent
	}
	if opts.Workers > 0 {
		cfg.Processing.ParallelWorkers = opts.Workers
	}
	if opts.TUI {
		cfg.Output.TUI = true
	}
	if opts.StrictKey {
		cfg.Credentials.StrictKeyLength = true
	}
}
