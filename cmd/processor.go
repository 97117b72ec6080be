package main

import (
	"context"
	"io"
	"sync"

	"xtinypng/internal/domain/entities"
	"xtinypng/internal/domain/repositories"
	"xtinypng/internal/infrastructure/credentials"
	"xtinypng/internal/infrastructure/logging"
	infraRepos "xtinypng/internal/infrastructure/repositories"
	"xtinypng/internal/infrastructure/tinify"
	"xtinypng/internal/interface/controllers"
	"xtinypng/internal/presentation/tui"
	usecases "xtinypng/internal/usecase"
)

// ApplicationProcessor собирает зависимости и запускает обработку
// в консольном или полноэкранном режиме
type ApplicationProcessor struct {
	config     *entities.Config
	homeDir    string
	fileLogger repositories.Logger
	stdout     io.Writer

	// Graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApplicationProcessor создает новый процессор приложения.
// Отмена parent (Ctrl-C, SIGTERM) отменяет обработку.
func NewApplicationProcessor(
	parent context.Context,
	config *entities.Config,
	homeDir string,
	fileLogger repositories.Logger,
	stdout io.Writer,
) *ApplicationProcessor {
	ctx, cancel := context.WithCancel(parent)

	return &ApplicationProcessor{
		config:     config,
		homeDir:    homeDir,
		fileLogger: fileLogger,
		stdout:     stdout,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run выполняет запуск и возвращает код завершения
func (p *ApplicationProcessor) Run(opts *controllers.Options) int {
	if p.config.Output.TUI && !opts.Help && !opts.Version {
		return p.runTUI(opts)
	}
	return p.runConsole(opts)
}

func (p *ApplicationProcessor) runConsole(opts *controllers.Options) int {
	logger := logging.NewMultiLogger(
		logging.NewConsoleLogger(p.stdout, p.config.Output.LogLevel),
		p.fileLogger,
	)

	controller, _ := p.buildController(logger)
	return controller.Execute(p.ctx, opts)
}

func (p *ApplicationProcessor) runTUI(opts *controllers.Options) int {
	tuiManager := tui.NewManager()
	tuiManager.Initialize("xTinyPNG " + version)
	tuiManager.SetOnCancel(p.cancel)
	defer tuiManager.Cleanup()

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	logger := tui.NewUILogger(logging.NewMultiLogger(p.fileLogger), tuiManager)

	controller, batch := p.buildController(logger)
	batch.SetProgressReporter(tuiManager.SendStatusUpdate)

	code := controllers.ExitOK
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		code = controller.Execute(p.ctx, opts)
		tuiManager.MarkComplete()
		if code != controllers.ExitOK {
			logger.Warning("Код завершения: %d. q/ESC - выход", code)
		}
	}()

	if err := tuiManager.Run(); err != nil {
		logger.Error("Ошибка запуска TUI: %v", err)
		p.Shutdown()
		if code == controllers.ExitOK {
			code = controllers.ExitUsage
		}
		return code
	}

	p.Shutdown()
	return code
}

// buildController создает use cases и контроллер поверх logger
func (p *ApplicationProcessor) buildController(logger repositories.Logger) (*controllers.CLIController, *usecases.ProcessBatchUseCase) {
	fileRepo := infraRepos.NewFileSystemRepository()
	client := tinify.NewClient(p.config.API)

	compressor := usecases.NewCompressImageUseCase(client, fileRepo, p.config.Telemetry)
	batch := usecases.NewProcessBatchUseCase(compressor, fileRepo, logger)

	resolver := credentials.NewResolver(p.homeDir, logger).
		WithDotEnv(p.config.Credentials.DotEnvFile)

	controller := controllers.NewCLIController(resolver, batch, p.config, logger, p.stdout, version)
	return controller, batch
}

// Shutdown отменяет обработку и ждет завершения запущенных горутин
func (p *ApplicationProcessor) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
