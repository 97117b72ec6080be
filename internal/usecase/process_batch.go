package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"xtinypng/internal/domain/entities"
	"xtinypng/internal/domain/repositories"
)

// BatchRequest параметры одного запуска
type BatchRequest struct {
	Paths      []string
	Discovery  entities.DiscoveryOptions
	Credential entities.Credential
	Resize     entities.ResizeSpec
	Workers    int
}

// BatchSummary итог запуска. Results в порядке обнаружения файлов.
type BatchSummary struct {
	Results []*entities.CompressionResult
	Skipped []entities.SkippedFile
	Status  entities.ProcessingStatus
}

// HasFailures есть ли файлы с итогом, отличным от Shrunk и MaxedOut
func (s *BatchSummary) HasFailures() bool {
	for _, r := range s.Results {
		if !r.Success() {
			return true
		}
	}
	return false
}

// ProcessBatchUseCase сценарий обработки всех найденных изображений
type ProcessBatchUseCase struct {
	compressor       *CompressImageUseCase
	fileRepo         repositories.FileRepository
	logger           repositories.Logger
	progressReporter func(entities.ProcessingStatus)

	mu     sync.Mutex
	status *entities.ProcessingStatus
}

// NewProcessBatchUseCase создает новый сценарий обработки
func NewProcessBatchUseCase(
	compressor *CompressImageUseCase,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *ProcessBatchUseCase {
	return &ProcessBatchUseCase{
		compressor: compressor,
		fileRepo:   fileRepo,
		logger:     logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *ProcessBatchUseCase) SetProgressReporter(reporter func(entities.ProcessingStatus)) {
	uc.progressReporter = reporter
}

// reportProgress вызывается под uc.mu
func (uc *ProcessBatchUseCase) reportProgress() {
	if uc.progressReporter != nil {
		uc.progressReporter(*uc.status)
	}
}

// Execute находит изображения и обрабатывает их пулом из req.Workers горутин.
// Возвращает entities.ErrNoImagesFound, если обрабатывать нечего.
func (uc *ProcessBatchUseCase) Execute(ctx context.Context, req BatchRequest) (*BatchSummary, error) {
	uc.mu.Lock()
	uc.status = entities.NewProcessingStatus(0)
	uc.status.SetPhase(entities.PhaseScanning, "Поиск изображений...")
	uc.reportProgress()
	uc.mu.Unlock()

	discovery := uc.fileRepo.Discover(req.Paths, req.Discovery)
	summary := &BatchSummary{Skipped: discovery.Skipped}

	for _, skipped := range discovery.Skipped {
		uc.logWarning("Пропуск %s: %s", skipped.Path, skipped.Reason)
	}

	uc.mu.Lock()
	uc.status.SkippedFiles = len(discovery.Skipped)
	if len(discovery.Files) == 0 {
		uc.status.Complete()
		uc.reportProgress()
		summary.Status = *uc.status
		uc.mu.Unlock()
		uc.logWarning("Изображения не найдены")
		return summary, entities.ErrNoImagesFound
	}

	uc.status.TotalFiles = len(discovery.Files)
	uc.status.SetPhase(entities.PhaseCompressing, "Сжатие изображений...")
	uc.reportProgress()
	uc.mu.Unlock()

	workers := req.Workers
	if workers <= 0 {
		workers = 1
	}

	uc.logInfo("Найдено изображений: %d (%s), воркеров: %d, %s",
		len(discovery.Files), humanize.Bytes(uint64(discovery.TotalSize())), workers, req.Resize)

	results := make([]*entities.CompressionResult, len(discovery.Files))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, file := range discovery.Files {
		i, file := i, file
		g.Go(func() error {
			result := uc.compressor.CompressImage(ctx, file, req.Credential, req.Resize)
			results[i] = result
			uc.record(result)
			return nil
		})
	}
	g.Wait()

	summary.Results = results

	uc.mu.Lock()
	uc.status.Complete()
	uc.reportProgress()
	summary.Status = *uc.status
	uc.mu.Unlock()

	uc.logSummary(&summary.Status)
	return summary, nil
}

// record учитывает результат и пишет строку статуса файла
func (uc *ProcessBatchUseCase) record(result *entities.CompressionResult) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.status.AddResult(result)
	uc.status.SetCurrentFile(result.CurrentFile, result.OriginalSize)

	prefix := fmt.Sprintf("[%d/%d] %s", uc.status.ProcessedFiles, uc.status.TotalFiles, result.CurrentFile)
	if result.Success() {
		uc.logSuccess("%s - %s", prefix, DescribeResult(result))
	} else {
		uc.logError("%s - %s", prefix, DescribeResult(result))
		if result.Error != nil {
			uc.logDebug("    └─ %v", result.Error)
		}
	}

	if result.Usage != nil {
		uc.logUsage(result.Usage)
	}

	uc.reportProgress()
}

// DescribeResult текст итога для строки статуса
func DescribeResult(result *entities.CompressionResult) string {
	switch result.Outcome {
	case entities.OutcomeShrunk:
		text := fmt.Sprintf("Shrunk %s (%d%%)", humanize.Bytes(uint64(result.SavedSpace)), result.SavedPercent)
		if result.Resized {
			text += fmt.Sprintf(", после ресайза %s", humanize.Bytes(uint64(result.WrittenSize)))
		}
		return text
	case entities.OutcomeMaxedOut:
		if result.Resized {
			return fmt.Sprintf("Maxed-Out, после ресайза %s", humanize.Bytes(uint64(result.WrittenSize)))
		}
		return "Maxed-Out (это OK)"
	case entities.OutcomeRateLimited:
		return "Ошибка сжатия: месячный лимит исчерпан"
	case entities.OutcomeUnauthorized:
		return "Ошибка сжатия: неверный API ключ"
	case entities.OutcomeEmptyInput:
		return "Ошибка сжатия: входной файл пуст"
	case entities.OutcomeUnsupportedType:
		return "Ошибка сжатия: тип файла не поддерживается"
	case entities.OutcomeNoResponse:
		return "Нет ответа от сервиса"
	case entities.OutcomeMalformedResponse:
		return "Некорректный JSON в ответе"
	default:
		if result.Message != "" {
			return "Ошибка сжатия: " + result.Message
		}
		return "Ошибка сжатия"
	}
}

func (uc *ProcessBatchUseCase) logUsage(usage *entities.UsageReport) {
	switch usage.Band {
	case entities.BandSafe, entities.BandNotice:
		uc.logInfo("ℹ Compression-Count -> %d (%s)", usage.Count, usage.Band)
	default:
		uc.logWarning("ℹ Compression-Count -> %d (%s)", usage.Count, usage.Band)
	}
}

func (uc *ProcessBatchUseCase) logSummary(status *entities.ProcessingStatus) {
	uc.logInfo("")
	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Обработка завершена за %s", status.FormatElapsedTime())
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║   • Всего: %d", status.TotalFiles)
	uc.logSuccess("║   • Shrunk: %d", status.ShrunkFiles)
	uc.logSuccess("║   • Maxed-Out: %d", status.MaxedOutFiles)
	if status.FailedFiles > 0 {
		uc.logError("║   • Ошибок: %d", status.FailedFiles)
	}
	if status.SkippedFiles > 0 {
		uc.logWarning("║   • Пропущено: %d", status.SkippedFiles)
	}
	if status.TotalSavedSpace > 0 {
		uc.logSuccess("║   • Сэкономлено: %s (%.1f%%)", humanize.Bytes(uint64(status.TotalSavedSpace)), status.AverageCompression)
	}
	uc.logInfo("╚════════════════════════════════════════════════════════════")
}

// Методы для логирования
func (uc *ProcessBatchUseCase) logDebug(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Debug(format, args...)
	}
}

func (uc *ProcessBatchUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *ProcessBatchUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *ProcessBatchUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *ProcessBatchUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}
