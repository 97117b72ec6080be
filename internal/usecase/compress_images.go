package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"

	"xtinypng/internal/domain/entities"
	"xtinypng/internal/domain/repositories"
)

// MessageCancelled сообщение для файлов, не обработанных из-за отмены
const MessageCancelled = "cancelled"

// CompressImageUseCase обрабатывает сжатие одного изображения через сервис
type CompressImageUseCase struct {
	client     repositories.ShrinkClient
	fileRepo   repositories.FileRepository
	thresholds entities.UsageThresholds
}

// NewCompressImageUseCase создает новый UseCase для сжатия изображений
func NewCompressImageUseCase(
	client repositories.ShrinkClient,
	fileRepo repositories.FileRepository,
	thresholds entities.UsageThresholds,
) *CompressImageUseCase {
	return &CompressImageUseCase{
		client:     client,
		fileRepo:   fileRepo,
		thresholds: thresholds,
	}
}

// CompressImage загружает файл, классифицирует ответ и при успехе
// заменяет оригинал скачанным результатом. Ошибки не выходят наружу:
// любой исход записывается в CompressionResult.
func (uc *CompressImageUseCase) CompressImage(
	ctx context.Context,
	file entities.ImageFile,
	credential entities.Credential,
	resize entities.ResizeSpec,
) *entities.CompressionResult {
	result := &entities.CompressionResult{
		CurrentFile:  file.Path,
		OriginalSize: file.Size,
	}

	if err := ctx.Err(); err != nil {
		result.Fail(entities.OutcomeOtherError, MessageCancelled, err)
		return result
	}

	f, err := uc.fileRepo.Open(file.Path)
	if err != nil {
		result.Fail(entities.OutcomeOtherError, "не удалось открыть файл", err)
		return result
	}

	resp, err := uc.client.Shrink(ctx, credential, f, file.Size)
	f.Close()

	if resp != nil && resp.CompressionCount != nil {
		count := *resp.CompressionCount
		result.Usage = &entities.UsageReport{
			Count: count,
			Band:  uc.thresholds.Classify(count),
		}
	}

	if err != nil {
		switch {
		case ctx.Err() != nil:
			result.Fail(entities.OutcomeOtherError, MessageCancelled, err)
		case errors.Is(err, entities.ErrMalformedResponse):
			result.Fail(entities.OutcomeMalformedResponse, "некорректный ответ сервиса", err)
		case errors.Is(err, entities.ErrNoResponse):
			result.Fail(entities.OutcomeNoResponse, "нет ответа от сервиса", err)
		default:
			result.Fail(entities.OutcomeOtherError, err.Error(), err)
		}
		return result
	}

	result.ApplyShrinkResponse(resp)

	if !uc.shouldFetch(result.Outcome, resize) {
		return result
	}

	var written int64
	err = uc.fileRepo.ReplaceFile(file.Path, func(w io.Writer) error {
		n, err := uc.client.Fetch(ctx, resp.Asset, resize, w)
		written = n
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			result.Fail(entities.OutcomeOtherError, MessageCancelled, err)
		} else {
			result.Fail(entities.OutcomeOtherError, "не удалось скачать результат", fmt.Errorf("скачивание %s: %w", resp.Asset.URL, err))
		}
		return result
	}

	result.WrittenSize = written
	result.Resized = resize.Requested()
	return result
}

// shouldFetch MaxedOut без ресайза оставляет оригинал как есть
func (uc *CompressImageUseCase) shouldFetch(outcome entities.Outcome, resize entities.ResizeSpec) bool {
	switch outcome {
	case entities.OutcomeShrunk:
		return true
	case entities.OutcomeMaxedOut:
		return resize.Requested()
	default:
		return false
	}
}
