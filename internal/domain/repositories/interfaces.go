package repositories

import (
	"context"
	"io"

	"xtinypng/internal/domain/entities"
)

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	// Discover раскрывает аргументы командной строки в список изображений
	Discover(paths []string, opts entities.DiscoveryOptions) *entities.DiscoveryResult
	Open(path string) (io.ReadCloser, error)
	// ReplaceFile атомарно заменяет содержимое файла тем, что запишет write
	ReplaceFile(path string, write func(w io.Writer) error) error
}

// ShrinkClient интерфейс клиента сервиса сжатия
type ShrinkClient interface {
	Shrink(ctx context.Context, credential entities.Credential, body io.Reader, size int64) (*entities.ShrinkResponse, error)
	Fetch(ctx context.Context, asset entities.RemoteAsset, resize entities.ResizeSpec, dst io.Writer) (int64, error)
}

// CredentialResolver интерфейс поиска API ключа
type CredentialResolver interface {
	Resolve(flagKey string) (*entities.CredentialResolution, error)
}
