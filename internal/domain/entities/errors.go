package entities

import "errors"

// Доменные ошибки
var (
	ErrNoCredential      = errors.New("API ключ не найден")
	ErrInvalidCredential = errors.New("API ключ должен состоять ровно из 32 символов")
	ErrInvalidDimension  = errors.New("некорректный размер для ресайза")
	ErrMissingDimension  = errors.New("не хватает размера для ресайза")
	ErrInvalidMethod     = errors.New("неизвестный метод ресайза")
	ErrNoImagesFound     = errors.New("подходящие изображения (PNG/JPEG) не найдены")
	ErrNoResponse        = errors.New("нет ответа от сервера")
	ErrMalformedResponse = errors.New("некорректный JSON в ответе")

	// Ошибки конфигурации
	ErrInvalidWorkers    = errors.New("количество воркеров должно быть от 1 до 64")
	ErrInvalidEndpoint   = errors.New("адрес API должен использовать схему http или https")
	ErrInvalidTimeout    = errors.New("таймаут не может быть отрицательным")
	ErrInvalidThresholds = errors.New("пороги compression-count должны возрастать")
	ErrInvalidLogLevel   = errors.New("неизвестный уровень логирования")
)
