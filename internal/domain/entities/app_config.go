package entities

import (
	"net/url"
	"strings"
	"time"
)

// DefaultUserAgent заголовок User-Agent по умолчанию
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:69.0) Gecko/20100101 Firefox/69.0"

// DefaultEndpoint адрес загрузки изображений
const DefaultEndpoint = "https://api.tinify.com/shrink"

// Config представляет конфигурацию приложения
type Config struct {
	API         APIConfig         `yaml:"api"`
	Processing  ProcessingConfig  `yaml:"processing"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Telemetry   UsageThresholds   `yaml:"telemetry"`
	Output      OutputConfig      `yaml:"output"`
}

// APIConfig настройки обращения к сервису
type APIConfig struct {
	Endpoint       string `yaml:"endpoint"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ProcessingConfig настройки обработки
type ProcessingConfig struct {
	ParallelWorkers int  `yaml:"parallel_workers"`
	SkipEmpty       bool `yaml:"skip_empty"`
}

// CredentialsConfig настройки поиска ключа
type CredentialsConfig struct {
	StrictKeyLength bool   `yaml:"strict_key_length"`
	DotEnvFile      string `yaml:"dotenv_file"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogFileName  string `yaml:"log_file_name"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
	TUI          bool   `yaml:"tui"`
}

// Timeout возвращает таймаут HTTP запросов, 0 - без ограничения
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate проверяет корректность настроек API
func (c *APIConfig) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidEndpoint
	}
	if c.TimeoutSeconds < 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Validate проверяет корректность конфигурации приложения
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	if c.Processing.ParallelWorkers < 1 || c.Processing.ParallelWorkers > 64 {
		return ErrInvalidWorkers
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.LogLevel) {
	case "debug", "info", "warning", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// ProcessingStatus статус обработки
type ProcessingStatus struct {
	// Текущая фаза обработки
	Phase ProcessingPhase

	// Информация о текущем файле
	CurrentFile     string
	CurrentFileSize int64

	// Общая статистика
	TotalFiles      int
	ProcessedFiles  int
	ShrunkFiles     int
	MaxedOutFiles   int
	FailedFiles     int
	SkippedFiles    int

	// Прогресс
	Progress float64

	// Статистика сжатия
	TotalOriginalSize   int64
	TotalCompressedSize int64
	TotalSavedSpace     int64
	AverageCompression  float64

	// Последнее значение Compression-Count
	Usage *UsageReport

	// Текущий результат
	LastResult *CompressionResult

	// Время выполнения
	StartTime     time.Time
	ElapsedTime   time.Duration
	EstimatedTime time.Duration

	// Состояние
	IsComplete bool
	Error      error

	// Сообщение для UI
	Message string
}

// ProcessingPhase фаза обработки
type ProcessingPhase int

const (
	PhaseInitializing ProcessingPhase = iota
	PhaseScanning
	PhaseCompressing
	PhaseCompleted
	PhaseFailed
)

// NewProcessingStatus создает новый статус обработки
func NewProcessingStatus(totalFiles int) *ProcessingStatus {
	return &ProcessingStatus{
		Phase:      PhaseInitializing,
		TotalFiles: totalFiles,
		StartTime:  time.Now(),
	}
}

// UpdateProgress обновляет прогресс обработки
func (ps *ProcessingStatus) UpdateProgress() {
	if ps.TotalFiles > 0 {
		ps.Progress = float64(ps.ProcessedFiles) / float64(ps.TotalFiles) * 100
	}

	ps.ElapsedTime = time.Since(ps.StartTime)

	// Оценка оставшегося времени
	if ps.ProcessedFiles > 0 && ps.ProcessedFiles < ps.TotalFiles {
		avgTimePerFile := ps.ElapsedTime / time.Duration(ps.ProcessedFiles)
		remainingFiles := ps.TotalFiles - ps.ProcessedFiles
		ps.EstimatedTime = avgTimePerFile * time.Duration(remainingFiles)
	}
}

// AddResult добавляет результат обработки файла
func (ps *ProcessingStatus) AddResult(result *CompressionResult) {
	ps.ProcessedFiles++
	ps.LastResult = result
	if result.Usage != nil {
		ps.Usage = result.Usage
	}

	switch {
	case result.Success() && result.Outcome == OutcomeShrunk:
		ps.ShrunkFiles++
		ps.TotalOriginalSize += result.OriginalSize
		ps.TotalCompressedSize += result.CompressedSize
		ps.TotalSavedSpace += result.SavedSpace

		// Пересчитываем среднее сжатие
		if ps.TotalOriginalSize > 0 {
			ps.AverageCompression = ((float64(ps.TotalOriginalSize) - float64(ps.TotalCompressedSize)) / float64(ps.TotalOriginalSize)) * 100
		}
	case result.Success():
		ps.MaxedOutFiles++
	default:
		ps.FailedFiles++
	}

	ps.UpdateProgress()
}

// SuccessfulFiles количество файлов с итогом Shrunk или MaxedOut
func (ps *ProcessingStatus) SuccessfulFiles() int {
	return ps.ShrunkFiles + ps.MaxedOutFiles
}

// SetPhase устанавливает фазу обработки
func (ps *ProcessingStatus) SetPhase(phase ProcessingPhase, message string) {
	ps.Phase = phase
	ps.Message = message
}

// SetCurrentFile устанавливает текущий обрабатываемый файл
func (ps *ProcessingStatus) SetCurrentFile(filePath string, size int64) {
	ps.CurrentFile = filePath
	ps.CurrentFileSize = size
}

// Complete завершает обработку
func (ps *ProcessingStatus) Complete() {
	ps.IsComplete = true
	ps.Phase = PhaseCompleted
	ps.Progress = 100
	ps.ElapsedTime = time.Since(ps.StartTime)
	ps.EstimatedTime = 0
}

// Fail отмечает обработку как неудачную
func (ps *ProcessingStatus) Fail(err error) {
	ps.IsComplete = true
	ps.Phase = PhaseFailed
	ps.Error = err
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// String возвращает название фазы
func (phase ProcessingPhase) String() string {
	switch phase {
	case PhaseInitializing:
		return "Инициализация"
	case PhaseScanning:
		return "Поиск изображений"
	case PhaseCompressing:
		return "Сжатие файлов"
	case PhaseCompleted:
		return "Завершено"
	case PhaseFailed:
		return "Ошибка"
	default:
		return "Неизвестно"
	}
}

// FormatElapsedTime форматирует время выполнения
func (ps *ProcessingStatus) FormatElapsedTime() string {
	return formatDuration(ps.ElapsedTime)
}

// FormatEstimatedTime форматирует оставшееся время
func (ps *ProcessingStatus) FormatEstimatedTime() string {
	if ps.EstimatedTime == 0 {
		return "N/A"
	}
	return formatDuration(ps.EstimatedTime)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1 сек"
	}
	return d.Round(time.Second).String()
}
