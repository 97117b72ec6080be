package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"xtinypng/internal/domain/entities"
)

// DefaultFileName имя файла конфигурации в домашней директории
const DefaultFileName = ".xtinypng.yaml"

// Repository реализация репозитория конфигурации
type Repository struct{}

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return &Repository{}
}

// DefaultPath возвращает путь к конфигурации по умолчанию
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, DefaultFileName)
}

// Load загружает конфигурацию из файла.
// Отсутствующие в файле поля берутся из конфигурации по умолчанию.
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	config := r.Default()

	// Если файл не существует, используем конфигурацию по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфигурацию %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конфигурацию %s: %w", configPath, err)
	}

	return config, nil
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Default создает конфигурацию по умолчанию
func (r *Repository) Default() *entities.Config {
	return &entities.Config{
		API: entities.APIConfig{
			Endpoint:       entities.DefaultEndpoint,
			UserAgent:      entities.DefaultUserAgent,
			TimeoutSeconds: 120,
		},
		Processing: entities.ProcessingConfig{
			ParallelWorkers: 4,
			SkipEmpty:       true,
		},
		Credentials: entities.CredentialsConfig{
			StrictKeyLength: false,
			DotEnvFile:      ".env",
		},
		Telemetry: entities.DefaultUsageThresholds(),
		Output: entities.OutputConfig{
			LogLevel:     "info",
			LogToFile:    false,
			LogFileName:  "xtinypng.log",
			LogMaxSizeMB: 10,
			TUI:          false,
		},
	}
}
