package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"xtinypng/internal/domain/entities"
	"xtinypng/internal/domain/repositories"
)

// Имена файлов с ключом в домашней директории, в порядке приоритета
var DotfileNames = []string{".xtinypng", ".tinypng"}

// Переменные окружения с ключом: своя, совместимая со старой утилитой и с tinify
var EnvNames = []string{"XTINYPNG_KEY", "TINYPNG_KEY", "TINIFY_KEY"}

// Resolver ищет API ключ: флаг, файл в домашней директории, переменные окружения
type Resolver struct {
	homeDir    string
	dotEnvPath string
	lookupEnv  func(string) (string, bool)
	logger     repositories.Logger
}

// NewResolver создает резолвер, читающий переменные окружения процесса
func NewResolver(homeDir string, logger repositories.Logger) *Resolver {
	return &Resolver{
		homeDir:   homeDir,
		lookupEnv: os.LookupEnv,
		logger:    logger,
	}
}

// WithDotEnv задает .env файл, который проверяется после окружения процесса
func (r *Resolver) WithDotEnv(path string) *Resolver {
	r.dotEnvPath = path
	return r
}

// WithEnv подменяет источник переменных окружения (для тестов)
func (r *Resolver) WithEnv(lookup func(string) (string, bool)) *Resolver {
	if lookup != nil {
		r.lookupEnv = lookup
	}
	return r
}

// Resolve возвращает первый непустой ключ. entities.ErrNoCredential, если ключа нет нигде.
func (r *Resolver) Resolve(flagKey string) (*entities.CredentialResolution, error) {
	if key := strings.TrimSpace(flagKey); key != "" {
		return &entities.CredentialResolution{
			Credential: entities.Credential(key),
			Source:     entities.SourceFlag,
			Origin:     "--key",
		}, nil
	}

	if res := r.fromDotfiles(); res != nil {
		return res, nil
	}

	for _, name := range EnvNames {
		if value, ok := r.lookupEnv(name); ok && strings.TrimSpace(value) != "" {
			return &entities.CredentialResolution{
				Credential: entities.Credential(strings.TrimSpace(value)),
				Source:     entities.SourceEnv,
				Origin:     name,
			}, nil
		}
	}

	if res := r.fromDotEnv(); res != nil {
		return res, nil
	}

	return nil, entities.ErrNoCredential
}

// fromDotfiles читает ~/.xtinypng, затем ~/.tinypng
func (r *Resolver) fromDotfiles() *entities.CredentialResolution {
	if r.homeDir == "" {
		return nil
	}

	var found *entities.CredentialResolution
	for _, name := range DotfileNames {
		path := filepath.Join(r.homeDir, name)
		key, err := readKeyFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				r.warn("Не удалось прочитать %s: %v", path, err)
			}
			continue
		}
		if key == "" {
			continue
		}
		if found == nil {
			found = &entities.CredentialResolution{
				Credential: entities.Credential(key),
				Source:     entities.SourceDotfile,
				Origin:     path,
			}
			continue
		}
		if string(found.Credential) != key {
			r.warn("Файлы %s и %s содержат разные ключи, используется %s", found.Origin, path, found.Origin)
		}
	}
	return found
}

// fromDotEnv ищет ключ в .env файле
func (r *Resolver) fromDotEnv() *entities.CredentialResolution {
	if r.dotEnvPath == "" {
		return nil
	}

	values, err := godotenv.Read(r.dotEnvPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.warn("Не удалось прочитать %s: %v", r.dotEnvPath, err)
		}
		return nil
	}

	for _, name := range EnvNames {
		if value := strings.TrimSpace(values[name]); value != "" {
			return &entities.CredentialResolution{
				Credential: entities.Credential(value),
				Source:     entities.SourceDotEnv,
				Origin:     fmt.Sprintf("%s:%s", r.dotEnvPath, name),
			}
		}
	}
	return nil
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (r *Resolver) warn(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Warning(format, args...)
	}
}
