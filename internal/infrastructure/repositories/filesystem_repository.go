package repositories

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"xtinypng/internal/domain/entities"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// Discover раскрывает пути в список PNG/JPEG файлов.
// Несуществующие пути молча пропускаются.
func (r *FileSystemRepository) Discover(paths []string, opts entities.DiscoveryOptions) *entities.DiscoveryResult {
	c := &collector{
		opts:   opts,
		result: &entities.DiscoveryResult{},
		seen:   make(map[string]struct{}),
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}

		switch {
		case info.IsDir():
			if opts.Recursive {
				c.walk(p)
			} else {
				c.readDir(p)
			}
		case info.Mode().IsRegular():
			if !opts.MatchDot && entities.IsHidden(filepath.Base(p)) {
				continue
			}
			c.add(p, info)
		}
	}

	return c.result
}

// Open открывает файл для чтения
func (r *FileSystemRepository) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ReplaceFile пишет новое содержимое во временный файл рядом с оригиналом
// и переименовывает его поверх оригинала. При ошибке оригинал не меняется.
func (r *FileSystemRepository) ReplaceFile(path string, write func(w io.Writer) error) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("не удалось получить информацию о файле %s: %w", path, err)
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("не удалось создать временный файл: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func(cause error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return cause
	}

	if err := write(tmp); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("не удалось записать временный файл: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось закрыть временный файл: %w", err)
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось установить права доступа: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось заменить файл %s: %w", path, err)
	}
	return nil
}

// collector накапливает кандидатов без дубликатов
type collector struct {
	opts   entities.DiscoveryOptions
	result *entities.DiscoveryResult
	seen   map[string]struct{}
}

// readDir добавляет изображения, лежащие непосредственно в директории
func (c *collector) readDir(root string) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !c.opts.MatchDot && entities.IsHidden(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		// os.Stat разыменовывает символические ссылки
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		c.add(path, info)
	}
}

// walk рекурсивно обходит директорию
func (c *collector) walk(root string) {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path != root && !c.opts.MatchDot && entities.IsHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		c.add(path, info)
		return nil
	})
}

func (c *collector) add(path string, info os.FileInfo) {
	if !entities.IsImageFile(path) {
		return
	}

	path = filepath.Clean(path)
	if _, ok := c.seen[path]; ok {
		return
	}
	c.seen[path] = struct{}{}

	if c.opts.SkipEmpty && info.Size() == 0 {
		c.result.Skipped = append(c.result.Skipped, entities.SkippedFile{
			Path:   path,
			Reason: "пустой файл",
		})
		return
	}

	c.result.Files = append(c.result.Files, entities.ImageFile{
		Path: path,
		Size: info.Size(),
	})
}
