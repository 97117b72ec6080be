package entities

import (
	"path/filepath"
	"strings"
)

// ImageFile PNG или JPEG файл, отобранный для сжатия
type ImageFile struct {
	Path string
	Size int64
}

// SkippedFile файл, подходящий по расширению, но исключенный из обработки
type SkippedFile struct {
	Path   string
	Reason string
}

// DiscoveryOptions параметры поиска изображений
type DiscoveryOptions struct {
	Recursive bool
	MatchDot  bool
	SkipEmpty bool
}

// DiscoveryResult итог поиска. Files без дубликатов, в порядке обнаружения.
type DiscoveryResult struct {
	Files   []ImageFile
	Skipped []SkippedFile
}

// TotalSize суммарный размер найденных файлов
func (r *DiscoveryResult) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}

// IsImageFile проверяет, является ли файл изображением поддерживаемого формата
func IsImageFile(filename string) bool {
	return GetImageFormat(filename) != ""
}

// GetImageFormat возвращает формат изображения по расширению файла
func GetImageFormat(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	default:
		return ""
	}
}

// IsHidden проверяет, начинается ли имя с точки
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
