package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// ResizeMethod метод ресайза на стороне сервиса
type ResizeMethod string

const (
	MethodUnset ResizeMethod = ""
	MethodFit   ResizeMethod = "fit"
	MethodCover ResizeMethod = "cover"
	MethodScale ResizeMethod = "scale"
	MethodThumb ResizeMethod = "thumb"
)

// RequiresBothDimensions сообщает, нужны ли методу ширина и высота одновременно
func (m ResizeMethod) RequiresBothDimensions() bool {
	return m == MethodFit || m == MethodCover || m == MethodThumb
}

// ResizeSpec директива ресайза, общая для всех файлов запуска.
// Нулевое значение означает сжатие без изменения размера.
type ResizeSpec struct {
	Method ResizeMethod `json:"method,omitempty"`
	Width  int          `json:"width,omitempty"`
	Height int          `json:"height,omitempty"`
}

// Requested возвращает true, если задана хотя бы одна сторона
func (s ResizeSpec) Requested() bool {
	return s.Width > 0 || s.Height > 0
}

// String возвращает краткое описание директивы для логов
func (s ResizeSpec) String() string {
	if !s.Requested() {
		return "без ресайза"
	}
	w, h := "auto", "auto"
	if s.Width > 0 {
		w = strconv.Itoa(s.Width)
	}
	if s.Height > 0 {
		h = strconv.Itoa(s.Height)
	}
	return fmt.Sprintf("%s %sx%s", s.Method, w, h)
}

// NewResizeSpec разбирает значения флагов -W, -H и -m.
// Пустая строка означает, что флаг не задан.
func NewResizeSpec(width, height, method string) (ResizeSpec, error) {
	var spec ResizeSpec
	var err error

	if spec.Width, err = parseDimension("ширина", width); err != nil {
		return ResizeSpec{}, err
	}
	if spec.Height, err = parseDimension("высота", height); err != nil {
		return ResizeSpec{}, err
	}

	count := 0
	if spec.Width > 0 {
		count++
	}
	if spec.Height > 0 {
		count++
	}

	m := ResizeMethod(strings.ToLower(strings.TrimSpace(method)))
	switch m {
	case MethodFit, MethodCover, MethodThumb:
		if count != 2 {
			return ResizeSpec{}, fmt.Errorf("%w: для метода %s нужны и высота (-H), и ширина (-W)", ErrMissingDimension, m)
		}
	case MethodScale:
		if count != 1 {
			return ResizeSpec{}, fmt.Errorf("%w: для метода %s нужна либо высота (-H), либо ширина (-W)", ErrMissingDimension, m)
		}
	case MethodUnset:
		switch count {
		case 0:
			return ResizeSpec{}, nil
		case 1:
			m = MethodScale
		default:
			m = MethodFit
		}
	default:
		return ResizeSpec{}, fmt.Errorf("%w: %q (допустимо: fit, cover, scale, thumb)", ErrInvalidMethod, method)
	}

	spec.Method = m
	return spec, nil
}

// parseDimension проверяет, что значение - положительное целое число
func parseDimension(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidDimension, name, value)
	}
	return n, nil
}
