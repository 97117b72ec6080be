package controllers

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Options разобранные аргументы командной строки
type Options struct {
	Key       string
	Recursive bool
	Width     string
	Height    string
	Method    string
	UserAgent string
	MatchDot  bool
	Version   bool
	Help      bool

	ConfigPath  string
	Workers     int
	TUI         bool
	StrictKey   bool
	WriteConfig bool

	// Paths файлы и директории, по умолчанию "."
	Paths []string
}

func newFlagSet(o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet("xtinypng", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&o.Key, "key", "", "API ключ")
	fs.StringVar(&o.Key, "k", "", "API ключ")
	fs.BoolVar(&o.Recursive, "recursive", false, "Обходить директории рекурсивно")
	fs.BoolVar(&o.Recursive, "r", false, "Обходить директории рекурсивно")
	fs.StringVar(&o.Width, "width", "", "Ширина после ресайза")
	fs.StringVar(&o.Width, "W", "", "Ширина после ресайза")
	fs.StringVar(&o.Height, "height", "", "Высота после ресайза")
	fs.StringVar(&o.Height, "H", "", "Высота после ресайза")
	fs.StringVar(&o.Method, "method", "", "Метод ресайза { fit, cover, scale, thumb }")
	fs.StringVar(&o.Method, "m", "", "Метод ресайза { fit, cover, scale, thumb }")
	fs.StringVar(&o.UserAgent, "user-agent", "", "Заголовок User-Agent для запросов")
	fs.StringVar(&o.UserAgent, "A", "", "Заголовок User-Agent для запросов")
	fs.BoolVar(&o.MatchDot, "matchdot", false, "Включать файлы, начинающиеся с точки")
	fs.BoolVar(&o.MatchDot, "md", false, "Включать файлы, начинающиеся с точки")
	fs.BoolVar(&o.Version, "version", false, "Показать версию")
	fs.BoolVar(&o.Version, "v", false, "Показать версию")
	fs.BoolVar(&o.Help, "help", false, "Показать справку")
	fs.BoolVar(&o.Help, "h", false, "Показать справку")

	fs.StringVar(&o.ConfigPath, "config", "", "Путь к файлу конфигурации")
	fs.StringVar(&o.ConfigPath, "c", "", "Путь к файлу конфигурации")
	fs.IntVar(&o.Workers, "workers", 0, "Количество параллельных загрузок")
	fs.IntVar(&o.Workers, "j", 0, "Количество параллельных загрузок")
	fs.BoolVar(&o.TUI, "tui", false, "Полноэкранный интерфейс")
	fs.BoolVar(&o.StrictKey, "strict-key", false, "Требовать ключ длиной 32 символа")
	fs.BoolVar(&o.WriteConfig, "write-config", false, "Записать текущую конфигурацию и выйти")

	return fs
}

// ParseOptions разбирает аргументы. Флаги и пути можно перемешивать,
// все после "--" считается путями.
func ParseOptions(args []string) (*Options, error) {
	opts := &Options{}
	fs := newFlagSet(opts)

	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("ошибка разбора аргументов: %w", err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			opts.Paths = append(opts.Paths, rest...)
			break
		}
		opts.Paths = append(opts.Paths, rest[0])
		args = rest[1:]
	}

	if len(opts.Paths) == 0 {
		opts.Paths = []string{"."}
	}
	return opts, nil
}

const usageText = `Использование

  xtinypng <опции> <путь|файл(ы)>

Примеры

  # Все изображения в текущей директории
    xtinypng .
  # Все изображения в 'assets/img', рекурсивно
    xtinypng -r assets/img
  # Одно изображение
    xtinypng assets/img/test.png
  # Ширина 120 с сохранением пропорций
    xtinypng --width 120 assets/img/test.jpg
  # 100x100 методом 'thumb'
    xtinypng -H 100 -W 100 --method thumb thumbnail_360x360.png

Опции

`

const methodsText = `
Методы ресайза

  fit              Пропорционально уменьшает, чтобы изображение поместилось в
                   заданные размеры. Нужны И ширина, И высота.

  cover            Пропорционально уменьшает и обрезает до точных размеров.
                   Нужны И ширина, И высота.

  scale (default)  Пропорционально уменьшает по ИЛИ ширине, ИЛИ высоте.

  thumb            Как cover, но распознает объекты на однотонном фоне и
                   добавляет поля там, где нужно. Нужны И ширина, И высота.

  Изображения меньше заданных размеров не увеличиваются.
`

// PrintUsage печатает справку
func PrintUsage(w io.Writer) {
	fs := newFlagSet(&Options{})

	// короткий и длинный вариант одного флага печатаются одной строкой
	groups := make(map[string][]string)
	var order []string
	fs.VisitAll(func(f *flag.Flag) {
		if _, ok := groups[f.Usage]; !ok {
			order = append(order, f.Usage)
		}
		groups[f.Usage] = append(groups[f.Usage], f.Name)
	})

	fmt.Fprint(w, usageText)
	for _, usage := range order {
		names := groups[usage]
		sort.SliceStable(names, func(i, j int) bool { return len(names[i]) < len(names[j]) })
		for i, name := range names {
			names[i] = "-" + name
			if len(name) > 2 {
				names[i] = "--" + name
			}
		}
		fmt.Fprintf(w, "  %-26s %s\n", strings.Join(names, ", "), usage)
	}
	fmt.Fprint(w, methodsText)
}
