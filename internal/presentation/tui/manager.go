package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"xtinypng/internal/domain/entities"
)

// UI Configuration constants
const (
	MaxLogBufferSize   = 1000
	LogFlushInterval   = 50 * time.Millisecond
	ProgressBarWidth   = 40
	MaxFileNameLength  = 60
	MaxFileNameDisplay = 57
	ProgressViewHeight = 14
)

// Manager управляет TUI интерфейсом: журнал событий и панель прогресса
type Manager struct {
	app          *tview.Application
	progressView *tview.TextView
	logView      *tview.TextView

	onCancel func()

	logBuffer   []string
	statusMutex sync.Mutex
	isComplete  atomic.Bool
	cancelled   atomic.Bool
	stopped     atomic.Bool

	// Оптимизированный батчинг логов через канал
	logChan  chan string
	logDone  chan struct{}
	logMutex sync.Mutex
}

// NewManager создает новый менеджер TUI
func NewManager() *Manager {
	m := &Manager{
		app:       tview.NewApplication(),
		logBuffer: make([]string, 0, MaxLogBufferSize),
		logChan:   make(chan string, 100),
		logDone:   make(chan struct{}),
	}
	go m.logProcessor()
	return m
}

// Initialize создает компоненты и горячие клавиши
func (m *Manager) Initialize(title string) {
	m.progressView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	m.progressView.SetBorder(true).
		SetTitle("📊 " + title).
		SetTitleAlign(tview.AlignCenter)

	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)
	m.logView.SetBorder(true).
		SetTitle("📋 Журнал событий").
		SetTitleAlign(tview.AlignCenter)

	m.setupKeyBindings()
}

// Run запускает TUI и блокируется до выхода
func (m *Manager) Run() error {
	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.logView, 0, 1, false).
		AddItem(m.progressView, ProgressViewHeight, 0, false)

	err := m.app.SetRoot(layout, true).Run()
	m.stopped.Store(true)
	return err
}

// SetOnCancel устанавливает callback отмены обработки
func (m *Manager) SetOnCancel(callback func()) {
	m.onCancel = callback
}

// SendStatusUpdate отправляет обновление статуса
func (m *Manager) SendStatusUpdate(status entities.ProcessingStatus) {
	if status.IsComplete {
		m.isComplete.Store(true)
	}
	if m.progressView == nil || m.stopped.Load() {
		return
	}

	text := renderProgress(status, m.cancelled.Load())
	m.app.QueueUpdateDraw(func() {
		m.progressView.SetText(text)
	})
}

// MarkComplete следующее нажатие q/Esc закрывает окно
func (m *Manager) MarkComplete() {
	m.isComplete.Store(true)
}

// setupKeyBindings q/Esc/Ctrl-C отменяют обработку, после завершения закрывают окно
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape,
			event.Key() == tcell.KeyCtrlC,
			event.Rune() == 'q', event.Rune() == 'Q':
			m.quitOrCancel()
			return nil
		}
		return event
	})
}

func (m *Manager) quitOrCancel() {
	if m.isComplete.Load() || m.cancelled.Load() {
		m.app.Stop()
		return
	}

	m.cancelled.Store(true)
	m.AddLog("WARNING", "Отмена обработки... повторное нажатие закроет окно")
	if m.onCancel != nil {
		m.onCancel()
	}
}

// renderProgress формирует текст панели прогресса
func renderProgress(status entities.ProcessingStatus, cancelled bool) string {
	phaseText := status.Phase.String()
	if status.Message != "" && !status.IsComplete {
		phaseText = status.Message
	}

	displayFile := truncateFileName(filepath.Base(status.CurrentFile), MaxFileNameLength, MaxFileNameDisplay)

	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]⚙️  Фаза:[white] %s\n", phaseText)
	if displayFile != "." && displayFile != "" {
		fmt.Fprintf(&b, "[yellow]📁 Файл:[white] %s [gray](%s)[white]\n", displayFile, humanize.Bytes(uint64(status.CurrentFileSize)))
	}

	fmt.Fprintf(&b, "[cyan]📊 Прогресс:[white] %s [cyan]%.1f%%[white]\n\n",
		createProgressBar(status.Progress, ProgressBarWidth), status.Progress)

	fmt.Fprintf(&b, "  • Всего: [cyan]%d[white]  • Обработано: [cyan]%d[white]  • Shrunk: [green]%d[white]  • Maxed-Out: [green]%d[white]",
		status.TotalFiles, status.ProcessedFiles, status.ShrunkFiles, status.MaxedOutFiles)
	if status.FailedFiles > 0 {
		fmt.Fprintf(&b, "  • Ошибок: [red]%d[white]", status.FailedFiles)
	}
	if status.SkippedFiles > 0 {
		fmt.Fprintf(&b, "  • Пропущено: [yellow]%d[white]", status.SkippedFiles)
	}
	b.WriteString("\n")

	if status.TotalSavedSpace > 0 {
		fmt.Fprintf(&b, "  • Сэкономлено: [green]%s (%.1f%%)[white]\n",
			humanize.Bytes(uint64(status.TotalSavedSpace)), status.AverageCompression)
	}

	if status.Usage != nil {
		fmt.Fprintf(&b, "  • Compression-Count: [%s]%d[white]\n", bandColor(status.Usage.Band), status.Usage.Count)
	}

	fmt.Fprintf(&b, "\n[yellow]⏱️  Прошло:[white] %s", status.FormatElapsedTime())
	if !status.IsComplete && status.EstimatedTime > 0 {
		fmt.Fprintf(&b, "  [yellow]Осталось:[white] ~%s", status.FormatEstimatedTime())
	}
	b.WriteString("\n\n")

	switch {
	case status.IsComplete && status.Error != nil:
		fmt.Fprintf(&b, "[red]❌ Ошибка: %v[white]\n", status.Error)
		b.WriteString("[yellow]q/ESC[white] - выход")
	case status.IsComplete:
		b.WriteString("[green]✅ Обработка завершена[white]\n")
		b.WriteString("[yellow]q/ESC[white] - выход")
	case cancelled:
		b.WriteString("[yellow]Отмена...[white]")
	default:
		b.WriteString("[yellow]q/ESC[white] - отменить")
	}

	return b.String()
}

// bandColor цвет значения Compression-Count по уровню
func bandColor(band entities.UsageBand) string {
	switch band {
	case entities.BandSafe:
		return "green"
	case entities.BandNotice:
		return "yellow"
	case entities.BandWarning:
		return "orange"
	default:
		return "red"
	}
}

// truncateFileName корректно усекает имя файла с учетом UTF-8
func truncateFileName(fileName string, maxLength, truncateAt int) string {
	runes := []rune(fileName)
	if len(runes) <= maxLength {
		return fileName
	}
	return string(runes[:truncateAt]) + "..."
}

// createProgressBar создает цветной прогресс-бар
func createProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	filled := int(math.Round(progress * float64(width) / 100))
	if filled > width {
		filled = width
	}

	const filledChar = "█"
	const emptyChar = "░"

	var color string
	switch {
	case progress < 25:
		color = "red"
	case progress < 50:
		color = "yellow"
	case progress < 75:
		color = "blue"
	default:
		color = "green"
	}

	return fmt.Sprintf("[%s]%s[gray]%s", color, strings.Repeat(filledChar, filled), strings.Repeat(emptyChar, width-filled))
}

// formatLogLine раскрашивает строку журнала по уровню
func formatLogLine(level, message string) string {
	var color string
	switch strings.ToLower(level) {
	case "error":
		color = "red"
	case "warning":
		color = "yellow"
	case "success":
		color = "green"
	case "debug":
		color = "gray"
	default:
		color = "white"
	}
	return fmt.Sprintf("[%s]%s:[white] %s", color, strings.ToUpper(level), tview.Escape(message))
}

// AddLog добавляет запись в лог через канал (неблокирующе)
func (m *Manager) AddLog(level, message string) {
	select {
	case m.logChan <- formatLogLine(level, message):
	default:
		// Если канал переполнен, пропускаем лог (лучше чем блокировка)
	}
}

// logProcessor обрабатывает логи в отдельной горутине с батчингом
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, 50)

	for {
		select {
		case logLine := <-m.logChan:
			batch = append(batch, logLine)
			if len(batch) >= 20 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-m.logDone:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
			}
			return
		}
	}
}

// flushLogBatch сбрасывает батч логов в UI
func (m *Manager) flushLogBatch(batch []string) {
	m.statusMutex.Lock()
	m.logBuffer = append(m.logBuffer, batch...)
	if len(m.logBuffer) > MaxLogBufferSize {
		m.logBuffer = m.logBuffer[len(m.logBuffer)-MaxLogBufferSize:]
	}
	logText := strings.Join(m.logBuffer, "\n")
	m.statusMutex.Unlock()

	if m.logView == nil || m.stopped.Load() {
		return
	}
	m.app.QueueUpdateDraw(func() {
		m.logView.SetText(logText)
		m.logView.ScrollToEnd()
	})
}

// Cleanup освобождает ресурсы менеджера (идемпотентный)
func (m *Manager) Cleanup() {
	m.logMutex.Lock()
	defer m.logMutex.Unlock()

	m.stopped.Store(true)
	select {
	case <-m.logDone:
		return
	default:
		close(m.logDone)
	}
}
