package entities

// UsageBand уровень расхода месячного лимита по заголовку Compression-Count
type UsageBand int

const (
	BandSafe UsageBand = iota
	BandNotice
	BandWarning
	BandCaution
)

// String возвращает название уровня
func (b UsageBand) String() string {
	switch b {
	case BandSafe:
		return "safe"
	case BandNotice:
		return "notice"
	case BandWarning:
		return "warning"
	case BandCaution:
		return "caution"
	default:
		return "unknown"
	}
}

// UsageThresholds верхние границы уровней (включительно)
type UsageThresholds struct {
	SafeMax    int `yaml:"safe_max"`
	NoticeMax  int `yaml:"notice_max"`
	WarningMax int `yaml:"warning_max"`
}

// DefaultUsageThresholds пороги последних версий утилиты
func DefaultUsageThresholds() UsageThresholds {
	return UsageThresholds{
		SafeMax:    325,
		NoticeMax:  375,
		WarningMax: 425,
	}
}

// Validate проверяет, что пороги возрастают
func (t UsageThresholds) Validate() error {
	if t.SafeMax < 0 || t.SafeMax >= t.NoticeMax || t.NoticeMax >= t.WarningMax {
		return ErrInvalidThresholds
	}
	return nil
}

// Classify относит значение счетчика к одному из четырех уровней
func (t UsageThresholds) Classify(count int) UsageBand {
	switch {
	case count <= t.SafeMax:
		return BandSafe
	case count <= t.NoticeMax:
		return BandNotice
	case count <= t.WarningMax:
		return BandWarning
	default:
		return BandCaution
	}
}

// UsageReport значение счетчика вместе с уровнем
type UsageReport struct {
	Count int
	Band  UsageBand
}
