package entities

import (
	"math"
	"net/http"
)

// Коды ошибок, которые возвращает сервис в поле error
const (
	APIErrorTooManyRequests = "TooManyRequests"
	APIErrorUnauthorized    = "Unauthorized"
	APIErrorInputMissing    = "InputMissing"
	APIErrorUnsupportedType = "Unsupported media type"
)

// Outcome итог обработки одного файла
type Outcome int

const (
	OutcomeShrunk Outcome = iota
	OutcomeMaxedOut
	OutcomeRateLimited
	OutcomeUnauthorized
	OutcomeEmptyInput
	OutcomeUnsupportedType
	OutcomeOtherError
	OutcomeNoResponse
	OutcomeMalformedResponse
)

// String возвращает название итога
func (o Outcome) String() string {
	switch o {
	case OutcomeShrunk:
		return "Shrunk"
	case OutcomeMaxedOut:
		return "MaxedOut"
	case OutcomeRateLimited:
		return "RateLimited"
	case OutcomeUnauthorized:
		return "Unauthorized"
	case OutcomeEmptyInput:
		return "EmptyInput"
	case OutcomeUnsupportedType:
		return "UnsupportedType"
	case OutcomeOtherError:
		return "OtherError"
	case OutcomeNoResponse:
		return "NoResponse"
	case OutcomeMalformedResponse:
		return "MalformedResponse"
	default:
		return "Unknown"
	}
}

// IsSuccess Shrunk и MaxedOut считаются успешными итогами
func (o Outcome) IsSuccess() bool {
	return o == OutcomeShrunk || o == OutcomeMaxedOut
}

// RemoteAsset ссылка на результат сжатия, используется один раз
type RemoteAsset struct {
	URL        string
	Credential Credential
}

// ShrinkResponse разобранный ответ сервиса на загрузку
type ShrinkResponse struct {
	StatusCode int
	InputSize  int64
	OutputSize int64
	OutputType string
	Asset      RemoteAsset
	ErrorCode  string
	Message    string
	// CompressionCount nil, если заголовок отсутствует
	CompressionCount *int
}

// CompressionResult представляет результат сжатия
type CompressionResult struct {
	CurrentFile      string
	Outcome          Outcome
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64
	SavedSpace       int64
	SavedPercent     int
	// WrittenSize размер файла, записанного на место оригинала
	WrittenSize int64
	Resized     bool
	Usage       *UsageReport
	Message     string
	Error       error
}

// CalculateCompressionRatio вычисляет коэффициент сжатия
func (cr *CompressionResult) CalculateCompressionRatio() {
	if cr.OriginalSize > 0 {
		cr.CompressionRatio = ((float64(cr.OriginalSize) - float64(cr.CompressedSize)) / float64(cr.OriginalSize)) * 100
		cr.SavedSpace = cr.OriginalSize - cr.CompressedSize
		cr.SavedPercent = int(math.Round(100 - 100*float64(cr.CompressedSize)/float64(cr.OriginalSize)))
	}
}

// IsEffective проверяет, было ли сжатие эффективным
func (cr *CompressionResult) IsEffective() bool {
	return cr.Outcome == OutcomeShrunk && cr.SavedSpace > 0
}

// Success проверяет, завершилась ли обработка файла успешно
func (cr *CompressionResult) Success() bool {
	return cr.Outcome.IsSuccess() && cr.Error == nil
}

// Fail переводит результат в ошибочный итог
func (cr *CompressionResult) Fail(outcome Outcome, message string, err error) {
	cr.Outcome = outcome
	cr.Message = message
	cr.Error = err
}

// ApplyShrinkResponse классифицирует ответ сервиса и заполняет результат
func (cr *CompressionResult) ApplyShrinkResponse(resp *ShrinkResponse) {
	if resp.StatusCode == http.StatusCreated {
		cr.OriginalSize = resp.InputSize
		cr.CompressedSize = resp.OutputSize
		if resp.OutputSize < resp.InputSize {
			cr.Outcome = OutcomeShrunk
			cr.CalculateCompressionRatio()
		} else {
			cr.Outcome = OutcomeMaxedOut
		}
		return
	}

	cr.Message = resp.Message
	switch resp.ErrorCode {
	case APIErrorTooManyRequests:
		cr.Outcome = OutcomeRateLimited
	case APIErrorUnauthorized:
		cr.Outcome = OutcomeUnauthorized
	case APIErrorInputMissing:
		cr.Outcome = OutcomeEmptyInput
	case APIErrorUnsupportedType:
		cr.Outcome = OutcomeUnsupportedType
	default:
		cr.Outcome = OutcomeOtherError
	}
}
