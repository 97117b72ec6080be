package entities_test

import (
	"net/http"
	"testing"

	"xtinypng/internal/domain/entities"
)

func TestCompressionResult_CalculateCompressionRatio(t *testing.T) {
	tests := []struct {
		name                 string
		originalSize         int64
		compressedSize       int64
		expectedRatio        float64
		expectedSavedSpace   int64
		expectedSavedPercent int
	}{
		{
			name:                 "60% compression",
			originalSize:         1000,
			compressedSize:       400,
			expectedRatio:        60.0,
			expectedSavedSpace:   600,
			expectedSavedPercent: 60,
		},
		{
			name:                 "40% compression",
			originalSize:         5000,
			compressedSize:       3000,
			expectedRatio:        40.0,
			expectedSavedSpace:   2000,
			expectedSavedPercent: 40,
		},
		{
			name:                 "Rounded percent",
			originalSize:         3,
			compressedSize:       2,
			expectedRatio:        100.0 / 3,
			expectedSavedSpace:   1,
			expectedSavedPercent: 33,
		},
		{
			name:                 "No compression",
			originalSize:         1000,
			compressedSize:       1000,
			expectedRatio:        0.0,
			expectedSavedSpace:   0,
			expectedSavedPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &entities.CompressionResult{
				OriginalSize:   tt.originalSize,
				CompressedSize: tt.compressedSize,
			}

			result.CalculateCompressionRatio()

			if diff := result.CompressionRatio - tt.expectedRatio; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Expected compression ratio %f, got %f", tt.expectedRatio, result.CompressionRatio)
			}
			if result.SavedSpace != tt.expectedSavedSpace {
				t.Errorf("Expected saved space %d, got %d", tt.expectedSavedSpace, result.SavedSpace)
			}
			if result.SavedPercent != tt.expectedSavedPercent {
				t.Errorf("Expected saved percent %d, got %d", tt.expectedSavedPercent, result.SavedPercent)
			}
		})
	}
}

func TestCompressionResult_ApplyShrinkResponse(t *testing.T) {
	tests := []struct {
		name            string
		response        *entities.ShrinkResponse
		expectedOutcome entities.Outcome
		expectedSaved   int64
		expectedPercent int
	}{
		{
			name:            "Shrunk",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusCreated, InputSize: 1000, OutputSize: 400},
			expectedOutcome: entities.OutcomeShrunk,
			expectedSaved:   600,
			expectedPercent: 60,
		},
		{
			name:            "Maxed out on equal size",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusCreated, InputSize: 1000, OutputSize: 1000},
			expectedOutcome: entities.OutcomeMaxedOut,
		},
		{
			name:            "Maxed out on larger output",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusCreated, InputSize: 1000, OutputSize: 1200},
			expectedOutcome: entities.OutcomeMaxedOut,
		},
		{
			name:            "Rate limited",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusTooManyRequests, ErrorCode: "TooManyRequests"},
			expectedOutcome: entities.OutcomeRateLimited,
		},
		{
			name:            "Unauthorized",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusUnauthorized, ErrorCode: "Unauthorized"},
			expectedOutcome: entities.OutcomeUnauthorized,
		},
		{
			name:            "Empty input",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusBadRequest, ErrorCode: "InputMissing"},
			expectedOutcome: entities.OutcomeEmptyInput,
		},
		{
			name:            "Unsupported type",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusUnsupportedMediaType, ErrorCode: "Unsupported media type"},
			expectedOutcome: entities.OutcomeUnsupportedType,
		},
		{
			name:            "Other error",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusServiceUnavailable, ErrorCode: "ServerError", Message: "try later"},
			expectedOutcome: entities.OutcomeOtherError,
		},
		{
			name:            "Success status other than created",
			response:        &entities.ShrinkResponse{StatusCode: http.StatusOK, InputSize: 1000, OutputSize: 400},
			expectedOutcome: entities.OutcomeOtherError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &entities.CompressionResult{CurrentFile: "a.png"}
			result.ApplyShrinkResponse(tt.response)

			if result.Outcome != tt.expectedOutcome {
				t.Fatalf("Expected outcome %v, got %v", tt.expectedOutcome, result.Outcome)
			}
			if result.SavedSpace != tt.expectedSaved {
				t.Errorf("Expected saved space %d, got %d", tt.expectedSaved, result.SavedSpace)
			}
			if result.SavedPercent != tt.expectedPercent {
				t.Errorf("Expected saved percent %d, got %d", tt.expectedPercent, result.SavedPercent)
			}
			if !tt.expectedOutcome.IsSuccess() && result.Message != tt.response.Message {
				t.Errorf("Expected message %q, got %q", tt.response.Message, result.Message)
			}
		})
	}
}

func TestCompressionResult_IsEffective(t *testing.T) {
	tests := []struct {
		name              string
		result            *entities.CompressionResult
		expectedEffective bool
	}{
		{
			name:              "Effective compression",
			result:            &entities.CompressionResult{Outcome: entities.OutcomeShrunk, SavedSpace: 500},
			expectedEffective: true,
		},
		{
			name:              "Maxed out",
			result:            &entities.CompressionResult{Outcome: entities.OutcomeMaxedOut},
			expectedEffective: false,
		},
		{
			name:              "Failed",
			result:            &entities.CompressionResult{Outcome: entities.OutcomeNoResponse, SavedSpace: 500},
			expectedEffective: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsEffective(); got != tt.expectedEffective {
				t.Errorf("IsEffective() = %v, want %v", got, tt.expectedEffective)
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"a.png", true},
		{"a.PNG", true},
		{"photo.jpg", true},
		{"photo.JpEg", true},
		{"b.txt", false},
		{"archive.png.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := entities.IsImageFile(tt.filename); got != tt.expected {
				t.Errorf("IsImageFile(%q) = %v, want %v", tt.filename, got, tt.expected)
			}
		})
	}
}
