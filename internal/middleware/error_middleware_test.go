package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", apperrors.NewResourceNotFoundError("Event not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"payment already settled", apperrors.ErrPaymentAlreadyPaid, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"validation", apperrors.NewValidationError("birthDate must be YYYY-MM-DD"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"uncovered discipline", apperrors.ErrMartialArtNotCovered, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"unknown error", errors.New("pq: connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		status, detail := classifyError(tt.err)
		if status != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.name, status, tt.wantStatus)
		}
		if detail.Code != tt.wantCode {
			t.Errorf("%s: code = %s, want %s", tt.name, detail.Code, tt.wantCode)
		}
	}
}

func TestClassifyErrorHidesInternalMessage(t *testing.T) {
	_, detail := classifyError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))
	if detail.Message != "An unexpected error occurred" {
		t.Fatalf("internal message leaked: %q", detail.Message)
	}
}

func TestClassifyErrorKeepsCustomMessage(t *testing.T) {
	err := apperrors.NewValidationError("expiryDate must be YYYY-MM-DD")
	_, detail := classifyError(err)
	if detail.Message != "expiryDate must be YYYY-MM-DD" {
		t.Fatalf("message = %q, want the custom one", detail.Message)
	}
}
