package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
	}{
		{
			"validation error",
			apperrors.NewValidationError("content too long"),
			http.StatusBadRequest, dto.ErrorCodeValidationFailed, "content too long",
		},
		{
			"not found",
			apperrors.NewResourceNotFoundError("post not found"),
			http.StatusNotFound, dto.ErrorCodeResourceNotFound, "post not found",
		},
		{
			"permission denied",
			apperrors.NewForbiddenError("not yours"),
			http.StatusForbidden, dto.ErrorCodeForbidden, "not yours",
		},
		{
			"self action",
			apperrors.NewSelfActionError("you cannot report your own post"),
			http.StatusConflict, dto.ErrorCodeResourceInvalid, "you cannot report your own post",
		},
		{
			"conflict",
			apperrors.NewConflictError("you already reported this content"),
			http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "you already reported this content",
		},
		{
			"bare sentinel gets a default message",
			apperrors.ErrValidationFailed,
			http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed",
		},
		{
			"unknown error",
			errors.New("pool exhausted"),
			http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.wantStatus, recorder.Code)

			var body dto.APIResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantCode, body.Error.Code)
			assert.Equal(t, tc.wantMsg, body.Error.Message)
		})
	}
}
