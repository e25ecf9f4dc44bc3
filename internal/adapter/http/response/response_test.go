package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var detail ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func TestErrorBuilders(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context) error
		wantCode int
		wantErr  string
	}{
		{
			name:     "bad request",
			fn:       func(c echo.Context) error { return BadRequest(c, "month must be a valid date") },
			wantCode: http.StatusBadRequest,
			wantErr:  CodeInvalidRequest,
		},
		{
			name:     "invalid body",
			fn:       InvalidRequestBody,
			wantCode: http.StatusBadRequest,
			wantErr:  CodeInvalidRequest,
		},
		{
			name:     "gateway timeout",
			fn:       GatewayTimeout,
			wantCode: http.StatusGatewayTimeout,
			wantErr:  CodeTimeout,
		},
		{
			name:     "request cancelled",
			fn:       RequestCancelled,
			wantCode: http.StatusGatewayTimeout,
			wantErr:  CodeTimeout,
		},
		{
			name:     "internal error",
			fn:       InternalServerError,
			wantCode: http.StatusInternalServerError,
			wantErr:  CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(t, tt.fn)

			assert.Equal(t, tt.wantCode, rec.Code)
			detail := decodeDetail(t, rec)
			assert.Equal(t, tt.wantErr, detail.Code)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return ValidationError(c, map[string]string{"origin": "origin is required"})
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeDetail(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, "origin is required", detail.Details["origin"])
}

func TestDispatchFailed(t *testing.T) {
	t.Run("server banner message wins", func(t *testing.T) {
		rec := record(t, func(c echo.Context) error {
			return DispatchFailed(c, "upstream capacity exceeded")
		})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		detail := decodeDetail(t, rec)
		assert.Equal(t, CodeDispatchFailed, detail.Code)
		assert.Equal(t, "upstream capacity exceeded", detail.Message)
	})

	t.Run("generic message without a banner", func(t *testing.T) {
		rec := record(t, func(c echo.Context) error {
			return DispatchFailed(c, "")
		})

		detail := decodeDetail(t, rec)
		assert.Equal(t, MsgDispatchFailed, detail.Message)
	})
}

func TestEnvelopes(t *testing.T) {
	ok := Success(map[string]string{"hello": "world"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)

	fail := Failure(CodeValidationError, MsgValidationFailed, nil)
	assert.False(t, fail.Success)
	require.NotNil(t, fail.Error)
	assert.Equal(t, CodeValidationError, fail.Error.Code)
}
