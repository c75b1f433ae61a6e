package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

func TestKindForStatus(t *testing.T) {
	cases := []struct {
		status int
		want   domain.APIErrorKind
	}{
		{400, domain.APIErrorBadRequest},
		{401, domain.APIErrorAuthentication},
		{403, domain.APIErrorPermission},
		{404, domain.APIErrorNotFound},
		{408, domain.APIErrorTimeout},
		{409, domain.APIErrorConflict},
		{422, domain.APIErrorUnprocessable},
		{429, domain.APIErrorRateLimit},
		{500, domain.APIErrorInternal},
		{502, domain.APIErrorInternal},
		{503, domain.APIErrorInternal},
		{418, domain.APIErrorUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, kindForStatus(tc.status), "status %d", tc.status)
	}
}

func TestAPIErrorFromResponse_ExtractsMessage(t *testing.T) {
	body := []byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`)

	apiErr := apiErrorFromResponse(429, body)

	assert.Equal(t, domain.APIErrorRateLimit, apiErr.Kind)
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.Equal(t, "You exceeded your current quota", apiErr.Message)
}

func TestAPIErrorFromResponse_UnparsableBody(t *testing.T) {
	apiErr := apiErrorFromResponse(500, []byte("<html>bad gateway</html>"))

	assert.Equal(t, domain.APIErrorInternal, apiErr.Kind)
	assert.Empty(t, apiErr.Message)
}

type fakeNetErr struct{ timeout bool }

func (e *fakeNetErr) Error() string   { return "net failure" }
func (e *fakeNetErr) Timeout() bool   { return e.timeout }
func (e *fakeNetErr) Temporary() bool { return false }

func TestTransportError(t *testing.T) {
	conn := transportError(&fakeNetErr{timeout: false})
	assert.Equal(t, domain.APIErrorConnection, conn.Kind)

	timeout := transportError(&fakeNetErr{timeout: true})
	assert.Equal(t, domain.APIErrorTimeout, timeout.Kind)

	deadline := transportError(context.DeadlineExceeded)
	assert.Equal(t, domain.APIErrorTimeout, deadline.Kind)

	wrapped := transportError(errors.New("refused"))
	assert.Equal(t, domain.APIErrorConnection, wrapped.Kind)
	require.Error(t, wrapped.Err)
}
