package engagement_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"friendship-offers/internal/api/engagement"
	"friendship-offers/internal/infra/mail"
	"friendship-offers/internal/infra/mail/mailtest"
	"friendship-offers/internal/notify"
)

func setup(t *testing.T, sendErr error, policy notify.Policy, log *zap.Logger) (*gin.Engine, *mailtest.Sender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sender := &mailtest.Sender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(sendErr)
	n := notify.New(sender, "owner@example.com", zap.NewNop())

	h := engagement.NewHandler(n, policy, log)
	r := gin.New()
	r.POST("/api/show-more", h.ShowMore)
	return r, sender
}

func post(r *gin.Engine, body string) (*httptest.ResponseRecorder, engagement.Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/show-more", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp engagement.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestShowMore_Success(t *testing.T) {
	r, sender := setup(t, nil, notify.DispatchBestEffort, zap.NewNop())

	w, resp := post(r, `{"userName":"Palak","tierName":"BFF (Best Friend Forever)"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Show more tracked successfully!", resp.Message)
	require.Len(t, sender.Sent(), 1)
	assert.Equal(t, "👀 Palak viewed BFF (Best Friend Forever) features", sender.Sent()[0].Subject)
}

func TestShowMore_DispatchFailureStillSucceeds(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r, _ := setup(t, errors.Join(mail.ErrSendFailed, errors.New("timeout")), notify.DispatchBestEffort, zap.New(core))

	w, resp := post(r, `{"userName":"Palak","tierName":"GF"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Tracked locally", resp.Message)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "best-effort", logs.All()[0].ContextMap()["policy"])
}

func TestShowMore_NoBody(t *testing.T) {
	r, sender := setup(t, nil, notify.DispatchBestEffort, zap.NewNop())

	w, resp := post(r, `not json`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.Len(t, sender.Sent(), 1)
	assert.Equal(t, "👀 Someone viewed unknown features", sender.Sent()[0].Subject)
}

func TestShowMore_StrictPolicy(t *testing.T) {
	r, _ := setup(t, mail.ErrSendFailed, notify.DispatchStrict, zap.NewNop())

	w, resp := post(r, `{"userName":"Palak","tierName":"GF"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, resp.Success)
}
