package friends_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	friendsapi "friendship-offers/internal/api/friends"
	"friendship-offers/internal/domain/friends"
	"friendship-offers/internal/infra/roster"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rs, err := roster.Default()
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/friends/match", friendsapi.NewHandler(friends.NewMatcher(rs)).Match)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/friends/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestMatch(t *testing.T) {
	r := setup(t)

	w := post(r, `{"name":"Shivam Shakya"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp friendsapi.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Matched)
	require.NotNil(t, resp.Friend)
	assert.Equal(t, "Shivam", resp.Friend.DisplayName)
	assert.Equal(t, "Close Friends", resp.Friend.Tier)
}

func TestMatch_NoMatch(t *testing.T) {
	w := post(setup(t), `{"name":"Zzqx"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"matched":false}`, w.Body.String())
}

func TestMatch_MissingName(t *testing.T) {
	r := setup(t)
	for _, body := range []string{`{}`, `{"name":" "}`, ``, `{"name":`} {
		assert.Equal(t, http.StatusBadRequest, post(r, body).Code, body)
	}
}
