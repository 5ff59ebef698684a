package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browserkit/internal/config"
	"browserkit/internal/database"
	"browserkit/internal/logger"
)

type fakeJournal struct {
	sessions []database.SessionRecord
	actions  map[uint][]database.ActionRecord
}

func (f *fakeJournal) ListSessions(limit, offset int) ([]database.SessionRecord, error) {
	return f.sessions, nil
}

func (f *fakeJournal) GetSessionByID(id uint) (*database.SessionRecord, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			return &f.sessions[i], nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (f *fakeJournal) ListActions(sessionID uint) ([]database.ActionRecord, error) {
	return f.actions[sessionID], nil
}

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)

	repo := &fakeJournal{
		sessions: []database.SessionRecord{
			{ID: 1, Headless: true, Status: "running"},
			{ID: 2, Headless: false, Status: "closed"},
		},
		actions: map[uint][]database.ActionRecord{
			1: {
				{ID: 10, SessionID: 1, Action: "navigate", Detail: "https://example.com", Success: true},
				{ID: 11, SessionID: 1, Action: "type", Selector: "#q", Success: false, Error: "элемент не найден"},
			},
		},
	}

	return New(&config.Cfg{}, logger.Nop(), repo)
}

func doRequest(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	newTestServer().router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListSessions(t *testing.T) {
	w := doRequest(t, "/api/sessions")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Sessions []database.SessionRecord `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Sessions, 2)
}

func TestGetSession(t *testing.T) {
	w := doRequest(t, "/api/sessions/1")
	require.Equal(t, http.StatusOK, w.Code)

	var record database.SessionRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, uint(1), record.ID)
	assert.True(t, record.Headless)

	assert.Equal(t, http.StatusNotFound, doRequest(t, "/api/sessions/99").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, "/api/sessions/abc").Code)
}

func TestListActions(t *testing.T) {
	w := doRequest(t, "/api/sessions/1/actions")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Actions []database.ActionRecord `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Actions, 2)
	assert.Equal(t, "navigate", body.Actions[0].Action)
	assert.False(t, body.Actions[1].Success)

	assert.Equal(t, http.StatusBadRequest, doRequest(t, "/api/sessions/abc/actions").Code)
}
