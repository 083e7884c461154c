package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/models"
)

func TestRecordSession(t *testing.T) {
	m, handler := newTestServer()
	recorded := &models.Session{ID: "sess-1", StudentID: "stu-1", GameID: "sound_safari", PointsEarned: 240}
	m.sessions.On("RecordSession", mock.Anything, mock.AnythingOfType("models.Session")).Return(recorded, nil)

	body := `{"student_id":"stu-1","game_id":"sound_safari","status":"completed","correct_count":10,"total_items":10}`
	rec := doRequest(handler, http.MethodPost, "/api/sessions", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, 240, got.PointsEarned)
}

func TestListSessions_ParsesFilter(t *testing.T) {
	m, handler := newTestServer()
	m.sessions.On("ListSessions", mock.Anything, models.SessionFilter{
		StudentID: "stu-1",
		Status:    "completed",
		Limit:     5,
		Offset:    10,
	}).Return([]models.Session{{ID: "sess-1"}}, 37, nil)

	rec := doRequest(handler, http.MethodGet, "/api/sessions?student_id=stu-1&status=completed&limit=5&offset=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Sessions []models.Session `json:"sessions"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 37, body.Total)
	assert.Len(t, body.Sessions, 1)
	m.sessions.AssertExpectations(t)
}

func TestGetSession(t *testing.T) {
	m, handler := newTestServer()
	m.sessions.On("GetSession", mock.Anything, "sess-1").Return(&models.Session{ID: "sess-1"}, nil)

	rec := doRequest(handler, http.MethodGet, "/api/sessions/sess-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
