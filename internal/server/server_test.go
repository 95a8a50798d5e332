package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kanbo/internal/kanban/ids"
	"kanbo/internal/kanban/models"
	"kanbo/internal/kanban/service"
	"kanbo/internal/prefs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *prefs.MemoryStore) {
	t.Helper()
	store := &prefs.MemoryStore{}
	svc := service.NewBoardService(service.Options{
		Content: []models.Column{
			{Title: "To Do", Cards: []models.Card{{Text: "A"}, {Text: "B"}}},
			{Title: "Done"},
		},
		Generator: &ids.Sequence{Prefix: "id"},
		Store:     store,
	})

	d := service.NewDispatcher(svc)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	s := New(d)
	s.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s, store
}

func request(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func getBoard(t *testing.T, s *Server) boardView {
	t.Helper()
	rec := request(t, s, http.MethodGet, "/api/board", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view boardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func cardTexts(col columnView) []string {
	out := []string{}
	for _, c := range col.Cards {
		out = append(out, c.Text)
	}
	return out
}

func TestGetBoard(t *testing.T) {
	s, _ := newTestServer(t)

	view := getBoard(t, s)

	assert.Equal(t, "Default", view.Theme)
	require.Len(t, view.Columns, 2)
	assert.Equal(t, "To Do", view.Columns[0].Title)
	assert.Equal(t, []string{"A", "B"}, cardTexts(view.Columns[0]))
	assert.Equal(t, "#4A90E2", view.Columns[0].Color.Main)
	assert.Equal(t, "none", view.Columns[0].Cards[0].DueStatus)
	assert.Equal(t, "idle", view.Drag.State)
}

func TestColumnsAndCards(t *testing.T) {
	s, _ := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/api/columns", `{"title":"Review"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var col columnView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &col))
	assert.Equal(t, "Review", col.Title)

	rec = request(t, s, http.MethodPost, "/api/columns", `{"title":"   "}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, s, http.MethodPut, "/api/columns/"+col.ID, `{"title":"Code Review"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, s, http.MethodPost, "/api/columns/"+col.ID+"/cards", `{"text":"Check PR"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var card cardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))

	rec = request(t, s, http.MethodPut, "/api/columns/"+col.ID+"/cards/"+card.ID,
		`{"text":"Check PR #2","description":"soon","dueDate":"2026-05-01"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	view := getBoard(t, s)
	require.Len(t, view.Columns, 3)
	assert.Equal(t, "Code Review", view.Columns[2].Title)
	updated := view.Columns[2].Cards[0]
	assert.Equal(t, "Check PR #2", updated.Text)
	assert.Equal(t, "2026-05-01", updated.DueDate)
	assert.Equal(t, "overdue", updated.DueStatus)

	rec = request(t, s, http.MethodPut, "/api/columns/"+col.ID+"/cards/"+card.ID, `{"dueDate":"May 1st"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request(t, s, http.MethodDelete, "/api/columns/"+col.ID+"/cards/"+card.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = request(t, s, http.MethodDelete, "/api/columns/"+col.ID+"/cards/"+card.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, s, http.MethodDelete, "/api/columns/"+col.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, getBoard(t, s).Columns, 2)
}

func TestDragFlow(t *testing.T) {
	s, _ := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/api/drag/begin", `{"kind":"card","columnIndex":0,"cardIndex":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var view boardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "dragging-card", view.Drag.State)
	assert.Equal(t, view.Columns[0].Cards[0].ID, view.Drag.CardID)

	// cardIndex omitted drops at the end of the list
	rec = request(t, s, http.MethodPost, "/api/drag/drop", `{"kind":"card","columnIndex":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, s, http.MethodPost, "/api/drag/end", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view = getBoard(t, s)
	assert.Equal(t, []string{"B"}, cardTexts(view.Columns[0]))
	assert.Equal(t, []string{"A"}, cardTexts(view.Columns[1]))
	assert.Equal(t, "idle", view.Drag.State)
}

func TestDragKindMismatch(t *testing.T) {
	s, _ := newTestServer(t)

	request(t, s, http.MethodPost, "/api/drag/begin", `{"kind":"column","columnIndex":0}`)
	rec := request(t, s, http.MethodPost, "/api/drag/drop", `{"kind":"card","columnIndex":1,"cardIndex":0}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, s, http.MethodPost, "/api/drag/drop", `{"kind":"column","columnIndex":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Done", getBoard(t, s).Columns[0].Title)
}

func TestDragReportsLiveIndices(t *testing.T) {
	s, _ := newTestServer(t)
	done := getBoard(t, s).Columns[1]

	request(t, s, http.MethodPost, "/api/drag/begin", `{"kind":"card","columnIndex":0,"cardIndex":0}`)
	rec := request(t, s, http.MethodPost, "/api/drag/drop", `{"kind":"card","columnIndex":1,"cardIndex":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view boardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "dragging-card", view.Drag.State)
	assert.Equal(t, done.ID, view.Drag.ColumnID)
	require.NotNil(t, view.Drag.ColumnIndex)
	require.NotNil(t, view.Drag.CardIndex)
	assert.Equal(t, 1, *view.Drag.ColumnIndex)
	assert.Equal(t, 0, *view.Drag.CardIndex)

	// The card is already the last one in Done
	rec = request(t, s, http.MethodPost, "/api/drag/drop", `{"kind":"card","columnIndex":1}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBadRequests(t *testing.T) {
	s, _ := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, request(t, s, http.MethodPost, "/api/columns", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, request(t, s, http.MethodPost, "/api/drag/begin", `{"kind":"row"}`).Code)
	assert.Equal(t, http.StatusNotFound, request(t, s, http.MethodGet, "/api/nothing", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, request(t, s, http.MethodPatch, "/api/board", "").Code)
}

func TestThemesAndPrefs(t *testing.T) {
	s, store := newTestServer(t)

	rec := request(t, s, http.MethodGet, "/api/themes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var themes []struct {
		Name   string      `json:"name"`
		Colors []colorView `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &themes))
	require.Len(t, themes, 5)
	assert.Equal(t, "Default", themes[0].Name)
	assert.Len(t, themes[0].Colors, 5)

	rec = request(t, s, http.MethodPut, "/api/theme", `{"name":"France"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#0055a4", getBoard(t, s).Columns[0].Color.Main)

	rec = request(t, s, http.MethodPut, "/api/theme", `{"name":"Mars"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, s, http.MethodPut, "/api/prefs", `{"name":"  Lin  ","avatarRef":"me.png"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, s, http.MethodGet, "/api/prefs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var p prefs.Preferences
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, prefs.Preferences{Name: "Lin", AvatarRef: "me.png", Theme: "France"}, p)

	stored, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "Lin", stored.Name)

	rec = request(t, s, http.MethodPut, "/api/prefs", `{"name":"   "}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
