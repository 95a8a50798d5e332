// Package server exposes the board as a JSON API.
//
// Every request runs on the service dispatcher, so handlers never touch the board
// concurrently.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kanbo/internal/kanban/drag"
	"kanbo/internal/kanban/models"
	"kanbo/internal/kanban/palette"
	"kanbo/internal/kanban/service"
	"kanbo/internal/logs"
	"kanbo/internal/prefs"

	"github.com/gorilla/mux"
)

type Server struct {
	dispatcher *service.Dispatcher
	router     *mux.Router
	now        func() time.Time
}

func New(dispatcher *service.Dispatcher) *Server {
	s := &Server{
		dispatcher: dispatcher,
		router:     mux.NewRouter(),
		now:        time.Now,
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(logRequests)

	api.HandleFunc("/board", s.getBoard).Methods(http.MethodGet)
	api.HandleFunc("/themes", s.getThemes).Methods(http.MethodGet)
	api.HandleFunc("/theme", s.putTheme).Methods(http.MethodPut)
	api.HandleFunc("/prefs", s.getPrefs).Methods(http.MethodGet)
	api.HandleFunc("/prefs", s.putPrefs).Methods(http.MethodPut)

	api.HandleFunc("/columns", s.postColumn).Methods(http.MethodPost)
	api.HandleFunc("/columns/{id}", s.putColumn).Methods(http.MethodPut)
	api.HandleFunc("/columns/{id}", s.deleteColumn).Methods(http.MethodDelete)

	api.HandleFunc("/columns/{id}/cards", s.postCard).Methods(http.MethodPost)
	api.HandleFunc("/columns/{cid}/cards/{id}", s.putCard).Methods(http.MethodPut)
	api.HandleFunc("/columns/{cid}/cards/{id}", s.deleteCard).Methods(http.MethodDelete)

	api.HandleFunc("/drag/begin", s.postDragBegin).Methods(http.MethodPost)
	api.HandleFunc("/drag/drop", s.postDragDrop).Methods(http.MethodPost)
	api.HandleFunc("/drag/end", s.postDragEnd).Methods(http.MethodPost)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logs.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logs.Debugf("[%s] %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// do runs fn on the dispatcher; it writes 503 and returns false if that is impossible
func (s *Server) do(w http.ResponseWriter, r *http.Request, fn func(service.BoardService)) bool {
	if err := s.dispatcher.Do(r.Context(), fn); err != nil {
		logs.Warnf("%s %s not served: %v", r.Method, r.URL.Path, err)
		http.Error(w, "board unavailable", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) boardView(svc service.BoardService) boardView {
	snap := svc.Snapshot()
	now := s.now()
	view := boardView{Theme: svc.Theme(), Columns: make([]columnView, 0, len(snap.Columns))}
	for _, col := range snap.Columns {
		view.Columns = append(view.Columns, newColumnView(col, now))
	}
	session, active := svc.DragSession()
	view.Drag = newDragView(svc.DragState(), session, active, snap.Board())
	return view
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	var view boardView
	if !s.do(w, r, func(svc service.BoardService) { view = s.boardView(svc) }) {
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) getThemes(w http.ResponseWriter, r *http.Request) {
	type themeView struct {
		Name   string      `json:"name"`
		Colors []colorView `json:"colors"`
	}
	var themes []themeView
	for _, name := range palette.Names() {
		pal, _ := palette.Lookup(name)
		view := themeView{Name: name}
		for _, pair := range pal {
			view.Colors = append(view.Colors, colorView{Main: pair.Main, Background: pair.Background})
		}
		themes = append(themes, view)
	}
	writeJSON(w, http.StatusOK, themes)
}

func (s *Server) putTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if !decode(w, r, &req) {
		return
	}
	var applied bool
	var view boardView
	if !s.do(w, r, func(svc service.BoardService) {
		applied = svc.SelectTheme(req.Name)
		view = s.boardView(svc)
	}) {
		return
	}
	writeResult(w, applied, view)
}

func (s *Server) getPrefs(w http.ResponseWriter, r *http.Request) {
	var p prefs.Preferences
	if !s.do(w, r, func(svc service.BoardService) { p = svc.Preferences() }) {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) putPrefs(w http.ResponseWriter, r *http.Request) {
	var req prefsRequest
	if !decode(w, r, &req) {
		return
	}
	var applied bool
	var p prefs.Preferences
	if !s.do(w, r, func(svc service.BoardService) {
		if req.Name != nil && svc.SetUserName(*req.Name) {
			applied = true
		}
		if req.AvatarRef != nil && svc.SetAvatar(*req.AvatarRef) {
			applied = true
		}
		p = svc.Preferences()
	}) {
		return
	}
	writeResult(w, applied, p)
}

func (s *Server) postColumn(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if !decode(w, r, &req) {
		return
	}
	var col models.Column
	var applied bool
	if !s.do(w, r, func(svc service.BoardService) { col, applied = svc.AddColumn(req.Title) }) {
		return
	}
	if !applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, newColumnView(col, s.now()))
}

func (s *Server) putColumn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req titleRequest
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, r, func(svc service.BoardService) bool { return svc.RenameColumn(id, req.Title) })
}

func (s *Server) deleteColumn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mutate(w, r, func(svc service.BoardService) bool { return svc.RemoveColumn(id) })
}

func (s *Server) postCard(w http.ResponseWriter, r *http.Request) {
	columnID := mux.Vars(r)["id"]
	var req textRequest
	if !decode(w, r, &req) {
		return
	}
	var card models.Card
	var applied bool
	if !s.do(w, r, func(svc service.BoardService) { card, applied = svc.AddCard(columnID, req.Text) }) {
		return
	}
	if !applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, newCardView(card, s.now()))
}

func (s *Server) putCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	columnID, cardID := vars["cid"], vars["id"]
	var req cardRequest
	if !decode(w, r, &req) {
		return
	}
	due, err := models.ParseDueDate(req.DueDate)
	if err != nil {
		http.Error(w, "dueDate must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	fields := models.CardFields{Text: req.Text, Description: req.Description, DueDate: due}
	s.mutate(w, r, func(svc service.BoardService) bool { return svc.UpdateCard(columnID, cardID, fields) })
}

func (s *Server) deleteCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	columnID, cardID := vars["cid"], vars["id"]
	s.mutate(w, r, func(svc service.BoardService) bool { return svc.RemoveCard(columnID, cardID) })
}

func (s *Server) postDragBegin(w http.ResponseWriter, r *http.Request) {
	intent, ok := decodeDrag(w, r)
	if !ok {
		return
	}
	cardIndex := 0
	if intent.CardIndex != nil {
		cardIndex = *intent.CardIndex
	}
	begin := drag.BeginDrag{Kind: intent.kind, ColumnIndex: intent.ColumnIndex, CardIndex: cardIndex}
	s.mutate(w, r, func(svc service.BoardService) bool { return svc.Dispatch(begin) })
}

func (s *Server) postDragDrop(w http.ResponseWriter, r *http.Request) {
	intent, ok := decodeDrag(w, r)
	if !ok {
		return
	}
	cardIndex := drag.EndOfList
	if intent.CardIndex != nil {
		cardIndex = *intent.CardIndex
	}
	drop := drag.Drop{Kind: intent.kind, ColumnIndex: intent.ColumnIndex, CardIndex: cardIndex}
	s.mutate(w, r, func(svc service.BoardService) bool { return svc.Dispatch(drop) })
}

func (s *Server) postDragEnd(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(svc service.BoardService) bool { return svc.Dispatch(drag.EndDrag{}) })
}

// mutate answers 200 with the board when fn applied a change and 204 for a no-op
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(service.BoardService) bool) {
	var applied bool
	var view boardView
	if !s.do(w, r, func(svc service.BoardService) {
		applied = fn(svc)
		view = s.boardView(svc)
	}) {
		return
	}
	writeResult(w, applied, view)
}

type parsedDrag struct {
	dragRequest
	kind drag.Kind
}

func decodeDrag(w http.ResponseWriter, r *http.Request) (parsedDrag, bool) {
	var req dragRequest
	if !decode(w, r, &req) {
		return parsedDrag{}, false
	}
	kind, ok := drag.ParseKind(req.Kind)
	if !ok {
		http.Error(w, `kind must be "card" or "column"`, http.StatusBadRequest)
		return parsedDrag{}, false
	}
	return parsedDrag{dragRequest: req, kind: kind}, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logs.Debugf("bad request body for %s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeResult(w http.ResponseWriter, applied bool, v any) {
	if !applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logs.Errorf("encoding response: %v", err)
	}
}
