// Package serve hosts the story service over HTTP, backed by the local
// story store. It speaks the same envelope the publish client expects,
// so an editor pointed at this server with --api behaves exactly like
// one pointed at the hosted service.
package serve

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"inkwell/internal/publish"
	"inkwell/internal/store"
)

type ServerConfig struct {
	Addr string
}

type Server struct {
	cfg ServerConfig
	st  *store.Store
}

func NewServer(cfg ServerConfig, st *store.Store) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	return &Server{cfg: cfg, st: st}
}

// envelope wraps every response. errCode "0" with data true (or a
// payload) is success; anything else carries errMsg.
type envelope struct {
	ErrCode string `json:"errCode"`
	ErrMsg  string `json:"errMsg"`
	Data    any    `json:"data"`
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/storyManage/add", s.handleAdd)
	mux.HandleFunc("/storyManage/list", s.handleList)
	return mux
}

// ListenAndServe blocks until the context is cancelled or the listener
// fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
		return ctx.Err()
	case err := <-errc:
		return err
	}
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeEnvelope(w, envelope{ErrCode: "40005", ErrMsg: "method not allowed", Data: false})
		return
	}
	var sub publish.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeEnvelope(w, envelope{ErrCode: "40000", ErrMsg: "bad request body", Data: false})
		return
	}
	if strings.TrimSpace(sub.Title) == "" {
		writeEnvelope(w, envelope{ErrCode: "40001", ErrMsg: "title required", Data: false})
		return
	}
	if _, err := s.st.Add(r.Context(), store.Story{
		Title:    sub.Title,
		Content:  sub.Content,
		CoverImg: sub.CoverImg,
		Category: sub.Category,
		Summary:  sub.Summary,
	}); err != nil {
		writeEnvelope(w, envelope{ErrCode: "50000", ErrMsg: err.Error(), Data: false})
		return
	}
	writeEnvelope(w, envelope{ErrCode: "0", Data: true})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeEnvelope(w, envelope{ErrCode: "40005", ErrMsg: "method not allowed", Data: false})
		return
	}
	stories, err := s.st.List(r.Context())
	if err != nil {
		writeEnvelope(w, envelope{ErrCode: "50000", ErrMsg: err.Error(), Data: false})
		return
	}
	type item struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Summary   string `json:"summary"`
		CoverImg  string `json:"coverImg"`
		Category  string `json:"category"`
		CreatedAt string `json:"createdAt"`
	}
	out := make([]item, 0, len(stories))
	for _, st := range stories {
		out = append(out, item{
			ID:        st.ID,
			Title:     st.Title,
			Summary:   st.Summary,
			CoverImg:  st.CoverImg,
			Category:  st.Category,
			CreatedAt: st.CreatedAt.Format(time.RFC3339),
		})
	}
	writeEnvelope(w, envelope{ErrCode: "0", Data: out})
}

func writeEnvelope(w http.ResponseWriter, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(env)
}
