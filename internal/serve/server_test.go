package serve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/internal/publish"
	"inkwell/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st, err := store.Open(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	srv := httptest.NewServer(NewServer(ServerConfig{}, st).Handler())
	t.Cleanup(srv.Close)
	return srv, st
}

// The publish client and the server speak the same protocol end to end.
func TestAdd_ViaPublishClient(t *testing.T) {
	t.Parallel()

	srv, st := newTestServer(t)
	c := publish.NewClient(srv.URL, nil)
	err := c.Publish(context.Background(), publish.Submission{
		Title:    "Served",
		Content:  "# Served",
		Category: "1",
		Summary:  "Served",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	list, err := st.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Served" {
		t.Fatalf("stored = %+v", list)
	}
}

func TestAdd_RejectsMissingTitle(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	err := publish.NewClient(srv.URL, nil).Publish(context.Background(), publish.Submission{Content: "x"})
	if err == nil || !strings.Contains(err.Error(), "title required") {
		t.Fatalf("err = %v", err)
	}
}

func TestList_ReturnsEnvelope(t *testing.T) {
	t.Parallel()

	srv, st := newTestServer(t)
	if _, err := st.Add(context.Background(), store.Story{Title: "A", Content: "a"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	resp, err := http.Get(srv.URL + "/storyManage/list")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var env struct {
		ErrCode string `json:"errCode"`
		Data    []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.ErrCode != "0" || len(env.Data) != 1 || env.Data[0].Title != "A" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestAdd_RejectsGet(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/storyManage/add")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var env struct {
		ErrCode string `json:"errCode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.ErrCode == "0" {
		t.Fatalf("GET accepted on add endpoint")
	}
}
