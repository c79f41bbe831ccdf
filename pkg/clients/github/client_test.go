package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/priyankahotkar/DevCoach-AI/model"
	"github.com/priyankahotkar/DevCoach-AI/pkg/clients/httptool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(httptool.NewHTTPClient(server.URL, clientName, time.Second, nil, false)), server
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Octo Cat","public_repos":42,"followers":10,"following":3,"created_at":"2015-01-01T00:00:00Z","bio":"dev"}`))
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[
			{"name":"r1","language":"Go","stargazers_count":7},
			{"name":"r2","language":"Rust","stargazers_count":1},
			{"name":"r3","language":"Go","stargazers_count":0},
			{"name":"r4","language":"","stargazers_count":2}
		]`))
	})
	mux.HandleFunc("/users/octo/events", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"type":"PushEvent","payload":{"commits":[{},{},{}]}},
			{"type":"WatchEvent","payload":{}},
			{"type":"PushEvent","payload":{"commits":[{}]}}
		]`))
	})

	client, _ := newTestClient(t, mux)
	summary, fetchErr := client.Fetch(context.Background(), "octo")
	require.Nil(t, fetchErr)

	assert.Equal(t, "Octo Cat", summary.Profile["name"])
	assert.Equal(t, 42, summary.Profile["public_repos"])
	assert.Equal(t, 10, summary.Activity["total_stars"])
	assert.Equal(t, 4, summary.Activity["recent_commits"])

	// 无语言的仓库不计入语言统计，但计入最近仓库
	languages := summary.Activity["top_languages"].([]model.LanguageCount)
	assert.Equal(t, []model.LanguageCount{{Language: "Go", Count: 2}, {Language: "Rust", Count: 1}}, languages)

	repos := summary.Activity["recent_repos"].([]model.RepoSummary)
	require.Len(t, repos, 4)
	assert.Equal(t, "r1", repos[0].Name)
}

func TestFetchUserNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/nobody", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client, _ := newTestClient(t, mux)
	_, fetchErr := client.Fetch(context.Background(), "nobody")
	require.NotNil(t, fetchErr)
	assert.Equal(t, model.ErrorPlatformNotFound, fetchErr.Code)
	assert.Contains(t, fetchErr.Message, "nobody")
}

func TestFetchUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NewServeMux())
	server.Close()

	client := NewClient(httptool.NewHTTPClient(server.URL, clientName, time.Second, nil, false))
	_, fetchErr := client.Fetch(context.Background(), "octo")
	require.NotNil(t, fetchErr)
	assert.Equal(t, model.ErrorPlatformUnavailable, fetchErr.Code)
}

func TestFetchSecondaryCallsDegrade(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Octo Cat","public_repos":1}`))
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/users/octo/events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, _ := newTestClient(t, mux)
	summary, fetchErr := client.Fetch(context.Background(), "octo")
	require.Nil(t, fetchErr)

	assert.Equal(t, 0, summary.Activity["total_stars"])
	assert.Equal(t, 0, summary.Activity["recent_commits"])
	assert.Empty(t, summary.Activity["top_languages"])
	assert.Empty(t, summary.Activity["recent_repos"])
}

func TestTopLanguagesOrdering(t *testing.T) {
	// 数量 {Go:3, Rust:5, Python:5}，按数量降序，数量相同保持出现顺序
	order := []string{"Go", "Rust", "Python"}
	counts := map[string]int{"Go": 3, "Rust": 5, "Python": 5}

	ret := topLanguages(order, counts)
	assert.Equal(t, []model.LanguageCount{
		{Language: "Rust", Count: 5},
		{Language: "Python", Count: 5},
		{Language: "Go", Count: 3},
	}, ret)
}

func TestTopLanguagesLimit(t *testing.T) {
	order := []string{"a", "b", "c", "d", "e", "f", "g"}
	counts := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7}

	ret := topLanguages(order, counts)
	require.Len(t, ret, 5)
	assert.Equal(t, "g", ret[0].Language)
}
