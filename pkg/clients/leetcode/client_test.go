package leetcode

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

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(httptool.NewHTTPClient(server.URL, clientName, time.Second, nil, false))
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/coder", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"username": "coder",
			"profile": {
				"realName": "Jane Doe",
				"ranking": 12345,
				"reputation": 8,
				"githubUrl": "https://github.com/coder",
				"aboutMe": "hi",
				"contributionPoints": 99
			},
			"submitStats": {
				"acSubmissionNum": [
					{"difficulty": "All", "count": 50},
					{"difficulty": "Easy", "count": 30},
					{"difficulty": "Medium", "count": 15},
					{"difficulty": "Hard", "count": 5},
					{"difficulty": "Weird", "count": 1}
				],
				"totalSubmissionNum": [
					{"difficulty": "All", "count": 50, "submissions": 200}
				]
			}
		}`))
	})

	client := newTestClient(t, mux)
	summary, fetchErr := client.Fetch(context.Background(), "coder")
	require.Nil(t, fetchErr)

	assert.Equal(t, "coder", summary.Profile["username"])
	assert.Equal(t, "Jane Doe", summary.Profile["real_name"])
	assert.Equal(t, 12345, summary.Profile["ranking"])

	assert.Equal(t, 50, summary.Activity["total_solved"])
	assert.Equal(t, 30, summary.Activity["easy_solved"])
	assert.Equal(t, 15, summary.Activity["medium_solved"])
	assert.Equal(t, 5, summary.Activity["hard_solved"])
	assert.Equal(t, "25.0%", summary.Activity["acceptance_rate"])
	assert.Equal(t, 99, summary.Activity["contribution_points"])
}

func TestFetchDefaults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/fresh", func(w http.ResponseWriter, r *http.Request) {
		// 没有 ranking、realName，也没有 "All" 的提交统计
		_, _ = w.Write([]byte(`{"username":"fresh","profile":{},"submitStats":{"acSubmissionNum":[],"totalSubmissionNum":[]}}`))
	})

	client := newTestClient(t, mux)
	summary, fetchErr := client.Fetch(context.Background(), "fresh")
	require.Nil(t, fetchErr)

	assert.Equal(t, "Unknown", summary.Profile["real_name"])
	assert.Equal(t, "N/A", summary.Profile["ranking"])
	assert.Equal(t, 0, summary.Activity["total_solved"])
	assert.Equal(t, "0%", summary.Activity["acceptance_rate"])
}

func TestFetchNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/nobody", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := newTestClient(t, mux)
	_, fetchErr := client.Fetch(context.Background(), "nobody")
	require.NotNil(t, fetchErr)
	assert.Equal(t, model.ErrorPlatformNotFound, fetchErr.Code)
}

func TestFetchUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NewServeMux())
	server.Close()

	client := NewClient(httptool.NewHTTPClient(server.URL, clientName, time.Second, nil, false))
	_, fetchErr := client.Fetch(context.Background(), "coder")
	require.NotNil(t, fetchErr)
	assert.Equal(t, model.ErrorPlatformUnavailable, fetchErr.Code)
}

func TestAcceptanceRate(t *testing.T) {
	// accepted 为 0 时固定 "0%"，提交数缺省按 1 处理
	assert.Equal(t, "0%", acceptanceRate(0, 1))
	assert.Equal(t, "0%", acceptanceRate(0, 100))
	assert.Equal(t, "25.0%", acceptanceRate(50, 200))
	assert.Equal(t, "33.3%", acceptanceRate(1, 3))
	assert.Equal(t, "100.0%", acceptanceRate(5, 0))
}
