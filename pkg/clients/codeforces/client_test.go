package codeforces

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
	mux.HandleFunc("/api/user.info", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tourist", r.URL.Query().Get("handles"))
		_, _ = w.Write([]byte(`{"status":"OK","result":[{"handle":"tourist","firstName":"G","country":"BY","rating":3800,"maxRating":3979,"rank":"legendary grandmaster","maxRank":"legendary grandmaster"}]}`))
	})
	mux.HandleFunc("/api/user.rating", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","result":[{"contestId":1},{"contestId":2},{"contestId":3}]}`))
	})
	mux.HandleFunc("/api/user.status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("from"))
		assert.Equal(t, "100", r.URL.Query().Get("count"))
		// 对同一题的两次 OK 只算一题
		_, _ = w.Write([]byte(`{"status":"OK","result":[
			{"verdict":"OK","problem":{"contestId":100,"index":"A"}},
			{"verdict":"OK","problem":{"contestId":100,"index":"A"}},
			{"verdict":"WRONG_ANSWER","problem":{"contestId":100,"index":"B"}},
			{"verdict":"OK","problem":{"contestId":200,"index":"C"}}
		]}`))
	})

	client := newTestClient(t, mux)
	summary, fetchErr := client.Fetch(context.Background(), "tourist")
	require.Nil(t, fetchErr)

	assert.Equal(t, "tourist", summary.Profile["handle"])
	assert.Equal(t, "legendary grandmaster", summary.Profile["rank"])
	assert.Equal(t, 3800, summary.Activity["current_rating"])
	assert.Equal(t, 3979, summary.Activity["max_rating"])
	assert.Equal(t, 3, summary.Activity["contests_participated"])
	assert.Equal(t, 2, summary.Activity["problems_solved"])
	assert.Equal(t, 4, summary.Activity["total_submissions"])
	assert.Equal(t, "Active", summary.Activity["recent_activity"])
}

func TestFetchUnratedDefaults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user.info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","result":[{"handle":"newbie"}]}`))
	})
	mux.HandleFunc("/api/user.rating", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","result":[]}`))
	})
	mux.HandleFunc("/api/user.status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","result":[]}`))
	})

	client := newTestClient(t, mux)
	summary, fetchErr := client.Fetch(context.Background(), "newbie")
	require.Nil(t, fetchErr)

	assert.Equal(t, "unrated", summary.Profile["rank"])
	assert.Equal(t, "unrated", summary.Profile["max_rank"])
	assert.Equal(t, 0, summary.Activity["current_rating"])
	assert.Equal(t, 0, summary.Activity["problems_solved"])
	assert.Equal(t, "Inactive", summary.Activity["recent_activity"])
}

func TestFetchStatusFailed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user.info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"FAILED","comment":"handles: User with handle nobody not found"}`))
	})

	client := newTestClient(t, mux)
	_, fetchErr := client.Fetch(context.Background(), "nobody")
	require.NotNil(t, fetchErr)
	assert.Equal(t, model.ErrorPlatformNotFound, fetchErr.Code)
}

func TestFetchHTTPNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user.info", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	client := newTestClient(t, mux)
	_, fetchErr := client.Fetch(context.Background(), "nobody")
	require.NotNil(t, fetchErr)
	assert.Equal(t, model.ErrorPlatformNotFound, fetchErr.Code)
}

func TestFetchSecondaryCallsDegrade(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user.info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","result":[{"handle":"solo","rating":1500,"rank":"specialist"}]}`))
	})
	mux.HandleFunc("/api/user.rating", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/user.status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, mux)
	summary, fetchErr := client.Fetch(context.Background(), "solo")
	require.Nil(t, fetchErr)

	assert.Equal(t, 1500, summary.Activity["current_rating"])
	assert.Equal(t, 0, summary.Activity["contests_participated"])
	assert.Equal(t, 0, summary.Activity["total_submissions"])
	assert.Equal(t, "Inactive", summary.Activity["recent_activity"])
}

func TestFetchUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NewServeMux())
	server.Close()

	client := NewClient(httptool.NewHTTPClient(server.URL, clientName, time.Second, nil, false))
	_, fetchErr := client.Fetch(context.Background(), "tourist")
	require.NotNil(t, fetchErr)
	assert.Equal(t, model.ErrorPlatformUnavailable, fetchErr.Code)
}
