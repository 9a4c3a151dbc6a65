// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/weatherctl/internal/jsonval"
)

func TestSearchSendsTokenAndKeyword(t *testing.T) {
	var gotQuery map[string][]string
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","data":[]}`))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), BaseURL: ts.URL, UserAgent: "weatherctl/0.1"}
	v, err := c.Search(context.Background(), "tok123", "beijing")
	require.NoError(t, err)

	assert.Equal(t, []string{"tok123"}, gotQuery["token"])
	assert.Equal(t, []string{"beijing"}, gotQuery["keyword"])
	assert.Equal(t, "weatherctl/0.1", gotUA)

	require.Equal(t, jsonval.Object, v.Kind)
	assert.Equal(t, jsonval.Value{Kind: jsonval.String, Str: "ok"}, v.Obj["status"])
}

func TestSearchEmptyKeywordStillDispatches(t *testing.T) {
	var hit bool
	var keyword []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		keyword = r.URL.Query()["keyword"]
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), BaseURL: ts.URL}
	_, err := c.Search(context.Background(), "tok", "")
	require.NoError(t, err)
	assert.True(t, hit, "request should be dispatched even with an empty keyword")
	assert.Equal(t, []string{""}, keyword)
}

func TestSearchNoUserAgentHeaderWhenUnset(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`null`))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), BaseURL: ts.URL}
	_, err := c.Search(context.Background(), "tok", "x")
	require.NoError(t, err)
	// net/http sends its own default agent when none is set explicitly.
	assert.Equal(t, "Go-http-client/1.1", gotUA)
}

func TestSearchKeywordNeedsEscaping(t *testing.T) {
	var keyword []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyword = r.URL.Query()["keyword"]
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), BaseURL: ts.URL}
	_, err := c.Search(context.Background(), "tok", "東京&x=1")
	require.NoError(t, err)
	assert.Equal(t, []string{"東京&x=1"}, keyword)
}

func TestSearchTransportFailure(t *testing.T) {
	// Start a server only to learn an address, then close it so the
	// connection is refused.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := ts.URL
	ts.Close()

	c := &Client{HTTP: &http.Client{}, BaseURL: addr}
	_, err := c.Search(context.Background(), "tok", "beijing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a successful request")
}

func TestSearchMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": `))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), BaseURL: ts.URL}
	_, err := c.Search(context.Background(), "tok", "beijing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected the body to be json")
}

func TestSearchAcceptsJSONOnAnyStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"error":"no such city"}`))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), BaseURL: ts.URL}
	v, err := c.Search(context.Background(), "tok", "atlantis")
	require.NoError(t, err)
	require.Equal(t, jsonval.Object, v.Kind)
	assert.Equal(t, "no such city", v.Obj["error"].Str)
}
