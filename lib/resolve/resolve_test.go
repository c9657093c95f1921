package resolve

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pagepack/lib/discover"
	"pagepack/lib/fetch"

	"github.com/stretchr/testify/require"
)

func TestResolveOrderStableUnderConcurrency(t *testing.T) {
	// the first resource finishes last; output order must still be
	// input order
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow.css" {
			time.Sleep(100 * time.Millisecond)
		}
		fmt.Fprintf(w, "body of %s", r.URL.Path)
	}))
	defer server.Close()

	refs := []discover.Reference{
		{Kind: discover.External, Label: server.URL + "/slow.css", Locator: server.URL + "/slow.css"},
		{Kind: discover.Inline, Label: "<style> inline #1", RawContent: ".x{}"},
		{Kind: discover.External, Label: server.URL + "/fast.css", Locator: server.URL + "/fast.css"},
	}

	out := Resolve(context.Background(), fetch.NewClient(), refs)
	require.Len(t, out, 3)
	require.Equal(t, "body of /slow.css", out[0].Text)
	require.Equal(t, ".x{}", out[1].Text)
	require.Equal(t, "body of /fast.css", out[2].Text)
	for _, c := range out {
		require.True(t, c.OK)
	}
}

func TestResolveToleratesFailedFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.js" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	refs := []discover.Reference{
		{Kind: discover.External, Label: "good", Locator: server.URL + "/good.js"},
		{Kind: discover.External, Label: "missing", Locator: server.URL + "/missing.js"},
	}

	out := Resolve(context.Background(), fetch.NewClient(), refs)
	require.Len(t, out, 2)
	require.True(t, out[0].OK)
	require.False(t, out[1].OK)
	require.Equal(t, "", out[1].Text)
}

func TestMergeStyle(t *testing.T) {
	merged := Merge([]Content{
		{SourceLabel: "https://example.com/a.css", Text: "a{}", OK: true},
		{SourceLabel: "<style> inline #1", Text: "body{color:red}", OK: true},
	}, discover.Style)

	require.Equal(t,
		"/* https://example.com/a.css */\na{}\n\n/* <style> inline #1 */\nbody{color:red}",
		merged)
}

func TestMergeScriptSkipsFailed(t *testing.T) {
	merged := Merge([]Content{
		{SourceLabel: "one", Text: "var a;", OK: true},
		{SourceLabel: "broken", OK: false},
		{SourceLabel: "two", Text: "var b;", OK: true},
	}, discover.Script)

	require.Equal(t, "// one\nvar a;\n\n// two\nvar b;", merged)
	require.NotContains(t, merged, "broken")
}

func TestMergeEmpty(t *testing.T) {
	require.Equal(t, "", Merge(nil, discover.Style))
}
