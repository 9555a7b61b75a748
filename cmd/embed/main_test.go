package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infrabed/pkg/infrabed"
)

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "client:\n  api_key: k\n  api_secret: s\n  base_url: " + baseURL + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCmd(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		switch r.URL.Path {
		case "/back/calcemb":
			_, _ = w.Write([]byte(`[0.5, 0.5]`))
		case "/back/calcembm":
			_, _ = w.Write([]byte(`[[1],[2]]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
		}
	}))
	defer ts.Close()

	cfgPath := writeConfig(t, ts.URL+"/back/")

	t.Run("One Sentence", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(&out)
		cmd.SetArgs([]string{"--config", cfgPath, "hello"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "/back/calcemb", gotPath)
		assert.Equal(t, "[0.5,0.5]\n", out.String())
	})

	t.Run("Several Sentences", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(&out)
		cmd.SetArgs([]string{"--config", cfgPath, "a", "b"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "/back/calcembm", gotPath)
		assert.Equal(t, "[[1],[2]]\n", out.String())
	})

	t.Run("Forced Batch", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(&out)
		cmd.SetArgs([]string{"--config", cfgPath, "--batch", "a"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "/back/calcembm", gotPath)
	})

	t.Run("API Error", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(&out)
		cmd.SetArgs([]string{"--config", cfgPath, "--base-url", ts.URL + "/elsewhere/", "a"})

		err := cmd.Execute()
		var apiErr *infrabed.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Not Found", apiErr.Message)
	})

	t.Run("No Sentences", func(t *testing.T) {
		cmd := newRootCmd(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", cfgPath})
		assert.Error(t, cmd.Execute())
	})
}
