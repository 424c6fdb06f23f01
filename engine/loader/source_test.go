package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K0rnli/rift-rewind/engine/loader"
)

func TestDirSourceFetch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "models", "map"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "models", "map", "rift.glb"), []byte("glb bytes"), 0o644))

	src := loader.NewDirSource(root)
	data, err := src.Fetch(context.Background(), "models/map/rift.glb")
	require.NoError(t, err)
	assert.Equal(t, []byte("glb bytes"), data)
}

func TestDirSourceFetchMissing(t *testing.T) {
	src := loader.NewDirSource(t.TempDir())
	_, err := src.Fetch(context.Background(), "models/missing.glb")
	assert.Error(t, err)
}

func TestDirSourceFetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := loader.NewDirSource(t.TempDir())
	_, err := src.Fetch(ctx, "models/map/rift.glb")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPSourceFetch(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("remote bytes"))
	}))
	defer ts.Close()

	src := loader.NewHTTPSource(ts.URL+"/", ts.Client())
	data, err := src.Fetch(context.Background(), "models/champions/ahri.glb")
	require.NoError(t, err)
	assert.Equal(t, []byte("remote bytes"), data)
	assert.Equal(t, "/models/champions/ahri.glb", gotPath)
}

func TestHTTPSourceFetchNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	src := loader.NewHTTPSource(ts.URL, ts.Client())
	_, err := src.Fetch(context.Background(), "models/missing.glb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestSourceFromConfig(t *testing.T) {
	src, err := loader.SourceFromConfig(loader.SourceConfig{AssetBaseURL: "https://assets.example.com/replay"})
	require.NoError(t, err)
	assert.NotNil(t, src)

	src, err = loader.SourceFromConfig(loader.SourceConfig{AssetDir: t.TempDir()})
	require.NoError(t, err)
	assert.NotNil(t, src)

	_, err = loader.SourceFromConfig(loader.SourceConfig{})
	assert.Error(t, err)
}

func TestLoadSourceConfig(t *testing.T) {
	t.Setenv("ASSET_BASE_URL", "https://assets.example.com/replay")
	t.Setenv("ASSET_DIR", "/var/lib/replay/models")

	cfg, err := loader.LoadSourceConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://assets.example.com/replay", cfg.AssetBaseURL)
	assert.Equal(t, "/var/lib/replay/models", cfg.AssetDir)
}
