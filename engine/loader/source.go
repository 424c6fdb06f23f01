package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// AssetSource fetches raw model asset bytes by relative path. Implementations
// cover local model directories and remote buckets.
type AssetSource interface {
	// Fetch reads the asset at the given relative path.
	//
	// Parameters:
	//   - ctx: cancellation context
	//   - assetPath: the asset's relative path, e.g. "models/map/SummonersRift.glb"
	//
	// Returns:
	//   - []byte: the asset bytes
	//   - error: a wrapped error when the asset cannot be read
	Fetch(ctx context.Context, assetPath string) ([]byte, error)
}

// SourceConfig is the environment configuration for asset sources.
type SourceConfig struct {
	// AssetBaseURL selects an HTTP source when set, e.g. an S3 bucket URL.
	AssetBaseURL string `config:"ASSET_BASE_URL"`

	// AssetDir selects a directory source when AssetBaseURL is unset.
	AssetDir string `config:"ASSET_DIR"`
}

// LoadSourceConfig reads the source configuration from the environment.
//
// Returns:
//   - SourceConfig: the loaded configuration
//   - error: a wrapped error when the environment cannot be parsed
func LoadSourceConfig() (SourceConfig, error) {
	var cfg SourceConfig
	if err := config.FromEnv().To(&cfg); err != nil {
		return SourceConfig{}, eris.Wrap(err, "failed to load asset source config")
	}
	return cfg, nil
}

// SourceFromConfig builds the asset source a configuration selects: HTTP when
// a base URL is set, a local directory otherwise.
//
// Parameters:
//   - cfg: the source configuration
//
// Returns:
//   - AssetSource: the configured source
//   - error: an error when the configuration selects nothing
func SourceFromConfig(cfg SourceConfig) (AssetSource, error) {
	if cfg.AssetBaseURL != "" {
		return NewHTTPSource(cfg.AssetBaseURL, nil), nil
	}
	if cfg.AssetDir != "" {
		return NewDirSource(cfg.AssetDir), nil
	}
	return nil, eris.New("asset source config selects neither a base URL nor a directory")
}

type dirSource struct {
	root string
}

var _ AssetSource = &dirSource{}

// NewDirSource creates an AssetSource over a local directory tree.
//
// Parameters:
//   - root: the directory containing the model assets
//
// Returns:
//   - AssetSource: the directory source
func NewDirSource(root string) AssetSource {
	return &dirSource{root: root}
}

func (s *dirSource) Fetch(ctx context.Context, assetPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full := filepath.Join(s.root, filepath.FromSlash(assetPath))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read asset %q", assetPath)
	}
	return data, nil
}

type httpSource struct {
	baseURL string
	client  *http.Client
}

var _ AssetSource = &httpSource{}

// NewHTTPSource creates an AssetSource that fetches assets over HTTP,
// joining paths onto a base URL.
//
// Parameters:
//   - baseURL: the base URL assets live under
//   - client: the HTTP client to use, nil for http.DefaultClient
//
// Returns:
//   - AssetSource: the HTTP source
func NewHTTPSource(baseURL string, client *http.Client) AssetSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (s *httpSource) Fetch(ctx context.Context, assetPath string) ([]byte, error) {
	url := s.baseURL + "/" + strings.TrimPrefix(assetPath, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to build request for %q", assetPath)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to fetch asset %q", assetPath)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, eris.New(fmt.Sprintf("unexpected status %d fetching asset %q", resp.StatusCode, assetPath))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read asset %q", assetPath)
	}
	return data, nil
}

// siblingPath resolves a buffer URI relative to an asset's path, for .gltf
// documents with external buffers.
func siblingPath(assetPath, uri string) string {
	return path.Join(path.Dir(assetPath), uri)
}
