package ddragon

import (
	"context"

	"riftbook/riot/requests"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Data Dragon content delivery host.
	DefaultBaseURL = "https://ddragon.leagueoflegends.com"

	// FallbackVersion is used when the version listing cannot be fetched.
	FallbackVersion = "16.1.1"
)

// DocumentCache stores raw catalog documents keyed by version and language,
// so repeated loads within the TTL window skip the network.
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Loader fetches and normalizes the static catalog documents.
type Loader struct {
	req     *requests.Client
	baseURL string
	docs    DocumentCache
	logger  zerolog.Logger

	version versionCache
}

// LoaderDeps is the dependency list for the catalog loader.
type LoaderDeps struct {
	// Requests client without an API key, the catalog host is public.
	Requests *requests.Client

	// BaseURL overrides the catalog host, tests point it at a local server.
	BaseURL string

	// Docs is optional, nil disables document caching.
	Docs DocumentCache

	Logger zerolog.Logger
}

// NewLoader creates a catalog loader.
func NewLoader(deps *LoaderDeps) *Loader {
	baseURL := deps.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Loader{
		req:     deps.Requests,
		baseURL: baseURL,
		docs:    deps.Docs,
		logger:  deps.Logger,
	}
}
