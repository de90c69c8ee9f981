package ddragon

import (
	"context"
	"fmt"
	"sync"

	"riftbook/riot/requests"
)

// versionCache holds the in-process latest version.
type versionCache struct {
	mu    sync.Mutex
	value string
}

// LatestVersion returns the most recent Data Dragon version.
// The first successful fetch is cached for the process lifetime, the catalog
// host publishes a new version only every few weeks. A fetch failure falls
// back to a pinned known version instead of failing the whole catalog load.
func (l *Loader) LatestVersion(ctx context.Context) string {
	l.version.mu.Lock()
	defer l.version.mu.Unlock()

	if l.version.value != "" {
		return l.version.value
	}

	url := fmt.Sprintf("%s/api/versions.json", l.baseURL)

	var versions []string
	if err := l.req.GetJSON(ctx, url, &versions, requests.Options{}); err != nil || len(versions) == 0 {
		l.logger.Warn().Err(err).Str("fallback", FallbackVersion).Msg("couldn't fetch the version listing")
		return FallbackVersion
	}

	l.version.value = versions[0]
	return l.version.value
}
