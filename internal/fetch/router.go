package fetch

import (
	"context"
	"fmt"
	"strings"
)

// Router dispatches fetches by URL scheme: s3:// URLs go to S3 when
// configured, everything else to HTTP.
type Router struct {
	HTTP Fetcher
	S3   Fetcher
}

func (r *Router) Fetch(ctx context.Context, url string) (string, error) {
	if strings.HasPrefix(url, "s3://") {
		if r.S3 == nil {
			return "", fmt.Errorf("fetch: no s3 fetcher configured for %s", url)
		}
		return r.S3.Fetch(ctx, url)
	}
	if r.HTTP == nil {
		return "", fmt.Errorf("fetch: no http fetcher configured")
	}
	return r.HTTP.Fetch(ctx, url)
}
