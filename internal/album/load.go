package album

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const httpTimeout = 30 * time.Second

// Load reads the picks dataset from source, which is either a filesystem
// path or an http(s) URL.
func Load(ctx context.Context, source string) ([]Record, error) {
	if isURL(source) {
		client := &http.Client{Timeout: httpTimeout}
		return fetch(ctx, client, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func fetch(ctx context.Context, client *http.Client, url string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: HTTP %d", resp.StatusCode)
	}

	return Decode(resp.Body)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
