package catalogue

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/RMahshie/sedview/internal/storage"
	"github.com/rs/zerolog/log"
)

// Fetcher retrieves the raw bytes of a catalogue file
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

type fetcher struct {
	client *http.Client
	s3     storage.S3Service
}

// NewFetcher creates a fetcher for http(s) URLs, s3:// keys and local paths.
// s3Service may be nil when no object storage is configured.
func NewFetcher(timeout time.Duration, s3Service storage.S3Service) Fetcher {
	return &fetcher{
		client: &http.Client{Timeout: timeout},
		s3:     s3Service,
	}
}

// Fetch downloads the catalogue from source
func (f *fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return f.fetchHTTP(ctx, source)
	case strings.HasPrefix(source, "s3://"):
		if f.s3 == nil {
			return nil, fmt.Errorf("catalogue %s requires S3 storage, but none is configured", source)
		}
		key := strings.TrimPrefix(source, "s3://")
		log.Info().Str("key", key).Msg("Downloading catalogue from object storage")
		return f.s3.DownloadFile(ctx, key)
	default:
		log.Info().Str("path", source).Msg("Reading catalogue from disk")
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalogue: %w", err)
		}
		return data, nil
	}
}

func (f *fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	log.Info().Str("url", url).Msg("Downloading catalogue")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalogue request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalogue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download catalogue: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue body: %w", err)
	}

	log.Info().Int("bytes", len(data)).Msg("Catalogue downloaded")
	return data, nil
}
