package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

// FileSource читает JSON-массив инцидентов с диска
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(_ context.Context) ([]SeedRecord, error) {
	body, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", s.path, err)
	}
	return decodeRecords(body)
}

// HTTPSource загружает JSON-массив инцидентов по статическому адресу
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Load(ctx context.Context) ([]SeedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed incidents: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed incidents request returned status %d", resp.StatusCode)
	}

	return decodeBody(resp.Body)
}
