package mockstorage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Storage keeps uploaded objects in memory.
type Storage struct {
	baseURL string
	log     *slog.Logger

	mu      sync.Mutex
	objects map[string][]byte
}

func New(baseURL string, log *slog.Logger) *Storage {
	return &Storage{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		objects: make(map[string][]byte),
	}
}

func (s *Storage) Upload(_ context.Context, key, contentType string, body io.Reader, _ int64) (string, error) {
	const op = "storage.mockstorage.Upload"

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%s: Reading object error: %w", op, err)
	}

	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	s.log.Debug("Object was stored", slog.String("key", key),
		slog.String("content_type", contentType), slog.Int("size", len(data)))

	return s.baseURL + "/" + key, nil
}

func (s *Storage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	return data, ok
}
