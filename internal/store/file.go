package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// File is a Collection backed by a single pretty-printed JSON file.
// The file holds one JSON array and is rewritten in full on Replace.
type File[T any] struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewFile returns a file-backed collection at path. The file is created with
// an empty array on first use if it does not exist.
func NewFile[T any](path string, logger *zap.Logger) *File[T] {
	f := &File[T]{path: path, logger: logger}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f.write(nil)
	}
	return f
}

// EnsureSeed writes items to the file only when the collection is currently
// empty. Used to initialize demo inventory the first time the server runs.
func (f *File[T]) EnsureSeed(ctx context.Context, items []T) {
	if len(f.Get(ctx)) == 0 && len(items) > 0 {
		f.Replace(ctx, items)
	}
}

func (f *File[T]) Get(ctx context.Context) []T {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Error("read collection file", zap.String("path", f.path), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		f.logger.Error("decode collection file", zap.String("path", f.path), zap.Error(err))
		return nil
	}
	return items
}

func (f *File[T]) Replace(ctx context.Context, items []T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(items)
}

func (f *File[T]) write(items []T) bool {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		f.logger.Error("encode collection file", zap.String("path", f.path), zap.Error(err))
		return false
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		f.logger.Error("create data dir", zap.String("path", f.path), zap.Error(err))
		return false
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		f.logger.Error("write collection file", zap.String("path", f.path), zap.Error(err))
		return false
	}
	return true
}
