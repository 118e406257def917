package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string, limit int64) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("openapi loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("openapi loader: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := filesystem.Open(name)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: %w", err)
	}
	defer f.Close()
	return readLimited(f, name, limit)
}

func loadFile(ctx context.Context, path string, limit int64) ([]byte, error) {
	if path == "" {
		return nil, errors.New("openapi loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: %w", err)
	}
	defer f.Close()
	return readLimited(f, path, limit)
}

// readLimited reads r fully, failing when it holds more than limit bytes.
func readLimited(r io.Reader, name string, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", name, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("openapi loader: %s exceeds %d bytes", name, limit)
	}
	return data, nil
}
