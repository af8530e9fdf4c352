package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/onlinz/returns/internal/errors"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// FileReceiptRepository keeps receipts as a JSON array in a single file. A
// missing or empty file is an empty store. Appends rewrite the whole file
// through a temporary file and a rename, serialised by an in-process mutex;
// writers in other processes are not coordinated.
type FileReceiptRepository struct {
	path string
	mu   sync.Mutex
}

// Append adds receipt to the end of the file.
func (f *FileReceiptRepository) Append(ctx context.Context, receipt *returnsDomain.ReceiptRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	receipts, err := f.read()
	if err != nil {
		return err
	}

	receipts = append(receipts, receipt)
	if err := f.write(receipts); err != nil {
		return apperrors.Wrap(err, "failed to append receipt")
	}
	return nil
}

// List returns every receipt in file order.
func (f *FileReceiptRepository) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read()
}

// Path returns the file the receipts are stored in.
func (f *FileReceiptRepository) Path() string {
	return f.path
}

// Ping reports whether the directory holding the file exists.
func (f *FileReceiptRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(filepath.Dir(f.path))
	if err != nil {
		return apperrors.Wrap(err, "receipts directory unavailable")
	}
	if !info.IsDir() {
		return apperrors.Wrap(apperrors.ErrUnavailable, "receipts directory is not a directory")
	}
	return nil
}

func (f *FileReceiptRepository) read() ([]*returnsDomain.ReceiptRecord, error) {
	receipts := make([]*returnsDomain.ReceiptRecord, 0)

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return receipts, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read receipts file")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return receipts, nil
	}

	if err := json.Unmarshal(data, &receipts); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode receipts file")
	}
	return receipts, nil
}

func (f *FileReceiptRepository) write(receipts []*returnsDomain.ReceiptRecord) error {
	data, err := json.MarshalIndent(receipts, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+"-*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), f.path)
}

// NewFileReceiptRepository creates a receipt repository backed by path.
func NewFileReceiptRepository(path string) *FileReceiptRepository {
	return &FileReceiptRepository{path: path}
}
