package util

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempFiles creates uniquely named scratch files
type TempFiles struct {
	// Dir defaults to os.TempDir()
	Dir    string
	Prefix string
}

// Create opens a new empty file named <prefix><uuid><ext>
func (t TempFiles) Create(ext string) (*os.File, error) {
	dir := t.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, t.Prefix+uuid.NewString()+ext)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return f, nil
}

// Remove closes f and deletes its file
func (t TempFiles) Remove(f *os.File) error {
	f.Close()
	if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}

// Md5ThenHex is a quick hasher
func Md5ThenHex(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	return hex.EncodeToString(hasher.Sum(nil))
}
