package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Emeralddossou/detecporc/internal/apperr"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readDoc decodes a JSON document into v, tolerating a leading UTF-8 BOM.
func readDoc(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", apperr.ErrStorage, path, err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", apperr.ErrStorage, path, err)
	}
	return nil
}

// writeDoc replaces the document atomically: the pretty-printed JSON is
// written to a temp file in the same directory and renamed over the
// target, so readers never observe a half-written file.
func writeDoc(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperr.ErrStorage, path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: temp file in %s: %v", apperr.ErrStorage, dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", apperr.ErrStorage, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", apperr.ErrStorage, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replace %s: %v", apperr.ErrStorage, path, err)
	}
	return nil
}
