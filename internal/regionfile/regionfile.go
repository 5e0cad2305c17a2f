// Package regionfile loads haystacks from disk. Memory dumps are large and
// compress well, so .lz4 and .zst files are decompressed while reading.
package regionfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Load returns the (decompressed) contents of path.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("regionfile: %w", err)
	}
	defer f.Close()

	data, err := Read(f, path)
	if err != nil {
		return nil, fmt.Errorf("regionfile: %s: %w", path, err)
	}
	return data, nil
}

// Read decodes r according to the extension of name.
func Read(r io.Reader, name string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".lz4":
		return io.ReadAll(lz4.NewReader(r))
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	default:
		return io.ReadAll(r)
	}
}

// Write encodes data according to the extension of name. It is used to
// produce compressed dumps for later runs.
func Write(w io.Writer, name string, data []byte) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".lz4":
		lw := lz4.NewWriter(w)
		if _, err := io.Copy(lw, bytes.NewReader(data)); err != nil {
			return err
		}
		return lw.Close()
	case ".zst", ".zstd":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := enc.Write(data); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		_, err := w.Write(data)
		return err
	}
}

// Save writes data to path using the encoding its extension names.
func Save(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("regionfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("regionfile: %w", cerr)
		}
	}()

	if err := Write(f, path, data); err != nil {
		return fmt.Errorf("regionfile: %s: %w", path, err)
	}
	return nil
}
