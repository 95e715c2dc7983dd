package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion is the version of the snapshot encoding.
const SnapshotVersion = 1

type snapshot struct {
	Version int      `msgpack:"version"`
	Catalog *Catalog `msgpack:"catalog"`
}

// WriteSnapshot encodes the catalog to w.
func WriteSnapshot(w io.Writer, c *Catalog) error {
	if err := msgpack.NewEncoder(w).Encode(&snapshot{Version: SnapshotVersion, Catalog: c}); err != nil {
		return fmt.Errorf("catalog: encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a catalog written by WriteSnapshot and links it.
func ReadSnapshot(r io.Reader) (*Catalog, error) {
	var s snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("catalog: decode snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("catalog: unsupported snapshot version %d", s.Version)
	}
	if s.Catalog == nil {
		return &Catalog{}, nil
	}
	return s.Catalog.Link(), nil
}

// SaveSnapshot writes the catalog snapshot to the named file.
func SaveSnapshot(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("catalog: create snapshot: %w", err)
	}
	if err := WriteSnapshot(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSnapshot reads a catalog snapshot from the named file.
func LoadSnapshot(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
