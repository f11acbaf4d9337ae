package store

import (
	"bytes"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the durable key/value medium the registries write whole
// collections through. Save never panics: any serialization or write fault
// is reported as false and the caller's in-memory state stays authoritative.
type Persistence interface {
	// Load returns the stored bytes for key, or def when the key is missing
	// or unreadable.
	Load(key string, def []byte) []byte
	// Save writes the bytes, reads them back, and confirms the write
	// byte-for-byte before reporting success.
	Save(key string, data []byte) bool
	// Erase drops the key. Missing keys are not an error.
	Erase(key string) bool
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func flatTransform(s string) []string {
	return []string{}
}

func (p *persistence) Load(key string, def []byte) []byte {
	val, err := p.d.Read(key)
	if err != nil {
		return def
	}
	return val
}

func (p *persistence) Save(key string, data []byte) bool {
	if err := p.d.Write(key, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %s\n", key, err)
		return false
	}
	readBack, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: verify %s: %s\n", key, err)
		return false
	}
	if !bytes.Equal(readBack, data) {
		fmt.Fprintf(os.Stderr, "store: verify %s: read back %d bytes, wrote %d\n", key, len(readBack), len(data))
		return false
	}
	return true
}

func (p *persistence) Erase(key string) bool {
	if !p.d.Has(key) {
		return true
	}
	if err := p.d.Erase(key); err != nil {
		fmt.Fprintf(os.Stderr, "store: erase %s: %s\n", key, err)
		return false
	}
	return true
}
