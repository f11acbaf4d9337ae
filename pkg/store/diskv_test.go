package store

import (
	"bytes"
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) VerifyURL() string { return "" }
func (t testConfig) Notify() bool      { return false }

func TestPersistenceRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if !p.Save("tasks", []byte(`[{"id":"t1"}]`)) {
		t.Fatal("save failed")
	}
	got := p.Load("tasks", nil)
	if !bytes.Equal(got, []byte(`[{"id":"t1"}]`)) {
		t.Fatalf("read back %q", got)
	}
}

func TestPersistenceLoadDefaultsMissingKey(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	got := p.Load("missing", []byte("[]"))
	if !bytes.Equal(got, []byte("[]")) {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestPersistenceOverwrite(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if !p.Save("clients", []byte("first")) {
		t.Fatal("first save failed")
	}
	if !p.Save("clients", []byte("second")) {
		t.Fatal("second save failed")
	}
	if got := p.Load("clients", nil); !bytes.Equal(got, []byte("second")) {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestPersistenceEraseIsIdempotent(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if !p.Erase("never-written") {
		t.Fatal("erasing a missing key must succeed")
	}
	if !p.Save("creds", []byte("x")) {
		t.Fatal("save failed")
	}
	if !p.Erase("creds") {
		t.Fatal("erase failed")
	}
	if got := p.Load("creds", nil); got != nil {
		t.Fatalf("expected key gone, got %q", got)
	}
}
