package profile

import (
	"errors"
	"testing"
)

// fakeStore is an in-memory Persistence for profile tests.
type fakeStore struct {
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Load(key string, def []byte) []byte {
	if v, ok := f.data[key]; ok {
		return v
	}
	return def
}

func (f *fakeStore) Save(key string, data []byte) bool {
	f.data[key] = data
	return true
}

func (f *fakeStore) Erase(key string) bool {
	delete(f.data, key)
	return true
}

func TestLoadProfileDefaultsToGuest(t *testing.T) {
	p := LoadProfile(newFakeStore())
	if p.Name != "Guest User" || p.Mode != "guest" || p.Avatar != "👤" {
		t.Fatalf("unexpected default profile: %+v", p)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := newFakeStore()
	saved := Profile{Name: "Ada", Email: "ada@test", Avatar: "🚀", Mode: "personal"}
	if !SaveProfile(store, saved) {
		t.Fatal("save failed")
	}
	if got := LoadProfile(store); got != saved {
		t.Fatalf("round trip mangled profile: %+v", got)
	}
}

func TestLoadProfileFillsBlanks(t *testing.T) {
	store := newFakeStore()
	SaveProfile(store, Profile{Mode: "personal"})
	got := LoadProfile(store)
	if got.Name != "Guest User" || got.Avatar != "👤" {
		t.Fatalf("blanks must fall back to defaults: %+v", got)
	}
	if got.Mode != "personal" {
		t.Fatalf("stored mode lost: %+v", got)
	}
}

func TestValidAvatar(t *testing.T) {
	if !ValidAvatar("👤") {
		t.Fatal("default avatar must be valid")
	}
	if ValidAvatar("🍕") {
		t.Fatal("off-list avatar must be rejected")
	}
}

func TestPresetLookup(t *testing.T) {
	th, err := Preset("sunset")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if th.PrimaryColor != "#ff6b6b" || th.Label != "Sunset" {
		t.Fatalf("unexpected preset: %+v", th)
	}

	if _, err := Preset("neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestCustomDerivesDarkPrimary(t *testing.T) {
	th := Custom("#4a90e2", "#1a1a2e", "#16213e")
	if th.Name != "custom" {
		t.Fatalf("expected custom name, got %q", th.Name)
	}
	if th.PrimaryDark != AdjustColor("#4a90e2", -20) {
		t.Fatalf("dark primary not derived: %q", th.PrimaryDark)
	}
	if th.BGGradientStart != "#1a1a2e" || th.BGGradientEnd != "#16213e" {
		t.Fatalf("gradient lost: %+v", th)
	}
}

func TestAdjustColor(t *testing.T) {
	if got := AdjustColor("#4a90e2", -20); got != "#175daf" {
		t.Fatalf("darken: got %q", got)
	}
	if got := AdjustColor("#000000", -20); got != "#000000" {
		t.Fatalf("darken must clamp at black: got %q", got)
	}
	if got := AdjustColor("#ffffff", 20); got != "#ffffff" {
		t.Fatalf("lighten must clamp at white: got %q", got)
	}
	for _, in := range []string{"red", "#fff", "#zzzzzz", ""} {
		if got := AdjustColor(in, 10); got != in {
			t.Fatalf("invalid input %q must pass through, got %q", in, got)
		}
	}
}

func TestLoadThemeDefaultsToFirstPreset(t *testing.T) {
	got := LoadTheme(newFakeStore())
	if got.Name != "default" {
		t.Fatalf("expected the default preset, got %+v", got)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	store := newFakeStore()
	th, _ := Preset("midnight")
	if !SaveTheme(store, th) {
		t.Fatal("save failed")
	}
	if got := LoadTheme(store); got != th {
		t.Fatalf("round trip mangled theme: %+v", got)
	}
}

func TestLoadThemeToleratesCorruptData(t *testing.T) {
	store := newFakeStore()
	store.data["theme"] = []byte("{broken")
	if got := LoadTheme(store); got.Name != "default" {
		t.Fatalf("corrupt theme must fall back: %+v", got)
	}
}
