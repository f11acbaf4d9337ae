// Package profile keeps the cosmetic personalization: display profile,
// avatar, and color theme. All of it rides the same persistent store as the
// scheduling data.
package profile

import (
	"encoding/json"
	"errors"

	"tableflip.dev/sked/pkg/store"
)

const (
	profileKey = "profile"
	themeKey   = "theme"
)

// Profile is the user-facing identity shown in the header.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
	Mode   string `json:"mode"` // "guest" or "personal"
}

// Default is the first-run profile.
func Default() Profile {
	return Profile{Name: "Guest User", Avatar: "👤", Mode: "guest"}
}

// AvatarOptions is the fixed avatar picker set.
var AvatarOptions = []string{
	"👤", "😊", "😎", "🤓", "👨", "👩", "🧑", "👨‍💼", "👩‍💼",
	"👨‍🎓", "👩‍🎓", "🦸", "🦹", "🧙", "🧝", "🧛",
}

// ValidAvatar reports whether the emoji is one of the offered options.
func ValidAvatar(s string) bool {
	for _, a := range AvatarOptions {
		if a == s {
			return true
		}
	}
	return false
}

// LoadProfile reads the persisted profile, falling back to the default.
func LoadProfile(p store.Persistence) Profile {
	raw := p.Load(profileKey, nil)
	if raw == nil {
		return Default()
	}
	var out Profile
	if err := json.Unmarshal(raw, &out); err != nil {
		return Default()
	}
	if out.Name == "" {
		out.Name = Default().Name
	}
	if out.Avatar == "" {
		out.Avatar = Default().Avatar
	}
	return out
}

// SaveProfile persists the profile.
func SaveProfile(p store.Persistence, prof Profile) bool {
	data, err := json.Marshal(prof)
	if err != nil {
		return false
	}
	return p.Save(profileKey, data)
}

// ErrUnknownTheme rejects theme names outside the preset list.
var ErrUnknownTheme = errors.New("profile: unknown theme")
