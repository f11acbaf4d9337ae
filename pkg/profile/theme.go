package profile

import (
	"encoding/json"
	"fmt"
	"strconv"

	"tableflip.dev/sked/pkg/store"
)

// Theme is a named color scheme. Colors are hex strings so a UI surface can
// apply them directly.
type Theme struct {
	Name            string `json:"name"`
	Label           string `json:"label,omitempty"`
	PrimaryColor    string `json:"primaryColor"`
	PrimaryDark     string `json:"primaryDark"`
	BGGradientStart string `json:"bgGradientStart"`
	BGGradientEnd   string `json:"bgGradientEnd"`
}

// Presets returns the built-in themes in picker order.
func Presets() []Theme {
	return []Theme{
		{Name: "default", Label: "Ocean Blue", PrimaryColor: "#4a90e2", PrimaryDark: "#357abd", BGGradientStart: "#667eea", BGGradientEnd: "#764ba2"},
		{Name: "sunset", Label: "Sunset", PrimaryColor: "#ff6b6b", PrimaryDark: "#ee5a6f", BGGradientStart: "#f093fb", BGGradientEnd: "#f5576c"},
		{Name: "forest", Label: "Forest", PrimaryColor: "#27ae60", PrimaryDark: "#229954", BGGradientStart: "#56ab2f", BGGradientEnd: "#a8e063"},
		{Name: "lavender", Label: "Lavender", PrimaryColor: "#9b59b6", PrimaryDark: "#8e44ad", BGGradientStart: "#a8c0ff", BGGradientEnd: "#3f2b96"},
		{Name: "coral", Label: "Coral", PrimaryColor: "#ff7979", PrimaryDark: "#eb4d4b", BGGradientStart: "#fa709a", BGGradientEnd: "#fee140"},
		{Name: "midnight", Label: "Midnight", PrimaryColor: "#3498db", PrimaryDark: "#2980b9", BGGradientStart: "#2c3e50", BGGradientEnd: "#3498db"},
	}
}

// Preset looks a built-in theme up by name.
func Preset(name string) (Theme, error) {
	for _, t := range Presets() {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Custom derives a theme from picked colors. The dark primary is the primary
// darkened by 20 percent.
func Custom(primary, gradientStart, gradientEnd string) Theme {
	return Theme{
		Name:            "custom",
		PrimaryColor:    primary,
		PrimaryDark:     AdjustColor(primary, -20),
		BGGradientStart: gradientStart,
		BGGradientEnd:   gradientEnd,
	}
}

// AdjustColor lightens or darkens a "#rrggbb" color by a percentage,
// clamping each channel to [0, 255]. Invalid input comes back unchanged.
func AdjustColor(hex string, percent int) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	num, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return hex
	}
	amt := int(2.55*float64(percent) + 0.5)
	if percent < 0 {
		amt = -int(2.55*float64(-percent) + 0.5)
	}
	r := clampChannel(int(num>>16)+amt)
	g := clampChannel(int(num>>8&0xff)+amt)
	b := clampChannel(int(num&0xff)+amt)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// LoadTheme reads the active theme, falling back to the default preset.
func LoadTheme(p store.Persistence) Theme {
	raw := p.Load(themeKey, nil)
	if raw == nil {
		return Presets()[0]
	}
	var t Theme
	if err := json.Unmarshal(raw, &t); err != nil {
		return Presets()[0]
	}
	if t.Name == "" {
		return Presets()[0]
	}
	return t
}

// SaveTheme persists the active theme.
func SaveTheme(p store.Persistence, t Theme) bool {
	data, err := json.Marshal(t)
	if err != nil {
		return false
	}
	return p.Save(themeKey, data)
}
