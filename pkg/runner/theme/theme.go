package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sked/pkg/profile"
	"tableflip.dev/sked/pkg/store"
)

// List prints the preset themes and marks the active one.
type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	active := profile.LoadTheme(l.Persistence)

	tbl := uitable.New()
	tbl.AddRow("", "NAME", "LABEL", "PRIMARY", "GRADIENT")
	for _, t := range profile.Presets() {
		mark := ""
		if t.Name == active.Name {
			mark = "*"
		}
		tbl.AddRow(mark, t.Name, t.Label, t.PrimaryColor, fmt.Sprintf("%s → %s", t.BGGradientStart, t.BGGradientEnd))
	}
	if active.Name == "custom" {
		tbl.AddRow("*", "custom", "", active.PrimaryColor, fmt.Sprintf("%s → %s", active.BGGradientStart, active.BGGradientEnd))
	}
	fmt.Println(tbl)
	return nil
}

// Set activates a preset by name, or builds a custom theme when Primary is
// given.
type Set struct {
	Name          string
	Primary       string
	GradientStart string
	GradientEnd   string

	Persistence store.Persistence
}

func (s *Set) Do(ctx context.Context) error {
	var t profile.Theme
	if s.Primary != "" {
		t = profile.Custom(s.Primary, s.GradientStart, s.GradientEnd)
	} else {
		var err error
		t, err = profile.Preset(s.Name)
		if err != nil {
			return err
		}
	}
	if !profile.SaveTheme(s.Persistence, t) {
		return errors.New("theme: could not save theme")
	}
	ok := color.New(color.FgGreen)
	_, _ = ok.Printf("Theme saved: %s\n", t.Name)
	return nil
}
