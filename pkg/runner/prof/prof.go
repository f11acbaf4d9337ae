package prof

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sked/pkg/profile"
	"tableflip.dev/sked/pkg/store"
)

// Show prints the stored profile.
type Show struct {
	Persistence store.Persistence
}

func (s *Show) Do(ctx context.Context) error {
	p := profile.LoadProfile(s.Persistence)
	t := profile.LoadTheme(s.Persistence)

	tbl := uitable.New()
	tbl.AddRow("NAME", p.Name)
	tbl.AddRow("EMAIL", p.Email)
	tbl.AddRow("AVATAR", p.Avatar)
	tbl.AddRow("MODE", p.Mode)
	tbl.AddRow("THEME", t.Name)
	fmt.Println(tbl)
	return nil
}

// Set updates profile fields. Empty fields keep their stored value; setting
// a name switches guest mode off.
type Set struct {
	Name   string
	Email  string
	Avatar string

	Persistence store.Persistence
}

func (s *Set) Do(ctx context.Context) error {
	p := profile.LoadProfile(s.Persistence)
	if s.Name != "" {
		p.Name = s.Name
		p.Mode = "personal"
	}
	if s.Email != "" {
		p.Email = s.Email
	}
	if s.Avatar != "" {
		if !profile.ValidAvatar(s.Avatar) {
			return fmt.Errorf("profile: avatar must be one of %v", profile.AvatarOptions)
		}
		p.Avatar = s.Avatar
	}
	if !profile.SaveProfile(s.Persistence, p) {
		return errors.New("profile: could not save profile")
	}
	ok := color.New(color.FgGreen)
	_, _ = ok.Println("Profile saved.")
	return nil
}
