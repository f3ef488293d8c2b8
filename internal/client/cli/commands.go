package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/router"
	"github.com/dmitrijs2005/skillswap/internal/client/viewmodels"
)

var ErrNoProfileOpen = errors.New("no profile open, use 'profile <id>' first")

// settle waits for every request in flight and prints the current screen.
func (a *App) settle(ctx context.Context) error {
	a.loop.Wait()
	return a.Show(ctx)
}

func (a *App) Skills(ctx context.Context) error {
	a.screen = router.ScreenMarketplace
	a.market.Initialize()
	return a.settle(ctx)
}

func (a *App) Tab(ctx context.Context, tab string) error {
	kind, err := models.ParseSkillKind(tab)
	if err != nil {
		return err
	}
	if err := a.market.SetActiveTab(kind); err != nil {
		return err
	}
	a.screen = router.ScreenMarketplace
	return a.Show(ctx)
}

func (a *App) Users(ctx context.Context) error {
	a.screen = router.ScreenUsers
	a.users.Initialize()
	return a.settle(ctx)
}

func (a *App) AddUser(ctx context.Context) error {
	a.screen = router.ScreenUsers
	a.users.SetShowCreateForm(true)

	var draft models.CreateUserRequest
	var err error
	if draft.Name, err = GetSimpleText(a.reader, "Name:", a.out); err != nil {
		return err
	}
	if draft.Email, err = GetSimpleText(a.reader, "Email:", a.out); err != nil {
		return err
	}
	if draft.Location, err = GetSimpleText(a.reader, "Location (optional):", a.out); err != nil {
		return err
	}
	a.users.SetNewUser(draft)

	// validation failures are already in the Error cell and get printed
	// with the screen
	_ = a.users.CreateUser()
	return a.settle(ctx)
}

func (a *App) Open(ctx context.Context, path string) error {
	m, err := a.router.Resolve(path)
	if err != nil {
		return err
	}
	switch m.Screen {
	case router.ScreenMarketplace:
		return a.Skills(ctx)
	case router.ScreenUsers:
		return a.Users(ctx)
	case router.ScreenUserProfile:
		return a.openProfile(ctx, m.Params)
	}
	return fmt.Errorf("%w for %q", router.ErrNoRoute, path)
}

func (a *App) Profile(ctx context.Context, id string) error {
	return a.openProfile(ctx, map[string]string{"id": id})
}

func (a *App) openProfile(ctx context.Context, params map[string]string) error {
	if err := a.profile.Initialize(params); err != nil {
		if errors.Is(err, viewmodels.ErrNoProfileID) {
			return fmt.Errorf("%q is not a user id", params["id"])
		}
		return err
	}
	a.screen = router.ScreenUserProfile
	return a.settle(ctx)
}

func (a *App) AddSkill(ctx context.Context, kind models.SkillKind) error {
	if a.screen != router.ScreenUserProfile {
		return ErrNoProfileOpen
	}

	edit, show, add := a.profile.EditOfferedSkill, a.profile.SetShowAddOffered, a.profile.AddOfferedSkill
	if kind == models.SkillRequested {
		edit, show, add = a.profile.EditRequestedSkill, a.profile.SetShowAddRequested, a.profile.AddRequestedSkill
	}
	show(true)

	name, err := GetSimpleText(a.reader, "Skill name:", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional):", a.out)
	if err != nil {
		return err
	}
	edit(name, description)

	_ = add()
	return a.settle(ctx)
}

func (a *App) Show(ctx context.Context) error {
	switch a.screen {
	case router.ScreenMarketplace:
		renderMarketplace(a.out, a.market)
	case router.ScreenUsers:
		renderUsers(a.out, a.users, a.router)
	case router.ScreenUserProfile:
		renderProfile(a.out, a.profile)
	default:
		a.println("Nothing to show yet, try 'skills' or 'users'.")
	}
	return nil
}
