package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/router"
	"github.com/dmitrijs2005/skillswap/internal/client/viewmodels"
)

func renderError(w io.Writer, msg string) {
	if msg != "" {
		fmt.Fprintln(w, "Error:", msg)
	}
}

func renderSkills(w io.Writer, skills []models.Skill) {
	if len(skills) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, s := range skills {
		fmt.Fprintln(w, " ", s)
	}
}

func renderMarketplace(w io.Writer, m *viewmodels.Marketplace) {
	tab := m.ActiveTab.Get()
	fmt.Fprintf(w, "Skill marketplace [%s] offered: %d, requested: %d\n",
		tab, len(m.OfferedSkills.Get()), len(m.RequestedSkills.Get()))
	renderSkills(w, m.VisibleSkills())
	renderError(w, m.Error.Get())
}

func renderUsers(w io.Writer, u *viewmodels.UserList, r *router.Router) {
	users := u.Users.Get()
	fmt.Fprintf(w, "Users (%d)\n", len(users))
	if len(users) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, user := range users {
		fmt.Fprintf(w, "  %-20s %-28s %-16s %s\n", user.Name, user.Email, user.Location, r.UserProfileURL(user.ID))
	}
	renderError(w, u.Error.Get())
}

func renderProfile(w io.Writer, p *viewmodels.UserProfile) {
	if user := p.User.Get(); user != nil {
		fmt.Fprintf(w, "%s <%s>", user.Name, user.Email)
		if user.Location != "" {
			fmt.Fprintf(w, ", %s", user.Location)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "Profile not loaded")
	}

	fmt.Fprintln(w, "Offers:")
	renderSkills(w, p.OfferedSkills.Get())
	fmt.Fprintln(w, "Wants:")
	renderSkills(w, p.RequestedSkills.Get())
	renderError(w, p.Error.Get())
}
