package viewmodels

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/reactive"
	"github.com/dmitrijs2005/skillswap/internal/client/task"
	"github.com/dmitrijs2005/skillswap/internal/logging"
)

// Marketplace lists every offered and requested skill, one tab at a time.
type Marketplace struct {
	*base

	OfferedSkills   *reactive.Cell[[]models.Skill]
	RequestedSkills *reactive.Cell[[]models.Skill]
	ActiveTab       *reactive.Cell[models.SkillKind]
}

func NewMarketplace(loop *task.Loop, api client.API, log logging.Logger) *Marketplace {
	return &Marketplace{
		base:            newBase(loop, api, log, "marketplace"),
		OfferedSkills:   reactive.NewCell([]models.Skill{}),
		RequestedSkills: reactive.NewCell([]models.Skill{}),
		ActiveTab:       reactive.NewCell(models.SkillOffered),
	}
}

func (m *Marketplace) Initialize() {
	m.LoadSkills()
}

// LoadSkills fetches both listings. Only the offered listing clears Loading.
func (m *Marketplace) LoadSkills() {
	m.loop.Do(m.loadSkills)
}

func (m *Marketplace) loadSkills() {
	m.beginLoad()

	task.Go(m.loop, m.api.GetOfferedSkills,
		func(skills []models.Skill) {
			m.OfferedSkills.Set(skills)
			m.Loading.Set(false)
		},
		func(err error) {
			m.fail(MsgLoadOfferedSkills, err)
			m.Loading.Set(false)
		},
	)

	task.Go(m.loop, m.api.GetRequestedSkills,
		func(skills []models.Skill) {
			m.RequestedSkills.Set(skills)
		},
		func(err error) {
			m.fail(MsgLoadRequestedSkills, err)
		},
	)
}

func (m *Marketplace) SetActiveTab(tab models.SkillKind) error {
	if tab != models.SkillOffered && tab != models.SkillRequested {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	m.loop.Do(func() { m.ActiveTab.Set(tab) })
	return nil
}

// VisibleSkills returns a copy of the listing selected by ActiveTab.
func (m *Marketplace) VisibleSkills() []models.Skill {
	if m.ActiveTab.Get() == models.SkillRequested {
		return slices.Clone(m.RequestedSkills.Get())
	}
	return slices.Clone(m.OfferedSkills.Get())
}
