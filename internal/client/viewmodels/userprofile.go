package viewmodels

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/reactive"
	"github.com/dmitrijs2005/skillswap/internal/client/task"
	"github.com/dmitrijs2005/skillswap/internal/logging"
)

// UserProfile shows one user with their offered and requested skills and
// lets the viewer add skills in either direction.
type UserProfile struct {
	*base

	// User is nil until the user detail request succeeds.
	User             *reactive.Cell[*models.User]
	OfferedSkills    *reactive.Cell[[]models.Skill]
	RequestedSkills  *reactive.Cell[[]models.Skill]
	ShowAddOffered   *reactive.Cell[bool]
	ShowAddRequested *reactive.Cell[bool]

	NewOfferedSkill   *reactive.Cell[models.CreateSkillRequest]
	NewRequestedSkill *reactive.Cell[models.CreateSkillRequest]
}

func NewUserProfile(loop *task.Loop, api client.API, log logging.Logger) *UserProfile {
	return &UserProfile{
		base:              newBase(loop, api, log, "profile"),
		User:              reactive.NewCell[*models.User](nil),
		OfferedSkills:     reactive.NewCell([]models.Skill{}),
		RequestedSkills:   reactive.NewCell([]models.Skill{}),
		ShowAddOffered:    reactive.NewCell(false),
		ShowAddRequested:  reactive.NewCell(false),
		NewOfferedSkill:   reactive.NewCell(models.CreateSkillRequest{}),
		NewRequestedSkill: reactive.NewCell(models.CreateSkillRequest{}),
	}
}

// ParseUserID reads a route id parameter. Anything that is not a positive
// integer yields 0, which never names a user.
func ParseUserID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// Initialize loads the profile named by the "id" route parameter. Without a
// usable id nothing is fetched, state is left untouched and ErrNoProfileID
// is returned.
func (p *UserProfile) Initialize(params map[string]string) error {
	id := ParseUserID(params["id"])
	if id == 0 {
		return ErrNoProfileID
	}
	p.LoadUserProfile(id)
	return nil
}

// LoadUserProfile fetches the user and both skill listings. The user
// request alone clears Loading; on success it also stamps the user id into
// both skill drafts.
func (p *UserProfile) LoadUserProfile(userID int64) {
	p.loop.Do(func() { p.loadUserProfile(userID) })
}

func (p *UserProfile) loadUserProfile(userID int64) {
	p.beginLoad()

	task.Go(p.loop,
		func(ctx context.Context) (models.User, error) { return p.api.GetUser(ctx, userID) },
		func(user models.User) {
			p.User.Set(&user)
			stamp := func(d models.CreateSkillRequest) models.CreateSkillRequest {
				d.UserID = userID
				return d
			}
			p.NewOfferedSkill.Update(stamp)
			p.NewRequestedSkill.Update(stamp)
			p.Loading.Set(false)
		},
		func(err error) {
			p.fail(MsgLoadUserProfile, err, "user_id", userID)
			p.Loading.Set(false)
		},
	)

	task.Go(p.loop,
		func(ctx context.Context) ([]models.Skill, error) { return p.api.GetUserOfferedSkills(ctx, userID) },
		func(skills []models.Skill) { p.OfferedSkills.Set(skills) },
		func(err error) { p.fail(MsgLoadOfferedSkills, err, "user_id", userID) },
	)

	task.Go(p.loop,
		func(ctx context.Context) ([]models.Skill, error) { return p.api.GetUserRequestedSkills(ctx, userID) },
		func(skills []models.Skill) { p.RequestedSkills.Set(skills) },
		func(err error) { p.fail(MsgLoadRequestedSkills, err, "user_id", userID) },
	)
}

func (p *UserProfile) AddOfferedSkill() error {
	var err error
	p.loop.Do(func() { err = p.addSkill(models.SkillOffered) })
	return err
}

func (p *UserProfile) AddRequestedSkill() error {
	var err error
	p.loop.Do(func() { err = p.addSkill(models.SkillRequested) })
	return err
}

// skillForm bundles what differs between the two add-skill flows.
type skillForm struct {
	draft  *reactive.Cell[models.CreateSkillRequest]
	show   *reactive.Cell[bool]
	create func(context.Context, models.CreateSkillRequest) (models.Skill, error)
	failed string
}

func (p *UserProfile) form(kind models.SkillKind) skillForm {
	if kind == models.SkillRequested {
		return skillForm{p.NewRequestedSkill, p.ShowAddRequested, p.api.CreateRequestedSkill, MsgAddRequestedSkill}
	}
	return skillForm{p.NewOfferedSkill, p.ShowAddOffered, p.api.CreateOfferedSkill, MsgAddOfferedSkill}
}

func (p *UserProfile) addSkill(kind models.SkillKind) error {
	f := p.form(kind)

	draft := f.draft.Get()
	if draft.SkillName == "" {
		return p.reject(ErrSkillNameRequired)
	}
	if p.User.Get() == nil {
		return p.reject(ErrProfileNotLoaded)
	}

	p.Loading.Set(true)

	task.Go(p.loop,
		func(ctx context.Context) (models.Skill, error) { return f.create(ctx, draft) },
		func(models.Skill) {
			// User is never cleared once set, so the profile shown now
			// is the one to reload.
			p.loadUserProfile(p.User.Get().ID)
			p.resetForm(kind)
			p.Loading.Set(false)
		},
		func(err error) {
			p.fail(f.failed, err, "kind", kind, "user_id", draft.UserID)
			p.Loading.Set(false)
		},
	)
	return nil
}

func (p *UserProfile) ResetOfferedForm() {
	p.loop.Do(func() { p.resetForm(models.SkillOffered) })
}

func (p *UserProfile) ResetRequestedForm() {
	p.loop.Do(func() { p.resetForm(models.SkillRequested) })
}

// resetForm clears name and description but keeps the draft's user id.
func (p *UserProfile) resetForm(kind models.SkillKind) {
	f := p.form(kind)
	f.draft.Update(func(d models.CreateSkillRequest) models.CreateSkillRequest {
		d.SkillName = ""
		d.Description = ""
		return d
	})
	f.show.Set(false)
}

// EditOfferedSkill fills the offered draft, keeping its user id.
func (p *UserProfile) EditOfferedSkill(name, description string) {
	p.editDraft(p.NewOfferedSkill, name, description)
}

// EditRequestedSkill fills the requested draft, keeping its user id.
func (p *UserProfile) EditRequestedSkill(name, description string) {
	p.editDraft(p.NewRequestedSkill, name, description)
}

func (p *UserProfile) editDraft(c *reactive.Cell[models.CreateSkillRequest], name, description string) {
	p.loop.Do(func() {
		c.Update(func(d models.CreateSkillRequest) models.CreateSkillRequest {
			d.SkillName = name
			d.Description = description
			return d
		})
	})
}

func (p *UserProfile) SetShowAddOffered(show bool) {
	p.loop.Do(func() { p.ShowAddOffered.Set(show) })
}

func (p *UserProfile) SetShowAddRequested(show bool) {
	p.loop.Do(func() { p.ShowAddRequested.Set(show) })
}
