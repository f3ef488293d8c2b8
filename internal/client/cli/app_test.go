package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/router"
	"github.com/dmitrijs2005/skillswap/internal/client/viewmodels"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAPI is an in-memory backend implementing client.API.
type memAPI struct {
	mu     sync.Mutex
	users  []models.User
	skills []models.Skill
	fail   error
}

func (m *memAPI) filter(kind models.SkillKind, userID int64) []models.Skill {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Skill{}
	for _, s := range m.skills {
		if s.Kind == kind && (userID == 0 || s.UserID == userID) {
			out = append(out, s)
		}
	}
	return out
}

func (m *memAPI) GetOfferedSkills(context.Context) ([]models.Skill, error) {
	return m.filter(models.SkillOffered, 0), m.fail
}

func (m *memAPI) GetRequestedSkills(context.Context) ([]models.Skill, error) {
	return m.filter(models.SkillRequested, 0), m.fail
}

func (m *memAPI) GetUsers(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.User{}, m.users...), m.fail
}

func (m *memAPI) GetUser(_ context.Context, id int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (m *memAPI) CreateUser(_ context.Context, req models.CreateUserRequest) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := models.User{ID: int64(len(m.users) + 1), Name: req.Name, Email: req.Email, Location: req.Location}
	m.users = append(m.users, u)
	return u, nil
}

func (m *memAPI) GetUserOfferedSkills(_ context.Context, userID int64) ([]models.Skill, error) {
	return m.filter(models.SkillOffered, userID), nil
}

func (m *memAPI) GetUserRequestedSkills(_ context.Context, userID int64) ([]models.Skill, error) {
	return m.filter(models.SkillRequested, userID), nil
}

func (m *memAPI) add(kind models.SkillKind, req models.CreateSkillRequest) (models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := models.Skill{ID: int64(len(m.skills) + 1), SkillName: req.SkillName, Description: req.Description, UserID: req.UserID, Kind: kind}
	m.skills = append(m.skills, s)
	return s, nil
}

func (m *memAPI) CreateOfferedSkill(_ context.Context, req models.CreateSkillRequest) (models.Skill, error) {
	return m.add(models.SkillOffered, req)
}

func (m *memAPI) CreateRequestedSkill(_ context.Context, req models.CreateSkillRequest) (models.Skill, error) {
	return m.add(models.SkillRequested, req)
}

func seededAPI() *memAPI {
	return &memAPI{
		users: []models.User{
			{ID: 1, Name: "Ada", Email: "ada@example.com", Location: "London"},
		},
		skills: []models.Skill{
			{ID: 1, SkillName: "Math", UserID: 1, Kind: models.SkillOffered},
			{ID: 2, SkillName: "Knitting", UserID: 1, Kind: models.SkillRequested},
		},
	}
}

func newTestApp(t *testing.T, api *memAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false)
	var out bytes.Buffer
	return newApp(context.Background(), api, logging.Discard(), strings.NewReader(input), &out), &out
}

func TestApp_Run_OpensMarketplace(t *testing.T) {
	a, out := newTestApp(t, seededAPI(), "tab requested\nquit\n")
	a.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Welcome to SkillSwap CLI")
	assert.Contains(t, s, "Skill marketplace [offered] offered: 1, requested: 1")
	assert.Contains(t, s, "#1 Math (user 1)")
	assert.Contains(t, s, "Skill marketplace [requested]")
	assert.Contains(t, s, "#2 Knitting (user 1)")
	assert.Equal(t, router.ScreenMarketplace, a.screen)
}

func TestApp_Tab_Unknown(t *testing.T) {
	a, _ := newTestApp(t, seededAPI(), "")
	err := a.Tab(context.Background(), "favourites")
	require.ErrorIs(t, err, models.ErrUnknownSkillKind)
}

func TestApp_Users_ShowsProfileLinks(t *testing.T) {
	a, out := newTestApp(t, seededAPI(), "")
	require.NoError(t, a.Users(context.Background()))

	assert.Contains(t, out.String(), "Users (1)")
	assert.Contains(t, out.String(), "/users/1")
	assert.Equal(t, "(users)", a.getStatus())
}

func TestApp_AddUser(t *testing.T) {
	api := seededAPI()
	a, out := newTestApp(t, api, "Grace\ngrace@example.com\nNYC\n")

	require.NoError(t, a.AddUser(context.Background()))

	assert.Len(t, api.users, 2)
	assert.Contains(t, out.String(), "Users (2)")
	assert.Contains(t, out.String(), "grace@example.com")
	assert.Equal(t, models.CreateUserRequest{}, a.users.NewUser.Get())
}

func TestApp_AddUser_ValidationShownNotReturned(t *testing.T) {
	api := seededAPI()
	a, out := newTestApp(t, api, "\n\n\n")

	require.NoError(t, a.AddUser(context.Background()))

	assert.Len(t, api.users, 1)
	assert.Contains(t, out.String(), "Error: "+viewmodels.MsgNameRequired)
}

func TestApp_OpenProfileAndAddSkill(t *testing.T) {
	api := seededAPI()
	a, out := newTestApp(t, api, "Chess\nopenings\n")
	ctx := context.Background()

	require.NoError(t, a.Open(ctx, "/users/1"))
	assert.Equal(t, router.ScreenUserProfile, a.screen)
	assert.Equal(t, "(user-profile /users/1)", a.getStatus())
	assert.Contains(t, out.String(), "Ada <ada@example.com>, London")

	require.NoError(t, a.AddSkill(ctx, models.SkillOffered))
	assert.Contains(t, out.String(), "Chess: openings (user 1)")
	assert.Len(t, a.profile.OfferedSkills.Get(), 2)
}

func TestApp_AddSkill_NeedsProfile(t *testing.T) {
	a, _ := newTestApp(t, seededAPI(), "")
	err := a.AddSkill(context.Background(), models.SkillRequested)
	require.ErrorIs(t, err, ErrNoProfileOpen)
}

func TestApp_Profile_BadID(t *testing.T) {
	a, _ := newTestApp(t, seededAPI(), "")

	err := a.Profile(context.Background(), "zero")
	require.Error(t, err)
	assert.Equal(t, router.Screen(""), a.screen)
}

func TestApp_Open_Unknown(t *testing.T) {
	a, _ := newTestApp(t, seededAPI(), "")
	err := a.Open(context.Background(), "/admin")
	require.ErrorIs(t, err, router.ErrNoRoute)
}

func TestApp_Show_Nothing(t *testing.T) {
	a, out := newTestApp(t, seededAPI(), "")
	require.NoError(t, a.Show(context.Background()))
	assert.Contains(t, out.String(), "Nothing to show yet")
	assert.Equal(t, "", a.getStatus())
}

func TestApp_Skills_ShowsErrors(t *testing.T) {
	api := seededAPI()
	api.fail = errors.New("down")
	a, out := newTestApp(t, api, "")

	require.NoError(t, a.Skills(context.Background()))
	assert.Contains(t, out.String(), "Error: ")
	assert.Contains(t, out.String(), "(none)")
}
