package viewmodels

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/reactive"
	"github.com/dmitrijs2005/skillswap/internal/client/task"
	"github.com/dmitrijs2005/skillswap/internal/logging"
)

// UserList shows all users and a form for registering a new one.
type UserList struct {
	*base

	Users          *reactive.Cell[[]models.User]
	ShowCreateForm *reactive.Cell[bool]
	NewUser        *reactive.Cell[models.CreateUserRequest]
}

func NewUserList(loop *task.Loop, api client.API, log logging.Logger) *UserList {
	return &UserList{
		base:           newBase(loop, api, log, "users"),
		Users:          reactive.NewCell([]models.User{}),
		ShowCreateForm: reactive.NewCell(false),
		NewUser:        reactive.NewCell(models.CreateUserRequest{}),
	}
}

func (u *UserList) Initialize() {
	u.LoadUsers()
}

func (u *UserList) LoadUsers() {
	u.loop.Do(u.loadUsers)
}

func (u *UserList) loadUsers() {
	u.beginLoad()

	task.Go(u.loop, u.api.GetUsers,
		func(users []models.User) {
			u.Users.Set(users)
			u.Loading.Set(false)
		},
		func(err error) {
			u.fail(MsgLoadUsers, err)
			u.Loading.Set(false)
		},
	)
}

// CreateUser submits the NewUser draft. Name and then email must be set;
// a violation is returned and nothing is sent. On success the list is
// reloaded from the backend and the form is reset.
func (u *UserList) CreateUser() error {
	var err error
	u.loop.Do(func() { err = u.createUser() })
	return err
}

func (u *UserList) createUser() error {
	draft := u.NewUser.Get()
	if draft.Name == "" {
		return u.reject(ErrNameRequired)
	}
	if draft.Email == "" {
		return u.reject(ErrEmailRequired)
	}

	u.Loading.Set(true)

	task.Go(u.loop,
		func(ctx context.Context) (models.User, error) { return u.api.CreateUser(ctx, draft) },
		func(models.User) {
			u.loadUsers()
			u.resetForm()
			u.Loading.Set(false)
		},
		func(err error) {
			u.fail(MsgCreateUser, err, "email", draft.Email)
			u.Loading.Set(false)
		},
	)
	return nil
}

// ResetForm empties the draft and hides the form.
func (u *UserList) ResetForm() {
	u.loop.Do(u.resetForm)
}

func (u *UserList) resetForm() {
	u.NewUser.Set(models.CreateUserRequest{})
	u.ShowCreateForm.Set(false)
}

func (u *UserList) SetShowCreateForm(show bool) {
	u.loop.Do(func() { u.ShowCreateForm.Set(show) })
}

func (u *UserList) SetNewUser(draft models.CreateUserRequest) {
	u.loop.Do(func() { u.NewUser.Set(draft) })
}

// UpdateNewUser applies fn to the current draft.
func (u *UserList) UpdateNewUser(fn func(models.CreateUserRequest) models.CreateUserRequest) {
	u.loop.Do(func() { u.NewUser.Update(fn) })
}
