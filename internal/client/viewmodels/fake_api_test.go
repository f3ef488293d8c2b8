package viewmodels

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
)

var errBackend = errors.New("backend down")

// fakeAPI implements client.API. Results are preset per call; a call can be
// held with hold() until release() so tests pick the completion order.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	gates map[string]chan struct{}

	offered      []models.Skill
	offeredErr   error
	requested    []models.Skill
	requestedErr error

	users    []models.User
	usersErr error

	user    map[int64]models.User
	userErr error

	userOffered      map[int64][]models.Skill
	userOfferedErr   error
	userRequested    map[int64][]models.Skill
	userRequestedErr error

	createUserErr      error
	createOfferedErr   error
	createRequestedErr error

	createdUsers  []models.CreateUserRequest
	createdSkills []models.CreateSkillRequest
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		gates:         map[string]chan struct{}{},
		user:          map[int64]models.User{},
		userOffered:   map[int64][]models.Skill{},
		userRequested: map[int64][]models.Skill{},
	}
}

func (f *fakeAPI) hold(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gates[call] = make(chan struct{})
}

func (f *fakeAPI) release(call string) {
	f.mu.Lock()
	g := f.gates[call]
	delete(f.gates, call)
	f.mu.Unlock()
	close(g)
}

// detach removes the gate for call without opening it. Calls already
// waiting keep waiting until the returned channel is closed.
func (f *fakeAPI) detach(call string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := f.gates[call]
	delete(f.gates, call)
	return g
}

func (f *fakeAPI) enter(ctx context.Context, call string) error {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	g := f.gates[call]
	f.mu.Unlock()

	if g == nil {
		return nil
	}
	select {
	case <-g:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) set(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn()
}

func (f *fakeAPI) GetOfferedSkills(ctx context.Context) ([]models.Skill, error) {
	if err := f.enter(ctx, "GetOfferedSkills"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offered, f.offeredErr
}

func (f *fakeAPI) GetRequestedSkills(ctx context.Context) ([]models.Skill, error) {
	if err := f.enter(ctx, "GetRequestedSkills"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requested, f.requestedErr
}

func (f *fakeAPI) GetUsers(ctx context.Context) ([]models.User, error) {
	if err := f.enter(ctx, "GetUsers"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User(nil), f.users...), f.usersErr
}

func (f *fakeAPI) GetUser(ctx context.Context, id int64) (models.User, error) {
	if err := f.enter(ctx, "GetUser"); err != nil {
		return models.User{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.userErr != nil {
		return models.User{}, f.userErr
	}
	u, ok := f.user[id]
	if !ok {
		return models.User{}, errors.New("not found")
	}
	return u, nil
}

func (f *fakeAPI) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := f.enter(ctx, "CreateUser"); err != nil {
		return models.User{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createUserErr != nil {
		return models.User{}, f.createUserErr
	}
	f.createdUsers = append(f.createdUsers, req)
	u := models.User{ID: int64(len(f.users) + 1), Name: req.Name, Email: req.Email, Location: req.Location}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeAPI) GetUserOfferedSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	if err := f.enter(ctx, "GetUserOfferedSkills"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Skill(nil), f.userOffered[userID]...), f.userOfferedErr
}

func (f *fakeAPI) GetUserRequestedSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	if err := f.enter(ctx, "GetUserRequestedSkills"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Skill(nil), f.userRequested[userID]...), f.userRequestedErr
}

func (f *fakeAPI) createSkill(ctx context.Context, call string, kind models.SkillKind, fail error, req models.CreateSkillRequest) (models.Skill, error) {
	if err := f.enter(ctx, call); err != nil {
		return models.Skill{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if fail != nil {
		return models.Skill{}, fail
	}
	f.createdSkills = append(f.createdSkills, req)
	s := models.Skill{ID: int64(100 + len(f.createdSkills)), SkillName: req.SkillName, Description: req.Description, UserID: req.UserID, Kind: kind}
	if kind == models.SkillOffered {
		f.userOffered[req.UserID] = append(f.userOffered[req.UserID], s)
	} else {
		f.userRequested[req.UserID] = append(f.userRequested[req.UserID], s)
	}
	return s, nil
}

func (f *fakeAPI) CreateOfferedSkill(ctx context.Context, req models.CreateSkillRequest) (models.Skill, error) {
	f.mu.Lock()
	fail := f.createOfferedErr
	f.mu.Unlock()
	return f.createSkill(ctx, "CreateOfferedSkill", models.SkillOffered, fail, req)
}

func (f *fakeAPI) CreateRequestedSkill(ctx context.Context, req models.CreateSkillRequest) (models.Skill, error) {
	f.mu.Lock()
	fail := f.createRequestedErr
	f.mu.Unlock()
	return f.createSkill(ctx, "CreateRequestedSkill", models.SkillRequested, fail, req)
}
