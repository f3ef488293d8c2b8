package client

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
)

// API is the SkillSwap backend contract used by the view-models.
// Every call is a single request with a single result.
type API interface {
	GetOfferedSkills(ctx context.Context) ([]models.Skill, error)
	GetRequestedSkills(ctx context.Context) ([]models.Skill, error)

	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	GetUserOfferedSkills(ctx context.Context, userID int64) ([]models.Skill, error)
	GetUserRequestedSkills(ctx context.Context, userID int64) ([]models.Skill, error)
	CreateOfferedSkill(ctx context.Context, req models.CreateSkillRequest) (models.Skill, error)
	CreateRequestedSkill(ctx context.Context, req models.CreateSkillRequest) (models.Skill, error)
}
