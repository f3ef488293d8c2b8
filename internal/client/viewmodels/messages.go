package viewmodels

import "errors"

// Messages shown in the Error cell.
const (
	MsgLoadOfferedSkills   = "Error loading offered skills."
	MsgLoadRequestedSkills = "Error loading requested skills."
	MsgLoadUsers           = "Error loading users."
	MsgCreateUser          = "Error creating user."
	MsgLoadUserProfile     = "Error loading user profile."
	MsgAddOfferedSkill     = "Error adding offered skill."
	MsgAddRequestedSkill   = "Error adding requested skill."
	MsgNameRequired        = "Name is required."
	MsgEmailRequired       = "Email is required."
	MsgSkillNameRequired   = "Skill name is required."
	MsgProfileNotLoaded    = "User profile is not loaded."
)

// Validation errors returned synchronously by create operations. The same
// text is written to the Error cell.
var (
	ErrNameRequired      = errors.New(MsgNameRequired)
	ErrEmailRequired     = errors.New(MsgEmailRequired)
	ErrSkillNameRequired = errors.New(MsgSkillNameRequired)
	ErrProfileNotLoaded  = errors.New(MsgProfileNotLoaded)
	ErrNoProfileID       = errors.New("no user id in route")
	ErrUnknownTab        = errors.New("unknown tab")
)
