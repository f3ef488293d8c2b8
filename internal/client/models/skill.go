// Package models defines the users and skills exchanged with the SkillSwap backend.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// SkillKind tells whether a skill is offered or requested by its owner.
// The backend does not store it; it follows from the endpoint a skill was
// fetched from.
type SkillKind string

const (
	SkillOffered   SkillKind = "offered"
	SkillRequested SkillKind = "requested"
)

var ErrUnknownSkillKind = errors.New("unknown skill kind")

// ParseSkillKind accepts "offered" or "requested" in any case.
func ParseSkillKind(s string) (SkillKind, error) {
	switch SkillKind(strings.ToLower(strings.TrimSpace(s))) {
	case SkillOffered:
		return SkillOffered, nil
	case SkillRequested:
		return SkillRequested, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSkillKind, s)
}

type Skill struct {
	ID          int64     `json:"id"`
	SkillName   string    `json:"skillName"`
	Description string    `json:"description"`
	UserID      int64     `json:"userId"`
	Kind        SkillKind `json:"-"`
}

func (s Skill) String() string {
	if s.Description == "" {
		return fmt.Sprintf("#%d %s (user %d)", s.ID, s.SkillName, s.UserID)
	}
	return fmt.Sprintf("#%d %s: %s (user %d)", s.ID, s.SkillName, s.Description, s.UserID)
}

// CreateSkillRequest is the draft submitted when adding a skill to a profile.
type CreateSkillRequest struct {
	SkillName   string `json:"skillName"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"`
}

// WithKind stamps kind on every skill in place and returns the slice.
func WithKind(skills []Skill, kind SkillKind) []Skill {
	for i := range skills {
		skills[i].Kind = kind
	}
	return skills
}
