package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillKind(t *testing.T) {
	k, err := ParseSkillKind("Offered")
	require.NoError(t, err)
	assert.Equal(t, SkillOffered, k)

	k, err = ParseSkillKind(" requested ")
	require.NoError(t, err)
	assert.Equal(t, SkillRequested, k)

	_, err = ParseSkillKind("wanted")
	require.ErrorIs(t, err, ErrUnknownSkillKind)
}

func TestSkill_JSONOmitsKind(t *testing.T) {
	s := Skill{ID: 1, SkillName: "Go", Description: "backend", UserID: 7, Kind: SkillOffered}

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"skillName":"Go","description":"backend","userId":7}`, string(b))
}

func TestCreateSkillRequest_JSON(t *testing.T) {
	b, err := json.Marshal(CreateSkillRequest{SkillName: "Chess", UserID: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"skillName":"Chess","description":"","userId":3}`, string(b))
}

func TestWithKind(t *testing.T) {
	skills := WithKind([]Skill{{ID: 1}, {ID: 2}}, SkillRequested)
	for _, s := range skills {
		assert.Equal(t, SkillRequested, s.Kind)
	}
	assert.Empty(t, WithKind(nil, SkillOffered))
}

func TestSkill_String(t *testing.T) {
	assert.Equal(t, "#1 Go (user 7)", Skill{ID: 1, SkillName: "Go", UserID: 7}.String())
	assert.Equal(t, "#1 Go: tutoring (user 7)", Skill{ID: 1, SkillName: "Go", Description: "tutoring", UserID: 7}.String())
}
