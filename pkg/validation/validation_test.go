package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Title    string   `json:"title" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Color    string   `json:"color" validate:"required,oneof=cyan purple"`
	IconName string   `json:"iconName" validate:"required"`
	Tags     []string `json:"tags" validate:"omitempty,dive,required"`
}

func TestCheckValidPayload(t *testing.T) {
	v := New()
	err := Check(v, samplePayload{Title: "t", Email: "a@b.co", Color: "cyan", IconName: "SiGo"})
	assert.Nil(t, err)
}

func TestCheckKeysByWireName(t *testing.T) {
	v := New()
	err := Check(v, samplePayload{Email: "nope", Color: "magenta"})
	require.NotNil(t, err)

	assert.Contains(t, err.Fields, "title")
	assert.Contains(t, err.Fields, "email")
	assert.Contains(t, err.Fields, "color")
	assert.Contains(t, err.Fields, "iconName")
	assert.NotContains(t, err.Fields, "Title")
}

func TestCheckMessages(t *testing.T) {
	v := New()
	err := Check(v, samplePayload{Email: "nope", Color: "magenta"})
	require.NotNil(t, err)

	assert.Equal(t, []string{"Title is required"}, err.Fields["title"])
	assert.Equal(t, []string{"Invalid email address"}, err.Fields["email"])
	assert.Equal(t, []string{"Color must be one of: cyan, purple"}, err.Fields["color"])
	assert.Equal(t, []string{"Icon name is required"}, err.Fields["iconName"])
}

func TestCheckListElementFailuresStayOnField(t *testing.T) {
	v := New()
	err := Check(v, samplePayload{Title: "t", Email: "a@b.co", Color: "cyan", IconName: "SiGo", Tags: []string{"ok", ""}})
	require.NotNil(t, err)

	require.Contains(t, err.Fields, "tags")
	assert.Len(t, err.Fields["tags"], 1)
}
