package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage_SourceURL(t *testing.T) {
	p := &Package{Description: "Emoji everywhere. Source: https://github.com/someone/emoji-pack."}
	assert.Equal(t, "https://github.com/someone/emoji-pack", p.SourceURL())
}

func TestPackage_SourceURL_FirstMatchWins(t *testing.T) {
	p := &Package{Description: "See https://github.com/a/b and https://github.com/c/d"}
	assert.Equal(t, "https://github.com/a/b", p.SourceURL())
}

func TestPackage_SourceURL_NoMatch(t *testing.T) {
	p := &Package{Description: "no links here, not even https://example.com/a/b"}
	assert.Equal(t, "", p.SourceURL())
}

func TestPackage_HasAllTags(t *testing.T) {
	p := &Package{Tags: []string{"emoji", "Fun", "unicode"}}

	assert.True(t, p.HasAllTags(nil))
	assert.True(t, p.HasAllTags([]string{"emoji"}))
	assert.True(t, p.HasAllTags([]string{"fun", "emoji"}))
	assert.False(t, p.HasAllTags([]string{"emoji", "productivity"}))
}
