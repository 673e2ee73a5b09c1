package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetadata(t *testing.T) {
	doc := Document{
		"name":         "openuc2 miniscope",
		"uc2_verified": true,
		"collection":   "microscopes",
		"author":       "jane",
		"github_link":  "https://github.com/openuc2/miniscope",
		"description":  "a small scope",
		"category":     "imaging",
		"version":      "1.2",
		"createdAt":    "2023-04-01",
	}

	m := ExtractMetadata(doc, "miniscope.json")
	assert.Equal(t, "miniscope.json", m.Filename)
	assert.Equal(t, "openuc2 miniscope", m.Name)
	assert.True(t, m.Verified)
	assert.Equal(t, "microscopes", m.Collection)
	assert.Equal(t, "jane", m.Author)
	assert.Equal(t, "https://github.com/openuc2/miniscope", m.GithubLink)
	assert.Equal(t, "a small scope", m.Description)
	assert.Equal(t, "imaging", m.Category)
	assert.Equal(t, "1.2", m.Version)
	assert.Equal(t, "2023-04-01", m.CreatedAt)
	assert.Equal(t, 0, m.TotalComponents)
}

func TestExtractMetadataDefaults(t *testing.T) {
	m := ExtractMetadata(Document{}, "empty.json")
	assert.Equal(t, "empty.json", m.Filename)
	assert.Equal(t, "", m.Name)
	assert.False(t, m.Verified)
	assert.Equal(t, "", m.Collection)
	assert.Equal(t, "", m.Author)
	assert.Equal(t, "", m.GithubLink)
	assert.Equal(t, "", m.Description)
	assert.Equal(t, "", m.Category)
	assert.Equal(t, "", m.Version)
	assert.Equal(t, "", m.CreatedAt)
	assert.Equal(t, 0, m.TotalComponents)
}

func TestExtractMetadataWrongTypes(t *testing.T) {
	doc := Document{
		"name":         42.0,
		"uc2_verified": "yes",
		"author":       []any{"jane"},
	}

	m := ExtractMetadata(doc, "odd.json")
	assert.Equal(t, "", m.Name)
	assert.False(t, m.Verified)
	assert.Equal(t, "", m.Author)
}
