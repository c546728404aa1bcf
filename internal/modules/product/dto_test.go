package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildImagesDenseOrder(t *testing.T) {
	rows := buildImages("p1", []string{"a.png", "", "b.png", "c.png"})
	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, "p1", row.ProductID)
		assert.Equal(t, i+1, row.SortOrder)
	}
	assert.Equal(t, "a.png", rows[0].ImageURL)
	assert.Equal(t, "b.png", rows[1].ImageURL)
	assert.Equal(t, "c.png", rows[2].ImageURL)
}

func TestBuildImagesEmpty(t *testing.T) {
	assert.Empty(t, buildImages("p1", nil))
	assert.Empty(t, buildImages("p1", []string{"", ""}))
}

func TestFirstImage(t *testing.T) {
	assert.Equal(t, "a.png", firstImage([]string{"", "a.png", "b.png"}))
	assert.Equal(t, "", firstImage(nil))
}

func TestValidateNameAndPrice(t *testing.T) {
	price := 9.99
	assert.NoError(t, validateNameAndPrice("Widget", &price))
	assert.Error(t, validateNameAndPrice("", &price))
	assert.Error(t, validateNameAndPrice("   ", &price))
	assert.Error(t, validateNameAndPrice("Widget", nil))
}

func TestNormalizeBadge(t *testing.T) {
	trending := "Trending"
	blank := "  "
	assert.Equal(t, &trending, normalizeBadge(&trending))
	assert.Nil(t, normalizeBadge(&blank))
	assert.Nil(t, normalizeBadge(nil))
}
