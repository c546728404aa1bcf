package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "health-and-fitness", Slugify("HEALTH AND FITNESS"))
	assert.Equal(t, "sarahs-shop", Slugify("Sarah's  Shop!!"))
	assert.Equal(t, "premium-wireless-headphones", Slugify("Premium Wireless Headphones"))
	assert.Equal(t, "a-b", Slugify("a - b"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify("   "))
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range []string{
		"HEALTH AND FITNESS",
		"Sarah's  Shop!!",
		"already-valid-slug",
		"MiXeD Case 42",
	} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", in)
	}
}
