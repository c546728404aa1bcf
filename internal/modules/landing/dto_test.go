package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promostack/storefront-core/internal/models"
)

func TestBuildFeaturesAssignsDenseOrder(t *testing.T) {
	rows := buildFeatures("page-1", []FeatureDTO{
		{FeatureIcon: "zap", FeatureTitle: "Fast"},
		{FeatureIcon: "shield", FeatureTitle: "Safe"},
		{FeatureIcon: "star", FeatureTitle: "Loved"},
	})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, "page-1", row.LandingPageID)
		assert.Equal(t, i+1, row.DisplayOrder)
	}
	assert.Equal(t, "Fast", rows[0].FeatureTitle)
	assert.Equal(t, "Loved", rows[2].FeatureTitle)
}

func TestBuildTestimonialsReplacementSemantics(t *testing.T) {
	// Editing [A, B] down to [C] must yield exactly one row at order 1.
	before := buildTestimonials("page-1", []TestimonialDTO{
		{CustomerName: "A", StarRating: 5},
		{CustomerName: "B", StarRating: 4},
	})
	require.Len(t, before, 2)

	after := buildTestimonials("page-1", []TestimonialDTO{
		{CustomerName: "C", StarRating: 5},
	})
	require.Len(t, after, 1)
	assert.Equal(t, "C", after[0].CustomerName)
	assert.Equal(t, 1, after[0].DisplayOrder)
}

func TestBuildTestimonialsClampsRating(t *testing.T) {
	rows := buildTestimonials("page-1", []TestimonialDTO{
		{CustomerName: "low", StarRating: 0},
		{CustomerName: "high", StarRating: 9},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].StarRating)
	assert.Equal(t, 5, rows[1].StarRating)
}

func TestBuildFAQsEmptyInput(t *testing.T) {
	assert.Empty(t, buildFAQs("page-1", nil))
	assert.Empty(t, buildFAQs("page-1", []FAQDTO{}))
}

func TestPageFieldsApply(t *testing.T) {
	fields := PageFields{
		ProductName:    "Ceramic Mug",
		MainHeadline:   "The last mug you will buy",
		PrimaryCTAText: "Get yours",
	}

	page := &models.LandingPageModel{}
	fields.apply(page)

	assert.Equal(t, "Ceramic Mug", page.ProductName)
	assert.Equal(t, "The last mug you will buy", page.MainHeadline)
	assert.Equal(t, "Get yours", page.PrimaryCTAText)
	assert.Empty(t, page.SubHeadline)
}
