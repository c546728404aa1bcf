package landing

import "github.com/promostack/storefront-core/internal/models"

// FeatureDTO, TestimonialDTO and FAQDTO arrive as ordered arrays; their
// position becomes display_order at write time.
type FeatureDTO struct {
	FeatureIcon        string `json:"feature_icon"`
	FeatureTitle       string `json:"feature_title"`
	BenefitDescription string `json:"benefit_description"`
}

type TestimonialDTO struct {
	CustomerName     string `json:"customer_name"`
	CustomerLocation string `json:"customer_location"`
	StarRating       int    `json:"star_rating"`
	TestimonialQuote string `json:"testimonial_quote"`
}

type FAQDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PageFields carries the parent row's editable copy fields.
type PageFields struct {
	ProductName           string `json:"product_name"`
	PrimaryAffiliateLink  string `json:"primary_affiliate_link"`
	TargetAudience        string `json:"target_audience"`
	AffiliateDisclosure   string `json:"affiliate_disclosure"`
	MainHeadline          string `json:"main_headline"`
	SubHeadline           string `json:"sub_headline"`
	HeroImageURL          string `json:"hero_image_url"`
	HeroVideoURL          string `json:"hero_video_url"`
	PrimaryCTAText        string `json:"primary_cta_text"`
	ProblemHeadline       string `json:"problem_headline"`
	ProblemDescription    string `json:"problem_description"`
	SolutionHeadline      string `json:"solution_headline"`
	SolutionDescription   string `json:"solution_description"`
	SocialProofHeadline   string `json:"social_proof_headline"`
	OfferHeadline         string `json:"offer_headline"`
	UrgencyScarcityText   string `json:"urgency_scarcity_text"`
	RiskReversalGuarantee string `json:"risk_reversal_guarantee"`
	FinalCTAText          string `json:"final_cta_text"`
	FAQHeadline           string `json:"faq_headline"`
}

// CreatePageDTO is the request body for creating a landing page.
type CreatePageDTO struct {
	PageFields
	Features     []FeatureDTO     `json:"features"`
	Testimonials []TestimonialDTO `json:"testimonials"`
	FAQs         []FAQDTO         `json:"faqs"`
}

// UpdatePageDTO additionally toggles publication.
type UpdatePageDTO struct {
	PageFields
	IsPublished  bool             `json:"is_published"`
	Features     []FeatureDTO     `json:"features"`
	Testimonials []TestimonialDTO `json:"testimonials"`
	FAQs         []FAQDTO         `json:"faqs"`
}

// PageResponse bundles the parent with its ordered children.
type PageResponse struct {
	models.LandingPageModel
	Features     []models.FeatureModel     `json:"features"`
	Testimonials []models.TestimonialModel `json:"testimonials"`
	FAQs         []models.FAQModel         `json:"faqs"`
}

func (f PageFields) apply(page *models.LandingPageModel) {
	page.ProductName = f.ProductName
	page.PrimaryAffiliateLink = f.PrimaryAffiliateLink
	page.TargetAudience = f.TargetAudience
	page.AffiliateDisclosure = f.AffiliateDisclosure
	page.MainHeadline = f.MainHeadline
	page.SubHeadline = f.SubHeadline
	page.HeroImageURL = f.HeroImageURL
	page.HeroVideoURL = f.HeroVideoURL
	page.PrimaryCTAText = f.PrimaryCTAText
	page.ProblemHeadline = f.ProblemHeadline
	page.ProblemDescription = f.ProblemDescription
	page.SolutionHeadline = f.SolutionHeadline
	page.SolutionDescription = f.SolutionDescription
	page.SocialProofHeadline = f.SocialProofHeadline
	page.OfferHeadline = f.OfferHeadline
	page.UrgencyScarcityText = f.UrgencyScarcityText
	page.RiskReversalGuarantee = f.RiskReversalGuarantee
	page.FinalCTAText = f.FinalCTAText
	page.FAQHeadline = f.FAQHeadline
}

// buildFeatures assigns a dense 1..N display order from array position.
func buildFeatures(pageID string, dtos []FeatureDTO) []models.FeatureModel {
	rows := make([]models.FeatureModel, len(dtos))
	for i, dto := range dtos {
		rows[i] = models.FeatureModel{
			LandingPageID:      pageID,
			FeatureIcon:        dto.FeatureIcon,
			FeatureTitle:       dto.FeatureTitle,
			BenefitDescription: dto.BenefitDescription,
			DisplayOrder:       i + 1,
		}
	}
	return rows
}

func buildTestimonials(pageID string, dtos []TestimonialDTO) []models.TestimonialModel {
	rows := make([]models.TestimonialModel, len(dtos))
	for i, dto := range dtos {
		rating := dto.StarRating
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		rows[i] = models.TestimonialModel{
			LandingPageID:    pageID,
			CustomerName:     dto.CustomerName,
			CustomerLocation: dto.CustomerLocation,
			StarRating:       rating,
			TestimonialQuote: dto.TestimonialQuote,
			DisplayOrder:     i + 1,
		}
	}
	return rows
}

func buildFAQs(pageID string, dtos []FAQDTO) []models.FAQModel {
	rows := make([]models.FAQModel, len(dtos))
	for i, dto := range dtos {
		rows[i] = models.FAQModel{
			LandingPageID: pageID,
			Question:      dto.Question,
			Answer:        dto.Answer,
			DisplayOrder:  i + 1,
		}
	}
	return rows
}
