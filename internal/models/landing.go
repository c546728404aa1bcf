package models

// LandingPageModel is a per-product marketing page assembled from structured
// copy fields plus ordered child lists of features, testimonials and FAQs.
// Owned by exactly one user; only published pages are publicly visible.
type LandingPageModel struct {
	Base
	UserID               string `json:"user_id"                gorm:"type:uuid;index;not null"`
	ProductName          string `json:"product_name"           gorm:"not null"`
	PrimaryAffiliateLink string `json:"primary_affiliate_link" gorm:"type:text"`
	TargetAudience       string `json:"target_audience"        gorm:"type:text"`
	AffiliateDisclosure  string `json:"affiliate_disclosure"   gorm:"type:text"`
	MainHeadline         string `json:"main_headline"          gorm:"type:text"`
	SubHeadline          string `json:"sub_headline"           gorm:"type:text"`
	HeroImageURL         string `json:"hero_image_url"         gorm:"type:text"`
	HeroVideoURL         string `json:"hero_video_url"         gorm:"type:text"`
	PrimaryCTAText       string `json:"primary_cta_text"`
	ProblemHeadline      string `json:"problem_headline"       gorm:"type:text"`
	ProblemDescription   string `json:"problem_description"    gorm:"type:text"`
	SolutionHeadline     string `json:"solution_headline"      gorm:"type:text"`
	SolutionDescription  string `json:"solution_description"   gorm:"type:text"`
	SocialProofHeadline  string `json:"social_proof_headline"  gorm:"type:text"`
	OfferHeadline        string `json:"offer_headline"         gorm:"type:text"`
	UrgencyScarcityText  string `json:"urgency_scarcity_text"  gorm:"type:text"`
	RiskReversalGuarantee string `json:"risk_reversal_guarantee" gorm:"type:text"`
	FinalCTAText         string `json:"final_cta_text"`
	FAQHeadline          string `json:"faq_headline"           gorm:"type:text"`
	Slug                 string `json:"slug"                   gorm:"index;not null"`
	IsPublished          bool   `json:"is_published"           gorm:"default:false"`

	Features     []FeatureModel     `json:"features,omitempty"     gorm:"foreignKey:LandingPageID;constraint:OnDelete:CASCADE"`
	Testimonials []TestimonialModel `json:"testimonials,omitempty" gorm:"foreignKey:LandingPageID;constraint:OnDelete:CASCADE"`
	FAQs         []FAQModel         `json:"faqs,omitempty"         gorm:"foreignKey:LandingPageID;constraint:OnDelete:CASCADE"`
}

func (LandingPageModel) TableName() string { return "landing_pages" }

// FeatureModel is a landing page benefit bullet. Fully replaced on edit.
type FeatureModel struct {
	Base
	LandingPageID      string `json:"-"                   gorm:"type:uuid;index;not null"`
	FeatureIcon        string `json:"feature_icon"`
	FeatureTitle       string `json:"feature_title"`
	BenefitDescription string `json:"benefit_description" gorm:"type:text"`
	DisplayOrder       int    `json:"display_order"       gorm:"not null"`
}

func (FeatureModel) TableName() string { return "features" }

// TestimonialModel is a landing page customer quote. Fully replaced on edit.
type TestimonialModel struct {
	Base
	LandingPageID    string `json:"-"                 gorm:"type:uuid;index;not null"`
	CustomerName     string `json:"customer_name"`
	CustomerLocation string `json:"customer_location"`
	StarRating       int    `json:"star_rating"       gorm:"default:5"`
	TestimonialQuote string `json:"testimonial_quote" gorm:"type:text"`
	DisplayOrder     int    `json:"display_order"     gorm:"not null"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

// FAQModel is a landing page question/answer pair. Fully replaced on edit.
type FAQModel struct {
	Base
	LandingPageID string `json:"-"             gorm:"type:uuid;index;not null"`
	Question      string `json:"question"      gorm:"type:text"`
	Answer        string `json:"answer"        gorm:"type:text"`
	DisplayOrder  int    `json:"display_order" gorm:"not null"`
}

func (FAQModel) TableName() string { return "faqs" }
