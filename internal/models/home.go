// Package models defines the persistent domain types for the site.
package models

import "time"

// Home is the singleton record behind the public landing page. Every text
// field is stored as-is; repeating sections (hero stats, services, strengths,
// concept points, contact examples, president points, profile rows) live in
// the *JSON columns as serialized lists.
type Home struct {
	ID int64

	// Navigation labels.
	NavBrand     string
	NavTop       string
	NavConcept   string
	NavNews      string
	NavServices  string
	NavStrengths string
	NavProfile   string
	NavCTA       string

	// Hero section.
	HeroKicker       string
	HeroTitle        string
	HeroSubtitle     string
	HeroBGImage      string
	HeroPrimaryCTA   string
	HeroSecondaryCTA string
	HeroStatsJSON    string

	// Concept / message section.
	ConceptTitle      string
	ConceptSubtitle   string
	ConceptPointsJSON string
	MissionTitle      string
	MissionBody       string
	VisionTitle       string
	VisionBody        string
	ValueTitle        string
	ValueBody         string

	// President message.
	PresidentLabel      string
	PresidentTitle      string
	PresidentName       string
	PresidentRole       string
	PresidentBody       string
	PresidentQuote      string
	PresidentPointsJSON string

	// Section headings.
	ServicesSectionTitle     string
	ServicesSectionSubtitle  string
	StrengthsSectionTitle    string
	StrengthsSectionSubtitle string

	ServicesJSON  string
	StrengthsJSON string

	// Company profile.
	ProfileTitle    string
	ProfileSubtitle string
	ProfileRowsJSON string
	CompanyName     string
	Address         string
	Representative  string
	Established     string
	BusinessDesc    string
	Clients         string

	// Contact / CTA.
	CTATitle             string
	CTASubtitle          string
	CTAButtonText        string
	CTAPhoneText         string
	ContactFormTitle     string
	ContactFormNote      string
	ContactExamplesTitle string
	ContactExamplesJSON  string
	AccessTitle          string
	AccessAddress        string

	// Footer.
	FooterCopyright    string
	FooterLinkTop      string
	FooterLinkServices string
	FooterLinkProfile  string

	UpdatedAt time.Time
}

// HomePatch is a partial update of Home. A nil field means "leave the stored
// value alone"; a non-nil field overwrites it, including with an empty value.
// List fields carry the already-normalized records and fully replace the
// stored list when present.
type HomePatch struct {
	NavBrand     *string `json:"nav_brand_text,omitempty"`
	NavTop       *string `json:"nav_top_text,omitempty"`
	NavConcept   *string `json:"nav_concept_text,omitempty"`
	NavNews      *string `json:"nav_news_text,omitempty"`
	NavServices  *string `json:"nav_services_text,omitempty"`
	NavStrengths *string `json:"nav_strengths_text,omitempty"`
	NavProfile   *string `json:"nav_profile_text,omitempty"`
	NavCTA       *string `json:"nav_cta_text,omitempty"`

	HeroKicker       *string     `json:"hero_kicker,omitempty"`
	HeroTitle        *string     `json:"hero_title,omitempty"`
	HeroSubtitle     *string     `json:"hero_subtitle,omitempty"`
	HeroBGImage      *string     `json:"hero_bg_image,omitempty"`
	HeroPrimaryCTA   *string     `json:"hero_primary_cta,omitempty"`
	HeroSecondaryCTA *string     `json:"hero_secondary_cta,omitempty"`
	HeroStats        *[]HeroStat `json:"hero_stats,omitempty"`

	ConceptTitle    *string         `json:"concept_title,omitempty"`
	ConceptSubtitle *string         `json:"concept_subtitle,omitempty"`
	ConceptPoints   *[]ConceptPoint `json:"concept_points,omitempty"`
	MissionTitle    *string         `json:"mission_title,omitempty"`
	MissionBody     *string         `json:"mission_body,omitempty"`
	VisionTitle     *string         `json:"vision_title,omitempty"`
	VisionBody      *string         `json:"vision_body,omitempty"`
	ValueTitle      *string         `json:"value_title,omitempty"`
	ValueBody       *string         `json:"value_body,omitempty"`

	PresidentLabel  *string   `json:"president_message_label,omitempty"`
	PresidentTitle  *string   `json:"president_message_title,omitempty"`
	PresidentName   *string   `json:"president_name,omitempty"`
	PresidentRole   *string   `json:"president_role,omitempty"`
	PresidentBody   *string   `json:"president_message_body,omitempty"`
	PresidentQuote  *string   `json:"president_message_quote,omitempty"`
	PresidentPoints *[]string `json:"president_points,omitempty"`

	ServicesSectionTitle     *string `json:"services_section_title,omitempty"`
	ServicesSectionSubtitle  *string `json:"services_section_subtitle,omitempty"`
	StrengthsSectionTitle    *string `json:"strengths_section_title,omitempty"`
	StrengthsSectionSubtitle *string `json:"strengths_section_subtitle,omitempty"`

	Services  *[]ServiceItem  `json:"services,omitempty"`
	Strengths *[]StrengthItem `json:"strengths,omitempty"`

	ProfileTitle    *string       `json:"profile_title,omitempty"`
	ProfileSubtitle *string       `json:"profile_subtitle,omitempty"`
	ProfileRows     *[]ProfileRow `json:"profile_rows,omitempty"`
	CompanyName     *string       `json:"company_name,omitempty"`
	Address         *string       `json:"address,omitempty"`
	Representative  *string       `json:"representative,omitempty"`
	Established     *string       `json:"established,omitempty"`
	BusinessDesc    *string       `json:"business_desc,omitempty"`
	Clients         *string       `json:"clients,omitempty"`

	CTATitle             *string   `json:"cta_title,omitempty"`
	CTASubtitle          *string   `json:"cta_subtitle,omitempty"`
	CTAButtonText        *string   `json:"cta_button_text,omitempty"`
	CTAPhoneText         *string   `json:"cta_phone_text,omitempty"`
	ContactFormTitle     *string   `json:"contact_form_title,omitempty"`
	ContactFormNote      *string   `json:"contact_form_note,omitempty"`
	ContactExamplesTitle *string   `json:"contact_examples_title,omitempty"`
	ContactExamples      *[]string `json:"contact_examples,omitempty"`
	AccessTitle          *string   `json:"access_title,omitempty"`
	AccessAddress        *string   `json:"access_address,omitempty"`

	FooterCopyright    *string `json:"footer_copyright,omitempty"`
	FooterLinkTop      *string `json:"footer_link_top,omitempty"`
	FooterLinkServices *string `json:"footer_link_services,omitempty"`
	FooterLinkProfile  *string `json:"footer_link_profile,omitempty"`
}
