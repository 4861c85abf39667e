package sitesvc

import (
	"github.com/eihojp/corpsite/internal/jsonlist"
	"github.com/eihojp/corpsite/internal/models"
)

// HomeView is the read-only public projection of the home record: every list
// column decoded, every unset field defaulted. It is the payload of the
// public home API and the base of the admin edit view.
type HomeView struct {
	NavBrand     string `json:"nav_brand_text"`
	NavTop       string `json:"nav_top_text"`
	NavConcept   string `json:"nav_concept_text"`
	NavNews      string `json:"nav_news_text"`
	NavServices  string `json:"nav_services_text"`
	NavStrengths string `json:"nav_strengths_text"`
	NavProfile   string `json:"nav_profile_text"`
	NavCTA       string `json:"nav_cta_text"`

	HeroKicker       string            `json:"hero_kicker"`
	HeroTitle        string            `json:"hero_title"`
	HeroSubtitle     string            `json:"hero_subtitle"`
	HeroBGImage      string            `json:"hero_bg_image"`
	HeroPrimaryCTA   string            `json:"hero_primary_cta"`
	HeroSecondaryCTA string            `json:"hero_secondary_cta"`
	HeroStats        []models.HeroStat `json:"hero_stats"`

	ConceptTitle    string                `json:"concept_title"`
	ConceptSubtitle string                `json:"concept_subtitle"`
	ConceptPoints   []models.ConceptPoint `json:"concept_points"`
	MissionTitle    string                `json:"mission_title"`
	MissionBody     string                `json:"mission_body"`
	VisionTitle     string                `json:"vision_title"`
	VisionBody      string                `json:"vision_body"`
	ValueTitle      string                `json:"value_title"`
	ValueBody       string                `json:"value_body"`

	PresidentLabel  string   `json:"president_message_label"`
	PresidentTitle  string   `json:"president_message_title"`
	PresidentName   string   `json:"president_name"`
	PresidentRole   string   `json:"president_role"`
	PresidentBody   string   `json:"president_message_body"`
	PresidentQuote  string   `json:"president_message_quote"`
	PresidentPoints []string `json:"president_points"`

	ServicesSectionTitle     string `json:"services_section_title"`
	ServicesSectionSubtitle  string `json:"services_section_subtitle"`
	StrengthsSectionTitle    string `json:"strengths_section_title"`
	StrengthsSectionSubtitle string `json:"strengths_section_subtitle"`

	Services  []models.ServiceItem  `json:"services"`
	Strengths []models.StrengthItem `json:"strengths"`

	ProfileTitle    string              `json:"profile_title"`
	ProfileSubtitle string              `json:"profile_subtitle"`
	CompanyName     string              `json:"company_name"`
	Address         string              `json:"address"`
	Representative  string              `json:"representative"`
	Established     string              `json:"established"`
	BusinessDesc    string              `json:"business_desc"`
	Clients         string              `json:"clients"`
	ProfileRows     []models.ProfileRow `json:"profile_rows"`

	CTATitle             string   `json:"cta_title"`
	CTASubtitle          string   `json:"cta_subtitle"`
	CTAButtonText        string   `json:"cta_button_text"`
	CTAPhoneText         string   `json:"cta_phone_text"`
	ContactFormTitle     string   `json:"contact_form_title"`
	ContactFormNote      string   `json:"contact_form_note"`
	ContactExamplesTitle string   `json:"contact_examples_title"`
	ContactExamples      []string `json:"contact_examples"`
	AccessTitle          string   `json:"access_title"`
	AccessAddress        string   `json:"access_address"`

	FooterCopyright    string `json:"footer_copyright"`
	FooterLinkTop      string `json:"footer_link_top"`
	FooterLinkServices string `json:"footer_link_services"`
	FooterLinkProfile  string `json:"footer_link_profile"`
}

// ProjectHome builds the public view of a home record. Pure transformation,
// no side effects.
func ProjectHome(h *models.Home) HomeView {
	return HomeView{
		NavBrand:     h.NavBrand,
		NavTop:       h.NavTop,
		NavConcept:   orDefault(h.NavConcept, "メッセージ"),
		NavNews:      orDefault(h.NavNews, "ニュース"),
		NavServices:  h.NavServices,
		NavStrengths: h.NavStrengths,
		NavProfile:   h.NavProfile,
		NavCTA:       h.NavCTA,

		HeroKicker:       h.HeroKicker,
		HeroTitle:        h.HeroTitle,
		HeroSubtitle:     h.HeroSubtitle,
		HeroBGImage:      h.HeroBGImage,
		HeroPrimaryCTA:   h.HeroPrimaryCTA,
		HeroSecondaryCTA: h.HeroSecondaryCTA,
		HeroStats:        jsonlist.DecodeHeroStats(h.HeroStatsJSON),

		ConceptTitle:    h.ConceptTitle,
		ConceptSubtitle: h.ConceptSubtitle,
		ConceptPoints:   jsonlist.DecodeConceptPoints(h.ConceptPointsJSON),
		MissionTitle:    h.MissionTitle,
		MissionBody:     h.MissionBody,
		VisionTitle:     h.VisionTitle,
		VisionBody:      h.VisionBody,
		ValueTitle:      h.ValueTitle,
		ValueBody:       h.ValueBody,

		PresidentLabel:  h.PresidentLabel,
		PresidentTitle:  h.PresidentTitle,
		PresidentName:   h.PresidentName,
		PresidentRole:   h.PresidentRole,
		PresidentBody:   h.PresidentBody,
		PresidentQuote:  h.PresidentQuote,
		PresidentPoints: jsonlist.DecodeStringList(h.PresidentPointsJSON),

		ServicesSectionTitle:     h.ServicesSectionTitle,
		ServicesSectionSubtitle:  h.ServicesSectionSubtitle,
		StrengthsSectionTitle:    h.StrengthsSectionTitle,
		StrengthsSectionSubtitle: h.StrengthsSectionSubtitle,

		Services:  jsonlist.DecodeServices(h.ServicesJSON),
		Strengths: jsonlist.DecodeStrengths(h.StrengthsJSON),

		ProfileTitle:    h.ProfileTitle,
		ProfileSubtitle: h.ProfileSubtitle,
		CompanyName:     h.CompanyName,
		Address:         h.Address,
		Representative:  h.Representative,
		Established:     h.Established,
		BusinessDesc:    h.BusinessDesc,
		Clients:         h.Clients,
		ProfileRows:     projectProfileRows(h),

		CTATitle:             h.CTATitle,
		CTASubtitle:          h.CTASubtitle,
		CTAButtonText:        h.CTAButtonText,
		CTAPhoneText:         h.CTAPhoneText,
		ContactFormTitle:     h.ContactFormTitle,
		ContactFormNote:      h.ContactFormNote,
		ContactExamplesTitle: h.ContactExamplesTitle,
		ContactExamples:      jsonlist.DecodeStringList(h.ContactExamplesJSON),
		AccessTitle:          h.AccessTitle,
		AccessAddress:        h.AccessAddress,

		FooterCopyright:    h.FooterCopyright,
		FooterLinkTop:      h.FooterLinkTop,
		FooterLinkServices: h.FooterLinkServices,
		FooterLinkProfile:  h.FooterLinkProfile,
	}
}

// projectProfileRows returns the stored dynamic rows, or synthesizes the six
// fixed rows from the legacy scalar columns when no usable row exists.
func projectProfileRows(h *models.Home) []models.ProfileRow {
	if rows := jsonlist.DecodeProfileRows(h.ProfileRowsJSON); len(rows) > 0 {
		return rows
	}
	return []models.ProfileRow{
		{Label: "名称", Value: h.CompanyName},
		{Label: "所在地", Value: h.Address},
		{Label: "代表者", Value: h.Representative},
		{Label: "設立", Value: h.Established},
		{Label: "事業内容", Value: h.BusinessDesc},
		{Label: "主要取引先", Value: h.Clients},
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
