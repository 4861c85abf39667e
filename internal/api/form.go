package api

import (
	"net/url"
	"strings"

	"github.com/eihojp/corpsite/internal/forms"
	"github.com/eihojp/corpsite/internal/models"
)

// patchFromForm converts the admin edit form into a home patch. Only fields
// actually present in the submission end up non-nil, so a partial form stays
// a partial update.
func patchFromForm(form url.Values) models.HomePatch {
	get := func(key string) *string {
		if _, ok := form[key]; !ok {
			return nil
		}
		v := strings.TrimSpace(form.Get(key))
		return &v
	}

	var p models.HomePatch

	p.NavBrand = get("nav_brand_text")
	p.NavTop = get("nav_top_text")
	p.NavConcept = get("nav_concept_text")
	p.NavNews = get("nav_news_text")
	p.NavServices = get("nav_services_text")
	p.NavStrengths = get("nav_strengths_text")
	p.NavProfile = get("nav_profile_text")
	p.NavCTA = get("nav_cta_text")

	p.HeroKicker = get("hero_kicker")
	p.HeroTitle = get("hero_title")
	p.HeroSubtitle = get("hero_subtitle")
	p.HeroBGImage = get("hero_bg_image")
	p.HeroPrimaryCTA = get("hero_primary_cta")
	p.HeroSecondaryCTA = get("hero_secondary_cta")

	p.ConceptTitle = get("concept_title")
	p.ConceptSubtitle = get("concept_subtitle")
	p.MissionTitle = get("mission_title")
	p.MissionBody = get("mission_body")
	p.VisionTitle = get("vision_title")
	p.VisionBody = get("vision_body")
	p.ValueTitle = get("value_title")
	p.ValueBody = get("value_body")

	p.PresidentLabel = get("president_message_label")
	p.PresidentTitle = get("president_message_title")
	p.PresidentName = get("president_name")
	p.PresidentRole = get("president_role")
	p.PresidentBody = get("president_message_body")
	p.PresidentQuote = get("president_message_quote")

	p.ServicesSectionTitle = get("services_section_title")
	p.ServicesSectionSubtitle = get("services_section_subtitle")
	p.StrengthsSectionTitle = get("strengths_section_title")
	p.StrengthsSectionSubtitle = get("strengths_section_subtitle")

	p.ProfileTitle = get("profile_title")
	p.ProfileSubtitle = get("profile_subtitle")

	p.CTATitle = get("cta_title")
	p.CTASubtitle = get("cta_subtitle")
	p.CTAButtonText = get("cta_button_text")
	p.CTAPhoneText = get("cta_phone_text")
	p.ContactFormTitle = get("contact_form_title")
	p.ContactFormNote = get("contact_form_note")
	p.ContactExamplesTitle = get("contact_examples_title")
	p.AccessTitle = get("access_title")
	p.AccessAddress = get("access_address")

	p.FooterCopyright = get("footer_copyright")
	p.FooterLinkTop = get("footer_link_top")
	p.FooterLinkServices = get("footer_link_services")
	p.FooterLinkProfile = get("footer_link_profile")

	// Repeating sections: the form posts parallel arrays that the field
	// normalizer pairs up row by row. A section counts as present when any
	// of its columns was submitted.
	has := func(keys ...string) bool {
		for _, k := range keys {
			if _, ok := form[k]; ok {
				return true
			}
		}
		return false
	}

	if has("hero_stat_value", "hero_stat_suffix", "hero_stat_label") {
		stats := forms.BuildHeroStats(form["hero_stat_value"], form["hero_stat_suffix"], form["hero_stat_label"])
		p.HeroStats = &stats
	}
	if has("concept_point_label", "concept_point_body") {
		points := forms.BuildConceptPoints(form["concept_point_label"], form["concept_point_body"])
		p.ConceptPoints = &points
	}
	if has("president_point") {
		points := forms.BuildStringList(form["president_point"])
		p.PresidentPoints = &points
	}
	if has("service_title", "service_body", "service_icon", "service_detail_body", "service_detail_images", "service_detail_files") {
		services := forms.BuildServices(
			form["service_title"], form["service_body"], form["service_icon"],
			form["service_detail_body"], form["service_detail_images"], form["service_detail_files"])
		p.Services = &services
	}
	if has("strength_title", "strength_body", "strength_icon") {
		strengths := forms.BuildStrengths(form["strength_title"], form["strength_body"], form["strength_icon"])
		p.Strengths = &strengths
	}
	if has("contact_example") {
		examples := forms.BuildStringList(form["contact_example"])
		p.ContactExamples = &examples
	}

	if has("profile_row_label", "profile_row_value") {
		rows := forms.BuildProfileRows(form["profile_row_label"], form["profile_row_value"])
		p.ProfileRows = &rows
		syncLegacyProfile(&p, rows, get)
	} else {
		p.CompanyName = get("company_name")
		p.Address = get("address")
		p.Representative = get("representative")
		p.Established = get("established")
		p.BusinessDesc = get("business_desc")
		p.Clients = get("clients")
	}

	return p
}

// syncLegacyProfile keeps the six fixed profile columns aligned with the
// dynamic row list: a row whose label matches one of the known aliases wins
// over the dedicated form field.
func syncLegacyProfile(p *models.HomePatch, rows []models.ProfileRow, get func(string) *string) {
	pick := func(formKey string, labels ...string) *string {
		if v := forms.PickProfileRowValue(rows, labels...); v != "" {
			return &v
		}
		return get(formKey)
	}
	p.CompanyName = pick("company_name", "名称", "公司名称", "会社名")
	p.Address = pick("address", "所在地", "地址", "住所")
	p.Representative = pick("representative", "代表者", "代表", "负责人")
	p.Established = pick("established", "設立", "成立", "设立")
	p.BusinessDesc = pick("business_desc", "事業内容", "业务内容", "事業")
	p.Clients = pick("clients", "主要取引先", "主要客户", "取引先")
}
