package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/eihojp/corpsite/internal/models"
)

// homeColumns lists every mutable homepage column in schema order. The
// legacy column names (nav_contact_text, hero_kicker_text, concept_body,
// contact_title, footer_text, ...) are kept so existing databases keep
// working.
var homeColumns = []string{
	"nav_brand_text", "nav_top_text", "nav_concept_text", "nav_news_text",
	"nav_services_text", "nav_strengths_text", "nav_profile_text", "nav_contact_text",
	"hero_kicker_text", "hero_title", "hero_subtitle", "hero_bg_image",
	"hero_cta_primary_text", "hero_cta_secondary_text", "hero_stats_json",
	"concept_title", "concept_body", "concept_points_json",
	"mission_title", "mission_body", "vision_title", "vision_body",
	"value_title", "value_body",
	"president_message_label", "president_message_title", "president_name",
	"president_role", "president_message_body", "president_message_quote",
	"president_points_json",
	"services_title", "services_subtitle", "strengths_title", "strengths_subtitle",
	"services_json", "strengths_json",
	"profile_title", "profile_subtitle", "profile_rows_json",
	"company_name", "address", "representative", "established",
	"business_desc", "clients",
	"contact_title", "contact_body", "contact_button_text", "contact_phone_text",
	"contact_form_title", "contact_form_note", "contact_examples_title",
	"contact_examples_json", "access_title", "access_address",
	"footer_text", "footer_link_top", "footer_link_services", "footer_link_profile",
}

// homeFields returns pointers to the Home fields in homeColumns order.
func homeFields(h *models.Home) []any {
	return []any{
		&h.NavBrand, &h.NavTop, &h.NavConcept, &h.NavNews,
		&h.NavServices, &h.NavStrengths, &h.NavProfile, &h.NavCTA,
		&h.HeroKicker, &h.HeroTitle, &h.HeroSubtitle, &h.HeroBGImage,
		&h.HeroPrimaryCTA, &h.HeroSecondaryCTA, &h.HeroStatsJSON,
		&h.ConceptTitle, &h.ConceptSubtitle, &h.ConceptPointsJSON,
		&h.MissionTitle, &h.MissionBody, &h.VisionTitle, &h.VisionBody,
		&h.ValueTitle, &h.ValueBody,
		&h.PresidentLabel, &h.PresidentTitle, &h.PresidentName,
		&h.PresidentRole, &h.PresidentBody, &h.PresidentQuote,
		&h.PresidentPointsJSON,
		&h.ServicesSectionTitle, &h.ServicesSectionSubtitle,
		&h.StrengthsSectionTitle, &h.StrengthsSectionSubtitle,
		&h.ServicesJSON, &h.StrengthsJSON,
		&h.ProfileTitle, &h.ProfileSubtitle, &h.ProfileRowsJSON,
		&h.CompanyName, &h.Address, &h.Representative, &h.Established,
		&h.BusinessDesc, &h.Clients,
		&h.CTATitle, &h.CTASubtitle, &h.CTAButtonText, &h.CTAPhoneText,
		&h.ContactFormTitle, &h.ContactFormNote, &h.ContactExamplesTitle,
		&h.ContactExamplesJSON, &h.AccessTitle, &h.AccessAddress,
		&h.FooterCopyright, &h.FooterLinkTop, &h.FooterLinkServices, &h.FooterLinkProfile,
	}
}

// homeValues dereferences homeFields for use as exec arguments.
func homeValues(h *models.Home) []any {
	ptrs := homeFields(h)
	vals := make([]any, len(ptrs))
	for i, p := range ptrs {
		vals[i] = *(p.(*string))
	}
	return vals
}

// GetOrCreateHome returns the singleton homepage row, creating it with the
// built-in default copy on first access.
func (db *DB) GetOrCreateHome() (*models.Home, error) {
	h, err := db.loadHome()
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	seed := defaultHome()
	query := fmt.Sprintf(
		"INSERT INTO homepage (%s) VALUES (%s)",
		strings.Join(homeColumns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(homeColumns)), ", "),
	)
	if _, err := db.conn.Exec(query, homeValues(seed)...); err != nil {
		return nil, fmt.Errorf("store: seed homepage: %w", err)
	}
	return db.loadHome()
}

func (db *DB) loadHome() (*models.Home, error) {
	h := &models.Home{}
	dest := append([]any{&h.ID}, homeFields(h)...)
	dest = append(dest, &h.UpdatedAt)

	query := fmt.Sprintf(
		"SELECT id, %s, updated_at FROM homepage ORDER BY id LIMIT 1",
		strings.Join(homeColumns, ", "),
	)
	if err := db.conn.QueryRow(query).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("store: load homepage: %w", err)
	}
	return h, nil
}

// SaveHome persists every mutable column of h. Partial-update semantics are
// the caller's concern: the service layer loads the row, applies the patch
// by presence, and writes the result back. Concurrent writers race
// last-write-wins.
func (db *DB) SaveHome(h *models.Home) error {
	sets := make([]string, len(homeColumns))
	for i, col := range homeColumns {
		sets[i] = col + " = ?"
	}
	query := fmt.Sprintf(
		"UPDATE homepage SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		strings.Join(sets, ", "),
	)
	args := append(homeValues(h), h.ID)
	if _, err := db.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("store: save homepage: %w", err)
	}
	return nil
}
