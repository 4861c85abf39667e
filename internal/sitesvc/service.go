// Package sitesvc is the service layer between the HTTP handlers and the
// record store: public projections, the home save pipeline, news views with
// markup rendering, and the asset merge rules.
package sitesvc

import (
	"log/slog"
	"time"

	"github.com/eihojp/corpsite/internal/jsonlist"
	"github.com/eihojp/corpsite/internal/models"
	"github.com/eihojp/corpsite/internal/store"
)

// Service wires the record store to the view and update logic.
type Service struct {
	store  store.RecordStore
	logger *slog.Logger
}

// New returns a service over the given store.
func New(st store.RecordStore, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Home returns the public projection of the home record.
func (s *Service) Home() (HomeView, error) {
	h, err := s.store.GetOrCreateHome()
	if err != nil {
		return HomeView{}, err
	}
	return ProjectHome(h), nil
}

// EditView is the admin edit payload: the normalized view for form
// redisplay plus the record timestamp.
type EditView struct {
	HomeView
	UpdatedAt time.Time `json:"updated_at"`
}

// EditHome returns the home record normalized for the admin form.
func (s *Service) EditHome() (EditView, error) {
	h, err := s.store.GetOrCreateHome()
	if err != nil {
		return EditView{}, err
	}
	return EditView{HomeView: ProjectHome(h), UpdatedAt: h.UpdatedAt}, nil
}

// UpdateHome applies a partial update to the home record. Nil patch fields
// keep the stored values; list fields are re-encoded and replace the stored
// lists wholesale. On an encode failure nothing is persisted and the error
// wraps apperr.ErrInvalid with the field name.
func (s *Service) UpdateHome(p models.HomePatch) (*models.Home, error) {
	h, err := s.store.GetOrCreateHome()
	if err != nil {
		return nil, err
	}
	if err := applyHomePatch(h, p); err != nil {
		return nil, err
	}
	if err := s.store.SaveHome(h); err != nil {
		return nil, err
	}
	s.logger.Info("home updated")
	return h, nil
}

func applyHomePatch(h *models.Home, p models.HomePatch) error {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setStr(&h.NavBrand, p.NavBrand)
	setStr(&h.NavTop, p.NavTop)
	setStr(&h.NavConcept, p.NavConcept)
	setStr(&h.NavNews, p.NavNews)
	setStr(&h.NavServices, p.NavServices)
	setStr(&h.NavStrengths, p.NavStrengths)
	setStr(&h.NavProfile, p.NavProfile)
	setStr(&h.NavCTA, p.NavCTA)

	setStr(&h.HeroKicker, p.HeroKicker)
	setStr(&h.HeroTitle, p.HeroTitle)
	setStr(&h.HeroSubtitle, p.HeroSubtitle)
	setStr(&h.HeroBGImage, p.HeroBGImage)
	setStr(&h.HeroPrimaryCTA, p.HeroPrimaryCTA)
	setStr(&h.HeroSecondaryCTA, p.HeroSecondaryCTA)

	setStr(&h.ConceptTitle, p.ConceptTitle)
	setStr(&h.ConceptSubtitle, p.ConceptSubtitle)
	setStr(&h.MissionTitle, p.MissionTitle)
	setStr(&h.MissionBody, p.MissionBody)
	setStr(&h.VisionTitle, p.VisionTitle)
	setStr(&h.VisionBody, p.VisionBody)
	setStr(&h.ValueTitle, p.ValueTitle)
	setStr(&h.ValueBody, p.ValueBody)

	setStr(&h.PresidentLabel, p.PresidentLabel)
	setStr(&h.PresidentTitle, p.PresidentTitle)
	setStr(&h.PresidentName, p.PresidentName)
	setStr(&h.PresidentRole, p.PresidentRole)
	setStr(&h.PresidentBody, p.PresidentBody)
	setStr(&h.PresidentQuote, p.PresidentQuote)

	setStr(&h.ServicesSectionTitle, p.ServicesSectionTitle)
	setStr(&h.ServicesSectionSubtitle, p.ServicesSectionSubtitle)
	setStr(&h.StrengthsSectionTitle, p.StrengthsSectionTitle)
	setStr(&h.StrengthsSectionSubtitle, p.StrengthsSectionSubtitle)

	setStr(&h.ProfileTitle, p.ProfileTitle)
	setStr(&h.ProfileSubtitle, p.ProfileSubtitle)
	setStr(&h.CompanyName, p.CompanyName)
	setStr(&h.Address, p.Address)
	setStr(&h.Representative, p.Representative)
	setStr(&h.Established, p.Established)
	setStr(&h.BusinessDesc, p.BusinessDesc)
	setStr(&h.Clients, p.Clients)

	setStr(&h.CTATitle, p.CTATitle)
	setStr(&h.CTASubtitle, p.CTASubtitle)
	setStr(&h.CTAButtonText, p.CTAButtonText)
	setStr(&h.CTAPhoneText, p.CTAPhoneText)
	setStr(&h.ContactFormTitle, p.ContactFormTitle)
	setStr(&h.ContactFormNote, p.ContactFormNote)
	setStr(&h.ContactExamplesTitle, p.ContactExamplesTitle)
	setStr(&h.AccessTitle, p.AccessTitle)
	setStr(&h.AccessAddress, p.AccessAddress)

	setStr(&h.FooterCopyright, p.FooterCopyright)
	setStr(&h.FooterLinkTop, p.FooterLinkTop)
	setStr(&h.FooterLinkServices, p.FooterLinkServices)
	setStr(&h.FooterLinkProfile, p.FooterLinkProfile)

	// List fields: encode before assigning so a failure leaves the record
	// untouched for this request.
	encode := func(dst *string, field string, list any, present bool) error {
		if !present {
			return nil
		}
		text, err := jsonlist.Encode(field, list)
		if err != nil {
			return err
		}
		*dst = text
		return nil
	}

	if err := encode(&h.HeroStatsJSON, "hero stats", deref(p.HeroStats), p.HeroStats != nil); err != nil {
		return err
	}
	if err := encode(&h.ConceptPointsJSON, "concept points", deref(p.ConceptPoints), p.ConceptPoints != nil); err != nil {
		return err
	}
	if err := encode(&h.PresidentPointsJSON, "president points", deref(p.PresidentPoints), p.PresidentPoints != nil); err != nil {
		return err
	}
	if err := encode(&h.ServicesJSON, "services", deref(p.Services), p.Services != nil); err != nil {
		return err
	}
	if err := encode(&h.StrengthsJSON, "strengths", deref(p.Strengths), p.Strengths != nil); err != nil {
		return err
	}
	if err := encode(&h.ProfileRowsJSON, "profile rows", deref(p.ProfileRows), p.ProfileRows != nil); err != nil {
		return err
	}
	if err := encode(&h.ContactExamplesJSON, "contact examples", deref(p.ContactExamples), p.ContactExamples != nil); err != nil {
		return err
	}
	return nil
}

// deref unwraps a patch list pointer, turning nil into an empty slice so an
// explicitly-set empty list encodes as [].
func deref[T any](p *[]T) []T {
	if p == nil {
		return nil
	}
	if *p == nil {
		return []T{}
	}
	return *p
}
