package sitesvc

import (
	"fmt"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/jsonlist"
	"github.com/eihojp/corpsite/internal/markup"
	"github.com/eihojp/corpsite/internal/models"
	"github.com/eihojp/corpsite/internal/store"
)

// ServiceDetailView is one service rendered for its detail page.
type ServiceDetailView struct {
	Index          int              `json:"index"`
	Title          string           `json:"title"`
	Body           string           `json:"body"`
	Blocks         []markup.Block   `json:"blocks"`
	LeftoverImages []string         `json:"leftover_images"`
	Files          []models.FileRef `json:"files"`
}

// ServiceDetail renders the service at the given zero-based index. When the
// stored services list is empty or corrupt the built-in default services
// still serve, so the default detail pages never 404 on a fresh install.
func (s *Service) ServiceDetail(index int) (ServiceDetailView, error) {
	h, err := s.store.GetOrCreateHome()
	if err != nil {
		return ServiceDetailView{}, err
	}

	services := jsonlist.DecodeServices(h.ServicesJSON)
	if len(services) == 0 {
		services = store.DefaultServices()
	}
	if index < 0 || index >= len(services) {
		return ServiceDetailView{}, fmt.Errorf("sitesvc: service %d: %w", index, apperr.ErrNotFound)
	}

	svc := services[index]
	// The detail body carries the markup; the summary body fills in when the
	// detail body has no content of its own.
	blocks, leftover := markup.ParseWithSummary(svc.DetailBody, svc.Body, svc.DetailImages)

	return ServiceDetailView{
		Index:          index,
		Title:          svc.Title,
		Body:           svc.Body,
		Blocks:         blocks,
		LeftoverImages: leftover,
		Files:          svc.DetailFiles,
	}, nil
}
