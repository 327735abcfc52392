package controllers

import (
	"context"
	"net/http"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/response"
)

// contentStore serves the storefront's offers and FAQ entries.
type contentStore interface {
	Offers(ctx context.Context) ([]models.Offer, error)
	FAQs(ctx context.Context) ([]models.FAQ, error)
}

// ContentController serves GET /api/offers and GET /api/faqs.
type ContentController struct {
	content contentStore
}

func NewContentController(content contentStore) *ContentController {
	return &ContentController{content: content}
}

func (c *ContentController) Offers(w http.ResponseWriter, r *http.Request) {
	offers, err := c.content.Offers(r.Context())
	if err != nil {
		response.Fault(w, "Failed to fetch offers", err)
		return
	}
	response.List(w, offers, len(offers))
}

func (c *ContentController) FAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := c.content.FAQs(r.Context())
	if err != nil {
		response.Fault(w, "Failed to fetch FAQs", err)
		return
	}
	response.List(w, faqs, len(faqs))
}
