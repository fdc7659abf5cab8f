package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/service"
)

// ListSeo returns every stored metadata row.
func (a *API) ListSeo(c *gin.Context) {
	items, err := a.seo.List()
	if err != nil {
		respondInternal(c, err, "list seo metadata")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "pages": seoPageKeys})
}

// UpsertSeo creates or replaces the metadata for one page key.
func (a *API) UpsertSeo(c *gin.Context) {
	var input service.SeoInput
	if !bindJSON(c, &input, "invalid seo metadata") {
		return
	}

	item, err := a.seo.Upsert(input)
	if err != nil {
		respondServiceError(c, err, "seo metadata")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "seo metadata saved", "item": item})
}
