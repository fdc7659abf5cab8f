package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/service"
)

func pageKind(c *gin.Context) (db.PageKind, bool) {
	kind, ok := db.ParsePageKind(c.Param("kind"))
	if !ok {
		respondError(c, http.StatusNotFound, "page not found")
	}
	return kind, ok
}

// GetPage returns a singleton page with its children, creating it on first read.
func (a *API) GetPage(c *gin.Context) {
	kind, ok := pageKind(c)
	if !ok {
		return
	}

	page, err := a.pages.Get(kind)
	if err != nil {
		respondInternal(c, err, "load "+string(kind)+" page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// UpdatePage merges the supplied fields into the singleton page.
func (a *API) UpdatePage(c *gin.Context) {
	kind, ok := pageKind(c)
	if !ok {
		return
	}

	var (
		page any
		err  error
	)
	switch kind {
	case db.PageHome:
		var patch service.HomePagePatch
		if !bindJSON(c, &patch, "invalid page content") {
			return
		}
		page, err = a.pages.UpdateHome(patch)
	case db.PageFishing:
		var patch service.FishingPagePatch
		if !bindJSON(c, &patch, "invalid page content") {
			return
		}
		page, err = a.pages.UpdateFishing(patch)
	case db.PageResorts:
		var patch service.ResortsPagePatch
		if !bindJSON(c, &patch, "invalid page content") {
			return
		}
		page, err = a.pages.UpdateResorts(patch)
	case db.PageDnr:
		var patch service.DnrPagePatch
		if !bindJSON(c, &patch, "invalid page content") {
			return
		}
		page, err = a.pages.UpdateDnr(patch)
	case db.PageNews:
		var patch service.NewsPagePatch
		if !bindJSON(c, &patch, "invalid page content") {
			return
		}
		page, err = a.pages.UpdateNews(patch)
	case db.PageAssociation:
		var patch service.AssociationPagePatch
		if !bindJSON(c, &patch, "invalid page content") {
			return
		}
		page, err = a.pages.UpdateAssociation(patch)
	case db.PageAreaServices:
		var patch service.AreaServicesPagePatch
		if !bindJSON(c, &patch, "invalid page content") {
			return
		}
		page, err = a.pages.UpdateAreaServices(patch)
	}

	if err != nil {
		respondServiceError(c, err, string(kind)+" page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page saved", "page": page})
}
