package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/service"
)

// LatestNews returns the newest news items; ?limit= is clamped to MaxLatestNews.
func (a *API) LatestNews(c *gin.Context) {
	limit := parsePositiveInt(c.Query("limit"), service.DefaultLatestNews)
	items, err := a.feed.LatestNews(limit)
	if err != nil {
		respondInternal(c, err, "latest news")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpcomingEvents returns the next events, topped up with recent past ones.
func (a *API) UpcomingEvents(c *gin.Context) {
	items, err := a.feed.UpcomingEvents(a.now(), service.UpcomingEventSlot)
	if err != nil {
		respondInternal(c, err, "upcoming events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (a *API) DnrLinks(c *gin.Context) {
	items, err := a.feed.DnrLinks()
	if err != nil {
		respondInternal(c, err, "dnr links")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (a *API) DnrResources(c *gin.Context) {
	items, err := a.feed.DnrResources()
	if err != nil {
		respondInternal(c, err, "dnr resources")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
