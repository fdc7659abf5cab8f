package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/service"
)

type reorderRequest struct {
	Items []service.OrderItem `json:"items" binding:"required,dive"`
}

// collectionHandlers exposes one service.Collection over JSON.
type collectionHandlers[T any, I service.Input[T], P service.Patch] struct {
	coll   *service.Collection[T, I, P]
	entity string
}

func newCollectionHandlers[T any, I service.Input[T], P service.Patch](coll *service.Collection[T, I, P]) collectionHandlers[T, I, P] {
	entity := strings.ReplaceAll(coll.Name(), "-", " ")
	if form, ok := findCollectionForm(coll.Name()); ok {
		entity = form.Singular
	}
	return collectionHandlers[T, I, P]{coll: coll, entity: entity}
}

func (h collectionHandlers[T, I, P]) list(c *gin.Context) {
	items, err := h.coll.List()
	if err != nil {
		respondInternal(c, err, "list "+h.coll.Name())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h collectionHandlers[T, I, P]) create(c *gin.Context) {
	var input I
	if !bindJSON(c, &input, "invalid request body") {
		return
	}

	item, err := h.coll.Create(input)
	if err != nil {
		respondServiceError(c, err, h.entity)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": h.entity + " created", "item": item})
}

func (h collectionHandlers[T, I, P]) update(c *gin.Context) {
	var patch P
	if !bindJSON(c, &patch, "invalid request body") {
		return
	}

	item, err := h.coll.Update(patch)
	if err != nil {
		respondServiceError(c, err, h.entity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.entity + " updated", "item": item})
}

func (h collectionHandlers[T, I, P]) remove(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.coll.Delete(id); err != nil {
		respondServiceError(c, err, h.entity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.entity + " deleted"})
}

func (h collectionHandlers[T, I, P]) reorder(c *gin.Context) {
	var payload reorderRequest
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	if err := h.coll.Reorder(payload.Items); err != nil {
		respondServiceError(c, err, h.entity)
		return
	}

	items, err := h.coll.List()
	if err != nil {
		respondInternal(c, err, "list "+h.coll.Name())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order saved", "items": items})
}

// registerCollection mounts GET/POST/PUT/DELETE (+ reorder) under /<name>.
// deleteByPath selects DELETE /<name>/:id instead of DELETE /<name>?id=.
func registerCollection[T any, I service.Input[T], P service.Patch](group *gin.RouterGroup, coll *service.Collection[T, I, P], deleteByPath bool) {
	h := newCollectionHandlers(coll)
	path := "/" + coll.Name()

	group.GET(path, h.list)
	group.POST(path, h.create)
	group.PUT(path, h.update)
	if deleteByPath {
		group.DELETE(path+"/:id", h.remove)
	} else {
		group.DELETE(path, h.remove)
	}
	if coll.Ordered() {
		group.POST(path+"/reorder", h.reorder)
	}
}

// RegisterAdminAPI mounts every admin JSON route on group. The caller is
// responsible for the session check.
func (a *API) RegisterAdminAPI(group *gin.RouterGroup) {
	c := a.content
	registerCollection(group, c.CarouselImages, false)
	registerCollection(group, c.FishSpecies, false)
	registerCollection(group, c.GalleryImages, false)
	registerCollection(group, c.FishingTips, false)
	registerCollection(group, c.Resorts, false)
	registerCollection(group, c.Events, false)
	registerCollection(group, c.News, false)
	registerCollection(group, c.Sponsors, false)
	registerCollection(group, c.Members, false)
	registerCollection(group, c.MembershipTiers, false)
	registerCollection(group, c.Resources, false)
	registerCollection(group, c.DnrLinks, true)
	registerCollection(group, c.DnrResources, true)

	group.GET("/pages/:kind", a.GetPage)
	group.PUT("/pages/:kind", a.UpdatePage)

	group.GET("/seo", a.ListSeo)
	group.PUT("/seo", a.UpsertSeo)

	group.GET("/stories", a.ListAllStories)
	group.PUT("/stories", a.UpdateStory)
	group.DELETE("/stories", a.DeleteStory)

	group.GET("/dashboard", a.DashboardStats)
}
