package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/service"
)

// publicStory is what visitors see of a story. Submitter contact details stay admin-only.
type publicStory struct {
	ID         uint      `json:"id"`
	AuthorName string    `json:"authorName"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageURL   *string   `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newPublicStories(stories []db.CommunityStory) []publicStory {
	items := make([]publicStory, 0, len(stories))
	for _, story := range stories {
		items = append(items, publicStory{
			ID:         story.ID,
			AuthorName: story.AuthorName,
			Title:      story.Title,
			Content:    story.Content,
			ImageURL:   story.ImageURL,
			CreatedAt:  story.CreatedAt,
		})
	}
	return items
}

// ListStories 返回已审核通过的社区故事。
func (a *API) ListStories(c *gin.Context) {
	stories, err := a.stories.ListApproved()
	if err != nil {
		respondInternal(c, err, "list approved stories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": newPublicStories(stories)})
}

// SubmitStory 接收访客投稿，投稿在审核前不会公开。
func (a *API) SubmitStory(c *gin.Context) {
	var input service.StoryInput
	if !bindJSON(c, &input, "invalid story") {
		return
	}

	story, err := a.stories.Submit(input)
	if err != nil {
		respondServiceError(c, err, "story")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "thank you, your story will appear once it is approved",
		"item":    story,
	})
}

// ListAllStories returns approved and pending stories for moderation.
func (a *API) ListAllStories(c *gin.Context) {
	items, err := a.stories.ListAll()
	if err != nil {
		respondInternal(c, err, "list stories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpdateStory edits or approves a story.
func (a *API) UpdateStory(c *gin.Context) {
	var patch service.StoryPatch
	if !bindJSON(c, &patch, "invalid request body") {
		return
	}

	story, err := a.stories.Update(patch)
	if err != nil {
		respondServiceError(c, err, "story")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "story updated", "item": story})
}

// DeleteStory removes a story by ?id=.
func (a *API) DeleteStory(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "id is required")
		return
	}
	if err := a.stories.Delete(id); err != nil {
		respondServiceError(c, err, "story")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "story deleted"})
}
