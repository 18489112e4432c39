package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/backend/internal/auth"
	"yatube/backend/internal/hub"
	"yatube/backend/internal/store"
)

const noFollowedPosts = "no posts yet"

// feedBuffer is how many events a slow feed connection may fall behind before it misses some.
const feedBuffer = 16

var keepAliveInterval = 30 * time.Second

// FollowIndexView is the feed of followed authors.
type FollowIndexView struct {
	Page    PostPage `json:"page"`
	Message string   `json:"message,omitempty"`
}

// FollowIndex godoc
// @Summary      Followed authors feed
// @Description  Lists posts by the authors the signed-in user follows, newest first.
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Success      200   {object}  FollowIndexView
// @Failure      302   "Redirect to login"
// @Router       /follow/ [get]
func (h *Handler) FollowIndex(c *gin.Context) {
	userID, _ := auth.UserID(c)
	page, ok := h.listPosts(c, store.PostFilter{FollowerID: userID})
	if !ok {
		return
	}
	view := FollowIndexView{Page: *page}
	if page.Meta.TotalItems == 0 {
		view.Message = noFollowedPosts
	}
	c.JSON(http.StatusOK, view)
}

// ProfileFollow godoc
// @Summary      Follow an author
// @Description  Subscribes the signed-in user to an author and redirects to the author's profile.
// @Description  Following yourself or someone you already follow changes nothing.
// @Tags         follows
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      302  "Redirect to the author's profile"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /profile/{username}/follow/ [post]
func (h *Handler) ProfileFollow(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := h.store.UserByUsername(ctx, c.Param("username"))
	if err != nil {
		h.fail(c, err, "User")
		return
	}

	userID, _ := auth.UserID(c)
	if auth.CanFollow(userID, author.ID) {
		created, err := h.store.Follow(ctx, userID, author.ID)
		if err != nil {
			h.fail(c, err, "Follow")
			return
		}
		if created {
			h.countFollowChange("follow")
		}
	}

	c.Redirect(http.StatusFound, profileURL(author.Username))
}

// ProfileUnfollow godoc
// @Summary      Unfollow an author
// @Description  Removes the subscription, if any, and redirects to the author's profile.
// @Tags         follows
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      302  "Redirect to the author's profile"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /profile/{username}/unfollow/ [post]
func (h *Handler) ProfileUnfollow(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := h.store.UserByUsername(ctx, c.Param("username"))
	if err != nil {
		h.fail(c, err, "User")
		return
	}

	userID, _ := auth.UserID(c)
	if auth.CanFollow(userID, author.ID) {
		removed, err := h.store.Unfollow(ctx, userID, author.ID)
		if err != nil {
			h.fail(c, err, "Follow")
			return
		}
		if removed {
			h.countFollowChange("unfollow")
		}
	}

	c.Redirect(http.StatusFound, profileURL(author.Username))
}

func (h *Handler) countFollowChange(action string) {
	if h.metrics != nil {
		h.metrics.FollowChangesTotal.WithLabelValues(action).Inc()
	}
}

// FollowEvents godoc
// @Summary      Live feed
// @Description  Server-sent events stream. Every new post by a followed author arrives as a "post_created" event.
// @Tags         follows
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {object}  PostResponse "event payload"
// @Failure      302  "Redirect to login"
// @Router       /follow/events/ [get]
func (h *Handler) FollowEvents(c *gin.Context) {
	if h.hub == nil {
		NotFound(c)
		return
	}
	userID, _ := auth.UserID(c)

	client := make(hub.Client, feedBuffer)
	h.hub.Subscribe(userID, client)
	defer h.hub.Unsubscribe(userID, client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	h.logger.Debug("feed connected", zap.Uint("user_id", userID))
	for {
		select {
		case <-c.Request.Context().Done():
			h.logger.Debug("feed disconnected", zap.Uint("user_id", userID))
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent(hub.EventPostCreated, string(msg))
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", "")
			c.Writer.Flush()
		}
	}
}
