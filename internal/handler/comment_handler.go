package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/backend/internal/auth"
	"yatube/backend/internal/forms"
	"yatube/backend/internal/models"
)

// AddComment godoc
// @Summary      Comment on a post
// @Description  Adds a comment as the signed-in user and redirects back to the post.
// @Description  An invalid comment is dropped without an error.
// @Tags         comments
// @Accept       x-www-form-urlencoded
// @Security     BearerAuth
// @Param        id    path      int     true  "Post ID"
// @Param        text  formData  string  true  "Comment text"
// @Success      302   "Redirect to the post"
// @Failure      404   {object}  ErrorResponse "Post not found"
// @Router       /posts/{id}/comment/ [post]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	post, err := h.store.PostByID(ctx, id)
	if err != nil {
		h.fail(c, err, "Post")
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err == nil {
		if text, errs := form.Validate(); errs == nil {
			user, _ := auth.CurrentUser(c)
			comment := models.Comment{PostID: post.ID, AuthorID: user.ID, Text: text}
			if err := h.store.CreateComment(ctx, &comment); err != nil {
				h.fail(c, err, "Comment")
				return
			}
			if h.metrics != nil {
				h.metrics.CommentsCreatedTotal.Inc()
			}
		} else {
			h.logger.Debug("comment rejected", zap.Uint("post_id", post.ID), zap.Any("errors", errs))
		}
	}

	c.Redirect(http.StatusFound, postURL(post.ID))
}
