package handler

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/backend/internal/models"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type GroupInput struct {
	Title       string `json:"title" form:"title" binding:"required,max=200" example:"Cats"`
	Slug        string `json:"slug" form:"slug" binding:"required,max=50" example:"cats"`
	Description string `json:"description" form:"description"`
}

// CreateGroup godoc
// @Summary      Create a new group
// @Description  Creates a community posts can be filed under.
// @Tags         admin-groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GroupInput true "Group Info"
// @Success      201  {object}  GroupResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Slug already taken"
// @Router       /admin/groups/ [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	var input GroupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !slugPattern.MatchString(input.Slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug may contain only letters, numbers, underscores or hyphens"})
		return
	}

	group := models.Group{Title: input.Title, Slug: input.Slug, Description: input.Description}
	if err := h.store.CreateGroup(c.Request.Context(), &group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already taken"})
			return
		}
		h.fail(c, err, "Group")
		return
	}

	c.JSON(http.StatusCreated, newGroupResponse(group))
}

// ListGroups godoc
// @Summary      Get all groups
// @Description  Retrieves every group ordered by title.
// @Tags         admin-groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   GroupResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/groups/ [get]
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.store.ListGroups(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Groups")
		return
	}
	c.JSON(http.StatusOK, newGroupResponses(groups))
}

// DeleteGroup godoc
// @Summary      Delete a group
// @Description  Deletes a group. Its posts are kept and lose their group.
// @Tags         admin-groups
// @Produce      json
// @Security     BearerAuth
// @Param        slug path      string  true  "Group slug"
// @Success      200  {object}  map[string]string "{"message": "Group deleted"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Group not found"
// @Router       /admin/groups/{slug}/ [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
	ctx := c.Request.Context()
	group, err := h.store.GroupBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.fail(c, err, "Group")
		return
	}
	if err := h.store.DeleteGroup(ctx, group.ID); err != nil {
		h.fail(c, err, "Group")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes a post together with its comments and image.
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  map[string]string "{"message": "Post deleted"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /admin/posts/{id}/ [delete]
func (h *Handler) DeletePost(c *gin.Context) {
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
	if err := h.store.DeletePost(ctx, post.ID); err != nil {
		h.fail(c, err, "Post")
		return
	}
	h.discardImage(ctx, post.Image)

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
