package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/backend/internal/auth"
	"yatube/backend/internal/forms"
	"yatube/backend/internal/hub"
	"yatube/backend/internal/models"
	"yatube/backend/internal/storage"
	"yatube/backend/internal/store"
)

const indexDescription = "Последние обновления на сайте"

// IndexView is the home page.
type IndexView struct {
	Description string   `json:"description"`
	Page        PostPage `json:"page"`
}

// GroupPostsView is a community page.
type GroupPostsView struct {
	Group GroupResponse `json:"group"`
	Page  PostPage      `json:"page"`
}

// ProfileView is an author page.
type ProfileView struct {
	Author         AuthorResponse `json:"author"`
	PostsCount     int64          `json:"posts_count"`
	FollowersCount int64          `json:"followers_count"`
	FollowingCount int64          `json:"following_count"`
	Following      bool           `json:"following"`
	Page           PostPage       `json:"page"`
}

// CommentFormResponse is the empty comment form offered to signed-in readers.
type CommentFormResponse struct {
	Text string `json:"text"`
}

// PostDetailView is a single post page.
type PostDetailView struct {
	Post             PostResponse         `json:"post"`
	AuthorPostsCount int64                `json:"author_posts_count"`
	Comments         []CommentResponse    `json:"comments"`
	Form             *CommentFormResponse `json:"form,omitempty"`
}

func (h *Handler) listPosts(c *gin.Context, f store.PostFilter) (*PostPage, bool) {
	page, err := Paginate[models.Post](h.store.PostsQuery(c.Request.Context(), f), c.Query("page"), h.pageSize(), store.WithPostRelations)
	if err != nil {
		h.fail(c, err, "Posts")
		return nil, false
	}
	view := h.postPage(page)
	return &view, true
}

// Index godoc
// @Summary      Latest posts
// @Description  Lists every post, newest first. The page may be served from cache for a short while.
// @Tags         posts
// @Produce      json
// @Param        page  query     int  false  "Page number" default(1)
// @Success      200   {object}  IndexView
// @Router       / [get]
func (h *Handler) Index(c *gin.Context) {
	page, ok := h.listPosts(c, store.PostFilter{})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, IndexView{Description: indexDescription, Page: *page})
}

// GroupPosts godoc
// @Summary      Posts of a group
// @Description  Lists the posts filed under a group, newest first.
// @Tags         posts
// @Produce      json
// @Param        slug  path      string  true   "Group slug"
// @Param        page  query     int     false  "Page number" default(1)
// @Success      200   {object}  GroupPostsView
// @Failure      404   {object}  ErrorResponse "Group not found"
// @Router       /group/{slug}/ [get]
func (h *Handler) GroupPosts(c *gin.Context) {
	group, err := h.store.GroupBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err, "Group")
		return
	}
	page, ok := h.listPosts(c, store.PostFilter{GroupID: group.ID})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, GroupPostsView{Group: newGroupResponse(*group), Page: *page})
}

// Profile godoc
// @Summary      Posts of an author
// @Description  Lists an author's posts with follower counts and whether the viewer follows them.
// @Tags         posts
// @Produce      json
// @Param        username  path      string  true   "Username"
// @Param        page      query     int     false  "Page number" default(1)
// @Success      200       {object}  ProfileView
// @Failure      404       {object}  ErrorResponse "User not found"
// @Router       /profile/{username}/ [get]
func (h *Handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := h.store.UserByUsername(ctx, c.Param("username"))
	if err != nil {
		h.fail(c, err, "User")
		return
	}

	page, ok := h.listPosts(c, store.PostFilter{AuthorID: author.ID})
	if !ok {
		return
	}
	followers, following, err := h.store.FollowCounts(ctx, author.ID)
	if err != nil {
		h.fail(c, err, "Follows")
		return
	}

	view := ProfileView{
		Author:         newAuthorResponse(*author),
		PostsCount:     page.Meta.TotalItems,
		FollowersCount: followers,
		FollowingCount: following,
		Page:           *page,
	}
	if viewerID, ok := auth.UserID(c); ok && viewerID != author.ID {
		view.Following, err = h.store.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			h.fail(c, err, "Follows")
			return
		}
	}
	c.JSON(http.StatusOK, view)
}

// PostDetail godoc
// @Summary      A single post
// @Description  Shows a post with its comments. Signed-in readers also get an empty comment form.
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  PostDetailView
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /posts/{id}/ [get]
func (h *Handler) PostDetail(c *gin.Context) {
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
	comments, err := h.store.CommentsForPost(ctx, post.ID)
	if err != nil {
		h.fail(c, err, "Comments")
		return
	}
	count, err := h.store.CountPosts(ctx, store.PostFilter{AuthorID: post.AuthorID})
	if err != nil {
		h.fail(c, err, "Posts")
		return
	}

	view := PostDetailView{
		Post:             newPostResponse(*post, h.storage),
		AuthorPostsCount: count,
		Comments:         make([]CommentResponse, 0, len(comments)),
	}
	for _, cm := range comments {
		view.Comments = append(view.Comments, newCommentResponse(cm))
	}
	if _, ok := auth.CurrentUser(c); ok {
		view.Form = &CommentFormResponse{}
	}
	c.JSON(http.StatusOK, view)
}

// PostCreateForm godoc
// @Summary      New post form
// @Description  Returns an empty post form and the groups a post can be filed under.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PostFormView
// @Failure      302  "Redirect to login"
// @Router       /create/ [get]
func (h *Handler) PostCreateForm(c *gin.Context) {
	h.renderPostForm(c, forms.PostForm{}, nil, 0)
}

// PostCreate godoc
// @Summary      Publish a post
// @Description  Validates the form and publishes the post as the signed-in user, then redirects to their profile.
// @Description  An invalid form is returned with its errors.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        text   formData  string  true   "Post text"
// @Param        group  formData  int     false  "Group ID"
// @Param        image  formData  file    false  "Image attachment"
// @Success      302    "Redirect to the author's profile"
// @Success      200    {object}  PostFormView "Form with errors"
// @Failure      400    {object}  ErrorResponse
// @Router       /create/ [post]
func (h *Handler) PostCreate(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	ctx := c.Request.Context()

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, errs, err := form.Validate(ctx, h.store, h.cfg.MaxImageBytes)
	if err != nil {
		h.fail(c, err, "Group")
		return
	}
	if errs != nil {
		h.renderPostForm(c, form, errs, 0)
		return
	}

	post := models.Post{AuthorID: user.ID}
	data.Apply(&post)
	if data.Image != nil {
		if post.Image, err = h.saveImage(ctx, data.Image); err != nil {
			h.fail(c, err, "Image")
			return
		}
	}
	if err := h.store.CreatePost(ctx, &post); err != nil {
		h.discardImage(ctx, post.Image)
		h.fail(c, err, "Post")
		return
	}
	if h.metrics != nil {
		h.metrics.PostsCreatedTotal.Inc()
	}
	h.notifyFollowers(ctx, post.ID)

	c.Redirect(http.StatusFound, profileURL(user.Username))
}

// PostEditForm godoc
// @Summary      Edit post form
// @Description  Returns the post form filled with the post. Anyone but the author is sent back to the post.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  PostFormView
// @Success      302  "Redirect to the post for non-authors"
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /posts/{id}/edit/ [get]
func (h *Handler) PostEditForm(c *gin.Context) {
	post, ok := h.editablePost(c)
	if !ok {
		return
	}
	h.renderPostForm(c, forms.NewPostForm(post), nil, post.ID)
}

// PostEdit godoc
// @Summary      Edit a post
// @Description  Saves new text, group or image for a post and redirects to it. Only the author may edit.
// @Description  The author and publication date never change.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int     true   "Post ID"
// @Param        text   formData  string  true   "Post text"
// @Param        group  formData  int     false  "Group ID"
// @Param        image  formData  file    false  "Replacement image"
// @Success      302    "Redirect to the post"
// @Success      200    {object}  PostFormView "Form with errors"
// @Failure      404    {object}  ErrorResponse "Post not found"
// @Router       /posts/{id}/edit/ [post]
func (h *Handler) PostEdit(c *gin.Context) {
	post, ok := h.editablePost(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, errs, err := form.Validate(ctx, h.store, h.cfg.MaxImageBytes)
	if err != nil {
		h.fail(c, err, "Group")
		return
	}
	if errs != nil {
		h.renderPostForm(c, form, errs, post.ID)
		return
	}

	data.Apply(post)
	oldImage := post.Image
	if data.Image != nil {
		if post.Image, err = h.saveImage(ctx, data.Image); err != nil {
			h.fail(c, err, "Image")
			return
		}
	}
	if err := h.store.UpdatePost(ctx, post); err != nil {
		if post.Image != oldImage {
			h.discardImage(ctx, post.Image)
		}
		h.fail(c, err, "Post")
		return
	}
	if post.Image != oldImage {
		h.discardImage(ctx, oldImage)
	}
	if h.metrics != nil {
		h.metrics.PostsEditedTotal.Inc()
	}

	c.Redirect(http.StatusFound, postURL(post.ID))
}

// editablePost loads the post named in the path and redirects anyone but its author to it.
func (h *Handler) editablePost(c *gin.Context) (*models.Post, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		return nil, false
	}
	post, err := h.store.PostByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Post")
		return nil, false
	}
	actorID, _ := auth.UserID(c)
	if !auth.CanEditPost(actorID, post) {
		c.Redirect(http.StatusFound, postURL(post.ID))
		return nil, false
	}
	return post, true
}

func (h *Handler) renderPostForm(c *gin.Context, form forms.PostForm, errs forms.Errors, postID uint) {
	groups, err := h.store.ListGroups(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Groups")
		return
	}
	c.JSON(http.StatusOK, PostFormView{
		Form:   newPostFormResponse(form),
		Errors: errs,
		Groups: newGroupResponses(groups),
		IsEdit: postID != 0,
		PostID: postID,
	})
}

func (h *Handler) saveImage(ctx context.Context, img *forms.Image) (string, error) {
	key := storage.NewImageKey(img.Extension)
	if err := h.storage.Save(ctx, key, img.Data, img.ContentType); err != nil {
		return "", err
	}
	return key, nil
}

func (h *Handler) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := h.storage.Delete(ctx, key); err != nil {
		h.logger.Warn("failed to delete image", zap.String("key", key), zap.Error(err))
	}
}

// notifyFollowers pushes a freshly published post to the open feeds of the author's followers.
func (h *Handler) notifyFollowers(ctx context.Context, postID uint) {
	if h.hub == nil {
		return
	}
	post, err := h.store.PostByID(ctx, postID)
	if err != nil {
		h.logger.Warn("failed to load post for followers", zap.Uint("post_id", postID), zap.Error(err))
		return
	}
	followers, err := h.store.FollowerIDs(ctx, post.AuthorID)
	if err != nil {
		h.logger.Warn("failed to load followers", zap.Uint("author_id", post.AuthorID), zap.Error(err))
		return
	}
	event := hub.Event{Type: hub.EventPostCreated, Payload: newPostResponse(*post, h.storage)}
	if _, err := h.hub.Publish(followers, event); err != nil {
		h.logger.Warn("failed to publish post", zap.Uint("post_id", postID), zap.Error(err))
	}
}
