package handler

import (
	"time"

	"yatube/backend/internal/forms"
	"yatube/backend/internal/models"
	"yatube/backend/internal/storage"
)

// AuthorResponse is the public part of a user.
type AuthorResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"leo"`
}

// GroupResponse describes a community.
type GroupResponse struct {
	ID          uint   `json:"id" example:"1"`
	Title       string `json:"title" example:"Cats"`
	Slug        string `json:"slug" example:"cats"`
	Description string `json:"description"`
}

// PostResponse is a post as shown in listings and on its own page.
type PostResponse struct {
	ID        uint           `json:"id" example:"1"`
	Text      string         `json:"text"`
	TextHTML  string         `json:"text_html"`
	Excerpt   string         `json:"excerpt"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
	Group     *GroupResponse `json:"group"`
	ImageURL  string         `json:"image_url,omitempty"`
}

// CommentResponse is a comment under a post.
type CommentResponse struct {
	ID        uint           `json:"id"`
	Text      string         `json:"text"`
	TextHTML  string         `json:"text_html"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
}

// PostFormResponse echoes the post form back to the client.
type PostFormResponse struct {
	Text  string `json:"text"`
	Group string `json:"group"`
}

// PostFormView is the create/edit page.
type PostFormView struct {
	Form   PostFormResponse `json:"form"`
	Errors forms.Errors     `json:"errors,omitempty"`
	Groups []GroupResponse  `json:"groups"`
	IsEdit bool             `json:"is_edit"`
	PostID uint             `json:"post_id,omitempty"`
}

// PostPage is one page of posts.
type PostPage = PaginatedResponse[PostResponse]

func newAuthorResponse(u models.User) AuthorResponse {
	return AuthorResponse{ID: u.ID, Username: u.Username}
}

func newGroupResponse(g models.Group) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

func newGroupResponses(groups []models.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, newGroupResponse(g))
	}
	return out
}

func newPostResponse(post models.Post, st storage.Storage) PostResponse {
	resp := PostResponse{
		ID:        post.ID,
		Text:      post.Text,
		TextHTML:  renderText(post.Text),
		Excerpt:   post.Excerpt(),
		CreatedAt: post.CreatedAt,
		Author:    newAuthorResponse(post.Author),
	}
	if post.Group != nil {
		g := newGroupResponse(*post.Group)
		resp.Group = &g
	}
	if post.Image != "" && st != nil {
		resp.ImageURL = st.URL(post.Image)
	}
	return resp
}

func newCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		TextHTML:  renderText(c.Text),
		CreatedAt: c.CreatedAt,
		Author:    newAuthorResponse(c.Author),
	}
}

func newPostFormResponse(f forms.PostForm) PostFormResponse {
	return PostFormResponse{Text: f.Text, Group: f.Group}
}

func (h *Handler) postPage(page *PaginatedResponse[models.Post]) PostPage {
	return mapPage(page, func(p models.Post) PostResponse {
		return newPostResponse(p, h.storage)
	})
}
