package forms

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"yatube/backend/internal/models"
	"yatube/backend/internal/store"
)

// GroupLookup resolves the group a post is filed under.
type GroupLookup interface {
	GroupByID(ctx context.Context, id uint) (*models.Group, error)
}

// PostForm is the raw input of the create and edit post forms.
type PostForm struct {
	Text  string                `form:"text" json:"text" validate:"required"`
	Group string                `form:"group" json:"group"`
	Image *multipart.FileHeader `form:"image" json:"-" validate:"-"`
}

// PostData is a validated post form ready to be applied to a models.Post.
type PostData struct {
	Text    string
	GroupID *uint
	Image   *Image
}

// NewPostForm pre-fills the form from an existing post for editing.
func NewPostForm(post *models.Post) PostForm {
	f := PostForm{Text: post.Text}
	if post.GroupID != nil {
		f.Group = strconv.FormatUint(uint64(*post.GroupID), 10)
	}
	return f
}

// Validate checks every field and returns either the cleaned data or all field errors.
// Lookup failures other than a missing group are returned as err.
func (f PostForm) Validate(ctx context.Context, groups GroupLookup, maxImageBytes int64) (*PostData, Errors, error) {
	errs := Errors{}
	f.Text = strings.TrimSpace(f.Text)
	collect(f, errs)

	data := &PostData{Text: f.Text}

	if raw := strings.TrimSpace(f.Group); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			errs.Add("group", msgInvalidGroup)
		} else {
			group, err := groups.GroupByID(ctx, uint(id))
			switch {
			case errors.Is(err, store.ErrNotFound):
				errs.Add("group", msgInvalidGroup)
			case err != nil:
				return nil, nil, err
			default:
				data.GroupID = &group.ID
			}
		}
	}

	if f.Image != nil {
		img, err := ReadImage(f.Image, maxImageBytes)
		if err != nil {
			errs.Add("image", err.Error())
		} else {
			data.Image = img
		}
	}

	if errs.Any() {
		return nil, errs, nil
	}
	return data, nil, nil
}

// Apply copies the validated fields onto post. Author and creation time are untouched.
func (d *PostData) Apply(post *models.Post) {
	post.Text = d.Text
	post.GroupID = d.GroupID
}
