package forms

import "strings"

// CommentForm is the raw input of the comment form.
type CommentForm struct {
	Text string `form:"text" json:"text" validate:"required,max=5000"`
}

// Validate returns the trimmed comment text or the field errors.
// The text is stored as typed; markup is escaped only when rendered.
func (f CommentForm) Validate() (string, Errors) {
	errs := Errors{}
	f.Text = strings.TrimSpace(f.Text)
	collect(f, errs)
	if errs.Any() {
		return "", errs
	}
	return f.Text, nil
}
