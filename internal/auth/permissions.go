package auth

import "yatube/backend/internal/models"

// CanEditPost reports whether actor may change post. Only the author may.
func CanEditPost(actorID uint, post *models.Post) bool {
	return actorID != 0 && post != nil && post.AuthorID == actorID
}

// CanFollow reports whether actor may follow author. Nobody follows themselves.
func CanFollow(actorID, authorID uint) bool {
	return actorID != 0 && authorID != 0 && actorID != authorID
}
