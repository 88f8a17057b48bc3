package auth

import (
	"github.com/selim/campushub/internal/app/models"
)

// AuthorizationService holds the role-based access policy
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CanModerate reports whether the role may remove other users' content and
// review reports. Teachers share the moderator privilege with admins.
func (s *AuthorizationService) CanModerate(role models.RoleType) bool {
	return role == models.RoleAdmin || role == models.RoleTeacher
}

// CanDeletePost reports whether the caller may delete the given post
func (s *AuthorizationService) CanDeletePost(post *models.Post, userID string, role models.RoleType) bool {
	if post == nil {
		return false
	}
	return post.AuthorID == userID || s.CanModerate(role)
}

// CanDeleteComment reports whether the caller may delete the given comment
func (s *AuthorizationService) CanDeleteComment(comment *models.Comment, userID string, role models.RoleType) bool {
	if comment == nil {
		return false
	}
	return comment.AuthorID == userID || s.CanModerate(role)
}
