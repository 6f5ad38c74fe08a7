package auth

import "github.com/peaklearn/peaklearn-backend/internal/domain"

// AuthResult is returned by Signup, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
