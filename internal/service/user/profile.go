package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile changes the authenticated user's display name.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Update name and record the change
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		updated, err = s.users.UpdateName(txCtx, userID, name)
		if err != nil {
			return fmt.Errorf("update name: %w", err)
		}

		return s.writeAudit(txCtx, userID, map[string]any{
			"name": map[string]any{"old": current.Name, "new": updated.Name},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

// ChangePassword replaces the password after checking the current one and
// revokes every refresh token so other sessions must log in again.
// A wrong current password is a validation error on currentPassword.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	// Step 3: Verify the current password
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user.ChangePassword get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return domain.NewValidationError("currentPassword", "incorrect")
	}

	// Step 4: Hash the new password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("user.ChangePassword hash password: %w", err)
	}

	// Step 5: Store hash, revoke sessions and audit in one transaction
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdatePasswordHash(txCtx, userID, string(hash)); err != nil {
			return fmt.Errorf("update password hash: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return s.writeAudit(txCtx, userID, map[string]any{"password": "changed"})
	})
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", userID.String()))

	return nil
}

func (s *Service) writeAudit(ctx context.Context, userID uuid.UUID, changes map[string]any) error {
	_, err := s.audit.Create(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		UserID:     userID,
		EntityType: domain.EntityTypeUser,
		EntityID:   &userID,
		Action:     domain.AuditActionUpdate,
		Changes:    changes,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	return nil
}
