package usecase

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// MemberInput registers a member
type MemberInput struct {
	Username string      `json:"username" validate:"required,min=3"`
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Role     entity.Role `json:"role" validate:"required"`
}

// AffiliateView is an affiliate with its referral link
type AffiliateView struct {
	*entity.AffiliateUser
	ReferralURL string `json:"referralUrl"`
}

// AffiliateUsecase manages members and their affiliate codes
type AffiliateUsecase interface {
	// RegisterMember adds a member; usernames are unique
	RegisterMember(ctx context.Context, input *MemberInput) (*entity.Member, error)

	// ListMembers returns every member ordered by registration
	ListMembers(ctx context.Context) ([]*entity.Member, error)

	// UpdateMemberRole changes a member's role and revokes the code when the new role is not eligible
	UpdateMemberRole(ctx context.Context, memberID string, role entity.Role) (*entity.Member, error)

	// AssignAffiliateCode enrols an eligible member with code, generating one when empty
	AssignAffiliateCode(ctx context.Context, memberID, code string) (*AffiliateView, error)

	// RevokeAffiliateCode removes the member from the affiliate programme
	RevokeAffiliateCode(ctx context.Context, memberID string) error

	// FindByCode resolves an affiliate code, case-insensitively
	FindByCode(ctx context.Context, code string) (*AffiliateView, error)

	// ListAffiliates returns every affiliate with totals derived from the ledger
	ListAffiliates(ctx context.Context) ([]*AffiliateView, error)

	// AffiliateQRCode returns a PNG QR code of the member's referral link
	AffiliateQRCode(ctx context.Context, memberID string) ([]byte, error)
}
