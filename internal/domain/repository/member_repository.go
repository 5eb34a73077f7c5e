package repository

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// MemberRepository persists registered users and affiliate enrolments.
type MemberRepository interface {
	// LoadMembers returns every registered user.
	LoadMembers(ctx context.Context) ([]*entity.Member, error)

	// SaveMembers replaces the registered users document.
	SaveMembers(ctx context.Context, members []*entity.Member) error

	// LoadAffiliates returns every affiliate enrolment.
	LoadAffiliates(ctx context.Context) ([]*entity.AffiliateUser, error)

	// SaveAffiliates replaces the affiliates document.
	SaveAffiliates(ctx context.Context, affiliates []*entity.AffiliateUser) error
}
