package document

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
)

type memberRepository struct {
	store repository.KeyValueStore
}

// NewMemberRepository stores members under registeredUsers and enrolments under affiliates.
func NewMemberRepository(store repository.KeyValueStore) repository.MemberRepository {
	return &memberRepository{store: store}
}

func (r *memberRepository) LoadMembers(ctx context.Context) ([]*entity.Member, error) {
	return loadList[*entity.Member](ctx, r.store, constants.KeyRegisteredUsers)
}

func (r *memberRepository) SaveMembers(ctx context.Context, members []*entity.Member) error {
	return save(ctx, r.store, constants.KeyRegisteredUsers, nonNil(members))
}

func (r *memberRepository) LoadAffiliates(ctx context.Context) ([]*entity.AffiliateUser, error) {
	return loadList[*entity.AffiliateUser](ctx, r.store, constants.KeyAffiliates)
}

func (r *memberRepository) SaveAffiliates(ctx context.Context, affiliates []*entity.AffiliateUser) error {
	return save(ctx, r.store, constants.KeyAffiliates, nonNil(affiliates))
}
