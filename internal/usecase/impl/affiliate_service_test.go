package impl

import (
	"context"
	"regexp"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/document"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"
	mockService "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/service"
	mockUsecase "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/usecase"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// affiliateServiceFixtures holds all test dependencies for affiliate service tests.
type affiliateServiceFixtures struct {
	service     usecase.AffiliateUsecase
	commissions *mockUsecase.MockCommissionUsecase
	qrCode      *mockService.MockQRCodeService
}

func createTestAffiliateService(t *testing.T) affiliateServiceFixtures {
	commissions := mockUsecase.NewMockCommissionUsecase(t)
	qrCode := mockService.NewMockQRCodeService(t)
	qrCode.EXPECT().ReferralURL(mock.Anything).RunAndReturn(func(code string) string {
		return "https://morethanmoney.pt/?ref=" + code
	}).Maybe()

	svc := NewAffiliateService(AffiliateServiceParams{
		MemberRepo:  document.NewMemberRepository(memory.NewKeyValueStore()),
		Commissions: commissions,
		QRCode:      qrCode,
		Metrics:     newLenientMetrics(t),
		Logger:      newTestLogger(),
	})

	return affiliateServiceFixtures{service: svc, commissions: commissions, qrCode: qrCode}
}

func registerTestMember(t *testing.T, svc usecase.AffiliateUsecase, username string, role entity.Role) *entity.Member {
	t.Helper()

	member, err := svc.RegisterMember(context.Background(), &usecase.MemberInput{
		Username: username,
		Name:     "Member " + username,
		Email:    username + "@example.com",
		Role:     role,
	})
	require.NoError(t, err)

	return member
}

func TestCanBeAffiliate(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{role: "VIP", want: true},
		{role: "Premium", want: true},
		{role: "Gold", want: true},
		{role: "Platinum", want: true},
		{role: "Basic", want: false},
		{role: "vip", want: false},
		{role: "admin", want: false},
		{role: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.CanBeAffiliate(tt.role))
		})
	}
}

func TestAffiliateService_RegisterMember(t *testing.T) {
	fx := createTestAffiliateService(t)
	ctx := context.Background()

	member := registerTestMember(t, fx.service, "ana", entity.RoleVIP)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, entity.RoleVIP, member.Role)

	_, err := fx.service.RegisterMember(ctx, &usecase.MemberInput{Username: "ANA", Name: "Dup", Email: "dup@example.com", Role: entity.RoleBasic})
	require.ErrorIs(t, err, domainerrors.ErrMemberAlreadyExists)

	_, err = fx.service.RegisterMember(ctx, &usecase.MemberInput{Username: "rui", Name: "Rui", Email: "not-an-email", Role: entity.RoleBasic})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterMember(ctx, &usecase.MemberInput{Username: "eva", Name: "Eva", Email: "eva@example.com", Role: entity.RoleAdmin})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	members, err := fx.service.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestAffiliateService_AssignAffiliateCode_Eligibility(t *testing.T) {
	fx := createTestAffiliateService(t)
	ctx := context.Background()

	basic := registerTestMember(t, fx.service, "basic", entity.RoleBasic)
	_, err := fx.service.AssignAffiliateCode(ctx, basic.ID, "BASIC1")
	require.ErrorIs(t, err, domainerrors.ErrAffiliateNotEligible)

	_, err = fx.service.AssignAffiliateCode(ctx, "missing", "CODE1")
	require.ErrorIs(t, err, domainerrors.ErrMemberNotFound)

	gold := registerTestMember(t, fx.service, "gold", entity.RoleGold)
	fx.commissions.EXPECT().TotalsForAffiliate(mock.Anything, "gold").Return(0.0, 0.0, nil)

	view, err := fx.service.AssignAffiliateCode(ctx, gold.ID, "  gold10 ")
	require.NoError(t, err)
	assert.Equal(t, "GOLD10", view.AffiliateCode)
	assert.Equal(t, "https://morethanmoney.pt/?ref=GOLD10", view.ReferralURL)

	affiliates, err := fx.service.ListAffiliates(ctx)
	require.NoError(t, err)
	for _, a := range affiliates {
		assert.True(t, entity.CanBeAffiliate(a.Role.String()), "every affiliate holds an eligible role")
	}
}

func TestAffiliateService_AssignAffiliateCode_UniqueAndGenerated(t *testing.T) {
	fx := createTestAffiliateService(t)
	ctx := context.Background()
	fx.commissions.EXPECT().TotalsForAffiliate(mock.Anything, mock.Anything).Return(0.0, 0.0, nil)

	ana := registerTestMember(t, fx.service, "ana", entity.RoleVIP)
	rui := registerTestMember(t, fx.service, "rui", entity.RolePremium)

	_, err := fx.service.AssignAffiliateCode(ctx, ana.ID, "MTM2024")
	require.NoError(t, err)

	_, err = fx.service.AssignAffiliateCode(ctx, rui.ID, "mtm2024")
	require.ErrorIs(t, err, domainerrors.ErrAffiliateCodeTaken)

	generated, err := fx.service.AssignAffiliateCode(ctx, rui.ID, "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^RUI[0-9A-F]{4}$`), generated.AffiliateCode)

	_, err = fx.service.AssignAffiliateCode(ctx, rui.ID, "no spaces!")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAffiliateService_DemotionRevokesCode(t *testing.T) {
	fx := createTestAffiliateService(t)
	ctx := context.Background()
	fx.commissions.EXPECT().TotalsForAffiliate(mock.Anything, mock.Anything).Return(0.0, 0.0, nil)

	member := registerTestMember(t, fx.service, "ana", entity.RolePlatinum)
	_, err := fx.service.AssignAffiliateCode(ctx, member.ID, "ANA1")
	require.NoError(t, err)

	updated, err := fx.service.UpdateMemberRole(ctx, member.ID, entity.RoleBasic)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBasic, updated.Role)

	_, err = fx.service.FindByCode(ctx, "ANA1")
	require.ErrorIs(t, err, domainerrors.ErrAffiliateNotFound)

	affiliates, err := fx.service.ListAffiliates(ctx)
	require.NoError(t, err)
	assert.Empty(t, affiliates)
}

func TestAffiliateService_FindByCode_DerivesTotals(t *testing.T) {
	fx := createTestAffiliateService(t)
	ctx := context.Background()

	member := registerTestMember(t, fx.service, "ana", entity.RoleVIP)
	fx.commissions.EXPECT().TotalsForAffiliate(mock.Anything, "ana").Return(125.5, 25.5, nil)

	_, err := fx.service.AssignAffiliateCode(ctx, member.ID, "ANA")
	require.NoError(t, err)

	view, err := fx.service.FindByCode(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, member.ID, view.ID)
	assert.InDelta(t, 125.5, view.TotalCommission, 0)
	assert.InDelta(t, 25.5, view.PendingCommission, 0)
}

func TestAffiliateService_RevokeAndQRCode(t *testing.T) {
	fx := createTestAffiliateService(t)
	ctx := context.Background()
	fx.commissions.EXPECT().TotalsForAffiliate(mock.Anything, mock.Anything).Return(0.0, 0.0, nil)

	member := registerTestMember(t, fx.service, "ana", entity.RoleVIP)
	_, err := fx.service.AssignAffiliateCode(ctx, member.ID, "ANA")
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.qrCode.EXPECT().GenerateReferralQR("ANA").Return(png, nil).Once()

	got, err := fx.service.AffiliateQRCode(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	require.NoError(t, fx.service.RevokeAffiliateCode(ctx, member.ID))
	require.ErrorIs(t, fx.service.RevokeAffiliateCode(ctx, member.ID), domainerrors.ErrAffiliateNotFound)

	_, err = fx.service.AffiliateQRCode(ctx, member.ID)
	require.ErrorIs(t, err, domainerrors.ErrAffiliateNotFound)
}
