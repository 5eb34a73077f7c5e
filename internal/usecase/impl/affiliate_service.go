package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	generatedCodePrefixLen = 6
	generatedCodeSuffixLen = 4
	maxCodeGenerateTries   = 10
)

// affiliateService implements the AffiliateUsecase interface over the registeredUsers and affiliates documents.
type affiliateService struct {
	mu         sync.Mutex
	loaded     bool
	members    []*entity.Member
	affiliates []*entity.AffiliateUser

	memberRepo  repository.MemberRepository
	commissions usecase.CommissionUsecase
	qrCode      service.QRCodeService
	metrics     service.Metrics
	now         func() time.Time
	logger      *slog.Logger
}

// AffiliateServiceParams holds dependencies for AffiliateService, injected by Fx.
type AffiliateServiceParams struct {
	fx.In

	MemberRepo  repository.MemberRepository
	Commissions usecase.CommissionUsecase
	QRCode      service.QRCodeService
	Metrics     service.Metrics
	Logger      *slog.Logger
}

// NewAffiliateService is the constructor for affiliateService.
func NewAffiliateService(params AffiliateServiceParams) usecase.AffiliateUsecase {
	return &affiliateService{
		memberRepo:  params.MemberRepo,
		commissions: params.Commissions,
		qrCode:      params.QRCode,
		metrics:     params.Metrics,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *affiliateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *affiliateService) RegisterMember(ctx context.Context, input *usecase.MemberInput) (*entity.Member, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("member is required")
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() || input.Role == entity.RoleAdmin {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"role": "must be one of Basic, VIP, Premium, Gold, Platinum"})
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	username := strings.TrimSpace(input.Username)
	for _, m := range srv.members {
		if strings.EqualFold(m.Username, username) {
			return nil, domainerrors.ErrMemberAlreadyExists.WithDetails(username)
		}
	}

	member := &entity.Member{
		ID:        uuid.NewString(),
		Username:  username,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Role:      input.Role,
		CreatedAt: srv.now(),
	}
	srv.members = append(srv.members, member)
	srv.persistMembersLocked(ctx)

	srv.log(ctx).Info("Member registered",
		slog.String("member_id", member.ID),
		slog.String("role", member.Role.String()),
	)

	return copyMember(member), nil
}

func (srv *affiliateService) ListMembers(ctx context.Context) ([]*entity.Member, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	members := make([]*entity.Member, 0, len(srv.members))
	for _, m := range srv.members {
		members = append(members, copyMember(m))
	}

	return members, nil
}

func (srv *affiliateService) UpdateMemberRole(ctx context.Context, memberID string, role entity.Role) (*entity.Member, error) {
	if !role.IsValid() || role == entity.RoleAdmin {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"role": "must be one of Basic, VIP, Premium, Gold, Platinum"})
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	member := srv.findMemberLocked(memberID)
	if member == nil {
		return nil, domainerrors.ErrMemberNotFound.WithDetails(memberID)
	}
	member.Role = role
	srv.persistMembersLocked(ctx)

	if idx := srv.affiliateIndexLocked(memberID); idx >= 0 {
		if entity.CanBeAffiliate(role.String()) {
			srv.affiliates[idx].Role = role
		} else {
			srv.log(ctx).Info("Revoking affiliate code of ineligible member",
				slog.String("member_id", memberID),
				slog.String("role", role.String()),
			)
			srv.affiliates = append(srv.affiliates[:idx], srv.affiliates[idx+1:]...)
		}
		srv.persistAffiliatesLocked(ctx)
	}

	return copyMember(member), nil
}

func (srv *affiliateService) AssignAffiliateCode(ctx context.Context, memberID, code string) (*usecase.AffiliateView, error) {
	code = util.NormalizeCode(code)
	if code != "" {
		if err := validate.Var(code, "alphanum,min=3,max=20"); err != nil {
			return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"code": "must be 3 to 20 letters or digits"})
		}
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	member := srv.findMemberLocked(memberID)
	if member == nil {
		return nil, domainerrors.ErrMemberNotFound.WithDetails(memberID)
	}
	if !entity.CanBeAffiliate(member.Role.String()) {
		return nil, domainerrors.ErrAffiliateNotEligible.WithDetails(member.Role.String())
	}

	if code == "" {
		generated, err := srv.generateCodeLocked(member.Username)
		if err != nil {
			return nil, err
		}
		code = generated
	} else if owner := srv.findAffiliateByCodeLocked(code); owner != nil && owner.ID != memberID {
		return nil, domainerrors.ErrAffiliateCodeTaken.WithDetails(code)
	}

	var affiliate *entity.AffiliateUser
	if idx := srv.affiliateIndexLocked(memberID); idx >= 0 {
		affiliate = srv.affiliates[idx]
	} else {
		affiliate = &entity.AffiliateUser{ID: member.ID}
		srv.affiliates = append(srv.affiliates, affiliate)
	}
	affiliate.Username = member.Username
	affiliate.Name = member.Name
	affiliate.Email = member.Email
	affiliate.Role = member.Role
	affiliate.AffiliateCode = code
	srv.persistAffiliatesLocked(ctx)

	srv.log(ctx).Info("Affiliate code assigned",
		slog.String("member_id", memberID),
		slog.String("code", code),
	)

	return srv.viewOf(ctx, affiliate)
}

func (srv *affiliateService) RevokeAffiliateCode(ctx context.Context, memberID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	idx := srv.affiliateIndexLocked(memberID)
	if idx < 0 {
		return domainerrors.ErrAffiliateNotFound.WithDetails(memberID)
	}
	srv.affiliates = append(srv.affiliates[:idx], srv.affiliates[idx+1:]...)
	srv.persistAffiliatesLocked(ctx)

	return nil
}

func (srv *affiliateService) FindByCode(ctx context.Context, code string) (*usecase.AffiliateView, error) {
	code = util.NormalizeCode(code)
	if code == "" {
		return nil, domainerrors.ErrAffiliateNotFound.WithDetails("empty code")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	affiliate := srv.findAffiliateByCodeLocked(code)
	if affiliate == nil {
		return nil, domainerrors.ErrAffiliateNotFound.WithDetails(code)
	}

	return srv.viewOf(ctx, affiliate)
}

func (srv *affiliateService) ListAffiliates(ctx context.Context) ([]*usecase.AffiliateView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	views := make([]*usecase.AffiliateView, 0, len(srv.affiliates))
	for _, a := range srv.affiliates {
		view, err := srv.viewOf(ctx, a)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (srv *affiliateService) AffiliateQRCode(ctx context.Context, memberID string) ([]byte, error) {
	srv.mu.Lock()
	srv.ensureLoadedLocked(ctx)
	idx := srv.affiliateIndexLocked(memberID)
	code := ""
	if idx >= 0 {
		code = srv.affiliates[idx].AffiliateCode
	}
	srv.mu.Unlock()

	if code == "" {
		return nil, domainerrors.ErrAffiliateNotFound.WithDetails(memberID)
	}

	png, err := srv.qrCode.GenerateReferralQR(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}

// viewOf copies affiliate and derives its commission totals from the ledger.
func (srv *affiliateService) viewOf(ctx context.Context, affiliate *entity.AffiliateUser) (*usecase.AffiliateView, error) {
	total, pending, err := srv.commissions.TotalsForAffiliate(ctx, affiliate.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive affiliate totals")
	}

	clone := *affiliate
	clone.TotalCommission = total
	clone.PendingCommission = pending

	return &usecase.AffiliateView{
		AffiliateUser: &clone,
		ReferralURL:   srv.qrCode.ReferralURL(clone.AffiliateCode),
	}, nil
}

// generateCodeLocked builds an unused code from the username and a random suffix.
func (srv *affiliateService) generateCodeLocked(username string) (string, error) {
	prefix := make([]rune, 0, generatedCodePrefixLen)
	for _, r := range strings.ToUpper(username) {
		if len(prefix) == generatedCodePrefixLen {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			prefix = append(prefix, r)
		}
	}
	if len(prefix) == 0 {
		prefix = []rune("MTM")
	}

	for range maxCodeGenerateTries {
		suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:generatedCodeSuffixLen]
		code := string(prefix) + suffix
		if srv.findAffiliateByCodeLocked(code) == nil {
			return code, nil
		}
	}

	return "", domainerrors.ErrAffiliateCodeTaken.WithDetails("could not generate a unique code")
}

func (srv *affiliateService) findMemberLocked(id string) *entity.Member {
	for _, m := range srv.members {
		if m.ID == id {
			return m
		}
	}

	return nil
}

func (srv *affiliateService) affiliateIndexLocked(id string) int {
	for i, a := range srv.affiliates {
		if a.ID == id {
			return i
		}
	}

	return -1
}

func (srv *affiliateService) findAffiliateByCodeLocked(code string) *entity.AffiliateUser {
	for _, a := range srv.affiliates {
		if a.AffiliateCode != "" && util.NormalizeCode(a.AffiliateCode) == code {
			return a
		}
	}

	return nil
}

// ensureLoadedLocked hydrates members and affiliates once. Unreadable documents start empty.
func (srv *affiliateService) ensureLoadedLocked(ctx context.Context) {
	if srv.loaded {
		return
	}
	srv.loaded = true

	members, err := srv.memberRepo.LoadMembers(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load registered users, starting empty", slog.Any("error", err))
		members = []*entity.Member{}
	}
	srv.members = members

	affiliates, err := srv.memberRepo.LoadAffiliates(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load affiliates, starting empty", slog.Any("error", err))
		affiliates = []*entity.AffiliateUser{}
	}
	srv.affiliates = affiliates
}

func (srv *affiliateService) persistMembersLocked(ctx context.Context) {
	if err := srv.memberRepo.SaveMembers(ctx, srv.members); err != nil {
		srv.log(ctx).Error("Failed to persist registered users", slog.Any("error", err))
		srv.metrics.StoreWriteFailed(constants.KeyRegisteredUsers)
	}
}

func (srv *affiliateService) persistAffiliatesLocked(ctx context.Context) {
	if err := srv.memberRepo.SaveAffiliates(ctx, srv.affiliates); err != nil {
		srv.log(ctx).Error("Failed to persist affiliates", slog.Any("error", err))
		srv.metrics.StoreWriteFailed(constants.KeyAffiliates)
	}
}

func copyMember(m *entity.Member) *entity.Member {
	clone := *m

	return &clone
}
