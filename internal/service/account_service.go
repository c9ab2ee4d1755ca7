package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

// NicknameMaxLen 昵称最多 8 个字符
const NicknameMaxLen = 8

var nicknamePattern = regexp.MustCompile(`^[0-9a-zA-Zㄱ-ㅎㅏ-ㅣ가-힣]*$`)

// ValidNickname 只允许数字、英文、韩文，1~8 个字符
func ValidNickname(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= NicknameMaxLen && nicknamePattern.MatchString(s)
}

type AccountView struct {
	AccountID    int64            `json:"accountId"`
	Email        string           `json:"email"`
	Nickname     string           `json:"nickname"`
	SocialType   model.SocialType `json:"socialType"`
	Age          int              `json:"age"`
	Birthday     string           `json:"birthday"`
	Gender       string           `json:"gender"`
	Introduce    string           `json:"introduce"`
	ProfileImage string           `json:"profileImage"`
	Role         model.Role       `json:"role"`
}

type ProfileView struct {
	Nickname     string `json:"nickname"`
	Introduce    string `json:"introduce"`
	ProfileImage string `json:"profileImage"`
}

type ProfileRequest struct {
	Nickname     string `json:"nickname" binding:"required,nickname"`
	Introduce    string `json:"introduce" binding:"max=255"`
	ProfileImage string `json:"profileImage" binding:"max=512"`
}

type InterestRequest struct {
	SubCategoryIDs []int64 `json:"subCategories" binding:"max=20"`
}

// HostedPlubbings 注销被拒时返回，客户端据此提示先转让或结束小组
type HostedPlubbings struct {
	PlubbingIDs []int64 `json:"plubbingIds"`
}

type InterestView struct {
	AccountID     int64             `json:"accountId"`
	SubCategories []SubCategoryView `json:"subCategories"`
}

// AccountService 账号资料、兴趣与注销
type AccountService interface {
	Me(ctx context.Context, actorID int64) (*AccountView, error)
	GetByNickname(ctx context.Context, nickname string) (*ProfileView, error)
	CheckNickname(ctx context.Context, nickname string) (bool, error)
	UpdateProfile(ctx context.Context, actorID int64, req ProfileRequest) (*AccountView, error)
	Interests(ctx context.Context, actorID int64) (*InterestView, error)
	UpdateInterests(ctx context.Context, actorID int64, req InterestRequest) (*InterestView, error)
	Revoke(ctx context.Context, actorID int64, accessToken string) error
}

type accountService struct {
	store   *repository.Store
	social  auth.SocialVerifier
	refresh *auth.RefreshStore
	files   FileRemover
}

func NewAccountService(store *repository.Store, social auth.SocialVerifier, refresh *auth.RefreshStore, files FileRemover) AccountService {
	return &accountService{store: store, social: social, refresh: refresh, files: files}
}

func accountView(a *model.Account) *AccountView {
	return &AccountView{
		AccountID:    a.ID,
		Email:        a.Email,
		Nickname:     a.Nickname,
		SocialType:   a.SocialType,
		Age:          a.Age,
		Birthday:     a.Birthday,
		Gender:       a.Gender,
		Introduce:    a.Introduce,
		ProfileImage: a.ProfileImage,
		Role:         a.Role,
	}
}

func (s *accountService) Me(ctx context.Context, actorID int64) (*AccountView, error) {
	a, err := s.store.Accounts.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return accountView(a), nil
}

func (s *accountService) GetByNickname(ctx context.Context, nickname string) (*ProfileView, error) {
	a, err := s.store.Accounts.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	return &ProfileView{Nickname: a.Nickname, Introduce: a.Introduce, ProfileImage: a.ProfileImage}, nil
}

// CheckNickname 规则不符返回 NicknameRuleError，已被占用返回 NicknameDuplication
func (s *accountService) CheckNickname(ctx context.Context, nickname string) (bool, error) {
	if !ValidNickname(nickname) {
		return false, errcode.New(errcode.NicknameRuleError)
	}
	taken, err := s.store.Accounts.ExistsByNickname(ctx, nickname)
	if err != nil {
		return false, err
	}
	if taken {
		return false, errcode.New(errcode.NicknameDuplication)
	}
	return true, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, actorID int64, req ProfileRequest) (*AccountView, error) {
	if !ValidNickname(req.Nickname) {
		return nil, errcode.New(errcode.NicknameRuleError)
	}
	var out *model.Account
	var oldImage string
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		a, err := tx.Accounts.GetByID(ctx, actorID)
		if err != nil {
			return err
		}
		oldImage = a.ProfileImage
		if a.Nickname != req.Nickname {
			taken, err := tx.Accounts.ExistsByNickname(ctx, req.Nickname)
			if err != nil {
				return err
			}
			if taken {
				return errcode.New(errcode.NicknameDuplication)
			}
		}
		a.Nickname = req.Nickname
		a.Introduce = req.Introduce
		if req.ProfileImage != "" {
			a.ProfileImage = req.ProfileImage
		}
		out = a
		return tx.Accounts.Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	discardReplaced(s.files, oldImage, out.ProfileImage)
	return accountView(out), nil
}

func (s *accountService) Interests(ctx context.Context, actorID int64) (*InterestView, error) {
	ids, err := s.store.Accounts.ListCategoryIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.Categories.ListSubCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &InterestView{AccountID: actorID, SubCategories: subViews(rows)}, nil
}

func (s *accountService) UpdateInterests(ctx context.Context, actorID int64, req InterestRequest) (*InterestView, error) {
	ids := uniqueIDs(req.SubCategoryIDs)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if err := checkSubCategories(ctx, tx, ids); err != nil {
			return err
		}
		return tx.Accounts.ReplaceCategories(ctx, actorID, ids)
	})
	if err != nil {
		return nil, err
	}
	return s.Interests(ctx, actorID)
}

// withdrawnEmail / withdrawnNickname 注销后改写的唯一值。
// 昵称规则不允许 '-'，不会与正常昵称冲突
func withdrawnEmail(a *model.Account) string {
	return fmt.Sprintf("withdrawn-%d:%s", a.ID, a.Email)
}

func withdrawnNickname(a *model.Account) string {
	return fmt.Sprintf("withdrawn-%d", a.ID)
}

// Revoke 解除第三方授权后注销账号：退出所有小组，改写邮箱与昵称并置为 WITHDRAWN，
// 之后同一社交账号登录会重新走注册流程。仍是活跃小组组长时不能注销
func (s *accountService) Revoke(ctx context.Context, actorID int64, accessToken string) error {
	a, err := s.store.Accounts.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if a.Status == model.AccountWithdrawn {
		return errcode.New(errcode.NotFoundAccount)
	}
	host := true
	hosted, err := s.store.Members.ListByAccount(ctx, actorID, &host, model.MembershipActive)
	if err != nil {
		return err
	}
	if len(hosted) > 0 {
		ids := make([]int64, len(hosted))
		for i, m := range hosted {
			ids[i] = m.PlubbingID
		}
		return errcode.WithData(errcode.HostCannotLeave, HostedPlubbings{PlubbingIDs: ids})
	}
	if a.SocialType == model.SocialGoogle || a.SocialType == model.SocialKakao {
		providerID, _, _ := strings.Cut(a.Email, "@")
		if err := s.social.Revoke(ctx, a.SocialType, auth.RevokeRequest{AccessToken: accessToken, UserID: providerID}); err != nil {
			return err
		}
	}
	social := a.SocialType
	var left int
	err = s.store.Tx(ctx, func(tx *repository.Store) error {
		joined, err := tx.Members.ListByAccount(ctx, actorID, nil, model.MembershipActive)
		if err != nil {
			return err
		}
		for _, m := range joined {
			if m.IsHost {
				return errcode.New(errcode.HostCannotLeave)
			}
			if err := tx.Members.UpdateStatus(ctx, actorID, m.PlubbingID, model.MembershipExit); err != nil {
				return err
			}
			if err := tx.Plubbings.AdjustMemberCount(ctx, m.PlubbingID, -1); err != nil {
				return err
			}
		}
		left = len(joined)
		a.Status = model.AccountWithdrawn
		a.Email = withdrawnEmail(a)
		a.Nickname = withdrawnNickname(a)
		a.FCMToken = ""
		a.ProviderRefreshToken = ""
		if err := tx.Accounts.Save(ctx, a); err != nil {
			return err
		}
		return tx.Accounts.ReplaceCategories(ctx, actorID, nil)
	})
	if err != nil {
		return err
	}
	if err := s.refresh.Delete(ctx, actorID); err != nil {
		logger.Warn("drop refresh token", zap.Int64("account_id", actorID), zap.Error(err))
	}
	logger.Info("account withdrawn", zap.Int64("account_id", actorID), zap.String("social", string(social)), zap.Int("plubbings_left", left))
	return nil
}
