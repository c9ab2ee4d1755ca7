package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

type LoginStatus string

const (
	LoginOK      LoginStatus = "LOGIN"
	NeedToSignup LoginStatus = "NEED_TO_SIGNUP"
)

type LoginRequest struct {
	SocialType  model.SocialType `json:"socialType" binding:"required,oneof=GOOGLE KAKAO APPLE"`
	AccessToken string           `json:"accessToken" binding:"required"`
	FCMToken    string           `json:"fcmToken"`
}

type LoginResult struct {
	Status       LoginStatus `json:"loginStatus"`
	AccessToken  string      `json:"accessToken,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	SignToken    string      `json:"signToken,omitempty"`
}

type SignupRequest struct {
	SignToken    string  `json:"signToken" binding:"required"`
	Nickname     string  `json:"nickname" binding:"required,nickname"`
	Age          int     `json:"age" binding:"min=0,max=150"`
	Birthday     string  `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Gender       string  `json:"gender" binding:"omitempty,oneof=M F"`
	Introduce    string  `json:"introduce" binding:"max=255"`
	ProfileImage string  `json:"profileImage" binding:"max=512"`
	CategoryList []int64 `json:"categoryList" binding:"max=20"`
	FCMToken     string  `json:"fcmToken"`
	UsePolicy    bool    `json:"usePolicy"`
	PersonalInfo bool    `json:"personalInfo"`
	MarketPolicy bool    `json:"marketPolicy"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ReissueRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthService 登录、注册与令牌续签
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Signup(ctx context.Context, req SignupRequest) (auth.TokenPair, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) (auth.TokenPair, error)
	Reissue(ctx context.Context, req ReissueRequest) (auth.TokenPair, error)
	Logout(ctx context.Context, actorID int64) error
	Resolve(ctx context.Context, accessToken string) (auth.Principal, error)
}

type authService struct {
	store   *repository.Store
	tokens  *auth.TokenProvider
	refresh *auth.RefreshStore
	social  auth.SocialVerifier
	now     func() time.Time
}

func NewAuthService(store *repository.Store, tokens *auth.TokenProvider, refresh *auth.RefreshStore, social auth.SocialVerifier) AuthService {
	return &authService{store: store, tokens: tokens, refresh: refresh, social: social, now: time.Now}
}

// checkStatus 被暂停、封禁或已注销的账号不能登录
func checkStatus(a *model.Account) error {
	switch a.Status {
	case model.AccountWithdrawn:
		return errcode.New(errcode.NotFoundAccount)
	case model.AccountPaused:
		return errcode.New(errcode.PausedAccount)
	case model.AccountBanned:
		return errcode.New(errcode.BannedAccount)
	}
	return nil
}

// issue 签发并保存新的 refresh token，旧的随之失效
func (s *authService) issue(ctx context.Context, a *model.Account) (auth.TokenPair, error) {
	pair, err := s.tokens.Issue(a.Email, a.Role)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if err := s.refresh.Save(ctx, a.ID, pair.RefreshToken, s.tokens.RefreshDuration()); err != nil {
		return auth.TokenPair{}, err
	}
	return pair, nil
}

// Login 已注册返回令牌对，未注册返回注册用的 sign token
func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.SocialType == model.SocialApple {
		return nil, errcode.New(errcode.AppleLoginError)
	}
	profile, err := s.social.Verify(ctx, req.SocialType, req.AccessToken)
	if err != nil {
		return nil, err
	}
	a, err := s.store.Accounts.GetByEmail(ctx, profile.Email)
	if errcode.IsKind(err, errcode.NotFoundAccount) {
		sign, err := s.tokens.IssueSign(profile.Email)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Status: NeedToSignup, SignToken: sign}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := checkStatus(a); err != nil {
		return nil, err
	}
	if err := s.store.Accounts.TouchLogin(ctx, a.ID, s.now()); err != nil {
		return nil, err
	}
	if req.FCMToken != "" && req.FCMToken != a.FCMToken {
		a.FCMToken = req.FCMToken
		if err := s.store.Accounts.Save(ctx, a); err != nil {
			return nil, err
		}
	}
	pair, err := s.issue(ctx, a)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Status: LoginOK, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// socialTypeOf 由 providerID@socialType 形式的邮箱还原登录方式
func socialTypeOf(email string) model.SocialType {
	_, suffix, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}
	return model.SocialType(strings.ToUpper(suffix))
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (auth.TokenPair, error) {
	email, _, err := s.tokens.Parse(req.SignToken, auth.SignToken)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !ValidNickname(req.Nickname) {
		return auth.TokenPair{}, errcode.New(errcode.NicknameRuleError)
	}
	categories := uniqueIDs(req.CategoryList)
	now := s.now()
	a := &model.Account{
		Email:        email,
		Nickname:     req.Nickname,
		Age:          req.Age,
		Birthday:     req.Birthday,
		Gender:       req.Gender,
		Introduce:    req.Introduce,
		ProfileImage: req.ProfileImage,
		SocialType:   socialTypeOf(email),
		FCMToken:     req.FCMToken,
		LastLogin:    &now,
		Role:         model.RoleUser,
		Status:       model.AccountNormal,
	}
	err = s.store.Tx(ctx, func(tx *repository.Store) error {
		if ok, err := tx.Accounts.ExistsByEmail(ctx, email); err != nil {
			return err
		} else if ok {
			return errcode.New(errcode.EmailDuplication)
		}
		if ok, err := tx.Accounts.ExistsByNickname(ctx, req.Nickname); err != nil {
			return err
		} else if ok {
			return errcode.New(errcode.NicknameDuplication)
		}
		if err := checkSubCategories(ctx, tx, categories); err != nil {
			return err
		}
		if err := tx.Accounts.Create(ctx, a); err != nil {
			return err
		}
		return tx.Accounts.ReplaceCategories(ctx, a.ID, categories)
	})
	if err != nil {
		return auth.TokenPair{}, err
	}
	logger.Info("account signed up", zap.Int64("account_id", a.ID), zap.String("social", string(a.SocialType)))
	return s.issue(ctx, a)
}

func (s *authService) AdminLogin(ctx context.Context, req AdminLoginRequest) (auth.TokenPair, error) {
	a, err := s.store.Accounts.GetByEmail(ctx, req.Email)
	if errcode.IsKind(err, errcode.NotFoundAccount) {
		return auth.TokenPair{}, errcode.New(errcode.LoginFail)
	}
	if err != nil {
		return auth.TokenPair{}, err
	}
	if a.Role != model.RoleAdmin || a.Password == "" {
		return auth.TokenPair{}, errcode.New(errcode.LoginFail)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(req.Password)); err != nil {
		return auth.TokenPair{}, errcode.New(errcode.LoginFail)
	}
	if err := s.store.Accounts.TouchLogin(ctx, a.ID, s.now()); err != nil {
		return auth.TokenPair{}, err
	}
	return s.issue(ctx, a)
}

// HashPassword 管理员密码
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Reissue 只有与存储一致的 refresh token 才能换新，换新后旧令牌失效
func (s *authService) Reissue(ctx context.Context, req ReissueRequest) (auth.TokenPair, error) {
	email, _, err := s.tokens.Parse(req.RefreshToken, auth.RefreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}
	a, err := s.store.Accounts.GetByEmail(ctx, email)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if err := checkStatus(a); err != nil {
		return auth.TokenPair{}, err
	}
	stored, err := s.refresh.Get(ctx, a.ID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if stored == "" || stored != req.RefreshToken {
		return auth.TokenPair{}, errcode.New(errcode.NotFoundRefreshToken)
	}
	return s.issue(ctx, a)
}

func (s *authService) Logout(ctx context.Context, actorID int64) error {
	return s.refresh.Delete(ctx, actorID)
}

// Resolve 把 access token 解析成当前用户
func (s *authService) Resolve(ctx context.Context, accessToken string) (auth.Principal, error) {
	email, _, err := s.tokens.Parse(accessToken, auth.AccessToken)
	if err != nil {
		return auth.Principal{}, err
	}
	a, err := s.store.Accounts.GetByEmail(ctx, email)
	if errcode.IsKind(err, errcode.NotFoundAccount) {
		return auth.Principal{}, errcode.New(errcode.FilterAccessDenied)
	}
	if err != nil {
		return auth.Principal{}, err
	}
	if err := checkStatus(a); err != nil {
		return auth.Principal{}, err
	}
	// 角色以数据库为准，旧令牌里的 role 可能已过期
	return auth.Principal{AccountID: a.ID, Email: a.Email, Role: a.Role}, nil
}
