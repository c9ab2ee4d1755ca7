package service

import (
	"context"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

// Guard 成员/组长校验。事务内请用 NewGuard(tx.Members)。
type Guard struct {
	members repository.MembershipRepository
}

func NewGuard(members repository.MembershipRepository) *Guard { return &Guard{members: members} }

func (g *Guard) IsMember(ctx context.Context, accountID, plubbingID int64) (bool, error) {
	m, err := g.members.Find(ctx, accountID, plubbingID)
	if err != nil {
		return false, err
	}
	return m != nil && m.Status == model.MembershipActive, nil
}

func (g *Guard) IsHost(ctx context.Context, accountID, plubbingID int64) (bool, error) {
	m, err := g.members.Find(ctx, accountID, plubbingID)
	if err != nil {
		return false, err
	}
	return m != nil && m.Status == model.MembershipActive && m.IsHost, nil
}

func (g *Guard) CheckMember(ctx context.Context, accountID, plubbingID int64) error {
	ok, err := g.IsMember(ctx, accountID, plubbingID)
	if err != nil {
		return err
	}
	if !ok {
		return errcode.New(errcode.NotMemberError)
	}
	return nil
}

func (g *Guard) CheckHost(ctx context.Context, accountID, plubbingID int64) error {
	ok, err := g.IsHost(ctx, accountID, plubbingID)
	if err != nil {
		return err
	}
	if !ok {
		return errcode.New(errcode.NotHostError)
	}
	return nil
}
