package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

func TestReportAccountThresholds(t *testing.T) {
	f := newFixture(t)
	n := &recordingNotifier{}
	svc := NewReportService(f.store, n)
	target := f.account()

	report := func() {
		t.Helper()
		_, err := svc.Create(f.ctx, f.account().ID, ReportRequest{
			ReportTarget: model.TargetAccount, TargetID: target.ID, ReportType: model.ReasonBadWords,
		})
		require.NoError(t, err)
	}
	status := func() model.AccountStatus {
		a, err := f.store.Accounts.GetByID(f.ctx, target.ID)
		require.NoError(t, err)
		return a.Status
	}

	report()
	assert.Len(t, n.to(target.ID), 1)
	assert.Equal(t, model.AccountNormal, status())

	report()
	report()
	assert.Equal(t, model.AccountPaused, status())
	assert.Len(t, n.to(target.ID), 2)

	report()
	report()
	assert.Equal(t, model.AccountPaused, status())
	report()
	assert.Equal(t, model.AccountBanned, status())
}

func TestReportPlubbingThresholds(t *testing.T) {
	f := newFixture(t)
	n := &recordingNotifier{}
	svc := NewReportService(f.store, n)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	for i := 1; i <= model.ReportPlubbingPauseCount; i++ {
		_, err := svc.Create(f.ctx, f.account().ID, ReportRequest{
			ReportTarget: model.TargetPlubbing, TargetID: p.ID, ReportType: model.ReasonFraud,
		})
		require.NoError(t, err)
		if i == model.ReportPlubbingWarnCount {
			assert.Len(t, n.to(host.ID), 1)
		}
	}

	got, err := f.store.Plubbings.GetByID(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlubbingEnd, got.Status)
	m, err := f.store.Members.Find(f.ctx, member.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MembershipEnd, m.Status)
}

func TestReportValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewReportService(f.store, nil)
	host := f.account()
	p := f.plubbing(host)

	_, err := svc.Create(f.ctx, host.ID, ReportRequest{ReportTarget: model.TargetAccount, TargetID: host.ID, ReportType: "NOPE"})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundReportType))

	_, err = svc.Create(f.ctx, host.ID, ReportRequest{ReportTarget: model.TargetPlubbing, TargetID: p.ID, ReportType: model.ReasonEtc})
	assert.True(t, errcode.IsKind(err, errcode.CannotReportSelf))

	_, err = svc.Create(f.ctx, host.ID, ReportRequest{ReportTarget: model.TargetFeed, TargetID: 404, ReportType: model.ReasonEtc})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundFeed))

	assert.Len(t, svc.Types(), len(model.ReportReasons))
}
