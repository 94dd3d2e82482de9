package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rosterhub-backend/internal/config"
	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/identity"
	"rosterhub-backend/internal/service"
)

type MockIdentityClient struct {
	mock.Mock
}

func (m *MockIdentityClient) FindByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *MockIdentityClient) Create(ctx context.Context, email, password string, role domain.MemberRole) (*identity.Identity, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *MockIdentityClient) Delete(ctx context.Context, identityID string) error {
	args := m.Called(ctx, identityID)
	return args.Error(0)
}

func (m *MockIdentityClient) List(ctx context.Context) ([]identity.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Identity), args.Error(1)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.Member, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepo) Search(ctx context.Context, query string) ([]domain.Member, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepo) ListIdentityIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBatchReport(ctx context.Context, summary service.BatchSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockEmailService) SendOrphanReport(ctx context.Context, emails []string) error {
	args := m.Called(ctx, emails)
	return args.Error(0)
}

func TestSweepOrphanIdentities(t *testing.T) {
	t.Run("ReportsOrphans", func(t *testing.T) {
		ids := &MockIdentityClient{}
		members := &MockMemberRepo{}
		email := &MockEmailService{}
		jr := NewJobRunner(ids, members, email, &config.Config{})

		ids.On("List", mock.Anything).Return([]identity.Identity{
			{ID: "uid-1", Email: "ana@teams.gg"},
			{ID: "uid-2", Email: "bo@teams.gg"},
			{ID: "uid-3", Email: "cy@teams.gg"},
		}, nil)
		members.On("ListIdentityIDs", mock.Anything).Return([]string{"uid-1", "uid-3"}, nil)
		email.On("SendOrphanReport", mock.Anything, []string{"bo@teams.gg"}).Return(nil)

		jr.SweepOrphanIdentities()

		email.AssertExpectations(t)
		// Report only. The sweep must never touch the identity provider.
		ids.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("NoOrphansNoReport", func(t *testing.T) {
		ids := &MockIdentityClient{}
		members := &MockMemberRepo{}
		email := &MockEmailService{}
		jr := NewJobRunner(ids, members, email, &config.Config{})

		ids.On("List", mock.Anything).Return([]identity.Identity{{ID: "uid-1", Email: "ana@teams.gg"}}, nil)
		members.On("ListIdentityIDs", mock.Anything).Return([]string{"uid-1"}, nil)

		jr.SweepOrphanIdentities()

		email.AssertNotCalled(t, "SendOrphanReport", mock.Anything, mock.Anything)
	})

	t.Run("IdentityListFailureAborts", func(t *testing.T) {
		ids := &MockIdentityClient{}
		members := &MockMemberRepo{}
		jr := NewJobRunner(ids, members, nil, &config.Config{})

		ids.On("List", mock.Anything).Return(nil, assert.AnError)

		jr.SweepOrphanIdentities()

		members.AssertNotCalled(t, "ListIdentityIDs", mock.Anything)
	})

	t.Run("ReportFailureDoesNotPanic", func(t *testing.T) {
		ids := &MockIdentityClient{}
		members := &MockMemberRepo{}
		email := &MockEmailService{}
		jr := NewJobRunner(ids, members, email, &config.Config{})

		ids.On("List", mock.Anything).Return([]identity.Identity{{ID: "uid-2", Email: "bo@teams.gg"}}, nil)
		members.On("ListIdentityIDs", mock.Anything).Return([]string{}, nil)
		email.On("SendOrphanReport", mock.Anything, mock.Anything).Return(assert.AnError)

		jr.SweepOrphanIdentities()

		email.AssertExpectations(t)
	})
}
