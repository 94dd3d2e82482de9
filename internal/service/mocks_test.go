package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/identity"
)

// MockIdentityClient
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

// MockMemberRepo
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
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Search(ctx context.Context, query string) ([]domain.Member, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) ListIdentityIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockProvisioner
type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) Provision(ctx context.Context, req domain.ProvisioningRequest) domain.ProvisioningOutcome {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ProvisioningOutcome)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBatchReport(ctx context.Context, summary BatchSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}
func (m *MockEmailService) SendOrphanReport(ctx context.Context, orphanEmails []string) error {
	args := m.Called(ctx, orphanEmails)
	return args.Error(0)
}
