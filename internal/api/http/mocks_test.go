package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rosterhub-backend/internal/domain"
)

type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportFile(ctx context.Context, filename string, data []byte, progress domain.ProgressFunc) (*domain.BatchResult, []domain.RejectedRow, error) {
	args := m.Called(ctx, filename, data, progress)
	var result *domain.BatchResult
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.BatchResult)
	}
	var rejections []domain.RejectedRow
	if args.Get(1) != nil {
		rejections = args.Get(1).([]domain.RejectedRow)
	}
	return result, rejections, args.Error(2)
}

type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockRosterService) SearchMembers(ctx context.Context, query string) ([]domain.Member, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
