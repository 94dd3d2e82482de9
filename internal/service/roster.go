package service

import (
	"context"

	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/repository"
)

type rosterService struct {
	members repository.MemberRepository
}

func NewRosterService(members repository.MemberRepository) RosterService {
	return &rosterService{members: members}
}

func (s *rosterService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.members.List(ctx)
}

func (s *rosterService) SearchMembers(ctx context.Context, query string) ([]domain.Member, error) {
	return s.members.Search(ctx, query)
}
