package postgres

import (
	"database/sql"

	"rosterhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		MemberRepository: NewMemberRepository(db),
	}
}
