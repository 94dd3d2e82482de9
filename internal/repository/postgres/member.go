package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/repository"

	"github.com/lib/pq"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `identity_id, email, role, full_name, phone, gamertag, discord, dob, gender, division, photo_url, status, onboarding, is_minor, platforms, languages, software, created_on`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (identity_id, email, role, full_name, phone, gamertag, discord, dob, gender, division, photo_url, status, onboarding, is_minor, platforms, languages, software, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	m.CreatedOn = time.Now().UTC().Format("2006-01-02")
	logger.DatabaseCall("INSERT", "members", "identity_id", m.IdentityID)
	_, err := r.db.ExecContext(ctx, query,
		m.IdentityID, m.Email, m.Role, m.FullName, m.Phone, m.Gamertag, m.Discord,
		nullableDate(m.DOB), m.Gender, m.Division, m.PhotoURL, m.Status, m.Onboarding, m.IsMinor,
		pq.Array(m.Platforms), pq.Array(m.Languages), pq.Array(m.Software), m.CreatedOn,
	)
	logger.DatabaseResult("INSERT", 1, err, "identity_id", m.IdentityID)
	return err
}

func (r *memberRepository) GetByIdentityID(ctx context.Context, identityID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE identity_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, identityID))
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY created_on DESC, email`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *memberRepository) Search(ctx context.Context, query string) ([]domain.Member, error) {
	sqlQuery := `SELECT ` + memberColumns + ` FROM members
	          WHERE email ILIKE $1 OR full_name ILIKE $1 OR gamertag ILIKE $1 OR discord ILIKE $1
	          ORDER BY email`
	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *memberRepository) ListIdentityIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT identity_id FROM members`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *memberRepository) scanOne(row rowScanner) (*domain.Member, error) {
	m := &domain.Member{}
	var dob sql.NullTime
	var createdOn time.Time
	err := row.Scan(
		&m.IdentityID, &m.Email, &m.Role, &m.FullName, &m.Phone, &m.Gamertag, &m.Discord,
		&dob, &m.Gender, &m.Division, &m.PhotoURL, &m.Status, &m.Onboarding, &m.IsMinor,
		pq.Array(&m.Platforms), pq.Array(&m.Languages), pq.Array(&m.Software), &createdOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if dob.Valid {
		m.DOB = dob.Time.Format("2006-01-02")
	}
	m.CreatedOn = createdOn.Format("2006-01-02")
	return m, nil
}

func (r *memberRepository) scanAll(rows *sql.Rows) ([]domain.Member, error) {
	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		var dob sql.NullTime
		var createdOn time.Time
		if err := rows.Scan(
			&m.IdentityID, &m.Email, &m.Role, &m.FullName, &m.Phone, &m.Gamertag, &m.Discord,
			&dob, &m.Gender, &m.Division, &m.PhotoURL, &m.Status, &m.Onboarding, &m.IsMinor,
			pq.Array(&m.Platforms), pq.Array(&m.Languages), pq.Array(&m.Software), &createdOn,
		); err != nil {
			return nil, err
		}
		if dob.Valid {
			m.DOB = dob.Time.Format("2006-01-02")
		}
		m.CreatedOn = createdOn.Format("2006-01-02")
		members = append(members, m)
	}
	return members, rows.Err()
}

func nullableDate(s string) any {
	if s == "" {
		return nil
	}
	return s
}
