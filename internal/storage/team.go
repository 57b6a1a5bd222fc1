package storage

import (
	"context"
	"database/sql"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	teamMemberTable = "team_members"
	teamMemberCols  = "id, name, role, email, phone, standard_fee, no_rek, reward_balance, rating, performance_notes, portal_access_id"
)

// TeamMemberRepository provides persistence operations for freelancers.
type TeamMemberRepository struct {
	db *sql.DB
}

func NewTeamMemberRepository(db *sql.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

type teamMemberRow struct {
	id               string
	name             string
	role             string
	email            string
	phone            string
	standardFee      float64
	bankAccount      sql.NullString
	rewardBalance    float64
	rating           float64
	performanceNotes []byte
	portalAccessID   string
}

func teamMemberRowFrom(m domain.TeamMember) (teamMemberRow, error) {
	r := teamMemberRow{
		id:             m.ID,
		name:           m.Name,
		role:           m.Role,
		email:          m.Email,
		phone:          m.Phone,
		standardFee:    m.StandardFee,
		bankAccount:    nullText(m.BankAccount),
		rewardBalance:  m.RewardBalance,
		rating:         m.Rating,
		portalAccessID: m.PortalAccessID,
	}
	var err error
	if r.performanceNotes, err = jsonb("performance_notes", m.PerformanceNotes); err != nil {
		return teamMemberRow{}, err
	}
	return r, nil
}

func (r teamMemberRow) toDomain() (domain.TeamMember, error) {
	m := domain.TeamMember{
		ID:               r.id,
		Name:             r.name,
		Role:             r.role,
		Email:            r.email,
		Phone:            r.phone,
		StandardFee:      r.standardFee,
		BankAccount:      text(r.bankAccount),
		RewardBalance:    r.rewardBalance,
		Rating:           r.rating,
		PerformanceNotes: []domain.PerformanceNote{},
		PortalAccessID:   r.portalAccessID,
	}
	if err := fromJSONB("performance_notes", r.performanceNotes, &m.PerformanceNotes); err != nil {
		return domain.TeamMember{}, err
	}
	return m, nil
}

func scanTeamMember(s scanner) (domain.TeamMember, error) {
	var r teamMemberRow
	if err := s.Scan(&r.id, &r.name, &r.role, &r.email, &r.phone, &r.standardFee,
		&r.bankAccount, &r.rewardBalance, &r.rating, &r.performanceNotes, &r.portalAccessID); err != nil {
		return domain.TeamMember{}, err
	}
	return r.toDomain()
}

func (repo *TeamMemberRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	q := "SELECT " + teamMemberCols + " FROM team_members ORDER BY created_at DESC"
	return queryList(ctx, repo.db, teamMemberTable, q, scanTeamMember)
}

func (repo *TeamMemberRepository) Create(ctx context.Context, m domain.TeamMember) (domain.TeamMember, error) {
	r, err := teamMemberRowFrom(m)
	if err != nil {
		return domain.TeamMember{}, err
	}
	const q = `
INSERT INTO team_members (name, role, email, phone, standard_fee, no_rek, reward_balance, rating, performance_notes, portal_access_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + teamMemberCols
	args := []any{r.name, r.role, r.email, r.phone, r.standardFee, r.bankAccount,
		r.rewardBalance, r.rating, r.performanceNotes, r.portalAccessID}
	return insertOne(ctx, repo.db, teamMemberTable, q, args, scanTeamMember)
}

func teamMemberSets(u domain.TeamMemberUpdate) (map[string]any, error) {
	sets := map[string]any{}
	if u.Name != nil {
		sets["name"] = *u.Name
	}
	if u.Role != nil {
		sets["role"] = *u.Role
	}
	if u.Email != nil {
		sets["email"] = *u.Email
	}
	if u.Phone != nil {
		sets["phone"] = *u.Phone
	}
	if u.StandardFee != nil {
		sets["standard_fee"] = *u.StandardFee
	}
	if u.BankAccount != nil {
		sets["no_rek"] = nullText(*u.BankAccount)
	}
	if u.RewardBalance != nil {
		sets["reward_balance"] = *u.RewardBalance
	}
	if u.Rating != nil {
		sets["rating"] = *u.Rating
	}
	if u.PerformanceNotes != nil {
		b, err := jsonb("performance_notes", *u.PerformanceNotes)
		if err != nil {
			return nil, err
		}
		sets["performance_notes"] = b
	}
	if u.PortalAccessID != nil {
		sets["portal_access_id"] = *u.PortalAccessID
	}
	return sets, nil
}

func (repo *TeamMemberRepository) Update(ctx context.Context, id string, u domain.TeamMemberUpdate) (domain.TeamMember, error) {
	sets, err := teamMemberSets(u)
	if err != nil {
		return domain.TeamMember{}, err
	}
	return updateOne(ctx, repo.db, teamMemberTable, id, sets, teamMemberCols, scanTeamMember)
}

func (repo *TeamMemberRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, teamMemberTable, id)
}
