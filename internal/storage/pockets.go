package storage

import (
	"context"
	"database/sql"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	pocketTable = "financial_pockets"
	pocketCols  = "id, name, description, icon, type, amount, goal_amount, lock_end_date, members, source_card_id"
)

// PocketRepository provides persistence operations for financial pockets.
type PocketRepository struct {
	db *sql.DB
}

func NewPocketRepository(db *sql.DB) *PocketRepository {
	return &PocketRepository{db: db}
}

type pocketRow struct {
	id           string
	name         string
	description  string
	icon         string
	pocketType   string
	amount       float64
	goalAmount   sql.NullFloat64
	lockEndDate  sql.NullTime
	members      []byte
	sourceCardID sql.NullString
}

func pocketRowFrom(p domain.FinancialPocket) (pocketRow, error) {
	r := pocketRow{
		id:           p.ID,
		name:         p.Name,
		description:  p.Description,
		icon:         p.Icon,
		pocketType:   string(p.Type),
		amount:       p.Amount,
		goalAmount:   nullFloat(p.GoalAmount),
		lockEndDate:  nullTime(p.LockEndDate),
		sourceCardID: nullText(p.SourceCardID),
	}
	var err error
	if r.members, err = jsonb("members", p.Members); err != nil {
		return pocketRow{}, err
	}
	return r, nil
}

func (r pocketRow) toDomain() (domain.FinancialPocket, error) {
	ptype, err := domain.ParsePocketType(r.pocketType)
	if err != nil {
		return domain.FinancialPocket{}, err
	}
	p := domain.FinancialPocket{
		ID:           r.id,
		Name:         r.name,
		Description:  r.description,
		Icon:         r.icon,
		Type:         ptype,
		Amount:       r.amount,
		GoalAmount:   floatPtr(r.goalAmount),
		LockEndDate:  timePtr(r.lockEndDate),
		Members:      []domain.MemberRef{},
		SourceCardID: text(r.sourceCardID),
	}
	if err := fromJSONB("members", r.members, &p.Members); err != nil {
		return domain.FinancialPocket{}, err
	}
	return p, nil
}

func scanPocket(s scanner) (domain.FinancialPocket, error) {
	var r pocketRow
	if err := s.Scan(&r.id, &r.name, &r.description, &r.icon, &r.pocketType,
		&r.amount, &r.goalAmount, &r.lockEndDate, &r.members, &r.sourceCardID); err != nil {
		return domain.FinancialPocket{}, err
	}
	return r.toDomain()
}

func (repo *PocketRepository) List(ctx context.Context) ([]domain.FinancialPocket, error) {
	q := "SELECT " + pocketCols + " FROM financial_pockets ORDER BY created_at DESC"
	return queryList(ctx, repo.db, pocketTable, q, scanPocket)
}

func (repo *PocketRepository) Create(ctx context.Context, p domain.FinancialPocket) (domain.FinancialPocket, error) {
	r, err := pocketRowFrom(p)
	if err != nil {
		return domain.FinancialPocket{}, err
	}
	const q = `
INSERT INTO financial_pockets (name, description, icon, type, amount, goal_amount, lock_end_date, members, source_card_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + pocketCols
	args := []any{r.name, r.description, r.icon, r.pocketType, r.amount,
		r.goalAmount, r.lockEndDate, r.members, r.sourceCardID}
	return insertOne(ctx, repo.db, pocketTable, q, args, scanPocket)
}

func pocketSets(u domain.FinancialPocketUpdate) (map[string]any, error) {
	sets := map[string]any{}
	if u.Name != nil {
		sets["name"] = *u.Name
	}
	if u.Description != nil {
		sets["description"] = *u.Description
	}
	if u.Icon != nil {
		sets["icon"] = *u.Icon
	}
	if u.Type != nil {
		sets["type"] = string(*u.Type)
	}
	if u.Amount != nil {
		sets["amount"] = *u.Amount
	}
	if u.GoalAmount != nil {
		sets["goal_amount"] = nullFloat(u.GoalAmount)
	}
	if u.LockEndDate != nil {
		sets["lock_end_date"] = nullTime(u.LockEndDate)
	}
	if u.Members != nil {
		b, err := jsonb("members", *u.Members)
		if err != nil {
			return nil, err
		}
		sets["members"] = b
	}
	if u.SourceCardID != nil {
		sets["source_card_id"] = nullText(*u.SourceCardID)
	}
	return sets, nil
}

func (repo *PocketRepository) Update(ctx context.Context, id string, u domain.FinancialPocketUpdate) (domain.FinancialPocket, error) {
	sets, err := pocketSets(u)
	if err != nil {
		return domain.FinancialPocket{}, err
	}
	return updateOne(ctx, repo.db, pocketTable, id, sets, pocketCols, scanPocket)
}

func (repo *PocketRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, pocketTable, id)
}
