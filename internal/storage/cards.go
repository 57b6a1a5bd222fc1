package storage

import (
	"context"
	"database/sql"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	cardTable = "cards"
	cardCols  = "id, card_holder_name, bank_name, card_type, last_four_digits, expiry_date, balance, color_gradient"
)

// CardRepository provides persistence operations for payment cards.
type CardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

type cardRow struct {
	id             string
	cardHolderName string
	bankName       string
	cardType       string
	lastFourDigits string
	expiryDate     sql.NullString
	balance        float64
	colorGradient  string
}

func cardRowFrom(c domain.Card) cardRow {
	return cardRow{
		id:             c.ID,
		cardHolderName: c.CardHolderName,
		bankName:       c.BankName,
		cardType:       string(c.CardType),
		lastFourDigits: c.LastFourDigits,
		expiryDate:     nullText(c.ExpiryDate),
		balance:        c.Balance,
		colorGradient:  c.ColorGradient,
	}
}

func (r cardRow) toDomain() (domain.Card, error) {
	ctype, err := domain.ParseCardType(r.cardType)
	if err != nil {
		return domain.Card{}, err
	}
	return domain.Card{
		ID:             r.id,
		CardHolderName: r.cardHolderName,
		BankName:       r.bankName,
		CardType:       ctype,
		LastFourDigits: r.lastFourDigits,
		ExpiryDate:     text(r.expiryDate),
		Balance:        r.balance,
		ColorGradient:  r.colorGradient,
	}, nil
}

func scanCard(s scanner) (domain.Card, error) {
	var r cardRow
	if err := s.Scan(&r.id, &r.cardHolderName, &r.bankName, &r.cardType,
		&r.lastFourDigits, &r.expiryDate, &r.balance, &r.colorGradient); err != nil {
		return domain.Card{}, err
	}
	return r.toDomain()
}

func (repo *CardRepository) List(ctx context.Context) ([]domain.Card, error) {
	q := "SELECT " + cardCols + " FROM cards ORDER BY created_at DESC"
	return queryList(ctx, repo.db, cardTable, q, scanCard)
}

func (repo *CardRepository) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	r := cardRowFrom(c)
	const q = `
INSERT INTO cards (card_holder_name, bank_name, card_type, last_four_digits, expiry_date, balance, color_gradient)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + cardCols
	args := []any{r.cardHolderName, r.bankName, r.cardType, r.lastFourDigits, r.expiryDate, r.balance, r.colorGradient}
	return insertOne(ctx, repo.db, cardTable, q, args, scanCard)
}

func cardSets(u domain.CardUpdate) map[string]any {
	sets := map[string]any{}
	if u.CardHolderName != nil {
		sets["card_holder_name"] = *u.CardHolderName
	}
	if u.BankName != nil {
		sets["bank_name"] = *u.BankName
	}
	if u.CardType != nil {
		sets["card_type"] = string(*u.CardType)
	}
	if u.LastFourDigits != nil {
		sets["last_four_digits"] = *u.LastFourDigits
	}
	if u.ExpiryDate != nil {
		sets["expiry_date"] = nullText(*u.ExpiryDate)
	}
	if u.Balance != nil {
		sets["balance"] = *u.Balance
	}
	if u.ColorGradient != nil {
		sets["color_gradient"] = *u.ColorGradient
	}
	return sets
}

func (repo *CardRepository) Update(ctx context.Context, id string, u domain.CardUpdate) (domain.Card, error) {
	return updateOne(ctx, repo.db, cardTable, id, cardSets(u), cardCols, scanCard)
}

func (repo *CardRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, cardTable, id)
}
