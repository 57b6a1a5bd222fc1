package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	promoTable = "promo_codes"
	promoCols  = "id, code, discount_type, discount_value, is_active, usage_count, max_usage, expiry_date, created_at"
)

// PromoCodeRepository provides persistence operations for promo codes.
type PromoCodeRepository struct {
	db *sql.DB
}

func NewPromoCodeRepository(db *sql.DB) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

type promoRow struct {
	id            string
	code          string
	discountType  string
	discountValue float64
	isActive      bool
	usageCount    int
	maxUsage      sql.NullInt64
	expiryDate    sql.NullTime
	createdAt     time.Time
}

func promoRowFrom(p domain.PromoCode) promoRow {
	return promoRow{
		id:            p.ID,
		code:          p.Code,
		discountType:  string(p.DiscountType),
		discountValue: p.DiscountValue,
		isActive:      p.IsActive,
		usageCount:    p.UsageCount,
		maxUsage:      nullInt(p.MaxUsage),
		expiryDate:    nullTime(p.ExpiryDate),
		createdAt:     p.CreatedAt,
	}
}

func (r promoRow) toDomain() (domain.PromoCode, error) {
	dt, err := domain.ParseDiscountType(r.discountType)
	if err != nil {
		return domain.PromoCode{}, err
	}
	return domain.PromoCode{
		ID:            r.id,
		Code:          r.code,
		DiscountType:  dt,
		DiscountValue: r.discountValue,
		IsActive:      r.isActive,
		UsageCount:    r.usageCount,
		MaxUsage:      intPtr(r.maxUsage),
		ExpiryDate:    timePtr(r.expiryDate),
		CreatedAt:     r.createdAt,
	}, nil
}

func scanPromo(s scanner) (domain.PromoCode, error) {
	var r promoRow
	if err := s.Scan(&r.id, &r.code, &r.discountType, &r.discountValue,
		&r.isActive, &r.usageCount, &r.maxUsage, &r.expiryDate, &r.createdAt); err != nil {
		return domain.PromoCode{}, err
	}
	return r.toDomain()
}

func (repo *PromoCodeRepository) List(ctx context.Context) ([]domain.PromoCode, error) {
	q := "SELECT " + promoCols + " FROM promo_codes ORDER BY created_at DESC"
	return queryList(ctx, repo.db, promoTable, q, scanPromo)
}

func (repo *PromoCodeRepository) Create(ctx context.Context, p domain.PromoCode) (domain.PromoCode, error) {
	r := promoRowFrom(p)
	const q = `
INSERT INTO promo_codes (code, discount_type, discount_value, is_active, usage_count, max_usage, expiry_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + promoCols
	args := []any{r.code, r.discountType, r.discountValue, r.isActive,
		r.usageCount, r.maxUsage, r.expiryDate}
	return insertOne(ctx, repo.db, promoTable, q, args, scanPromo)
}

func promoSets(u domain.PromoCodeUpdate) map[string]any {
	sets := map[string]any{}
	if u.Code != nil {
		sets["code"] = *u.Code
	}
	if u.DiscountType != nil {
		sets["discount_type"] = string(*u.DiscountType)
	}
	if u.DiscountValue != nil {
		sets["discount_value"] = *u.DiscountValue
	}
	if u.IsActive != nil {
		sets["is_active"] = *u.IsActive
	}
	if u.UsageCount != nil {
		sets["usage_count"] = *u.UsageCount
	}
	if u.MaxUsage != nil {
		sets["max_usage"] = nullInt(u.MaxUsage)
	}
	if u.ExpiryDate != nil {
		sets["expiry_date"] = nullTime(u.ExpiryDate)
	}
	return sets
}

func (repo *PromoCodeRepository) Update(ctx context.Context, id string, u domain.PromoCodeUpdate) (domain.PromoCode, error) {
	return updateOne(ctx, repo.db, promoTable, id, promoSets(u), promoCols, scanPromo)
}

func (repo *PromoCodeRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, promoTable, id)
}

// DeactivateExpired flips is_active off for codes whose expiry date has
// passed. Returns the number of codes deactivated.
func (repo *PromoCodeRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `
UPDATE promo_codes
SET is_active = false, updated_at = now()
WHERE is_active = true AND expiry_date IS NOT NULL AND expiry_date < $1`
	res, err := repo.db.ExecContext(ctx, q, now)
	if err != nil {
		log.Error().Err(err).Str("table", promoTable).Msg("deactivate expired failed")
		return 0, fmt.Errorf("deactivate expired %s: %w", promoTable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deactivate expired %s: %w", promoTable, err)
	}
	return n, nil
}
