package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	assetTable = "assets"
	assetCols  = "id, name, category, purchase_date, purchase_price, serial_number, status, notes"
)

// AssetRepository provides persistence operations for equipment assets.
type AssetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

type assetRow struct {
	id            string
	name          string
	category      string
	purchaseDate  time.Time
	purchasePrice float64
	serialNumber  sql.NullString
	status        string
	notes         sql.NullString
}

func assetRowFrom(a domain.Asset) assetRow {
	return assetRow{
		id:            a.ID,
		name:          a.Name,
		category:      a.Category,
		purchaseDate:  a.PurchaseDate,
		purchasePrice: a.PurchasePrice,
		serialNumber:  nullText(a.SerialNumber),
		status:        string(a.Status),
		notes:         nullText(a.Notes),
	}
}

func (r assetRow) toDomain() (domain.Asset, error) {
	status, err := domain.ParseAssetStatus(r.status)
	if err != nil {
		return domain.Asset{}, err
	}
	return domain.Asset{
		ID:            r.id,
		Name:          r.name,
		Category:      r.category,
		PurchaseDate:  r.purchaseDate,
		PurchasePrice: r.purchasePrice,
		SerialNumber:  text(r.serialNumber),
		Status:        status,
		Notes:         text(r.notes),
	}, nil
}

func scanAsset(s scanner) (domain.Asset, error) {
	var r assetRow
	if err := s.Scan(&r.id, &r.name, &r.category, &r.purchaseDate,
		&r.purchasePrice, &r.serialNumber, &r.status, &r.notes); err != nil {
		return domain.Asset{}, err
	}
	return r.toDomain()
}

func (repo *AssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	q := "SELECT " + assetCols + " FROM assets ORDER BY name ASC"
	return queryList(ctx, repo.db, assetTable, q, scanAsset)
}

func (repo *AssetRepository) Create(ctx context.Context, a domain.Asset) (domain.Asset, error) {
	r := assetRowFrom(a)
	const q = `
INSERT INTO assets (name, category, purchase_date, purchase_price, serial_number, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + assetCols
	args := []any{r.name, r.category, r.purchaseDate, r.purchasePrice,
		r.serialNumber, r.status, r.notes}
	return insertOne(ctx, repo.db, assetTable, q, args, scanAsset)
}

func assetSets(u domain.AssetUpdate) map[string]any {
	sets := map[string]any{}
	if u.Name != nil {
		sets["name"] = *u.Name
	}
	if u.Category != nil {
		sets["category"] = *u.Category
	}
	if u.PurchaseDate != nil {
		sets["purchase_date"] = *u.PurchaseDate
	}
	if u.PurchasePrice != nil {
		sets["purchase_price"] = *u.PurchasePrice
	}
	if u.SerialNumber != nil {
		sets["serial_number"] = nullText(*u.SerialNumber)
	}
	if u.Status != nil {
		sets["status"] = string(*u.Status)
	}
	if u.Notes != nil {
		sets["notes"] = nullText(*u.Notes)
	}
	return sets
}

func (repo *AssetRepository) Update(ctx context.Context, id string, u domain.AssetUpdate) (domain.Asset, error) {
	return updateOne(ctx, repo.db, assetTable, id, assetSets(u), assetCols, scanAsset)
}

func (repo *AssetRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, assetTable, id)
}
