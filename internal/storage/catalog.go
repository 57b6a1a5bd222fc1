package storage

import (
	"context"
	"database/sql"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	packageTable = "packages"
	packageCols  = "id, name, price, physical_items, digital_items, processing_time, photographers, videographers"

	addOnTable = "add_ons"
	addOnCols  = "id, name, price"
)

// PackageRepository provides persistence operations for service packages.
type PackageRepository struct {
	db *sql.DB
}

func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

type packageRow struct {
	id             string
	name           string
	price          float64
	physicalItems  []byte
	digitalItems   []byte
	processingTime string
	photographers  sql.NullString
	videographers  sql.NullString
}

func packageRowFrom(p domain.Package) (packageRow, error) {
	r := packageRow{
		id:             p.ID,
		name:           p.Name,
		price:          p.Price,
		processingTime: p.ProcessingTime,
		photographers:  nullText(p.Photographers),
		videographers:  nullText(p.Videographers),
	}
	var err error
	if r.physicalItems, err = jsonb("physical_items", p.PhysicalItems); err != nil {
		return packageRow{}, err
	}
	if r.digitalItems, err = jsonb("digital_items", p.DigitalItems); err != nil {
		return packageRow{}, err
	}
	return r, nil
}

func (r packageRow) toDomain() (domain.Package, error) {
	p := domain.Package{
		ID:             r.id,
		Name:           r.name,
		Price:          r.price,
		PhysicalItems:  []domain.PhysicalItem{},
		DigitalItems:   []string{},
		ProcessingTime: r.processingTime,
		Photographers:  text(r.photographers),
		Videographers:  text(r.videographers),
	}
	if err := fromJSONB("physical_items", r.physicalItems, &p.PhysicalItems); err != nil {
		return domain.Package{}, err
	}
	if err := fromJSONB("digital_items", r.digitalItems, &p.DigitalItems); err != nil {
		return domain.Package{}, err
	}
	return p, nil
}

func scanPackage(s scanner) (domain.Package, error) {
	var r packageRow
	if err := s.Scan(&r.id, &r.name, &r.price, &r.physicalItems, &r.digitalItems,
		&r.processingTime, &r.photographers, &r.videographers); err != nil {
		return domain.Package{}, err
	}
	return r.toDomain()
}

func (repo *PackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	q := "SELECT " + packageCols + " FROM packages ORDER BY created_at DESC"
	return queryList(ctx, repo.db, packageTable, q, scanPackage)
}

func (repo *PackageRepository) Create(ctx context.Context, p domain.Package) (domain.Package, error) {
	r, err := packageRowFrom(p)
	if err != nil {
		return domain.Package{}, err
	}
	const q = `
INSERT INTO packages (name, price, physical_items, digital_items, processing_time, photographers, videographers)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + packageCols
	args := []any{r.name, r.price, r.physicalItems, r.digitalItems, r.processingTime, r.photographers, r.videographers}
	return insertOne(ctx, repo.db, packageTable, q, args, scanPackage)
}

func packageSets(u domain.PackageUpdate) (map[string]any, error) {
	sets := map[string]any{}
	if u.Name != nil {
		sets["name"] = *u.Name
	}
	if u.Price != nil {
		sets["price"] = *u.Price
	}
	if u.PhysicalItems != nil {
		b, err := jsonb("physical_items", *u.PhysicalItems)
		if err != nil {
			return nil, err
		}
		sets["physical_items"] = b
	}
	if u.DigitalItems != nil {
		b, err := jsonb("digital_items", *u.DigitalItems)
		if err != nil {
			return nil, err
		}
		sets["digital_items"] = b
	}
	if u.ProcessingTime != nil {
		sets["processing_time"] = *u.ProcessingTime
	}
	if u.Photographers != nil {
		sets["photographers"] = nullText(*u.Photographers)
	}
	if u.Videographers != nil {
		sets["videographers"] = nullText(*u.Videographers)
	}
	return sets, nil
}

func (repo *PackageRepository) Update(ctx context.Context, id string, u domain.PackageUpdate) (domain.Package, error) {
	sets, err := packageSets(u)
	if err != nil {
		return domain.Package{}, err
	}
	return updateOne(ctx, repo.db, packageTable, id, sets, packageCols, scanPackage)
}

func (repo *PackageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, packageTable, id)
}

// AddOnRepository provides persistence operations for package add-ons.
type AddOnRepository struct {
	db *sql.DB
}

func NewAddOnRepository(db *sql.DB) *AddOnRepository {
	return &AddOnRepository{db: db}
}

func scanAddOn(s scanner) (domain.AddOn, error) {
	var a domain.AddOn
	if err := s.Scan(&a.ID, &a.Name, &a.Price); err != nil {
		return domain.AddOn{}, err
	}
	return a, nil
}

func (repo *AddOnRepository) List(ctx context.Context) ([]domain.AddOn, error) {
	q := "SELECT " + addOnCols + " FROM add_ons ORDER BY created_at DESC"
	return queryList(ctx, repo.db, addOnTable, q, scanAddOn)
}

func (repo *AddOnRepository) Create(ctx context.Context, a domain.AddOn) (domain.AddOn, error) {
	const q = `
INSERT INTO add_ons (name, price)
VALUES ($1, $2)
RETURNING ` + addOnCols
	return insertOne(ctx, repo.db, addOnTable, q, []any{a.Name, a.Price}, scanAddOn)
}

func addOnSets(u domain.AddOnUpdate) map[string]any {
	sets := map[string]any{}
	if u.Name != nil {
		sets["name"] = *u.Name
	}
	if u.Price != nil {
		sets["price"] = *u.Price
	}
	return sets
}

func (repo *AddOnRepository) Update(ctx context.Context, id string, u domain.AddOnUpdate) (domain.AddOn, error) {
	return updateOne(ctx, repo.db, addOnTable, id, addOnSets(u), addOnCols, scanAddOn)
}

func (repo *AddOnRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, addOnTable, id)
}
