package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	transactionTable = "transactions"
	transactionCols  = "id, date, description, amount, type, project_id, category, method, pocket_id, card_id, printing_item_id, vendor_signature"
)

// TransactionRepository provides persistence operations for money movements.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

type transactionRow struct {
	id              string
	date            time.Time
	description     string
	amount          float64
	txType          string
	projectID       sql.NullString
	category        string
	method          string
	pocketID        sql.NullString
	cardID          sql.NullString
	printingItemID  sql.NullString
	vendorSignature sql.NullString
}

func transactionRowFrom(t domain.Transaction) transactionRow {
	return transactionRow{
		id:              t.ID,
		date:            t.Date,
		description:     t.Description,
		amount:          t.Amount,
		txType:          string(t.Type),
		projectID:       nullText(t.ProjectID),
		category:        t.Category,
		method:          string(t.Method),
		pocketID:        nullText(t.PocketID),
		cardID:          nullText(t.CardID),
		printingItemID:  nullText(t.PrintingItemID),
		vendorSignature: nullText(t.VendorSignature),
	}
}

func (r transactionRow) toDomain() (domain.Transaction, error) {
	txType, err := domain.ParseTransactionType(r.txType)
	if err != nil {
		return domain.Transaction{}, err
	}
	method, err := domain.ParsePaymentMethod(r.method)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		ID:              r.id,
		Date:            r.date,
		Description:     r.description,
		Amount:          r.amount,
		Type:            txType,
		ProjectID:       text(r.projectID),
		Category:        r.category,
		Method:          method,
		PocketID:        text(r.pocketID),
		CardID:          text(r.cardID),
		PrintingItemID:  text(r.printingItemID),
		VendorSignature: text(r.vendorSignature),
	}, nil
}

func scanTransaction(s scanner) (domain.Transaction, error) {
	var r transactionRow
	if err := s.Scan(&r.id, &r.date, &r.description, &r.amount, &r.txType, &r.projectID,
		&r.category, &r.method, &r.pocketID, &r.cardID, &r.printingItemID, &r.vendorSignature); err != nil {
		return domain.Transaction{}, err
	}
	return r.toDomain()
}

func (repo *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	q := "SELECT " + transactionCols + " FROM transactions ORDER BY date DESC"
	return queryList(ctx, repo.db, transactionTable, q, scanTransaction)
}

func (repo *TransactionRepository) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	r := transactionRowFrom(t)
	const q = `
INSERT INTO transactions (date, description, amount, type, project_id, category, method, pocket_id, card_id, printing_item_id, vendor_signature)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + transactionCols
	args := []any{r.date, r.description, r.amount, r.txType, r.projectID, r.category,
		r.method, r.pocketID, r.cardID, r.printingItemID, r.vendorSignature}
	return insertOne(ctx, repo.db, transactionTable, q, args, scanTransaction)
}

func transactionSets(u domain.TransactionUpdate) map[string]any {
	sets := map[string]any{}
	if u.Date != nil {
		sets["date"] = *u.Date
	}
	if u.Description != nil {
		sets["description"] = *u.Description
	}
	if u.Amount != nil {
		sets["amount"] = *u.Amount
	}
	if u.Type != nil {
		sets["type"] = string(*u.Type)
	}
	if u.ProjectID != nil {
		sets["project_id"] = nullText(*u.ProjectID)
	}
	if u.Category != nil {
		sets["category"] = *u.Category
	}
	if u.Method != nil {
		sets["method"] = string(*u.Method)
	}
	if u.PocketID != nil {
		sets["pocket_id"] = nullText(*u.PocketID)
	}
	if u.CardID != nil {
		sets["card_id"] = nullText(*u.CardID)
	}
	if u.PrintingItemID != nil {
		sets["printing_item_id"] = nullText(*u.PrintingItemID)
	}
	if u.VendorSignature != nil {
		sets["vendor_signature"] = nullText(*u.VendorSignature)
	}
	return sets
}

func (repo *TransactionRepository) Update(ctx context.Context, id string, u domain.TransactionUpdate) (domain.Transaction, error) {
	return updateOne(ctx, repo.db, transactionTable, id, transactionSets(u), transactionCols, scanTransaction)
}

func (repo *TransactionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, transactionTable, id)
}
