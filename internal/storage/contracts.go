package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	contractTable = "contracts"
	contractCols  = "id, contract_number, client_id, project_id, signing_date, signing_location, " +
		"client_name1, client_address1, client_phone1, client_name2, client_address2, client_phone2, " +
		"shooting_duration, guaranteed_photos, album_details, digital_files_format, other_items, " +
		"personnel_count, delivery_timeframe, dp_date, final_payment_date, cancellation_policy, " +
		"jurisdiction, vendor_signature, client_signature, created_at"
)

// ContractRepository provides persistence operations for contracts.
type ContractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractRow struct {
	id                 string
	contractNumber     string
	clientID           string
	projectID          string
	signingDate        time.Time
	signingLocation    string
	clientName1        string
	clientAddress1     string
	clientPhone1       string
	clientName2        sql.NullString
	clientAddress2     sql.NullString
	clientPhone2       sql.NullString
	shootingDuration   string
	guaranteedPhotos   string
	albumDetails       string
	digitalFilesFormat string
	otherItems         string
	personnelCount     string
	deliveryTimeframe  string
	dpDate             sql.NullTime
	finalPaymentDate   sql.NullTime
	cancellationPolicy string
	jurisdiction       string
	vendorSignature    sql.NullString
	clientSignature    sql.NullString
	createdAt          time.Time
}

func contractRowFrom(c domain.Contract) contractRow {
	return contractRow{
		id:                 c.ID,
		contractNumber:     c.ContractNumber,
		clientID:           c.ClientID,
		projectID:          c.ProjectID,
		signingDate:        c.SigningDate,
		signingLocation:    c.SigningLocation,
		clientName1:        c.ClientName1,
		clientAddress1:     c.ClientAddress1,
		clientPhone1:       c.ClientPhone1,
		clientName2:        nullText(c.ClientName2),
		clientAddress2:     nullText(c.ClientAddress2),
		clientPhone2:       nullText(c.ClientPhone2),
		shootingDuration:   c.ShootingDuration,
		guaranteedPhotos:   c.GuaranteedPhotos,
		albumDetails:       c.AlbumDetails,
		digitalFilesFormat: c.DigitalFilesFormat,
		otherItems:         c.OtherItems,
		personnelCount:     c.PersonnelCount,
		deliveryTimeframe:  c.DeliveryTimeframe,
		dpDate:             nullTime(c.DPDate),
		finalPaymentDate:   nullTime(c.FinalPaymentDate),
		cancellationPolicy: c.CancellationPolicy,
		jurisdiction:       c.Jurisdiction,
		vendorSignature:    nullText(c.VendorSignature),
		clientSignature:    nullText(c.ClientSignature),
		createdAt:          c.CreatedAt,
	}
}

func (r contractRow) toDomain() (domain.Contract, error) {
	return domain.Contract{
		ID:                 r.id,
		ContractNumber:     r.contractNumber,
		ClientID:           r.clientID,
		ProjectID:          r.projectID,
		SigningDate:        r.signingDate,
		SigningLocation:    r.signingLocation,
		ClientName1:        r.clientName1,
		ClientAddress1:     r.clientAddress1,
		ClientPhone1:       r.clientPhone1,
		ClientName2:        text(r.clientName2),
		ClientAddress2:     text(r.clientAddress2),
		ClientPhone2:       text(r.clientPhone2),
		ShootingDuration:   r.shootingDuration,
		GuaranteedPhotos:   r.guaranteedPhotos,
		AlbumDetails:       r.albumDetails,
		DigitalFilesFormat: r.digitalFilesFormat,
		OtherItems:         r.otherItems,
		PersonnelCount:     r.personnelCount,
		DeliveryTimeframe:  r.deliveryTimeframe,
		DPDate:             timePtr(r.dpDate),
		FinalPaymentDate:   timePtr(r.finalPaymentDate),
		CancellationPolicy: r.cancellationPolicy,
		Jurisdiction:       r.jurisdiction,
		VendorSignature:    text(r.vendorSignature),
		ClientSignature:    text(r.clientSignature),
		CreatedAt:          r.createdAt,
	}, nil
}

func scanContract(s scanner) (domain.Contract, error) {
	var r contractRow
	if err := s.Scan(&r.id, &r.contractNumber, &r.clientID, &r.projectID,
		&r.signingDate, &r.signingLocation, &r.clientName1, &r.clientAddress1,
		&r.clientPhone1, &r.clientName2, &r.clientAddress2, &r.clientPhone2,
		&r.shootingDuration, &r.guaranteedPhotos, &r.albumDetails,
		&r.digitalFilesFormat, &r.otherItems, &r.personnelCount,
		&r.deliveryTimeframe, &r.dpDate, &r.finalPaymentDate,
		&r.cancellationPolicy, &r.jurisdiction, &r.vendorSignature,
		&r.clientSignature, &r.createdAt); err != nil {
		return domain.Contract{}, err
	}
	return r.toDomain()
}

func (repo *ContractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	q := "SELECT " + contractCols + " FROM contracts ORDER BY created_at DESC"
	return queryList(ctx, repo.db, contractTable, q, scanContract)
}

func (repo *ContractRepository) Create(ctx context.Context, c domain.Contract) (domain.Contract, error) {
	r := contractRowFrom(c)
	const q = `
INSERT INTO contracts (contract_number, client_id, project_id, signing_date, signing_location,
	client_name1, client_address1, client_phone1, client_name2, client_address2, client_phone2,
	shooting_duration, guaranteed_photos, album_details, digital_files_format, other_items,
	personnel_count, delivery_timeframe, dp_date, final_payment_date, cancellation_policy,
	jurisdiction, vendor_signature, client_signature)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
RETURNING ` + contractCols
	args := []any{r.contractNumber, r.clientID, r.projectID, r.signingDate,
		r.signingLocation, r.clientName1, r.clientAddress1, r.clientPhone1,
		r.clientName2, r.clientAddress2, r.clientPhone2, r.shootingDuration,
		r.guaranteedPhotos, r.albumDetails, r.digitalFilesFormat, r.otherItems,
		r.personnelCount, r.deliveryTimeframe, r.dpDate, r.finalPaymentDate,
		r.cancellationPolicy, r.jurisdiction, r.vendorSignature, r.clientSignature}
	return insertOne(ctx, repo.db, contractTable, q, args, scanContract)
}

func contractSets(u domain.ContractUpdate) map[string]any {
	sets := map[string]any{}
	if u.ContractNumber != nil {
		sets["contract_number"] = *u.ContractNumber
	}
	if u.ClientID != nil {
		sets["client_id"] = *u.ClientID
	}
	if u.ProjectID != nil {
		sets["project_id"] = *u.ProjectID
	}
	if u.SigningDate != nil {
		sets["signing_date"] = *u.SigningDate
	}
	if u.SigningLocation != nil {
		sets["signing_location"] = *u.SigningLocation
	}
	if u.ClientName1 != nil {
		sets["client_name1"] = *u.ClientName1
	}
	if u.ClientAddress1 != nil {
		sets["client_address1"] = *u.ClientAddress1
	}
	if u.ClientPhone1 != nil {
		sets["client_phone1"] = *u.ClientPhone1
	}
	if u.ClientName2 != nil {
		sets["client_name2"] = nullText(*u.ClientName2)
	}
	if u.ClientAddress2 != nil {
		sets["client_address2"] = nullText(*u.ClientAddress2)
	}
	if u.ClientPhone2 != nil {
		sets["client_phone2"] = nullText(*u.ClientPhone2)
	}
	if u.ShootingDuration != nil {
		sets["shooting_duration"] = *u.ShootingDuration
	}
	if u.GuaranteedPhotos != nil {
		sets["guaranteed_photos"] = *u.GuaranteedPhotos
	}
	if u.AlbumDetails != nil {
		sets["album_details"] = *u.AlbumDetails
	}
	if u.DigitalFilesFormat != nil {
		sets["digital_files_format"] = *u.DigitalFilesFormat
	}
	if u.OtherItems != nil {
		sets["other_items"] = *u.OtherItems
	}
	if u.PersonnelCount != nil {
		sets["personnel_count"] = *u.PersonnelCount
	}
	if u.DeliveryTimeframe != nil {
		sets["delivery_timeframe"] = *u.DeliveryTimeframe
	}
	if u.DPDate != nil {
		sets["dp_date"] = nullTime(u.DPDate)
	}
	if u.FinalPaymentDate != nil {
		sets["final_payment_date"] = nullTime(u.FinalPaymentDate)
	}
	if u.CancellationPolicy != nil {
		sets["cancellation_policy"] = *u.CancellationPolicy
	}
	if u.Jurisdiction != nil {
		sets["jurisdiction"] = *u.Jurisdiction
	}
	if u.VendorSignature != nil {
		sets["vendor_signature"] = nullText(*u.VendorSignature)
	}
	if u.ClientSignature != nil {
		sets["client_signature"] = nullText(*u.ClientSignature)
	}
	return sets
}

func (repo *ContractRepository) Update(ctx context.Context, id string, u domain.ContractUpdate) (domain.Contract, error) {
	return updateOne(ctx, repo.db, contractTable, id, contractSets(u), contractCols, scanContract)
}

func (repo *ContractRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, contractTable, id)
}
