package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	projectTable = "projects"
	projectCols  = `id, project_name, client_id, client_name, project_type, package_id, package_name,
add_ons, date, deadline_date, location, progress, status, active_sub_statuses,
total_cost, amount_paid, payment_status, team, notes, accommodation,
drive_link, client_drive_link, final_drive_link, start_time, end_time, image,
revisions, promo_code_id, discount_amount, shipping_details, dp_proof_url,
printing_details, printing_cost, transport_cost,
is_editing_confirmed_by_client, is_printing_confirmed_by_client, is_delivery_confirmed_by_client,
confirmed_sub_statuses, client_sub_status_notes, sub_status_confirmation_sent_at,
completed_digital_items, invoice_signature`
)

// ProjectRepository provides persistence operations for projects, the
// widest row shape in the schema.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectRow struct {
	id                string
	projectName       string
	clientID          string
	clientName        string
	projectType       string
	packageID         string
	packageName       string
	addOns            []byte
	date              time.Time
	deadlineDate      sql.NullTime
	location          string
	progress          int
	status            string
	activeSubStatuses []byte
	totalCost         float64
	amountPaid        float64
	paymentStatus     string
	team              []byte
	notes             sql.NullString
	accommodation     sql.NullString
	driveLink         sql.NullString
	clientDriveLink   sql.NullString
	finalDriveLink    sql.NullString
	startTime         sql.NullString
	endTime           sql.NullString
	image             sql.NullString
	revisions         []byte
	promoCodeID       sql.NullString
	discountAmount    sql.NullFloat64
	shippingDetails   sql.NullString
	dpProofURL        sql.NullString
	printingDetails   []byte
	printingCost      float64
	transportCost     float64

	editingConfirmed  bool
	printingConfirmed bool
	deliveryConfirmed bool

	confirmedSubStatuses  []byte
	clientSubStatusNotes  []byte
	subStatusConfirmSent  []byte
	completedDigitalItems []byte
	invoiceSignature      sql.NullString
}

func projectRowFrom(p domain.Project) (projectRow, error) {
	r := projectRow{
		id:              p.ID,
		projectName:     p.ProjectName,
		clientID:        p.ClientID,
		clientName:      p.ClientName,
		projectType:     p.ProjectType,
		packageID:       p.PackageID,
		packageName:     p.PackageName,
		date:            p.Date,
		deadlineDate:    nullTime(p.DeadlineDate),
		location:        p.Location,
		progress:        p.Progress,
		status:          p.Status,
		totalCost:       p.TotalCost,
		amountPaid:      p.AmountPaid,
		paymentStatus:   string(p.PaymentStatus),
		notes:           nullText(p.Notes),
		accommodation:   nullText(p.Accommodation),
		driveLink:       nullText(p.DriveLink),
		clientDriveLink: nullText(p.ClientDriveLink),
		finalDriveLink:  nullText(p.FinalDriveLink),
		startTime:       nullText(p.StartTime),
		endTime:         nullText(p.EndTime),
		image:           nullText(p.Image),
		promoCodeID:     nullText(p.PromoCodeID),
		discountAmount:  nullFloat(&p.DiscountAmount),
		shippingDetails: nullText(p.ShippingDetails),
		dpProofURL:      nullText(p.DPProofURL),
		printingCost:    p.PrintingCost,
		transportCost:   p.TransportCost,

		editingConfirmed:  p.EditingConfirmedByClient,
		printingConfirmed: p.PrintingConfirmedByClient,
		deliveryConfirmed: p.DeliveryConfirmedByClient,

		invoiceSignature: nullText(p.InvoiceSignature),
	}
	for _, blob := range []struct {
		col string
		dst *[]byte
		v   any
	}{
		{"add_ons", &r.addOns, p.AddOns},
		{"active_sub_statuses", &r.activeSubStatuses, p.ActiveSubStatuses},
		{"team", &r.team, p.Team},
		{"revisions", &r.revisions, p.Revisions},
		{"printing_details", &r.printingDetails, p.PrintingDetails},
		{"confirmed_sub_statuses", &r.confirmedSubStatuses, p.ConfirmedSubStatuses},
		{"client_sub_status_notes", &r.clientSubStatusNotes, p.ClientSubStatusNotes},
		{"sub_status_confirmation_sent_at", &r.subStatusConfirmSent, p.SubStatusConfirmationSentAt},
		{"completed_digital_items", &r.completedDigitalItems, p.CompletedDigitalItems},
	} {
		b, err := jsonb(blob.col, blob.v)
		if err != nil {
			return projectRow{}, err
		}
		*blob.dst = b
	}
	return r, nil
}

func (r projectRow) toDomain() (domain.Project, error) {
	paymentStatus, err := domain.ParsePaymentStatus(r.paymentStatus)
	if err != nil {
		return domain.Project{}, err
	}

	p := domain.Project{
		ID:            r.id,
		ProjectName:   r.projectName,
		ClientID:      r.clientID,
		ClientName:    r.clientName,
		ProjectType:   r.projectType,
		PackageID:     r.packageID,
		PackageName:   r.packageName,
		AddOns:        []domain.AddOn{},
		Date:          r.date,
		DeadlineDate:  timePtr(r.deadlineDate),
		Location:      r.location,
		Progress:      r.progress,
		Status:        r.status,
		TotalCost:     r.totalCost,
		AmountPaid:    r.amountPaid,
		PaymentStatus: paymentStatus,

		ActiveSubStatuses: []string{},
		Team:              []domain.AssignedMember{},
		Revisions:         []domain.Revision{},
		PrintingDetails:   []domain.PrintingItem{},

		Notes:           text(r.notes),
		Accommodation:   text(r.accommodation),
		DriveLink:       text(r.driveLink),
		ClientDriveLink: text(r.clientDriveLink),
		FinalDriveLink:  text(r.finalDriveLink),
		StartTime:       text(r.startTime),
		EndTime:         text(r.endTime),
		Image:           text(r.image),
		PromoCodeID:     text(r.promoCodeID),
		ShippingDetails: text(r.shippingDetails),
		DPProofURL:      text(r.dpProofURL),
		PrintingCost:    r.printingCost,
		TransportCost:   r.transportCost,

		EditingConfirmedByClient:  r.editingConfirmed,
		PrintingConfirmedByClient: r.printingConfirmed,
		DeliveryConfirmedByClient: r.deliveryConfirmed,

		ConfirmedSubStatuses:        []string{},
		ClientSubStatusNotes:        map[string]string{},
		SubStatusConfirmationSentAt: map[string]string{},
		CompletedDigitalItems:       []string{},
		InvoiceSignature:            text(r.invoiceSignature),
	}
	if r.discountAmount.Valid {
		p.DiscountAmount = r.discountAmount.Float64
	}

	for _, blob := range []struct {
		col string
		b   []byte
		out any
	}{
		{"add_ons", r.addOns, &p.AddOns},
		{"active_sub_statuses", r.activeSubStatuses, &p.ActiveSubStatuses},
		{"team", r.team, &p.Team},
		{"revisions", r.revisions, &p.Revisions},
		{"printing_details", r.printingDetails, &p.PrintingDetails},
		{"confirmed_sub_statuses", r.confirmedSubStatuses, &p.ConfirmedSubStatuses},
		{"client_sub_status_notes", r.clientSubStatusNotes, &p.ClientSubStatusNotes},
		{"sub_status_confirmation_sent_at", r.subStatusConfirmSent, &p.SubStatusConfirmationSentAt},
		{"completed_digital_items", r.completedDigitalItems, &p.CompletedDigitalItems},
	} {
		if err := fromJSONB(blob.col, blob.b, blob.out); err != nil {
			return domain.Project{}, err
		}
	}

	return p, nil
}

func scanProject(s scanner) (domain.Project, error) {
	var r projectRow
	if err := s.Scan(
		&r.id, &r.projectName, &r.clientID, &r.clientName, &r.projectType, &r.packageID, &r.packageName,
		&r.addOns, &r.date, &r.deadlineDate, &r.location, &r.progress, &r.status, &r.activeSubStatuses,
		&r.totalCost, &r.amountPaid, &r.paymentStatus, &r.team, &r.notes, &r.accommodation,
		&r.driveLink, &r.clientDriveLink, &r.finalDriveLink, &r.startTime, &r.endTime, &r.image,
		&r.revisions, &r.promoCodeID, &r.discountAmount, &r.shippingDetails, &r.dpProofURL,
		&r.printingDetails, &r.printingCost, &r.transportCost,
		&r.editingConfirmed, &r.printingConfirmed, &r.deliveryConfirmed,
		&r.confirmedSubStatuses, &r.clientSubStatusNotes, &r.subStatusConfirmSent,
		&r.completedDigitalItems, &r.invoiceSignature,
	); err != nil {
		return domain.Project{}, err
	}
	return r.toDomain()
}

func (repo *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	q := "SELECT " + projectCols + " FROM projects ORDER BY created_at DESC"
	return queryList(ctx, repo.db, projectTable, q, scanProject)
}

func (repo *ProjectRepository) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	r, err := projectRowFrom(p)
	if err != nil {
		return domain.Project{}, err
	}
	const q = `
INSERT INTO projects (project_name, client_id, client_name, project_type, package_id, package_name,
add_ons, date, deadline_date, location, progress, status, active_sub_statuses,
total_cost, amount_paid, payment_status, team, notes, accommodation,
drive_link, client_drive_link, final_drive_link, start_time, end_time, image,
revisions, promo_code_id, discount_amount, shipping_details, dp_proof_url,
printing_details, printing_cost, transport_cost,
is_editing_confirmed_by_client, is_printing_confirmed_by_client, is_delivery_confirmed_by_client,
confirmed_sub_statuses, client_sub_status_notes, sub_status_confirmation_sent_at,
completed_digital_items, invoice_signature)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41)
RETURNING ` + projectCols
	args := []any{
		r.projectName, r.clientID, r.clientName, r.projectType, r.packageID, r.packageName,
		r.addOns, r.date, r.deadlineDate, r.location, r.progress, r.status, r.activeSubStatuses,
		r.totalCost, r.amountPaid, r.paymentStatus, r.team, r.notes, r.accommodation,
		r.driveLink, r.clientDriveLink, r.finalDriveLink, r.startTime, r.endTime, r.image,
		r.revisions, r.promoCodeID, r.discountAmount, r.shippingDetails, r.dpProofURL,
		r.printingDetails, r.printingCost, r.transportCost,
		r.editingConfirmed, r.printingConfirmed, r.deliveryConfirmed,
		r.confirmedSubStatuses, r.clientSubStatusNotes, r.subStatusConfirmSent,
		r.completedDigitalItems, r.invoiceSignature,
	}
	return insertOne(ctx, repo.db, projectTable, q, args, scanProject)
}

func projectSets(u domain.ProjectUpdate) (map[string]any, error) {
	sets := map[string]any{}
	setJSONB := func(col string, v any) error {
		b, err := jsonb(col, v)
		if err != nil {
			return err
		}
		sets[col] = b
		return nil
	}
	if u.ProjectName != nil {
		sets["project_name"] = *u.ProjectName
	}
	if u.ClientID != nil {
		sets["client_id"] = *u.ClientID
	}
	if u.ClientName != nil {
		sets["client_name"] = *u.ClientName
	}
	if u.ProjectType != nil {
		sets["project_type"] = *u.ProjectType
	}
	if u.PackageID != nil {
		sets["package_id"] = *u.PackageID
	}
	if u.PackageName != nil {
		sets["package_name"] = *u.PackageName
	}
	if u.AddOns != nil {
		if err := setJSONB("add_ons", *u.AddOns); err != nil {
			return nil, err
		}
	}
	if u.Date != nil {
		sets["date"] = *u.Date
	}
	if u.DeadlineDate != nil {
		sets["deadline_date"] = nullTime(u.DeadlineDate)
	}
	if u.Location != nil {
		sets["location"] = *u.Location
	}
	if u.Progress != nil {
		sets["progress"] = *u.Progress
	}
	if u.Status != nil {
		sets["status"] = *u.Status
	}
	if u.ActiveSubStatuses != nil {
		if err := setJSONB("active_sub_statuses", *u.ActiveSubStatuses); err != nil {
			return nil, err
		}
	}
	if u.TotalCost != nil {
		sets["total_cost"] = *u.TotalCost
	}
	if u.AmountPaid != nil {
		sets["amount_paid"] = *u.AmountPaid
	}
	if u.PaymentStatus != nil {
		sets["payment_status"] = string(*u.PaymentStatus)
	}
	if u.Team != nil {
		if err := setJSONB("team", *u.Team); err != nil {
			return nil, err
		}
	}
	if u.Notes != nil {
		sets["notes"] = nullText(*u.Notes)
	}
	if u.Accommodation != nil {
		sets["accommodation"] = nullText(*u.Accommodation)
	}
	if u.DriveLink != nil {
		sets["drive_link"] = nullText(*u.DriveLink)
	}
	if u.ClientDriveLink != nil {
		sets["client_drive_link"] = nullText(*u.ClientDriveLink)
	}
	if u.FinalDriveLink != nil {
		sets["final_drive_link"] = nullText(*u.FinalDriveLink)
	}
	if u.StartTime != nil {
		sets["start_time"] = nullText(*u.StartTime)
	}
	if u.EndTime != nil {
		sets["end_time"] = nullText(*u.EndTime)
	}
	if u.Image != nil {
		sets["image"] = nullText(*u.Image)
	}
	if u.Revisions != nil {
		if err := setJSONB("revisions", *u.Revisions); err != nil {
			return nil, err
		}
	}
	if u.PromoCodeID != nil {
		sets["promo_code_id"] = nullText(*u.PromoCodeID)
	}
	if u.DiscountAmount != nil {
		sets["discount_amount"] = nullFloat(u.DiscountAmount)
	}
	if u.ShippingDetails != nil {
		sets["shipping_details"] = nullText(*u.ShippingDetails)
	}
	if u.DPProofURL != nil {
		sets["dp_proof_url"] = nullText(*u.DPProofURL)
	}
	if u.PrintingDetails != nil {
		if err := setJSONB("printing_details", *u.PrintingDetails); err != nil {
			return nil, err
		}
	}
	if u.PrintingCost != nil {
		sets["printing_cost"] = *u.PrintingCost
	}
	if u.TransportCost != nil {
		sets["transport_cost"] = *u.TransportCost
	}
	if u.EditingConfirmedByClient != nil {
		sets["is_editing_confirmed_by_client"] = *u.EditingConfirmedByClient
	}
	if u.PrintingConfirmedByClient != nil {
		sets["is_printing_confirmed_by_client"] = *u.PrintingConfirmedByClient
	}
	if u.DeliveryConfirmedByClient != nil {
		sets["is_delivery_confirmed_by_client"] = *u.DeliveryConfirmedByClient
	}
	if u.ConfirmedSubStatuses != nil {
		if err := setJSONB("confirmed_sub_statuses", *u.ConfirmedSubStatuses); err != nil {
			return nil, err
		}
	}
	if u.ClientSubStatusNotes != nil {
		if err := setJSONB("client_sub_status_notes", *u.ClientSubStatusNotes); err != nil {
			return nil, err
		}
	}
	if u.SubStatusConfirmationSentAt != nil {
		if err := setJSONB("sub_status_confirmation_sent_at", *u.SubStatusConfirmationSentAt); err != nil {
			return nil, err
		}
	}
	if u.CompletedDigitalItems != nil {
		if err := setJSONB("completed_digital_items", *u.CompletedDigitalItems); err != nil {
			return nil, err
		}
	}
	if u.InvoiceSignature != nil {
		sets["invoice_signature"] = nullText(*u.InvoiceSignature)
	}
	return sets, nil
}

func (repo *ProjectRepository) Update(ctx context.Context, id string, u domain.ProjectUpdate) (domain.Project, error) {
	sets, err := projectSets(u)
	if err != nil {
		return domain.Project{}, err
	}
	return updateOne(ctx, repo.db, projectTable, id, sets, projectCols, scanProject)
}

func (repo *ProjectRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, projectTable, id)
}
