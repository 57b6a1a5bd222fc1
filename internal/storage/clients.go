package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	clientTable = "clients"
	clientCols  = "id, name, email, phone, instagram, since, status, client_type, last_contact, portal_access_id"
)

// ClientRepository provides persistence operations for clients.
type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientRow struct {
	id             string
	name           string
	email          string
	phone          string
	instagram      sql.NullString
	since          time.Time
	status         string
	clientType     string
	lastContact    time.Time
	portalAccessID string
}

func clientRowFrom(c domain.Client) clientRow {
	return clientRow{
		id:             c.ID,
		name:           c.Name,
		email:          c.Email,
		phone:          c.Phone,
		instagram:      nullText(c.Instagram),
		since:          c.Since,
		status:         string(c.Status),
		clientType:     string(c.ClientType),
		lastContact:    c.LastContact,
		portalAccessID: c.PortalAccessID,
	}
}

func (r clientRow) toDomain() (domain.Client, error) {
	status, err := domain.ParseClientStatus(r.status)
	if err != nil {
		return domain.Client{}, err
	}
	ctype, err := domain.ParseClientType(r.clientType)
	if err != nil {
		return domain.Client{}, err
	}
	return domain.Client{
		ID:             r.id,
		Name:           r.name,
		Email:          r.email,
		Phone:          r.phone,
		Instagram:      text(r.instagram),
		Since:          r.since,
		Status:         status,
		ClientType:     ctype,
		LastContact:    r.lastContact,
		PortalAccessID: r.portalAccessID,
	}, nil
}

func scanClient(s scanner) (domain.Client, error) {
	var r clientRow
	if err := s.Scan(&r.id, &r.name, &r.email, &r.phone, &r.instagram, &r.since,
		&r.status, &r.clientType, &r.lastContact, &r.portalAccessID); err != nil {
		return domain.Client{}, err
	}
	return r.toDomain()
}

func (repo *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	q := "SELECT " + clientCols + " FROM clients ORDER BY created_at DESC"
	return queryList(ctx, repo.db, clientTable, q, scanClient)
}

func (repo *ClientRepository) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	r := clientRowFrom(c)
	const q = `
INSERT INTO clients (name, email, phone, instagram, since, status, client_type, last_contact, portal_access_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + clientCols
	args := []any{r.name, r.email, r.phone, r.instagram, r.since, r.status, r.clientType, r.lastContact, r.portalAccessID}
	return insertOne(ctx, repo.db, clientTable, q, args, scanClient)
}

func clientSets(u domain.ClientUpdate) map[string]any {
	sets := map[string]any{}
	if u.Name != nil {
		sets["name"] = *u.Name
	}
	if u.Email != nil {
		sets["email"] = *u.Email
	}
	if u.Phone != nil {
		sets["phone"] = *u.Phone
	}
	if u.Instagram != nil {
		sets["instagram"] = nullText(*u.Instagram)
	}
	if u.Since != nil {
		sets["since"] = *u.Since
	}
	if u.Status != nil {
		sets["status"] = string(*u.Status)
	}
	if u.ClientType != nil {
		sets["client_type"] = string(*u.ClientType)
	}
	if u.LastContact != nil {
		sets["last_contact"] = *u.LastContact
	}
	if u.PortalAccessID != nil {
		sets["portal_access_id"] = *u.PortalAccessID
	}
	return sets
}

func (repo *ClientRepository) Update(ctx context.Context, id string, u domain.ClientUpdate) (domain.Client, error) {
	return updateOne(ctx, repo.db, clientTable, id, clientSets(u), clientCols, scanClient)
}

func (repo *ClientRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, clientTable, id)
}
