package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	profileTable = "profile"
	profileCols  = "full_name, email, phone, company_name, website, address, bank_account, " +
		"authorized_signer, id_number, bio, income_categories, expense_categories, project_types, " +
		"event_types, asset_categories, sop_categories, project_status_config, notification_settings, " +
		"security_settings, briefing_template, terms_and_conditions, contract_template"
)

// ProfileRepository stores the studio's single profile record.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type profileRow struct {
	fullName             string
	email                string
	phone                string
	companyName          string
	website              sql.NullString
	address              string
	bankAccount          string
	authorizedSigner     sql.NullString
	idNumber             sql.NullString
	bio                  sql.NullString
	incomeCategories     []byte
	expenseCategories    []byte
	projectTypes         []byte
	eventTypes           []byte
	assetCategories      []byte
	sopCategories        []byte
	projectStatusConfig  []byte
	notificationSettings []byte
	securitySettings     []byte
	briefingTemplate     sql.NullString
	termsAndConditions   sql.NullString
	contractTemplate     sql.NullString
}

func profileRowFrom(p domain.Profile) (profileRow, error) {
	r := profileRow{
		fullName:           p.FullName,
		email:              p.Email,
		phone:              p.Phone,
		companyName:        p.CompanyName,
		website:            nullText(p.Website),
		address:            p.Address,
		bankAccount:        p.BankAccount,
		authorizedSigner:   nullText(p.AuthorizedSigner),
		idNumber:           nullText(p.IDNumber),
		bio:                nullText(p.Bio),
		briefingTemplate:   nullText(p.BriefingTemplate),
		termsAndConditions: nullText(p.TermsAndConditions),
		contractTemplate:   nullText(p.ContractTemplate),
	}
	for _, blob := range []struct {
		col string
		dst *[]byte
		v   any
	}{
		{"income_categories", &r.incomeCategories, p.IncomeCategories},
		{"expense_categories", &r.expenseCategories, p.ExpenseCategories},
		{"project_types", &r.projectTypes, p.ProjectTypes},
		{"event_types", &r.eventTypes, p.EventTypes},
		{"asset_categories", &r.assetCategories, p.AssetCategories},
		{"sop_categories", &r.sopCategories, p.SOPCategories},
		{"project_status_config", &r.projectStatusConfig, p.ProjectStatusConfig},
		{"notification_settings", &r.notificationSettings, p.NotificationSettings},
		{"security_settings", &r.securitySettings, p.SecuritySettings},
	} {
		b, err := jsonb(blob.col, blob.v)
		if err != nil {
			return profileRow{}, err
		}
		*blob.dst = b
	}
	return r, nil
}

func (r profileRow) toDomain() (domain.Profile, error) {
	p := domain.Profile{
		FullName:            r.fullName,
		Email:               r.email,
		Phone:               r.phone,
		CompanyName:         r.companyName,
		Website:             text(r.website),
		Address:             r.address,
		BankAccount:         r.bankAccount,
		AuthorizedSigner:    text(r.authorizedSigner),
		IDNumber:            text(r.idNumber),
		Bio:                 text(r.bio),
		IncomeCategories:    []string{},
		ExpenseCategories:   []string{},
		ProjectTypes:        []string{},
		EventTypes:          []string{},
		AssetCategories:     []string{},
		SOPCategories:       []string{},
		ProjectStatusConfig: []domain.ProjectStatusConfig{},
		BriefingTemplate:    text(r.briefingTemplate),
		TermsAndConditions:  text(r.termsAndConditions),
		ContractTemplate:    text(r.contractTemplate),
	}
	for _, blob := range []struct {
		col string
		b   []byte
		out any
	}{
		{"income_categories", r.incomeCategories, &p.IncomeCategories},
		{"expense_categories", r.expenseCategories, &p.ExpenseCategories},
		{"project_types", r.projectTypes, &p.ProjectTypes},
		{"event_types", r.eventTypes, &p.EventTypes},
		{"asset_categories", r.assetCategories, &p.AssetCategories},
		{"sop_categories", r.sopCategories, &p.SOPCategories},
		{"project_status_config", r.projectStatusConfig, &p.ProjectStatusConfig},
		{"notification_settings", r.notificationSettings, &p.NotificationSettings},
		{"security_settings", r.securitySettings, &p.SecuritySettings},
	} {
		if err := fromJSONB(blob.col, blob.b, blob.out); err != nil {
			return domain.Profile{}, err
		}
	}
	return p, nil
}

func scanProfile(s scanner) (domain.Profile, error) {
	var r profileRow
	if err := s.Scan(&r.fullName, &r.email, &r.phone, &r.companyName,
		&r.website, &r.address, &r.bankAccount, &r.authorizedSigner,
		&r.idNumber, &r.bio, &r.incomeCategories, &r.expenseCategories,
		&r.projectTypes, &r.eventTypes, &r.assetCategories, &r.sopCategories,
		&r.projectStatusConfig, &r.notificationSettings, &r.securitySettings,
		&r.briefingTemplate, &r.termsAndConditions, &r.contractTemplate); err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain()
}

// Get returns the profile, or nil when none has been saved yet.
func (repo *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	q := "SELECT " + profileCols + " FROM profile LIMIT 1"
	p, err := scanProfile(repo.db.QueryRowContext(ctx, q))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("table", profileTable).Msg("get failed")
		return nil, fmt.Errorf("get %s: %w", profileTable, err)
	}
	return &p, nil
}

func profileArgs(r profileRow) []any {
	return []any{r.fullName, r.email, r.phone, r.companyName, r.website,
		r.address, r.bankAccount, r.authorizedSigner, r.idNumber, r.bio,
		r.incomeCategories, r.expenseCategories, r.projectTypes, r.eventTypes,
		r.assetCategories, r.sopCategories, r.projectStatusConfig,
		r.notificationSettings, r.securitySettings, r.briefingTemplate,
		r.termsAndConditions, r.contractTemplate}
}

// Upsert replaces the singleton record, inserting it if none exists.
func (repo *ProfileRepository) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	r, err := profileRowFrom(p)
	if err != nil {
		return domain.Profile{}, err
	}
	const updateQ = `
UPDATE profile SET full_name = $1, email = $2, phone = $3, company_name = $4, website = $5,
	address = $6, bank_account = $7, authorized_signer = $8, id_number = $9, bio = $10,
	income_categories = $11, expense_categories = $12, project_types = $13, event_types = $14,
	asset_categories = $15, sop_categories = $16, project_status_config = $17,
	notification_settings = $18, security_settings = $19, briefing_template = $20,
	terms_and_conditions = $21, contract_template = $22, updated_at = now()
RETURNING ` + profileCols
	got, err := scanProfile(repo.db.QueryRowContext(ctx, updateQ, profileArgs(r)...))
	if err == nil {
		return got, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Str("table", profileTable).Msg("upsert update failed")
		return domain.Profile{}, fmt.Errorf("upsert %s: %w", profileTable, err)
	}

	const insertQ = `
INSERT INTO profile (full_name, email, phone, company_name, website, address, bank_account,
	authorized_signer, id_number, bio, income_categories, expense_categories, project_types,
	event_types, asset_categories, sop_categories, project_status_config, notification_settings,
	security_settings, briefing_template, terms_and_conditions, contract_template)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
RETURNING ` + profileCols
	got, err = scanProfile(repo.db.QueryRowContext(ctx, insertQ, profileArgs(r)...))
	if err != nil {
		log.Error().Err(err).Str("table", profileTable).Msg("upsert insert failed")
		return domain.Profile{}, fmt.Errorf("upsert %s: %w", profileTable, err)
	}
	return got, nil
}
