package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/alikitto/ad-dash/infrastructure/database/postgres"
	"github.com/alikitto/ad-dash/internal/domain"
)

const (
	clientsTable  = "clients c"
	clientColumns = "c.id, c.account_id, c.account_name, c.avatar_url, c.monthly_budget, c.start_date, c.monthly_payment_azn, " +
		"COALESCE(SUM(p.amount), 0), MAX(p.paid_at), c.created_at, c.updated_at"
)

type ClientRepository interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClientByAccountID(ctx context.Context, accountID string) (*domain.Client, error)
	ListAccountIDs(ctx context.Context) (map[string]struct{}, error)
	CreateClient(ctx context.Context, client *domain.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, accountID string, update *domain.UpdateClientRequest) (bool, error)
	DeleteClient(ctx context.Context, accountID string) (bool, error)
}

type clientRepository struct {
	db postgres.Queryer
}

func NewClientRepository(db postgres.Queryer) ClientRepository {
	return &clientRepository{
		db: db,
	}
}

func (r *clientRepository) selectClients() squirrel.SelectBuilder {
	return squirrel.
		Select(clientColumns).
		From(clientsTable).
		LeftJoin("payments p ON p.account_id = c.account_id").
		GroupBy("c.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *clientRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	clientsSQL, clientsArgs, err := r.selectClients().OrderBy("c.account_name ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, clientsSQL, clientsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *clientRepository) GetClientByAccountID(ctx context.Context, accountID string) (*domain.Client, error) {
	clientSQL, clientArgs, err := r.selectClients().Where(squirrel.Eq{"c.account_id": accountID}).ToSql()
	if err != nil {
		return nil, err
	}

	client, err := scanClient(r.db.QueryRowContext(ctx, clientSQL, clientArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return client, nil
}

// ListAccountIDs devolve os account_id já cadastrados como clientes
func (r *clientRepository) ListAccountIDs(ctx context.Context) (map[string]struct{}, error) {
	idsSQL, idsArgs, err := squirrel.
		Select("account_id").
		From("clients").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, idsSQL, idsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, err
		}
		ids[accountID] = struct{}{}
	}

	return ids, rows.Err()
}

func (r *clientRepository) CreateClient(ctx context.Context, client *domain.CreateClientRequest) (*domain.Client, error) {
	insertSQL, insertArgs, err := squirrel.
		Insert("clients").
		Columns("account_id", "account_name", "avatar_url", "monthly_budget", "start_date", "monthly_payment_azn").
		Values(client.AccountID, client.AccountName, client.AvatarURL, client.MonthlyBudget, client.StartDate, client.MonthlyPaymentAZN).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	created := &domain.Client{
		AccountID:         client.AccountID,
		AccountName:       client.AccountName,
		AvatarURL:         client.AvatarURL,
		MonthlyBudget:     client.MonthlyBudget,
		StartDate:         client.StartDate,
		MonthlyPaymentAZN: client.MonthlyPaymentAZN,
	}

	err = r.db.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return created, nil
}

// UpdateClient aplica apenas os campos informados. Retorna false se o cliente não existe.
func (r *clientRepository) UpdateClient(ctx context.Context, accountID string, update *domain.UpdateClientRequest) (bool, error) {
	queryBuilder := squirrel.
		Update("clients").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"account_id": accountID})

	if update.AccountName != nil {
		queryBuilder = queryBuilder.Set("account_name", *update.AccountName)
	}

	if update.AvatarURL != nil {
		queryBuilder = queryBuilder.Set("avatar_url", *update.AvatarURL)
	}

	if update.MonthlyBudget != nil {
		queryBuilder = queryBuilder.Set("monthly_budget", *update.MonthlyBudget)
	}

	if update.StartDate != nil {
		queryBuilder = queryBuilder.Set("start_date", *update.StartDate)
	}

	if update.MonthlyPaymentAZN != nil {
		queryBuilder = queryBuilder.Set("monthly_payment_azn", *update.MonthlyPaymentAZN)
	}

	updateSQL, updateArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, updateSQL, updateArgs...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, accountID string) (bool, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("clients").
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, deleteSQL, deleteArgs...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (*domain.Client, error) {
	var (
		client      domain.Client
		startDate   time.Time
		lastPayment sql.NullTime
	)

	if err := row.Scan(
		&client.ID,
		&client.AccountID,
		&client.AccountName,
		&client.AvatarURL,
		&client.MonthlyBudget,
		&startDate,
		&client.MonthlyPaymentAZN,
		&client.TotalPaid,
		&lastPayment,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}

	client.StartDate = startDate.Format(time.DateOnly)
	if lastPayment.Valid {
		paidAt := lastPayment.Time.Format(time.DateOnly)
		client.LastPaymentAt = &paidAt
	}

	return &client, nil
}
