package clienting

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/integrator/meta"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/infrastructure/repository"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/pkg/utils"
)

type Manager interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, accountID string) (*domain.Client, error)
	CreateClient(ctx context.Context, request *domain.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, accountID string, request *domain.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, accountID string) error
	ListPayments(ctx context.Context, accountID string) ([]*domain.Payment, error)
	CreatePayment(ctx context.Context, accountID string, request *domain.CreatePaymentRequest) (*domain.Payment, error)
	ListAvatars(ctx context.Context) ([]*domain.AvatarSetting, error)
	SaveAvatar(ctx context.Context, request *domain.CreateAvatarRequest) (*domain.AvatarSetting, error)
	DeleteAvatar(ctx context.Context, id int) error
	ListAccountsForClients(ctx context.Context) ([]domain.DiscoveredAccount, error)
}

type Service struct {
	cfg         *config.Config
	clientRepo  repository.ClientRepository
	paymentRepo repository.PaymentRepository
	avatarRepo  repository.AvatarRepository
	metaService meta.Integrator
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
	avatarRepo repository.AvatarRepository,
	metaService meta.Integrator,
) *Service {
	return &Service{
		cfg:         cfg,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		avatarRepo:  avatarRepo,
		metaService: metaService,
		now:         time.Now,
	}
}

func (s *Service) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.clientRepo.ListClients(ctx)
}

func (s *Service) GetClient(ctx context.Context, accountID string) (*domain.Client, error) {
	client, err := s.clientRepo.GetClientByAccountID(ctx, domain.CanonicalAccountID(accountID))
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, ErrClientNotFound
	}

	return client, nil
}

func (s *Service) CreateClient(ctx context.Context, request *domain.CreateClientRequest) (*domain.Client, error) {
	request.AccountID = domain.CanonicalAccountID(request.AccountID)
	request.MonthlyBudget = utils.RoundMoney(request.MonthlyBudget)
	request.MonthlyPaymentAZN = utils.RoundMoney(request.MonthlyPaymentAZN)

	client, err := s.clientRepo.CreateClient(ctx, request)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrClientExists
		}
		logrus.WithError(err).WithField("account_id", request.AccountID).Error("clients: failed to create client")
		return nil, err
	}

	return client, nil
}

// UpdateClient aplica a atualização parcial e devolve o cliente já atualizado
func (s *Service) UpdateClient(ctx context.Context, accountID string, request *domain.UpdateClientRequest) (*domain.Client, error) {
	if request == nil || request.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	accountID = domain.CanonicalAccountID(accountID)

	found, err := s.clientRepo.UpdateClient(ctx, accountID, request)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("clients: failed to update client")
		return nil, err
	}

	if !found {
		return nil, ErrClientNotFound
	}

	return s.GetClient(ctx, accountID)
}

func (s *Service) DeleteClient(ctx context.Context, accountID string) error {
	found, err := s.clientRepo.DeleteClient(ctx, domain.CanonicalAccountID(accountID))
	if err != nil {
		return err
	}

	if !found {
		return ErrClientNotFound
	}

	return nil
}

func (s *Service) ListPayments(ctx context.Context, accountID string) ([]*domain.Payment, error) {
	if _, err := s.GetClient(ctx, accountID); err != nil {
		return nil, err
	}

	return s.paymentRepo.ListPayments(ctx, domain.CanonicalAccountID(accountID))
}

// CreatePayment registra um pagamento do cliente. Sem paid_at, vale a data de hoje.
func (s *Service) CreatePayment(ctx context.Context, accountID string, request *domain.CreatePaymentRequest) (*domain.Payment, error) {
	client, err := s.GetClient(ctx, accountID)
	if err != nil {
		return nil, err
	}

	paidAt, err := utils.DateOrDefault(request.PaidAt, s.now())
	if err != nil {
		return nil, ErrInvalidPaidAt
	}

	reference, err := utils.Reference("PAY")
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.CreatePayment(ctx, &domain.Payment{
		AccountID: client.AccountID,
		Amount:    utils.RoundMoney(request.Amount),
		PaidAt:    paidAt.Format(time.DateOnly),
		Note:      request.Note,
		Reference: reference,
	})
	if err != nil {
		logrus.WithError(err).WithField("account_id", client.AccountID).Error("clients: failed to register payment")
		return nil, err
	}

	return payment, nil
}

func (s *Service) ListAvatars(ctx context.Context) ([]*domain.AvatarSetting, error) {
	return s.avatarRepo.ListAvatars(ctx)
}

func (s *Service) SaveAvatar(ctx context.Context, request *domain.CreateAvatarRequest) (*domain.AvatarSetting, error) {
	return s.avatarRepo.SaveAvatar(ctx, &domain.AvatarSetting{
		AccountID: domain.CanonicalAccountID(request.AccountID),
		ImageURL:  request.ImageURL,
	})
}

func (s *Service) DeleteAvatar(ctx context.Context, id int) error {
	found, err := s.avatarRepo.DeleteAvatar(ctx, id)
	if err != nil {
		return err
	}

	if !found {
		return ErrAvatarNotFound
	}

	return nil
}

// ListAccountsForClients lista as contas visíveis pelo token, sem o prefixo act_,
// marcando as que já são clientes
func (s *Service) ListAccountsForClients(ctx context.Context) ([]domain.DiscoveredAccount, error) {
	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	accounts, err := s.metaService.ListAccounts(ctx)
	if err != nil {
		if metaclient.IsCredentialError(err) {
			logrus.WithError(err).Warn("clients: meta credential rejected, returning no accounts")
			return make([]domain.DiscoveredAccount, 0), nil
		}
		return nil, err
	}

	registered, err := s.clientRepo.ListAccountIDs(ctx)
	if err != nil {
		return nil, err
	}

	discovered := make([]domain.DiscoveredAccount, 0, len(accounts))
	for _, account := range accounts {
		accountID := domain.CanonicalAccountID(account.ID)
		_, ok := registered[accountID]

		name := account.Name
		if name == "" {
			name = "Unknown"
		}

		discovered = append(discovered, domain.DiscoveredAccount{
			AccountID:   accountID,
			AccountName: name,
			Registered:  ok,
		})
	}

	sort.SliceStable(discovered, func(i, j int) bool {
		return discovered[i].AccountName < discovered[j].AccountName
	})

	return discovered, nil
}
