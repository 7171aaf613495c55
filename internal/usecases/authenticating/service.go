package authenticating

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/alikitto/ad-dash/infrastructure/repository"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	errorcodes "github.com/alikitto/ad-dash/pkg/apiErrors"
)

const (
	adminRoleID       = 1
	defaultRoleID     = 3
	tokenTTL          = 24 * time.Hour
	generatedPassword = 12

	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

type Authenticator interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.UpdateUserRequest) error
	ListUser(ctx context.Context) ([]*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(ctx context.Context, requestUserID, targetUserID int) (string, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) UpdateUser(ctx context.Context, request *domain.UpdateUserRequest) error {
	if request.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "id is required")
	}

	user, err := s.userRepo.GetUserByID(ctx, request.ID)
	if err != nil {
		return errors.Wrap(err, "auth: load user")
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, request.ID, fmt.Sprintf("user %d not found", request.ID))
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Lastname != nil {
		user.Lastname = *request.Lastname
	}
	if request.Email != nil {
		user.Email = handleEmail(*request.Email)
	}
	if request.Active != nil {
		user.Active = *request.Active
	}
	if request.RoleID != nil {
		user.RoleID = *request.RoleID
	}
	if request.AvatarURL != nil {
		user.AvatarURL = request.AvatarURL
	}
	if request.Deleted != nil {
		now := s.now()
		user.Deleted = *request.Deleted
		user.DeletedAt = &now
	}

	// password_hash só muda pelos fluxos de senha
	user.PasswordHash = ""

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.Lastname == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "email, name, lastname and password are required")
	}

	user.Email = handleEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "could not look up email")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if user.RoleID == 0 {
		user.RoleID = defaultRoleID
	}

	// contas novas aguardam ativação por um administrador
	user.PasswordHash = string(hashedPassword)
	user.Active = false

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "email already registered")
		}
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "could not create user")
	}

	created.PasswordHash = ""
	return created, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUser(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.ListUser(ctx)
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "could not look up user")
	}
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, "user not found")
	}
	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, errorcodes.ErrUserDisabled, user.ID, "account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, user.ID, "wrong password")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "could not sign token")
	}

	logrus.WithField("user_id", user.ID).Info("auth: user logged in")

	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("auth: failed to load profile")
		return nil, err
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "user not found")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:        user.ID,
		UserName:      user.Name,
		UserLastname:  user.Lastname,
		UserEmail:     user.Email,
		UserActive:    user.Active,
		UserRoleID:    user.RoleID,
		UserAvatarURL: user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, errorcodes.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "invalid token")
	}

	return claims, nil
}

// GenerateStrongPassword troca a senha do usuário alvo por uma aleatória.
// Só administradores (role_id = 1) podem fazer isso.
func (s *Service) GenerateStrongPassword(ctx context.Context, requestUserID, targetUserID int) (string, error) {
	requestUser, err := s.userRepo.GetUserByID(ctx, requestUserID)
	if err != nil {
		return "", err
	}
	if requestUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, requestUserID, "requesting user not found")
	}
	if requestUser.RoleID != adminRoleID {
		return "", NewUserAuthError(ErrNoAdminPrivileges, errorcodes.ErrInsufficientPrivilege, requestUserID, "")
	}

	targetUser, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, targetUserID, "target user not found")
	}

	newPassword, err := generateStrongPassword(generatedPassword)
	if err != nil {
		return "", err
	}

	if err := s.storePassword(ctx, targetUser, newPassword); err != nil {
		return "", err
	}

	return newPassword, nil
}

// generateStrongPassword garante ao menos um caractere de cada classe
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	password := make([]byte, 0, length)
	for _, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		char, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	allChars := lowerChars + upperChars + numberChars + specialChars
	for len(password) < length {
		char, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength exige 8 caracteres com maiúscula, minúscula, número e símbolo
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "password must have at least 8 characters")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "password must contain an uppercase letter")
	case !hasLower:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "password must contain a lowercase letter")
	case !hasNumber:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "password must contain a number")
	case !hasSpecial:
		return NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, "password must contain a special character")
	}

	return nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, userID, "current password is wrong")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, errorcodes.ErrInvalidRequest, userID, "")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	return s.storePassword(ctx, user, newPassword)
}

func (s *Service) storePassword(ctx context.Context, user *domain.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.UpdateUser(ctx, user)
}
