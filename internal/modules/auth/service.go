package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service holds registration, login and identity lookup.
type Service struct {
	users UserRepositoryInterface
	jwt   TokenSigner
}

func NewService(users UserRepositoryInterface, jwt TokenSigner) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	role := domain.RoleGeneral
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.Valid() {
			return nil, "", ErrInvalidRole
		}
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		LegalName:    req.LegalName,
		PhoneNumber:  req.PhoneNumber,
		AadharNumber: req.AadharNumber,
		Address:      req.Address,
	}

	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, "", err
		}
		user.DOB = &dob
	}

	// the unique index is the authority under concurrent registration;
	// the ExistsByEmail check above only gives a friendlier fast path
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.jwt.Sign(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login deliberately reports the same error for an unknown email and a wrong
// password so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
