package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vantage/config"
	"vantage/internal/auth"
	"vantage/internal/domain"
	"vantage/internal/models"
	"vantage/internal/repository"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	cfg      *config.Config
	db       *gorm.DB
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, db *gorm.DB, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, db: db, userRepo: userRepo}
}

// Register creates the user, its person record and an empty wallet in one
// transaction. The wallet exists from registration on; wallet operations
// never create it lazily.
func (s *AuthService) Register(firstName, lastName, email, password, phoneCode, phoneNo string) (*models.User, string, string, error) {
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	u := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		PhoneCode:    phoneCode,
		PhoneNo:      phoneNo,
		Role:         domain.RoleUser,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		person := &models.Person{UserID: u.ID}
		if err := tx.Create(person).Error; err != nil {
			return err
		}
		wallet := &models.Wallet{PersonID: person.ID, Currency: s.cfg.Wallet.Currency}
		return tx.Create(wallet).Error
	})
	if err != nil {
		return nil, "", "", err
	}

	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return u, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return u, access, "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, _ := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	refresh, _ := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	return u, access, refresh, nil
}

// AdminLogin verifies the configured admin credential and issues an ADMIN
// token. The credential lives in config; there is no admin row and no
// process-global mutable state.
func (s *AuthService) AdminLogin(adminID, password string) (string, error) {
	if adminID != s.cfg.Admin.ID {
		return "", ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCreds
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, 0, adminID, domain.RoleAdmin)
}
