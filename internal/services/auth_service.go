package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/himtourism/homestay-portal/internal/config"
	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
	"github.com/himtourism/homestay-portal/internal/utils"
)

// ErrInvalidCredentials is returned on a failed login
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	CreateStaff(ctx context.Context, req *models.RegisterRequest, role models.UserRole) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates an applicant account and returns a signed token
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	user, err := s.createUser(ctx, req, models.RoleApplicant)
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateJWT(user.ID.Hex(), string(user.Role), s.cfg)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and returns a signed token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateJWT(user.ID.Hex(), string(user.Role), s.cfg)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// CreateStaff creates an officer or admin account; used by the admin console
func (s *authService) CreateStaff(ctx context.Context, req *models.RegisterRequest, role models.UserRole) (*models.User, error) {
	if role != models.RoleOfficer && role != models.RoleAdmin {
		return nil, errors.New("staff accounts must be officer or admin")
	}
	return s.createUser(ctx, req, role)
}

func (s *authService) createUser(ctx context.Context, req *models.RegisterRequest, role models.UserRole) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, errors.New("an account with this email already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
