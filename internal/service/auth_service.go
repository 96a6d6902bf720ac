package service

import (
	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
	"go-shop-backend/pkg/apperr"
	"go-shop-backend/pkg/jwt"
	"go-shop-backend/pkg/validator"
)

type SignUpRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=5"`
	FirstName   string `json:"firstName" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Address     string `json:"address"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthService interface {
	SignUp(req *SignUpRequest) (*AuthResponse, error)
	SignIn(phoneNumber, password string) (*AuthResponse, error)
	// AdminSignIn is SignIn restricted to admin accounts.
	AdminSignIn(phoneNumber, password string) (*AuthResponse, error)
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) SignUp(req *SignUpRequest) (*AuthResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validationf("field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	user := &model.User{
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		Address:     req.Address,
		Role:        model.RoleUser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *authService) SignIn(phoneNumber, password string) (*AuthResponse, error) {
	user, err := s.users.FindByPhone(phoneNumber)
	if err != nil || !user.CheckPassword(password) {
		return nil, apperr.Validationf("invalid phone number or password")
	}
	return s.issueToken(user)
}

func (s *authService) AdminSignIn(phoneNumber, password string) (*AuthResponse, error) {
	resp, err := s.SignIn(phoneNumber, password)
	if err != nil {
		return nil, err
	}
	if !resp.User.IsAdmin() {
		return nil, apperr.Validationf("invalid phone number or password")
	}
	return resp, nil
}

func (s *authService) issueToken(user *model.User) (*AuthResponse, error) {
	token, err := jwt.GenerateToken(user.ID, user.PhoneNumber, user.FirstName, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}
