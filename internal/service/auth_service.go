package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"citamed/internal/auth"
	"citamed/internal/errors"
	"citamed/internal/model"
	"citamed/internal/repository"
)

// BcryptCost is the cost used when hashing passwords at account creation.
const BcryptCost = bcrypt.DefaultCost

// UserProfile is the user payload returned by login, enriched with the
// linked profile fields when the role has a profile table.
type UserProfile struct {
	UsuarioID    uint   `json:"usuario_id"`
	Email        string `json:"email"`
	Tipo         string `json:"tipo"`
	Nombre       string `json:"nombre,omitempty"`
	Apellido     string `json:"apellido,omitempty"`
	Especialidad string `json:"especialidad,omitempty"`
}

// AuthService handles authentication and profile resolution.
type AuthService interface {
	// Login verifies credentials, records the login time, and returns the
	// enriched profile plus a signed token.
	Login(ctx context.Context, email, password string) (*UserProfile, string, error)
	// Profile resolves the enriched profile of an already-authenticated user.
	Profile(ctx context.Context, usuarioID uint) (*UserProfile, error)
}

type authService struct {
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		jwtService:  jwtService,
	}
}

// Login authenticates a user. Unknown emails, inactive accounts and wrong
// passwords all collapse into ErrInvalidCredentials; storage failures keep
// their own error text. Nothing is written on any failure. On success,
// ultimo_login is updated before profile enrichment and is not rolled back
// if enrichment fails.
func (s *authService) Login(ctx context.Context, email, password string) (*UserProfile, string, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.ContrasenaHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateUltimoLogin(ctx, user.UsuarioID, time.Now()); err != nil {
		return nil, "", fmt.Errorf("update ultimo_login: %w", err)
	}

	profile := s.enrich(ctx, user)

	token, err := s.jwtService.GenerateToken(user.UsuarioID, user.Email, user.Tipo)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return profile, token, nil
}

// Profile returns the enriched profile for a user id. Missing users map to
// ErrInvalidCredentials so stale tokens read as unauthorized.
func (s *authService) Profile(ctx context.Context, usuarioID uint) (*UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, usuarioID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return s.enrich(ctx, user), nil
}

// enrich joins the role's profile table into the response. A missing profile
// row or a failed lookup leaves the base fields as-is; the 1:1 role/profile
// linkage is assumed, not verified.
func (s *authService) enrich(ctx context.Context, user *model.User) *UserProfile {
	profile := &UserProfile{
		UsuarioID: user.UsuarioID,
		Email:     user.Email,
		Tipo:      user.Tipo,
	}

	switch user.Tipo {
	case model.RolePaciente:
		patient, err := s.patientRepo.FindByUsuarioID(ctx, user.UsuarioID)
		if err != nil {
			log.Printf("profile lookup for paciente %d: %v", user.UsuarioID, err)
			return profile
		}
		profile.Nombre = patient.Nombre
		profile.Apellido = patient.Apellido
	case model.RoleDoctor:
		doctor, err := s.doctorRepo.FindProfileByUsuarioID(ctx, user.UsuarioID)
		if err != nil {
			log.Printf("profile lookup for doctor %d: %v", user.UsuarioID, err)
			return profile
		}
		profile.Nombre = doctor.Nombre
		profile.Apellido = doctor.Apellido
		profile.Especialidad = doctor.Especialidad
	}

	return profile
}
