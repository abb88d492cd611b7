package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"citamed/internal/model"
	"citamed/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, usuarioID uint) (*model.User, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUltimoLogin(ctx context.Context, usuarioID uint, at time.Time) error {
	args := m.Called(ctx, usuarioID, at)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByUsuarioID(ctx context.Context, usuarioID uint) (*model.Patient, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockDoctorRepository is a mock implementation of DoctorRepository.
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) ListByEspecialidad(ctx context.Context, especialidadID uint) ([]model.Doctor, error) {
	args := m.Called(ctx, especialidadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindProfileByUsuarioID(ctx context.Context, usuarioID uint) (*repository.DoctorProfile, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DoctorProfile), args.Error(1)
}

func (m *MockDoctorRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSpecialtyRepository is a mock implementation of SpecialtyRepository.
type MockSpecialtyRepository struct {
	mock.Mock
}

func (m *MockSpecialtyRepository) Create(ctx context.Context, specialty *model.Specialty) error {
	args := m.Called(ctx, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) List(ctx context.Context) ([]model.Specialty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) FindByNombre(ctx context.Context, nombre string) (*model.Specialty, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateForUser(ctx context.Context, usuarioID uint, cita *model.Appointment) error {
	args := m.Called(ctx, usuarioID, cita)
	return args.Error(0)
}

func (m *MockAppointmentRepository) ListByUsuario(ctx context.Context, usuarioID uint) ([]repository.AppointmentRow, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AppointmentRow), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
