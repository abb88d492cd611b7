package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"citamed/internal/model"
)

// A nil cache client degrades to straight repository reads.

func TestCatalogService_ListEspecialidades(t *testing.T) {
	t.Run("returns all specialties", func(t *testing.T) {
		mockSpecialtyRepo := new(MockSpecialtyRepository)
		mockSpecialtyRepo.On("List", mock.Anything).Return([]model.Specialty{
			{EspecialidadID: 1, Nombre: "Medicina General", Descripcion: "Atención médica integral"},
			{EspecialidadID: 2, Nombre: "Cardiología", Descripcion: "Especialidad del corazón"},
		}, nil)

		svc := NewCatalogService(mockSpecialtyRepo, new(MockDoctorRepository), nil)
		specialties, err := svc.ListEspecialidades(context.Background())

		assert.NoError(t, err)
		assert.Len(t, specialties, 2)
		assert.Equal(t, "Medicina General", specialties[0].Nombre)
		mockSpecialtyRepo.AssertExpectations(t)
	})

	t.Run("repository errors propagate", func(t *testing.T) {
		mockSpecialtyRepo := new(MockSpecialtyRepository)
		mockSpecialtyRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

		svc := NewCatalogService(mockSpecialtyRepo, new(MockDoctorRepository), nil)
		specialties, err := svc.ListEspecialidades(context.Background())

		assert.Error(t, err)
		assert.Nil(t, specialties)
	})
}

func TestCatalogCacheKeys(t *testing.T) {
	t.Run("covers the list key and every per-specialty doctor key", func(t *testing.T) {
		keys := CatalogCacheKeys([]model.Specialty{
			{EspecialidadID: 3, Nombre: "Dermatología"},
			{EspecialidadID: 7, Nombre: "Pediatría"},
		})

		assert.Equal(t, []string{
			EspecialidadesCacheKey,
			DoctoresCacheKeyPrefix + "3",
			DoctoresCacheKeyPrefix + "7",
		}, keys)
	})

	t.Run("no specialties still flushes the list key", func(t *testing.T) {
		assert.Equal(t, []string{EspecialidadesCacheKey}, CatalogCacheKeys(nil))
	})
}

func TestCatalogService_ListDoctoresByEspecialidad(t *testing.T) {
	t.Run("formats the display name", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockDoctorRepo.On("ListByEspecialidad", mock.Anything, uint(1)).Return([]model.Doctor{
			{DoctorID: 4, Nombre: "Juan", Apellido: "Pérez", EspecialidadID: 1, Telefono: "123456789"},
		}, nil)

		svc := NewCatalogService(new(MockSpecialtyRepository), mockDoctorRepo, nil)
		doctores, err := svc.ListDoctoresByEspecialidad(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, doctores, 1)
		assert.Equal(t, uint(4), doctores[0].ID)
		assert.Equal(t, "Dr. Juan Pérez", doctores[0].Nombre)
		assert.Equal(t, "123456789", doctores[0].Telefono)
		mockDoctorRepo.AssertExpectations(t)
	})

	t.Run("specialty with no doctors is an empty success", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockDoctorRepo.On("ListByEspecialidad", mock.Anything, uint(3)).Return([]model.Doctor{}, nil)

		svc := NewCatalogService(new(MockSpecialtyRepository), mockDoctorRepo, nil)
		doctores, err := svc.ListDoctoresByEspecialidad(context.Background(), 3)

		assert.NoError(t, err)
		assert.NotNil(t, doctores)
		assert.Empty(t, doctores)
	})
}
