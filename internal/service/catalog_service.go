package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"citamed/internal/cache"
	"citamed/internal/model"
	"citamed/internal/repository"
)

const (
	catalogCacheTTL = 10 * time.Minute

	// EspecialidadesCacheKey caches the full specialty list.
	EspecialidadesCacheKey = "catalogo:especialidades"
	// DoctoresCacheKeyPrefix prefixes per-specialty doctor lists.
	DoctoresCacheKeyPrefix = "catalogo:doctores:"
)

// CatalogCacheKeys returns every cache key the catalog may hold for the
// given specialties, plus the specialty-list key itself. The seed command
// collects these before wiping, since auto-increment advances across a
// reload and the new ids no longer cover the old entries.
func CatalogCacheKeys(specialties []model.Specialty) []string {
	keys := make([]string, 0, len(specialties)+1)
	keys = append(keys, EspecialidadesCacheKey)
	for _, sp := range specialties {
		keys = append(keys, fmt.Sprintf("%s%d", DoctoresCacheKeyPrefix, sp.EspecialidadID))
	}
	return keys
}

// DoctorSummary is the listing projection of a doctor.
type DoctorSummary struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// CatalogService serves the read-only specialty and doctor catalog.
type CatalogService interface {
	ListEspecialidades(ctx context.Context) ([]model.Specialty, error)
	ListDoctoresByEspecialidad(ctx context.Context, especialidadID uint) ([]DoctorSummary, error)
}

type catalogService struct {
	specialtyRepo repository.SpecialtyRepository
	doctorRepo    repository.DoctorRepository
	cache         *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(specialtyRepo repository.SpecialtyRepository, doctorRepo repository.DoctorRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		specialtyRepo: specialtyRepo,
		doctorRepo:    doctorRepo,
		cache:         cache,
	}
}

// ListEspecialidades returns all specialties, served from cache when warm.
func (s *catalogService) ListEspecialidades(ctx context.Context) ([]model.Specialty, error) {
	if data, _ := s.cache.Get(ctx, EspecialidadesCacheKey); data != nil {
		var cached []model.Specialty
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	specialties, err := s.specialtyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(specialties); err == nil {
		_ = s.cache.Set(ctx, EspecialidadesCacheKey, payload, catalogCacheTTL)
	}

	return specialties, nil
}

// ListDoctoresByEspecialidad returns the doctors of a specialty with the
// display name already formatted. Zero doctors is a valid, empty result.
func (s *catalogService) ListDoctoresByEspecialidad(ctx context.Context, especialidadID uint) ([]DoctorSummary, error) {
	key := fmt.Sprintf("%s%d", DoctoresCacheKeyPrefix, especialidadID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []DoctorSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	doctors, err := s.doctorRepo.ListByEspecialidad(ctx, especialidadID)
	if err != nil {
		return nil, err
	}

	summaries := make([]DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		summaries = append(summaries, DoctorSummary{
			ID:       d.DoctorID,
			Nombre:   fmt.Sprintf("Dr. %s %s", d.Nombre, d.Apellido),
			Telefono: d.Telefono,
		})
	}

	if payload, err := json.Marshal(summaries); err == nil {
		_ = s.cache.Set(ctx, key, payload, catalogCacheTTL)
	}

	return summaries, nil
}
