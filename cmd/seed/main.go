package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"citamed/internal/cache"
	"citamed/internal/config"
	"citamed/internal/db"
	"citamed/internal/model"
	"citamed/internal/repository"
	"citamed/internal/service"
)

const demoPassword = "password123"

// repos bundles everything the seed touches.
type repos struct {
	users          repository.UserRepository
	specialties    repository.SpecialtyRepository
	doctors        repository.DoctorRepository
	patients       repository.PatientRepository
	administrators repository.AdministratorRepository
	appointments   repository.AppointmentRepository
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Specialty{},
		&model.Doctor{},
		&model.Patient{},
		&model.Administrator{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	r := repos{
		users:          repository.NewUserRepository(gormDB),
		specialties:    repository.NewSpecialtyRepository(gormDB),
		doctors:        repository.NewDoctorRepository(gormDB),
		patients:       repository.NewPatientRepository(gormDB),
		administrators: repository.NewAdministratorRepository(gormDB),
		appointments:   repository.NewAppointmentRepository(gormDB),
	}

	ctx := context.Background()

	// Snapshot the catalog cache keys now; the ids are gone after the wipe.
	keys := []string{service.EspecialidadesCacheKey}
	if old, err := r.specialties.List(ctx); err == nil {
		keys = service.CatalogCacheKeys(old)
	}

	if err := wipe(ctx, r); err != nil {
		log.Fatalf("Failed to wipe existing data: %v", err)
	}
	log.Println("Existing data removed")

	if err := seed(ctx, r); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	// Stale catalog entries would otherwise outlive the reload
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	_ = cacheClient.Delete(ctx, keys...)

	log.Println("Seed completed successfully!")
	log.Println("Demo credentials (password for all: password123):")
	log.Println("  - admin@hospital.com (admin)")
	log.Println("  - doctor@hospital.com (doctor)")
	log.Println("  - paciente@email.com (paciente)")
}

// wipe deletes demo data in foreign-key order.
func wipe(ctx context.Context, r repos) error {
	if err := r.appointments.DeleteAll(ctx); err != nil {
		return err
	}
	if err := r.patients.DeleteAll(ctx); err != nil {
		return err
	}
	if err := r.doctors.DeleteAll(ctx); err != nil {
		return err
	}
	if err := r.administrators.DeleteAll(ctx); err != nil {
		return err
	}
	if err := r.users.DeleteAll(ctx); err != nil {
		return err
	}
	return r.specialties.DeleteAll(ctx)
}

func seed(ctx context.Context, r repos) error {
	specialties := []model.Specialty{
		{Nombre: "Medicina General", Descripcion: "Atención médica integral"},
		{Nombre: "Cardiología", Descripcion: "Especialidad del corazón"},
		{Nombre: "Dermatología", Descripcion: "Especialidad de la piel"},
		{Nombre: "Pediatría", Descripcion: "Atención médica infantil"},
	}
	for i := range specialties {
		if err := r.specialties.Create(ctx, &specialties[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d specialties", len(specialties))

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), service.BcryptCost)
	if err != nil {
		return err
	}

	users := []model.User{
		{Email: "admin@hospital.com", ContrasenaHash: string(hash), Tipo: model.RoleAdmin, Activo: true},
		{Email: "doctor@hospital.com", ContrasenaHash: string(hash), Tipo: model.RoleDoctor, Activo: true},
		{Email: "paciente@email.com", ContrasenaHash: string(hash), Tipo: model.RolePaciente, Activo: true},
	}
	for i := range users {
		if err := r.users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d users", len(users))

	general, err := r.specialties.FindByNombre(ctx, "Medicina General")
	if err != nil {
		return err
	}

	admin := model.Administrator{
		UsuarioID: users[0].UsuarioID,
		Nombre:    "Admin",
		Apellido:  "Sistema",
	}
	if err := r.administrators.Create(ctx, &admin); err != nil {
		return err
	}

	doctor := model.Doctor{
		UsuarioID:      users[1].UsuarioID,
		Nombre:         "Juan",
		Apellido:       "Pérez",
		EspecialidadID: general.EspecialidadID,
		Telefono:       "123456789",
		NumeroLicencia: "LIC001",
	}
	if err := r.doctors.Create(ctx, &doctor); err != nil {
		return err
	}

	patient := model.Patient{
		UsuarioID:       users[2].UsuarioID,
		Nombre:          "María",
		Apellido:        "García",
		FechaNacimiento: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
		Genero:          "Femenino",
		Telefono:        "987654321",
		Direccion:       "Av. Principal 123",
	}
	return r.patients.Create(ctx, &patient)
}
