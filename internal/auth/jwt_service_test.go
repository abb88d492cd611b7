package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"citamed/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(2, "doctor@hospital.com", model.RoleDoctor)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), claims.UsuarioID)
	assert.Equal(t, "doctor@hospital.com", claims.Email)
	assert.Equal(t, model.RoleDoctor, claims.Tipo)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(3, "paciente@email.com", model.RolePaciente)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}
