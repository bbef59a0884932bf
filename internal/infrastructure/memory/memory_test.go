package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/infrastructure/memory"
)

var seededAt = time.Date(2025, 5, 22, 12, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore(func() time.Time { return seededAt })
	require.NoError(t, memory.Seed(context.Background(), s, seededAt))
	return s
}

func TestSeed_CargaDatosDeDemostracion(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	admin, err := s.Users.FindByEmail(ctx, "ADMIN@barcelos.com ")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(memory.SeedAdminPassword)))

	companies, _ := s.Companies.List(ctx)
	require.Len(t, companies, 2)
	assert.Equal(t, "Empresa Cliente Ltda.", companies[0].Name)

	employees, _ := s.Employees.ListByCompany(ctx, memory.SeedCompanyID)
	require.Len(t, employees, 2)
	assert.True(t, employees[0].HasBiometrics)
	assert.False(t, employees[1].HasBiometrics)

	processes, _ := s.Processes.ListByCompany(ctx, memory.SeedCompanyID)
	assert.Len(t, processes, 2)
	reports, _ := s.Reports.ListByCompany(ctx, memory.SeedCompanyID)
	assert.Len(t, reports, 2)

	monthly, _ := s.Dashboard.MonthlyDeliveries(ctx, memory.SeedCompanyID)
	assert.Len(t, monthly, 5)
	other, _ := s.Dashboard.MonthlyDeliveries(ctx, "2")
	assert.Empty(t, other)
}

func TestTable_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	p, err := s.Processes.GetByID(ctx, memory.SeedCompanyID, "1")
	require.NoError(t, err)
	require.NoError(t, p.AddItem(entity.ProcessItem{EPIID: "3", EPIName: "Óculos", Quantity: 1}))

	stored, _ := s.Processes.GetByID(ctx, memory.SeedCompanyID, "1")
	assert.Len(t, stored.Items, 2, "mutar la copia no altera la fila guardada")

	require.NoError(t, s.Processes.Update(ctx, p))
	stored, _ = s.Processes.GetByID(ctx, memory.SeedCompanyID, "1")
	assert.Len(t, stored.Items, 3)
}

func TestTable_DuplicadoYFaltante(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCompanyRepository()
	c := &entity.Company{ID: "x", Name: "X"}

	require.NoError(t, repo.Create(ctx, c))
	assert.ErrorIs(t, repo.Create(ctx, c), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Company{ID: "y"}), domain.ErrNotFound)

	got, err := repo.GetByID(ctx, "y")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeRepo_AcotadoPorEmpresa(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	got, err := s.Employees.GetByID(ctx, "2", "1")
	assert.NoError(t, err)
	assert.Nil(t, got, "un colaborador de otra empresa no es visible")

	byCPF, _ := s.Employees.GetByCPF(ctx, memory.SeedCompanyID, "987.654.321-00")
	require.NotNil(t, byCPF)
	assert.Equal(t, "Maria Oliveira", byCPF.Name)
}

func TestRevokedTokenRepo_PurgaVencidos(t *testing.T) {
	ctx := context.Background()
	now := seededAt
	repo := memory.NewRevokedTokenRepository(func() time.Time { return now })

	require.NoError(t, repo.Revoke(ctx, "a", now.Add(time.Minute)))
	revoked, _ := repo.IsRevoked(ctx, "a")
	assert.True(t, revoked)

	now = now.Add(2 * time.Minute)
	require.NoError(t, repo.Revoke(ctx, "b", now.Add(time.Minute)))
	revoked, _ = repo.IsRevoked(ctx, "a")
	assert.False(t, revoked, "un token ya vencido no necesita seguir revocado")
	revoked, _ = repo.IsRevoked(ctx, "b")
	assert.True(t, revoked)
}

func TestNotificationRepo_RecientesPrimeroYVencidos(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNotificationRepository()
	t0 := seededAt

	require.NoError(t, repo.Push(ctx, &entity.Notification{ID: "1", UserID: "u", CreatedAt: t0, ExpiresAt: t0.Add(10 * time.Second)}))
	require.NoError(t, repo.Push(ctx, &entity.Notification{ID: "2", UserID: "u", CreatedAt: t0.Add(5 * time.Second), ExpiresAt: t0.Add(15 * time.Second)}))
	require.NoError(t, repo.Push(ctx, &entity.Notification{ID: "3", UserID: "otro", CreatedAt: t0, ExpiresAt: t0.Add(time.Hour)}))

	list, err := repo.ListActive(ctx, "u", t0.Add(6*time.Second))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "1", list[1].ID)

	list, _ = repo.ListActive(ctx, "u", t0.Add(12*time.Second))
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].ID)
}
