package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// Credenciales de demostración.
const (
	SeedAdminEmail      = "admin@barcelos.com"
	SeedAdminPassword   = "admin123"
	SeedManagerEmail    = "gestor@cliente.com"
	SeedManagerPassword = "gestor123"
	SeedCompanyID       = "1"
)

func mustDate(s string) time.Time {
	t, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed carga los datos de demostración. Los documentos (CPF/CNPJ) se cargan tal cual,
// sin pasar por la validación de dígitos.
func Seed(ctx context.Context, s *Store, at time.Time) error {
	if err := seedUsers(ctx, s, bcrypt.DefaultCost); err != nil {
		return err
	}
	companies := []*entity.Company{
		{ID: "1", Name: "Empresa Cliente Ltda.", Email: "contato@cliente.com", CNPJ: "12.345.678/0001-90", Contact: "(11) 9999-8888", Status: entity.StatusActive},
		{ID: "2", Name: "Construções ABC S/A", Email: "contato@abc.com", CNPJ: "98.765.432/0001-10", Contact: "(11) 8877-6655", Status: entity.StatusActive},
	}
	for _, c := range companies {
		c.CreatedAt, c.UpdatedAt = at, at
		if err := s.Companies.Create(ctx, c); err != nil {
			return fmt.Errorf("seed empresas: %w", err)
		}
	}

	enrolled := mustDate("2025-01-10")
	employees := []*entity.Employee{
		{ID: "1", CompanyID: SeedCompanyID, Name: "João Silva", CPF: "123.456.789-00", Status: entity.StatusActive, HasBiometrics: true, BiometricsAt: &enrolled},
		{ID: "2", CompanyID: SeedCompanyID, Name: "Maria Oliveira", CPF: "987.654.321-00", Status: entity.StatusActive},
	}
	for _, e := range employees {
		e.CreatedAt, e.UpdatedAt = at, at
		if err := s.Employees.Create(ctx, e); err != nil {
			return fmt.Errorf("seed colaboradores: %w", err)
		}
	}

	epis := []*entity.EPI{
		{ID: "1", Name: "Capacete de Segurança", Category: "capacete", Lifespan: "12 meses", Quantity: 25, MinQuantity: 5,
			UnitCost: decimal.RequireFromString("45.90"), PurchaseDate: mustDate("2025-01-15"), CA: "12345", ExpirationDate: mustDate("2026-01-15")},
		{ID: "2", Name: "Luvas de Proteção", Category: "luvas", Lifespan: "6 meses", Quantity: 50, MinQuantity: 10,
			UnitCost: decimal.RequireFromString("12.50"), PurchaseDate: mustDate("2025-02-20"), CA: "67890", ExpirationDate: mustDate("2025-08-20")},
		{ID: "3", Name: "Óculos de Segurança", Category: "oculos", Lifespan: "12 meses", Quantity: 30, MinQuantity: 5,
			UnitCost: decimal.RequireFromString("18.75"), PurchaseDate: mustDate("2025-03-10"), CA: "54321", ExpirationDate: mustDate("2026-03-10")},
		{ID: "4", Name: "Protetor Auricular", Category: "protetor", Lifespan: "3 meses", Quantity: 4, MinQuantity: 5,
			UnitCost: decimal.RequireFromString("3.20"), PurchaseDate: mustDate("2025-04-01"), CA: "11223", ExpirationDate: mustDate("2026-04-01")},
	}
	for _, e := range epis {
		e.CompanyID = SeedCompanyID
		e.CreatedAt, e.UpdatedAt = at, at
		if err := s.EPIs.Create(ctx, e); err != nil {
			return fmt.Errorf("seed EPIs: %w", err)
		}
	}

	capacete := entity.ProcessItem{EPIID: "1", EPIName: "Capacete de Segurança", Quantity: 1}
	luvas := entity.ProcessItem{EPIID: "2", EPIName: "Luvas de Proteção", Quantity: 2}
	oculos := entity.ProcessItem{EPIID: "3", EPIName: "Óculos de Segurança", Quantity: 1}

	processes := []*entity.Process{
		{ID: "1", Type: entity.ProcessDelivery, EmployeeID: "1", EmployeeName: "João Silva",
			ScheduledDate: mustDate("2025-05-25"), Items: []entity.ProcessItem{capacete, luvas}},
		{ID: "2", Type: entity.ProcessDelivery, EmployeeID: "2", EmployeeName: "Maria Oliveira",
			ScheduledDate: mustDate("2025-05-26"), Items: []entity.ProcessItem{oculos}},
	}
	for _, p := range processes {
		p.CompanyID = SeedCompanyID
		p.Status = entity.ProcessScheduled
		p.CreatedAt, p.UpdatedAt = at, at
		if err := s.Processes.Create(ctx, p); err != nil {
			return fmt.Errorf("seed procesos: %w", err)
		}
	}

	reports := []*entity.Report{
		{ID: "1", Type: entity.ProcessDelivery, EmployeeID: "1", EmployeeName: "João Silva",
			CompletedDate: mustDate("2025-05-20"), FileName: "entrega_epi_123456.pdf", Items: []entity.ProcessItem{capacete, luvas}},
		{ID: "2", Type: entity.ProcessDelivery, EmployeeID: "2", EmployeeName: "Maria Oliveira",
			CompletedDate: mustDate("2025-05-21"), FileName: "entrega_epi_789012.pdf", Items: []entity.ProcessItem{oculos}},
	}
	for _, r := range reports {
		r.CompanyID = SeedCompanyID
		r.CreatedAt = r.CompletedDate
		if err := s.Reports.Create(ctx, r); err != nil {
			return fmt.Errorf("seed comprobantes: %w", err)
		}
	}

	s.Dashboard.Load(SeedCompanyID, demoDashboard())
	return nil
}

func seedUsers(ctx context.Context, s *Store, cost int) error {
	users := []struct {
		user     entity.User
		password string
	}{
		{entity.User{ID: "1", Name: "Admin Barcelos", Email: SeedAdminEmail, Role: entity.RoleAdmin}, SeedAdminPassword},
		{entity.User{ID: "2", Name: "Gestor Empresa", Email: SeedManagerEmail, Role: entity.RoleManager,
			CompanyID: SeedCompanyID, CompanyName: "Empresa Cliente"}, SeedManagerPassword},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), cost)
		if err != nil {
			return fmt.Errorf("seed usuarios: %w", err)
		}
		user := u.user
		user.PasswordHash = string(hash)
		if err := s.Users.Create(ctx, &user); err != nil {
			return fmt.Errorf("seed usuarios: %w", err)
		}
	}
	return nil
}

func demoDashboard() DashboardSeries {
	usage := func(month string, capacete, luvas, oculos int) entity.MonthlyEPIUsage {
		return entity.MonthlyEPIUsage{Month: month, Counts: map[string]int{"capacete": capacete, "luvas": luvas, "oculos": oculos}}
	}
	return DashboardSeries{
		Monthly: []entity.MonthlyCount{
			{Month: "Jan", Quantity: 10}, {Month: "Fev", Quantity: 15}, {Month: "Mar", Quantity: 8},
			{Month: "Abr", Quantity: 12}, {Month: "Mai", Quantity: 18},
		},
		TopEPIs: []entity.EPIUsage{
			{Name: "Capacete", Quantity: 25}, {Name: "Luvas", Quantity: 42}, {Name: "Óculos", Quantity: 18},
			{Name: "Protetor Auricular", Quantity: 15}, {Name: "Máscara", Quantity: 20},
		},
		Expiring: []entity.ExpiringEPI{
			{Name: "Capacete 1", Days: 15}, {Name: "Luvas 3", Days: 10}, {Name: "Óculos 2", Days: 7},
			{Name: "Protetor 5", Days: 5}, {Name: "Máscara 7", Days: 3},
		},
		UsageByMonth: []entity.MonthlyEPIUsage{
			usage("Jan", 5, 8, 4), usage("Fev", 7, 10, 6), usage("Mar", 3, 6, 2),
			usage("Abr", 6, 12, 8), usage("Mai", 8, 14, 7),
		},
		StockLevels: []entity.StockLevel{
			{Name: "Capacete", Current: 8, Min: 5}, {Name: "Luvas", Current: 12, Min: 10},
			{Name: "Protetor Auricular", Current: 6, Min: 5},
		},
		Costs: []entity.CategoryCost{
			{Category: "capacete", Total: decimal.RequireFromString("1147.50")},
			{Category: "luvas", Total: decimal.RequireFromString("625.00")},
			{Category: "oculos", Total: decimal.RequireFromString("562.50")},
			{Category: "protetor", Total: decimal.RequireFromString("96.00")},
		},
	}
}
