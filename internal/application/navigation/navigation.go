// Package navigation contiene la tabla de rutas de la consola: qué ve cada sesión en el menú
// y cómo se resuelve una ruta (acceso, redirección o página inexistente).
package navigation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// Estados de Resolve.
const (
	StatusOK            = "ok"
	StatusRedirect      = "redirect"
	StatusForbidden     = "forbidden"
	StatusNotFound      = "not_found"
	StatusLoginRequired = "login_required"
)

const (
	loginPath     = "/login"
	notFoundTitle = "Página não encontrada"
	epiPath       = "/epi"
)

// Route ruta de la consola. Capability vacía = pública.
type Route struct {
	Path       string
	Title      string
	Capability entity.Capability
	InMenu     bool
}

// Routes tabla de rutas en el orden del menú.
var Routes = []Route{
	{Path: loginPath, Title: "Login"},
	{Path: "/admin/companies", Title: "Empresas", Capability: entity.CapCompaniesManage, InMenu: true},
	{Path: "/dashboard", Title: "Dashboard", Capability: entity.CapDashboardView, InMenu: true},
	{Path: "/employees", Title: "Colaboradores", Capability: entity.CapEmployeesManage, InMenu: true},
	{Path: epiPath, Title: "EPIs", Capability: entity.CapEPIsManage, InMenu: true},
	{Path: "/processes", Title: "Processos", Capability: entity.CapProcessesManage, InMenu: true},
	{Path: "/active-processes", Title: "Processos Ativos", Capability: entity.CapProcessesConfirm, InMenu: true},
	{Path: "/reports", Title: "Relatórios", Capability: entity.CapReportsView, InMenu: true},
}

// LowStockSource fuente de la alerta de estoque bajo del menú.
type LowStockSource interface {
	LowStock(ctx context.Context, companyID string) ([]dto.LowStockAlert, error)
}

// Navigator arma el menú y resuelve rutas para una sesión.
type Navigator struct {
	stock LowStockSource
	log   *logger.Logger
}

// NewNavigator construye el navegador. stock puede ser nil (menú sin alertas).
func NewNavigator(stock LowStockSource, log *logger.Logger) *Navigator {
	if log == nil {
		log = logger.Nop()
	}
	return &Navigator{stock: stock, log: log.Named("navigation")}
}

// Menu entradas alcanzables con las capacidades de la sesión, en el orden de la tabla.
// La entrada de EPIs lleva la alerta de estoque bajo cuando corresponde.
func (n *Navigator) Menu(ctx context.Context, sess *entity.Session) dto.MenuResponse {
	entries := make([]dto.MenuEntry, 0, len(Routes))
	for _, r := range Routes {
		if !r.InMenu || !sess.Can(r.Capability) {
			continue
		}
		entry := dto.MenuEntry{Path: r.Path, Title: r.Title}
		if r.Path == epiPath {
			entry.Alert = n.lowStockAlert(ctx, sess.CompanyID)
		}
		entries = append(entries, entry)
	}
	return dto.MenuResponse{Entries: entries, Account: Account(sess)}
}

func (n *Navigator) lowStockAlert(ctx context.Context, companyID string) string {
	if n.stock == nil || companyID == "" {
		return ""
	}
	alerts, err := n.stock.LowStock(ctx, companyID)
	if err != nil {
		n.log.Warn().Err(err).Str("company_id", companyID).Msg("no se pudo calcular la alerta de estoque")
		return ""
	}
	switch len(alerts) {
	case 0:
		return ""
	case 1:
		return "1 EPI com estoque baixo"
	default:
		return fmt.Sprintf("%d EPIs com estoque baixo", len(alerts))
	}
}

// Resolve decide qué muestra la consola para path con la sesión dada (nil = sin sesión).
func Resolve(path string, sess *entity.Session) dto.ResolveResponse {
	path = normalize(path)
	if path == "/" {
		return dto.ResolveResponse{Path: path, Status: StatusRedirect, Redirect: loginPath}
	}
	route, ok := lookup(path)
	if !ok {
		return dto.ResolveResponse{Path: path, Title: notFoundTitle, Status: StatusNotFound}
	}
	if route.Capability == "" {
		if sess != nil && route.Path == loginPath {
			return dto.ResolveResponse{Path: path, Title: route.Title, Status: StatusRedirect, Redirect: entity.LandingPath(sess.Role)}
		}
		return dto.ResolveResponse{Path: path, Title: route.Title, Status: StatusOK}
	}
	if sess == nil {
		return dto.ResolveResponse{Path: path, Title: route.Title, Status: StatusLoginRequired, Redirect: loginPath}
	}
	if !sess.Can(route.Capability) {
		return dto.ResolveResponse{Path: path, Title: route.Title, Status: StatusForbidden, Redirect: entity.LandingPath(sess.Role), Chrome: true}
	}
	return dto.ResolveResponse{Path: path, Title: route.Title, Status: StatusOK, Chrome: true}
}

// Title título de la página para el encabezado; "Página não encontrada" si la ruta no existe.
func Title(path string) string {
	if r, ok := lookup(normalize(path)); ok {
		return r.Title
	}
	return notFoundTitle
}

// Account datos del menú de cuenta.
func Account(sess *entity.Session) dto.AccountMenu {
	if sess == nil {
		return dto.AccountMenu{Initial: entity.Initial("")}
	}
	return dto.AccountMenu{Name: sess.Name, Initial: entity.Initial(sess.Name), Email: sess.Email}
}

func lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
