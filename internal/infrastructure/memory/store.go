package memory

import "time"

// Store agrupa todos los repositorios en memoria de la consola.
type Store struct {
	Users         *UserRepo
	RevokedTokens *RevokedTokenRepo
	Companies     *CompanyRepo
	Employees     *EmployeeRepo
	EPIs          *EPIRepo
	Processes     *ProcessRepo
	Reports       *ReportRepo
	Notifications *NotificationRepo
	Dashboard     *DashboardRepo
}

// NewStore construye un almacén vacío. nowFn nil usa time.Now.
func NewStore(nowFn func() time.Time) *Store {
	return &Store{
		Users:         NewUserRepository(),
		RevokedTokens: NewRevokedTokenRepository(nowFn),
		Companies:     NewCompanyRepository(),
		Employees:     NewEmployeeRepository(),
		EPIs:          NewEPIRepository(),
		Processes:     NewProcessRepository(),
		Reports:       NewReportRepository(),
		Notifications: NewNotificationRepository(),
		Dashboard:     NewDashboardRepository(),
	}
}
