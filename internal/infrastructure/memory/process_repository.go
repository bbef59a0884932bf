package memory

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

var (
	_ repository.ProcessRepository = (*ProcessRepo)(nil)
	_ repository.ReportRepository  = (*ReportRepo)(nil)
)

// ProcessRepo implementación en memoria de los procesos.
type ProcessRepo struct {
	t *table[entity.Process]
}

// NewProcessRepository construye el adaptador.
func NewProcessRepository() *ProcessRepo {
	return &ProcessRepo{t: newTable("process",
		func(p *entity.Process) string { return p.ID },
		(*entity.Process).Clone,
	)}
}

func (r *ProcessRepo) Create(_ context.Context, process *entity.Process) error {
	return r.t.insert(process)
}

func (r *ProcessRepo) GetByID(_ context.Context, companyID, id string) (*entity.Process, error) {
	p := r.t.get(id)
	if p == nil || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}

func (r *ProcessRepo) Update(_ context.Context, process *entity.Process) error {
	return r.t.replace(process)
}

func (r *ProcessRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Process, error) {
	return r.t.list(func(p *entity.Process) bool { return p.CompanyID == companyID }), nil
}

// ReportRepo implementación en memoria de los comprobantes.
type ReportRepo struct {
	t *table[entity.Report]
}

// NewReportRepository construye el adaptador.
func NewReportRepository() *ReportRepo {
	return &ReportRepo{t: newTable("report",
		func(r *entity.Report) string { return r.ID },
		func(r *entity.Report) *entity.Report {
			cp := *r
			cp.Items = append([]entity.ProcessItem(nil), r.Items...)
			return &cp
		},
	)}
}

func (r *ReportRepo) Create(_ context.Context, report *entity.Report) error {
	return r.t.insert(report)
}

func (r *ReportRepo) GetByID(_ context.Context, companyID, id string) (*entity.Report, error) {
	rep := r.t.get(id)
	if rep == nil || rep.CompanyID != companyID {
		return nil, nil
	}
	return rep, nil
}

func (r *ReportRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Report, error) {
	return r.t.list(func(rep *entity.Report) bool { return rep.CompanyID == companyID }), nil
}
