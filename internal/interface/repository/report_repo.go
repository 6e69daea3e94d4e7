package repository

import (
	"context"
	"fmt"
	"time"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReportRepository implements the ReportRepository interface
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GORM report repository
func NewGormReportRepository(db *gorm.DB) repository.ReportRepository {
	return &GormReportRepository{
		db: db,
	}
}

// RelatorioEntregaTurno GORM model for database mapping
type RelatorioEntregaTurno struct {
	ID                       string    `gorm:"column:id;primaryKey"`
	Titulo                   string    `gorm:"column:titulo"`
	Data                     time.Time `gorm:"column:data"`
	Turno                    string    `gorm:"column:turno"`
	Lider                    string    `gorm:"column:lider"`
	TeveFalta                bool      `gorm:"column:teve_falta"`
	TeveAtestado             bool      `gorm:"column:teve_atestado"`
	TeveCompensacao          bool      `gorm:"column:teve_compensacao"`
	TeveSaidaAntecipada      bool      `gorm:"column:teve_saida_antecipada"`
	TemPendencias            bool      `gorm:"column:tem_pendencias"`
	DescricaoPendencias      string    `gorm:"column:descricao_pendencias"`
	TemOcorrencias           bool      `gorm:"column:tem_ocorrencias"`
	DescricaoOcorrencias     string    `gorm:"column:descricao_ocorrencias"`
	TemAluguel               bool      `gorm:"column:tem_aluguel"`
	AluguelEquipamento       string    `gorm:"column:aluguel_equipamento"`
	AluguelInicio            string    `gorm:"column:aluguel_inicio"`
	AluguelFim               string    `gorm:"column:aluguel_fim"`
	TemEquipamentoEnviado    bool      `gorm:"column:tem_equipamento_enviado"`
	EquipamentoEnviadoNome   string    `gorm:"column:equipamento_enviado_nome"`
	EquipamentoEnviadoMotivo string    `gorm:"column:equipamento_enviado_motivo"`
	TemEquipamentoRetornado  bool      `gorm:"column:tem_equipamento_retornado"`
	EquipamentoRetornadoNome string    `gorm:"column:equipamento_retornado_nome"`
	TotalVoos                int       `gorm:"column:total_voos"`
	MensagemOriginal         string    `gorm:"column:mensagem_original"`
	ProcessadoEm             time.Time `gorm:"column:processado_em"`
	CriadoEm                 time.Time `gorm:"column:criado_em"`
	AtualizadoEm             time.Time `gorm:"column:atualizado_em"`
	Voos                     []Voo     `gorm:"foreignKey:RelatorioID;references:ID"`
}

// TableName overrides the default table name
func (RelatorioEntregaTurno) TableName() string {
	return "relatorios_entrega_turno"
}

// Voo GORM model for database mapping
type Voo struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	RelatorioID        string    `gorm:"column:relatorio_id"`
	Companhia          string    `gorm:"column:companhia"`
	Numero             string    `gorm:"column:numero"`
	Pouso              string    `gorm:"column:pouso"`
	Calco              string    `gorm:"column:calco"`
	InicioAtendimento  string    `gorm:"column:inicio_atendimento"`
	TerminoAtendimento string    `gorm:"column:termino_atendimento"`
	Reboque            string    `gorm:"column:reboque"`
	CriadoEm           time.Time `gorm:"column:criado_em"`
}

// TableName overrides the default table name
func (Voo) TableName() string {
	return "voos"
}

// FindLatestByDateShift returns the most recently created report for the pair
func (r *GormReportRepository) FindLatestByDateShift(ctx context.Context, date string, shift entity.Shift) (*entity.ShiftReport, error) {
	var rows []RelatorioEntregaTurno
	result := r.db.WithContext(ctx).
		Preload("Voos").
		Where("data = ?", date).
		Where("turno IN ?", shift.StoredValues()).
		Order("criado_em DESC").
		Limit(1).
		Find(&rows)

	if result.Error != nil {
		return nil, result.Error
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toReportEntity(&rows[0]), nil
}

// FindByDateRange returns all reports in the window ascending by date
func (r *GormReportRepository) FindByDateRange(ctx context.Context, start, end string, shift entity.Shift) ([]*entity.ShiftReport, error) {
	query := r.db.WithContext(ctx).
		Preload("Voos").
		Where("data >= ? AND data <= ?", start, end)

	if shift != "" {
		query = query.Where("turno IN ?", shift.StoredValues())
	}

	var rows []RelatorioEntregaTurno
	result := query.Order("data ASC, criado_em ASC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.ShiftReport, 0, len(rows))
	for i := range rows {
		reports = append(reports, toReportEntity(&rows[i]))
	}
	return reports, nil
}

// Create persists a report together with its flight rows
func (r *GormReportRepository) Create(ctx context.Context, report *entity.ShiftReport) error {
	date, err := time.Parse("2006-01-02", report.Date)
	if err != nil {
		return fmt.Errorf("invalid report date %q: %w", report.Date, err)
	}

	now := time.Now()
	row := RelatorioEntregaTurno{
		ID:                       report.ID,
		Titulo:                   report.Title,
		Data:                     date,
		Turno:                    report.Shift.Display(),
		Lider:                    report.Leader,
		TeveFalta:                report.HadAbsence,
		TeveAtestado:             report.HadMedicalLeave,
		TeveCompensacao:          report.HadCompensation,
		TeveSaidaAntecipada:      report.HadEarlyDeparture,
		TemPendencias:            report.HasPendingIssues,
		DescricaoPendencias:      report.PendingIssuesDetail,
		TemOcorrencias:           report.HasOccurrences,
		DescricaoOcorrencias:     report.OccurrencesDetail,
		TemAluguel:               report.HasRental,
		AluguelEquipamento:       report.RentalUnit,
		AluguelInicio:            report.RentalStart,
		AluguelFim:               report.RentalEnd,
		TemEquipamentoEnviado:    report.EquipmentSent,
		EquipamentoEnviadoNome:   report.SentPrefix,
		EquipamentoEnviadoMotivo: report.SentReason,
		TemEquipamentoRetornado:  report.EquipmentBack,
		EquipamentoRetornadoNome: report.ReturnedPrefix,
		TotalVoos:                report.TotalFlights,
		MensagemOriginal:         report.RawMessage,
		ProcessadoEm:             now,
		CriadoEm:                 now,
		AtualizadoEm:             now,
	}

	for i := range report.Flights {
		f := &report.Flights[i]
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		row.Voos = append(row.Voos, Voo{
			ID:                 f.ID,
			RelatorioID:        report.ID,
			Companhia:          f.Airline,
			Numero:             f.Number,
			Pouso:              f.LandingTime,
			Calco:              f.ChockTime,
			InicioAtendimento:  f.ServiceStart,
			TerminoAtendimento: f.ServiceEnd,
			Reboque:            f.TowTime,
			CriadoEm:           now,
		})
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	report.ProcessedAt = now
	report.CreatedAt = now
	report.UpdatedAt = now
	return nil
}

// toReportEntity converts a GORM row to the domain entity
func toReportEntity(row *RelatorioEntregaTurno) *entity.ShiftReport {
	report := &entity.ShiftReport{
		ID:                  row.ID,
		Title:               row.Titulo,
		Date:                row.Data.Format("2006-01-02"),
		Shift:               entity.NormalizeShift(row.Turno),
		Leader:              row.Lider,
		HadAbsence:          row.TeveFalta,
		HadMedicalLeave:     row.TeveAtestado,
		HadCompensation:     row.TeveCompensacao,
		HadEarlyDeparture:   row.TeveSaidaAntecipada,
		HasPendingIssues:    row.TemPendencias,
		PendingIssuesDetail: row.DescricaoPendencias,
		HasOccurrences:      row.TemOcorrencias,
		OccurrencesDetail:   row.DescricaoOcorrencias,
		HasRental:           row.TemAluguel,
		RentalUnit:          row.AluguelEquipamento,
		RentalStart:         row.AluguelInicio,
		RentalEnd:           row.AluguelFim,
		EquipmentSent:       row.TemEquipamentoEnviado,
		SentPrefix:          row.EquipamentoEnviadoNome,
		SentReason:          row.EquipamentoEnviadoMotivo,
		EquipmentBack:       row.TemEquipamentoRetornado,
		ReturnedPrefix:      row.EquipamentoRetornadoNome,
		TotalFlights:        row.TotalVoos,
		RawMessage:          row.MensagemOriginal,
		ProcessedAt:         row.ProcessadoEm,
		CreatedAt:           row.CriadoEm,
		UpdatedAt:           row.AtualizadoEm,
	}

	for i := range row.Voos {
		v := &row.Voos[i]
		report.Flights = append(report.Flights, entity.Flight{
			ID:           v.ID,
			ReportID:     v.RelatorioID,
			Airline:      v.Companhia,
			Number:       v.Numero,
			LandingTime:  v.Pouso,
			ChockTime:    v.Calco,
			ServiceStart: v.InicioAtendimento,
			ServiceEnd:   v.TerminoAtendimento,
			TowTime:      v.Reboque,
			CreatedAt:    v.CriadoEm,
		})
	}
	return report
}
