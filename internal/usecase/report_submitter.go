package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"
	"rampcontrol-service/pkg/logger"
	"rampcontrol-service/pkg/metrics"
	"rampcontrol-service/templates"

	"github.com/google/uuid"
)

// ReportSubmitter handles shift report submission: persistence, fleet
// status automation, audit archiving and handover dispatch.
type ReportSubmitter struct {
	reportRepo    repository.ReportRepository
	equipmentRepo repository.EquipmentRepository
	archiveRepo   repository.ArchiveRepository
	whatsappRepo  repository.WhatsappRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewReportSubmitter creates a new report submitter
func NewReportSubmitter(
	reportRepo repository.ReportRepository,
	equipmentRepo repository.EquipmentRepository,
	archiveRepo repository.ArchiveRepository,
	whatsappRepo repository.WhatsappRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ReportSubmitter {
	return &ReportSubmitter{
		reportRepo:    reportRepo,
		equipmentRepo: equipmentRepo,
		archiveRepo:   archiveRepo,
		whatsappRepo:  whatsappRepo,
		metrics:       metrics,
		logger:        logger,
	}
}

// FlightInput is one flight row as submitted.
type FlightInput struct {
	Airline      string `json:"airline"`
	Number       string `json:"number"`
	LandingTime  string `json:"landingTime"`
	ChockTime    string `json:"chockTime"`
	ServiceStart string `json:"serviceStart"`
	ServiceEnd   string `json:"serviceEnd"`
	TowTime      string `json:"towTime"`
}

// SubmitReportInput is a handover report as submitted by the SPA.
type SubmitReportInput struct {
	Date   string `json:"date"`
	Shift  string `json:"shift"`
	Leader string `json:"leader"`

	HadAbsence        bool `json:"hadAbsence"`
	HadMedicalLeave   bool `json:"hadMedicalLeave"`
	HadCompensation   bool `json:"hadCompensation"`
	HadEarlyDeparture bool `json:"hadEarlyDeparture"`

	PendingIssues string `json:"pendingIssues"`
	Occurrences   string `json:"occurrences"`

	RentalActive bool   `json:"rentalActive"`
	RentalUnit   string `json:"rentalUnit"`
	RentalStart  string `json:"rentalStart"`
	RentalEnd    string `json:"rentalEnd"`

	EquipmentSent  bool   `json:"equipmentSent"`
	SentPrefix     string `json:"sentPrefix"`
	SentReason     string `json:"sentReason"`
	EquipmentBack  bool   `json:"equipmentBack"`
	ReturnedPrefix string `json:"returnedPrefix"`

	Flights []FlightInput `json:"flights"`

	DispatchHandover bool `json:"dispatchHandover"`
}

// ErrInvalidReport marks a submission the caller can correct. Anything else
// coming out of Submit is a store or downstream failure.
var ErrInvalidReport = errors.New("invalid report")

// noDetail marks an empty free-text answer in a stored report.
const noDetail = "Não"

// detailFlag derives the boolean flag from a free-text answer: set iff the
// text is non-empty and not a plain "no".
func detailFlag(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, noDetail
	}
	lower := strings.ToLower(trimmed)
	if lower == "não" || lower == "nao" {
		return false, noDetail
	}
	return true, trimmed
}

// Submit validates and persists a handover report, applies the fleet status
// automation, archives the structured message and optionally dispatches it
// to the WhatsApp bridge.
func (s *ReportSubmitter) Submit(ctx context.Context, input *SubmitReportInput) (*entity.ShiftReport, error) {
	if strings.TrimSpace(input.Leader) == "" {
		return nil, fmt.Errorf("%w: leader is required", ErrInvalidReport)
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidReport, input.Date)
	}
	shift := entity.NormalizeShift(input.Shift)
	switch shift {
	case entity.ShiftMorning, entity.ShiftAfternoon, entity.ShiftNight:
	default:
		return nil, fmt.Errorf("%w: bad shift %q", ErrInvalidReport, input.Shift)
	}

	hasPending, pendingDetail := detailFlag(input.PendingIssues)
	hasOccurrences, occurrencesDetail := detailFlag(input.Occurrences)

	report := &entity.ShiftReport{
		ID:                  uuid.NewString(),
		Title:               fmt.Sprintf("Entrega de Turno %s - %s", input.Date, shift.Display()),
		Date:                input.Date,
		Shift:               shift,
		Leader:              strings.TrimSpace(input.Leader),
		HadAbsence:          input.HadAbsence,
		HadMedicalLeave:     input.HadMedicalLeave,
		HadCompensation:     input.HadCompensation,
		HadEarlyDeparture:   input.HadEarlyDeparture,
		HasPendingIssues:    hasPending,
		PendingIssuesDetail: pendingDetail,
		HasOccurrences:      hasOccurrences,
		OccurrencesDetail:   occurrencesDetail,
		HasRental:           input.RentalActive,
		TotalFlights:        len(input.Flights),
	}
	if input.RentalActive {
		report.RentalUnit = input.RentalUnit
		report.RentalStart = input.RentalStart
		report.RentalEnd = input.RentalEnd
	}
	if input.EquipmentSent {
		report.EquipmentSent = true
		report.SentPrefix = strings.TrimSpace(input.SentPrefix)
		report.SentReason = input.SentReason
	}
	if input.EquipmentBack {
		report.EquipmentBack = true
		report.ReturnedPrefix = strings.TrimSpace(input.ReturnedPrefix)
	}

	// placeholder rows never reach the database
	for _, f := range input.Flights {
		if strings.TrimSpace(f.Airline) == "" {
			continue
		}
		report.Flights = append(report.Flights, entity.Flight{
			ReportID:     report.ID,
			Airline:      strings.TrimSpace(f.Airline),
			Number:       strings.TrimSpace(f.Number),
			LandingTime:  f.LandingTime,
			ChockTime:    f.ChockTime,
			ServiceStart: f.ServiceStart,
			ServiceEnd:   f.ServiceEnd,
			TowTime:      f.TowTime,
		})
	}

	report.RawMessage = templates.BuildHandoverMessage(report)

	if err := s.reportRepo.Create(ctx, report); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("create_report").Inc()
		return nil, err
	}
	s.metrics.ReportsSubmitted.Inc()

	s.applyFleetAutomation(ctx, report)
	s.archive(ctx, report)

	if input.DispatchHandover && s.whatsappRepo != nil {
		payload := &entity.HandoverPayload{
			Text:       report.RawMessage,
			ScheduleAt: time.Now(),
			CreatedAt:  time.Now(),
			Status:     "pending",
		}
		if _, err := s.whatsappRepo.SendHandover(ctx, payload); err != nil {
			s.metrics.ErrorsCount.WithLabelValues("send_handover").Inc()
			s.logger.Error("Failed to dispatch handover message", "reportId", report.ID, "error", err)
		} else {
			s.metrics.HandoversSent.Inc()
		}
	}

	s.logger.Info("Report submitted",
		"reportId", report.ID,
		"date", report.Date,
		"shift", string(report.Shift),
		"flights", len(report.Flights),
		"validFlights", report.ValidFlightCount())

	return report, nil
}

// applyFleetAutomation mirrors the report's GSE movement into the fleet
// table: sent units go down, returned units come back up. Prefixes that
// match nothing are surfaced in the log for manual cleanup instead of being
// fuzzy-matched.
func (s *ReportSubmitter) applyFleetAutomation(ctx context.Context, report *entity.ShiftReport) {
	if report.EquipmentSent && report.SentPrefix != "" {
		rows, err := s.equipmentRepo.UpdateStatusByPrefix(ctx, report.SentPrefix, entity.StatusInMaintenance)
		if err != nil {
			s.metrics.ErrorsCount.WithLabelValues("fleet_update").Inc()
			s.logger.Error("Failed to mark unit as in maintenance", "prefix", report.SentPrefix, "error", err)
		} else if rows == 0 {
			s.logger.Warn("Sent prefix matched no fleet unit", "prefix", report.SentPrefix)
		}
	}
	if report.EquipmentBack && report.ReturnedPrefix != "" {
		rows, err := s.equipmentRepo.UpdateStatusByPrefix(ctx, report.ReturnedPrefix, entity.StatusOperational)
		if err != nil {
			s.metrics.ErrorsCount.WithLabelValues("fleet_update").Inc()
			s.logger.Error("Failed to mark unit as operational", "prefix", report.ReturnedPrefix, "error", err)
		} else if rows == 0 {
			s.logger.Warn("Returned prefix matched no fleet unit", "prefix", report.ReturnedPrefix)
		}
	}
}

// archive writes the audit document. Archive failures are logged, never
// fatal: the report itself is already stored.
func (s *ReportSubmitter) archive(ctx context.Context, report *entity.ShiftReport) {
	archive := &entity.ReportArchive{
		ReportID:   report.ID,
		Date:       report.Date,
		Shift:      string(report.Shift),
		Leader:     report.Leader,
		RawMessage: report.RawMessage,
		Status:     entity.ArchiveStatusStored,
		ExtractedData: map[string]interface{}{
			"flightRows":    report.TotalFlights,
			"validFlights":  report.ValidFlightCount(),
			"hasRental":     report.HasRental,
			"equipmentSent": report.EquipmentSent,
			"equipmentBack": report.EquipmentBack,
		},
		SubmittedAt: time.Now(),
	}
	if err := s.archiveRepo.Save(ctx, archive); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("archive_report").Inc()
		s.logger.Error("Failed to archive report", "reportId", report.ID, "error", err)
	}
}
