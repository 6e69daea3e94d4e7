package templates

import (
	"fmt"
	"strings"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/pkg/utils"
)

func yesNo(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

// BuildHandoverMessage renders the structured 7-item handover text the team
// shares on WhatsApp at the end of a shift.
func BuildHandoverMessage(report *entity.ShiftReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✅ *RELATÓRIO DE ENTREGA DE TURNO*\n")
	fmt.Fprintf(&b, "🗓️ %s\n", utils.FormatDateBR(report.Date))
	fmt.Fprintf(&b, "Turno: %s\n", report.Shift.Display())
	fmt.Fprintf(&b, "Líder: %s\n\n", report.Leader)

	fmt.Fprintf(&b, "1 - Falta: %s\n", yesNo(report.HadAbsence))
	fmt.Fprintf(&b, "Atestado: %s\n", yesNo(report.HadMedicalLeave))
	fmt.Fprintf(&b, "Compensação: %s\n", yesNo(report.HadCompensation))
	fmt.Fprintf(&b, "Saída antecipada: %s\n\n", yesNo(report.HadEarlyDeparture))

	fmt.Fprintf(&b, "2 - Relatar todas as pendências importantes que ficaram para o turno seguinte:\n%s\n\n", orNo(report.PendingIssuesDetail))
	fmt.Fprintf(&b, "3 - Relatar todas ocorrências importantes:\n%s\n\n", orNo(report.OccurrencesDetail))

	fmt.Fprintf(&b, "4 - Aluguel: %s\n", yesNo(report.HasRental))
	if report.HasRental {
		fmt.Fprintf(&b, "Equipamento: %s\nInício: %s\nFim: %s\n", report.RentalUnit, report.RentalStart, report.RentalEnd)
	}
	b.WriteString("\n")

	b.WriteString("5 - Voos atendidos:\n")
	for i := range report.Flights {
		f := &report.Flights[i]
		if f.Airline == "" {
			continue
		}
		fmt.Fprintf(&b, "%s %s\nInício: %s\nTérmino: %s\n\n", f.Airline, f.Number, f.LandingTime, f.TowTime)
	}

	b.WriteString("6 - Algum equipamento enviado para o GSE?\n")
	if report.EquipmentSent {
		fmt.Fprintf(&b, "Sim\nNome: %s\nMotivo: %s\n\n", report.SentPrefix, report.SentReason)
	} else {
		b.WriteString("Não\n\n")
	}

	b.WriteString("7 - Algum equipamento retornou do GSE?\n")
	if report.EquipmentBack {
		fmt.Fprintf(&b, "Nome: %s", report.ReturnedPrefix)
	} else {
		b.WriteString("Não")
	}

	return b.String()
}

func orNo(detail string) string {
	if detail == "" {
		return "Não"
	}
	return detail
}
