package templates

import (
	"strings"
	"testing"

	"rampcontrol-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildHandoverMessage(t *testing.T) {
	report := &entity.ShiftReport{
		Date:                "2024-01-15",
		Shift:               entity.ShiftMorning,
		Leader:              "Carlos",
		HadAbsence:          true,
		PendingIssuesDetail: "Esteira 3 aguardando peça",
		OccurrencesDetail:   "",
		HasRental:           true,
		RentalUnit:          "GPU-04",
		RentalStart:         "08:00",
		RentalEnd:           "11:30",
		EquipmentSent:       true,
		SentPrefix:          "TB-07",
		SentReason:          "vazamento hidráulico",
		Flights: []entity.Flight{
			{Airline: "GOL", Number: "1001", LandingTime: "08:00", TowTime: "08:45"},
			{Airline: "", Number: ""},
		},
	}

	msg := BuildHandoverMessage(report)

	assert.True(t, strings.HasPrefix(msg, "✅ *RELATÓRIO DE ENTREGA DE TURNO*\n"))
	assert.Contains(t, msg, "🗓️ 15/01/2024")
	assert.Contains(t, msg, "Turno: manhã")
	assert.Contains(t, msg, "Líder: Carlos")

	assert.Contains(t, msg, "1 - Falta: Sim")
	assert.Contains(t, msg, "Atestado: Não")

	assert.Contains(t, msg, "Esteira 3 aguardando peça")
	assert.Contains(t, msg, "3 - Relatar todas ocorrências importantes:\nNão")

	assert.Contains(t, msg, "4 - Aluguel: Sim")
	assert.Contains(t, msg, "Equipamento: GPU-04\nInício: 08:00\nFim: 11:30")

	assert.Contains(t, msg, "GOL 1001\nInício: 08:00\nTérmino: 08:45")

	assert.Contains(t, msg, "6 - Algum equipamento enviado para o GSE?\nSim\nNome: TB-07\nMotivo: vazamento hidráulico")
	assert.True(t, strings.HasSuffix(msg, "7 - Algum equipamento retornou do GSE?\nNão"))
}

func TestBuildHandoverMessageMinimal(t *testing.T) {
	report := &entity.ShiftReport{
		Date:   "2024-01-15",
		Shift:  entity.ShiftNight,
		Leader: "Ana",
	}

	msg := BuildHandoverMessage(report)

	assert.Contains(t, msg, "Turno: noite")
	assert.Contains(t, msg, "2 - Relatar todas as pendências importantes que ficaram para o turno seguinte:\nNão")
	assert.Contains(t, msg, "4 - Aluguel: Não")
	assert.NotContains(t, msg, "Equipamento:")
	assert.Contains(t, msg, "5 - Voos atendidos:\n")
	assert.Contains(t, msg, "6 - Algum equipamento enviado para o GSE?\nNão")
}

func TestBuildHandoverMessageReturnedUnit(t *testing.T) {
	report := &entity.ShiftReport{
		Date:           "2024-01-15",
		Shift:          entity.ShiftAfternoon,
		Leader:         "Ana",
		EquipmentBack:  true,
		ReturnedPrefix: "TB-07",
	}

	msg := BuildHandoverMessage(report)
	assert.True(t, strings.HasSuffix(msg, "7 - Algum equipamento retornou do GSE?\nNome: TB-07"))
}
