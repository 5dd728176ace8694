package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/macicado/barberagenda/internal/models"
)

// ===============================
// Slot Generation
// ===============================

type SlotAvailability struct {
	Slot     string `json:"slot"`
	Occupied bool   `json:"occupied"`
}

// GenerateSlots produz todos os horários entre abertura e fechamento com
// passo fixo, em ordem crescente. O horário de fechamento é incluído quando
// cai exatamente sobre um passo.
//
// Intervalo não-positivo é responsabilidade do chamador (substituir o
// default antes de chamar) — a validação fica na borda de configuração.
func GenerateSlots(opening, closing string, intervalMin int) []string {
	start, err := toMinutes(opening)
	if err != nil {
		return nil
	}
	end, err := toMinutes(closing)
	if err != nil || end < start {
		return nil
	}

	slots := make([]string, 0, (end-start)/max(intervalMin, 1)+1)
	for t := start; t <= end; t += intervalMin {
		slots = append(slots, toClock(t))
	}
	return slots
}

// IsDateOpen testa o dia da semana na convenção 0=domingo..6=sábado
func IsDateOpen(date time.Time, openWeekdays []int) bool {
	weekday := int(date.Weekday())
	for _, d := range openWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// OccupiedSlots extrai os horários de agendamentos não-cancelados —
// cancelar libera o slot na próxima consulta
func OccupiedSlots(bookings []models.Booking) []string {
	occupied := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if Status(b.Status) == StatusCancelled {
			continue
		}
		occupied = append(occupied, b.TimeSlot)
	}
	return occupied
}

// ClassifyOccupancy marca cada slot como ocupado por pertinência simples:
// slots são unidades atômicas, sem lógica de sobreposição de intervalos
func ClassifyOccupancy(slots, occupied []string) []SlotAvailability {
	taken := make(map[string]struct{}, len(occupied))
	for _, s := range occupied {
		taken[s] = struct{}{}
	}

	out := make([]SlotAvailability, 0, len(slots))
	for _, s := range slots {
		_, ok := taken[s]
		out = append(out, SlotAvailability{Slot: s, Occupied: ok})
	}
	return out
}

func HasSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// ===============================
// Helpers HH:MM <-> minutos
// ===============================

func toMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}

	return h*60 + m, nil
}

func toClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
