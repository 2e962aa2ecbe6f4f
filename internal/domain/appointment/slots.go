package appointment

import "time"

// Grade fixa de horários de meia em meia hora, em dois turnos:
// manhã 09:00–11:30 e tarde 13:00–16:30 (inclusive).

const slotLayout = "15:04"

var candidateSlots = buildCandidates()

func buildCandidates() []string {
	var out []string
	appendRange := func(from, to string) {
		start, _ := time.Parse(slotLayout, from)
		end, _ := time.Parse(slotLayout, to)
		for t := start; !t.After(end); t = t.Add(30 * time.Minute) {
			out = append(out, t.Format(slotLayout))
		}
	}
	appendRange("09:00", "11:30")
	appendRange("13:00", "16:30")
	return out
}

// CandidateSlots devolve uma cópia da grade completa, em ordem.
func CandidateSlots() []string {
	out := make([]string, len(candidateSlots))
	copy(out, candidateSlots)
	return out
}

// IsCandidateSlot valida se o horário pertence à grade.
func IsCandidateSlot(hm string) bool {
	for _, s := range candidateSlots {
		if s == hm {
			return true
		}
	}
	return false
}

// AvailableSlots devolve a grade menos os horários ocupados,
// preservando a ordem dos candidatos.
func AvailableSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	out := make([]string, 0, len(candidateSlots))
	for _, s := range candidateSlots {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
