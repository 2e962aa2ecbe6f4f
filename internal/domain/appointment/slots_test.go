package appointment

import (
	"reflect"
	"testing"
)

func TestCandidateSlots_Grid(t *testing.T) {
	slots := CandidateSlots()

	// 6 de manhã (09:00–11:30) + 8 de tarde (13:00–16:30).
	if len(slots) != 14 {
		t.Fatalf("esperava 14 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Errorf("primeiro slot deve ser 09:00, got %s", slots[0])
	}
	if slots[5] != "11:30" {
		t.Errorf("último da manhã deve ser 11:30, got %s", slots[5])
	}
	if slots[6] != "13:00" {
		t.Errorf("primeiro da tarde deve ser 13:00, got %s", slots[6])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Errorf("último slot deve ser 16:30, got %s", slots[len(slots)-1])
	}
}

func TestCandidateSlots_ReturnsCopy(t *testing.T) {
	a := CandidateSlots()
	a[0] = "00:00"
	if b := CandidateSlots(); b[0] != "09:00" {
		t.Error("CandidateSlots deve devolver cópia da grade")
	}
}

func TestAvailableSlots_RemovesBookedOnly(t *testing.T) {
	// Um agendamento confirmado às 10:00 remove apenas o 10:00.
	got := AvailableSlots([]string{"10:00"})

	want := CandidateSlots()
	idx := -1
	for i, s := range want {
		if s == "10:00" {
			idx = i
		}
	}
	want = append(want[:idx], want[idx+1:]...)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots = %v, want %v", got, want)
	}
}

func TestAvailableSlots_OrderPreserved(t *testing.T) {
	got := AvailableSlots([]string{"09:30", "16:00"})
	prev := ""
	for _, s := range got {
		if s <= prev {
			t.Fatalf("ordem quebrada em %s depois de %s", s, prev)
		}
		prev = s
	}
}

func TestAvailableSlots_EmptyBooked(t *testing.T) {
	if got := AvailableSlots(nil); !reflect.DeepEqual(got, CandidateSlots()) {
		t.Error("sem ocupados, todos os candidatos devem estar livres")
	}
}

func TestAvailableSlots_IgnoresUnknownTimes(t *testing.T) {
	// Horário fora da grade não afeta o resultado.
	if got := AvailableSlots([]string{"12:00", "23:45"}); len(got) != 14 {
		t.Errorf("horários fora da grade não devem remover slots, got %d", len(got))
	}
}

func TestIsCandidateSlot(t *testing.T) {
	if !IsCandidateSlot("09:00") || !IsCandidateSlot("16:30") {
		t.Error("bordas da grade devem ser candidatas")
	}
	if IsCandidateSlot("12:00") {
		t.Error("12:00 está no intervalo de almoço, fora da grade")
	}
	if IsCandidateSlot("09:15") {
		t.Error("grade é de meia em meia hora")
	}
}
