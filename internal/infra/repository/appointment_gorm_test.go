package repository

import (
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/models"
)

// Sessão DryRun: o dialector do postgres gera o SQL sem abrir conexão.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:        "host=localhost user=agendo dbname=agendo",
		DriverName: "pgx",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("abrindo dialector: %v", err)
	}
	return db
}

// Postgres rejeita FOR UPDATE combinado com agregação ("FOR UPDATE is not
// allowed with aggregate functions"). A guarda de conflito precisa travar
// linhas e contar no cliente, nunca emitir um count(*) sob lock.
func TestSlotConflictQueryLocksRowsWithoutAggregate(t *testing.T) {
	db := dryRunDB(t)

	ap := &models.Appointment{UserID: 1, Date: "2026-09-01", Time: "10:00"}

	var ids []uint
	stmt := slotConflictQuery(db, ap).Pluck("id", &ids).Statement

	sql := strings.ToLower(stmt.SQL.String())

	if !strings.Contains(sql, "for update") {
		t.Fatalf("esperava FOR UPDATE no SQL gerado: %s", sql)
	}
	if strings.Contains(sql, "count(") {
		t.Fatalf("guarda de conflito não pode agregar sob FOR UPDATE: %s", sql)
	}
	for _, frag := range []string{"user_id", "date", "time", "status in"} {
		if !strings.Contains(sql, frag) {
			t.Fatalf("SQL gerado sem o predicado %q: %s", frag, sql)
		}
	}
}
