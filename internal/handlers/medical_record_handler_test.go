package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/models"
)

// ======================================================
// FAKE STORAGE
// ======================================================

type fakeRecordStorage struct {
	deleted    []string
	failDelete bool
}

func (f *fakeRecordStorage) Upload(_ context.Context, _, _ string, _ io.Reader) error {
	return nil
}

func (f *fakeRecordStorage) PresignDownload(_ context.Context, key string) (string, error) {
	return "https://bucket.example/" + key, nil
}

func (f *fakeRecordStorage) Delete(_ context.Context, key string) error {
	if f.failDelete {
		return errors.New("bucket indisponível")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

var _ recordStorage = (*fakeRecordStorage)(nil)

// ======================================================
// HELPERS
// ======================================================

func recordTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("abrindo sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.MedicalRecord{}, &models.MedicalRecordFile{}); err != nil {
		t.Fatalf("migrando: %v", err)
	}
	return db
}

func seedRecordWithFile(t *testing.T, db *gorm.DB, userID uint) *models.MedicalRecordFile {
	t.Helper()

	record := models.MedicalRecord{UserID: userID, ClientName: "Maria"}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("criando prontuário: %v", err)
	}

	file := models.MedicalRecordFile{
		RecordID:   record.ID,
		FileName:   "exame.pdf",
		StorageKey: "records/1/abc-exame.pdf",
	}
	if err := db.Create(&file).Error; err != nil {
		t.Fatalf("criando arquivo: %v", err)
	}
	return &file
}

func recordRouter(db *gorm.DB, st recordStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &MedicalRecordHandler{
		db:      db,
		storage: st,
		audit:   audit.NewDispatcher(audit.New(nil)),
	}

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextUserID, uint(1)) })
	r.DELETE("/me/medical-records/:id/files/:fileID", h.DeleteFile)
	return r
}

// ======================================================
// TESTS
// ======================================================

func TestDeleteFileRemovesRowAndObject(t *testing.T) {
	db := recordTestDB(t)
	file := seedRecordWithFile(t, db, 1)
	st := &fakeRecordStorage{}

	r := recordRouter(db, st)

	req := httptest.NewRequest(http.MethodDelete, "/me/medical-records/1/files/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}

	var count int64
	db.Model(&models.MedicalRecordFile{}).Where("id = ?", file.ID).Count(&count)
	if count != 0 {
		t.Fatal("registro do arquivo deveria ter sido removido")
	}

	if len(st.deleted) != 1 || st.deleted[0] != file.StorageKey {
		t.Fatalf("objeto não removido do bucket: %v", st.deleted)
	}
}

// Falha no bucket não pode deixar o registro apontando para um objeto
// removido: o banco sai primeiro e o objeto vira, no pior caso, órfão.
func TestDeleteFileRemovesRowEvenWhenBucketFails(t *testing.T) {
	db := recordTestDB(t)
	file := seedRecordWithFile(t, db, 1)
	st := &fakeRecordStorage{failDelete: true}

	r := recordRouter(db, st)

	req := httptest.NewRequest(http.MethodDelete, "/me/medical-records/1/files/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}

	var count int64
	db.Model(&models.MedicalRecordFile{}).Where("id = ?", file.ID).Count(&count)
	if count != 0 {
		t.Fatal("registro deveria sumir mesmo com o bucket fora")
	}
}
