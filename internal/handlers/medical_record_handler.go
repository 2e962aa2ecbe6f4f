package handlers

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/models"
	"github.com/agendopro/agendopro-api/internal/storage"
)

const maxRecordFileBytes = 20 << 20 // 20 MB por anexo

// ======================================================
// HANDLER
// ======================================================

// recordStorage é o recorte de storage que os prontuários usam.
type recordStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

var _ recordStorage = (*storage.Storage)(nil)

type MedicalRecordHandler struct {
	db      *gorm.DB
	storage recordStorage
	audit   *audit.Dispatcher
}

func NewMedicalRecordHandler(
	db *gorm.DB,
	st *storage.Storage,
	dispatcher *audit.Dispatcher,
) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		db:      db,
		storage: st,
		audit:   dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMedicalRecordRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	Description string `json:"description"`
	RecordDate  string `json:"record_date"`
	Notes       string `json:"notes"`
}

// ======================================================
// CRUD
// ======================================================

func (h *MedicalRecordHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("user_id = ?", userID)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(client_name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var records []models.MedicalRecord
	if err := q.
		Order("created_at DESC").
		Find(&records).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	record := models.MedicalRecord{
		UserID:      userID,
		ClientName:  req.ClientName,
		Description: req.Description,
		RecordDate:  req.RecordDate,
		Notes:       req.Notes,
	}

	if err := h.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_record"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		ActorID:  &userID,
		Action:   "medical_record_created",
		Entity:   "medical_record",
		EntityID: &record.ID,
	})

	c.JSON(http.StatusCreated, record)
}

func (h *MedicalRecordHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var record models.MedicalRecord
	if err := h.db.
		Preload("Files").
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "record_not_found", "Prontuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_record", "Erro ao buscar prontuário.")
		return
	}

	c.JSON(http.StatusOK, record)
}

// ======================================================
// ANEXOS (S3)
// ======================================================

func (h *MedicalRecordHandler) UploadFile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var record models.MedicalRecord
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error; err != nil {
		httperr.NotFound(c, "record_not_found", "Prontuário não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}
	if fileHeader.Size > maxRecordFileBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo acima do limite de 20MB.")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key := storage.NewKey(userID, fileHeader.Filename)

	if err := h.storage.Upload(c.Request.Context(), key, contentType, src); err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Erro ao enviar arquivo.")
		return
	}

	file := models.MedicalRecordFile{
		RecordID:    record.ID,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		StorageKey:  key,
	}

	if err := h.db.Create(&file).Error; err != nil {
		httperr.Internal(c, "failed_to_save_file", "Erro ao registrar arquivo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		ActorID:  &userID,
		Action:   "medical_record_file_uploaded",
		Entity:   "medical_record_file",
		EntityID: &file.ID,
	})

	c.JSON(http.StatusCreated, file)
}

func (h *MedicalRecordHandler) FileURL(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, ok := h.getFileForUser(c, userID)
	if !ok {
		return
	}

	url, err := h.storage.PresignDownload(c.Request.Context(), file.StorageKey)
	if err != nil {
		httperr.Internal(c, "failed_to_presign", "Erro ao gerar link de download.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_name": file.FileName,
		"url":       url,
	})
}

func (h *MedicalRecordHandler) DeleteFile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, ok := h.getFileForUser(c, userID)
	if !ok {
		return
	}

	// Primeiro o banco: se a remoção do objeto falhar depois, sobra um
	// órfão no bucket, nunca um registro apontando para objeto inexistente.
	if err := h.db.Delete(&models.MedicalRecordFile{}, file.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_file", "Erro ao remover registro do arquivo.")
		return
	}

	if err := h.storage.Delete(c.Request.Context(), file.StorageKey); err != nil {
		log.Println("falha ao remover objeto do bucket:", file.StorageKey, err)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		ActorID:  &userID,
		Action:   "medical_record_file_deleted",
		Entity:   "medical_record_file",
		EntityID: &file.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Resolve o arquivo garantindo que o prontuário pertence ao usuário.
func (h *MedicalRecordHandler) getFileForUser(c *gin.Context, userID uint) (*models.MedicalRecordFile, bool) {
	recordID := c.Param("id")
	fileID := c.Param("fileID")

	var record models.MedicalRecord
	if err := h.db.
		Where("id = ? AND user_id = ?", recordID, userID).
		First(&record).Error; err != nil {
		httperr.NotFound(c, "record_not_found", "Prontuário não encontrado.")
		return nil, false
	}

	var file models.MedicalRecordFile
	if err := h.db.
		Where("id = ? AND record_id = ?", fileID, record.ID).
		First(&file).Error; err != nil {
		httperr.NotFound(c, "file_not_found", "Arquivo não encontrado.")
		return nil, false
	}

	return &file, true
}
