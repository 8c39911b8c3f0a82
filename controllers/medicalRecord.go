package controllers

import (
	"ClinicDesk/models"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RecordService interface {
	CreateRecord(ctx context.Context, record *models.ClinicalRecord) (*models.ClinicalRecord, error)
}

type RecordController struct {
	records RecordService
}

func NewRecordController(records RecordService) *RecordController {
	return &RecordController{records: records}
}

func (r *RecordController) Routes(router gin.IRouter) {
	router.POST("/records", r.CreateRecord)
}

func (r *RecordController) CreateRecord(c *gin.Context) {
	var record models.ClinicalRecord
	if !bindJSON(c, &record) {
		return
	}
	created, err := r.records.CreateRecord(c.Request.Context(), &record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
