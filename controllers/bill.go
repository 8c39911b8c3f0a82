package controllers

import (
	"ClinicDesk/models"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BillingService interface {
	CreateBilling(ctx context.Context, entry *models.BillingEntry) (*models.BillingEntry, error)
}

type BillingController struct {
	billings BillingService
}

func NewBillingController(billings BillingService) *BillingController {
	return &BillingController{billings: billings}
}

func (b *BillingController) Routes(router gin.IRouter) {
	router.POST("/billings", b.CreateBilling)
}

/*
* A non-numeric amount fails binding and never reaches the service
 */
func (b *BillingController) CreateBilling(c *gin.Context) {
	var entry models.BillingEntry
	if !bindJSON(c, &entry) {
		return
	}
	created, err := b.billings.CreateBilling(c.Request.Context(), &entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
