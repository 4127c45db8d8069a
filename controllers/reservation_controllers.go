package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lunchly/lunchly-app/models"
	"github.com/lunchly/lunchly-app/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type reservationForm struct {
	NumGuests int    `form:"numGuests" binding:"required,gt=0"`
	StartAt   string `form:"startAt" binding:"required"`
	Notes     string `form:"notes"`
}

// reservationEditForm additionally carries the customerId the edit form
// submits; the post-save redirect targets it.
type reservationEditForm struct {
	CustomerID string `form:"customerId" binding:"required"`
	NumGuests  int    `form:"numGuests" binding:"required,gt=0"`
	StartAt    string `form:"startAt" binding:"required"`
	Notes      string `form:"notes"`
}

// CreateReservation -> POST /:id/add-reservation/
// :id is the customer the reservation belongs to.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	customerID, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	var form reservationForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RenderError(c, &models.ValidationError{Message: err.Error()})
		return
	}

	startAt, err := models.ParseStartAt(form.StartAt)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	// Reservations must point at an existing customer.
	if _, err := models.GetCustomer(rc.DB, customerID); err != nil {
		utils.RenderError(c, err)
		return
	}

	reservation := models.Reservation{
		CustomerID: customerID,
		NumGuests:  form.NumGuests,
		StartAt:    startAt,
		Notes:      form.Notes,
	}
	if err := reservation.Save(rc.DB); err != nil {
		utils.RenderError(c, err)
		return
	}

	utils.InfoLogger.Printf("New reservation created (ID=%d) for customer %d", reservation.ID, customerID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/%d/", customerID))
}

// EditReservationForm -> GET /:id/edit-res/
// Here :id is a reservation id, not a customer id.
func (rc *ReservationController) EditReservationForm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	reservation, err := models.GetReservation(rc.DB, id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "reservation_edit_form.html", gin.H{"Reservation": reservation})
}

// UpdateReservation -> POST /:id/edit-res/
// Here :id is a reservation id. The redirect goes to the customerId the
// form submitted, matching the original views.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	var form reservationEditForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RenderError(c, &models.ValidationError{Message: err.Error()})
		return
	}

	startAt, err := models.ParseStartAt(form.StartAt)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	reservation, err := models.GetReservation(rc.DB, id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	reservation.NumGuests = form.NumGuests
	reservation.StartAt = startAt
	reservation.Notes = form.Notes
	if err := reservation.Save(rc.DB); err != nil {
		utils.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/"+form.CustomerID+"/")
}

// DeleteReservation -> POST /:id/delete-reservation/
// :id is the customer id; the reservation to delete comes from the body.
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	customerID, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	var form struct {
		ReservationID uint `form:"reservationId" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		utils.RenderError(c, &models.ValidationError{Message: err.Error()})
		return
	}

	reservation, err := models.GetReservation(rc.DB, form.ReservationID)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	if err := reservation.Delete(rc.DB); err != nil {
		utils.RenderError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", reservation.ID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/%d/", customerID))
}
