package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lunchly/lunchly-app/models"
	"github.com/lunchly/lunchly-app/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// customerForm carries the fields of the add and edit customer forms.
// Field names match the template inputs.
type customerForm struct {
	FirstName  string `form:"firstName" binding:"required"`
	MiddleName string `form:"middleName"`
	LastName   string `form:"lastName" binding:"required"`
	Phone      string `form:"phone"`
	Notes      string `form:"notes"`
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &models.ValidationError{Message: "invalid id: " + raw}
	}
	return uint(id), nil
}

// ListCustomers -> GET /
// ?sort=top ranks by reservation count, other sort values order by an
// allow-listed column, ?search= filters by full name; otherwise all
// customers are listed.
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	var (
		customers []models.Customer
		err       error
	)

	switch {
	case c.Query("sort") == "top":
		customers, err = models.TopCustomers(cc.DB)
	case c.Query("sort") != "":
		customers, err = models.SortCustomers(cc.DB, c.Query("sort"))
	case c.Query("search") != "":
		customers, err = models.SearchCustomers(cc.DB, c.Query("search"))
	default:
		customers, err = models.AllCustomers(cc.DB)
	}
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_list.html", gin.H{"Customers": customers})
}

// TopCustomers -> GET /top/
func (cc *CustomerController) TopCustomers(c *gin.Context) {
	customers, err := models.TopCustomers(cc.DB)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_list.html", gin.H{"Customers": customers})
}

// NewCustomerForm -> GET /add/
func (cc *CustomerController) NewCustomerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_new_form.html", gin.H{})
}

// CreateCustomer -> POST /add/
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var form customerForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RenderError(c, &models.ValidationError{Message: err.Error()})
		return
	}

	customer := models.Customer{
		FirstName:  form.FirstName,
		MiddleName: form.MiddleName,
		LastName:   form.LastName,
		Phone:      form.Phone,
		Notes:      form.Notes,
	}
	if err := customer.Save(cc.DB); err != nil {
		utils.RenderError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/%d/", customer.ID))
}

// ShowCustomer -> GET /:id/
func (cc *CustomerController) ShowCustomer(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	customer, err := models.GetCustomer(cc.DB, id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	reservations, err := customer.GetReservations(cc.DB)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_detail.html", gin.H{
		"Customer":     customer,
		"Reservations": reservations,
	})
}

// EditCustomerForm -> GET /:id/edit/
func (cc *CustomerController) EditCustomerForm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	customer, err := models.GetCustomer(cc.DB, id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_edit_form.html", gin.H{"Customer": customer})
}

// UpdateCustomer -> POST /:id/edit/
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	var form customerForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RenderError(c, &models.ValidationError{Message: err.Error()})
		return
	}

	customer, err := models.GetCustomer(cc.DB, id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	customer.FirstName = form.FirstName
	customer.MiddleName = form.MiddleName
	customer.LastName = form.LastName
	customer.Phone = form.Phone
	customer.Notes = form.Notes
	if err := customer.Save(cc.DB); err != nil {
		utils.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/%d/", customer.ID))
}

// DeleteCustomerForm -> GET /:id/delete/
func (cc *CustomerController) DeleteCustomerForm(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	customer, err := models.GetCustomer(cc.DB, id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_delete_form.html", gin.H{"Customer": customer})
}

// DeleteCustomer -> POST /:id/delete/
// Removes the customer and, with them, all their reservations.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	customer, err := models.GetCustomer(cc.DB, id)
	if err != nil {
		utils.RenderError(c, err)
		return
	}

	if err := customer.Delete(cc.DB); err != nil {
		utils.RenderError(c, err)
		return
	}

	utils.InfoLogger.Printf("Customer %d deleted", customer.ID)
	c.Redirect(http.StatusFound, "/")
}
