package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lunchly/lunchly-app/controllers"
	"github.com/lunchly/lunchly-app/middlewares"
	"github.com/lunchly/lunchly-app/templates"
	"gorm.io/gorm"
)

// SetupRouter wires the route table. Note the meaning of :id shifts per
// route: it is a customer id everywhere except the edit-res routes, where
// it names a reservation — the views link it that way.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	customerCtrl := controllers.NewCustomerController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/", customerCtrl.ListCustomers)
	r.GET("/add/", customerCtrl.NewCustomerForm)
	r.POST("/add/", customerCtrl.CreateCustomer)
	r.GET("/top/", customerCtrl.TopCustomers)

	r.GET("/:id/", customerCtrl.ShowCustomer)
	r.GET("/:id/edit/", customerCtrl.EditCustomerForm)
	r.POST("/:id/edit/", customerCtrl.UpdateCustomer)
	r.GET("/:id/delete/", customerCtrl.DeleteCustomerForm)
	r.POST("/:id/delete/", customerCtrl.DeleteCustomer)

	r.POST("/:id/add-reservation/", reservationCtrl.CreateReservation)
	r.GET("/:id/edit-res/", reservationCtrl.EditReservationForm)
	r.POST("/:id/edit-res/", reservationCtrl.UpdateReservation)
	r.POST("/:id/delete-reservation/", reservationCtrl.DeleteReservation)

	return r
}
