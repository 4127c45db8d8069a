package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusError is implemented by errors that carry their own HTTP status,
// such as the models package's NotFoundError and ValidationError.
type statusError interface {
	error
	Status() int
}

// RenderError is the single error path for all handlers. Errors that carry
// a status render with it; anything else becomes a 500 with a generic
// message so query text never reaches the page.
func RenderError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	message := "something went wrong"

	var se statusError
	if errors.As(err, &se) {
		code = se.Status()
		message = se.Error()
	}

	if code >= http.StatusInternalServerError && ErrorLogger != nil {
		ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.HTML(code, "error.html", gin.H{
		"Status":  code,
		"Message": message,
	})
	c.Abort()
}
