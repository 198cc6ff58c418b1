// Package gin provides adapters for using whynot-errors with the
// Gin framework.
package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	whynoterrors "github.com/whynotavailable/whynot-errors"
)

// RequestID wires whynot-errors request ID middleware into Gin's
// middleware chain.
//
// This generates or propagates request IDs and makes them available
// via whynoterrors.RequestIDFromRequest(c.Request).
//
// Example:
//
//	r := gin.Default()
//	r.Use(RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		handler := whynoterrors.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Write sends the error's status and bare message as the response.
//
// Example:
//
//	r.GET("/user/:id", func(c *gin.Context) {
//	    if c.Param("id") == "" {
//	        Write(c, whynoterrors.NotFound())
//	        return
//	    }
//	    // ...
//	})
func Write(c *gin.Context, err error) {
	whynoterrors.Write(c.Writer, c.Request, err)
}

// JSON renders a JSONResult through Gin's writer.
func JSON[T any](c *gin.Context, res whynoterrors.JSONResult[T]) {
	whynoterrors.WriteJSON(c.Writer, c.Request, res)
}

// HTML renders an HTMLResult through Gin's writer.
func HTML(c *gin.Context, res whynoterrors.HTMLResult) {
	whynoterrors.WriteHTML(c.Writer, c.Request, res)
}
