// Package echo provides adapters for using whynot-errors with the
// Echo framework.
package echo

import (
	"net/http"

	echofw "github.com/labstack/echo/v4"
	whynoterrors "github.com/whynotavailable/whynot-errors"
)

// RequestID adapts whynot-errors request ID middleware to Echo's
// middleware interface.
//
// This generates or propagates request IDs and makes them available
// via whynoterrors.RequestIDFromRequest(c.Request()).
//
// Example:
//
//	e := echo.New()
//	e.Use(RequestID)
func RequestID(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		handler := whynoterrors.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.SetRequest(r)
			_ = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return nil
	}
}

// Write sends the error's status and bare message as the response.
//
// Example:
//
//	e.GET("/user/:id", func(c echo.Context) error {
//	    if c.Param("id") == "" {
//	        return Write(c, whynoterrors.NotFound())
//	    }
//	    // ...
//	    return nil
//	})
func Write(c echofw.Context, err error) error {
	whynoterrors.Write(c.Response().Writer, c.Request(), err)
	return nil
}

// JSON renders a JSONResult through Echo's writer.
func JSON[T any](c echofw.Context, res whynoterrors.JSONResult[T]) error {
	whynoterrors.WriteJSON(c.Response().Writer, c.Request(), res)
	return nil
}

// HTML renders an HTMLResult through Echo's writer.
func HTML(c echofw.Context, res whynoterrors.HTMLResult) error {
	whynoterrors.WriteHTML(c.Response().Writer, c.Request(), res)
	return nil
}
