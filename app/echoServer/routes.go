package echoServer

import (
	"github.com/Mattox0/tp02-MethodoTest/app/echoServer/controller/book"
	"github.com/Mattox0/tp02-MethodoTest/app/echoServer/controller/reservation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type C struct {
	Book        *book.Controller
	Reservation *reservation.Controller
}

func Register(e *echo.Echo, c C) {
	// Books
	e.GET("/books", c.Book.List)
	e.POST("/books", c.Book.Create)
	e.GET("/books/:id", c.Book.Detail)

	// Reservation
	e.POST("/books/reserved/:id", c.Reservation.Reserve)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
