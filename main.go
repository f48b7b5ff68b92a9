// Package main book catalog API.
//
// @title           Book Catalog API
// @version         1.0
// @description     book catalog service (books, reservations).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Mattox0/tp02-MethodoTest/app/echoServer"
	bookctrl "github.com/Mattox0/tp02-MethodoTest/app/echoServer/controller/book"
	reservationctrl "github.com/Mattox0/tp02-MethodoTest/app/echoServer/controller/reservation"
	"github.com/Mattox0/tp02-MethodoTest/app/echoServer/validation"
	"github.com/Mattox0/tp02-MethodoTest/config"
	bookrepo "github.com/Mattox0/tp02-MethodoTest/repository/book"
	booksvc "github.com/Mattox0/tp02-MethodoTest/service/book"
	reservationsvc "github.com/Mattox0/tp02-MethodoTest/service/reservation"
	"github.com/Mattox0/tp02-MethodoTest/util/database"
	"github.com/Mattox0/tp02-MethodoTest/util/events"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// events (optional)
	var pub events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, log)
		if err != nil {
			log.Error("amqp connect failed", "err", err)
			os.Exit(1)
		}
		defer p.Close()
		pub = p
	}

	// repos
	br := bookrepo.New(db)

	// services
	bs := booksvc.New(br, pub)
	rs := reservationsvc.New(br, pub)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	reservationC := &reservationctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Book:        bookC,
		Reservation: reservationC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
