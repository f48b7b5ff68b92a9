package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeAlreadyReserved = "already_reserved"
	OutcomeError           = "error"
)

var (
	BooksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookcatalog_books_created_total",
		Help: "Books added to the catalog.",
	})

	Reservations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookcatalog_reservations_total",
		Help: "Reservation attempts by outcome.",
	}, []string{"outcome"})
)
