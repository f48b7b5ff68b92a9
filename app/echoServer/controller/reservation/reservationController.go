package reservation

import (
	"log/slog"
	"net/http"
	"strconv"

	rs "github.com/Mattox0/tp02-MethodoTest/service/reservation"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /books/reserved/:id
func (h *Controller) Reserve(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.Reserve(c.Request().Context(), id); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case rs.ErrAlreadyReserved:
			return c.JSON(http.StatusConflict, echo.Map{"message": "book is already reserved"})
		default:
			h.Log.Error("book reserve error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reserved"})
}
