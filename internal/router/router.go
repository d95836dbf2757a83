package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	Sync(c *ginext.Context)
	ListConflicts(c *ginext.Context)
	NotifyConflicts(c *ginext.Context)
	IgnoreConflict(c *ginext.Context)
	UnignoreConflict(c *ginext.Context)
	LinkEvents(c *ginext.Context)
	UnlinkEvents(c *ginext.Context)
	AreGrouped(c *ginext.Context)
	MonthGrid(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Reconciliation
		api.POST("/sync", h.Sync)

		// Conflicts
		api.GET("/conflicts", h.ListConflicts)
		api.POST("/conflicts/notify", h.NotifyConflicts)
		api.POST("/conflicts/ignore", h.IgnoreConflict)
		api.POST("/conflicts/unignore", h.UnignoreConflict)

		// Event linking
		api.POST("/events/link", h.LinkEvents)
		api.POST("/events/unlink", h.UnlinkEvents)
		api.GET("/events/grouped", h.AreGrouped)

		// Availability grid
		api.GET("/calendar/:year/:month", h.MonthGrid)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
