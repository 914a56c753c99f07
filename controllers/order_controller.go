package controllers

import (
	"errors"

	"chickenpos/entity"
	"chickenpos/pkg/resp"
	"chickenpos/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders    *services.OrderService
	Queue     *services.QueueService
	Analytics *services.AnalyticsService
}

func NewOrderController(orders *services.OrderService, queue *services.QueueService, analytics *services.AnalyticsService) *OrderController {
	return &OrderController{Orders: orders, Queue: queue, Analytics: analytics}
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "unknown status: "+req.Status)
		return
	}

	order, err := oc.Orders.UpdateStatus(c.Param("id"), status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/queue-stats
func (oc *OrderController) QueueStats(c *gin.Context) {
	stats, err := oc.Queue.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/analytics
func (oc *OrderController) AnalyticsSummary(c *gin.Context) {
	summary, err := oc.Analytics.Summary()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
