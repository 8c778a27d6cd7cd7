package order

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/shop-microservices/internal/clients"
	"github.com/example/shop-microservices/internal/validation"
	"github.com/gin-gonic/gin"
)

// Config groups dependencies for the order handlers.
type Config struct {
	Service *Service
	Log     *slog.Logger
}

// RegisterRoutes registers the order service routes.
func RegisterRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Order service"})
	})

	r.POST("/order", func(c *gin.Context) {
		var req validation.OrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		lines := make([]Line, 0, len(req.Items))
		for _, it := range req.Items {
			lines = append(lines, Line{ProductID: it.ProductID, Number: it.Number})
		}

		o, err := cfg.Service.CreateOrder(c.Request.Context(), req.UserID, lines)
		if err != nil {
			writeOrderError(c, cfg.Log, err)
			return
		}
		c.JSON(http.StatusOK, o)
	})

	r.GET("/order/items/:order_id", func(c *gin.Context) {
		id, ok := pathID(c, "order_id")
		if !ok {
			return
		}

		items, err := cfg.Service.GetOrderItems(c.Request.Context(), id)
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Items not found"})
			return
		}
		if err != nil {
			cfg.Log.Error("get order items", "order_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch order items"})
			return
		}
		c.JSON(http.StatusOK, items)
	})

	r.GET("/order/:order_id", func(c *gin.Context) {
		id, ok := pathID(c, "order_id")
		if !ok {
			return
		}

		o, err := cfg.Service.GetOrder(c.Request.Context(), id)
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
			return
		}
		if err != nil {
			cfg.Log.Error("get order", "order_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, o)
	})
}

// writeOrderError maps orchestration failures onto the HTTP surface:
// shortfalls are 400s, upstream HTTP errors keep their status code, and
// transport failures become 500s.
func writeOrderError(c *gin.Context, log *slog.Logger, err error) {
	var stock *InsufficientStockError
	if errors.As(err, &stock) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": stock.Error()})
		return
	}

	var status *clients.StatusError
	if errors.As(err, &status) {
		c.JSON(status.Code, gin.H{"detail": status.Error()})
		return
	}

	var comm *clients.CommError
	if errors.As(err, &comm) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": comm.Error()})
		return
	}

	log.Error("create order", "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create order"})
}

func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + param})
		return 0, false
	}
	return id, true
}
