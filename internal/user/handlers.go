package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/shop-microservices/internal/validation"
	"github.com/gin-gonic/gin"
)

// Config groups dependencies for the user handlers.
type Config struct {
	Store Store
	Log   *slog.Logger
}

// RegisterRoutes registers the user service routes.
func RegisterRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "User service"})
	})

	r.POST("/user", func(c *gin.Context) {
		var req validation.UserCreateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		id, err := cfg.Store.Create(c.Request.Context(), req.Name, req.Orders)
		if err != nil {
			cfg.Log.Error("create user", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	r.GET("/user/:user_id", func(c *gin.Context) {
		id, ok := pathID(c, "user_id")
		if !ok {
			return
		}

		u, err := cfg.Store.Get(c.Request.Context(), id)
		if err != nil {
			cfg.Log.Error("get user", "user_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch user"})
			return
		}
		if u == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	})

	r.PUT("/user/:user_id", func(c *gin.Context) {
		id, ok := pathID(c, "user_id")
		if !ok {
			return
		}

		var req validation.UserOrderUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		u, err := cfg.Store.AppendOrder(c.Request.Context(), id, req.OrderID)
		if err != nil {
			cfg.Log.Error("append order", "user_id", id, "order_id", req.OrderID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update user"})
			return
		}
		if u == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	})
}

func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + param})
		return 0, false
	}
	return id, true
}
