package product

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/shop-microservices/internal/validation"
	"github.com/gin-gonic/gin"
)

// Config groups dependencies for the product handlers.
type Config struct {
	Store Store
	Log   *slog.Logger
}

// RegisterRoutes registers the product service routes.
func RegisterRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Product service"})
	})

	r.POST("/product", func(c *gin.Context) {
		var req validation.ProductCreateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		id, err := cfg.Store.Create(c.Request.Context(), req.Name, req.Price, req.StockLeft)
		if err != nil {
			cfg.Log.Error("create product", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	// Batched lookup used by the order service. Strict all-or-nothing:
	// any missing id fails the whole call.
	r.POST("/product/getlist", func(c *gin.Context) {
		var req validation.ProductListRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		products, err := cfg.Store.GetByIDs(c.Request.Context(), req.IDs)
		if err != nil {
			cfg.Log.Error("get products", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch products"})
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"detail": "No products found for the given IDs"})
			return
		}

		found := make(map[int64]bool, len(products))
		for _, p := range products {
			found[p.ID] = true
		}
		var missing []int64
		for _, id := range req.IDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			c.JSON(http.StatusNotFound, gin.H{
				"detail": fmt.Sprintf("Products not found for the following IDs: %v", missing),
			})
			return
		}

		c.JSON(http.StatusOK, products)
	})

	r.GET("/product/:product_id", func(c *gin.Context) {
		id, ok := pathID(c, "product_id")
		if !ok {
			return
		}

		p, err := cfg.Store.Get(c.Request.Context(), id)
		if err != nil {
			cfg.Log.Error("get product", "product_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch product"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.PUT("/product/:product_id", func(c *gin.Context) {
		id, ok := pathID(c, "product_id")
		if !ok {
			return
		}

		var req validation.StockUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		p, err := cfg.Store.AdjustStock(c.Request.Context(), id, req.AddAmount)
		if errors.Is(err, ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "stock is not enough for this order"})
			return
		}
		if err != nil {
			cfg.Log.Error("adjust stock", "product_id", id, "delta", req.AddAmount, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update product"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
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
