package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dosewise/backend/internal/domain"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Evaluator is the evaluation use case the handlers serve
type Evaluator interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Costs(ctx context.Context) ([]domain.IngredientCost, error)
	Evaluate(ctx context.Context, request *domain.EvaluationRequest) (*domain.ProductEvaluation, error)
	Rank(ctx context.Context, ingredients []string) ([]domain.ProductEvaluation, error)
	SuggestProducts(ctx context.Context, name string) []string
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	evaluator Evaluator
	logger    *slog.Logger
}

// NewHandler creates a new HTTP handler. A nil evaluator makes the API endpoints answer 503.
func NewHandler(evaluator Evaluator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		evaluator: evaluator,
		logger:    logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dosewise-backend",
		"version": Version,
	})
}

// ListProducts returns every product of the catalog in file order
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	products, err := h.evaluator.Products(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to load products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ListCosts returns the inferred cost per mg of every ingredient, sorted by name
func (h *Handler) ListCosts(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	costs, err := h.evaluator.Costs(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to infer costs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"costs": costs,
		"count": len(costs),
	})
}

// EvaluateProduct handles product evaluation requests
func (h *Handler) EvaluateProduct(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var request domain.EvaluationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   domain.ErrInvalidRequest.Error(),
			"details": err.Error(),
		})
		return
	}

	eval, err := h.evaluator.Evaluate(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":       err.Error(),
				"suggestions": h.evaluator.SuggestProducts(c.Request.Context(), request.Product),
			})
		case errors.Is(err, domain.ErrInvalidServings):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.internalError(c, "failed to evaluate product", err)
		}
		return
	}

	c.JSON(http.StatusOK, eval)
}

// RankProducts returns every product ordered by cost-effectiveness, best first.
// Repeated ?ingredient= parameters restrict the analysis to those ingredients.
func (h *Handler) RankProducts(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	ingredients := c.QueryArray("ingredient")
	rankings, err := h.evaluator.Rank(c.Request.Context(), ingredients)
	if err != nil {
		h.internalError(c, "failed to rank products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rankings":    rankings,
		"count":       len(rankings),
		"ingredients": ingredients,
	})
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.evaluator != nil {
		return true
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error": "evaluation service not configured",
	})
	return false
}

func (h *Handler) internalError(c *gin.Context, message string, err error) {
	h.logger.Error(message, "error", err, "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
