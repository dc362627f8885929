package rest

import (
	"context"
	"errors"
	"net/http"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendService interface {
		Recommend(ctx context.Context, customerID uint, topN int) ([]domain.Recommendation, domain.RecommendationMeta, error)
	}

	ChartService interface {
		Build(recs []domain.Recommendation, products []domain.Product) (*domain.ChartData, error)
	}

	ProductSource interface {
		Products(ctx context.Context) ([]domain.Product, error)
	}

	// ResultCache is optional; nil disables caching.
	ResultCache interface {
		Get(ctx context.Context, customerID uint, topN int) (*domain.RecommendationResult, bool, error)
		Set(ctx context.Context, result *domain.RecommendationResult, topN int) error
	}

	// ArtifactWriter is optional; nil disables the last-result file.
	ArtifactWriter interface {
		Save(result *domain.RecommendationResult) error
	}

	RecommendHandler struct {
		validate *validator.Validate
		service  RecommendService
		chart    ChartService
		products ProductSource
		cache    ResultCache
		artifact ArtifactWriter
	}

	RecommendRequest struct {
		CustomerID uint `json:"customer_id" validate:"required,min=1"`
		N          int  `json:"n"`
	}
)

func NewRecommendHandler(
	service RecommendService,
	chart ChartService,
	products ProductSource,
	cache ResultCache,
	artifact ArtifactWriter,
) *RecommendHandler {
	return &RecommendHandler{
		validate: validator.New(),
		service:  service,
		chart:    chart,
		products: products,
		cache:    cache,
		artifact: artifact,
	}
}

// Recommend serves POST /api/v1/recommend: runs the pipeline for one
// customer and returns the ranked list plus the chart payload.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	metrics.RecommendRequests.Inc()
	timer := prometheus.NewTimer(metrics.RecommendLatency)
	defer timer.ObserveDuration()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if req.N <= 0 {
		req.N = 3
	}

	ctx := c.Request().Context()

	if h.cache != nil {
		cached, ok, err := h.cache.Get(ctx, req.CustomerID, req.N)
		if err != nil {
			logger.Warn("result cache read failed", "error", err)
		} else if ok {
			metrics.RecommendCacheHits.Inc()
			return c.JSON(http.StatusOK, fres.Response.StatusOK(cached))
		}
	}

	recs, _, err := h.service.Recommend(ctx, req.CustomerID, req.N)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	products, err := h.products.Products(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	chartData, err := h.chart.Build(recs, products)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	result := &domain.RecommendationResult{
		CustomerID:      req.CustomerID,
		Recommendations: recs,
		ChartData:       chartData,
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, result, req.N); err != nil {
			logger.Warn("result cache write failed", "error", err)
		}
	}

	if h.artifact != nil {
		if err := h.artifact.Save(result); err != nil {
			logger.Warn("failed to write result artifact", "error", err)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// statusForError maps the domain error taxonomy to HTTP status codes.
func statusForError(err error) int {
	var notFound domain.NotFoundError
	var validation domain.ValidationError
	var schema domain.SchemaError
	var emptyCatalog domain.EmptyCatalogError
	var computation domain.ComputationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &schema):
		return http.StatusInternalServerError
	case errors.As(err, &emptyCatalog):
		return http.StatusInternalServerError
	case errors.As(err, &computation):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
