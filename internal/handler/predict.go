package handler

import (
	"context"
	"errors"
	"net/http"

	"calpredict/internal/model"
	"calpredict/internal/render"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const indexTemplate = "index.html"

// Predictor computes a rounded prediction from a feature vector
type Predictor interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// RequestView is the "request" value exposed to templates
type RequestView struct {
	Method string
	Path   string
	Form   map[string]string
}

// PredictHandler serves the prediction form and its results
type PredictHandler struct {
	predictor Predictor
	renderer  render.Renderer
	logger    *zap.Logger
}

// NewPredictHandler creates a new prediction handler
func NewPredictHandler(predictor Predictor, renderer render.Renderer, logger *zap.Logger) *PredictHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictHandler{
		predictor: predictor,
		renderer:  renderer,
		logger:    logger,
	}
}

// Index handles GET /
func (h *PredictHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, gin.H{"request": newRequestView(c)})
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	view := newRequestView(c)

	req, err := model.ParsePredictionForm(c)
	if err != nil {
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			verr = &model.ValidationError{Field: "form", Reason: err.Error()}
		}
		h.logger.Info("rejected prediction form",
			zap.String("field", verr.Field),
			zap.String("reason", verr.Reason),
		)
		h.render(c, http.StatusUnprocessableEntity, gin.H{
			"request": view,
			"error":   "Invalid input: " + verr.Error(),
		})
		return
	}

	prediction, err := h.predictor.Predict(c.Request.Context(), req.Features())
	if err != nil {
		h.logger.Error("prediction failed", zap.Error(err))
		h.render(c, http.StatusInternalServerError, gin.H{
			"request": view,
			"error":   "Prediction failed, please try again later.",
		})
		return
	}

	h.logger.Info("prediction served",
		zap.Int("age", req.Age),
		zap.Float64("duration", req.Duration),
		zap.Float64("prediction", prediction),
	)
	h.render(c, http.StatusOK, gin.H{
		"request":    view,
		"prediction": prediction,
	})
}

func (h *PredictHandler) render(c *gin.Context, status int, data gin.H) {
	body, err := h.renderer.Render(indexTemplate, data)
	if err != nil {
		h.logger.Error("template rendering failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", body)
}

// newRequestView captures the submitted form values so the page can show them again
func newRequestView(c *gin.Context) RequestView {
	view := RequestView{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Form:   make(map[string]string, len(model.FormFields)),
	}
	if c.Request.Method == http.MethodPost {
		for _, field := range model.FormFields {
			view.Form[field] = c.PostForm(field)
		}
	}
	return view
}
