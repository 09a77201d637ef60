package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	catalogUsecase "github.com/johnquangdev/virtual-office/internal/usecase/catalog"
)

// LLM exposes the advisory provider and model catalog
type LLM struct {
	catalogService *catalogUsecase.Service
	logger         *zap.Logger
}

// NewLLMHandler creates a new LLM catalog handler
func NewLLMHandler(catalogService *catalogUsecase.Service, logger *zap.Logger) *LLM {
	return &LLM{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListProviders handles GET /llm/providers
// @Summary      List configured providers and their models
// @Description  Advisory catalog; an unreachable backend reports an empty model list
// @Tags         LLM
// @Produce      json
// @Success      200  {array}  catalog.ProviderInfo
// @Router       /llm/providers [get]
func (h *LLM) ListProviders(c echo.Context) error {
	infos := h.catalogService.ListProviders(c.Request().Context())
	return HandleSuccess(h.logger, c, http.StatusOK, infos)
}
