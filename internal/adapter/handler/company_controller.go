package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/errors"
	companyDto "github.com/johnquangdev/virtual-office/internal/adapter/dto/company"
	companyUsecase "github.com/johnquangdev/virtual-office/internal/usecase/company"
)

// Company handles company asset and knowledge base HTTP requests
type Company struct {
	companyService *companyUsecase.Service
	logger         *zap.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *companyUsecase.Service, logger *zap.Logger) *Company {
	return &Company{
		companyService: companyService,
		logger:         logger,
	}
}

// RegisterAsset handles POST /companies/:companyID/assets
// @Summary      Register a company asset
// @Description  Makes a stored file mentionable via @<asset_name> in every meeting of the company
// @Tags         Assets
// @Accept       json
// @Produce      json
// @Param        companyID  path      string                       true  "Company ID"
// @Param        request    body      company.RegisterAssetRequest true  "Asset registration"
// @Success      201  {object}  entities.CompanyAsset
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /companies/{companyID}/assets [post]
func (h *Company) RegisterAsset(c echo.Context) error {
	companyID, err := parseUUIDParam(c, "companyID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req companyDto.RegisterAssetRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	asset, err := h.companyService.RegisterAsset(c.Request().Context(), companyID, companyUsecase.RegisterAssetInput{
		AssetName:   req.AssetName,
		DisplayName: req.DisplayName,
		FilePath:    req.FilePath,
		AssetType:   req.AssetType,
		Description: req.Description,
		FileSize:    req.FileSize,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, asset)
}

// ListAssets handles GET /companies/:companyID/assets
// @Summary      List company assets
// @Tags         Assets
// @Produce      json
// @Param        companyID  path      string  true  "Company ID"
// @Success      200  {array}  entities.CompanyAsset
// @Router       /companies/{companyID}/assets [get]
func (h *Company) ListAssets(c echo.Context) error {
	companyID, err := parseUUIDParam(c, "companyID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	assets, err := h.companyService.ListAssets(c.Request().Context(), companyID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, assets)
}

// DeleteAsset handles DELETE /assets/:id
// @Summary      Delete a company asset
// @Tags         Assets
// @Produce      json
// @Param        id   path      string  true  "Asset ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /assets/{id} [delete]
func (h *Company) DeleteAsset(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.companyService.DeleteAsset(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// AddKnowledge handles POST /companies/:companyID/knowledge
// @Summary      Add a knowledge base entry
// @Tags         Knowledge
// @Accept       json
// @Produce      json
// @Param        companyID  path      string                      true  "Company ID"
// @Param        request    body      company.AddKnowledgeRequest true  "Knowledge entry"
// @Success      201  {object}  entities.Knowledge
// @Failure      400  {object}  map[string]interface{}
// @Router       /companies/{companyID}/knowledge [post]
func (h *Company) AddKnowledge(c echo.Context) error {
	companyID, err := parseUUIDParam(c, "companyID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req companyDto.AddKnowledgeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	entry, err := h.companyService.AddKnowledge(c.Request().Context(), companyID, req.Title, req.Content, req.Source)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, entry)
}

// ListKnowledge handles GET /companies/:companyID/knowledge
// @Summary      List knowledge base entries
// @Tags         Knowledge
// @Produce      json
// @Param        companyID  path      string  true   "Company ID"
// @Param        limit      query     int     false  "Page size"
// @Param        offset     query     int     false  "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /companies/{companyID}/knowledge [get]
func (h *Company) ListKnowledge(c echo.Context) error {
	companyID, err := parseUUIDParam(c, "companyID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	entries, total, err := h.companyService.ListKnowledge(c.Request().Context(), companyID, limit, offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}
