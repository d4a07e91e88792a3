package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/base-identity/identity-indexer/internal/api/rest/dto"
	"github.com/base-identity/identity-indexer/internal/domain"
	"github.com/base-identity/identity-indexer/internal/store"
	"github.com/base-identity/identity-indexer/internal/workflows"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetIdentity retrieves the stored identity for an address
	// GET /api/v1/identities/:address
	GetIdentity(c *gin.Context)

	// AnalyzeIdentity runs the analysis pipeline for an address
	// POST /api/v1/identities/:address/analyze?force=true
	AnalyzeIdentity(c *gin.Context)

	// MintIdentity records the mint transaction for an address (requires API key)
	// POST /api/v1/identities/:address/mint
	MintIdentity(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	workflow workflows.IdentityWorkflow
	store    store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(workflow workflows.IdentityWorkflow, s store.Store) Handler {
	return &handler{
		workflow: workflow,
		store:    s,
	}
}

// GetIdentity retrieves the stored identity for an address
func (h *handler) GetIdentity(c *gin.Context) {
	address := c.Param("address")
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid wallet address")
		return
	}

	identity, err := h.store.GetIdentity(c.Request.Context(), domain.ChecksumAddress(address))
	if err != nil {
		respondInternalError(c, err, "Failed to get identity", zap.String("address", address))
		return
	}
	if identity == nil {
		respondNotFound(c, domain.ErrIdentityNotFound.Error())
		return
	}

	result, err := identity.ToResult()
	if err != nil {
		respondInternalError(c, err, "Failed to map identity", zap.String("address", address))
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeIdentity runs the analysis pipeline for an address
func (h *handler) AnalyzeIdentity(c *gin.Context) {
	address := c.Param("address")
	force := c.Query("force") == "true"

	result, err := h.workflow.Run(c.Request.Context(), address, force)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAddress):
			respondBadRequest(c, "Invalid wallet address")
		case errors.Is(err, domain.ErrProviderUnavailable):
			respondServiceUnavailable(c, "Chain data provider unavailable")
		case errors.Is(err, domain.ErrDataFetch):
			respondServiceUnavailable(c, "Failed to fetch wallet data")
		default:
			respondInternalError(c, err, "Analysis failed", zap.String("address", address))
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// MintIdentity records the mint transaction for an address
func (h *handler) MintIdentity(c *gin.Context) {
	address := c.Param("address")
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid wallet address")
		return
	}
	checksummed := domain.ChecksumAddress(address)

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	found, err := h.store.MarkMinted(c.Request.Context(), checksummed, req.TxHash)
	if err != nil {
		respondInternalError(c, err, "Failed to mark minted", zap.String("address", checksummed))
		return
	}
	if !found {
		respondNotFound(c, domain.ErrIdentityNotFound.Error())
		return
	}

	identity, err := h.store.GetIdentity(c.Request.Context(), checksummed)
	if err != nil || identity == nil {
		respondInternalError(c, err, "Failed to re-read identity", zap.String("address", checksummed))
		return
	}

	result, err := identity.ToResult()
	if err != nil {
		respondInternalError(c, err, "Failed to map identity", zap.String("address", checksummed))
		return
	}

	c.JSON(http.StatusOK, result)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "identity-indexer-api",
	})
}
