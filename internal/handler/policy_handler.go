package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/obolus/obolus-backend/internal/domain"
	"github.com/obolus/obolus-backend/internal/policy"
	"github.com/rs/zerolog/log"
)

// PolicyHandler handles policy HTTP requests
type PolicyHandler struct {
	loader *policy.Loader
}

// NewPolicyHandler creates a new PolicyHandler
func NewPolicyHandler(loader *policy.Loader) *PolicyHandler {
	return &PolicyHandler{
		loader: loader,
	}
}

// PolicyListResponse represents the JSON response listing loadable policies
type PolicyListResponse struct {
	Policies []string `json:"policies"`
	Required []string `json:"required"`
}

// List returns the names of the currently loadable policies alongside the
// fixed required list. Policies are read fresh from disk on every request.
func (h *PolicyHandler) List(c echo.Context) error {
	policies, err := h.loader.Load()
	if err != nil {
		log.Error().Err(err).Str("dir", h.loader.Dir()).Msg("Failed to load policies")
		return NewBadGatewayError(c, "Failed to load policies")
	}

	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)

	return c.JSON(http.StatusOK, PolicyListResponse{
		Policies: names,
		Required: domain.RequiredPolicies(),
	})
}
