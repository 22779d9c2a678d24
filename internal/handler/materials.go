package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/GearRepair_Go/internal/logger"
	"github.com/osse101/GearRepair_Go/internal/material"
)

// MaterialLister lists the catalog's material definitions
type MaterialLister interface {
	Materials() []material.Def
}

// MaterialsResponse is the catalog listing
type MaterialsResponse struct {
	Materials []material.Def `json:"materials"`
	Count     int            `json:"count"`
}

// HandleListMaterials lists the materials a kit accepts
// @Summary List materials
// @Description Lists the material catalog, optionally filtered by tier
// @Tags materials
// @Produce json
// @Param tier query int false "Only materials of this tier"
// @Success 200 {object} MaterialsResponse
// @Failure 400 {object} ErrorResponse "Invalid tier"
// @Security ApiKeyAuth
// @Router /materials [get]
func HandleListMaterials(catalog MaterialLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		defs := catalog.Materials()

		if tierParam := GetOptionalQueryParam(r, "tier", ""); tierParam != "" {
			tier, err := strconv.Atoi(tierParam)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidTierParam)
				return
			}
			filtered := make([]material.Def, 0, len(defs))
			for _, def := range defs {
				if def.Tier == tier {
					filtered = append(filtered, def)
				}
			}
			defs = filtered
		}

		log.Debug(LogMsgListMaterials, "count", len(defs))
		respondJSON(w, http.StatusOK, MaterialsResponse{Materials: defs, Count: len(defs)})
	}
}
