package handler

import (
	"net/http"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/logger"
	"github.com/osse101/GearRepair_Go/internal/repairkit"
)

// DefaultGearRepairEfficiency is used when a registration omits the efficiency
const DefaultGearRepairEfficiency = 1.0

// RegisterGearRequest represents the request to register damageable gear
type RegisterGearRequest struct {
	Name             string   `json:"name" validate:"max=100,excludesall=\x00\n\r\t"`
	GearType         string   `json:"gear_type" validate:"required,max=50"`
	Damage           int      `json:"damage" validate:"gte=0,ltefield=MaxDamage"`
	MaxDamage        int      `json:"max_damage" validate:"required,gt=0"`
	RepairEfficiency *float64 `json:"repair_efficiency,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// DirectRepairRequest represents a repair with loose material instead of a kit
type DirectRepairRequest struct {
	Material   string `json:"material" validate:"required,max=100,material_key"`
	Form       string `json:"form,omitempty" validate:"material_form"`
	Count      int    `json:"count,omitempty" validate:"gte=0,max=64"`
	RepairType string `json:"repair_type,omitempty" validate:"repair_type"`
	Preview    bool   `json:"preview,omitempty"`
}

// GearHandler handles gear HTTP requests
type GearHandler struct {
	svc repairkit.Service
}

// NewGearHandler creates a new gear handler
func NewGearHandler(svc repairkit.Service) *GearHandler {
	return &GearHandler{svc: svc}
}

// HandleRegisterGear registers a gear item
// @Summary Register gear
// @Description Register a damageable gear item so it can be repaired
// @Tags gear
// @Accept json
// @Produce json
// @Param request body RegisterGearRequest true "Gear details"
// @Success 201 {object} domain.Gear
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /gear [post]
func (h *GearHandler) HandleRegisterGear(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterGearRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register gear"); err != nil {
		return
	}

	efficiency := DefaultGearRepairEfficiency
	if req.RepairEfficiency != nil {
		efficiency = *req.RepairEfficiency
	}

	log.Info(LogMsgRegisterGearRequest, "name", req.Name, "gear_type", req.GearType)

	gear, err := h.svc.RegisterGear(r.Context(), &domain.Gear{
		Name:             req.Name,
		GearType:         req.GearType,
		Damage:           req.Damage,
		MaxDamage:        req.MaxDamage,
		RepairEfficiency: efficiency,
	})
	if err != nil {
		log.Error(ErrMsgRegisterGearFailed, "error", err, "gear_type", req.GearType)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, gear)
}

// HandleGetGear returns a gear item
// @Summary Get gear
// @Tags gear
// @Produce json
// @Param gearID path string true "Gear ID"
// @Success 200 {object} domain.Gear
// @Failure 404 {object} ErrorResponse "Gear not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /gear/{gearID} [get]
func (h *GearHandler) HandleGetGear(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	gearID, ok := GetPathParam(r, w, "gearID")
	if !ok {
		return
	}

	log.Debug(LogMsgGetGearRequest, "gear_id", gearID)

	gear, err := h.svc.GetGear(r.Context(), gearID)
	if err != nil {
		log.Error(ErrMsgGetGearFailed, "error", err, "gear_id", gearID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gear)
}

// HandleDirectRepair repairs gear with loose material
// @Summary Repair gear with material
// @Description Repairs gear with material held outside a kit, using the repair type's configured factor as efficiency. Set preview to compute the plan only.
// @Tags gear
// @Accept json
// @Produce json
// @Param gearID path string true "Gear ID"
// @Param request body DirectRepairRequest true "Material and repair type"
// @Success 200 {object} repairkit.DirectRepairResult
// @Failure 400 {object} ErrorResponse "Invalid request or unknown material"
// @Failure 403 {object} ErrorResponse "Repair type disabled"
// @Failure 404 {object} ErrorResponse "Gear not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /gear/{gearID}/repair [post]
func (h *GearHandler) HandleDirectRepair(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	gearID, ok := GetPathParam(r, w, "gearID")
	if !ok {
		return
	}

	var req DirectRepairRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Direct repair"); err != nil {
		return
	}
	repairType, ok := parseRepairType(w, req.RepairType)
	if !ok {
		return
	}
	count := countOrDefault(req.Count)
	form := parseForm(req.Form)

	log.Info(LogMsgDirectRepairRequest,
		"gear_id", gearID,
		"material", req.Material,
		"count", count,
		"repair_type", repairType,
		"preview", req.Preview)

	result, err := h.svc.DirectRepair(r.Context(), gearID, req.Material, form, count, repairType, !req.Preview)
	if err != nil {
		log.Error(ErrMsgDirectRepairFailed, "error", err, "gear_id", gearID, "material", req.Material)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
