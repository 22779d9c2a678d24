package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/logger"
	"github.com/osse101/GearRepair_Go/internal/repairkit"
)

// CreateKitRequest represents the request to create an empty repair kit
type CreateKitRequest struct {
	Tier string `json:"tier" validate:"required,max=50"`
}

// AddMaterialRequest represents the request to store material in a kit
type AddMaterialRequest struct {
	Material string `json:"material" validate:"required,max=100,material_key"`
	Form     string `json:"form,omitempty" validate:"material_form"`
	Count    int    `json:"count,omitempty" validate:"gte=0,max=64"`
}

// RepairRequest represents a kit repair or repair preview
type RepairRequest struct {
	GearID     string `json:"gear_id" validate:"required,max=64"`
	RepairType string `json:"repair_type,omitempty" validate:"repair_type"`
}

// RepairKitHandler handles repair kit HTTP requests
type RepairKitHandler struct {
	svc repairkit.Service
}

// NewRepairKitHandler creates a new repair kit handler
func NewRepairKitHandler(svc repairkit.Service) *RepairKitHandler {
	return &RepairKitHandler{svc: svc}
}

// HandleCreateKit creates an empty repair kit
// @Summary Create repair kit
// @Description Create an empty repair kit of the given tier
// @Tags kits
// @Accept json
// @Produce json
// @Param request body CreateKitRequest true "Kit tier"
// @Success 201 {object} repairkit.KitView
// @Failure 400 {object} ErrorResponse "Invalid request or unknown tier"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /kits [post]
func (h *RepairKitHandler) HandleCreateKit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateKitRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create kit"); err != nil {
		return
	}

	log.Info(LogMsgCreateKitRequest, "tier", req.Tier)

	kit, err := h.svc.CreateKit(r.Context(), req.Tier)
	if err != nil {
		log.Error(ErrMsgCreateKitFailed, "error", err, "tier", req.Tier)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, kit)
}

// HandleGetKit returns the contents of a repair kit
// @Summary Get repair kit
// @Description Returns capacity, fill level, efficiency and stored materials in consumption order
// @Tags kits
// @Produce json
// @Param kitID path string true "Kit ID"
// @Success 200 {object} repairkit.KitView
// @Failure 404 {object} ErrorResponse "Kit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /kits/{kitID} [get]
func (h *RepairKitHandler) HandleGetKit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	kitID, ok := GetPathParam(r, w, "kitID")
	if !ok {
		return
	}

	log.Debug(LogMsgGetKitRequest, "kit_id", kitID)

	kit, err := h.svc.GetKit(r.Context(), kitID)
	if err != nil {
		log.Error(ErrMsgGetKitFailed, "error", err, "kit_id", kitID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, kit)
}

// HandleAddMaterial stores material in a repair kit
// @Summary Add material to kit
// @Description Adds up to count units of a material. Units that do not fit are reported as rejected.
// @Tags kits
// @Accept json
// @Produce json
// @Param kitID path string true "Kit ID"
// @Param request body AddMaterialRequest true "Material to add"
// @Success 200 {object} repairkit.AddMaterialResult
// @Failure 400 {object} ErrorResponse "Invalid request or unknown material"
// @Failure 404 {object} ErrorResponse "Kit not found"
// @Failure 409 {object} ErrorResponse "Kit is full"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /kits/{kitID}/materials [post]
func (h *RepairKitHandler) HandleAddMaterial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	kitID, ok := GetPathParam(r, w, "kitID")
	if !ok {
		return
	}

	var req AddMaterialRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add material"); err != nil {
		return
	}
	count := countOrDefault(req.Count)
	form := parseForm(req.Form)

	log.Info(LogMsgAddMaterialRequest, "kit_id", kitID, "material", req.Material, "form", form, "count", count)

	result, err := h.svc.AddMaterial(r.Context(), kitID, req.Material, form, count)
	if err != nil {
		log.Error(ErrMsgAddMaterialFailed, "error", err, "kit_id", kitID, "material", req.Material)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePreviewRepair computes a repair plan without applying it
// @Summary Preview kit repair
// @Description Returns the materials a repair would consume and the durability it would restore
// @Tags kits
// @Accept json
// @Produce json
// @Param kitID path string true "Kit ID"
// @Param request body RepairRequest true "Gear and repair type"
// @Success 200 {object} domain.RepairPlan
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Repair type disabled"
// @Failure 404 {object} ErrorResponse "Kit or gear not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /kits/{kitID}/repair/preview [post]
func (h *RepairKitHandler) HandlePreviewRepair(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	kitID, ok := GetPathParam(r, w, "kitID")
	if !ok {
		return
	}

	var req RepairRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview repair"); err != nil {
		return
	}
	repairType, ok := parseRepairType(w, req.RepairType)
	if !ok {
		return
	}

	log.Debug(LogMsgPreviewRequest, "kit_id", kitID, "gear_id", req.GearID, "repair_type", repairType)

	plan, err := h.svc.PreviewRepair(r.Context(), kitID, req.GearID, repairType)
	if err != nil {
		log.Error(ErrMsgPreviewRepairFailed, "error", err, "kit_id", kitID, "gear_id", req.GearID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// HandleRepair repairs gear with the contents of a kit
// @Summary Repair gear from kit
// @Description Consumes kit materials, lowest tier first, and removes the restored damage from the gear
// @Tags kits
// @Accept json
// @Produce json
// @Param kitID path string true "Kit ID"
// @Param request body RepairRequest true "Gear and repair type"
// @Success 200 {object} repairkit.RepairResult
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Repair type disabled"
// @Failure 404 {object} ErrorResponse "Kit or gear not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /kits/{kitID}/repair [post]
func (h *RepairKitHandler) HandleRepair(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	kitID, ok := GetPathParam(r, w, "kitID")
	if !ok {
		return
	}

	var req RepairRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Repair"); err != nil {
		return
	}
	repairType, ok := parseRepairType(w, req.RepairType)
	if !ok {
		return
	}

	log.Info(LogMsgRepairRequest, "kit_id", kitID, "gear_id", req.GearID, "repair_type", repairType)

	result, err := h.svc.Repair(r.Context(), kitID, req.GearID, repairType)
	if err != nil {
		log.Error(ErrMsgRepairFailed, "error", err, "kit_id", kitID, "gear_id", req.GearID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// countOrDefault treats a missing count as a single unit
func countOrDefault(count int) int {
	if count == 0 {
		return 1
	}
	return count
}

// parseRepairType resolves the request's repair type and responds 400 when it is unknown
func parseRepairType(w http.ResponseWriter, raw string) (domain.RepairContextType, bool) {
	repairType, err := domain.ParseRepairContextType(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return repairType, true
}

func parseForm(form string) domain.MaterialForm {
	if form == "" {
		return domain.MaterialFormItem
	}
	return domain.MaterialForm(strings.ToLower(form))
}
