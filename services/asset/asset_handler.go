package assetservice

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ops360/utils"
)

type AssetHandler struct {
	Service AssetService
}

func NewAssetHandler(service AssetService) *AssetHandler {
	return &AssetHandler{
		Service: service,
	}
}

func (h *AssetHandler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.ListAssets(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch assets")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

func (h *AssetHandler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	assetIDStr := r.URL.Query().Get("asset_id")
	assetID, err := uuid.Parse(assetIDStr)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	asset, err := h.Service.GetAsset(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			utils.RespondError(w, http.StatusNotFound, err, "asset not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch asset")
		return
	}

	utils.RespondJSON(w, http.StatusOK, asset)
}

// CreateAsset surfaces store failures verbatim: the form relies on the
// store's own constraint errors (duplicate tag, missing name) rather than a
// server-side validation layer.
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req CreateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	asset, err := h.Service.CreateAsset(r.Context(), req)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) MarkAssetAvailable(w http.ResponseWriter, r *http.Request) {
	assetID, ok := h.parseAssetID(w, r)
	if !ok {
		return
	}

	if err := h.Service.MarkAvailable(r.Context(), assetID); err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			utils.RespondError(w, http.StatusNotFound, err, "asset not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to mark asset available")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "asset marked available",
		"asset_id": assetID,
	})
}

func (h *AssetHandler) MarkAssetInUse(w http.ResponseWriter, r *http.Request) {
	assetID, ok := h.parseAssetID(w, r)
	if !ok {
		return
	}

	if err := h.Service.MarkInUse(r.Context(), assetID); err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			utils.RespondError(w, http.StatusNotFound, err, "asset not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to mark asset in use")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "asset marked in use",
		"asset_id": assetID,
	})
}

func (h *AssetHandler) GetAssetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetAssetStats(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch asset stats")
		return
	}

	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *AssetHandler) parseAssetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req AssetIDReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return uuid.Nil, false
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "asset id is required")
		return uuid.Nil, false
	}
	return req.AssetID, true
}
