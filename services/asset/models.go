package assetservice

import "github.com/google/uuid"

// CreateAssetReq carries the create form fields. Tag and name are required
// by the form, but the server deliberately leaves enforcement to the store
// schema (NOT NULL, UNIQUE on asset_tag); store errors surface raw.
type CreateAssetReq struct {
	AssetTag     string  `json:"asset_tag"`
	Name         string  `json:"name"`
	Category     *string `json:"category,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Location     *string `json:"location,omitempty"`
}

type AssetIDReq struct {
	AssetID uuid.UUID `json:"asset_id" validate:"required"`
}
