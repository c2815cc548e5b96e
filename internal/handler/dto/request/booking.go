package request

type SetBuildingRequest struct {
	BuildingID string `json:"buildingId" binding:"required"`
}

type SetResourceRequest struct {
	ResourceID string `json:"resourceId" binding:"required"`
}

// Date may be empty: clearing the date rolls the laundry branch back and
// disables the slot field again.
type SetDateRequest struct {
	Date string `json:"date"`
}

// ChooseSlotRequest carries the verbatim timestamps of a server-offered
// window; the pair must match one of the offered slots exactly.
type ChooseSlotRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// SetTimeRangeRequest carries raw local inputs (YYYY-MM-DDTHH:MM) for a
// standard resource. Either side may still be empty while the user types.
type SetTimeRangeRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
