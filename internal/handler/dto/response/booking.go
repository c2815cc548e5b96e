package response

import (
	"dormgate/internal/domain/booking"
	"dormgate/internal/usecase/selection"

	"github.com/google/uuid"
)

type FieldStateResponse struct {
	Enabled  bool   `json:"enabled"`
	Required bool   `json:"required"`
	Value    string `json:"value"`
}

type ResourceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ResourceType string `json:"resourceType"`
}

type TimeSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type SlotAvailabilityResponse struct {
	Status string             `json:"status"`
	Slots  []TimeSlotResponse `json:"slots"`
	Error  string             `json:"error,omitempty"`
}

type SessionResponse struct {
	SessionID   string                        `json:"sessionId"`
	Stage       string                        `json:"stage"`
	Fields      map[string]FieldStateResponse `json:"fields"`
	Resources   []ResourceResponse            `json:"resources"`
	Slots       SlotAvailabilityResponse      `json:"slots"`
	HourOptions []int                         `json:"hourOptions,omitempty"`
	InFlight    bool                          `json:"inFlight"`
}

func FromFlowView(sessionID uuid.UUID, view selection.View) SessionResponse {
	fields := make(map[string]FieldStateResponse, len(view.Fields))
	for name, fs := range view.Fields {
		fields[string(name)] = FieldStateResponse{
			Enabled:  fs.Enabled,
			Required: fs.Required,
			Value:    fs.Value,
		}
	}

	resources := make([]ResourceResponse, 0, len(view.Resources))
	for _, r := range view.Resources {
		resources = append(resources, ResourceResponse{
			ID:           r.ID,
			Name:         r.Name,
			ResourceType: string(r.ResourceType),
		})
	}

	slots := SlotAvailabilityResponse{
		Status: string(view.Slots.Status),
		Slots:  make([]TimeSlotResponse, 0, len(view.Slots.Slots)),
	}
	for _, slot := range view.Slots.Slots {
		slots.Slots = append(slots.Slots, TimeSlotResponse{
			StartTime: slot.StartTime(),
			EndTime:   slot.EndTime(),
		})
	}
	if view.Slots.Err != nil {
		slots.Error = view.Slots.Err.Error()
	}

	var hours []int
	if view.Fields[booking.FieldStart].Enabled {
		hours = booking.StandardHours()
	}

	return SessionResponse{
		SessionID:   sessionID.String(),
		Stage:       view.Stage.String(),
		Fields:      fields,
		Resources:   resources,
		Slots:       slots,
		HourOptions: hours,
		InFlight:    view.InFlight,
	}
}

type BuildingResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromBuildings(buildings []booking.Building) []BuildingResponse {
	out := make([]BuildingResponse, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, BuildingResponse{ID: b.ID, Name: b.Name})
	}
	return out
}

func FromResources(resources []booking.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, ResourceResponse{
			ID:           r.ID,
			Name:         r.Name,
			ResourceType: string(r.ResourceType),
		})
	}
	return out
}
