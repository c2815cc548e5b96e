package response

import (
	"dormgate/internal/domain/booking"
	"dormgate/internal/usecase/queries"
)

type ReservationResponse struct {
	ID           string `json:"id"`
	ResourceID   string `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
}

func FromReservation(r booking.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Status:       string(r.Status),
	}
}

func FromReservations(rs []booking.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r))
	}
	return out
}

type AdminReservationResponse struct {
	ID                   string `json:"id"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	UserBuildingName     string `json:"userBuildingName"`
	UserRoomNumber       string `json:"userRoomNumber"`
	ResourceName         string `json:"resourceName"`
	ResourceBuildingName string `json:"resourceBuildingName"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	Date                 string `json:"date"`
	Status               string `json:"status"`
}

type AdminReservationPageResponse struct {
	Status        string                     `json:"status"`
	Content       []AdminReservationResponse `json:"content"`
	TotalElements int                        `json:"totalElements"`
	TotalPages    int                        `json:"totalPages"`
	CurrentPage   int                        `json:"currentPage"`
	PageSize      int                        `json:"pageSize"`
}

func FromListSnapshot(snap queries.ListSnapshot) AdminReservationPageResponse {
	resp := AdminReservationPageResponse{
		Status:  string(snap.Status),
		Content: []AdminReservationResponse{},
	}
	if snap.Page == nil {
		return resp
	}

	resp.TotalElements = snap.Page.TotalElements
	resp.TotalPages = snap.Page.TotalPages
	resp.CurrentPage = snap.Page.CurrentPage
	resp.PageSize = snap.Page.PageSize
	for _, r := range snap.Page.Content {
		resp.Content = append(resp.Content, AdminReservationResponse{
			ID:                   r.ID,
			FirstName:            r.FirstName,
			LastName:             r.LastName,
			UserBuildingName:     r.UserBuildingName,
			UserRoomNumber:       r.UserRoomNumber,
			ResourceName:         r.ResourceName,
			ResourceBuildingName: r.ResourceBuildingName,
			StartTime:            r.StartTime,
			EndTime:              r.EndTime,
			Date:                 r.Date,
			Status:               r.Status,
		})
	}
	return resp
}
