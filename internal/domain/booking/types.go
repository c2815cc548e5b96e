package booking

type ResourceType string

const (
	ResourceTypeStandard ResourceType = "STANDARD"
	ResourceTypeLaundry  ResourceType = "LAUNDRY"
)

// StandardHours lists the bookable whole hours for STANDARD resources. The
// remote service enforces the window; this list only feeds the hour dropdown
// when the UI has no better source.
func StandardHours() []int {
	hours := make([]int, 0, 16)
	for h := 8; h <= 23; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Building is immutable reference data, fetched once per session and cached.
type Building struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Resource struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ResourceType ResourceType `json:"resourceType"`
	BuildingID   string       `json:"buildingId"`
}

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation is owned by the remote service; the client only requests
// creation/cancellation and re-reads the canonical state afterward.
type Reservation struct {
	ID           string            `json:"id"`
	ResourceID   string            `json:"resourceId"`
	ResourceName string            `json:"resourceName"`
	BuildingName string            `json:"buildingName"`
	StartTime    string            `json:"startTime"`
	EndTime      string            `json:"endTime"`
	Status       ReservationStatus `json:"status"`
}

type CreateReservationInput struct {
	ResourceID string `json:"resourceId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// AdminReservation is the admin list row shape returned by the remote API.
type AdminReservation struct {
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

type ReservationPage struct {
	Content       []AdminReservation `json:"content"`
	TotalElements int                `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
	CurrentPage   int                `json:"currentPage"`
	PageSize      int                `json:"pageSize"`
}

// AdminFilter drives the admin reservation list. Empty string means the
// dimension is unset.
type AdminFilter struct {
	Page          int
	Size          int
	SortDirection string
	BuildingID    string
	ResourceID    string
	Date          string
	Search        string
}

// SameDimensions reports whether two filters agree on every dimension other
// than the page number.
func (f AdminFilter) SameDimensions(other AdminFilter) bool {
	f.Page = 0
	other.Page = 0
	return f == other
}
