package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"dormgate/internal/domain/booking"
	"dormgate/internal/pkg/config"
	"dormgate/internal/pkg/errs"
)

const (
	queryBuildings = `query GetBuildings {
  allBuildings { id name }
}`

	queryResourcesByBuilding = `query GetResources($buildingId: ID!) {
  resourcesByBuilding(buildingId: $buildingId) { id name resourceType }
}`

	queryLaundrySlots = `query GetAvailableLaundrySlots($resourceId: ID!, $date: String!) {
  availableLaundrySlots(resourceId: $resourceId, date: $date) { startTime endTime }
}`

	queryMyReservations = `query GetMyReservations {
  myReservations {
    id startTime endTime status
    resource { id name }
  }
}`

	queryAdminReservations = `query GetAdminReservations($page: Int, $size: Int, $sortDirection: String, $resourceId: ID, $buildingId: ID, $date: String, $search: String) {
  adminReservations(page: $page, size: $size, sortDirection: $sortDirection, resourceId: $resourceId, buildingId: $buildingId, date: $date, search: $search) {
    content {
      id firstName lastName userBuildingName userRoomNumber
      resourceName resourceBuildingName startTime endTime date status
    }
    totalElements totalPages currentPage pageSize
  }
}`

	mutationCreateReservation = `mutation CreateReservation($input: CreateReservationInput!) {
  createReservation(input: $input) {
    id startTime endTime status
    resource { id name }
  }
}`

	mutationCancelReservation = `mutation CancelReservation($reservationId: ID!) {
  cancelReservation(reservationId: $reservationId)
}`
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code  string `json:"code"`
		Field string `json:"field,omitempty"`
	} `json:"extensions"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Client talks GraphQL-over-HTTP to the dormitory API.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		logger:   logger,
	}
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return errs.Wrap(err, "failed to encode graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build upstream request")
	}
	req.Header.Set("Content-Type", "application/json")
	if uid := UserIDFromContext(ctx); uid != "" {
		req.Header.Set("X-User-ID", uid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "upstream call failed"), errs.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("upstream returned non-200", "status", resp.StatusCode)
		return errs.Mark(errs.New("unexpected upstream status"), errs.ErrNetwork)
	}

	var gqlResp graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode upstream response"), errs.ErrNetwork)
	}
	if len(gqlResp.Errors) > 0 {
		return mapGraphQLError(gqlResp.Errors[0])
	}
	if out != nil {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return errs.Mark(errs.Wrap(err, "failed to decode upstream data"), errs.ErrNetwork)
		}
	}
	return nil
}

// mapGraphQLError keeps the server's message verbatim and marks it with the
// sentinel matching the upstream error code. A missing code falls through to
// a plain error with the reported message.
func mapGraphQLError(gqlErr graphQLError) error {
	msg := gqlErr.Message
	if msg == "" {
		msg = "upstream reported an unspecified error"
	}
	err := errs.New(msg)

	switch gqlErr.Extensions.Code {
	case "RESOURCE_CONFLICT":
		return errs.Mark(err, errs.ErrConflict)
	case "USER_RESERVATION_CONFLICT":
		return errs.Mark(err, errs.ErrUserConflict)
	case "INVALID_TIME", "INVALID_DATE":
		return errs.Mark(err, errs.ErrInvalidTime)
	case "OUTSIDE_HOURS":
		return errs.Mark(err, errs.ErrOutsideHours)
	case "RESERVATION_TOO_LONG":
		return errs.Mark(err, errs.ErrReservationTooLong)
	case "PAST_RESERVATION":
		return errs.Mark(err, errs.ErrPastReservation)
	case "RESOURCE_NOT_FOUND", "BUILDING_NOT_FOUND", "USER_NOT_FOUND":
		return errs.Mark(err, errs.ErrNotFound)
	case "RESERVATION_NOT_FOUND":
		return errs.Mark(err, errs.ErrReservationGone)
	case "VALIDATION_ERROR", "REQUIRED_FIELD", "INVALID_FORMAT":
		return errs.Mark(err, errs.ErrValidation)
	case "NETWORK_ERROR", "INTERNAL_ERROR", "DATABASE_ERROR":
		return errs.Mark(err, errs.ErrNetwork)
	}
	return err
}

func (c *Client) ListBuildings(ctx context.Context) ([]booking.Building, error) {
	var data struct {
		AllBuildings []booking.Building `json:"allBuildings"`
	}
	if err := c.do(ctx, queryBuildings, nil, &data); err != nil {
		return nil, err
	}
	return data.AllBuildings, nil
}

func (c *Client) ListResourcesByBuilding(ctx context.Context, buildingID string) ([]booking.Resource, error) {
	var data struct {
		ResourcesByBuilding []booking.Resource `json:"resourcesByBuilding"`
	}
	vars := map[string]any{"buildingId": buildingID}
	if err := c.do(ctx, queryResourcesByBuilding, vars, &data); err != nil {
		return nil, err
	}
	// The upstream scopes the result by the query variable and omits the
	// building on each row; restore it so downstream checks can rely on it.
	resources := data.ResourcesByBuilding
	for i := range resources {
		resources[i].BuildingID = buildingID
	}
	return resources, nil
}

func (c *Client) ListAvailableSlots(ctx context.Context, resourceID, date string) ([]booking.TimeSlot, error) {
	var data struct {
		AvailableLaundrySlots []struct {
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		} `json:"availableLaundrySlots"`
	}
	vars := map[string]any{"resourceId": resourceID, "date": date}
	if err := c.do(ctx, queryLaundrySlots, vars, &data); err != nil {
		return nil, err
	}

	slots := make([]booking.TimeSlot, 0, len(data.AvailableLaundrySlots))
	for _, raw := range data.AvailableLaundrySlots {
		slot, err := booking.NewTimeSlot(raw.StartTime, raw.EndTime)
		if err != nil {
			return nil, errs.Wrap(err, "upstream returned a malformed slot")
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

type reservationPayload struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Resource  struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"resource"`
}

func (p reservationPayload) toDomain() booking.Reservation {
	return booking.Reservation{
		ID:           p.ID,
		ResourceID:   p.Resource.ID,
		ResourceName: p.Resource.Name,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		Status:       booking.ReservationStatus(p.Status),
	}
}

func (c *Client) CreateReservation(ctx context.Context, in booking.CreateReservationInput) (*booking.Reservation, error) {
	var data struct {
		CreateReservation reservationPayload `json:"createReservation"`
	}
	vars := map[string]any{"input": in}
	if err := c.do(ctx, mutationCreateReservation, vars, &data); err != nil {
		return nil, err
	}
	res := data.CreateReservation.toDomain()
	return &res, nil
}

func (c *Client) CancelReservation(ctx context.Context, reservationID string) error {
	var data struct {
		CancelReservation bool `json:"cancelReservation"`
	}
	vars := map[string]any{"reservationId": reservationID}
	if err := c.do(ctx, mutationCancelReservation, vars, &data); err != nil {
		return err
	}
	if !data.CancelReservation {
		return errs.Mark(errs.New("upstream refused to cancel reservation"), errs.ErrReservationGone)
	}
	return nil
}

func (c *Client) ListMyReservations(ctx context.Context) ([]booking.Reservation, error) {
	var data struct {
		MyReservations []reservationPayload `json:"myReservations"`
	}
	if err := c.do(ctx, queryMyReservations, nil, &data); err != nil {
		return nil, err
	}
	reservations := make([]booking.Reservation, 0, len(data.MyReservations))
	for _, p := range data.MyReservations {
		reservations = append(reservations, p.toDomain())
	}
	return reservations, nil
}

func (c *Client) ListAdminReservations(ctx context.Context, filter booking.AdminFilter) (*booking.ReservationPage, error) {
	vars := map[string]any{
		"page": filter.Page,
		"size": filter.Size,
	}
	setOptional(vars, "sortDirection", filter.SortDirection)
	setOptional(vars, "resourceId", filter.ResourceID)
	setOptional(vars, "buildingId", filter.BuildingID)
	setOptional(vars, "date", filter.Date)
	setOptional(vars, "search", filter.Search)

	var data struct {
		AdminReservations booking.ReservationPage `json:"adminReservations"`
	}
	if err := c.do(ctx, queryAdminReservations, vars, &data); err != nil {
		return nil, err
	}
	return &data.AdminReservations, nil
}

func setOptional(vars map[string]any, key, value string) {
	if value != "" {
		vars[key] = value
	}
}
