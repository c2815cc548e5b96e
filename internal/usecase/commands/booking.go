package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dormgate/internal/domain/booking"
	"dormgate/internal/gateway"
	"dormgate/internal/pkg/config"
	"dormgate/internal/pkg/errs"
	"dormgate/internal/usecase/selection"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type SubmitResult struct {
	Reservation *booking.Reservation
}

type BookingCommands interface {
	// Submit turns a completed Selection into a reservation. Validation is
	// synchronous and total: an incomplete or mis-ordered active branch
	// never reaches the network.
	Submit(ctx context.Context, sessionID uuid.UUID, userID string) (*SubmitResult, error)
	// CancelOwn cancels one of the caller's reservations.
	CancelOwn(ctx context.Context, reservationID string) error
}

type bookingCommandsImpl struct {
	sessions *selection.Store
	gw       gateway.Gateway
	loc      *time.Location
	logger   *slog.Logger
}

func NewBookingCommands(
	sessions *selection.Store,
	gw gateway.Gateway,
	cfg config.Config,
	logger *slog.Logger,
) (BookingCommands, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking timezone")
	}
	return &bookingCommandsImpl{
		sessions: sessions,
		gw:       gw,
		loc:      loc,
		logger:   logger,
	}, nil
}

func (c *bookingCommandsImpl) Submit(ctx context.Context, sessionID uuid.UUID, userID string) (*SubmitResult, error) {
	flow, err := c.sessions.Get(sessionID, userID)
	if err != nil {
		return nil, err
	}

	input, err := flow.BeginSubmit(c.loc)
	if err != nil {
		return nil, err
	}

	reservation, err := c.gw.CreateReservation(ctx, input)
	flow.EndSubmit(err == nil)
	if err != nil {
		c.logger.Warn("reservation submit rejected",
			"resource_id", input.ResourceID, "error", err)
		return nil, err
	}

	// The canonical id/status only exist after server acceptance; the
	// caller re-reads its reservation list instead of trusting the input.
	return &SubmitResult{Reservation: reservation}, nil
}

func (c *bookingCommandsImpl) CancelOwn(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return errs.Mark(errs.New("reservation id is required"), errs.ErrValidation)
	}
	return c.gw.CancelReservation(ctx, reservationID)
}
