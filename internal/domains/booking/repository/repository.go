package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/postgres"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	gRepo "github.com/singhtechie24/Indiana-Hotels-Final/shared/repository"
)

// ErrRoomUnavailable is returned when a stay would overlap a live booking
// for the same room.
var ErrRoomUnavailable = errors.New("room unavailable for the requested dates")

// Postgres error code raised by the bookings_no_overlap exclusion constraint.
const pqExclusionViolation = "23P01"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertIfAvailable(ctx context.Context, model model.Booking) error
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches live bookings whose [check_in, check_out) range
// intersects the requested one. Two half-open ranges overlap exactly when
// each starts before the other ends, so a stay ending on the day another
// begins does not collide. Cancelled bookings never block a room.
func OverlapFilter(roomID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_start",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_end",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
		},
	}
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlapping")
	defer scope.End()

	return repo.Repository.Count(ctx, OverlapFilter(roomID, checkIn, checkOut)) //nolint:wrapcheck
}

// InsertIfAvailable re-checks the overlap count and inserts the booking in a
// single transaction. The count catches the common case up front; the
// bookings_no_overlap exclusion constraint is the authoritative guard, so two
// transactions racing past the count cannot both commit. Either path surfaces
// as ErrRoomUnavailable.
func (repo *repositoryImpl) InsertIfAvailable(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertIfAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		count, err := repo.Repository.CountTx(ctx, tx, OverlapFilter(booking.RoomID, booking.CheckIn, booking.CheckOut))
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrRoomUnavailable
		}

		return repo.Repository.InsertTx(ctx, tx, booking)
	})

	return translateInsertError(err)
}

// translateInsertError converts an overlap exclusion violation into
// ErrRoomUnavailable so a lost insert race reads the same as a failed
// availability check.
func translateInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqExclusionViolation {
		return ErrRoomUnavailable
	}

	return err
}
