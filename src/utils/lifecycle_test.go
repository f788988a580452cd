package utils

import (
	"errors"
	"log"
	"testing"
	"time"

	"hbs/src/db"
	"hbs/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	// mocked connection handed to the dialector directly, nothing dials
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	db.NewDB(gormDB)
	return mock
}

func TestCreateBookingCompensatesOnRoomFailure(t *testing.T) {
	mock := newMockDB(t)

	// guest lookup misses, a new guest row is created
	mock.ExpectQuery(`SELECT (.+) FROM "guests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "guests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	// room assignments fail, the booking row is deleted as compensation
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "room_assignments"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	params := &types.CreateBookingRequestBody{
		Guest:       types.GuestInfo{FirstName: "Ana", LastName: "Castro", Email: "ana@example.com"},
		CheckIn:     "2026-03-10",
		CheckOut:    "2026-03-13",
		GuestsCount: 2,
		Rooms: []types.RoomSelection{
			{RoomID: 1, Quantity: 2, PricePerNight: 25, SellUnit: types.SELL_PER_BED},
		},
	}
	booking, err := CreateBooking(params)
	assert.Nil(t, booking)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "could not assign rooms")

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCheckOutBookingSkipsDoubleAward(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "guest_id", "total_amount", "status"}).
			AddRow(5, "ABCDEF1234", 2, 149.99, "checked_out"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// ledger already has a row for this booking, no second award
	mock.ExpectQuery(`SELECT count\(\*\) FROM "loyalty_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	booking, err := CheckOutBooking(5)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_CHECKED_OUT, booking.Status)

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCheckOutBookingAwardsFloorOfTotal(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "guest_id", "total_amount", "status"}).
			AddRow(5, "ABCDEF1234", 2, 149.99, "checked_in"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "loyalty_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "loyalty_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "guests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := CheckOutBooking(5)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_CHECKED_OUT, booking.Status)

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCancelBookingInsideWindow(t *testing.T) {
	mock := newMockDB(t)

	checkIn := time.Now().AddDate(0, 0, 10)
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "guest_id", "check_in", "paid_amount", "status", "payment_status"}).
			AddRow(5, "ABCDEF1234", 2, checkIn, 214.70, "confirmed", "paid"))
	mock.ExpectQuery(`SELECT (.+) FROM "guests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(2, "ana@example.com"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := CancelBooking(5)
	assert.Nil(t, err)
	assert.True(t, result.RefundEligible)
	assert.True(t, result.RefundProcessed)
	assert.Equal(t, 10, result.DaysUntilCheckIn)
	assert.Equal(t, types.BOOKING_CANCELLED, result.Booking.Status)
	assert.Equal(t, types.PAYMENT_REFUNDED, result.Booking.PaymentStatus)
	assert.Contains(t, result.Booking.SpecialRequests, "REFUND DUE")

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCancelBookingOutsideWindow(t *testing.T) {
	mock := newMockDB(t)

	checkIn := time.Now().AddDate(0, 0, 2)
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "guest_id", "check_in", "paid_amount", "status", "payment_status"}).
			AddRow(5, "ABCDEF1234", 2, checkIn, 214.70, "confirmed", "paid"))
	mock.ExpectQuery(`SELECT (.+) FROM "guests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(2, "ana@example.com"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := CancelBooking(5)
	assert.Nil(t, err)
	assert.False(t, result.RefundEligible)
	assert.False(t, result.RefundProcessed)
	// the booking is still cancelled, payment status untouched
	assert.Equal(t, types.BOOKING_CANCELLED, result.Booking.Status)
	assert.Equal(t, types.PAYMENT_PAID, result.Booking.PaymentStatus)

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingPropagatesGuestLookupError(t *testing.T) {
	mock := newMockDB(t)

	// a transient lookup failure must not fall through to the insert branch
	mock.ExpectQuery(`SELECT (.+) FROM "guests"`).
		WillReturnError(errors.New("connection reset"))

	params := &types.CreateBookingRequestBody{
		Guest:       types.GuestInfo{FirstName: "Ana", LastName: "Castro", Email: "ana@example.com"},
		CheckIn:     "2026-03-10",
		CheckOut:    "2026-03-13",
		GuestsCount: 1,
	}
	booking, err := CreateBooking(params)
	assert.Nil(t, booking)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "could not look up guest record")

	assert.Nil(t, mock.ExpectationsWereMet())
}
