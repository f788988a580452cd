package utils

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/lib/mailer"
	"hbs/src/models"
	"hbs/src/pricing"
	"hbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefundEligibility applies the cancellation window: cancelling at least
// REFUND_WINDOW_DAYS before check-in (inclusive) is eligible. Both dates are
// normalized to midnight before the whole-day difference.
func RefundEligibility(checkIn time.Time, now time.Time) (bool, int) {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(in.Sub(today).Hours() / 24)
	return days >= config.REFUND_WINDOW_DAYS, days
}

// LoyaltyPointsFor awards one point per whole currency unit spent.
func LoyaltyPointsFor(total float64) int64 {
	return int64(math.Floor(total))
}

func NewBookingReference() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}

// CreateBooking performs the wizard's terminal write: guest upsert, booking
// row, room assignments, service assignments, empty check-in record. The
// store exposes no multi-table transaction to this layer, so the writes are
// sequential with a compensating delete of the booking row when the room
// assignments cannot be inserted. A partial booking with no rooms must never
// stay visible to admin screens.
func CreateBooking(params *types.CreateBookingRequestBody) (*models.Booking, error) {
	checkIn, err := time.Parse(config.DATE_PARSE_FORMAT, params.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in date: %s", err.Error())
	}
	checkOut, err := time.Parse(config.DATE_PARSE_FORMAT, params.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out date: %s", err.Error())
	}

	d := db.GetDb()

	// guest identity resolves by email: update in place when known
	var guest models.Guest
	err = d.Where(&models.Guest{Email: params.Guest.Email}).First(&guest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("could not look up guest record: %s", err.Error())
	}
	if err != nil {
		guest = models.Guest{
			FirstName: params.Guest.FirstName,
			LastName:  params.Guest.LastName,
			Email:     params.Guest.Email,
			Phone:     params.Guest.Phone,
			Country:   params.Guest.Country,
			Document:  params.Guest.Document,
		}
		if err := d.Create(&guest).Error; err != nil {
			return nil, fmt.Errorf("could not create guest record: %s", err.Error())
		}
	} else {
		guest.FirstName = params.Guest.FirstName
		guest.LastName = params.Guest.LastName
		guest.Phone = params.Guest.Phone
		guest.Country = params.Guest.Country
		guest.Document = params.Guest.Document
		if err := d.Save(&guest).Error; err != nil {
			return nil, fmt.Errorf("could not update guest record: %s", err.Error())
		}
	}

	// totals are recomputed here; the client-computed total is never persisted
	summary := pricing.ComputeSummary(params.Rooms, params.Extras, checkIn, checkOut)

	status := types.BOOKING_PENDING_PAYMENT
	paymentStatus := types.PAYMENT_PENDING
	paidAmount := 0.0
	if params.PaymentStatus == types.PAYMENT_PAID {
		status = types.BOOKING_CONFIRMED
		paymentStatus = types.PAYMENT_PAID
		paidAmount = summary.Total
	}
	source := params.Source
	if source == "" {
		source = types.SOURCE_DIRECT
	}

	booking := models.Booking{
		Reference:       NewBookingReference(),
		GuestID:         guest.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestsCount:     params.GuestsCount,
		TotalAmount:     summary.Total,
		PaidAmount:      paidAmount,
		SpecialRequests: params.SpecialRequests,
		Source:          source,
		Status:          status,
		PaymentStatus:   paymentStatus,
	}
	if err := d.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("could not create booking: %s", err.Error())
	}

	if len(params.Rooms) > 0 {
		assignments := make([]models.RoomAssignment, 0, len(params.Rooms))
		for _, r := range params.Rooms {
			assignments = append(assignments, models.RoomAssignment{
				BookingID:     booking.ID,
				RoomID:        r.RoomID,
				BedID:         r.BedID,
				Quantity:      r.Quantity,
				PricePerNight: r.PricePerNight,
			})
		}
		if err := d.Create(&assignments).Error; err != nil {
			log.Printf("Error inserting room assignments for booking %d: %s\n", booking.ID, err.Error())
			// compensating delete; log-and-continue if it fails, orphans
			// surface in monitoring
			if derr := d.Unscoped().Delete(&models.Booking{}, booking.ID).Error; derr != nil {
				log.Printf("Compensating delete failed for booking %d: %s\n", booking.ID, derr.Error())
			}
			return nil, fmt.Errorf("could not assign rooms: %s", err.Error())
		}
	}

	for _, e := range params.Extras {
		assignment := models.ServiceAssignment{
			BookingID:      booking.ID,
			ServiceID:      e.ServiceID,
			Quantity:       e.Quantity,
			PriceAtBooking: e.Price,
		}
		if e.Date != nil {
			if scheduled, perr := time.Parse(config.DATE_PARSE_FORMAT, *e.Date); perr == nil {
				assignment.ScheduledDate = &scheduled
			}
		}
		// best effort: a failed service attachment is logged, never rolled back
		if err := d.Create(&assignment).Error; err != nil {
			log.Printf("Error inserting service assignment %d for booking %d: %s\n", e.ServiceID, booking.ID, err.Error())
		}
	}

	checkInRecord := models.CheckInRecord{BookingID: booking.ID}
	if err := d.Create(&checkInRecord).Error; err != nil {
		log.Printf("Error creating check-in record for booking %d: %s\n", booking.ID, err.Error())
	}

	mailer.BookingConfirmation(guest.Email, booking.Reference, params.CheckIn, params.CheckOut, booking.TotalAmount)

	return &booking, nil
}

func GetBooking(id uint) (*models.Booking, error) {
	d := db.GetDb()
	var booking models.Booking
	err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Preload("Guest").
		Preload("Rooms").
		Preload("Services").
		Preload("CheckInRecord").
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// TransitionBooking is a blind status write. It validates nothing beyond the
// booking existing; the admin surface only offers legal transitions.
func TransitionBooking(id uint, status types.BookingStatus) (*models.Booking, error) {
	d := db.GetDb()
	var booking models.Booking
	if err := d.Where(&models.Booking{ID: id}).First(&booking).Error; err != nil {
		return nil, err
	}
	if err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Update("status", status).
		Error; err != nil {
		return nil, err
	}
	booking.Status = status
	return &booking, nil
}

// CheckOutBooking completes the stay and awards floor(totalAmount) loyalty
// points. The award is guarded by a ledger lookup so a double check-out
// cannot double-award.
func CheckOutBooking(id uint) (*models.Booking, error) {
	booking, err := TransitionBooking(id, types.BOOKING_CHECKED_OUT)
	if err != nil {
		return nil, err
	}

	d := db.GetDb()
	var existing int64
	if err := d.
		Model(&models.LoyaltyTransaction{}).
		Where(&models.LoyaltyTransaction{BookingID: &id}).
		Count(&existing).
		Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		log.Printf("Loyalty points already awarded for booking %d, skipping\n", id)
		return booking, nil
	}

	points := LoyaltyPointsFor(booking.TotalAmount)
	ledger := models.LoyaltyTransaction{
		GuestID:     booking.GuestID,
		BookingID:   &id,
		Points:      points,
		Description: fmt.Sprintf("Stay completed, booking %s", booking.Reference),
	}
	if err := d.Create(&ledger).Error; err != nil {
		return nil, fmt.Errorf("could not record loyalty points: %s", err.Error())
	}
	if err := d.
		Model(&models.Guest{}).
		Where(&models.Guest{ID: booking.GuestID}).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", points)).
		Error; err != nil {
		return nil, err
	}
	return booking, nil
}

type CancelResult struct {
	Booking          *models.Booking `json:"booking"`
	RefundEligible   bool            `json:"refund_eligible"`
	RefundProcessed  bool            `json:"refund_processed"`
	DaysUntilCheckIn int             `json:"days_until_check_in"`
	Message          string          `json:"message"`
}

// CancelBooking always cancels; the refund flag depends on the cancellation
// window. Refunds are executed by a human outside this system, the manager
// only flags eligibility.
func CancelBooking(id uint) (*CancelResult, error) {
	d := db.GetDb()
	var booking models.Booking
	if err := d.Where(&models.Booking{ID: id}).Preload("Guest").First(&booking).Error; err != nil {
		return nil, err
	}

	eligible, days := RefundEligibility(booking.CheckIn, time.Now())

	updates := map[string]any{"status": types.BOOKING_CANCELLED}
	refundProcessed := false
	message := fmt.Sprintf("Booking cancelled. Cancellations less than %d days before check-in are not refundable.", config.REFUND_WINDOW_DAYS)
	if eligible && booking.PaidAmount > 0 {
		refundProcessed = true
		note := fmt.Sprintf("[REFUND DUE] %.2f USD to be refunded manually, cancelled %d days before check-in", booking.PaidAmount, days)
		special := booking.SpecialRequests
		if special != "" {
			special = special + "\n"
		}
		updates["payment_status"] = types.PAYMENT_REFUNDED
		updates["special_requests"] = special + note
		message = "Booking cancelled. Your payment will be refunded by our staff."
	} else if eligible {
		message = "Booking cancelled free of charge."
	}

	if err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Updates(updates).
		Error; err != nil {
		return nil, err
	}
	booking.Status = types.BOOKING_CANCELLED
	if refundProcessed {
		booking.PaymentStatus = types.PAYMENT_REFUNDED
		booking.SpecialRequests = updates["special_requests"].(string)
	}

	if booking.Guest != nil {
		mailer.BookingCancellation(booking.Guest.Email, booking.Reference, eligible)
	}

	return &CancelResult{
		Booking:          &booking,
		RefundEligible:   eligible,
		RefundProcessed:  refundProcessed,
		DaysUntilCheckIn: days,
		Message:          message,
	}, nil
}

// MarkNoShow sets the status with no financial side effects.
func MarkNoShow(id uint) (*models.Booking, error) {
	return TransitionBooking(id, types.BOOKING_NO_SHOW)
}

// MarkBookingPaid is the payment collaborator's success callback, keyed by
// the booking reference the checkout session carried.
func MarkBookingPaid(reference string) (*models.Booking, error) {
	d := db.GetDb()
	var booking models.Booking
	if err := d.Where(&models.Booking{Reference: reference}).First(&booking).Error; err != nil {
		return nil, err
	}
	if err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: booking.ID}).
		Updates(map[string]any{
			"status":         types.BOOKING_CONFIRMED,
			"payment_status": types.PAYMENT_PAID,
			"paid_amount":    booking.TotalAmount,
		}).
		Error; err != nil {
		return nil, err
	}
	booking.Status = types.BOOKING_CONFIRMED
	booking.PaymentStatus = types.PAYMENT_PAID
	booking.PaidAmount = booking.TotalAmount
	return &booking, nil
}

// SweepNoShows marks confirmed bookings whose check-in date passed without a
// check-in. Runs from the daily scheduler job.
func SweepNoShows() {
	d := db.GetDb()
	today := time.Now().Truncate(24 * time.Hour)
	res := d.
		Model(&models.Booking{}).
		Where("status = ?", types.BOOKING_CONFIRMED).
		Where("check_in < ?", today).
		Update("status", types.BOOKING_NO_SHOW)
	if res.Error != nil {
		log.Printf("Error sweeping no-shows: %s\n", res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Marked %d bookings as no-show\n", res.RowsAffected)
	}
}
