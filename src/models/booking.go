package models

import (
	"time"

	"hbs/src/types"
)

type Booking struct {
	ID              uint                `gorm:"primarykey" json:"id"`
	Reference       string              `gorm:"uniqueIndex" json:"reference,omitempty"`
	GuestID         uint                `json:"guest_id,omitempty"`
	CheckIn         time.Time           `json:"check_in"`
	CheckOut        time.Time           `json:"check_out"`
	GuestsCount     uint                `json:"guests_count,omitempty"`
	TotalAmount     float64             `json:"total_amount"`
	PaidAmount      float64             `json:"paid_amount"`
	SpecialRequests string              `json:"special_requests,omitempty"`
	Source          types.BookingSource `gorm:"default:'direct'" json:"source,omitempty"`
	Status          types.BookingStatus `gorm:"default:'pending_payment'" json:"status,omitempty"`
	PaymentStatus   types.PaymentStatus `gorm:"default:'pending'" json:"payment_status,omitempty"`

	Guest    *Guest              `gorm:"foreignKey:guest_id" json:"guest,omitempty"`
	Rooms    []RoomAssignment    `gorm:"foreignKey:booking_id" json:"rooms,omitempty"`
	Services []ServiceAssignment `gorm:"foreignKey:booking_id" json:"services,omitempty"`
	CheckInRecord *CheckInRecord `gorm:"foreignKey:booking_id" json:"check_in_record,omitempty"`

	types.Timestamps
}

type RoomAssignment struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	BookingID     uint    `json:"booking_id,omitempty"`
	RoomID        uint    `json:"room_id,omitempty"`
	BedID         *uint   `json:"bed_id,omitempty"`
	Quantity      uint    `gorm:"default:1" json:"quantity,omitempty"`
	PricePerNight float64 `json:"price_per_night"`

	Room *Room `gorm:"foreignKey:room_id" json:"room,omitempty"`

	types.Timestamps
}

type ServiceAssignment struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	BookingID      uint       `json:"booking_id,omitempty"`
	ServiceID      uint       `json:"service_id,omitempty"`
	Quantity       uint       `gorm:"default:1" json:"quantity,omitempty"`
	PriceAtBooking float64    `json:"price_at_booking"`
	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`

	Service *HostelService `gorm:"foreignKey:service_id" json:"service,omitempty"`

	types.Timestamps
}

// CheckInRecord is created empty with the booking and filled in by the
// guest-facing check-in flow.
type CheckInRecord struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	BookingID      uint       `gorm:"uniqueIndex" json:"booking_id,omitempty"`
	TermsAccepted  bool       `json:"terms_accepted"`
	Signature      string     `json:"signature,omitempty"`
	PassportNumber string     `json:"passport_number,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`

	types.Timestamps
}
