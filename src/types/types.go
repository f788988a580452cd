package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type BookingStatus string

const (
	BOOKING_PENDING_PAYMENT BookingStatus = "pending_payment"
	BOOKING_CONFIRMED       BookingStatus = "confirmed"
	BOOKING_CHECKED_IN      BookingStatus = "checked_in"
	BOOKING_CHECKED_OUT     BookingStatus = "checked_out"
	BOOKING_CANCELLED       BookingStatus = "cancelled"
	BOOKING_NO_SHOW         BookingStatus = "no_show"
)

type PaymentStatus string

const (
	PAYMENT_PENDING  PaymentStatus = "pending"
	PAYMENT_PAID     PaymentStatus = "paid"
	PAYMENT_REFUNDED PaymentStatus = "refunded"
)

type BookingSource string

const (
	SOURCE_DIRECT  BookingSource = "direct"
	SOURCE_WALK_IN BookingSource = "walk_in"
	SOURCE_PHONE   BookingSource = "phone"
	SOURCE_OTA     BookingSource = "ota"
)

type SellUnit string

const (
	SELL_PER_BED  SellUnit = "bed"
	SELL_PER_ROOM SellUnit = "room"
)

type Season string

const (
	SEASON_HIGH Season = "high"
	SEASON_MID  Season = "mid"
	SEASON_LOW  Season = "low"
)

// RoomSelection is one line of the wizard's room step output. Quantity counts
// beds for dorms and whole rooms for privates, per the room's sell unit.
type RoomSelection struct {
	RoomID        uint     `json:"room_id" binding:"required"`
	RoomName      string   `json:"room_name"`
	Quantity      uint     `json:"quantity" binding:"required,gte=1"`
	PricePerNight float64  `json:"price_per_night" binding:"gte=0"`
	SellUnit      SellUnit `json:"sell_unit"`
	BedID         *uint    `json:"bed_id,omitempty"`
}

type ExtraSelection struct {
	ServiceID   uint    `json:"service_id" binding:"required"`
	ServiceName string  `json:"service_name"`
	Quantity    uint    `json:"quantity" binding:"required,gte=1"`
	Price       float64 `json:"price" binding:"gte=0"`
	Date        *string `json:"date,omitempty"`
}

type GuestInfo struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country,omitempty"`
	Document  string `json:"document,omitempty"`
}

// PackageDescriptor is the catalog collaborator's view of a stay package,
// enough for the wizard to shape its step list and seed dates.
type PackageDescriptor struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Nights      uint     `json:"nights,omitempty"`
	RoomType    *string  `json:"room_type,omitempty"`
	CouplesOnly bool     `json:"couples_only,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Includes    []string `json:"includes,omitempty"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type StartFlowRequestBody struct {
	Mode      string  `json:"mode" binding:"required,oneof=accommodation room-select services-only package"`
	CheckIn   *string `json:"check_in,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CheckOut  *string `json:"check_out,omitempty" binding:"omitempty,datetime=2006-01-02,checkoutafter=CheckIn"`
	Guests    *uint   `json:"guests,omitempty" binding:"omitempty,gte=1"`
	PackageID *uint   `json:"package_id,omitempty"`
	RoomID    *uint   `json:"room_id,omitempty"`
}

type CompleteStepRequestBody struct {
	Step         string            `json:"step" binding:"required"`
	CheckIn      *string           `json:"check_in,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CheckOut     *string           `json:"check_out,omitempty" binding:"omitempty,datetime=2006-01-02,checkoutafter=CheckIn"`
	Guests       *uint             `json:"guests,omitempty" binding:"omitempty,gte=1"`
	Rooms        []RoomSelection   `json:"rooms,omitempty"`
	Extras       []ExtraSelection  `json:"extras,omitempty"`
	ServiceDates map[string]string `json:"service_dates,omitempty"`
	GuestInfo    *GuestInfo        `json:"guest_info,omitempty"`
}

// SubmitBookingRequestBody carries no payment fields: the wizard's bookings
// are always created pending and settled by the gateway callback.
type SubmitBookingRequestBody struct {
	SpecialRequests string        `json:"special_requests,omitempty"`
	Source          BookingSource `json:"source,omitempty" binding:"omitempty,oneof=direct walk_in phone ota"`
}

// CreateBookingRequestBody is the lifecycle manager's input: the admin back
// office posts it directly, the wizard assembles it from a finished draft.
type CreateBookingRequestBody struct {
	Guest           GuestInfo        `json:"guest" binding:"required"`
	CheckIn         string           `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut        string           `json:"check_out" binding:"required,datetime=2006-01-02,checkoutafter=CheckIn"`
	GuestsCount     uint             `json:"guests_count" binding:"required,gte=1"`
	Rooms           []RoomSelection  `json:"rooms" binding:"omitempty,dive"`
	Extras          []ExtraSelection `json:"extras,omitempty" binding:"omitempty,dive"`
	SpecialRequests string           `json:"special_requests,omitempty"`
	Source          BookingSource    `json:"source,omitempty" binding:"omitempty,oneof=direct walk_in phone ota"`
	PaymentStatus   PaymentStatus    `json:"payment_status,omitempty" binding:"omitempty,oneof=pending paid"`
}

type TransitionRequestBody struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending_payment confirmed checked_in checked_out cancelled no_show"`
}

type RevenueQueryFilters struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
