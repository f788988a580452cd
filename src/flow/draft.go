package flow

import (
	"encoding/json"
	"time"

	"hbs/src/config"
	"hbs/src/types"
)

// Draft is the in-progress wizard state. It lives in the session cache only;
// a successful submission discards it.
type Draft struct {
	Mode         Mode                     `json:"mode"`
	CurrentStep  string                   `json:"current_step"`
	CheckIn      time.Time                `json:"-"`
	CheckOut     time.Time                `json:"-"`
	GuestsCount  uint                     `json:"guests_count"`
	Rooms        []types.RoomSelection    `json:"rooms"`
	Extras       []types.ExtraSelection   `json:"extras"`
	ServiceDates map[string]string        `json:"service_dates,omitempty"`
	GuestInfo    *types.GuestInfo         `json:"guest_info,omitempty"`
	PackageRef   *types.PackageDescriptor `json:"package_ref,omitempty"`
}

type draftWire struct {
	Mode         Mode                     `json:"mode"`
	CurrentStep  string                   `json:"current_step"`
	CheckIn      string                   `json:"check_in,omitempty"`
	CheckOut     string                   `json:"check_out,omitempty"`
	GuestsCount  uint                     `json:"guests_count"`
	Rooms        []types.RoomSelection    `json:"rooms"`
	Extras       []types.ExtraSelection   `json:"extras"`
	ServiceDates map[string]string        `json:"service_dates,omitempty"`
	GuestInfo    *types.GuestInfo         `json:"guest_info,omitempty"`
	PackageRef   *types.PackageDescriptor `json:"package_ref,omitempty"`
}

// MarshalJSON persists dates as ISO-8601 date strings; zero dates are
// omitted entirely so the round-trip stays exact.
func (d Draft) MarshalJSON() ([]byte, error) {
	w := draftWire{
		Mode:         d.Mode,
		CurrentStep:  d.CurrentStep,
		GuestsCount:  d.GuestsCount,
		Rooms:        d.Rooms,
		Extras:       d.Extras,
		ServiceDates: d.ServiceDates,
		GuestInfo:    d.GuestInfo,
		PackageRef:   d.PackageRef,
	}
	if !d.CheckIn.IsZero() {
		w.CheckIn = d.CheckIn.Format(config.DATE_PARSE_FORMAT)
	}
	if !d.CheckOut.IsZero() {
		w.CheckOut = d.CheckOut.Format(config.DATE_PARSE_FORMAT)
	}
	return json.Marshal(&w)
}

func (d *Draft) UnmarshalJSON(data []byte) error {
	var w draftWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d.Mode = w.Mode
	d.CurrentStep = w.CurrentStep
	d.GuestsCount = w.GuestsCount
	d.Rooms = w.Rooms
	d.Extras = w.Extras
	d.ServiceDates = w.ServiceDates
	d.GuestInfo = w.GuestInfo
	d.PackageRef = w.PackageRef
	d.CheckIn = time.Time{}
	d.CheckOut = time.Time{}
	if w.CheckIn != "" {
		t, err := time.Parse(config.DATE_PARSE_FORMAT, w.CheckIn)
		if err != nil {
			return err
		}
		d.CheckIn = t
	}
	if w.CheckOut != "" {
		t, err := time.Parse(config.DATE_PARSE_FORMAT, w.CheckOut)
		if err != nil {
			return err
		}
		d.CheckOut = t
	}
	return nil
}

// BedsCoverGuests reports whether dorm-type selections cover the guest
// count. It only computes the gate; enforcement is the UI's job, buttons
// stay disabled until this is true.
func (d *Draft) BedsCoverGuests() bool {
	var beds uint
	var hasDorm bool
	for _, r := range d.Rooms {
		if r.SellUnit == types.SELL_PER_BED {
			hasDorm = true
			beds += r.Quantity
		}
	}
	if !hasDorm {
		return len(d.Rooms) > 0
	}
	return beds >= d.GuestsCount
}
