package flow

import (
	"hbs/src/types"
)

type Mode string

const (
	MODE_ACCOMMODATION Mode = "accommodation"
	MODE_ROOM_SELECT   Mode = "room-select"
	MODE_SERVICES_ONLY Mode = "services-only"
	MODE_PACKAGE       Mode = "package"
)

type Step struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

const (
	STEP_SEARCH          = "search"
	STEP_ROOMS           = "rooms"
	STEP_SERVICE_SELECT  = "service-select"
	STEP_PACKAGE_PREVIEW = "package-preview"
	STEP_EXTRAS          = "extras"
	STEP_DETAILS         = "details"
	STEP_PAYMENT         = "payment"
	STEP_CONFIRMATION    = "confirmation"
)

var (
	stepSearch         = Step{STEP_SEARCH, "Dates & guests"}
	stepRooms          = Step{STEP_ROOMS, "Choose rooms"}
	stepServiceSelect  = Step{STEP_SERVICE_SELECT, "Choose services"}
	stepPackagePreview = Step{STEP_PACKAGE_PREVIEW, "Package details"}
	stepExtras         = Step{STEP_EXTRAS, "Extras"}
	stepDetails        = Step{STEP_DETAILS, "Your details"}
	stepPayment        = Step{STEP_PAYMENT, "Payment"}
)

// ActiveSteps returns the ordered wizard steps for a mode. Order is the UX
// contract: navigation assumes forward-only traversal except via explicit
// back/next. In room-select mode the search step is still present, the
// caller skips it by starting on rooms. A package contributes a rooms step
// only when it declares a room type.
func ActiveSteps(mode Mode, pkg *types.PackageDescriptor) []Step {
	switch mode {
	case MODE_SERVICES_ONLY:
		return []Step{stepServiceSelect, stepExtras, stepDetails, stepPayment}
	case MODE_PACKAGE:
		steps := []Step{stepPackagePreview}
		if pkg != nil && pkg.RoomType != nil {
			steps = append(steps, stepRooms)
		}
		return append(steps, stepExtras, stepDetails, stepPayment)
	default:
		return []Step{stepSearch, stepRooms, stepExtras, stepDetails, stepPayment}
	}
}

// StepIndex returns -1 when the key is not in the list, e.g. after a mode
// switch mid-flow. Callers must guard the negative index.
func StepIndex(key string, steps []Step) int {
	for i, s := range steps {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// Progress is a percentage over the active list; an unknown current step
// reports 0, never a negative value.
func Progress(key string, steps []Step) float64 {
	idx := StepIndex(key, steps)
	if idx < 0 || len(steps) == 0 {
		return 0
	}
	return float64(idx+1) / float64(len(steps)) * 100
}
