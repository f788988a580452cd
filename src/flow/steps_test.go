package flow

import (
	"testing"

	"hbs/src/types"

	"github.com/stretchr/testify/assert"
)

func stepKeys(steps []Step) []string {
	keys := make([]string, 0, len(steps))
	for _, s := range steps {
		keys = append(keys, s.Key)
	}
	return keys
}

func TestActiveSteps(t *testing.T) {
	assert.Equal(t,
		[]string{STEP_SEARCH, STEP_ROOMS, STEP_EXTRAS, STEP_DETAILS, STEP_PAYMENT},
		stepKeys(ActiveSteps(MODE_ACCOMMODATION, nil)))

	// room-select keeps the same shape, the caller starts past search
	assert.Equal(t,
		[]string{STEP_SEARCH, STEP_ROOMS, STEP_EXTRAS, STEP_DETAILS, STEP_PAYMENT},
		stepKeys(ActiveSteps(MODE_ROOM_SELECT, nil)))

	assert.Equal(t,
		[]string{STEP_SERVICE_SELECT, STEP_EXTRAS, STEP_DETAILS, STEP_PAYMENT},
		stepKeys(ActiveSteps(MODE_SERVICES_ONLY, nil)))
}

func TestActiveStepsPackageRoomType(t *testing.T) {
	noRoom := &types.PackageDescriptor{ID: 1, Name: "Surf week"}
	assert.Equal(t,
		[]string{STEP_PACKAGE_PREVIEW, STEP_EXTRAS, STEP_DETAILS, STEP_PAYMENT},
		stepKeys(ActiveSteps(MODE_PACKAGE, noRoom)))

	dorm := "dorm"
	withRoom := &types.PackageDescriptor{ID: 2, Name: "Surf week", RoomType: &dorm}
	assert.Equal(t,
		[]string{STEP_PACKAGE_PREVIEW, STEP_ROOMS, STEP_EXTRAS, STEP_DETAILS, STEP_PAYMENT},
		stepKeys(ActiveSteps(MODE_PACKAGE, withRoom)))
}

func TestProgress(t *testing.T) {
	steps := ActiveSteps(MODE_ACCOMMODATION, nil)

	assert.Equal(t, 20.0, Progress(STEP_SEARCH, steps))
	assert.Equal(t, 100.0, Progress(STEP_PAYMENT, steps))

	// a step from another mode reports 0, not a negative share
	assert.Equal(t, -1, StepIndex(STEP_SERVICE_SELECT, steps))
	assert.Equal(t, 0.0, Progress(STEP_SERVICE_SELECT, steps))
}
