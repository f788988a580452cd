package flow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hbs/src/config"
	"hbs/src/pricing"
	"hbs/src/types"
)

var timeNow = time.Now

var ErrNoDraft = errors.New("no draft in progress for this session")

// PackageSource is the catalog collaborator for package mode.
type PackageSource interface {
	PackageByID(id uint) (*types.PackageDescriptor, error)
}

// Controller owns the wizard state for a session: it resumes or creates the
// draft, applies step transitions, merges step output, and keeps the cached
// pricing summary in sync. Every mutation recomputes pricing, persists the
// draft, then persists the summary, in that order.
type Controller struct {
	store    Store
	packages PackageSource
}

func NewController(store Store, packages PackageSource) *Controller {
	return &Controller{store: store, packages: packages}
}

type InitInput struct {
	Mode      Mode
	CheckIn   *time.Time
	CheckOut  *time.Time
	Guests    *uint
	PackageID *uint
	Room      *types.RoomSelection
}

// Init resumes an existing draft or builds a default one. Date and guest
// parameters are applied only outside package and room-select modes; the
// pre-chosen room seeds the selection in room-select mode.
func (c *Controller) Init(ctx context.Context, sessionID string, input InitInput) (*Draft, error) {
	existing, err := c.store.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	draft := &Draft{
		Mode:        input.Mode,
		GuestsCount: 1,
	}
	steps := ActiveSteps(input.Mode, nil)
	draft.CurrentStep = steps[0].Key

	switch input.Mode {
	case MODE_PACKAGE:
		// dates and guests come from the package descriptor, not params
		if input.PackageID != nil {
			pkg, err := c.packages.PackageByID(*input.PackageID)
			if err != nil {
				// recoverable: the wizard starts bare and the caller
				// retries the load explicitly
				log.Printf("Error loading package %d: %s\n", *input.PackageID, err.Error())
			} else {
				applyPackage(draft, pkg, false)
			}
		}
	case MODE_ROOM_SELECT:
		if input.Room != nil {
			draft.Rooms = []types.RoomSelection{*input.Room}
		}
		draft.CurrentStep = STEP_ROOMS
	default:
		if input.CheckIn != nil {
			draft.CheckIn = *input.CheckIn
		}
		if input.CheckOut != nil {
			draft.CheckOut = *input.CheckOut
		}
		if input.Guests != nil {
			draft.GuestsCount = *input.Guests
		}
	}

	if _, err := c.persist(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// LoadPackage fetches the package descriptor and reshapes the draft: dates
// are anchored to today for the package's night count, couples-only packages
// force two guests, and the current step jumps to the head of the freshly
// computed list. A fetch failure leaves the draft untouched; the condition
// is recoverable, the caller retries.
func (c *Controller) LoadPackage(ctx context.Context, sessionID string, packageID uint, skipPreview bool) (*Draft, error) {
	draft, err := c.store.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}

	pkg, err := c.packages.PackageByID(packageID)
	if err != nil {
		log.Printf("Error loading package %d: %s\n", packageID, err.Error())
		return nil, err
	}

	applyPackage(draft, pkg, skipPreview)

	if _, err := c.persist(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// applyPackage reshapes a draft around a fetched descriptor: dates anchor to
// today for the package's night count, couples-only forces two guests, and
// the current step jumps to the head of the freshly computed list.
func applyPackage(draft *Draft, pkg *types.PackageDescriptor, skipPreview bool) {
	now := timeNow()
	checkIn := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	draft.CheckIn = checkIn
	draft.CheckOut = checkIn.AddDate(0, 0, int(pkg.Nights))
	if pkg.CouplesOnly {
		draft.GuestsCount = 2
	}
	draft.PackageRef = pkg

	steps := ActiveSteps(MODE_PACKAGE, pkg)
	if skipPreview && len(steps) > 1 {
		draft.CurrentStep = steps[1].Key
	} else {
		draft.CurrentStep = steps[0].Key
	}
}

// GoNext advances one step. Calls at the last step are absorbed silently.
func (c *Controller) GoNext(ctx context.Context, sessionID string) (*Draft, error) {
	return c.move(ctx, sessionID, 1)
}

// GoBack moves one step back. Calls at the first step are absorbed silently.
func (c *Controller) GoBack(ctx context.Context, sessionID string) (*Draft, error) {
	return c.move(ctx, sessionID, -1)
}

func (c *Controller) move(ctx context.Context, sessionID string, delta int) (*Draft, error) {
	draft, err := c.store.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	steps := ActiveSteps(draft.Mode, draft.PackageRef)
	idx := StepIndex(draft.CurrentStep, steps)
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(steps) {
		return draft, nil
	}
	draft.CurrentStep = steps[next].Key
	if _, err := c.persist(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// CompleteStep merges a step's output into the draft and advances. Room and
// extra selections replace the stored lists wholesale.
func (c *Controller) CompleteStep(ctx context.Context, sessionID string, body *types.CompleteStepRequestBody) (*Draft, *pricing.Summary, error) {
	draft, err := c.store.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if draft == nil {
		return nil, nil, ErrNoDraft
	}

	if body.CheckIn != nil {
		t, err := time.Parse(config.DATE_PARSE_FORMAT, *body.CheckIn)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid check_in date: %s", err.Error())
		}
		draft.CheckIn = t
	}
	if body.CheckOut != nil {
		t, err := time.Parse(config.DATE_PARSE_FORMAT, *body.CheckOut)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid check_out date: %s", err.Error())
		}
		draft.CheckOut = t
	}
	if body.Guests != nil {
		draft.GuestsCount = *body.Guests
	}
	if body.Rooms != nil {
		draft.Rooms = body.Rooms
	}
	if body.Extras != nil {
		draft.Extras = body.Extras
	}
	if body.ServiceDates != nil {
		draft.ServiceDates = body.ServiceDates
	}
	if body.GuestInfo != nil {
		draft.GuestInfo = body.GuestInfo
	}

	steps := ActiveSteps(draft.Mode, draft.PackageRef)
	idx := StepIndex(draft.CurrentStep, steps)
	if idx >= 0 && idx < len(steps)-1 {
		draft.CurrentStep = steps[idx+1].Key
	}

	summary, err := c.persist(ctx, sessionID, draft)
	if err != nil {
		return nil, nil, err
	}
	return draft, summary, nil
}

// Draft returns the session's draft without mutating it, nil when none.
func (c *Controller) Draft(ctx context.Context, sessionID string) (*Draft, error) {
	return c.store.GetDraft(ctx, sessionID)
}

// CachedSummary returns the last persisted summary; display-only, the draft
// remains the source of truth.
func (c *Controller) CachedSummary(ctx context.Context, sessionID string) (*pricing.Summary, error) {
	return c.store.GetSummary(ctx, sessionID)
}

// Confirm discards the draft after a successful booking.
func (c *Controller) Confirm(ctx context.Context, sessionID string) error {
	return c.store.DeleteDraft(ctx, sessionID)
}

func (c *Controller) persist(ctx context.Context, sessionID string, draft *Draft) (*pricing.Summary, error) {
	summary := pricing.ComputeSummary(draft.Rooms, draft.Extras, draft.CheckIn, draft.CheckOut)
	if err := c.store.SetDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	if err := c.store.SetSummary(ctx, sessionID, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
