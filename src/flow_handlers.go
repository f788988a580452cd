package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"hbs/src/config"
	"hbs/src/flow"
	"hbs/src/lib"
	"hbs/src/types"
	"hbs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var wizard *flow.Controller

func getWizard() *flow.Controller {
	if wizard != nil {
		return wizard
	}
	wizard = flow.NewController(flow.NewRedisStore(lib.GetRedisClient()), utils.PackageCatalog{})
	return wizard
}

// NewWizard Replace the wizard controller with a custom instance
func NewWizard(c *flow.Controller) {
	wizard = c
}

func sessionID(ctx *gin.Context) string {
	return ctx.GetHeader("X-Session-ID")
}

func draftResponse(draft *flow.Draft) gin.H {
	steps := flow.ActiveSteps(draft.Mode, draft.PackageRef)
	return gin.H{
		"draft":    draft,
		"steps":    steps,
		"progress": flow.Progress(draft.CurrentStep, steps),
	}
}

func flowHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/flow", func(ctx *gin.Context) {
			var body types.StartFlowRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			sid := sessionID(ctx)
			if sid == "" {
				sid = uuid.New().String()
			}
			input := flow.InitInput{Mode: flow.Mode(body.Mode)}
			if body.CheckIn != nil {
				t, err := time.Parse(config.DATE_PARSE_FORMAT, *body.CheckIn)
				if err == nil {
					input.CheckIn = &t
				}
			}
			if body.CheckOut != nil {
				t, err := time.Parse(config.DATE_PARSE_FORMAT, *body.CheckOut)
				if err == nil {
					input.CheckOut = &t
				}
			}
			input.Guests = body.Guests
			input.PackageID = body.PackageID
			if body.RoomID != nil && flow.Mode(body.Mode) == flow.MODE_ROOM_SELECT {
				offer, err := utils.RoomOfferByID(*body.RoomID, time.Now())
				if err != nil {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
					return
				}
				input.Room = &types.RoomSelection{
					RoomID:        offer.Room.ID,
					RoomName:      offer.Room.Name,
					Quantity:      1,
					PricePerNight: offer.NightlyRate,
					SellUnit:      offer.Room.SellUnit,
				}
			}
			draft, err := getWizard().Init(ctx.Request.Context(), sid, input)
			if err != nil {
				log.Printf("Error initializing flow for session %s: %s\n", sid, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			resp := draftResponse(draft)
			resp["session_id"] = sid
			// echoed so a failed descriptor load can be retried explicitly
			if draft.Mode == flow.MODE_PACKAGE && body.PackageID != nil {
				resp["package_id"] = *body.PackageID
			}
			ctx.JSON(http.StatusCreated, resp)
		}).
		GET("/flow", func(ctx *gin.Context) {
			sid := sessionID(ctx)
			if sid == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
				return
			}
			draft, err := getWizard().Draft(ctx.Request.Context(), sid)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			if draft == nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "no draft in progress"})
				return
			}
			summary, err := getWizard().CachedSummary(ctx.Request.Context(), sid)
			if err != nil {
				log.Printf("Error reading cached summary for session %s: %s\n", sid, err.Error())
			}
			resp := draftResponse(draft)
			resp["summary"] = summary
			resp["beds_cover_guests"] = draft.BedsCoverGuests()
			ctx.JSON(http.StatusOK, resp)
		}).
		POST("/flow/package/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			sid := sessionID(ctx)
			if sid == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
				return
			}
			skipPreview := ctx.Query("skip_preview") == "true"
			draft, err := getWizard().LoadPackage(ctx.Request.Context(), sid, params.ID, skipPreview)
			if err != nil {
				if errors.Is(err, flow.ErrNoDraft) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				// recoverable: the draft is untouched, the client retries
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not load package", "retryable": true})
				return
			}
			ctx.JSON(http.StatusOK, draftResponse(draft))
		}).
		POST("/flow/step", func(ctx *gin.Context) {
			var body types.CompleteStepRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			sid := sessionID(ctx)
			if sid == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
				return
			}
			draft, summary, err := getWizard().CompleteStep(ctx.Request.Context(), sid, &body)
			if err != nil {
				if errors.Is(err, flow.ErrNoDraft) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			resp := draftResponse(draft)
			resp["summary"] = summary
			resp["beds_cover_guests"] = draft.BedsCoverGuests()
			ctx.JSON(http.StatusOK, resp)
		}).
		POST("/flow/next", func(ctx *gin.Context) {
			moveHandler(ctx, true)
		}).
		POST("/flow/back", func(ctx *gin.Context) {
			moveHandler(ctx, false)
		}).
		POST("/flow/submit", func(ctx *gin.Context) {
			var body types.SubmitBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			sid := sessionID(ctx)
			if sid == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
				return
			}
			draft, err := getWizard().Draft(ctx.Request.Context(), sid)
			if err != nil || draft == nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "no draft in progress"})
				return
			}
			if draft.GuestInfo == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "guest details are required before payment"})
				return
			}
			params := &types.CreateBookingRequestBody{
				Guest:           *draft.GuestInfo,
				CheckIn:         draft.CheckIn.Format(config.DATE_PARSE_FORMAT),
				CheckOut:        draft.CheckOut.Format(config.DATE_PARSE_FORMAT),
				GuestsCount:     draft.GuestsCount,
				Rooms:           draft.Rooms,
				Extras:          draft.Extras,
				SpecialRequests: body.SpecialRequests,
				Source:          body.Source,
				// only the gateway callback marks a booking paid
				PaymentStatus: types.PAYMENT_PENDING,
			}
			booking, err := utils.CreateBooking(params)
			if err != nil {
				// no retry here: the draft survives, the guest stays on payment
				log.Printf("Error creating booking for session %s: %s\n", sid, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}

			resp := gin.H{
				"step":      flow.STEP_CONFIRMATION,
				"booking":   booking,
				"reference": booking.Reference,
			}
			if booking.Status == types.BOOKING_PENDING_PAYMENT {
				_, url, err := lib.CreateBookingCheckout(
					booking.Reference,
					"Hostel stay "+booking.Reference,
					lib.AmountInCents(booking.TotalAmount),
				)
				if err != nil {
					log.Printf("Error creating checkout for booking %s: %s\n", booking.Reference, err.Error())
				} else {
					resp["payment_url"] = url
				}
			}

			if err := getWizard().Confirm(ctx.Request.Context(), sid); err != nil {
				log.Printf("Error discarding draft for session %s: %s\n", sid, err.Error())
			}
			ctx.JSON(http.StatusCreated, resp)
		})
	return g
}

func moveHandler(ctx *gin.Context, forward bool) {
	sid := sessionID(ctx)
	if sid == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
		return
	}
	var draft *flow.Draft
	var err error
	if forward {
		draft, err = getWizard().GoNext(ctx.Request.Context(), sid)
	} else {
		draft, err = getWizard().GoBack(ctx.Request.Context(), sid)
	}
	if err != nil {
		if errors.Is(err, flow.ErrNoDraft) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, draftResponse(draft))
}
