package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vbls/standconsole/internal/api/handler/v1/request"
	"github.com/vbls/standconsole/internal/api/handler/v1/response"
	"github.com/vbls/standconsole/internal/domain"
	"github.com/vbls/standconsole/internal/service"
)

var (
	errDuplicateLabel = errors.New("A stand with that label already exists.")
	errInvalidStandID = errors.New("invalid stand id")
)

type StandService interface {
	CreateStand(ctx context.Context, label, zone string, supportsAS any) (domain.Stand, error)
	ListStands(ctx context.Context) ([]domain.Stand, error)
	SetSupportsAS(ctx context.Context, id uint, supportsAS any) (domain.Stand, error)
	SetDoubleStaffed(ctx context.Context, id uint, doubleStaffed any) (domain.Stand, error)
}

type StandHandler struct {
	svc StandService
}

func NewStandHandler(svc StandService) *StandHandler {
	return &StandHandler{
		svc: svc,
	}
}

// HandleListStands godoc
// @Summary      List stands
// @Description  Lists every stand ordered by zone then label, with the zone catalog
// @Tags         stands
// @Produce      json
// @Success      200  {object}  response.StandList
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stands [get]
// @Security BearerAuth
func (h *StandHandler) HandleListStands(ctx *gin.Context) {
	stands, err := h.svc.ListStands(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStands -> h.svc.ListStands -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.StandList{
		Stands: stands,
		Zones:  response.NewZoneOptions(),
	})
}

// HandleCreateStand godoc
// @Summary      Create a stand
// @Description  Labels Cro 1 to Cro 6, 56 and 57 are locked out of the afternoon shift
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStandRequest  true  "request body"
// @Success      201      {object}  domain.Stand
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stands [post]
// @Security BearerAuth
func (h *StandHandler) HandleCreateStand(ctx *gin.Context) {
	var req request.CreateStandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.CreateStand(ctx.Request.Context(), req.Label, req.Zone, req.SupportsAS)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			response.RenderErr(ctx, response.ErrBadRequest(verr))
			return
		}
		if errors.Is(err, service.ErrStandLabelExists) {
			response.RenderErr(ctx, response.ErrConflict(errDuplicateLabel))
			return
		}

		err = fmt.Errorf("v1.HandleCreateStand -> h.svc.CreateStand -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, stand)
}

// HandleUpdateAfternoon godoc
// @Summary      Toggle the afternoon shift of a stand
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        standID  path      int                              true  "Stand ID"
// @Param        request  body      request.UpdateAfternoonRequest   true  "request body"
// @Success      200      {object}  domain.Stand
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stands/{standID}/afternoon [patch]
// @Security BearerAuth
func (h *StandHandler) HandleUpdateAfternoon(ctx *gin.Context) {
	standID, ok := parseStandID(ctx)
	if !ok {
		return
	}

	var req request.UpdateAfternoonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.SetSupportsAS(ctx.Request.Context(), standID, req.SupportsAS)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStandNotFound):
			response.RenderErr(ctx, response.ErrNotFound("stand", "id", standID))
		case errors.Is(err, service.ErrStandLocked):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrStandLocked))
		default:
			err = fmt.Errorf("v1.HandleUpdateAfternoon -> h.svc.SetSupportsAS -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, stand)
}

// HandleUpdateDoubleStaffed godoc
// @Summary      Toggle the double-staffed flag of a stand
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        standID  path      int                                  true  "Stand ID"
// @Param        request  body      request.UpdateDoubleStaffedRequest   true  "request body"
// @Success      200      {object}  domain.Stand
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stands/{standID}/double-staffed [patch]
// @Security BearerAuth
func (h *StandHandler) HandleUpdateDoubleStaffed(ctx *gin.Context) {
	standID, ok := parseStandID(ctx)
	if !ok {
		return
	}

	var req request.UpdateDoubleStaffedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.SetDoubleStaffed(ctx.Request.Context(), standID, req.DoubleStaffed)
	if err != nil {
		if errors.Is(err, service.ErrStandNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stand", "id", standID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateDoubleStaffed -> h.svc.SetDoubleStaffed -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stand)
}

func parseStandID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("standID"), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidStandID))
		return 0, false
	}

	return uint(id), true
}
