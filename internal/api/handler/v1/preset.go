package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vbls/standconsole/internal/api/handler/v1/request"
	"github.com/vbls/standconsole/internal/api/handler/v1/response"
	"github.com/vbls/standconsole/internal/domain"
)

const unknownPresetError = "Unknown error updating preset."

type PresetService interface {
	ListPresetTypes() []domain.PresetType
	ApplyPresetSelection(ctx context.Context, presetTag string, selectedStandIDs []uint) error
	GetPresetView(ctx context.Context, presetTag string) ([]domain.PresetStandState, error)
}

type PresetHandler struct {
	svc PresetService
}

func NewPresetHandler(svc PresetService) *PresetHandler {
	return &PresetHandler{
		svc: svc,
	}
}

// HandleListPresets godoc
// @Summary      List afternoon preset types
// @Tags         presets
// @Produce      json
// @Success      200  {array}   response.PresetSummary
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /presets [get]
// @Security BearerAuth
func (h *PresetHandler) HandleListPresets(ctx *gin.Context) {
	types := h.svc.ListPresetTypes()

	presets := make([]response.PresetSummary, 0, len(types))
	for _, t := range types {
		presets = append(presets, response.PresetSummary{PresetType: t, Title: t.Title()})
	}

	ctx.JSON(http.StatusOK, presets)
}

// HandleGetPreset godoc
// @Summary      Show one afternoon preset
// @Description  Stands without a recorded entry show the default, enabled unless locked
// @Tags         presets
// @Produce      json
// @Param        presetType  path      string  true  "Preset type"  Enums(WEEKDAY, WEEKEND, MEMORIAL_DAY, INDEPENDENCE_DAY, LABOR_DAY)
// @Success      200         {object}  response.PresetView
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /presets/{presetType} [get]
// @Security BearerAuth
func (h *PresetHandler) HandleGetPreset(ctx *gin.Context) {
	presetTag := ctx.Param("presetType")

	stands, err := h.svc.GetPresetView(ctx.Request.Context(), presetTag)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			response.RenderErr(ctx, response.ErrBadRequest(verr))
			return
		}

		err = fmt.Errorf("v1.HandleGetPreset -> h.svc.GetPresetView -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	presetType := domain.PresetType(presetTag)
	ctx.JSON(http.StatusOK, response.PresetView{
		PresetType: presetType,
		Title:      presetType.Title(),
		Stands:     stands,
	})
}

// HandleUpdatePreset godoc
// @Summary      Save the stand selection of an afternoon preset
// @Description  Rewrites one entry per current stand. Locked stands are always saved as disabled.
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        presetType  path      string                          true  "Preset type"
// @Param        request     body      request.PresetSelectionRequest  true  "request body"
// @Success      200         {object}  response.PresetUpdateResult
// @Failure      400         {object}  response.PresetUpdateResult
// @Failure      500         {object}  response.PresetUpdateResult
// @Router       /presets/{presetType} [put]
// @Security BearerAuth
func (h *PresetHandler) HandleUpdatePreset(ctx *gin.Context) {
	var req request.PresetSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, response.PresetUpdateResult{Error: err.Error()})
		return
	}

	err := h.svc.ApplyPresetSelection(ctx.Request.Context(), ctx.Param("presetType"), req.SelectedStandIDs())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusBadRequest, response.PresetUpdateResult{Error: verr.Message})
			return
		}

		zap.L().Error("failed to update afternoon preset",
			zap.String("request_id", requestid.Get(ctx)),
			zap.Error(fmt.Errorf("v1.HandleUpdatePreset -> h.svc.ApplyPresetSelection -> %w", err)))
		ctx.JSON(http.StatusInternalServerError, response.PresetUpdateResult{Error: rootMessage(err)})
		return
	}

	ctx.JSON(http.StatusOK, response.PresetUpdateResult{Success: true})
}

// rootMessage returns the message of the innermost wrapped error, which is
// the storage error without the call-chain prefixes.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownPresetError
}
