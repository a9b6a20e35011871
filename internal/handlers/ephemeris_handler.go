package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"horizons/internal/export"
	"horizons/internal/models"
	"horizons/internal/query"
	"horizons/internal/service"

	"github.com/gin-gonic/gin"
)

type EphemerisHandler struct {
	service service.EphemerisService
}

func NewEphemerisHandler(service service.EphemerisService) *EphemerisHandler {
	return &EphemerisHandler{service: service}
}

// GetEphemeris godoc
// @Summary Position and velocity vectors for a body
// @Produce json,text/csv
// @Param body query string true "name or NAIF code"
// @Param start query string true "start time"
// @Param stop query string true "stop time"
// @Param step query string true "step, e.g. 1d, 6h, 30m"
// @Param format query string false "json, csv or xlsx"
// @Router /ephemeris [get]
func (h *EphemerisHandler) GetEphemeris(c *gin.Context) {
	ctx := c.Request.Context()

	bodyParam := strings.TrimSpace(c.Query("body"))
	if bodyParam == "" {
		badRequest(c, "body is required")
		return
	}

	start, err := query.ParseTime(c.Query("start"))
	if err != nil {
		badRequest(c, "start: "+err.Error())
		return
	}
	stop, err := query.ParseTime(c.Query("stop"))
	if err != nil {
		badRequest(c, "stop: "+err.Error())
		return
	}
	step, err := query.ParseStep(c.Query("step"))
	if err != nil {
		badRequest(c, "step: "+err.Error())
		return
	}

	opts := models.Options{
		Site:       c.Query("site"),
		Units:      models.Units(strings.ToUpper(c.Query("units"))),
		TimeFormat: models.TimeFormat(strings.ToUpper(c.Query("time_format"))),
		RefPlane:   models.RefPlane(strings.ToUpper(c.Query("ref_plane"))),
	}
	if wrt := strings.TrimSpace(c.Query("wrt")); wrt != "" {
		opts.WRT = models.ParseBody(wrt)
	}
	if header := c.Query("header"); header != "" {
		for _, label := range strings.Split(header, ",") {
			opts.Header = append(opts.Header, strings.TrimSpace(label))
		}
	}

	format := strings.ToLower(c.DefaultQuery("format", "json"))
	var enc export.Encoder
	if format != "json" {
		if enc, err = export.ForFormat(format); err != nil {
			badRequest(c, "unsupported format, use 'json', 'csv' or 'xlsx'")
			return
		}
	}

	body := models.ParseBody(bodyParam)
	result, err := h.service.Ephemeris(ctx, body, start, stop, step, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	if enc == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"body":  bodyParam,
				"start": start.Format(time.RFC3339),
				"stop":  stop.Format(time.RFC3339),
				"step":  step.String(),
				"table": result,
			},
		})
		return
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to encode ephemeris",
			"message": err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("ephemeris_%s_%s.%s",
		strings.ReplaceAll(bodyParam, " ", "_"), start.Format("20060102"), enc.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, enc.ContentType(), buf.Bytes())
}
