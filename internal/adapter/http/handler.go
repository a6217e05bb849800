package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"citybuilder/internal/app/build"
	"citybuilder/internal/app/inspect"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/app/replay"
	"citybuilder/internal/app/search"
	"citybuilder/internal/app/session"
	"citybuilder/internal/app/simulate"
	"citybuilder/internal/app/status"
	"citybuilder/internal/domain/city"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	CreateUC   session.CreateUseCase
	EndUC      session.EndUseCase
	StatusUC   status.UseCase
	InspectUC  inspect.UseCase
	PlaceUC    build.PlaceUseCase
	BulldozeUC build.BulldozeUseCase
	SimulateUC simulate.UseCase
	SearchUC   search.UseCase
	ReplayUC   replay.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	cities := s.Group("/api/cities")
	cities.POST("", h.createCity)
	cities.DELETE("/:id", h.endCity)
	cities.GET("/:id/status", h.status)
	cities.GET("/:id/tiles", h.inspect)
	cities.POST("/:id/place", h.place)
	cities.POST("/:id/bulldoze", h.bulldoze)
	cities.POST("/:id/tick", h.tick)
	cities.GET("/:id/find", h.find)
	cities.GET("/:id/events", h.events)

	s.GET("/ops/kpi", h.kpi)
}

type createCityRequest struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Seed int64  `json:"seed"`
}

type placeRequest struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Type string `json:"type"`
}

type bulldozeRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type tickRequest struct {
	Steps int    `json:"steps"`
	Mode  string `json:"mode"`
}

var errInvalidQuery = errors.New("invalid query parameter")

func (h Handler) createCity(c context.Context, ctx *app.RequestContext) {
	var body createCityRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CreateUC.Execute(c, session.CreateRequest{Name: body.Name, Size: body.Size, Seed: body.Seed})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) endCity(c context.Context, ctx *app.RequestContext) {
	if err := h.EndUC.Execute(c, session.EndRequest{CityID: ctx.Param("id")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{CityID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inspect(c context.Context, ctx *app.RequestContext) {
	x, errX := requiredInt(ctx, "x")
	y, errY := requiredInt(ctx, "y")
	if errX != nil || errY != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "x and y are required integers")
		return
	}
	resp, err := h.InspectUC.Execute(c, inspect.Request{CityID: ctx.Param("id"), X: x, Y: y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) place(c context.Context, ctx *app.RequestContext) {
	var body placeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PlaceUC.Execute(c, build.PlaceRequest{
		CityID: ctx.Param("id"),
		X:      body.X,
		Y:      body.Y,
		Type:   city.BuildingType(strings.TrimSpace(body.Type)),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) bulldoze(c context.Context, ctx *app.RequestContext) {
	var body bulldozeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.BulldozeUC.Execute(c, build.BulldozeRequest{CityID: ctx.Param("id"), X: body.X, Y: body.Y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SimulateUC.Execute(c, simulate.Request{
		CityID: ctx.Param("id"),
		Steps:  body.Steps,
		Mode:   simulate.Mode(strings.TrimSpace(body.Mode)),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) find(c context.Context, ctx *app.RequestContext) {
	x, errX := requiredInt(ctx, "x")
	y, errY := requiredInt(ctx, "y")
	maxDistance, errD := optionalInt(ctx, "max_distance", 0)
	if errX != nil || errY != nil || errD != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "x, y and max_distance must be integers")
		return
	}
	resp, err := h.SearchUC.Execute(c, search.Request{
		CityID:      ctx.Param("id"),
		X:           x,
		Y:           y,
		Match:       search.Match(ctx.Query("match")),
		Type:        city.BuildingType(ctx.Query("type")),
		MaxDistance: maxDistance,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	occurredFrom, _ := strconv.ParseInt(ctx.Query("occurred_from"), 10, 64)
	occurredTo, _ := strconv.ParseInt(ctx.Query("occurred_to"), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		CityID:       ctx.Param("id"),
		Limit:        limit,
		Type:         ctx.Query("type"),
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func requiredInt(ctx *app.RequestContext, key string) (int, error) {
	raw := strings.TrimSpace(ctx.Query(key))
	if raw == "" {
		return 0, errInvalidQuery
	}
	return strconv.Atoi(raw)
}

func optionalInt(ctx *app.RequestContext, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(ctx.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, city.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusBadRequest, "out_of_bounds", err.Error())
	case errors.Is(err, city.ErrUnknownBuildingType):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_building_type", err.Error())
	case errors.Is(err, city.ErrTileOccupied):
		writeErrorBody(ctx, consts.StatusConflict, "tile_occupied", err.Error())
	case errors.Is(err, city.ErrTileEmpty):
		writeErrorBody(ctx, consts.StatusConflict, "tile_empty", err.Error())
	case errors.Is(err, city.ErrInvalidSize),
		errors.Is(err, session.ErrInvalidRequest),
		errors.Is(err, build.ErrInvalidRequest),
		errors.Is(err, simulate.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, inspect.ErrInvalidRequest),
		errors.Is(err, search.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
