package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"chaosshare/internal/domain"
	"chaosshare/internal/expiry"
	"chaosshare/internal/middleware"
	"chaosshare/internal/service"
	"chaosshare/internal/validation"
)

var (
	errInvalidBody         = map[string]string{"error": "invalid request body"}
	errUnauthorized        = map[string]string{"error": "unauthorized"}
	errShareNotFound       = map[string]string{"error": "share not found"}
	errShareExpired        = map[string]string{"error": "share expired"}
	errCreateFailed        = map[string]string{"error": "failed to create share"}
	errGenerationExhausted = map[string]string{"error": "could not allocate a short code, try again"}
	errListFailed          = map[string]string{"error": "failed to list shares"}
	errQuotaFailed         = map[string]string{"error": "failed to get quota"}
	errDeleteFailed        = map[string]string{"error": "failed to delete share"}
	errGetFailed           = map[string]string{"error": "failed to get share"}
	respHealthOK           = map[string]string{"status": "ok"}
)

const quotaExceededMessage = "share quota exceeded"

type Handler struct {
	shares    ShareService
	validator ShareValidator
	ids       IDCodec
	logger    *slog.Logger
	recorder  BusinessRecorder
	baseURL   string
	now       func() time.Time
}

type Option func(*Handler)

// WithClock replaces time.Now for expiry and Retry-After math. Pass the same
// clock the share service uses.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func New(
	shares ShareService,
	validator ShareValidator,
	ids IDCodec,
	logger *slog.Logger,
	recorder BusinessRecorder,
	baseURL string,
	opts ...Option,
) *Handler {
	h := &Handler{
		shares:    shares,
		validator: validator,
		ids:       ids,
		logger:    logger,
		recorder:  recorder,
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the API. auth guards owner routes, limit throttles every
// share route.
func (h *Handler) Register(e *echo.Echo, auth, limit echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)

	owned := api.Group("/shares", auth, limit)
	owned.POST("", h.CreateShare)
	owned.GET("", h.ListShares)
	owned.GET("/quota", h.Quota)
	owned.DELETE("", h.PurgeShares)
	owned.DELETE("/:id", h.DeleteShare)

	e.GET("/s/:code", h.ViewShare, limit)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateShare(c echo.Context) error {
	ownerID := middleware.OwnerID(c)
	if ownerID == "" {
		return c.JSON(http.StatusUnauthorized, errUnauthorized)
	}

	var req domain.CreateShareRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	params, err := h.validator.ValidateShare(req.MapType, req.Parameters)
	if err != nil {
		return h.handleValidationError(c, err)
	}
	days, err := h.validator.ResolveTTL(req.ExpiresInDays)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.shares.CreateShare(c.Request().Context(), domain.CreateShareInput{
		OwnerID:    ownerID,
		MapType:    req.MapType,
		Parameters: params,
		ExpiresAt:  expiry.Calculate(h.now(), days),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenerationExhausted):
			h.logger.Warn("short code generation exhausted", slog.String("owner_id", ownerID))
			return c.JSON(http.StatusServiceUnavailable, errGenerationExhausted)
		case errors.Is(err, service.ErrInvalidExpiry):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		h.logger.Error("failed to create share", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	if !result.Accepted {
		retryAfter := retryAfterSeconds(result.ResetAt, h.now())
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
		return c.JSON(http.StatusTooManyRequests, domain.RateLimitedResponse{
			Error:      quotaExceededMessage,
			ResetAt:    result.ResetAt,
			RetryAfter: retryAfter,
		})
	}

	share := result.Share
	id, err := h.ids.Encode(share.ID)
	if err != nil {
		h.logger.Error("failed to encode share id", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, domain.CreateShareResponse{
		ID:             id,
		ShortCode:      share.ShortCode,
		ShareURL:       h.shareURL(share.ShortCode),
		MapType:        share.MapType,
		ExpiresAt:      share.ExpiresAt,
		RemainingQuota: result.RemainingQuota,
	})
}

func (h *Handler) ListShares(c echo.Context) error {
	ownerID := middleware.OwnerID(c)
	if ownerID == "" {
		return c.JSON(http.StatusUnauthorized, errUnauthorized)
	}

	shares, err := h.shares.ListOwnerShares(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to list shares", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errListFailed)
	}

	resp := domain.ListSharesResponse{Shares: make([]domain.ShareSummary, 0, len(shares))}
	for _, s := range shares {
		id, err := h.ids.Encode(s.ID)
		if err != nil {
			h.logger.Error("failed to encode share id", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, errListFailed)
		}
		resp.Shares = append(resp.Shares, domain.ShareSummary{
			ID:        id,
			ShortCode: s.ShortCode,
			ShareURL:  h.shareURL(s.ShortCode),
			MapType:   s.MapType,
			ViewCount: s.ViewCount,
			CreatedAt: s.CreatedAt,
			ExpiresAt: s.ExpiresAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Quota(c echo.Context) error {
	ownerID := middleware.OwnerID(c)
	if ownerID == "" {
		return c.JSON(http.StatusUnauthorized, errUnauthorized)
	}

	status, err := h.shares.QuotaStatus(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to get quota", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errQuotaFailed)
	}

	return c.JSON(http.StatusOK, domain.QuotaResponse{
		Limit:     status.Limit,
		Used:      status.Used,
		Remaining: status.Remaining,
		ResetAt:   status.ResetAt,
	})
}

func (h *Handler) DeleteShare(c echo.Context) error {
	ownerID := middleware.OwnerID(c)
	if ownerID == "" {
		return c.JSON(http.StatusUnauthorized, errUnauthorized)
	}

	id, err := h.ids.Decode(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errShareNotFound)
	}

	if err := h.shares.DeleteShare(c.Request().Context(), ownerID, id); err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			return c.JSON(http.StatusNotFound, errShareNotFound)
		}
		h.logger.Error("failed to delete share", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDeleteFailed)
	}
	return c.NoContent(http.StatusNoContent)
}

// PurgeShares deletes every share of the caller, used when an account is
// removed.
func (h *Handler) PurgeShares(c echo.Context) error {
	ownerID := middleware.OwnerID(c)
	if ownerID == "" {
		return c.JSON(http.StatusUnauthorized, errUnauthorized)
	}

	n, err := h.shares.PurgeOwner(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to purge shares", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDeleteFailed)
	}
	return c.JSON(http.StatusOK, domain.PurgeResponse{Deleted: n})
}

func (h *Handler) ViewShare(c echo.Context) error {
	code := c.Param("code")
	referrer := extractDomain(c.Request().Referer())

	share, err := h.shares.GetShareByCode(c.Request().Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShareNotFound):
			h.recorder.RecordBusiness("share_not_found", 1, map[string]string{
				"short_code": code,
				"referrer":   referrer,
			})
			return c.JSON(http.StatusNotFound, errShareNotFound)
		case errors.Is(err, service.ErrShareExpired):
			return c.JSON(http.StatusGone, errShareExpired)
		}
		h.logger.Error("failed to get share", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	h.recorder.RecordBusiness("referrer_views", 1, map[string]string{
		"short_code": code,
		"referrer":   referrer,
	})

	return c.JSON(http.StatusOK, domain.PublicShareResponse{
		ShortCode:           share.ShortCode,
		MapType:             share.MapType,
		Parameters:          share.Parameters,
		ViewCount:           share.ViewCount,
		CreatedAt:           share.CreatedAt,
		ExpiresAt:           share.ExpiresAt,
		DaysUntilExpiration: expiry.DaysUntil(h.now(), share.ExpiresAt),
	})
}

func (h *Handler) shareURL(code string) string {
	return fmt.Sprintf("%s/s/%s", h.baseURL, code)
}

// retryAfterSeconds rounds up so clients never retry before resetAt.
func retryAfterSeconds(resetAt, now time.Time) int {
	return max(1, int(math.Ceil(resetAt.Sub(now).Seconds())))
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var paramErr *validation.ParamError
	switch {
	case errors.As(err, &paramErr):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": paramErr.Err.Error(),
			"param": paramErr.Param,
		})
	case errors.Is(err, validation.ErrUnknownMapType):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   err.Error(),
			"allowed": validation.MapTypes(),
		})
	case errors.Is(err, validation.ErrMapTypeRequired),
		errors.Is(err, validation.ErrParamsRequired),
		errors.Is(err, validation.ErrParamsTooLarge),
		errors.Is(err, validation.ErrParamsInvalid),
		errors.Is(err, validation.ErrInvalidTTL):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}
