package domain

import (
	"encoding/json"
	"time"
)

type CreateShareRequest struct {
	MapType       string          `json:"map_type"`
	Parameters    json.RawMessage `json:"parameters"`
	ExpiresInDays int             `json:"expires_in_days"`
}

type CreateShareResponse struct {
	ID             string    `json:"id"`
	ShortCode      string    `json:"short_code"`
	ShareURL       string    `json:"share_url"`
	MapType        string    `json:"map_type"`
	ExpiresAt      time.Time `json:"expires_at"`
	RemainingQuota int       `json:"remaining_quota"`
}

type RateLimitedResponse struct {
	Error      string    `json:"error"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after"`
}

type ShareSummary struct {
	ID        string    `json:"id"`
	ShortCode string    `json:"short_code"`
	ShareURL  string    `json:"share_url"`
	MapType   string    `json:"map_type"`
	ViewCount int64     `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ListSharesResponse struct {
	Shares []ShareSummary `json:"shares"`
}

type QuotaResponse struct {
	Limit     int        `json:"limit"`
	Used      int        `json:"used"`
	Remaining int        `json:"remaining"`
	ResetAt   *time.Time `json:"reset_at,omitempty"`
}

type PurgeResponse struct {
	Deleted int `json:"deleted"`
}

type PublicShareResponse struct {
	ShortCode           string          `json:"short_code"`
	MapType             string          `json:"map_type"`
	Parameters          json.RawMessage `json:"parameters"`
	ViewCount           int64           `json:"view_count"`
	CreatedAt           time.Time       `json:"created_at"`
	ExpiresAt           time.Time       `json:"expires_at"`
	DaysUntilExpiration int             `json:"days_until_expiration"`
}
