package domain

import (
	"encoding/json"
	"time"
)

type Share struct {
	ID         int64
	ShortCode  string
	OwnerID    string
	MapType    string
	Parameters json.RawMessage
	ViewCount  int64
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

type NewShare struct {
	ShortCode  string
	OwnerID    string
	MapType    string
	Parameters json.RawMessage
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// CreateShareInput describes a share to create. CandidateCode is optional;
// when empty a code is generated.
type CreateShareInput struct {
	OwnerID       string
	MapType       string
	Parameters    json.RawMessage
	CandidateCode string
	ExpiresAt     time.Time
}

type RejectReason string

const RejectRateLimited RejectReason = "rate_limited"

// CreateShareResult is either an accepted share or a quota rejection.
// Accepted results carry Share and RemainingQuota, rejected ones Reason and ResetAt.
type CreateShareResult struct {
	Accepted       bool
	Share          *Share
	RemainingQuota int
	Reason         RejectReason
	ResetAt        time.Time
}

type QuotaStatus struct {
	Limit     int
	Used      int
	Remaining int
	ResetAt   *time.Time
}
