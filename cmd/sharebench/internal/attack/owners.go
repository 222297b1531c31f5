package attack

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"chaosshare/internal/config"
	"chaosshare/internal/middleware"
)

const ownerParam = "bench_owner"

type Owner struct {
	ID    string
	Token string
}

// NewOwners signs tokens for n owners unique to this run, so quota windows
// from earlier runs do not leak into the results.
func NewOwners(n int, auth *config.AuthConfig, ttl time.Duration) ([]Owner, error) {
	runID := uuid.NewString()[:8]
	owners := make([]Owner, n)
	for i := range owners {
		id := fmt.Sprintf("bench-%s-%04d", runID, i)
		token, err := middleware.IssueToken(auth, id, ttl)
		if err != nil {
			return nil, fmt.Errorf("failed to sign token for %s: %w", id, err)
		}
		owners[i] = Owner{ID: id, Token: token}
	}
	return owners, nil
}
