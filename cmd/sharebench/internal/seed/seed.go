package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"chaosshare/cmd/sharebench/internal/attack"
)

type createRequest struct {
	MapType       string          `json:"map_type"`
	Parameters    json.RawMessage `json:"parameters"`
	ExpiresInDays int             `json:"expires_in_days"`
}

type createResponse struct {
	ShortCode string `json:"short_code"`
}

const bypassHeader = "X-Rate-Limit-Bypass"

// Run creates perOwner shares for every owner and returns their codes keyed
// by owner id.
func Run(
	ctx context.Context,
	baseURL string,
	owners []attack.Owner,
	perOwner int,
	bypassSecret string,
	insecureSkipVerify bool,
	timeout time.Duration,
) (map[string][]string, error) {
	numWorkers := runtime.NumCPU() * 2
	total := len(owners) * perOwner
	fmt.Printf("Seeding %d shares (%d owners, workers: %d)...\n", total, len(owners), numWorkers)

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: insecureSkipVerify},
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	var (
		mu       sync.Mutex
		codes    = make(map[string][]string, len(owners))
		progress atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for _, owner := range owners {
		g.Go(func() error {
			for i := range perOwner {
				code, err := createShare(gctx, client, baseURL, owner.Token, float64(i%4)/4+0.1, bypassSecret)
				if err != nil {
					return fmt.Errorf("failed to seed share for %s: %w", owner.ID, err)
				}
				mu.Lock()
				codes[owner.ID] = append(codes[owner.ID], code)
				mu.Unlock()
				fmt.Printf("\rProgress: %d/%d", progress.Add(1), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d codes\n", progress.Load())
	return codes, nil
}

func createShare(ctx context.Context, client *http.Client, baseURL, token string, x0 float64, bypassSecret string) (string, error) {
	body, err := json.Marshal(createRequest{
		MapType:       "logistic",
		Parameters:    json.RawMessage(fmt.Sprintf(`{"r":3.9,"x0":%.2f}`, x0)),
		ExpiresInDays: 1,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/v1/shares", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.ShortCode, nil
}
