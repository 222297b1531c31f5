package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var mapBodies = []string{
	`{"map_type":"logistic","parameters":{"r":%.4f},"expires_in_days":1}`,
	`{"map_type":"henon","parameters":{"a":1.4,"b":%.4f},"expires_in_days":1}`,
	`{"map_type":"lorenz","parameters":{"sigma":10,"rho":%.4f,"beta":2.667},"expires_in_days":1}`,
}

// CreateTargeter cycles through owners. The owner id travels in the query
// string so results can be attributed without the request headers.
func CreateTargeter(baseURL string, owners []Owner, bypassSecret string) vegeta.Targeter {
	headers := make([]http.Header, len(owners))
	urls := make([]string, len(owners))
	for i, o := range owners {
		h := http.Header{
			"Content-Type":  []string{"application/json"},
			"Authorization": []string{"Bearer " + o.Token},
		}
		if bypassSecret != "" {
			h.Set(bypassHeader, bypassSecret)
		}
		headers[i] = h
		urls[i] = baseURL + "/api/v1/shares?" + url.Values{ownerParam: []string{o.ID}}.Encode()
	}

	var next atomic.Uint64
	return func(t *vegeta.Target) error {
		i := int(next.Add(1)-1) % len(owners)
		t.Method = http.MethodPost
		t.URL = urls[i]
		t.Header = headers[i]

		tmpl := mapBodies[rand.IntN(len(mapBodies))]
		t.Body = fmt.Appendf(nil, tmpl, 0.5+rand.Float64()/2)
		return nil
	}
}

func ViewTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		code := codes[rand.IntN(len(codes))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/s/" + code
		t.Header = header
		return nil
	}
}

func MixedTargeter(baseURL string, owners []Owner, codes []string, createRatio float64, bypassSecret string) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL, owners, bypassSecret)
	viewTarget := ViewTargeter(baseURL, codes, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return viewTarget(t)
	}
}
