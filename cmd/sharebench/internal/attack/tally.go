package attack

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"text/tabwriter"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type ownerCount struct {
	Accepted int
	Limited  int
	Other    int
}

// Tally counts share creations per owner. Seeded shares are added up front
// so the quota check covers the whole window.
type Tally struct {
	owners map[string]*ownerCount
}

func NewTally() *Tally {
	return &Tally{owners: map[string]*ownerCount{}}
}

func (t *Tally) count(owner string) *ownerCount {
	c, ok := t.owners[owner]
	if !ok {
		c = &ownerCount{}
		t.owners[owner] = c
	}
	return c
}

func (t *Tally) AddSeeded(owner string, n int) {
	t.count(owner).Accepted += n
}

func (t *Tally) Add(res *vegeta.Result) {
	if res.Method != http.MethodPost {
		return
	}
	u, err := url.Parse(res.URL)
	if err != nil {
		return
	}
	owner := u.Query().Get(ownerParam)
	if owner == "" {
		return
	}

	c := t.count(owner)
	switch res.Code {
	case http.StatusCreated:
		c.Accepted++
	case http.StatusTooManyRequests:
		c.Limited++
	default:
		c.Other++
	}
}

// Violations returns owners that got more than quota shares accepted.
func (t *Tally) Violations(quota int) []string {
	var out []string
	for owner, c := range t.owners {
		if c.Accepted > quota {
			out = append(out, owner)
		}
	}
	slices.Sort(out)
	return out
}

func (t *Tally) Report(w io.Writer, quota int) error {
	var accepted, limited, other int
	for _, c := range t.owners {
		accepted += c.Accepted
		limited += c.Limited
		other += c.Other
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Owners\t%d\n", len(t.owners))
	fmt.Fprintf(tw, "Accepted\t%d\n", accepted)
	fmt.Fprintf(tw, "Rate limited\t%d\n", limited)
	fmt.Fprintf(tw, "Other\t%d\n", other)

	violations := t.Violations(quota)
	fmt.Fprintf(tw, "Quota violations\t%d\n", len(violations))
	for _, owner := range violations {
		fmt.Fprintf(tw, "  %s\t%d accepted\n", owner, t.owners[owner].Accepted)
	}
	return tw.Flush()
}
