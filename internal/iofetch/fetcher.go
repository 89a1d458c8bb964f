// Package iofetch implements the client for the UniProt taxonomy REST
// service. This is an impure package that performs network calls.
package iofetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/protax/pkg/config"
	"github.com/gnames/protax/pkg/taxon"
)

// Fetcher retrieves taxonomy records from the remote taxonomy service.
// One outbound network call per invocation, no local state; callers
// decide about retries.
type Fetcher interface {
	// Fetch returns the taxonomy record of one organism. It fails when
	// the service is unreachable, returns a non-success status, or the
	// response cannot be decoded.
	Fetch(id taxon.OrganismID) (taxon.Record, error)
}

// fetcher implements the Fetcher interface.
type fetcher struct {
	baseURL string
	client  *http.Client
}

// New creates a Fetcher for the service configured in cfg.Fetch.
func New(cfg *config.Config) Fetcher {
	return &fetcher{
		baseURL: cfg.Fetch.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSec) * time.Second,
		},
	}
}

func (f *fetcher) Fetch(id taxon.OrganismID) (taxon.Record, error) {
	var res taxon.Record
	url := fmt.Sprintf("%s/%s.json", f.baseURL, id)

	resp, err := f.client.Get(url)
	if err != nil {
		return res, LookupRequestError(id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return res, LookupStatusError(id, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, LookupRequestError(id, err)
	}

	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, &res); err != nil {
		return res, LookupDecodeError(id, err)
	}

	return res, nil
}
