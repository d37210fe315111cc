package index

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/arabello/hub-frontend-new/internal/domain"
)

const (
	snapshotKey = "index-snapshot"

	// Index documents are small (hundreds of entries); anything bigger than
	// this is not the document we asked for.
	maxIndexBytes = 16 << 20
)

type Client struct {
	httpClient *http.Client
	indexURL   string
	cache      *gocache.Cache
	group      singleflight.Group
}

func NewClient(indexURL string, timeout, ttl time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		indexURL: indexURL,
		cache:    gocache.New(ttl, 2*ttl),
	}
}

// Snapshot returns the current validated index snapshot. Concurrent callers
// share one in-flight fetch; a fresh result is served from cache until its
// TTL expires. Fetch and validation failures are not cached.
func (c *Client) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if cached, ok := c.cache.Get(snapshotKey); ok {
		return cached.(*domain.Snapshot), nil
	}

	v, err, shared := c.group.Do(snapshotKey, func() (interface{}, error) {
		if cached, ok := c.cache.Get(snapshotKey); ok {
			return cached, nil
		}
		// The fetch is shared by every waiter, so it must not run on the
		// initiating caller's context: one client disconnecting would fail
		// them all. The client timeout still bounds it.
		snap, err := c.fetch(context.Background())
		if err != nil {
			return nil, err
		}
		c.cache.Set(snapshotKey, snap, gocache.DefaultExpiration)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug("index fetch shared with concurrent caller")
	}

	return v.(*domain.Snapshot), nil
}

func (c *Client) fetch(ctx context.Context) (*domain.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.indexURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create index request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.WithField("url", c.indexURL).Debug("fetching package index")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrIndexUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrIndexUnavailable, err)
	}

	if err := Validate(raw); err != nil {
		return nil, err
	}

	var doc struct {
		LastUpdate int64               `json:"last_update"`
		Packages   []domain.IndexEntry `json:"packages"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidIndex, err)
	}

	snap := &domain.Snapshot{
		FetchedAt:  time.Now(),
		LastUpdate: time.Unix(doc.LastUpdate, 0),
		Entries:    doc.Packages,
	}

	log.WithFields(log.Fields{
		"entries":     len(snap.Entries),
		"last_update": snap.LastUpdate.Format(time.RFC3339),
	}).Info("package index fetched")

	return snap, nil
}
