package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/models"
)

// SearchTicket identifies one search request. Only the ticket of the latest
// Begin may change the coordinator's state.
type SearchTicket struct {
	Generation uint64
	Filter     models.SearchFilter
}

// SearchResult is what Fetch produced for a ticket.
type SearchResult struct {
	Ticket SearchTicket
	Page   models.Page[models.ExoplanetSummary]
	Err    error
}

// SearchState is a snapshot for rendering.
type SearchState struct {
	Filter        models.SearchFilter
	Items         []models.ExoplanetSummary
	TotalPages    int
	TotalElements int64
	Page          int
	Size          int
	Loading       bool
	Err           error
}

// SearchCoordinator runs paged, filtered catalog queries with last-write-wins
// semantics: every Begin supersedes the requests started before it, and
// results of superseded requests are dropped by Apply.
type SearchCoordinator struct {
	mu         sync.RWMutex
	generation uint64
	state      SearchState

	exoplanets adapter.ExoplanetAdapter
	logger     *logger.Logger
}

func NewSearchCoordinator(exoplanets adapter.ExoplanetAdapter, logger *logger.Logger) *SearchCoordinator {
	return &SearchCoordinator{
		exoplanets: exoplanets,
		logger:     logger,
		state:      SearchState{Size: models.DefaultPageSize},
	}
}

// Begin records filter as the current one and returns the ticket to fetch.
func (c *SearchCoordinator) Begin(filter models.SearchFilter) SearchTicket {
	if filter.Page < 0 {
		filter.Page = 0
	}
	filter.Size = filter.EffectiveSize()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state.Filter = filter
	c.state.Page = filter.Page
	c.state.Size = filter.Size
	c.state.Loading = true
	c.state.Err = nil

	return SearchTicket{Generation: c.generation, Filter: filter}
}

// Fetch performs the single summary request of ticket. It does not touch the
// coordinator's state and is safe to run off the UI goroutine.
func (c *SearchCoordinator) Fetch(ctx context.Context, ticket SearchTicket) SearchResult {
	page, err := c.exoplanets.SearchExoplanets(ctx, ticket.Filter)
	if err != nil {
		c.logger.Err(err).Str("func", "SearchCoordinator.Fetch").Uint64("generation", ticket.Generation).Msg("search failed")
		return SearchResult{Ticket: ticket, Err: mapAdapterError(err)}
	}
	return SearchResult{Ticket: ticket, Page: page}
}

// Apply installs result if it belongs to the latest ticket. It reports
// whether the result was applied.
func (c *SearchCoordinator) Apply(result SearchResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result.Ticket.Generation != c.generation {
		c.logger.Debug().Str("func", "SearchCoordinator.Apply").
			Uint64("stale", result.Ticket.Generation).Uint64("latest", c.generation).
			Msg("dropping superseded search result")
		return false
	}

	c.state.Loading = false
	if result.Err != nil {
		c.state.Err = result.Err
		c.state.Items = nil
		c.state.TotalPages = 0
		c.state.TotalElements = 0
		return true
	}

	c.state.Err = nil
	c.state.Items = result.Page.Content
	c.state.TotalPages = result.Page.TotalPages
	c.state.TotalElements = result.Page.TotalElements
	c.state.Page = result.Page.Number
	if result.Page.Size > 0 {
		c.state.Size = result.Page.Size
	}
	return true
}

func (c *SearchCoordinator) State() SearchState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.state
	s.Items = append([]models.ExoplanetSummary(nil), c.state.Items...)
	return s
}

func (c *SearchCoordinator) current() models.SearchFilter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Filter
}

// SetPage moves to page n keeping the filter.
func (c *SearchCoordinator) SetPage(n int) SearchTicket {
	f := c.current()
	f.Page = n
	return c.Begin(f)
}

// SetSize changes the page size and returns to the first page.
func (c *SearchCoordinator) SetSize(n int) SearchTicket {
	f := c.current()
	f.Size = n
	f.Page = 0
	return c.Begin(f)
}

// SetFilter replaces the bounds, keeping the page size, and returns to the
// first page.
func (c *SearchCoordinator) SetFilter(filter models.SearchFilter) SearchTicket {
	filter.Size = c.current().Size
	filter.Page = 0
	return c.Begin(filter)
}

// Reset forgets the filter and results, invalidating requests in flight.
func (c *SearchCoordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = SearchState{Size: models.DefaultPageSize}
}
