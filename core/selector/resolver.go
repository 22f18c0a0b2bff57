package selector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"aa-greeting/core/webex"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolver maps selector strings to auto-attendant entities. The location
// directory is fetched at most once per Resolver and shared across
// concurrent resolutions.
type Resolver struct {
	client webex.Client
	logger *zap.Logger

	mu        sync.RWMutex
	locations []webex.Location
	loaded    bool
	sf        singleflight.Group
}

// NewResolver creates a resolver using the given API client.
func NewResolver(client webex.Client, logger *zap.Logger) *Resolver {
	return &Resolver{
		client: client,
		logger: logger,
	}
}

// Locations returns the cached location list, fetching it on first use.
// Singleflight collapses concurrent first accesses into a single listing
// call; every caller observes the same cached value once populated.
func (r *Resolver) Locations(ctx context.Context) ([]webex.Location, error) {
	r.mu.RLock()
	if r.loaded {
		defer r.mu.RUnlock()
		return r.locations, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("locations", func() (any, error) {
		// Double-check after acquiring the singleflight slot
		r.mu.RLock()
		if r.loaded {
			locations := r.locations
			r.mu.RUnlock()
			return locations, nil
		}
		r.mu.RUnlock()

		locations, err := r.client.ListLocations(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.locations = locations
		r.loaded = true
		r.mu.Unlock()

		return locations, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]webex.Location), nil
}

// ResolveOne resolves a single selector to the auto-attendants it matches.
// An empty match list is not an error; only a malformed selector or an
// unknown location is, reported as *InvalidError. Any other error is a
// transport failure.
func (r *Resolver) ResolveOne(ctx context.Context, spec string) ([]webex.AutoAttendant, error) {
	sel, err := Parse(spec)
	if err != nil {
		return nil, err
	}

	locationID := ""
	if sel.Location != "" {
		locations, err := r.Locations(ctx)
		if err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		found := false
		for _, loc := range locations {
			if loc.Name == sel.Location {
				locationID = loc.ID
				found = true
				break
			}
		}
		if !found {
			return nil, &InvalidError{Spec: spec, Reason: fmt.Sprintf("location not found: %q", sel.Location)}
		}
	}

	aas, err := r.client.ListAutoAttendants(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("list auto attendants: %w", err)
	}

	var matched []webex.AutoAttendant
	for _, aa := range aas {
		if sel.Pattern.MatchString(aa.Name) {
			matched = append(matched, aa)
		}
	}
	return matched, nil
}

// ResolveAll resolves all selectors concurrently and merges the matches into
// a single deduplicated batch, sorted by (location name, auto-attendant
// name) for deterministic output.
//
// A transport failure on any selector aborts resolution with that error.
// Invalid selectors are logged individually; if any occurred, resolution
// aborts with ErrInvalidSelectors after all selectors have been evaluated.
func (r *Resolver) ResolveAll(ctx context.Context, specs []string) ([]webex.AutoAttendant, error) {
	results := make([][]webex.AutoAttendant, len(specs))
	errs := make([]error, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec string) {
			defer wg.Done()
			results[i], errs[i] = r.ResolveOne(ctx, spec)
		}(i, spec)
	}
	wg.Wait()

	invalid := false
	for i, err := range errs {
		if err == nil {
			continue
		}
		var invErr *InvalidError
		if errors.As(err, &invErr) {
			invalid = true
			r.logger.Warn("skipping selector",
				zap.String("selector", specs[i]),
				zap.String("reason", invErr.Reason),
			)
			continue
		}
		// Not a selector problem; surface immediately.
		return nil, err
	}
	if invalid {
		return nil, ErrInvalidSelectors
	}

	// Selectors may overlap; keep each auto-attendant once.
	seen := make(map[string]struct{})
	var merged []webex.AutoAttendant
	for _, matched := range results {
		for _, aa := range matched {
			if _, ok := seen[aa.ID]; ok {
				continue
			}
			seen[aa.ID] = struct{}{}
			merged = append(merged, aa)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].LocationName != merged[j].LocationName {
			return merged[i].LocationName < merged[j].LocationName
		}
		return merged[i].Name < merged[j].Name
	})

	return merged, nil
}
