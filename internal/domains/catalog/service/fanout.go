package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// lookup is one named, independent read issued as part of a fan-out.
// The closure writes its result into a variable captured by the caller.
type lookup struct {
	name string
	run  func(context.Context) error
}

// fanOut issues every lookup concurrently and joins at Wait. The first
// failure wins and is returned wrapped with the lookup's name; sibling
// results that still arrive are discarded by the caller, which never
// renders a partial view.
func fanOut(ctx context.Context, lookups ...lookup) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, l := range lookups {
		g.Go(func() error {
			if err := l.run(ctx); err != nil {
				return fmt.Errorf("%s: %w", l.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// parseID turns an opaque identifier string into a store identifier.
// Anything that does not parse maps to the entity's NotFound sentinel:
// a malformed id and a missing record are the same outcome.
func parseID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
