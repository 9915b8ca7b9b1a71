package mention

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type ProfileFinder interface {
	FindByNames(ctx context.Context, names []string) ([]domain.Profile, error)
}

type Resolver struct {
	finder ProfileFinder
}

func NewResolver(finder ProfileFinder) *Resolver {
	return &Resolver{finder: finder}
}

// Resolve maps names to identities by case-insensitive display name. A name resolves
// only when exactly one profile carries it; unmatched and ambiguous names are dropped.
// Each identity appears once even when several surface forms point at it.
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]domain.ResolvedMention, error) {
	resolved := []domain.ResolvedMention{}
	if len(names) == 0 {
		return resolved, nil
	}

	profiles, err := r.finder.FindByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mentions: %w", err)
	}

	byName := make(map[string][]domain.Profile, len(profiles))
	for _, p := range profiles {
		key := strings.ToLower(p.FullName)
		byName[key] = append(byName[key], p)
	}

	seen := make(map[uuid.UUID]struct{})
	for _, name := range names {
		matches := byName[strings.ToLower(name)]
		if len(matches) != 1 {
			continue
		}
		profile := matches[0]
		if _, ok := seen[profile.UserID]; ok {
			continue
		}
		seen[profile.UserID] = struct{}{}
		resolved = append(resolved, domain.ResolvedMention{UserID: profile.UserID, Name: profile.FullName})
	}

	return resolved, nil
}
