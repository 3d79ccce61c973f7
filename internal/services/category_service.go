package services

import (
	"context"
	"sort"

	"academy/internal/domain"

	"github.com/rs/zerolog/log"
)

type categoryStore interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindChildren(ctx context.Context, parentID int64) ([]domain.Category, error)
}

// CategoryService resolves category scope and builds the hierarchical menu.
type CategoryService struct {
	Store categoryStore
}

// ExpandScope returns the category id itself plus all transitive
// descendant ids. The stored forest is two levels deep today, but the
// walk is a visited-guarded BFS so deeper nesting (or a bad parent
// pointer cycle) cannot loop it. An unknown id simply yields the
// singleton; the not-found decision belongs to the caller.
func (s CategoryService) ExpandScope(ctx context.Context, categoryID int64) ([]int64, error) {
	scope := []int64{categoryID}
	visited := map[int64]bool{categoryID: true}
	queue := []int64{categoryID}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		children, err := s.Store.FindChildren(ctx, cur)
		if err != nil {
			return nil, domain.InternalError{Msg: "category scope lookup failed", Err: err}
		}
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			scope = append(scope, child.ID)
			queue = append(queue, child.ID)
		}
	}
	return scope, nil
}

// Menu builds the menu: top-level categories by name ascending, each with
// its children by name ascending. The menu renders on every page, so a
// broken category store degrades to an empty menu instead of failing the
// whole request.
func (s CategoryService) Menu(ctx context.Context) []domain.CategoryNode {
	cats, err := s.Store.FindAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("category menu unavailable")
		return []domain.CategoryNode{}
	}

	children := map[int64][]domain.Category{}
	tops := []domain.Category{}
	for _, c := range cats {
		if c.ParentID == nil {
			tops = append(tops, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	sort.Slice(tops, func(i, j int) bool { return tops[i].Name < tops[j].Name })

	nodes := make([]domain.CategoryNode, 0, len(tops))
	for _, top := range tops {
		subs := children[top.ID]
		if subs == nil {
			subs = []domain.Category{}
		}
		sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
		nodes = append(nodes, domain.CategoryNode{Category: top, Subcategories: subs})
	}
	return nodes
}
