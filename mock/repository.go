package mock

import (
	"context"

	"github.com/fwojciec/wordtracker"
)

var _ wordtracker.Repository = (*Repository)(nil)

// Repository is a mock implementation of wordtracker.Repository.
type Repository struct {
	LoadFn  func(ctx context.Context) (*wordtracker.Tree[*wordtracker.Word], error)
	SaveFn  func(ctx context.Context, tree *wordtracker.Tree[*wordtracker.Word]) error
	ClearFn func(ctx context.Context) error
}

func (r *Repository) Load(ctx context.Context) (*wordtracker.Tree[*wordtracker.Word], error) {
	return r.LoadFn(ctx)
}

func (r *Repository) Save(ctx context.Context, tree *wordtracker.Tree[*wordtracker.Word]) error {
	return r.SaveFn(ctx, tree)
}

func (r *Repository) Clear(ctx context.Context) error {
	return r.ClearFn(ctx)
}
