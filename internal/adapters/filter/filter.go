// Package filter compiles user supplied tile predicates with expr-lang.
package filter

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.eeva.app/hub/internal/core/domain"
	"go.trai.ch/zerr"
)

// TileEnv is what a filter expression sees for each tile.
type TileEnv struct {
	ID      string `expr:"id"`
	Name    string `expr:"name"`
	Type    string `expr:"type"`
	Code    int    `expr:"code"`
	Parent  string `expr:"parent"`
	Active  bool   `expr:"active"`
	Deleted bool   `expr:"deleted"`
}

func envFor(t domain.Tile) TileEnv {
	return TileEnv{
		ID:      t.ID,
		Name:    t.Name,
		Type:    t.Type.String(),
		Code:    int(t.Type),
		Parent:  t.Parent(),
		Active:  t.Active,
		Deleted: t.Deleted,
	}
}

// Filter is a compiled tile predicate. The zero Filter matches every tile.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks src. An empty src yields a filter that matches everything.
func Compile(src string) (*Filter, error) {
	if src == "" {
		return &Filter{}, nil
	}
	program, err := expr.Compile(src, expr.Env(TileEnv{}), expr.AsBool())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidFilter.Error()), "filter", src)
	}
	return &Filter{source: src, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.source }

// Match reports whether t satisfies the filter.
func (f *Filter) Match(t domain.Tile) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, envFor(t))
	if err != nil {
		return false, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrInvalidFilter.Error()), "filter", f.source), "tile", t.ID)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the tiles that satisfy the filter, in their original order.
func (f *Filter) Apply(tiles []domain.Tile) ([]domain.Tile, error) {
	if f.program == nil {
		return tiles, nil
	}
	kept := make([]domain.Tile, 0, len(tiles))
	for _, t := range tiles {
		ok, err := f.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, t)
		}
	}
	return kept, nil
}
