package service

import (
	"context"
	"fmt"

	"github.com/modboard/modboard/internal/board/store"
)

type ModuleService struct {
	Store store.Store
}

// ListModuleNames returns every module name, ascending. "All Modules" is one
// of them once seeded.
func (s *ModuleService) ListModuleNames(ctx context.Context) ([]string, error) {
	mods, err := s.Store.Modules().ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	return names, nil
}
