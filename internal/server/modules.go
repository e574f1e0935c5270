package server

import (
	"context"
	"fmt"
	"log/slog"
)

// bootModules gives every module the root route group. A module that fails
// to boot aborts start-up.
func (s *Server) bootModules(ctx context.Context) error {
	router := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, router); err != nil {
			return fmt.Errorf("module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}

// shutdownModules stops modules in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) error {
	var firstErr error
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("module %s: %w", m.Name(), err)
			}
		}
	}
	return firstErr
}

func (s *Server) moduleNames() []string {
	names := make([]string, 0, len(s.modules))
	for _, m := range s.modules {
		names = append(names, m.Name())
	}
	return names
}
