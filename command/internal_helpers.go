package command

import (
	"context"

	"github.com/goliatone/go-attrenum/pkg/types"
)

func safeLogger(logger types.Logger) types.Logger {
	if logger != nil {
		return logger
	}
	return types.NopLogger{}
}

func emitDefineHook(ctx context.Context, hooks Hooks, result DefineResult) {
	if hooks.AfterDefine == nil {
		return
	}
	hooks.AfterDefine(ctx, result)
}

// capturingHost forwards to the wrapped host and keeps the last installed
// member set so commands can report it.
type capturingHost struct {
	types.Host
	installed *types.Members
}

func (h *capturingHost) Install(members types.Members) error {
	if err := h.Host.Install(members); err != nil {
		return err
	}
	h.installed = &members
	return nil
}

func (h *capturingHost) SupportsScopes() bool {
	capable, ok := h.Host.(types.ScopeCapable)
	return ok && capable.SupportsScopes()
}
