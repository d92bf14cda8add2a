package backend

import (
	"strconv"

	"github.com/funvibe/gocsl/internal/diagnostics"
	"github.com/funvibe/gocsl/internal/logic"
	"github.com/funvibe/gocsl/internal/pipeline"
	"github.com/funvibe/gocsl/internal/style"
)

// ExecutionProcessor implements pipeline.Stage: it renders every
// pending entry through a Renderer, choosing the Citation or
// Bibliography layout by the Context's Mode.
type ExecutionProcessor struct {
	Backend Renderer
}

// NewExecutionProcessor creates a new pipeline stage for the given
// rendering backend.
func NewExecutionProcessor(b Renderer) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

type identifiable interface {
	ID() string
}

func itemLabel(i int, entry pipeline.Entry) string {
	if id, ok := entry.Item.(identifiable); ok {
		return id.ID()
	}
	return "item[" + strconv.Itoa(i) + "]"
}

func (p *ExecutionProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	var layout style.Node
	switch ctx.Mode {
	case pipeline.ModeBibliography:
		layout = ctx.Style.Bibliography
	default:
		layout = ctx.Style.Citation
	}
	if layout == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewStyleCompileError("style has no layout for the requested mode"))
		return ctx
	}

	for i := range ctx.Entries {
		entry := &ctx.Entries[i]
		sctx := style.Context{
			Item:   entry.Item,
			Locale: ctx.Locale,
			Params: ctx.Params,
			Style:  ctx.Style,
			Choose: logic.Context{Item: entry.Item},
		}
		result, err := p.Backend.Render(sctx, layout)
		if err != nil {
			// §7: a rendering error aborts the whole call, no partial
			// bibliography or citation is returned.
			ctx.Errors = append(ctx.Errors, diagnostics.NewItemRenderError(itemLabel(i, *entry), err))
			return ctx
		}
		entry.Result = result
	}

	return ctx
}
