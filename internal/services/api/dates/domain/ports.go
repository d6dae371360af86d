package domain

import (
	"context"

	"janaza/internal/core/datefmt"
)

// ServicePort defines the service contract for dates
type ServicePort interface {
	Classify(ctx context.Context, in ClassifyInput) ClassifyOutput
	Format(ctx context.Context, in FormatInput) FormatOutput
	FormatBatch(ctx context.Context, in BatchInput) ([]FormatOutput, error)
	Inputs(ctx context.Context, in InputsInput) InputsOutput
	Build(ctx context.Context, in BuildInput) (BuildOutput, error)
	Compare(ctx context.Context, in CompareInput) CompareOutput
	Relative(ctx context.Context, in ValueInput) RelativeOutput
	Past(ctx context.Context, in ValueInput) PastOutput
	Now(ctx context.Context) NowOutput
	Debug(ctx context.Context) datefmt.DebugInfo
	Diagnostics(ctx context.Context) datefmt.Snapshot
}

// FormatterPort hands other modules the viewer formatter of a request
type FormatterPort interface {
	Formatter(ctx context.Context) *datefmt.Formatter
}
