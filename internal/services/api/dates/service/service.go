// Package service contains the dates workflows
package service

import (
	"context"

	"janaza/internal/core/datefmt"
	perr "janaza/internal/platform/errors"
	"janaza/internal/services/api/dates/domain"
)

// Service defines the service contract for dates
type Service interface{ domain.ServicePort }

// Resolver returns the formatter of the request on ctx
type Resolver func(context.Context) *datefmt.Formatter

// Svc implements Service over a formatter resolver
type Svc struct {
	resolve Resolver
}

// New creates a dates service
func New(resolve Resolver) *Svc {
	if resolve == nil {
		panic("dates.Service requires a non nil Resolver")
	}
	return &Svc{resolve: resolve}
}

// Classify reports the convention of in.Value
func (s *Svc) Classify(_ context.Context, in domain.ClassifyInput) domain.ClassifyOutput {
	return domain.ClassifyOutput{Kind: datefmt.Classify(in.Value)}
}

// Format renders in.Value with the strategy named by in.Mode, display by default
func (s *Svc) Format(ctx context.Context, in domain.FormatInput) domain.FormatOutput {
	f := s.resolve(ctx)
	switch in.Mode {
	case domain.ModeUTC:
		return domain.FormatOutput{Kind: datefmt.KindSystem, Text: f.FormatUTC(in.Value, in.Pattern)}
	case domain.ModeSystem:
		return domain.FormatOutput{Kind: datefmt.KindSystem, Text: f.FormatSystem(in.Value, in.Pattern)}
	case domain.ModeEvent:
		return domain.FormatOutput{Kind: datefmt.KindEventLocal, Text: f.FormatEventLocal(in.Value, in.Pattern)}
	default:
		return domain.FormatOutput{Kind: datefmt.Classify(in.Value), Text: f.FormatDisplay(in.Value, in.Pattern)}
	}
}

// FormatBatch formats every item in order
func (s *Svc) FormatBatch(ctx context.Context, in domain.BatchInput) ([]domain.FormatOutput, error) {
	if len(in.Items) > domain.MaxBatch {
		return nil, perr.WithField(perr.InvalidArgf("au plus %d valeurs par lot", domain.MaxBatch), "items")
	}
	out := make([]domain.FormatOutput, 0, len(in.Items))
	for _, it := range in.Items {
		out = append(out, s.Format(ctx, it))
	}
	return out, nil
}

// Inputs renders the HTML input values of in.Value
func (s *Svc) Inputs(ctx context.Context, in domain.InputsInput) domain.InputsOutput {
	f := s.resolve(ctx)
	if in.Mode == domain.ModeUTC {
		return domain.InputsOutput{Date: f.UTCToDateInput(in.Value), Time: f.UTCToTimeInput(in.Value)}
	}
	return domain.InputsOutput{Date: f.ToDateInput(in.Value), Time: f.ToTimeInput(in.Value)}
}

// Build turns form inputs into a wire timestamp, event-local unless in.Mode is utc
func (s *Svc) Build(ctx context.Context, in domain.BuildInput) (domain.BuildOutput, error) {
	var (
		iso string
		err error
	)
	if in.Mode == domain.ModeUTC {
		iso, err = s.resolve(ctx).BuildUTCFromLocalInputs(in.Date, in.Time)
	} else {
		iso, err = datefmt.BuildISOFromInputs(in.Date, in.Time)
	}
	if err != nil {
		return domain.BuildOutput{}, err
	}
	return domain.BuildOutput{ISO: iso}, nil
}

// Compare orders in.A and in.B by instant
func (s *Svc) Compare(_ context.Context, in domain.CompareInput) domain.CompareOutput {
	return domain.CompareOutput{Order: datefmt.CompareDates(in.A, in.B)}
}

// Relative humanizes the distance from now to in.Value
func (s *Svc) Relative(ctx context.Context, in domain.ValueInput) domain.RelativeOutput {
	return domain.RelativeOutput{Text: s.resolve(ctx).FormatRelative(in.Value)}
}

// Past reports whether in.Value lies before now
func (s *Svc) Past(ctx context.Context, in domain.ValueInput) domain.PastOutput {
	return domain.PastOutput{Past: s.resolve(ctx).IsPast(in.Value)}
}

// Now returns the current instant as UTC wire text and viewer local text
func (s *Svc) Now(ctx context.Context) domain.NowOutput {
	f := s.resolve(ctx)
	now := f.Now()
	return domain.NowOutput{
		Now:      datefmt.ISO(now),
		Local:    f.FormatSystem(datefmt.ISO(now), ""),
		Zone:     f.Zone(),
		Language: f.Language().String(),
	}
}

// Debug returns the formatter's zone report
func (s *Svc) Debug(ctx context.Context) datefmt.DebugInfo { return s.resolve(ctx).Debug() }

// Diagnostics returns the failure counters shared by every request formatter
func (s *Svc) Diagnostics(ctx context.Context) datefmt.Snapshot {
	return s.resolve(ctx).Diagnostics().Snapshot()
}
