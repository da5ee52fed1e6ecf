package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/baggage"
	"go.opentelemetry.io/otel/trace"
)

const (
	attrEntityKey      = "entity.key"
	attrEntityType     = "entity.type"
	attrJobID          = "job.id"
	attrJobSpanID      = "job.span_id"
	attrJobSource      = "job.source"
	attrJobDestination = "job.destination"
)

// JobTags label a node-initiated job. The struct is immutable configuration
// passed explicitly at the call site.
type JobTags struct {
	JobID       string
	Source      string
	Destination string
	EntityType  string
}

// Activity starts the spans this service emits: per-entity spans that are
// causally link-chained through an EntityTracker, and job root spans whose
// identity travels as baggage rather than as a parent/child relation.
type Activity struct {
	tracer  trace.Tracer
	tracker *EntityTracker
}

func NewActivity(tracer trace.Tracer, tracker *EntityTracker) *Activity {
	return &Activity{tracer: tracer, tracker: tracker}
}

func (a *Activity) Tracker() *EntityTracker {
	return a.tracker
}

// StartEntitySpan starts a span for one operation on one article. If a prior
// operation touched the same article, the new span carries a link to it; the
// tracker entry is then overwritten with this span regardless of how the
// operation turns out. Job identity found in the call's baggage is copied
// onto the span as plain attributes.
func (a *Activity) StartEntitySpan(ctx context.Context, name, entityKey string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String(attrEntityKey, entityKey)}

	bag := baggage.FromContext(ctx)
	if v := bag.Member(attrJobSpanID).Value(); v != "" {
		attrs = append(attrs, attribute.String(attrJobSpanID, v))
	}
	if v := bag.Member(attrEntityType).Value(); v != "" {
		attrs = append(attrs, attribute.String(attrEntityType, v))
	}

	opts := []trace.SpanStartOption{trace.WithAttributes(attrs...)}
	if prev, ok := a.tracker.Last(entityKey); ok && prev.IsValid() {
		opts = append(opts, trace.WithLinks(trace.Link{SpanContext: prev}))
	}

	ctx, span := a.tracer.Start(ctx, fmt.Sprintf("%s - %s", name, entityKey), opts...)
	a.tracker.Record(entityKey, span.SpanContext())
	return ctx, span
}

// StartJobSpan starts the root span for a node-initiated job and attaches the
// job's span id and entity type to the context as baggage, so a receiver can
// attribute its own independently rooted spans back to this job.
func (a *Activity) StartJobSpan(ctx context.Context, name string, tags JobTags) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String(attrJobID, tags.JobID)}
	if tags.Source != "" {
		attrs = append(attrs, attribute.String(attrJobSource, tags.Source))
	}
	if tags.Destination != "" {
		attrs = append(attrs, attribute.String(attrJobDestination, tags.Destination))
	}
	if tags.EntityType != "" {
		attrs = append(attrs, attribute.String(attrEntityType, tags.EntityType))
	}

	ctx, span := a.tracer.Start(ctx, fmt.Sprintf("%s - %s", name, tags.JobID),
		trace.WithAttributes(attrs...))

	members := make([]baggage.Member, 0, 2)
	if m, err := baggage.NewMember(attrJobSpanID, span.SpanContext().SpanID().String()); err == nil {
		members = append(members, m)
	}
	if tags.EntityType != "" {
		if m, err := baggage.NewMember(attrEntityType, tags.EntityType); err == nil {
			members = append(members, m)
		}
	}
	if bag, err := baggage.New(members...); err == nil {
		ctx = baggage.ContextWithBaggage(ctx, bag)
	}

	return ctx, span
}
