package hub

import (
	"context"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/delivery"
	"github.com/kart-io/dispatchhub/pkg/format"
	"github.com/kart-io/dispatchhub/pkg/generator"
	"github.com/kart-io/dispatchhub/pkg/history"
	"github.com/kart-io/dispatchhub/pkg/request"
	"github.com/kart-io/dispatchhub/pkg/target"
)

// plan is the fully resolved execution of one request: every tag has
// been looked up before any work happens, so an unregistered kind,
// format, or delivery method rejects the request with zero side
// effects.
type plan struct {
	formatter format.Formatter
	steps     []step
}

// step is one generator+delivery pairing of the fan-out.
type step struct {
	genTag    string
	gen       generator.Generator
	strategy  delivery.Strategy
	targetIdx int
}

func (h *Hub) resolvePlan(req *request.Request) (*plan, error) {
	formatter, err := h.formatters.Resolve(req.Format)
	if err != nil {
		return nil, err
	}

	p := &plan{formatter: formatter, steps: make([]step, 0, len(req.Targets))}
	for i, tgt := range req.Targets {
		strategy, err := h.deliveries.Resolve(tgt.Type)
		if err != nil {
			return nil, err
		}

		// A channel-qualified generator ("order.sms") takes precedence
		// over the bare kind so notification fan-outs template per
		// channel while report kinds generate once for all targets.
		genTag := req.Kind + "." + tgt.Type
		gen, err := h.generators.Resolve(genTag)
		if err != nil {
			genTag = req.Kind
			gen, err = h.generators.Resolve(genTag)
			if err != nil {
				return nil, err
			}
		}

		p.steps = append(p.steps, step{genTag: genTag, gen: gen, strategy: strategy, targetIdx: i})
	}
	return p, nil
}

// Process runs the pipeline for one request: resolve everything,
// generate, format, then deliver to each target in input order. An
// unknown tag or invalid payload rejects the request before any side
// effect. Delivery failures are captured per target and never abort
// sibling targets; every attempt appends exactly one history entry.
//
// Cancellation: when ctx ends mid fan-out, entries already appended
// stay, remaining targets are not attempted, and Process returns the
// partial receipt together with the context error.
func (h *Hub) Process(ctx context.Context, req *request.Request) (*Receipt, error) {
	started := h.clock.Now()
	ctx, span := h.telemetry.StartProcessSpan(ctx, req.Kind, req.Format)

	h.logger.Info("Processing request", "request", req.ID, "kind", req.Kind, "format", req.Format, "targets", len(req.Targets))

	p, err := h.resolvePlan(req)
	if err != nil {
		h.logger.Warn("Request rejected", "request", req.ID, "error", err)
		h.telemetry.RecordRejection(ctx, req.Kind)
		h.telemetry.EndProcessSpan(span, err)
		return nil, err
	}

	// Generate all content before any delivery: a payload failure must
	// reject the whole request with zero history entries.
	contents := make(map[string]*content.Content)
	for _, s := range p.steps {
		if _, done := contents[s.genTag]; done {
			continue
		}
		c, err := s.gen.Generate(req.Payload)
		if err != nil {
			h.logger.Warn("Request rejected", "request", req.ID, "generator", s.genTag, "error", err)
			h.telemetry.RecordRejection(ctx, req.Kind)
			h.telemetry.EndProcessSpan(span, err)
			return nil, err
		}
		contents[s.genTag] = c
	}

	artifacts := make(map[string]*content.Artifact, len(contents))
	for tag, c := range contents {
		a, err := p.formatter.Apply(c)
		if err != nil {
			h.telemetry.RecordRejection(ctx, req.Kind)
			h.telemetry.EndProcessSpan(span, err)
			return nil, err
		}
		artifacts[tag] = a
	}

	results := make([]*delivery.Result, 0, len(p.steps))
	var ctxErr error
	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}

		tgt := req.Targets[s.targetIdx]
		result := h.deliver(ctx, s.strategy, artifacts[s.genTag], tgt)
		results = append(results, result)
		h.telemetry.RecordDelivery(ctx, tgt.Type, result.Success)

		entry := &history.Entry{
			RequestID: req.ID,
			Kind:      req.Kind,
			Format:    req.Format,
			Method:    tgt.Type,
			Recipient: tgt.Value,
			Success:   result.Success,
			Error:     result.Error,
			Timestamp: result.Timestamp,
		}
		if orderID, ok := contents[s.genTag].Meta("order_id").(string); ok {
			entry.OrderID = orderID
		}
		if err := h.history.Append(ctx, entry); err != nil {
			h.logger.Error("Failed to append history entry", "request", req.ID, "method", tgt.Type, "error", err)
		}
	}

	receipt := newReceipt(req.ID, req.Kind, req.Format, results, h.clock.Now())
	h.telemetry.RecordRequest(ctx, req.Kind)
	h.telemetry.RecordDuration(ctx, req.Kind, receipt.Timestamp.Sub(started))
	h.telemetry.EndProcessSpan(span, ctxErr)

	h.logger.Info("Request processed", "request", req.ID, "status", receipt.Status,
		"successful", receipt.Successful, "failed", receipt.Failed)
	return receipt, ctxErr
}

// deliver runs one delivery attempt under the configured timeout.
func (h *Hub) deliver(ctx context.Context, strategy delivery.Strategy, artifact *content.Artifact, tgt target.Target) *delivery.Result {
	dctx, cancel := context.WithTimeout(ctx, h.cfg.DeliveryTimeout)
	defer cancel()
	return strategy.Deliver(dctx, artifact, tgt)
}
