package calculator

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"chi-calculator/internal/engine"
	"chi-calculator/internal/observability"
	"chi-calculator/internal/presentation"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Options configures a Calculator.
type Options struct {
	Theme         presentation.Theme
	DrawerOptions []presentation.DrawerOption
}

// Calculator is the calculator component: keypad state machine, history,
// drawer and theme behind one lock.
type Calculator struct {
	mu         sync.Mutex
	machine    *engine.Machine
	history    engine.History
	drawer     *presentation.Drawer
	theme      presentation.Theme
	ready      bool
	autoOpened bool
}

// New returns a calculator showing "0" with the drawer closed. It is not
// ready until MarkReady is called.
func New(opts Options) *Calculator {
	theme := opts.Theme
	if theme == "" {
		theme = presentation.ThemeDark
	}
	return &Calculator{
		machine: engine.NewMachine(),
		drawer:  presentation.NewDrawer(opts.DrawerOptions...),
		theme:   theme,
	}
}

// MarkReady signals that the view has finished its initial render. Until
// then a completed calculation never opens the history drawer.
func (c *Calculator) MarkReady() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = true
}

func (c *Calculator) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// CloseDelay is how long the drawer reports closing after it is closed.
func (c *Calculator) CloseDelay() time.Duration {
	return c.drawer.CloseDelay()
}

// Close cancels the drawer's pending timer.
func (c *Calculator) Close() {
	c.drawer.Stop()
}

// Snapshot returns the current readable state.
func (c *Calculator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Do applies a single action and returns the resulting state.
func (c *Calculator) Do(ctx context.Context, a Action) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.doLocked(ctx, a); err != nil {
		return c.snapshotLocked(), err
	}
	return c.snapshotLocked(), nil
}

// DoSequence applies actions in order under one lock, so no other caller's
// presses interleave. Each action gets a child span of a
// calculator.sequence span. It stops at the first failing action.
func (c *Calculator) DoSequence(ctx context.Context, actions []Action) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "calculator.sequence",
		trace.WithAttributes(
			attribute.Int("calculator.sequence.length", len(actions)),
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, a := range actions {
		if err := c.doLocked(ctx, a); err != nil {
			err = fmt.Errorf("action %d (%s): %w", i, a.Kind, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, fmt.Sprintf("failed at action %d", i))
			return c.snapshotLocked(), err
		}
	}

	snap := c.snapshotLocked()
	span.SetAttributes(attribute.String("calculator.display", snap.Display))
	span.SetStatus(codes.Ok, "")
	return snap, nil
}

func (c *Calculator) doLocked(ctx context.Context, a Action) error {
	name := a.Kind.String()
	ctx, span := tracer.Start(ctx, "calculator."+name,
		trace.WithAttributes(
			attribute.String("calculator.action", name),
			attribute.String("calculator.display.before", c.machine.Display()),
		),
	)
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	if err := c.applyLocked(ctx, logger, a); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	actionsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("action", name)))

	span.SetAttributes(
		attribute.String("calculator.display", c.machine.Display()),
		attribute.String("calculator.phase", c.machine.Phase().String()),
	)
	span.SetStatus(codes.Ok, "")

	logger.Debug("calculator action applied",
		zap.String("action", name),
		zap.String("display", c.machine.Display()),
		zap.String("phase", c.machine.Phase().String()),
	)
	return nil
}

func (c *Calculator) applyLocked(ctx context.Context, logger *zap.Logger, a Action) error {
	switch a.Kind {
	case ActionDigit:
		return c.machine.PressDigit(a.Digit)

	case ActionDecimal:
		c.machine.PressDecimal()

	case ActionOperator:
		if a.Operator == engine.OpNone {
			return fmt.Errorf("%w: none", engine.ErrUnknownOperator)
		}
		if ev, ok := c.machine.PressOperator(a.Operator); ok {
			c.recordEvaluation(ctx, ev)
		}

	case ActionEquals:
		entry, ev, ok := c.machine.Equals()
		if !ok {
			return nil
		}
		c.recordEvaluation(ctx, ev)
		c.history.Record(entry)
		historyGauge.Record(ctx, int64(c.history.Len()))

		trace.SpanFromContext(ctx).AddEvent("history.recorded", trace.WithAttributes(
			attribute.String("entry", entry),
		))
		logger.Info("calculation completed",
			zap.String("entry", entry),
			zap.Int("history_entries", c.history.Len()),
		)

		if c.ready && !c.autoOpened {
			c.autoOpened = true
			c.drawer.Open()
			logger.Info("history drawer opened after first calculation")
		}

	case ActionClear:
		c.machine.ClearAll()

	case ActionClearHistory:
		c.history.Clear()
		historyGauge.Record(ctx, 0)

	case ActionToggleSign:
		c.machine.ToggleSign()

	case ActionPercent:
		c.machine.Percent()

	case ActionToggleTheme:
		c.theme = c.theme.Toggle()

	case ActionToggleHistory:
		c.drawer.Toggle()

	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Kind)
	}
	return nil
}

func (c *Calculator) recordEvaluation(ctx context.Context, ev engine.Evaluation) {
	attrs := metric.WithAttributes(attribute.String("operator", ev.Op.String()))
	evaluationsCounter.Add(ctx, 1, attrs)

	span := trace.SpanFromContext(ctx)
	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("operator", ev.Op.String()),
		attribute.Float64("left", ev.Left),
		attribute.Float64("right", ev.Right),
		attribute.Float64("result", ev.Result),
	))

	if ev.Invalid() || math.IsInf(ev.Result, 0) {
		invalidResultsCounter.Add(ctx, 1, attrs)
		return
	}
	resultGauge.Record(ctx, ev.Result, attrs)
}

func (c *Calculator) snapshotLocked() Snapshot {
	open, closing := c.drawer.State()

	snap := Snapshot{
		Display:        c.machine.Display(),
		Expression:     c.machine.Expression(),
		Phase:          c.machine.Phase().String(),
		History:        c.history.Entries(),
		HistoryOpen:    open,
		HistoryClosing: closing,
		Theme:          c.theme,
	}
	if op, ok := c.machine.PendingOperator(); ok {
		snap.PendingOperator = op.Glyph()
	}
	return snap
}
