package orders

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/codec"
	"github.com/ib-77/fpkit/pkg/fp/guard"
	"github.com/ib-77/fpkit/pkg/fp/list"
	"github.com/ib-77/fpkit/pkg/fp/report"
	"github.com/ib-77/fpkit/pkg/fp/tuple"
	"github.com/ib-77/fpkit/pkg/fp/valid"
)

const (
	ReasonIncomplete = "incomplete"
	ReasonQuantity   = "quantity"
	ReasonPrice      = "price"
	ReasonBlocked    = "blocked"
	ReasonTotal      = "total"
)

var (
	ErrNoCustomer  = errors.New("customer is missing")
	ErrNotPositive = errors.New("value must be positive")
	ErrBlocked     = errors.New("customer is blocked")
	ErrTooLarge    = errors.New("total above limit")
)

// Order is a raw record as read from an input file.
type Order struct {
	ID        string `json:"id" yaml:"id"`
	Customer  string `json:"customer" yaml:"customer"`
	Quantity  string `json:"quantity" yaml:"quantity"`
	UnitPrice string `json:"unit_price" yaml:"unit_price"`
}

// Line is an order whose fields parsed.
type Line struct {
	ID        string
	Customer  string
	Quantity  int
	UnitPrice float64
}

func (l Line) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Outcome is the result of processing one order. Broken lists every rule a
// rejected line breaks; it stays empty for incomplete orders.
type Outcome struct {
	OrderID string
	Result  fp.Validation[string, Line]
	Broken  []string
}

type Options struct {
	Strict   bool
	MaxTotal float64
	Blocked  []string
}

// Processor turns orders into validated lines and keeps every field failure.
type Processor struct {
	logger   *zap.Logger
	opts     Options
	blocked  map[string]struct{}
	failures *report.Recorder[Order]
	split    func(Order) tuple.Safe3[string, int, float64]
}

func New(logger *zap.Logger, opts Options) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Processor{
		logger:   logger,
		opts:     opts,
		blocked:  make(map[string]struct{}, len(opts.Blocked)),
		failures: report.NewRecorder[Order](),
	}
	for _, c := range opts.Blocked {
		p.blocked[strings.ToLower(c)] = struct{}{}
	}

	onFailure := report.Tee(p.failures.Callback(), report.Log[Order](logger, "order field rejected"))
	p.split = tuple.Bundle3(
		guard.Try(customer, onFailure),
		guard.Try(quantity, onFailure),
		guard.Try(unitPrice, onFailure),
	)

	return p
}

func customer(o Order) (string, error) {
	c := strings.TrimSpace(o.Customer)
	if c == "" {
		return "", ErrNoCustomer
	}
	return c, nil
}

func quantity(o Order) (int, error) {
	return strconv.Atoi(strings.TrimSpace(o.Quantity))
}

func unitPrice(o Order) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(o.UnitPrice), 64)
}

// Failures returns every field failure seen so far.
func (p *Processor) Failures() []report.Failure[Order] {
	return p.failures.Failures()
}

// Process parses o and validates the resulting line. Field failures make the
// order incomplete; validation stops at the first rejected rule.
func (p *Processor) Process(o Order) Outcome {
	fields := p.split(o)

	line := tuple.Merge3(fields, func(c string, q int, price float64) Line {
		return Line{ID: o.ID, Customer: c, Quantity: q, UnitPrice: price}
	})

	l, ok := line.Get()
	if !ok {
		return Outcome{OrderID: o.ID, Result: fp.Invalid[string, Line](ReasonIncomplete)}
	}

	chain := valid.From[string](l).
		Check(positiveQuantity, ReasonQuantity).
		Check(positivePrice, ReasonPrice).
		Then(valid.Check(p.notBlocked, ReasonBlocked, p.logRule("blocked customer")))

	if p.opts.Strict {
		chain = chain.Check(p.withinLimit, ReasonTotal)
	} else {
		chain = chain.Observe(p.withinLimit, p.logRule("total above limit"))
	}

	out := Outcome{OrderID: o.ID, Result: chain.Result()}
	if out.Result.IsInvalid() {
		out.Broken = p.Reasons(l)
	}
	return out
}

// Reasons lists every rule a parsed line breaks, not only the first. The
// total limit counts only in strict mode.
func (p *Processor) Reasons(l Line) []string {
	steps := []func(Line) fp.Validation[string, Line]{
		valid.Check(positiveQuantity, ReasonQuantity, nil),
		valid.Check(positivePrice, ReasonPrice, nil),
		valid.Check(p.notBlocked, ReasonBlocked, nil),
	}
	if p.opts.Strict {
		steps = append(steps, valid.Check(p.withinLimit, ReasonTotal, nil))
	}

	reasons, _ := valid.All(l, false, steps...).Error()
	return reasons
}

func (p *Processor) ProcessAll(orders []Order) []Outcome {
	return list.MapAll(p.Process)(orders)
}

func (p *Processor) logRule(msg string) guard.OnFailure[Line] {
	return func(l Line, err error) {
		p.logger.Info(msg, zap.String("order", l.ID), zap.String("customer", l.Customer), zap.Error(err))
	}
}

func positiveQuantity(l Line) error {
	if l.Quantity <= 0 {
		return fmt.Errorf("quantity %d: %w", l.Quantity, ErrNotPositive)
	}
	return nil
}

func positivePrice(l Line) error {
	if l.UnitPrice <= 0 {
		return fmt.Errorf("unit price %.2f: %w", l.UnitPrice, ErrNotPositive)
	}
	return nil
}

func (p *Processor) notBlocked(l Line) error {
	if _, ok := p.blocked[strings.ToLower(l.Customer)]; ok {
		return fmt.Errorf("%s: %w", l.Customer, ErrBlocked)
	}
	return nil
}

func (p *Processor) withinLimit(l Line) error {
	if p.opts.MaxTotal > 0 && l.Total() > p.opts.MaxTotal {
		return fmt.Errorf("%.2f > %.2f: %w", l.Total(), p.opts.MaxTotal, ErrTooLarge)
	}
	return nil
}

// Parse decodes a list of orders in the given format.
func Parse(data string, format string) ([]Order, error) {
	parse, err := codec.ParseFn[[]Order](format)
	if err != nil {
		return nil, err
	}

	out, err := guard.TranslateWith(parse, func(err error) error {
		return fmt.Errorf("malformed %s order list: %w", format, err)
	})(data)
	if err != nil {
		return nil, err
	}
	return out.OrElse(nil), nil
}
