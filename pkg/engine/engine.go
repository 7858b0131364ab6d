// Package engine provides a Lisp evaluation engine for interval
// expressions. It wraps zygomys in a sandboxed environment, registers the
// interval, interpolation and kernel builtins, and reports the value of
// the last expression.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/chazu/interval/pkg/interval"
	"github.com/chazu/interval/pkg/kernel"
	"github.com/chazu/interval/pkg/kernel/sdfx"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code, or a violated
// interpolation precondition.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ValueKind classifies the result of an evaluation.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindBool
	KindInterval
	KindSolid
	KindOther
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindInterval:
		return "interval"
	case KindSolid:
		return "solid"
	}
	return "other"
}

// Value is the result of the last expression in a program. Only the field
// matching Kind is meaningful; Text always holds the printed form.
type Value struct {
	Kind     ValueKind
	Number   float64
	Bool     bool
	Interval interval.Interval[float64]
	Text     string
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use;
// each call to Evaluate creates a fresh sandboxed environment.
type Engine struct {
	mu         sync.Mutex
	generation uint64

	log     zerolog.Logger
	timeout time.Duration
	kernel  kernel.Kernel
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log.With().Str("component", "engine").Logger()
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithKernel sets the geometry kernel behind the solid builtins. The
// default is the sdfx kernel.
func WithKernel(k kernel.Kernel) Option {
	return func(e *Engine) {
		e.kernel = k
	}
}

// NewEngine creates a new Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log:     zerolog.Nop(),
		timeout: DefaultTimeout,
		kernel:  sdfx.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs Lisp source and returns the value of its last expression.
//
// Return semantics:
//   - On success: returns value + nil errors + nil error
//   - On parse/eval failure: returns zero value + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns zero value + nil + error
func (e *Engine) Evaluate(source string) (Value, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		v, evalErrs, err := e.evaluate(source)
		ch <- evalResult{value: v, errors: evalErrs, err: err}
	}()

	v, evalErrs, err := waitWithTimeout(ch, gen, &e.mu, &e.generation, e.timeout)
	switch {
	case err != nil:
		e.log.Warn().Err(err).Uint64("generation", gen).Msg("evaluation aborted")
	case len(evalErrs) > 0:
		e.log.Debug().
			Int("errors", len(evalErrs)).
			Str("first", evalErrs[0].Error()).
			Msg("evaluation failed")
	default:
		e.log.Debug().Str("kind", v.Kind.String()).Str("value", v.Text).Msg("evaluated")
	}
	return v, evalErrs, err
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (Value, []EvalError, error) {
	// Empty source is a valid program with no value.
	if strings.TrimSpace(source) == "" {
		return Value{Kind: KindNone}, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, e.kernel)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return Value{}, parseZygomysError(err), nil
	}

	res, err := env.Run()
	if err != nil {
		return Value{}, parseZygomysError(err), nil
	}
	return toValue(res), nil, nil
}

// toValue converts the final Sexp of a program into a Value.
func toValue(s zygo.Sexp) Value {
	if s == nil {
		return Value{Kind: KindNone}
	}
	v := Value{Kind: KindOther, Text: s.SexpString(nil)}
	switch x := s.(type) {
	case *zygo.SexpInt:
		v.Kind, v.Number = KindNumber, float64(x.Val)
	case *zygo.SexpFloat:
		v.Kind, v.Number = KindNumber, x.Val
	case *zygo.SexpBool:
		v.Kind, v.Bool = KindBool, x.Val
	case *sexpInterval:
		v.Kind, v.Interval, v.Text = KindInterval, x.iv, x.iv.String()
	case *sexpSolid:
		v.Kind = KindSolid
	case *zygo.SexpSentinel:
		if x == zygo.SexpNull {
			v.Kind = KindNone
		}
	}
	return v
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}

	// Fallback: no line info available.
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
