package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/interval/pkg/interval"
	"github.com/chazu/interval/pkg/kernel"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpInterval wraps an interval so it can be passed between builtins.
type sexpInterval struct {
	iv interval.Interval[float64]
}

func (s *sexpInterval) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(interval %v %v)", s.iv.A(), s.iv.B())
}
func (s *sexpInterval) Type() *zygo.RegisteredType { return nil }

// sexpSolid wraps a kernel.Solid.
type sexpSolid struct {
	solid kernel.Solid
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	min, max := s.solid.BoundingBox()
	return fmt.Sprintf("(solid %v %v)", min, max)
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		str, ok := args[i].(*zygo.SexpStr)
		if !ok || !strings.HasPrefix(str.S, kwPrefix) {
			result.positional = append(result.positional, args[i])
			continue
		}
		name := str.S[len(kwPrefix):]
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toFloats(args []zygo.Sexp) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func toInterval(s zygo.Sexp) (interval.Interval[float64], error) {
	if v, ok := s.(*sexpInterval); ok {
		return v.iv, nil
	}
	return interval.Interval[float64]{}, fmt.Errorf("expected interval, got %T (%s)", s, s.SexpString(nil))
}

func toSolid(s zygo.Sexp) (kernel.Solid, error) {
	if v, ok := s.(*sexpSolid); ok {
		return v.solid, nil
	}
	return nil, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_z) and plain strings ("z").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toAxis reads the :axis keyword, defaulting to x.
func toAxis(kw map[string]zygo.Sexp) (kernel.Axis, error) {
	s, ok := kw["axis"]
	if !ok {
		return kernel.AxisX, nil
	}
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected axis keyword (:x, :y, :z): %w", err)
	}
	return kernel.ParseAxis(name)
}

func wantArgs(name string, args []zygo.Sexp, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s requires exactly %d arguments, got %d", name, n, len(args))
	}
	return nil
}

func boolSexp(b bool) zygo.Sexp { return &zygo.SexpBool{Val: b} }

func floatSexp(f float64) zygo.Sexp { return &zygo.SexpFloat{Val: f} }

func intervalSexp(iv interval.Interval[float64]) zygo.Sexp { return &sexpInterval{iv: iv} }

// optionalInterval returns SexpNull when ok is false.
func optionalInterval(iv interval.Interval[float64], ok bool) zygo.Sexp {
	if !ok {
		return zygo.SexpNull
	}
	return intervalSexp(iv)
}

// guarded runs an interpolation and turns a precondition panic into an
// ordinary error so user code sees an eval error instead of a crash.
func guarded(op string, fn func() float64) (res zygo.Sexp, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*interval.PreconditionError)
			if !ok {
				panic(r)
			}
			res, err = zygo.SexpNull, fmt.Errorf("%s: %w", op, pe)
		}
	}()
	return floatSexp(fn()), nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

type userFn = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// unaryInterval adapts a function of one interval into a builtin.
func unaryInterval(op string, fn func(interval.Interval[float64]) zygo.Sexp) userFn {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(op, args, 1); err != nil {
			return zygo.SexpNull, err
		}
		iv, err := toInterval(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", op, err)
		}
		return fn(iv), nil
	}
}

// binaryInterval adapts a function of two intervals into a builtin.
func binaryInterval(op string, fn func(a, b interval.Interval[float64]) zygo.Sexp) userFn {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(op, args, 2); err != nil {
			return zygo.SexpNull, err
		}
		a, err := toInterval(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: first: %w", op, err)
		}
		b, err := toInterval(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: second: %w", op, err)
		}
		return fn(a, b), nil
	}
}

// registerBuiltins adds the interval and kernel builtins to env. Names use
// snake_case because preprocessSource rewrites kebab-case before parsing.
func registerBuiltins(env *zygo.Zlisp, k kernel.Kernel) {
	registerIntervalBuiltins(env)
	registerInterpolationBuiltins(env)
	registerKernelBuiltins(env, k)
}

func registerIntervalBuiltins(env *zygo.Zlisp) {
	// (interval a b)
	env.AddFunction("interval", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("interval", args, 2); err != nil {
			return zygo.SexpNull, err
		}
		f, err := toFloats(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interval: %w", err)
		}
		return intervalSexp(interval.New(f[0], f[1])), nil
	})

	// (unit)
	env.AddFunction("unit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("unit", args, 0); err != nil {
			return zygo.SexpNull, err
		}
		return intervalSexp(interval.Unit[float64]()), nil
	})

	unary := map[string]func(interval.Interval[float64]) zygo.Sexp{
		"bound_a":    func(i interval.Interval[float64]) zygo.Sexp { return floatSexp(i.A()) },
		"bound_b":    func(i interval.Interval[float64]) zygo.Sexp { return floatSexp(i.B()) },
		"lower":      func(i interval.Interval[float64]) zygo.Sexp { return floatSexp(i.Min()) },
		"upper":      func(i interval.Interval[float64]) zygo.Sexp { return floatSexp(i.Max()) },
		"extent":     func(i interval.Interval[float64]) zygo.Sexp { return floatSexp(i.Extent()) },
		"ascending":  func(i interval.Interval[float64]) zygo.Sexp { return boolSexp(i.IsAscending()) },
		"descending": func(i interval.Interval[float64]) zygo.Sexp { return boolSexp(i.IsDescending()) },
		"empty":      func(i interval.Interval[float64]) zygo.Sexp { return boolSexp(i.IsEmpty()) },
		"finite":     func(i interval.Interval[float64]) zygo.Sexp { return boolSexp(i.IsFinite()) },
		"reversed":   func(i interval.Interval[float64]) zygo.Sexp { return intervalSexp(i.Reversed()) },
		"normalized": func(i interval.Interval[float64]) zygo.Sexp { return intervalSexp(i.Normalized()) },
	}
	for name, fn := range unary {
		env.AddFunction(name, unaryInterval(name, fn))
	}

	binary := map[string]func(a, b interval.Interval[float64]) zygo.Sexp{
		"contains_interval": func(a, b interval.Interval[float64]) zygo.Sexp { return boolSexp(a.ContainsInterval(b)) },
		"intersects":        func(a, b interval.Interval[float64]) zygo.Sexp { return boolSexp(a.Intersects(b)) },
		"intersection":      func(a, b interval.Interval[float64]) zygo.Sexp { return optionalInterval(a.Intersection(b)) },
	}
	for name, fn := range binary {
		env.AddFunction(name, binaryInterval(name, fn))
	}

	// (contains i v)
	env.AddFunction("contains", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("contains", args, 2); err != nil {
			return zygo.SexpNull, err
		}
		iv, err := toInterval(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: %w", err)
		}
		v, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: value: %w", err)
		}
		return boolSexp(iv.Contains(v)), nil
	})

	// (clamp i v)
	env.AddFunction("clamp", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("clamp", args, 2); err != nil {
			return zygo.SexpNull, err
		}
		iv, err := toInterval(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("clamp: %w", err)
		}
		v, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("clamp: value: %w", err)
		}
		return floatSexp(iv.Clamp(v)), nil
	})

	// (union i j ...) folds any number of intervals, at least one.
	env.AddFunction("union", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 0 {
			return zygo.SexpNull, fmt.Errorf("union requires at least one interval")
		}
		acc, err := toInterval(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("union: argument 1: %w", err)
		}
		acc = acc.Normalized()
		for i, a := range args[1:] {
			iv, err := toInterval(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("union: argument %d: %w", i+2, err)
			}
			acc = acc.Union(iv)
		}
		return intervalSexp(acc), nil
	})
}

func registerInterpolationBuiltins(env *zygo.Zlisp) {
	// (interpolate-to v i)
	env.AddFunction("interpolate_to", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("interpolate-to", args, 2); err != nil {
			return zygo.SexpNull, err
		}
		v, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate-to: value: %w", err)
		}
		iv, err := toInterval(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate-to: %w", err)
		}
		return guarded("interpolate-to", func() float64 { return interval.InterpolatedTo(v, iv) })
	})

	// (interpolate-from v i)
	env.AddFunction("interpolate_from", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("interpolate-from", args, 2); err != nil {
			return zygo.SexpNull, err
		}
		v, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate-from: value: %w", err)
		}
		iv, err := toInterval(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate-from: %w", err)
		}
		return guarded("interpolate-from", func() float64 { return interval.InterpolatedFrom(v, iv) })
	})

	// (interpolate-between v from to)
	env.AddFunction("interpolate_between", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("interpolate-between", args, 3); err != nil {
			return zygo.SexpNull, err
		}
		v, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate-between: value: %w", err)
		}
		from, err := toInterval(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate-between: source: %w", err)
		}
		to, err := toInterval(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate-between: target: %w", err)
		}
		return guarded("interpolate-between", func() float64 { return interval.InterpolatedFromTo(v, from, to) })
	})
}

func registerKernelBuiltins(env *zygo.Zlisp, k kernel.Kernel) {
	// (box x y z)
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("box", args, 3); err != nil {
			return zygo.SexpNull, err
		}
		f, err := toFloats(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		if f[0] <= 0 || f[1] <= 0 || f[2] <= 0 {
			return zygo.SexpNull, fmt.Errorf("box: dimensions must be positive, got %v", f)
		}
		return &sexpSolid{solid: k.Box(f[0], f[1], f[2])}, nil
	})

	// (cylinder height radius)
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("cylinder", args, 2); err != nil {
			return zygo.SexpNull, err
		}
		f, err := toFloats(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		if f[0] <= 0 || f[1] <= 0 {
			return zygo.SexpNull, fmt.Errorf("cylinder: height and radius must be positive, got %v", f)
		}
		return &sexpSolid{solid: k.Cylinder(f[0], f[1])}, nil
	})

	// (translate s x y z) and (rotate s x y z)
	transforms := map[string]func(kernel.Solid, float64, float64, float64) kernel.Solid{
		"translate": k.Translate,
		"rotate":    k.Rotate,
	}
	for op, fn := range transforms {
		env.AddFunction(op, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if err := wantArgs(op, args, 4); err != nil {
				return zygo.SexpNull, err
			}
			s, err := toSolid(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", op, err)
			}
			f, err := toFloats(args[1:])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", op, err)
			}
			return &sexpSolid{solid: fn(s, f[0], f[1], f[2])}, nil
		})
	}

	// (merge a b)
	env.AddFunction("merge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs("merge", args, 2); err != nil {
			return zygo.SexpNull, err
		}
		a, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("merge: first: %w", err)
		}
		b, err := toSolid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("merge: second: %w", err)
		}
		return &sexpSolid{solid: k.Union(a, b)}, nil
	})

	// (span s :axis :y)
	env.AddFunction("span", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw := parseArgs(args)
		if len(kw.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("span requires exactly one solid, got %d", len(kw.positional))
		}
		s, err := toSolid(kw.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("span: %w", err)
		}
		axis, err := toAxis(kw.kw)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("span: %w", err)
		}
		return intervalSexp(kernel.Span(s, axis)), nil
	})

	// (overlap a b :axis :x) is nil when the spans are disjoint.
	env.AddFunction("overlap", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw := parseArgs(args)
		if len(kw.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("overlap requires exactly two solids, got %d", len(kw.positional))
		}
		a, err := toSolid(kw.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("overlap: first: %w", err)
		}
		b, err := toSolid(kw.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("overlap: second: %w", err)
		}
		axis, err := toAxis(kw.kw)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("overlap: %w", err)
		}
		return optionalInterval(kernel.Overlap(a, b, axis)), nil
	})

	// (footprint s1 s2 ... :axis :z)
	env.AddFunction("footprint", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw := parseArgs(args)
		solids := make([]kernel.Solid, 0, len(kw.positional))
		for i, a := range kw.positional {
			s, err := toSolid(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("footprint: argument %d: %w", i+1, err)
			}
			solids = append(solids, s)
		}
		axis, err := toAxis(kw.kw)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("footprint: %w", err)
		}
		return optionalInterval(kernel.Footprint(axis, solids...)), nil
	})
}
