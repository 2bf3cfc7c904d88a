// Command largenum is a small driver for package largenum.
//
// The demo command constructs two numbers, prints them, subtracts the second
// from the first, and prints the difference.
// The calc command evaluates a single binary operation on two decimal integers.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/govalues/largenum"
)

var errUnknownOp = errors.New("unknown operator")

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment(zap.AddStacktrace(zapcore.PanicLevel))
	}
	return zap.NewProduction(zap.AddStacktrace(zapcore.PanicLevel))
}

func main() {
	cfg, err := NewConfig(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		panic(fmt.Errorf("error create logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *Config, logger *zap.Logger, w io.Writer) error {
	x, err := largenum.Parse(cfg.Left)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	y, err := largenum.Parse(cfg.Right)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	if cfg.Mode == DemoMode {
		fmt.Fprintln(w, x)
		fmt.Fprintln(w, y)
	}

	z, err := eval(x, cfg.Op, y, cfg.Parallel)
	if err != nil {
		return fmt.Errorf("evaluating %q %s %q: %w", cfg.Left, cfg.Op, cfg.Right, err)
	}
	logger.Debug("evaluated",
		zap.Stringer("left", x),
		zap.String("op", cfg.Op),
		zap.Stringer("right", y),
		zap.Int("limbs", z.Len()),
	)

	_, err = z.WriteTo(w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func eval(x *largenum.Number, op string, y *largenum.Number, parallel bool) (*largenum.Number, error) {
	switch op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*":
		if parallel {
			return x.MulParallel(y)
		}
		return x.Mul(y)
	case "/":
		return x.Quo(y)
	case "%":
		return x.Rem(y)
	case "^":
		exp, ok := y.Uint64()
		if !ok || exp > math.MaxUint32 {
			return nil, fmt.Errorf("exponent %v: %w", y, largenum.ErrOverflow)
		}
		return x.Pow(uint(exp))
	default:
		return nil, fmt.Errorf("%q: %w", op, errUnknownOp)
	}
}
