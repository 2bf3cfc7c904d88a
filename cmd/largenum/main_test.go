package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/govalues/largenum"
)

func TestNewConfig(t *testing.T) {
	t.Run("demo", func(t *testing.T) {
		cfg, err := NewConfig([]string{"demo"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, DemoMode, cfg.Mode)
		assert.Equal(t, "-400", cfg.Left)
		assert.Equal(t, "-", cfg.Op)
		assert.Equal(t, "-30", cfg.Right)
		assert.False(t, cfg.Verbose)
	})

	t.Run("demo with operands", func(t *testing.T) {
		cfg, err := NewConfig([]string{"demo", "-a", "5", "-b=-7", "-v"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "5", cfg.Left)
		assert.Equal(t, "-7", cfg.Right)
		assert.True(t, cfg.Verbose)
	})

	t.Run("calc", func(t *testing.T) {
		cfg, err := NewConfig([]string{"calc", "-12", "*", "34", "-parallel", "-verbose"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, CalcMode, cfg.Mode)
		assert.Equal(t, "-12", cfg.Left)
		assert.Equal(t, "*", cfg.Op)
		assert.Equal(t, "34", cfg.Right)
		assert.True(t, cfg.Parallel)
		assert.True(t, cfg.Verbose)
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]string{
			"no command":       {},
			"unknown command":  {"eval", "1", "+", "2"},
			"missing operands": {"calc", "1", "+"},
			"extra arguments":  {"demo", "1"},
		}
		for name, args := range tests {
			t.Run(name, func(t *testing.T) {
				var buf bytes.Buffer
				_, err := NewConfig(args, &buf)
				require.ErrorIs(t, err, ErrWrongArgs)
				assert.NotEmpty(t, buf.String())
			})
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := NewConfig([]string{"calc", "1", "+", "2", "-max"}, io.Discard)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("demo", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		var buf bytes.Buffer
		cfg, err := NewConfig([]string{"demo"}, io.Discard)
		require.NoError(t, err)

		require.NoError(t, run(cfg, zap.New(core), &buf))
		assert.Equal(t, "-400\n-30\n-370\n", buf.String())

		entries := logs.FilterMessage("evaluated").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "-", entries[0].ContextMap()["op"])
	})

	t.Run("calc", func(t *testing.T) {
		tests := []struct {
			args []string
			want string
		}{
			{[]string{"calc", "999999999999999999", "+", "1"}, "1000000000000000000"},
			{[]string{"calc", "-400", "-", "-30"}, "-370"},
			{[]string{"calc", "123456789", "*", "987654321"}, "121932631112635269"},
			{[]string{"calc", "123456789", "*", "987654321", "-parallel"}, "121932631112635269"},
			{[]string{"calc", "1000000000000", "/", "3"}, "333333333333"},
			{[]string{"calc", "-7", "%", "2"}, "-1"},
			{[]string{"calc", "2", "^", "100"}, "1267650600228229401496703205376"},
		}
		for _, tt := range tests {
			var buf bytes.Buffer
			cfg, err := NewConfig(tt.args, io.Discard)
			require.NoError(t, err)
			require.NoError(t, run(cfg, zap.NewNop(), &buf))
			assert.Equal(t, tt.want+"\n", buf.String(), strings.Join(tt.args, " "))
		}
	})

	t.Run("parallel", func(t *testing.T) {
		x := strings.Repeat("123456789", 100)
		y := "-" + strings.Repeat("987654321", 90)
		want := largenum.MustParse(x).MustMul(largenum.MustParse(y))

		var buf bytes.Buffer
		cfg := &Config{Mode: CalcMode, Left: x, Op: "*", Right: y, Parallel: true}
		require.NoError(t, run(cfg, zap.NewNop(), &buf))
		assert.Equal(t, want.String()+"\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			cfg  *Config
			want error
		}{
			{&Config{Mode: CalcMode, Left: "1.5", Op: "+", Right: "1"}, largenum.ErrInvalidNumber},
			{&Config{Mode: CalcMode, Left: "1", Op: "+", Right: "+1"}, largenum.ErrInvalidNumber},
			{&Config{Mode: CalcMode, Left: "1", Op: "/", Right: "0"}, largenum.ErrDivisionByZero},
			{&Config{Mode: CalcMode, Left: "1", Op: "%", Right: "-0"}, largenum.ErrDivisionByZero},
			{&Config{Mode: CalcMode, Left: "2", Op: "^", Right: "-1"}, largenum.ErrOverflow},
			{&Config{Mode: CalcMode, Left: "2", Op: "^", Right: "1000000000000"}, largenum.ErrOverflow},
			{&Config{Mode: CalcMode, Left: "2", Op: "^", Right: "4000000000"}, largenum.ErrAllocation},
			{&Config{Mode: CalcMode, Left: "2", Op: "&", Right: "3"}, errUnknownOp},
		}
		for _, tt := range tests {
			var buf bytes.Buffer
			err := run(tt.cfg, zap.NewNop(), &buf)
			assert.True(t, errors.Is(err, tt.want), "%v %v %v: got %v, want %v", tt.cfg.Left, tt.cfg.Op, tt.cfg.Right, err, tt.want)
			assert.Empty(t, buf.String())
		}
	})
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger, err := newLogger(verbose)
		require.NoError(t, err)
		assert.Equal(t, verbose, logger.Core().Enabled(zapcore.DebugLevel))
	}
}
