package log

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type recorded struct {
	entry  zapcore.Entry
	fields map[string]zapcore.Field
}

func recorder(into *[]recorded) WriteHook {
	return func(entry zapcore.Entry, fields []zapcore.Field) error {
		r := recorded{entry: entry, fields: map[string]zapcore.Field{}}
		for _, f := range fields {
			r.fields[f.Key] = f
		}
		*into = append(*into, r)
		return nil
	}
}

func newTestLogger(t *testing.T, input NewInput) (Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.log")
	input.OutputPaths = []string{path}
	l, err := New(input)
	require.NoError(t, err)
	return l, path
}

func readJSONLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	lines := []map[string]any{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := map[string]any{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestNewWritesJSON(t *testing.T) {
	l, path := newTestLogger(t, NewInput{
		Name:          "unit",
		Level:         zapcore.InfoLevel,
		InitialFields: map[string]any{"run_id": "abc"},
	})
	l.Debugw("dropped")
	l.Infow("pushed", "value", 3)
	require.NoError(t, l.Sync())

	lines := readJSONLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "pushed", lines[0]["msg"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "unit", lines[0]["logger"])
	assert.Equal(t, "abc", lines[0]["run_id"])
	assert.EqualValues(t, 3, lines[0]["value"])
}

func TestWriteHooksSeeAllFields(t *testing.T) {
	entries := []recorded{}
	l, _ := newTestLogger(t, NewInput{
		Level:         zapcore.DebugLevel,
		IsDevelopment: true,
		InitialFields: map[string]any{"run_id": "abc"},
		WriteHooks:    map[string]WriteHook{"rec": recorder(&entries)},
	})

	l.With("list", "a").Debugw("sorted", "length", 4)
	require.Len(t, entries, 1)
	assert.Equal(t, "sorted", entries[0].entry.Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].entry.Level)
	assert.Equal(t, "abc", entries[0].fields["run_id"].String)
	assert.Equal(t, "a", entries[0].fields["list"].String)
	assert.EqualValues(t, 4, entries[0].fields["length"].Integer)
}

func TestRegisterWriteHook(t *testing.T) {
	l, _ := newTestLogger(t, NewInput{Level: zapcore.InfoLevel, IsDevelopment: true})
	entries := []recorded{}

	require.NoError(t, l.RegisterWriteHook("rec", recorder(&entries)))
	assert.Error(t, l.RegisterWriteHook("rec", recorder(&entries)))
	assert.Contains(t, l.Config().WriteHooks, "rec")

	// Derived loggers share the hooks of their parent
	l.With("k", "v").Infof("value %d", 1)
	require.Len(t, entries, 1)
	assert.Equal(t, "value 1", entries[0].entry.Message)

	require.NoError(t, l.DeregisterWriteHook("rec"))
	assert.Error(t, l.DeregisterWriteHook("rec"))
	l.Infow("after")
	assert.Len(t, entries, 1)
}

func TestWriteHookErrorsAreCombined(t *testing.T) {
	l, _ := newTestLogger(t, NewInput{Level: zapcore.InfoLevel, IsDevelopment: true})
	first := errors.New("first")
	second := errors.New("second")
	require.NoError(t, l.RegisterWriteHook("a", func(zapcore.Entry, []zapcore.Field) error { return first }))
	require.NoError(t, l.RegisterWriteHook("b", func(zapcore.Entry, []zapcore.Field) error { return second }))

	c := &core{
		LevelEnabler: zapcore.InfoLevel,
		enc:          zapcore.NewJSONEncoder(zapcore.EncoderConfig{MessageKey: "msg"}),
		out:          zapcore.AddSync(&discard{}),
		hooks:        l.(logger).hooks,
	}
	err := c.Write(zapcore.Entry{Level: zapcore.InfoLevel, Message: "m"}, nil)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestErrorLogsMessageAndField(t *testing.T) {
	entries := []recorded{}
	l, _ := newTestLogger(t, NewInput{
		Level:         zapcore.InfoLevel,
		IsDevelopment: true,
		WriteHooks:    map[string]WriteHook{"rec": recorder(&entries)},
	})
	l.Error(errors.New("index 9 out of range"))
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].entry.Level)
	assert.Equal(t, "index 9 out of range", entries[0].entry.Message)
	assert.Contains(t, entries[0].fields, "error")

	l.WithError(errors.New("boom")).Warnw("refused")
	require.Len(t, entries, 2)
	assert.Contains(t, entries[1].fields, "error")
}

func TestInvalidOutputPath(t *testing.T) {
	_, err := New(NewInput{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "out.log")}})
	assert.Error(t, err)
}

func TestConfigRoundTrip(t *testing.T) {
	l, path := newTestLogger(t, NewInput{
		Name:          "round",
		Level:         zapcore.WarnLevel,
		InitialFields: map[string]any{"a": 1},
	})
	c := l.Config()
	assert.Equal(t, "round", c.Name)
	assert.Equal(t, zapcore.WarnLevel, c.Level)
	assert.Equal(t, []string{path}, c.OutputPaths)
	assert.Equal(t, map[string]any{"a": 1}, c.InitialFields)

	// Mutating the returned config does not affect the logger's copy
	c.InitialFields["b"] = 2
	assert.NotContains(t, l.Config().InitialFields, "b")
}

func TestContextLogger(t *testing.T) {
	assert.Equal(t, Default().Config().Name, FromContext(context.Background()).Config().Name)

	l, _ := newTestLogger(t, NewInput{Name: "ctx", Level: zapcore.InfoLevel})
	ctx := LogContext(context.Background(), l)
	assert.Equal(t, "ctx", FromContext(ctx).Config().Name)
}

func TestSweetenDefaultLogger(t *testing.T) {
	previous := Default().Config()
	path := filepath.Join(t.TempDir(), "default.log")
	require.NoError(t, InitDefault(NewInput{Name: "default-test", Level: zapcore.InfoLevel, OutputPaths: []string{path}}))
	t.Cleanup(func() {
		assert.NoError(t, InitDefault(previous))
	})

	entries := []recorded{}
	require.NoError(t, RegisterDefaultWriteHook("rec", recorder(&entries)))
	require.NoError(t, SweetenDefaultLogger(map[string]any{"run_id": "r-1"}))

	// Hooks survive the rebuild of the default logger
	Infow("hello")
	require.Len(t, entries, 1)
	assert.Equal(t, "r-1", entries[0].fields["run_id"].String)

	require.NoError(t, UnsweetenDefaultLogger([]string{"run_id", "missing"}))
	Infow("again")
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[1].fields, "run_id")

	require.NoError(t, DeregisterDefaultWriteHook("rec"))
	assert.Error(t, DeregisterDefaultWriteHook("rec"))
}
