package log

import (
	"sort"
	"sync"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// WriteHook is called for every entry that a logger writes, after the entry
// has been encoded to the logger's outputs. The fields include those added
// with With as well as those passed to the logging call itself.
type WriteHook func(entry zapcore.Entry, fields []zapcore.Field) error

type hookRegistry struct {
	lock  sync.RWMutex
	hooks map[string]WriteHook
}

func newHookRegistry(initial map[string]WriteHook) *hookRegistry {
	hr := &hookRegistry{
		hooks: map[string]WriteHook{},
	}
	if initial != nil {
		hr.hooks = collections.CopyMap(initial)
	}
	return hr
}

func (hr *hookRegistry) register(key string, hook WriteHook) stackerr.Error {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	if _, ok := hr.hooks[key]; ok {
		return stackerr.Errorf("Write hook key `%s` is already registered", key)
	}
	hr.hooks[key] = hook
	return nil
}

func (hr *hookRegistry) deregister(key string) stackerr.Error {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	if _, ok := hr.hooks[key]; !ok {
		return stackerr.Errorf("Write hook key `%s` is not registered", key)
	}
	delete(hr.hooks, key)
	return nil
}

func (hr *hookRegistry) snapshot() map[string]WriteHook {
	hr.lock.RLock()
	defer hr.lock.RUnlock()
	return collections.CopyMap(hr.hooks)
}

// run calls every hook in ascending key order and combines their errors.
func (hr *hookRegistry) run(entry zapcore.Entry, fields []zapcore.Field) (err error) {
	hooks := hr.snapshot()
	keys := collections.MapKeys(hooks)
	sort.Strings(keys)
	for _, k := range keys {
		err = multierr.Append(err, hooks[k](entry, fields))
	}
	return err
}

type core struct {
	zapcore.LevelEnabler
	enc    zapcore.Encoder
	out    zapcore.WriteSyncer
	fields []zapcore.Field
	hooks  *hookRegistry
}

func (c *core) clone() *core {
	return &core{
		LevelEnabler: c.LevelEnabler,
		enc:          c.enc.Clone(),
		out:          c.out,
		fields:       append([]zapcore.Field(nil), c.fields...),
		hooks:        c.hooks,
	}
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := c.clone()
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	clone.fields = append(clone.fields, fields...)
	return clone
}

func (c *core) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *core) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	_, err = c.out.Write(buf.Bytes())
	buf.Free()

	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	err = multierr.Append(err, c.hooks.run(entry, all))

	if entry.Level > zapcore.ErrorLevel {
		// Panic and fatal entries may end the process, so flush now
		err = multierr.Append(err, c.out.Sync())
	}
	return err
}

func (c *core) Sync() error {
	return c.out.Sync()
}
