package shared

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/executor"
	"github.com/wangnov/shnote/internal/gate"
	"github.com/wangnov/shnote/internal/i18n"
)

// Env is the per-invocation state every command reads. It is filled once
// before the command tree runs and never changes afterwards.
type Env struct {
	Lang i18n.Lang
	Cat  *i18n.Catalog
	// Rationale is set for execution-class commands.
	Rationale *gate.Rationale
	Log       *zap.Logger
	Streams   executor.Streams

	// SystemLocale reads the OS locale when no locale variable is set; nil
	// skips it.
	SystemLocale func() string

	// ConfigPath is where the config file lives, empty if home is unknown.
	ConfigPath string
	store      *config.Store
	storeErr   error
}

// NewEnv returns an English, non-logging environment for streams.
func NewEnv(streams executor.Streams) *Env {
	return &Env{
		Lang:    i18n.En,
		Cat:     i18n.New(i18n.En),
		Log:     zap.NewNop(),
		Streams: streams,
	}
}

// LoadStore opens the config file at path. A failure is remembered and
// reported by the first command that needs configuration, so commands that
// do not (help, completions) keep working.
func (e *Env) LoadStore(path string, err error) {
	if err != nil {
		e.storeErr = err
		return
	}
	e.ConfigPath = path
	e.store, e.storeErr = config.Open(path)
}

// ResetStore restores the default settings even when the config file could
// not be loaded, and makes the fresh store current. movedTo names the copy
// kept of a file that was not valid YAML.
func (e *Env) ResetStore() (store *config.Store, movedTo string, err error) {
	if e.ConfigPath == "" {
		if _, err := e.Store(); err != nil {
			return nil, "", err
		}
		return nil, "", errors.NewRuntimeError("configuration not loaded")
	}
	store, movedTo, err = config.ResetFile(e.ConfigPath)
	if err != nil {
		return nil, movedTo, err
	}
	e.store, e.storeErr = store, nil
	return store, movedTo, nil
}

// Store returns the opened config store.
func (e *Env) Store() (*config.Store, error) {
	if e.storeErr != nil {
		return nil, e.configError(e.storeErr)
	}
	if e.store == nil {
		return nil, errors.NewRuntimeError("configuration not loaded")
	}
	return e.store, nil
}

// Config returns the validated effective configuration.
func (e *Env) Config() (config.Config, error) {
	s, err := e.Store()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := s.Config()
	if err != nil {
		return config.Config{}, e.configError(err)
	}
	return cfg, nil
}

// ConfiguredLanguage returns the language setting, or "" when the
// configuration cannot be read.
func (e *Env) ConfiguredLanguage() string {
	if e.store == nil {
		return ""
	}
	cfg, err := e.store.Config()
	if err != nil {
		return ""
	}
	return cfg.Language
}

// configError reports err as an invalid configuration. Errors that do not
// already name the config file are prefixed with its path.
func (e *Env) configError(err error) error {
	if e.ConfigPath == "" {
		wrapped := errors.Wrap(err, errors.Configuration)
		wrapped.Kind = errors.KindConfigInvalid
		return wrapped
	}

	wrapped := errors.Wrap(err, errors.Configuration, e.Cat.T(i18n.HintResetConfig))
	if !strings.HasPrefix(wrapped.Message, e.ConfigPath) {
		wrapped.Message = e.ConfigPath + ": " + wrapped.Message
	}
	wrapped.Kind = errors.KindConfigInvalid
	wrapped.Subject = e.ConfigPath
	return wrapped
}

// Sync flushes the logger. Errors are ignored: stderr may not support fsync.
func (e *Env) Sync() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
}
