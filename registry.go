package blacklog

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

// Config is one JSON object out of a configuration document.
type Config = fastjson.Value

// Factory builds one kind of component from its configuration object. The
// registry is passed along so composite components can build their children.
type Factory[T any] interface {
	// Type is the value of the "type" field this factory answers to.
	Type() string
	New(cfg *Config, reg *Registry) (T, error)
}

// Registry maps "type" discriminators to factories for every component
// class, letting a whole logging pipeline be assembled from a JSON document.
// The built-in layouts, outputs, handles and loggers are pre-registered.
type Registry struct {
	layouts map[string]Factory[Layout]
	outputs map[string]Factory[Output]
	handles map[string]Factory[Handle]
	loggers map[string]Factory[Logger]
}

func NewRegistry() *Registry {
	r := &Registry{
		layouts: make(map[string]Factory[Layout]),
		outputs: make(map[string]Factory[Output]),
		handles: make(map[string]Factory[Handle]),
		loggers: make(map[string]Factory[Logger]),
	}
	r.RegisterLayout(patternLayoutFactory{})
	r.RegisterOutput(termOutputFactory{})
	r.RegisterOutput(fileOutputFactory{})
	r.RegisterOutput(nullOutputFactory{})
	r.RegisterHandle(syncHandleFactory{})
	r.RegisterHandle(devHandleFactory{})
	r.RegisterLogger(syncLoggerFactory{})
	r.RegisterLogger(actorLoggerFactory{})
	return r
}

func (r *Registry) RegisterLayout(f Factory[Layout]) { r.layouts[f.Type()] = f }
func (r *Registry) RegisterOutput(f Factory[Output]) { r.outputs[f.Type()] = f }
func (r *Registry) RegisterHandle(f Factory[Handle]) { r.handles[f.Type()] = f }
func (r *Registry) RegisterLogger(f Factory[Logger]) { r.loggers[f.Type()] = f }

// Layout builds a layout from its configuration object.
func (r *Registry) Layout(cfg *Config) (Layout, error) {
	return build(r, r.layouts, cfg, "layout")
}

// Output builds an output from its configuration object.
func (r *Registry) Output(cfg *Config) (Output, error) {
	return build(r, r.outputs, cfg, "output")
}

// Handle builds a handle from its configuration object.
func (r *Registry) Handle(cfg *Config) (Handle, error) {
	return build(r, r.handles, cfg, "handle")
}

// Logger builds a logger from its configuration object.
func (r *Registry) Logger(cfg *Config) (Logger, error) {
	return build(r, r.loggers, cfg, "logger")
}

// LoggerFromJSON parses a JSON document and builds the logger it describes.
func (r *Registry) LoggerFromJSON(data []byte) (Logger, error) {
	var p fastjson.Parser
	cfg, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse logger config: %w", err)
	}
	return r.Logger(cfg)
}

func build[T any](r *Registry, factories map[string]Factory[T], cfg *Config, class string) (T, error) {
	var zero T
	ty, err := configType(cfg)
	if err != nil {
		return zero, fmt.Errorf("%s config: %w", class, err)
	}
	f, ok := factories[ty]
	if !ok {
		return zero, fmt.Errorf("%s config: unknown type %q", class, ty)
	}
	v, err := f.New(cfg, r)
	if err != nil {
		return zero, fmt.Errorf("%s %q: %w", class, ty, err)
	}
	return v, nil
}

func configType(cfg *Config) (string, error) {
	v := cfg.Get("type")
	if v == nil {
		return "", errors.New(`field "type" is required`)
	}
	b, err := v.StringBytes()
	if err != nil {
		return "", errors.New(`field "type" must be a string`)
	}
	return string(b), nil
}

func configString(cfg *Config, field string) (string, error) {
	v := cfg.Get(field)
	if v == nil {
		return "", fmt.Errorf("field %q is required", field)
	}
	b, err := v.StringBytes()
	if err != nil {
		return "", fmt.Errorf("field %q must be a string", field)
	}
	return string(b), nil
}

func buildEach[T any](cfg *Config, field string, build func(*Config) (T, error)) ([]T, error) {
	arr := cfg.GetArray(field)
	if arr == nil {
		return nil, fmt.Errorf("field %q must be an array", field)
	}
	out := make([]T, 0, len(arr))
	for _, item := range arr {
		v, err := build(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type patternLayoutFactory struct{}

func (patternLayoutFactory) Type() string { return "pattern" }

func (patternLayoutFactory) New(cfg *Config, _ *Registry) (Layout, error) {
	pattern, err := configString(cfg, "pattern")
	if err != nil {
		return nil, err
	}
	return NewPatternLayout(pattern)
}

type termOutputFactory struct{}

func (termOutputFactory) Type() string { return "term" }

func (termOutputFactory) New(*Config, *Registry) (Output, error) {
	return NewTermOutput(), nil
}

type nullOutputFactory struct{}

func (nullOutputFactory) Type() string { return "null" }

func (nullOutputFactory) New(*Config, *Registry) (Output, error) {
	return NullOutput{}, nil
}

type fileOutputFactory struct{}

func (fileOutputFactory) Type() string { return "file" }

func (fileOutputFactory) New(cfg *Config, _ *Registry) (Output, error) {
	path, err := configString(cfg, "path")
	if err != nil {
		return nil, err
	}
	opts := FileOptions{
		RotateBytes: cfg.GetInt64("rotate_bytes"),
		Compress:    cfg.GetBool("compress"),
	}
	return NewFileOutputWith(path, opts)
}

type syncHandleFactory struct{}

func (syncHandleFactory) Type() string { return "synchronous" }

func (syncHandleFactory) New(cfg *Config, reg *Registry) (Handle, error) {
	layoutCfg := cfg.Get("layout")
	if layoutCfg == nil {
		return nil, errors.New(`field "layout" is required`)
	}
	layout, err := reg.Layout(layoutCfg)
	if err != nil {
		return nil, err
	}
	outputs, err := buildEach(cfg, "outputs", reg.Output)
	if err != nil {
		return nil, err
	}
	return NewSyncHandle(layout, outputs), nil
}

type devHandleFactory struct{}

func (devHandleFactory) Type() string { return "dev" }

func (devHandleFactory) New(*Config, *Registry) (Handle, error) {
	return NewDevHandle(), nil
}

type syncLoggerFactory struct{}

func (syncLoggerFactory) Type() string { return "synchronous" }

func (syncLoggerFactory) New(cfg *Config, reg *Registry) (Logger, error) {
	handles, err := buildEach(cfg, "handles", reg.Handle)
	if err != nil {
		return nil, err
	}
	return NewSyncLogger(handles), nil
}

type actorLoggerFactory struct{}

func (actorLoggerFactory) Type() string { return "actor" }

func (actorLoggerFactory) New(cfg *Config, reg *Registry) (Logger, error) {
	handles, err := buildEach(cfg, "handles", reg.Handle)
	if err != nil {
		return nil, err
	}
	return NewActorLogger(handles), nil
}
