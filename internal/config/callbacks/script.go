// Package callbacks compiles the Starlark scripts that stand in for function-valued
// control options when a configuration is loaded from a file.
//
// A script sees its input as the dict "ctx" and returns its result by assigning "_":
//
//	_ = str(ctx.get("distance")) + " km"
package callbacks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atlanticdynamic/mapctl/internal/config/protohelpers"
	"github.com/atlanticdynamic/mapctl/internal/interpolation"
	"github.com/robbyt/go-polyscript/engines/starlark"
	"github.com/robbyt/go-polyscript/engines/starlark/evaluator"
	"github.com/robbyt/go-polyscript/platform"
	"github.com/robbyt/go-polyscript/platform/constants"
	"github.com/robbyt/go-polyscript/platform/data"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultTimeout bounds a single callback evaluation. Callbacks run synchronously inside
// control event handling, so the default is short.
const DefaultTimeout = 1 * time.Second

// Key-value field names.
const (
	KeyCode    = "code"
	KeyURI     = "uri"
	KeyTimeout = "timeout"
)

// Script is a Starlark callback.
type Script struct {
	// Code contains the Starlark source.
	Code string `env_interpolation:"no"`
	// URI locates the source instead of Code: a path, file:// or http(s):// URL. It may
	// reference the environment; Validate expands it in place.
	URI string `env_interpolation:"yes"`
	// Timeout bounds each evaluation; zero means DefaultTimeout.
	Timeout time.Duration

	// sourceURI is URI as written, kept once Validate expanded a reference.
	sourceURI string

	compiled  *evaluator.Evaluator
	buildOnce sync.Once
	buildErr  error
}

// NewScript returns a Script for inline code.
func NewScript(code string) *Script {
	return &Script{Code: code}
}

// String returns a concise representation of the Script.
func (s *Script) String() string {
	if s == nil {
		return "Starlark(nil)"
	}
	if s.URI != "" {
		return fmt.Sprintf("Starlark(uri=%s, timeout=%s)", s.URI, s.GetTimeout())
	}
	return fmt.Sprintf("Starlark(code=%d chars, timeout=%s)", len(s.Code), s.GetTimeout())
}

// GetTimeout returns the timeout, with the default fallback.
func (s *Script) GetTimeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

// Validate checks the source fields and compiles the script.
func (s *Script) Validate() error {
	var errs []error

	written := s.URI
	if err := interpolation.InterpolateStruct(s); err != nil {
		errs = append(errs, fmt.Errorf("interpolation failed for callback script: %w", err))
	}
	if s.URI != written && s.sourceURI == "" {
		s.sourceURI = written
	}

	if s.Code == "" && s.URI == "" {
		errs = append(errs, ErrMissingCodeAndURI)
	}
	if s.Code != "" && s.URI != "" {
		errs = append(errs, ErrBothCodeAndURI)
	}
	if s.Timeout < 0 {
		errs = append(errs, ErrNegativeTimeout)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.build()
	return s.buildErr
}

// build compiles the script exactly once.
func (s *Script) build() {
	s.buildOnce.Do(func() {
		scriptLoader, err := createLoaderFromSource(s.Code, s.URI)
		if err != nil {
			s.buildErr = fmt.Errorf("%w: %w", ErrLoaderCreation, err)
			return
		}

		logger := slog.Default().WithGroup("callbacks")
		s.compiled, err = starlark.FromStarlarkLoader(logger.Handler(), scriptLoader)
		if err != nil {
			s.buildErr = fmt.Errorf("%w: %w", ErrCompilationFailed, err)
		}
	})
}

// GetCompiledEvaluator returns the compiled script, compiling it on first use.
func (s *Script) GetCompiledEvaluator() (platform.Evaluator, error) {
	s.build()
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	return s.compiled, nil
}

// Call evaluates the script with input exposed as ctx and returns the value of "_".
func (s *Script) Call(ctx context.Context, input map[string]any) (any, error) {
	compiled, err := s.GetCompiledEvaluator()
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.GetTimeout())
	defer cancel()

	contextProvider := data.NewContextProvider(constants.EvalData)
	enrichedCtx, err := contextProvider.AddDataToContext(timeoutCtx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}

	result, err := compiled.Eval(enrichedCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	return result.Interface(), nil
}

// CallString evaluates the script and requires a string result.
func (s *Script) CallString(ctx context.Context, input map[string]any) (string, error) {
	v, err := s.Call(ctx, input)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: want string, got %T", ErrUnexpectedResult, v)
	}
	return str, nil
}

// SourceURI returns the URI as written in the configuration, before expansion.
func (s *Script) SourceURI() string {
	if s.sourceURI != "" {
		return s.sourceURI
	}
	return s.URI
}

// Equals compares the script source and timeout. URIs are compared as written; when both
// were expanded, the expanded URIs must match too.
func (s *Script) Equals(other *Script) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Code != other.Code || s.SourceURI() != other.SourceURI() || s.Timeout != other.Timeout {
		return false
	}
	if s.sourceURI != "" && other.sourceURI != "" {
		return s.URI == other.URI
	}
	return true
}

// SameCallback compares two function-valued options, each given as its script and
// whether a Go function is set. A script carries the callback whenever either side has
// one, so the Go adapter built from it is not compared. Without scripts only the
// presence of the Go function is compared.
func SameCallback(a *Script, aHasFunc bool, b *Script, bHasFunc bool) bool {
	if a != nil || b != nil {
		return a.Equals(b)
	}
	return aHasFunc == bHasFunc
}

// ToProto converts the script to its key-value representation.
func (s *Script) ToProto() (*structpb.Struct, error) {
	if s == nil {
		return nil, nil
	}
	w := protohelpers.NewWriter()
	w.String(KeyCode, s.Code)
	w.String(KeyURI, s.SourceURI())
	if s.Timeout != 0 {
		w.String(KeyTimeout, s.Timeout.String())
	}
	return w.Result()
}

// FromProto creates a Script from its key-value representation. It does not compile.
func FromProto(pb *structpb.Struct) (*Script, error) {
	if pb == nil {
		return nil, nil
	}
	r := protohelpers.NewReader(pb)
	s := &Script{
		Code: r.String(KeyCode),
		URI:  r.String(KeyURI),
	}
	if raw := r.String(KeyTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			r.AddError(fmt.Errorf("%w: %w", ErrInvalidTimeout, err))
		}
		s.Timeout = d
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
