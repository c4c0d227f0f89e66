// Package view turns catalog data into what the page templates render: fetch
// states, cards, grids and pagers.
package view

import (
	"context"

	"github.com/pkg/errors"

	apperrors "github.com/amaumene/cinetro/internal/errors"
)

// Status is the mutually exclusive state of a fetched view.
type Status int

const (
	Loading Status = iota
	Error
	Ready
)

func (s Status) String() string {
	switch s {
	case Error:
		return "error"
	case Ready:
		return "ready"
	default:
		return "loading"
	}
}

// State is one fetch's outcome. Data is only meaningful when Ready, Message only
// when Error.
type State[T any] struct {
	Status    Status
	Data      T
	Message   string
	Err       error
	abandoned bool
}

// LoadingState is the state before the fetch resolves.
func LoadingState[T any]() State[T] {
	return State[T]{Status: Loading}
}

// ReadyState wraps a resolved value.
func ReadyState[T any](data T) State[T] {
	return State[T]{Status: Ready, Data: data}
}

// ErrorState wraps a failed fetch.
func ErrorState[T any](err error) State[T] {
	return State[T]{Status: Error, Message: ErrorMessage(err), Err: err}
}

func (s State[T]) IsLoading() bool { return s.Status == Loading }
func (s State[T]) IsError() bool   { return s.Status == Error }
func (s State[T]) IsReady() bool   { return s.Status == Ready }

// NotFound reports whether the fetch failed with a 404.
func (s State[T]) NotFound() bool {
	return s.Status == Error && apperrors.IsNotFound(s.Err)
}

// Abandoned reports that the request went away before the fetch resolved. Such a
// state must not be rendered.
func (s State[T]) Abandoned() bool {
	return s.abandoned
}

// Load runs fetch with ctx and resolves the state exactly once.
func Load[T any](ctx context.Context, fetch func(context.Context) (T, error)) State[T] {
	data, err := fetch(ctx)
	if ctx.Err() != nil {
		st := ErrorState[T](ctx.Err())
		st.abandoned = true
		return st
	}
	if err != nil {
		return ErrorState[T](err)
	}
	return ReadyState(data)
}

// ErrorMessage is the text shown to the visitor for err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var cerr *apperrors.CatalogError
	if errors.As(err, &cerr) && cerr.Message != "" {
		return cerr.Message
	}
	return err.Error()
}
