package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/javafind/internal/java"
)

// MockRunner is a mock implementation of java.Runner.
type MockRunner struct {
	mock.Mock
}

// MockRunner_Expecter provides typed expectation helpers.
type MockRunner_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockRunner) EXPECT() *MockRunner_Expecter {
	return &MockRunner_Expecter{mock: &_m.Mock}
}

// Run provides a mock function.
func (_m *MockRunner) Run(ctx context.Context, name string, args ...string) (java.Result, error) {
	_va := make([]any, len(args))
	for _i := range args {
		_va[_i] = args[_i]
	}
	var _ca []any
	_ca = append(_ca, ctx, name)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	var r0 java.Result
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, ...string) (java.Result, error)); ok {
		return rf(ctx, name, args...)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, ...string) java.Result); ok {
		r0 = rf(ctx, name, args...)
	} else {
		r0 = ret.Get(0).(java.Result)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, ...string) error); ok {
		r1 = rf(ctx, name, args...)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockRunner_Run_Call wraps mock.Call for Run.
type MockRunner_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call.
func (_e *MockRunner_Expecter) Run(ctx any, name any, args ...any) *MockRunner_Run_Call {
	return &MockRunner_Run_Call{Call: _e.mock.On("Run", append([]any{ctx, name}, args...)...)}
}

// Return sets the return values.
func (_c *MockRunner_Run_Call) Return(result java.Result, err error) *MockRunner_Run_Call {
	_c.Call.Return(result, err)
	return _c
}

// RunAndReturn sets a function computing the return values.
func (_c *MockRunner_Run_Call) RunAndReturn(run func(context.Context, string, ...string) (java.Result, error)) *MockRunner_Run_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRunner creates a MockRunner whose expectations are asserted when
// the test ends.
func NewMockRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRunner {
	m := &MockRunner{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
