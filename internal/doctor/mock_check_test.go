package doctor

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCheck is a mock implementation of Check.
type MockCheck struct {
	mock.Mock
}

type MockCheck_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCheck) EXPECT() *MockCheck_Expecter {
	return &MockCheck_Expecter{mock: &_m.Mock}
}

func (_m *MockCheck) Name() string {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for Name")
	}
	return ret.String(0)
}

func (_m *MockCheck) Category() string {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for Category")
	}
	return ret.String(0)
}

func (_m *MockCheck) Run(ctx context.Context) *CheckResult {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for Run")
	}
	if rf, ok := ret.Get(0).(func(context.Context) *CheckResult); ok {
		return rf(ctx)
	}
	r0, _ := ret.Get(0).(*CheckResult)
	return r0
}

type MockCheck_String_Call struct {
	*mock.Call
}

func (_c *MockCheck_String_Call) Return(s string) *MockCheck_String_Call {
	_c.Call.Return(s)
	return _c
}

func (_c *MockCheck_String_Call) Maybe() *MockCheck_String_Call {
	_c.Call.Maybe()
	return _c
}

func (_e *MockCheck_Expecter) Name() *MockCheck_String_Call {
	return &MockCheck_String_Call{Call: _e.mock.On("Name")}
}

func (_e *MockCheck_Expecter) Category() *MockCheck_String_Call {
	return &MockCheck_String_Call{Call: _e.mock.On("Category")}
}

type MockCheck_Run_Call struct {
	*mock.Call
}

func (_c *MockCheck_Run_Call) Return(r *CheckResult) *MockCheck_Run_Call {
	_c.Call.Return(r)
	return _c
}

func (_e *MockCheck_Expecter) Run(ctx any) *MockCheck_Run_Call {
	return &MockCheck_Run_Call{Call: _e.mock.On("Run", ctx)}
}

// NewMockCheck creates a MockCheck whose expectations are asserted when
// the test ends.
func NewMockCheck(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheck {
	m := &MockCheck{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
