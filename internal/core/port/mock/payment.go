// Code generated by MockGen. DO NOT EDIT.
// Source: payment.go
//
// Generated by this command:
//
//	mockgen -source=payment.go -destination=mock/payment.go -package=mock
//

// Package mock is a generated GoMock package.
package mock

import (
	context "context"
	reflect "reflect"

	port "github.com/dmaia/sweetshop/internal/core/port"
	gomock "go.uber.org/mock/gomock"
)

// MockPaymentPort is a mock of PaymentPort interface.
type MockPaymentPort struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentPortMockRecorder
	isgomock struct{}
}

// MockPaymentPortMockRecorder is the mock recorder for MockPaymentPort.
type MockPaymentPortMockRecorder struct {
	mock *MockPaymentPort
}

// NewMockPaymentPort creates a new mock instance.
func NewMockPaymentPort(ctrl *gomock.Controller) *MockPaymentPort {
	mock := &MockPaymentPort{ctrl: ctrl}
	mock.recorder = &MockPaymentPortMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentPort) EXPECT() *MockPaymentPortMockRecorder {
	return m.recorder
}

// CreateCheckoutSession mocks base method.
func (m *MockPaymentPort) CreateCheckoutSession(ctx context.Context, request port.CheckoutRequest) (*port.CheckoutSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCheckoutSession", ctx, request)
	ret0, _ := ret[0].(*port.CheckoutSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCheckoutSession indicates an expected call of CreateCheckoutSession.
func (mr *MockPaymentPortMockRecorder) CreateCheckoutSession(ctx, request any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCheckoutSession", reflect.TypeOf((*MockPaymentPort)(nil).CreateCheckoutSession), ctx, request)
}
