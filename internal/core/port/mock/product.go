// Code generated by MockGen. DO NOT EDIT.
// Source: product.go
//
// Generated by this command:
//
//	mockgen -source=product.go -destination=mock/product.go -package=mock
//

// Package mock is a generated GoMock package.
package mock

import (
	context "context"
	reflect "reflect"

	domain "github.com/dmaia/sweetshop/internal/core/domain"
	listing "github.com/dmaia/sweetshop/internal/core/listing"
	gomock "go.uber.org/mock/gomock"
)

// MockProductPort is a mock of ProductPort interface.
type MockProductPort struct {
	ctrl     *gomock.Controller
	recorder *MockProductPortMockRecorder
	isgomock struct{}
}

// MockProductPortMockRecorder is the mock recorder for MockProductPort.
type MockProductPortMockRecorder struct {
	mock *MockProductPort
}

// NewMockProductPort creates a new mock instance.
func NewMockProductPort(ctrl *gomock.Controller) *MockProductPort {
	mock := &MockProductPort{ctrl: ctrl}
	mock.recorder = &MockProductPortMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProductPort) EXPECT() *MockProductPortMockRecorder {
	return m.recorder
}

// ConfectionerStats mocks base method.
func (m *MockProductPort) ConfectionerStats(ctx context.Context) ([]domain.ConfectionerStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConfectionerStats", ctx)
	ret0, _ := ret[0].([]domain.ConfectionerStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConfectionerStats indicates an expected call of ConfectionerStats.
func (mr *MockProductPortMockRecorder) ConfectionerStats(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfectionerStats", reflect.TypeOf((*MockProductPort)(nil).ConfectionerStats), ctx)
}

// Create mocks base method.
func (m *MockProductPort) Create(ctx context.Context, product *domain.Product, event domain.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, product, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockProductPortMockRecorder) Create(ctx, product, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockProductPort)(nil).Create), ctx, product, event)
}

// Delete mocks base method.
func (m *MockProductPort) Delete(ctx context.Context, id domain.ID, event domain.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockProductPortMockRecorder) Delete(ctx, id, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockProductPort)(nil).Delete), ctx, id, event)
}

// DistancesFrom mocks base method.
func (m *MockProductPort) DistancesFrom(ctx context.Context, lat, lng, multiplier float64) ([]domain.ProductDistance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DistancesFrom", ctx, lat, lng, multiplier)
	ret0, _ := ret[0].([]domain.ProductDistance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DistancesFrom indicates an expected call of DistancesFrom.
func (mr *MockProductPortMockRecorder) DistancesFrom(ctx, lat, lng, multiplier any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DistancesFrom", reflect.TypeOf((*MockProductPort)(nil).DistancesFrom), ctx, lat, lng, multiplier)
}

// GetByID mocks base method.
func (m *MockProductPort) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockProductPortMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockProductPort)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockProductPort) List(ctx context.Context, params listing.Params) ([]*domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, params)
	ret0, _ := ret[0].([]*domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockProductPortMockRecorder) List(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockProductPort)(nil).List), ctx, params)
}

// Update mocks base method.
func (m *MockProductPort) Update(ctx context.Context, id domain.ID, fields map[string]any, event domain.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, fields, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockProductPortMockRecorder) Update(ctx, id, fields, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockProductPort)(nil).Update), ctx, id, fields, event)
}

// WithinRadius mocks base method.
func (m *MockProductPort) WithinRadius(ctx context.Context, lat, lng, radius float64) ([]*domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithinRadius", ctx, lat, lng, radius)
	ret0, _ := ret[0].([]*domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// WithinRadius indicates an expected call of WithinRadius.
func (mr *MockProductPortMockRecorder) WithinRadius(ctx, lat, lng, radius any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithinRadius", reflect.TypeOf((*MockProductPort)(nil).WithinRadius), ctx, lat, lng, radius)
}
