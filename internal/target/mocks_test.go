// Code generated by MockGen. DO NOT EDIT.
// Source: internal/target/transport.go

// Package target is a generated GoMock package.
package target

import (
	context "context"
	io "io"
	reflect "reflect"

	rest "github.com/blockscope/blockscope-scanner/internal/rest"
	chainhash "github.com/btcsuite/btcd/chaincfg/chainhash"
	gomock "github.com/golang/mock/gomock"
)

// MockTransport is a mock of Transport interface.
type MockTransport struct {
	ctrl     *gomock.Controller
	recorder *MockTransportMockRecorder
}

// MockTransportMockRecorder is the mock recorder for MockTransport.
type MockTransportMockRecorder struct {
	mock *MockTransport
}

// NewMockTransport creates a new mock instance.
func NewMockTransport(ctrl *gomock.Controller) *MockTransport {
	mock := &MockTransport{ctrl: ctrl}
	mock.recorder = &MockTransportMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransport) EXPECT() *MockTransportMockRecorder {
	return m.recorder
}

// Block mocks base method.
func (m *MockTransport) Block(ctx context.Context, hash *chainhash.Hash, detail rest.BlockDetail) (io.ReadCloser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Block", ctx, hash, detail)
	ret0, _ := ret[0].(io.ReadCloser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Block indicates an expected call of Block.
func (mr *MockTransportMockRecorder) Block(ctx, hash, detail interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Block", reflect.TypeOf((*MockTransport)(nil).Block), ctx, hash, detail)
}

// BlockHash mocks base method.
func (m *MockTransport) BlockHash(ctx context.Context, height int64) (*chainhash.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockHash", ctx, height)
	ret0, _ := ret[0].(*chainhash.Hash)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BlockHash indicates an expected call of BlockHash.
func (mr *MockTransportMockRecorder) BlockHash(ctx, height interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockHash", reflect.TypeOf((*MockTransport)(nil).BlockHash), ctx, height)
}

// Mempool mocks base method.
func (m *MockTransport) Mempool(ctx context.Context) (map[string]map[string]any, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Mempool", ctx)
	ret0, _ := ret[0].(map[string]map[string]any)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Mempool indicates an expected call of Mempool.
func (mr *MockTransportMockRecorder) Mempool(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Mempool", reflect.TypeOf((*MockTransport)(nil).Mempool), ctx)
}

// Tx mocks base method.
func (m *MockTransport) Tx(ctx context.Context, txid string) (map[string]any, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Tx", ctx, txid)
	ret0, _ := ret[0].(map[string]any)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Tx indicates an expected call of Tx.
func (mr *MockTransportMockRecorder) Tx(ctx, txid interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Tx", reflect.TypeOf((*MockTransport)(nil).Tx), ctx, txid)
}

// UTXOs mocks base method.
func (m *MockTransport) UTXOs(ctx context.Context, outpoint string) (rest.UTXOResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UTXOs", ctx, outpoint)
	ret0, _ := ret[0].(rest.UTXOResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UTXOs indicates an expected call of UTXOs.
func (mr *MockTransportMockRecorder) UTXOs(ctx, outpoint interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UTXOs", reflect.TypeOf((*MockTransport)(nil).UTXOs), ctx, outpoint)
}
