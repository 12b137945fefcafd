// Code generated by MockGen. DO NOT EDIT.
// Source: internal/scan/types.go

// Package scan is a generated GoMock package.
package scan

import (
	context "context"
	reflect "reflect"
	time "time"

	candidate "github.com/blockscope/blockscope-scanner/internal/candidate"
	gomock "github.com/golang/mock/gomock"
)

// MockSource is a mock of Source interface.
type MockSource struct {
	ctrl     *gomock.Controller
	recorder *MockSourceMockRecorder
}

// MockSourceMockRecorder is the mock recorder for MockSource.
type MockSourceMockRecorder struct {
	mock *MockSource
}

// NewMockSource creates a new mock instance.
func NewMockSource(ctrl *gomock.Controller) *MockSource {
	mock := &MockSource{ctrl: ctrl}
	mock.recorder = &MockSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSource) EXPECT() *MockSourceMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockSource) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockSourceMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockSource)(nil).Close))
}

// Expected mocks base method.
func (m *MockSource) Expected() int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Expected")
	ret0, _ := ret[0].(int64)
	return ret0
}

// Expected indicates an expected call of Expected.
func (mr *MockSourceMockRecorder) Expected() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Expected", reflect.TypeOf((*MockSource)(nil).Expected))
}

// Next mocks base method.
func (m *MockSource) Next(ctx context.Context) (candidate.Candidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next", ctx)
	ret0, _ := ret[0].(candidate.Candidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockSourceMockRecorder) Next(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockSource)(nil).Next), ctx)
}

// MockMatcher is a mock of Matcher interface.
type MockMatcher struct {
	ctrl     *gomock.Controller
	recorder *MockMatcherMockRecorder
}

// MockMatcherMockRecorder is the mock recorder for MockMatcher.
type MockMatcherMockRecorder struct {
	mock *MockMatcher
}

// NewMockMatcher creates a new mock instance.
func NewMockMatcher(ctrl *gomock.Controller) *MockMatcher {
	mock := &MockMatcher{ctrl: ctrl}
	mock.recorder = &MockMatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMatcher) EXPECT() *MockMatcherMockRecorder {
	return m.recorder
}

// Match mocks base method.
func (m *MockMatcher) Match(c candidate.Candidate) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Match", c)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Match indicates an expected call of Match.
func (mr *MockMatcherMockRecorder) Match(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Match", reflect.TypeOf((*MockMatcher)(nil).Match), c)
}

// MockMemoryGauge is a mock of MemoryGauge interface.
type MockMemoryGauge struct {
	ctrl     *gomock.Controller
	recorder *MockMemoryGaugeMockRecorder
}

// MockMemoryGaugeMockRecorder is the mock recorder for MockMemoryGauge.
type MockMemoryGaugeMockRecorder struct {
	mock *MockMemoryGauge
}

// NewMockMemoryGauge creates a new mock instance.
func NewMockMemoryGauge(ctrl *gomock.Controller) *MockMemoryGauge {
	mock := &MockMemoryGauge{ctrl: ctrl}
	mock.recorder = &MockMemoryGaugeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMemoryGauge) EXPECT() *MockMemoryGaugeMockRecorder {
	return m.recorder
}

// UsedPercent mocks base method.
func (m *MockMemoryGauge) UsedPercent() (float64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UsedPercent")
	ret0, _ := ret[0].(float64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UsedPercent indicates an expected call of UsedPercent.
func (mr *MockMemoryGaugeMockRecorder) UsedPercent() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UsedPercent", reflect.TypeOf((*MockMemoryGauge)(nil).UsedPercent))
}

// MockMetrics is a mock of Metrics interface.
type MockMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsMockRecorder
}

// MockMetricsMockRecorder is the mock recorder for MockMetrics.
type MockMetricsMockRecorder struct {
	mock *MockMetrics
}

// NewMockMetrics creates a new mock instance.
func NewMockMetrics(ctrl *gomock.Controller) *MockMetrics {
	mock := &MockMetrics{ctrl: ctrl}
	mock.recorder = &MockMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetrics) EXPECT() *MockMetricsMockRecorder {
	return m.recorder
}

// ObserveCandidate mocks base method.
func (m *MockMetrics) ObserveCandidate(matched bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveCandidate", matched)
}

// ObserveCandidate indicates an expected call of ObserveCandidate.
func (mr *MockMetricsMockRecorder) ObserveCandidate(matched interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveCandidate", reflect.TypeOf((*MockMetrics)(nil).ObserveCandidate), matched)
}

// ObserveScan mocks base method.
func (m *MockMetrics) ObserveScan(err error, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveScan", err, started)
}

// ObserveScan indicates an expected call of ObserveScan.
func (mr *MockMetricsMockRecorder) ObserveScan(err, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveScan", reflect.TypeOf((*MockMetrics)(nil).ObserveScan), err, started)
}
