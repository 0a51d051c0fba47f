package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
)

// MockTransaction is a no-op implementation of usecase.Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	m.Committed = true
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	m.RolledBack = true
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockEmployeeDebtRepository is an in-memory EmployeeDebtRepository.
type MockEmployeeDebtRepository struct {
	mu    sync.RWMutex
	debts map[string]*domain.EmployeeDebt

	CreateFunc func(ctx context.Context, debt *domain.EmployeeDebt) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context, limit, offset int) ([]*domain.EmployeeDebt, error)
}

func NewMockEmployeeDebtRepository() *MockEmployeeDebtRepository {
	return &MockEmployeeDebtRepository{
		debts: make(map[string]*domain.EmployeeDebt),
	}
}

func (m *MockEmployeeDebtRepository) Create(ctx context.Context, debt *domain.EmployeeDebt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts[debt.ID] = debt
	return nil
}

func (m *MockEmployeeDebtRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.debts[id]; !ok {
		return domain.ErrDebtNotFound
	}
	delete(m.debts, id)
	return nil
}

func (m *MockEmployeeDebtRepository) List(ctx context.Context, limit, offset int) ([]*domain.EmployeeDebt, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var debts []*domain.EmployeeDebt
	for _, d := range m.debts {
		debts = append(debts, d)
	}
	return debts, nil
}

// MockDeductionRepository is an in-memory DeductionRepository.
type MockDeductionRepository struct {
	mu         sync.RWMutex
	deductions map[string]*domain.Deduction

	CreateFunc func(ctx context.Context, deduction *domain.Deduction) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context, limit, offset int) ([]*domain.Deduction, error)
}

func NewMockDeductionRepository() *MockDeductionRepository {
	return &MockDeductionRepository{
		deductions: make(map[string]*domain.Deduction),
	}
}

func (m *MockDeductionRepository) Create(ctx context.Context, deduction *domain.Deduction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, deduction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deductions[deduction.ID] = deduction
	return nil
}

func (m *MockDeductionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.deductions[id]; !ok {
		return domain.ErrDeductionNotFound
	}
	delete(m.deductions, id)
	return nil
}

func (m *MockDeductionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Deduction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var deductions []*domain.Deduction
	for _, d := range m.deductions {
		deductions = append(deductions, d)
	}
	return deductions, nil
}

// MockRetrier runs the operation once, or via RetryFunc when set.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error

	Calls int
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.Calls++
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIdempotencyStore is an in-memory IdempotencyStore.
type MockIdempotencyStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		values: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.values[key]; ok {
		return true, existing, nil
	}
	m.values[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = response
	return nil
}

// StaticIDGenerator returns a fixed sequence of IDs for tests that do not
// need gomock expectations.
type StaticIDGenerator struct {
	mu   sync.Mutex
	next int
	IDs  []string
}

func (g *StaticIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next < len(g.IDs) {
		id := g.IDs[g.next]
		g.next++
		return id
	}
	g.next++
	return "generated-id"
}
