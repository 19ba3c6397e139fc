package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/itemstr"
	"github.com/osse101/PluginKit_Go/internal/updatecheck"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) ParseDescriptor(s string) (itemstr.Descriptor, bool) {
	args := m.Called(s)
	return args.Get(0).(itemstr.Descriptor), args.Bool(1)
}

func (m *MockItemService) Parse(s string) (*domain.ItemStack, bool) {
	args := m.Called(s)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.ItemStack), args.Bool(1)
}

func (m *MockItemService) CompareIgnoringName(id, variant, amount int, s string) bool {
	args := m.Called(id, variant, amount, s)
	return args.Bool(0)
}

func (m *MockItemService) CompareItem(item *domain.ItemStack, s string) bool {
	args := m.Called(item, s)
	return args.Bool(0)
}

type MockUpdateService struct {
	mock.Mock
}

func (m *MockUpdateService) Status() updatecheck.Status {
	args := m.Called()
	return args.Get(0).(updatecheck.Status)
}

func (m *MockUpdateService) CheckNow(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
