package category

import (
	"context"
	"sync"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ExistsFunc      func(ctx context.Context, handle string) (bool, error)
	CreateFunc      func(ctx context.Context, c domain.Category) (domain.Category, error)
	FindAllFunc     func(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
	GetByHandleFunc func(ctx context.Context, handle string) (domain.Category, error)
	LawsuitsFunc    func(ctx context.Context, handle string) ([]domain.LawsuitSummary, error)
	UpdateFunc      func(ctx context.Context, handle string, patch domain.Patch) (domain.Category, error)
	DeleteFunc      func(ctx context.Context, handle string) error

	calls struct {
		Exists []struct {
			Ctx    context.Context
			Handle string
		}
		Create []struct {
			Ctx context.Context
			C   domain.Category
		}
		FindAll []struct {
			Ctx    context.Context
			Filter domain.CategoryFilter
		}
		GetByHandle []struct {
			Ctx    context.Context
			Handle string
		}
		Lawsuits []struct {
			Ctx    context.Context
			Handle string
		}
		Update []struct {
			Ctx    context.Context
			Handle string
			Patch  domain.Patch
		}
		Delete []struct {
			Ctx    context.Context
			Handle string
		}
	}
	lockExists      sync.RWMutex
	lockCreate      sync.RWMutex
	lockFindAll     sync.RWMutex
	lockGetByHandle sync.RWMutex
	lockLawsuits    sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *categoryRepoMock) Exists(ctx context.Context, handle string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("categoryRepoMock.ExistsFunc: method is nil but categoryRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{Ctx: ctx, Handle: handle}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, handle)
}

func (mock *categoryRepoMock) ExistsCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Category
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Category
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) FindAll(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	if mock.FindAllFunc == nil {
		panic("categoryRepoMock.FindAllFunc: method is nil but categoryRepo.FindAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CategoryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockFindAll.Lock()
	mock.calls.FindAll = append(mock.calls.FindAll, callInfo)
	mock.lockFindAll.Unlock()
	return mock.FindAllFunc(ctx, filter)
}

func (mock *categoryRepoMock) FindAllCalls() []struct {
	Ctx    context.Context
	Filter domain.CategoryFilter
} {
	mock.lockFindAll.RLock()
	calls := mock.calls.FindAll
	mock.lockFindAll.RUnlock()
	return calls
}

func (mock *categoryRepoMock) GetByHandle(ctx context.Context, handle string) (domain.Category, error) {
	if mock.GetByHandleFunc == nil {
		panic("categoryRepoMock.GetByHandleFunc: method is nil but categoryRepo.GetByHandle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{Ctx: ctx, Handle: handle}
	mock.lockGetByHandle.Lock()
	mock.calls.GetByHandle = append(mock.calls.GetByHandle, callInfo)
	mock.lockGetByHandle.Unlock()
	return mock.GetByHandleFunc(ctx, handle)
}

func (mock *categoryRepoMock) GetByHandleCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	mock.lockGetByHandle.RLock()
	calls := mock.calls.GetByHandle
	mock.lockGetByHandle.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Lawsuits(ctx context.Context, handle string) ([]domain.LawsuitSummary, error) {
	if mock.LawsuitsFunc == nil {
		panic("categoryRepoMock.LawsuitsFunc: method is nil but categoryRepo.Lawsuits was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{Ctx: ctx, Handle: handle}
	mock.lockLawsuits.Lock()
	mock.calls.Lawsuits = append(mock.calls.Lawsuits, callInfo)
	mock.lockLawsuits.Unlock()
	return mock.LawsuitsFunc(ctx, handle)
}

func (mock *categoryRepoMock) LawsuitsCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	mock.lockLawsuits.RLock()
	calls := mock.calls.Lawsuits
	mock.lockLawsuits.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Update(ctx context.Context, handle string, patch domain.Patch) (domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but categoryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
		Patch  domain.Patch
	}{Ctx: ctx, Handle: handle, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, handle, patch)
}

func (mock *categoryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Handle string
	Patch  domain.Patch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Delete(ctx context.Context, handle string) error {
	if mock.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but categoryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{Ctx: ctx, Handle: handle}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, handle)
}

func (mock *categoryRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
