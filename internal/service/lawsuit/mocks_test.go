package lawsuit

import (
	"context"
	"sync"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

var _ lawsuitRepo = &lawsuitRepoMock{}

type lawsuitRepoMock struct {
	CreateFunc  func(ctx context.Context, l domain.Lawsuit) (domain.Lawsuit, error)
	FindAllFunc func(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error)
	GetByIDFunc func(ctx context.Context, id int64) (domain.Lawsuit, error)
	UpdateFunc  func(ctx context.Context, id int64, patch domain.Patch) (domain.Lawsuit, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.Lawsuit
		}
		FindAll []struct {
			Ctx    context.Context
			Filter domain.LawsuitFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Update []struct {
			Ctx   context.Context
			ID    int64
			Patch domain.Patch
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate  sync.RWMutex
	lockFindAll sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *lawsuitRepoMock) Create(ctx context.Context, l domain.Lawsuit) (domain.Lawsuit, error) {
	if mock.CreateFunc == nil {
		panic("lawsuitRepoMock.CreateFunc: method is nil but lawsuitRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.Lawsuit
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *lawsuitRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.Lawsuit
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *lawsuitRepoMock) FindAll(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error) {
	if mock.FindAllFunc == nil {
		panic("lawsuitRepoMock.FindAllFunc: method is nil but lawsuitRepo.FindAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.LawsuitFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockFindAll.Lock()
	mock.calls.FindAll = append(mock.calls.FindAll, callInfo)
	mock.lockFindAll.Unlock()
	return mock.FindAllFunc(ctx, filter)
}

func (mock *lawsuitRepoMock) FindAllCalls() []struct {
	Ctx    context.Context
	Filter domain.LawsuitFilter
} {
	mock.lockFindAll.RLock()
	calls := mock.calls.FindAll
	mock.lockFindAll.RUnlock()
	return calls
}

func (mock *lawsuitRepoMock) GetByID(ctx context.Context, id int64) (domain.Lawsuit, error) {
	if mock.GetByIDFunc == nil {
		panic("lawsuitRepoMock.GetByIDFunc: method is nil but lawsuitRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *lawsuitRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *lawsuitRepoMock) Update(ctx context.Context, id int64, patch domain.Patch) (domain.Lawsuit, error) {
	if mock.UpdateFunc == nil {
		panic("lawsuitRepoMock.UpdateFunc: method is nil but lawsuitRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Patch domain.Patch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *lawsuitRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    int64
	Patch domain.Patch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *lawsuitRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("lawsuitRepoMock.DeleteFunc: method is nil but lawsuitRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *lawsuitRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ExistsFunc      func(ctx context.Context, handle string) (bool, error)
	GetByHandleFunc func(ctx context.Context, handle string) (domain.Category, error)

	calls struct {
		Exists []struct {
			Ctx    context.Context
			Handle string
		}
		GetByHandle []struct {
			Ctx    context.Context
			Handle string
		}
	}
	lockExists      sync.RWMutex
	lockGetByHandle sync.RWMutex
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
