package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
	"github.com/heartmarshall/lawdesk-backend/internal/service/account"
	authsvc "github.com/heartmarshall/lawdesk-backend/internal/service/auth"
	"github.com/heartmarshall/lawdesk-backend/internal/service/category"
	"github.com/heartmarshall/lawdesk-backend/internal/service/lawsuit"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc     func(ctx context.Context, input authsvc.RegisterInput) (string, error)
	AuthenticateFunc func(ctx context.Context, input authsvc.LoginInput) (string, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input authsvc.RegisterInput
		}
		Authenticate []struct {
			Ctx   context.Context
			Input authsvc.LoginInput
		}
	}
	lockRegister     sync.RWMutex
	lockAuthenticate sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input authsvc.RegisterInput) (string, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input authsvc.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Authenticate(ctx context.Context, input authsvc.LoginInput) (string, error) {
	if mock.AuthenticateFunc == nil {
		panic("authServiceMock.AuthenticateFunc: method is nil but authService.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, input)
}

func (mock *authServiceMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Input authsvc.LoginInput
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	CreateFunc  func(ctx context.Context, input category.CreateInput) (domain.Category, error)
	FindAllFunc func(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
	GetFunc     func(ctx context.Context, handle string) (domain.CategoryDetail, error)
	UpdateFunc  func(ctx context.Context, handle string, input category.UpdateInput) (domain.Category, error)
	RemoveFunc  func(ctx context.Context, handle string) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input category.CreateInput
		}
		FindAll []struct {
			Ctx    context.Context
			Filter domain.CategoryFilter
		}
		Get []struct {
			Ctx    context.Context
			Handle string
		}
		Update []struct {
			Ctx    context.Context
			Handle string
			Input  category.UpdateInput
		}
		Remove []struct {
			Ctx    context.Context
			Handle string
		}
	}
	lockCreate  sync.RWMutex
	lockFindAll sync.RWMutex
	lockGet     sync.RWMutex
	lockUpdate  sync.RWMutex
	lockRemove  sync.RWMutex
}

func (mock *categoryServiceMock) Create(ctx context.Context, input category.CreateInput) (domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryServiceMock.CreateFunc: method is nil but categoryService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *categoryServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input category.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) FindAll(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	if mock.FindAllFunc == nil {
		panic("categoryServiceMock.FindAllFunc: method is nil but categoryService.FindAll was just called")
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

func (mock *categoryServiceMock) FindAllCalls() []struct {
	Ctx    context.Context
	Filter domain.CategoryFilter
} {
	mock.lockFindAll.RLock()
	calls := mock.calls.FindAll
	mock.lockFindAll.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Get(ctx context.Context, handle string) (domain.CategoryDetail, error) {
	if mock.GetFunc == nil {
		panic("categoryServiceMock.GetFunc: method is nil but categoryService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{Ctx: ctx, Handle: handle}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, handle)
}

func (mock *categoryServiceMock) GetCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Update(ctx context.Context, handle string, input category.UpdateInput) (domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryServiceMock.UpdateFunc: method is nil but categoryService.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
		Input  category.UpdateInput
	}{Ctx: ctx, Handle: handle, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, handle, input)
}

func (mock *categoryServiceMock) UpdateCalls() []struct {
	Ctx    context.Context
	Handle string
	Input  category.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Remove(ctx context.Context, handle string) error {
	if mock.RemoveFunc == nil {
		panic("categoryServiceMock.RemoveFunc: method is nil but categoryService.Remove was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{Ctx: ctx, Handle: handle}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, handle)
}

func (mock *categoryServiceMock) RemoveCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

var _ lawsuitService = &lawsuitServiceMock{}

type lawsuitServiceMock struct {
	CreateFunc  func(ctx context.Context, input lawsuit.CreateInput) (domain.Lawsuit, error)
	FindAllFunc func(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error)
	GetFunc     func(ctx context.Context, id int64) (domain.LawsuitDetail, error)
	UpdateFunc  func(ctx context.Context, id int64, input lawsuit.UpdateInput) (domain.Lawsuit, error)
	RemoveFunc  func(ctx context.Context, id int64) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input lawsuit.CreateInput
		}
		FindAll []struct {
			Ctx    context.Context
			Filter domain.LawsuitFilter
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		Update []struct {
			Ctx   context.Context
			ID    int64
			Input lawsuit.UpdateInput
		}
		Remove []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate  sync.RWMutex
	lockFindAll sync.RWMutex
	lockGet     sync.RWMutex
	lockUpdate  sync.RWMutex
	lockRemove  sync.RWMutex
}

func (mock *lawsuitServiceMock) Create(ctx context.Context, input lawsuit.CreateInput) (domain.Lawsuit, error) {
	if mock.CreateFunc == nil {
		panic("lawsuitServiceMock.CreateFunc: method is nil but lawsuitService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lawsuit.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *lawsuitServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input lawsuit.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *lawsuitServiceMock) FindAll(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error) {
	if mock.FindAllFunc == nil {
		panic("lawsuitServiceMock.FindAllFunc: method is nil but lawsuitService.FindAll was just called")
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

func (mock *lawsuitServiceMock) FindAllCalls() []struct {
	Ctx    context.Context
	Filter domain.LawsuitFilter
} {
	mock.lockFindAll.RLock()
	calls := mock.calls.FindAll
	mock.lockFindAll.RUnlock()
	return calls
}

func (mock *lawsuitServiceMock) Get(ctx context.Context, id int64) (domain.LawsuitDetail, error) {
	if mock.GetFunc == nil {
		panic("lawsuitServiceMock.GetFunc: method is nil but lawsuitService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *lawsuitServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *lawsuitServiceMock) Update(ctx context.Context, id int64, input lawsuit.UpdateInput) (domain.Lawsuit, error) {
	if mock.UpdateFunc == nil {
		panic("lawsuitServiceMock.UpdateFunc: method is nil but lawsuitService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input lawsuit.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *lawsuitServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input lawsuit.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *lawsuitServiceMock) Remove(ctx context.Context, id int64) error {
	if mock.RemoveFunc == nil {
		panic("lawsuitServiceMock.RemoveFunc: method is nil but lawsuitService.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, id)
}

func (mock *lawsuitServiceMock) RemoveCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	CreateFunc           func(ctx context.Context, input account.CreateInput) (account.Created, error)
	FindAllFunc          func(ctx context.Context) ([]domain.Account, error)
	GetFunc              func(ctx context.Context, username string) (domain.AccountDetail, error)
	UpdateFunc           func(ctx context.Context, username string, input account.UpdateInput) (domain.Account, error)
	RemoveFunc           func(ctx context.Context, username string) error
	AddAssignmentFunc    func(ctx context.Context, username string, lawsuitID int64) error
	RemoveAssignmentFunc func(ctx context.Context, username string, lawsuitID int64) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input account.CreateInput
		}
		FindAll []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx      context.Context
			Username string
		}
		Update []struct {
			Ctx      context.Context
			Username string
			Input    account.UpdateInput
		}
		Remove []struct {
			Ctx      context.Context
			Username string
		}
		AddAssignment []struct {
			Ctx       context.Context
			Username  string
			LawsuitID int64
		}
		RemoveAssignment []struct {
			Ctx       context.Context
			Username  string
			LawsuitID int64
		}
	}
	lockCreate           sync.RWMutex
	lockFindAll          sync.RWMutex
	lockGet              sync.RWMutex
	lockUpdate           sync.RWMutex
	lockRemove           sync.RWMutex
	lockAddAssignment    sync.RWMutex
	lockRemoveAssignment sync.RWMutex
}

func (mock *accountServiceMock) Create(ctx context.Context, input account.CreateInput) (account.Created, error) {
	if mock.CreateFunc == nil {
		panic("accountServiceMock.CreateFunc: method is nil but accountService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *accountServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input account.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountServiceMock) FindAll(ctx context.Context) ([]domain.Account, error) {
	if mock.FindAllFunc == nil {
		panic("accountServiceMock.FindAllFunc: method is nil but accountService.FindAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFindAll.Lock()
	mock.calls.FindAll = append(mock.calls.FindAll, callInfo)
	mock.lockFindAll.Unlock()
	return mock.FindAllFunc(ctx)
}

func (mock *accountServiceMock) FindAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockFindAll.RLock()
	calls := mock.calls.FindAll
	mock.lockFindAll.RUnlock()
	return calls
}

func (mock *accountServiceMock) Get(ctx context.Context, username string) (domain.AccountDetail, error) {
	if mock.GetFunc == nil {
		panic("accountServiceMock.GetFunc: method is nil but accountService.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, username)
}

func (mock *accountServiceMock) GetCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *accountServiceMock) Update(ctx context.Context, username string, input account.UpdateInput) (domain.Account, error) {
	if mock.UpdateFunc == nil {
		panic("accountServiceMock.UpdateFunc: method is nil but accountService.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Input    account.UpdateInput
	}{Ctx: ctx, Username: username, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, username, input)
}

func (mock *accountServiceMock) UpdateCalls() []struct {
	Ctx      context.Context
	Username string
	Input    account.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *accountServiceMock) Remove(ctx context.Context, username string) error {
	if mock.RemoveFunc == nil {
		panic("accountServiceMock.RemoveFunc: method is nil but accountService.Remove was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, username)
}

func (mock *accountServiceMock) RemoveCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *accountServiceMock) AddAssignment(ctx context.Context, username string, lawsuitID int64) error {
	if mock.AddAssignmentFunc == nil {
		panic("accountServiceMock.AddAssignmentFunc: method is nil but accountService.AddAssignment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Username  string
		LawsuitID int64
	}{Ctx: ctx, Username: username, LawsuitID: lawsuitID}
	mock.lockAddAssignment.Lock()
	mock.calls.AddAssignment = append(mock.calls.AddAssignment, callInfo)
	mock.lockAddAssignment.Unlock()
	return mock.AddAssignmentFunc(ctx, username, lawsuitID)
}

func (mock *accountServiceMock) AddAssignmentCalls() []struct {
	Ctx       context.Context
	Username  string
	LawsuitID int64
} {
	mock.lockAddAssignment.RLock()
	calls := mock.calls.AddAssignment
	mock.lockAddAssignment.RUnlock()
	return calls
}

func (mock *accountServiceMock) RemoveAssignment(ctx context.Context, username string, lawsuitID int64) error {
	if mock.RemoveAssignmentFunc == nil {
		panic("accountServiceMock.RemoveAssignmentFunc: method is nil but accountService.RemoveAssignment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Username  string
		LawsuitID int64
	}{Ctx: ctx, Username: username, LawsuitID: lawsuitID}
	mock.lockRemoveAssignment.Lock()
	mock.calls.RemoveAssignment = append(mock.calls.RemoveAssignment, callInfo)
	mock.lockRemoveAssignment.Unlock()
	return mock.RemoveAssignmentFunc(ctx, username, lawsuitID)
}

func (mock *accountServiceMock) RemoveAssignmentCalls() []struct {
	Ctx       context.Context
	Username  string
	LawsuitID int64
} {
	mock.lockRemoveAssignment.RLock()
	calls := mock.calls.RemoveAssignment
	mock.lockRemoveAssignment.RUnlock()
	return calls
}
