package services

import (
	"context"
	"sync"
	"time"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
)

// nopLogger descarta tudo; os testes verificam contratos, não logs
type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) With(args ...any) ports.Logger { return nopLogger{} }

// fakeRepo é uma implementação em memória do Repository genérico.
// setID injeta o id atribuído no Create, já que a interface Entity só
// expõe leitura.
type fakeRepo[E entities.Entity] struct {
	mu      sync.Mutex
	rows    []E
	deleted map[int64]bool
	nextID  int64
	err     error
	creates int
	setID   func(*E, int64)
}

func newFakeRepo[E entities.Entity](setID func(*E, int64)) *fakeRepo[E] {
	return &fakeRepo[E]{
		deleted: make(map[int64]bool),
		setID:   setID,
	}
}

func (r *fakeRepo[E]) Create(ctx context.Context, entity *E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	r.setID(entity, r.nextID)
	r.rows = append(r.rows, *entity)
	r.creates++
	return nil
}

func (r *fakeRepo[E]) GetAll(ctx context.Context) ([]E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []E
	for _, row := range r.rows {
		if !r.deleted[row.GetID()] {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeRepo[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, row := range r.rows {
		if row.GetID() == id && !r.deleted[id] {
			row := row
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo[E]) Update(ctx context.Context, entity *E) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	id := (*entity).GetID()
	for i, row := range r.rows {
		if row.GetID() == id && !r.deleted[id] {
			r.rows[i] = *entity
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo[E]) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, row := range r.rows {
		if row.GetID() == id && !r.deleted[id] {
			r.deleted[id] = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo[E]) PermanentDelete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for i, row := range r.rows {
		if row.GetID() == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			delete(r.deleted, id)
			return true, nil
		}
	}
	return false, nil
}

// Fakes concretos com as consultas extras das junções

type fakeRolUserRepo struct {
	*fakeRepo[entities.RolUser]
}

func newFakeRolUserRepo() *fakeRolUserRepo {
	return &fakeRolUserRepo{fakeRepo: newFakeRepo(func(e *entities.RolUser, id int64) { e.ID = id })}
}

func (r *fakeRolUserRepo) GetByUserID(ctx context.Context, userID int64) ([]entities.RolUser, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.RolUser
	for _, row := range all {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeFormModuleRepo struct {
	*fakeRepo[entities.FormModule]
}

func newFakeFormModuleRepo() *fakeFormModuleRepo {
	return &fakeFormModuleRepo{fakeRepo: newFakeRepo(func(e *entities.FormModule, id int64) { e.ID = id })}
}

func (r *fakeFormModuleRepo) GetByModuleIDAndFormID(ctx context.Context, moduleID, formID int64) (*entities.FormModule, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range all {
		if row.ModuleID == moduleID && row.FormID == formID {
			row := row
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeFormModuleRepo) GetByFormID(ctx context.Context, formID int64) ([]entities.FormModule, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.FormModule
	for _, row := range all {
		if row.FormID == formID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeRolFormPermissionRepo struct {
	*fakeRepo[entities.RolFormPermission]
}

func newFakeRolFormPermissionRepo() *fakeRolFormPermissionRepo {
	return &fakeRolFormPermissionRepo{fakeRepo: newFakeRepo(func(e *entities.RolFormPermission, id int64) { e.ID = id })}
}

func (r *fakeRolFormPermissionRepo) GetByRolID(ctx context.Context, rolID int64) ([]entities.RolFormPermission, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.RolFormPermission
	for _, row := range all {
		if row.RolID == rolID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeActivityLogRepo struct {
	mu     sync.Mutex
	rows   []entities.ActivityLog
	nextID int64
	err    error
}

func (r *fakeActivityLogRepo) Create(ctx context.Context, log *entities.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	log.ID = r.nextID
	r.rows = append(r.rows, *log)
	return nil
}

func (r *fakeActivityLogRepo) GetByID(ctx context.Context, id int64) (*entities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			row := row
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeActivityLogRepo) page(rows []entities.ActivityLog, limit, offset int) []entities.ActivityLog {
	// Mais recentes primeiro
	out := make([]entities.ActivityLog, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = row
	}
	if offset >= len(out) {
		return nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (r *fakeActivityLogRepo) GetRecent(ctx context.Context, limit, offset int) ([]entities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page(r.rows, limit, offset), nil
}

func (r *fakeActivityLogRepo) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]entities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []entities.ActivityLog
	for _, row := range r.rows {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	return r.page(rows, limit, offset), nil
}

func (r *fakeActivityLogRepo) GetByEntityType(ctx context.Context, entityType string, limit, offset int) ([]entities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []entities.ActivityLog
	for _, row := range r.rows {
		if row.EntityType == entityType {
			rows = append(rows, row)
		}
	}
	return r.page(rows, limit, offset), nil
}

func (r *fakeActivityLogRepo) GetByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]entities.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []entities.ActivityLog
	for _, row := range r.rows {
		if !row.Timestamp.Before(from) && !row.Timestamp.After(to) {
			rows = append(rows, row)
		}
	}
	return r.page(rows, limit, offset), nil
}

// fakeUnitOfWork executa o callback sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakePublisher captura eventos publicados no feed
type fakePublisher struct {
	mu     sync.Mutex
	events []entities.ActivityLog
}

func (p *fakePublisher) Publish(log entities.ActivityLog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, log)
}
