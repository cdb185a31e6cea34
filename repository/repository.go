// Package repository is the data access layer of the café. Relational
// entities live behind gorm; reviews and the audit log live in a
// docstore.Store. Every mutating call runs in its own transaction and,
// once committed, hands one audit record to the emitter.
package repository

import (
	"context"
	"time"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/docstore"
	"github.com/KidawR/MainProgect/errs"
	"github.com/KidawR/MainProgect/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultTimeout = 5 * time.Second

type Repository struct {
	db      *gorm.DB
	docs    docstore.Store
	audit   *audit.Emitter
	log     *logrus.Entry
	timeout time.Duration
	now     func() time.Time
}

type Option func(*Repository)

// WithTimeout bounds every operation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Repository) {
		r.timeout = d
	}
}

// WithClock replaces time.Now for timestamps written by the repository.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(r *Repository) {
		if log != nil {
			r.log = log
		}
	}
}

// New wires the repository to its stores. emitter may be nil, in which
// case nothing is audited.
func New(db *gorm.DB, docs docstore.Store, emitter *audit.Emitter, opts ...Option) *Repository {
	r := &Repository{
		db:      db,
		docs:    docs,
		audit:   emitter,
		log:     logrus.NewEntry(logrus.StandardLogger()).WithField("component", "repository"),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// inTx runs fn in one transaction. Any error rolls it back.
func (r *Repository) inTx(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Transaction(fn); err != nil {
		err = errs.FromDB(op, err)
		if errs.KindOf(err) == errs.Store {
			r.log.WithField("op", op).WithError(err).Error("transaction rolled back")
		}
		return err
	}
	return nil
}

func (r *Repository) read(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := fn(r.db.WithContext(ctx)); err != nil {
		err = errs.FromDB(op, err)
		if errs.KindOf(err) == errs.Store {
			r.log.WithField("op", op).WithError(err).Error("query failed")
		}
		return err
	}
	return nil
}

// record queues an audit entry. It never fails the caller.
func (r *Repository) record(userID uint, action string, details audit.Fields) {
	if r.audit == nil {
		return
	}
	r.audit.Emit(audit.NewRecord(userID, action, details, r.now()))
}

// AuditStats exposes the emitter counters, zero when auditing is off.
func (r *Repository) AuditStats() audit.Stats {
	if r.audit == nil {
		return audit.Stats{}
	}
	return r.audit.Stats()
}

// Ping checks that the relational store answers.
func (r *Repository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sqlDB, err := r.db.DB()
	if err != nil {
		return errs.Wrap(errs.Store, "repository.Ping", err)
	}
	return errs.Wrap(errs.Store, "repository.Ping", sqlDB.PingContext(ctx))
}

// entity describes a table addressed by a single numeric key.
type entity struct {
	name  string
	pk    string
	model func() any
}

var (
	customers    = entity{"customer", "customer_id", func() any { return &models.Customer{} }}
	employees    = entity{"employee", "employee_id", func() any { return &models.Employee{} }}
	branches     = entity{"branch", "branch_id", func() any { return &models.Branch{} }}
	categories   = entity{"menu category", "category_id", func() any { return &models.MenuCategory{} }}
	menuItems    = entity{"menu item", "item_id", func() any { return &models.MenuItem{} }}
	orders       = entity{"order", "order_id", func() any { return &models.Order{} }}
	suppliers    = entity{"supplier", "supplier_id", func() any { return &models.Supplier{} }}
	inventories  = entity{"inventory record", "inventory_id", func() any { return &models.Inventory{} }}
	supplyOrders = entity{"supply order", "supply_order_id", func() any { return &models.SupplyOrder{} }}
)

func mustExist(tx *gorm.DB, op string, e entity, id uint) error {
	var n int64
	if err := tx.Model(e.model()).Where(e.pk+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFoundf(op, "%s %d not found", e.name, id)
	}
	return nil
}

// restrict refuses to go on while rows of model still point at id.
func restrict(tx *gorm.DB, op string, model any, column string, id uint, what string) error {
	var n int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return errs.Validationf(op, "still referenced by %d %s", n, what)
	}
	return nil
}

// findOne loads a row by primary key. A missing row is (nil, false, nil).
func findOne[T any](ctx context.Context, r *Repository, op string, id uint, scopes ...func(*gorm.DB) *gorm.DB) (*T, bool, error) {
	var out T
	err := r.read(ctx, op, func(db *gorm.DB) error {
		return db.Scopes(scopes...).First(&out, id).Error
	})
	if errs.KindOf(err) == errs.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &out, true, nil
}

type updater interface {
	Columns() map[models.Column]any
}

// updateByID writes the non-nil fields of u to one row. guard runs inside
// the transaction after the existence check.
func (r *Repository) updateByID(ctx context.Context, op string, e entity, id uint, u updater, guard func(tx *gorm.DB) error) (audit.Fields, error) {
	cols := u.Columns()
	if len(cols) == 0 {
		return nil, errs.Validationf(op, "no fields to update")
	}
	if err := validateStruct(op, u); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(cols))
	for col, v := range cols {
		values[string(col)] = v
	}

	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, e, id); err != nil {
			return err
		}
		if guard != nil {
			if err := guard(tx); err != nil {
				return err
			}
		}
		return tx.Model(e.model()).Where(e.pk+" = ?", id).Updates(values).Error
	})
	if err != nil {
		return nil, err
	}

	details := audit.Fields{e.pk: id}
	for k, v := range values {
		details[k] = v
	}
	return details, nil
}

// deleteByID removes one row. before runs first inside the transaction and
// is where restrict checks and link cleanup go.
func (r *Repository) deleteByID(ctx context.Context, op string, e entity, id uint, before func(tx *gorm.DB) error) error {
	return r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, e, id); err != nil {
			return err
		}
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}
		return tx.Where(e.pk+" = ?", id).Delete(e.model()).Error
	})
}

// lockForUpdate takes an exclusive row lock where the dialect has one.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	switch tx.Dialector.Name() {
	case "mysql", "postgres":
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	default:
		return tx
	}
}

// lockForShare takes a shared row lock where the dialect has one.
func lockForShare(tx *gorm.DB) *gorm.DB {
	switch tx.Dialector.Name() {
	case "mysql", "postgres":
		return tx.Clauses(clause.Locking{Strength: "SHARE"})
	default:
		return tx
	}
}
