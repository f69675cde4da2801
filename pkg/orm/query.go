// Package orm is a thin, chainable query layer over the shared gorm
// connection. Repositories talk to the database through orm.DB() so the
// handle wiring stays in one place and pagination/caching behave uniformly.
package orm

import (
	"time"

	"github.com/shashiranjanraj/medicare/pkg/cache"
	"github.com/shashiranjanraj/medicare/pkg/database"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

// DB starts a query chain on the process-wide connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// Use starts a query chain on an explicit gorm handle, e.g. a transaction.
func Use(db *gorm.DB) *Query {
	return &Query{db: db}
}

// Gorm exposes the underlying handle for the rare query the wrapper
// cannot express.
func (q *Query) Gorm() *gorm.DB {
	return q.db
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Joins(join string, args ...interface{}) *Query {
	return &Query{db: q.db.Joins(join, args...)}
}

func (q *Query) Preload(association string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(association, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

func (q *Query) Distinct(args ...interface{}) *Query {
	return &Query{db: q.db.Distinct(args...)}
}

func (q *Query) Select(query interface{}, args ...interface{}) *Query {
	return &Query{db: q.db.Select(query, args...)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count(n *int64) error {
	return q.db.Count(n).Error
}

func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Transaction runs fn inside a database transaction. Any error returned by
// fn rolls back every write performed through the supplied handle.
func Transaction(fn func(tx *gorm.DB) error) error {
	return database.DB.Transaction(fn)
}

// Cache is a read-through helper: serve dest from Redis when the key is
// hot, otherwise run the query and store the result for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	err := q.db.Find(dest).Error
	if err != nil {
		return err
	}

	cache.Set(key, dest, ttl)
	return nil
}
