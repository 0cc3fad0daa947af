// Package orm is a thin chainable wrapper over gorm used by the
// repositories, so query-building stays uniform across them.
package orm

import "gorm.io/gorm"

type Query struct {
	db *gorm.DB
}

// New wraps an explicit database handle.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Select(columns string) *Query {
	return &Query{db: q.db.Select(columns)}
}

func (q *Query) Joins(clause string) *Query {
	return &Query{db: q.db.Joins(clause)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

// Scan runs the built query into an arbitrary row struct (used for joins).
func (q *Query) Scan(dest interface{}) error {
	return q.db.Scan(dest).Error
}

func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Delete removes rows matched by the current conditions.
// RowsAffected reports how many were removed.
func (q *Query) Delete(v interface{}) (int64, error) {
	res := q.db.Delete(v)
	return res.RowsAffected, res.Error
}
