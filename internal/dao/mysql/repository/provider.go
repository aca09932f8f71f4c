package repository

import (
	"gorm.io/gorm"
)

// Repositories aggregates every repository. Services receive this struct
// instead of individual instances.
type Repositories struct {
	db      *gorm.DB
	User    UserRepository
	Contact ContactRepository
	Message MessageRepository
	Status  StatusRepository
	Call    CallRepository
	Catalog CatalogRepository
	Order   OrderRepository
}

// NewRepositories builds all repositories over one gorm handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:      db,
		User:    NewUserRepository(db),
		Contact: NewContactRepository(db),
		Message: NewMessageRepository(db),
		Status:  NewStatusRepository(db),
		Call:    NewCallRepository(db),
		Catalog: NewCatalogRepository(db),
		Order:   NewOrderRepository(db),
	}
}

// Transaction runs fn inside a database transaction; fn receives a
// Repositories bound to the transaction handle. Any error rolls back.
// A Repositories assembled without a gorm handle runs fn directly.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
