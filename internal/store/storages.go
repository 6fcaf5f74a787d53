package store

import "github.com/MKhiriev/task-tracker/internal/logger"

// Storages bundles the repositories that share one connection pool.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}
}
