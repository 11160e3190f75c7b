// Package usecase defines the repository contracts the HTTP handlers
// depend on. The MongoDB implementations live in internal/store.
package usecase

//go:generate mockgen -destination ../store/mocks/mock_repos.go -package mocks github.com/NafizUddin/Quickreads-Server-Side/internal/usecase CategoryRepository,UserRepository,BookRepository,BorrowedBookRepository
