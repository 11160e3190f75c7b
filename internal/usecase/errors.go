package usecase

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrNoCopies is returned when a borrow targets a book whose
	// available quantity is already zero.
	ErrNoCopies = errors.New("no available copies")
)
