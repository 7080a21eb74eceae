package ports

import "context"

// Resource adapts a remote collection of T, edited through a form buffer F,
// to the list/edit workflow.
type Resource[T any, F any] interface {
	// List returns the first page of the collection.
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, form F) error
	Update(ctx context.Context, id int64, form F) error
	Delete(ctx context.Context, id int64) error

	ID(item T) int64
	// EmptyForm is the buffer used by create mode.
	EmptyForm() F
	// FormFrom copies an existing record into a buffer for edit mode.
	FormFrom(item T) F
}
