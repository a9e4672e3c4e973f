package domain

import "context"

// ServicePort is the session controller
type ServicePort interface {
	Start(ctx context.Context, in StartInput) (View, error)
	View(ctx context.Context, id string) (View, error)
	Release(ctx context.Context, id string) error
	Next(ctx context.Context, id string) (NextOutput, error)
	Toggle(ctx context.Context, id string, in ToggleInput) (ToggleOutput, error)
	Edit(ctx context.Context, id string, in EditInput) (EditOutput, error)
	Submit(ctx context.Context, id string, in SubmitInput) (ReviewOutput, error)
	Undo(ctx context.Context, id string, in UndoInput) (ReviewOutput, error)
}
