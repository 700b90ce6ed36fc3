package transfer

import "context"

type UseCase interface {
	GetDraft(ctx context.Context, sessionID string) (*Draft, error)
	SetLocations(ctx context.Context, sessionID, from, to string) (*Draft, error)
	AddItem(ctx context.Context, sessionID, productID string) (*Draft, error)
	UpdateQuantity(ctx context.Context, sessionID string, index int, qty int64) (*Draft, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (*Draft, error)
	Candidates(ctx context.Context, sessionID, term string) ([]Candidate, error)
	Submit(ctx context.Context, sessionID, requestedBy string) (*SubmittedPayload, error)
	Discard(ctx context.Context, sessionID string) error
}
