package usecases

import "context"

type IngestTicketExecutor interface {
	Execute(ctx context.Context, cmd IngestTicketCommand) (*IngestTicketResult, error)
}

type MarkInProgressExecutor interface {
	Execute(ctx context.Context, cmd MarkInProgressCommand) (*MarkInProgressResult, error)
}

type ResetTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ResetTicketStatusCommand) (*ResetTicketStatusResult, error)
}
