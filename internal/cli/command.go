package cli

import "context"

// Command represents a CLI command handler
type Command interface {
	Execute(ctx context.Context, args []string) error
}
