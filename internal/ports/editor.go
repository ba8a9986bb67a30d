package ports

import "context"

// FileEditor hands a file to the user to edit and returns when they are done
type FileEditor interface {
	Edit(ctx context.Context, path string) error
}
