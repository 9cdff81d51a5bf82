package runtime

import "errors"

// Error definitions for the runtime package.
var (
	ErrLoaderNotFound    = errors.New("runtime loader not found in registry")
	ErrAlreadyRegistered = errors.New("runtime loader is already registered in the registry")
)
