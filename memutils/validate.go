package memutils

// Validatable is anything that can check its own internal consistency. DebugValidate accepts it so that
// allocators can verify themselves after every mutation in debug builds.
type Validatable interface {
	Validate() error
}
