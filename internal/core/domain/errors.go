package domain

import "go.trai.ch/zerr"

var (
	// ErrUnresolvableSource is returned when a request cannot be mapped to an existing source file.
	ErrUnresolvableSource = zerr.New("unresolvable source")

	// ErrIO is returned when a filesystem read or write fails during fingerprinting or cache access.
	ErrIO = zerr.New("i/o failure")

	// ErrCompileFailed is returned when the external compiler rejects a source.
	ErrCompileFailed = zerr.New("compile failed")

	// ErrNotADirectory is returned when a directory digest is requested for something else.
	ErrNotADirectory = zerr.New("not a directory")

	// ErrInvalidHandle is returned when a handle sanitizes to an empty key.
	ErrInvalidHandle = zerr.New("invalid handle")

	// ErrInvalidFingerprint is returned when a persisted fingerprint cannot be decoded.
	ErrInvalidFingerprint = zerr.New("invalid fingerprint")

	// ErrInvalidValue is returned when a variable value cannot be converted.
	ErrInvalidValue = zerr.New("invalid variable value")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache directory")

	// ErrStoreReadFailed is returned when a cache slot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache slot")

	// ErrStoreUnmarshalFailed is returned when a cache slot cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache slot")

	// ErrStoreMarshalFailed is returned when a cache slot cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache slot")

	// ErrStoreWriteFailed is returned when a cache slot or output cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStoreClearFailed is returned when the cache directory cannot be cleared.
	ErrStoreClearFailed = zerr.New("failed to clear cache directory")

	// ErrWriteHookFailed is returned when an output write hook fails.
	ErrWriteHookFailed = zerr.New("output write hook failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCompilerNotConfigured is returned when no compiler command is configured.
	ErrCompilerNotConfigured = zerr.New("no compiler command configured")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrNoRequests is returned when a command is given nothing to resolve.
	ErrNoRequests = zerr.New("no stylesheet requests specified")

	// ErrWatchFailed is returned when the source watcher cannot start.
	ErrWatchFailed = zerr.New("failed to watch sources")
)

// CompileError carries the compiler diagnostic verbatim.
type CompileError struct {
	Handle  string
	Message string
}

// Error implements error.
func (e *CompileError) Error() string {
	return ErrCompileFailed.Error() + ": " + e.Message
}

// Is lets errors.Is match ErrCompileFailed.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompileFailed
}
