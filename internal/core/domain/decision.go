package domain

// ShouldRecompile decides whether a cached artifact must be rebuilt.
// A missing stored fingerprint always recompiles (cold cache), as does the
// force flag. Otherwise the artifact is rebuilt iff the fingerprints differ.
// It has no side effects; persisting the new fingerprint is up to the caller.
func ShouldRecompile(stored *Fingerprint, current Fingerprint, force bool) bool {
	if stored == nil || force {
		return true
	}
	return !current.Equal(*stored)
}
