package layerstore

// Hooks receives the causes the storage layer discards when it converts a
// failure into an absent/false/empty result. Implementations MUST be cheap
// and non-blocking - the stores call them on hot paths. Wrap a slow
// implementation with hooks/async.
type Hooks interface {
	// A read failed and was reported as absence. For the file backend a
	// missing file is normal flow and is NOT reported here.
	ReadError(location string, err error)

	// A write (serialize, mkdir, file write, provider set) failed and was
	// reported as false.
	WriteError(location string, err error)

	// A delete failed for a reason other than the entry being absent.
	DeleteError(location string, err error)

	// A directory enumeration failed and was reported as empty.
	ListError(location string, err error)

	// A stored payload failed to decode and was reported as absence.
	DecodeError(location string, err error)

	// The cache backend dropped an entry it could not decode.
	// reason ∈ {"decode"}
	SelfHeal(location, reason string)
}

// NopHooks is the default no-op observer.
type NopHooks struct{}

func (NopHooks) ReadError(string, error)   {}
func (NopHooks) WriteError(string, error)  {}
func (NopHooks) DeleteError(string, error) {}
func (NopHooks) ListError(string, error)   {}
func (NopHooks) DecodeError(string, error) {}
func (NopHooks) SelfHeal(string, string)   {}
