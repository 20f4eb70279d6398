package progress

// BlobStore is the whole-state persistence contract. Both front ends
// only need get/set-whole-blob semantics; the store layers the schema
// on top.
type BlobStore interface {
	// Get returns the stored blob. ok is false when nothing has been
	// stored yet; a present-but-unreadable blob is reported as an error
	// and treated the same as absent by the caller.
	Get() (data []byte, ok bool, err error)
	// Put replaces the stored blob. The write must be atomic from the
	// perspective of a subsequent Get.
	Put(data []byte) error
	Close() error
}
