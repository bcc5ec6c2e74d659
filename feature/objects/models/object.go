package models

// Object describes a stored object as returned to clients.
// It is built on every read and never persisted.
type Object struct {
	// Name is the display name, taken from the "name" user metadata.
	Name string `json:"name" example:"cat.png"`
	// Key is the storage key within the bucket.
	Key string `json:"key" example:"cat.png"`
	// URL is the address the object can be fetched from.
	URL string `json:"url" example:"http://localhost:9000/photos/cat.png"`
	// IsPublic reports whether the object's ACL grants READ to everyone.
	IsPublic bool `json:"isPublic" example:"false"`
}
