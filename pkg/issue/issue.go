// Package issue provides data structures and error types for issues filed on a tracker.
package issue

// Info represents an issue created on a tracker.
type Info struct {
	ID  string `yaml:"id,omitempty"`
	Key string `yaml:"key"`
	URL string `yaml:"url,omitempty"`
}

// String returns the key followed by the browse URL when known.
func (i Info) String() string {
	if i.URL == "" {
		return i.Key
	}
	return i.Key + " (" + i.URL + ")"
}
