package menu

import (
	"encoding/json"
	"fmt"
	"time"
)

// LoadFailedMessage is the fixed user-facing message surfaced whenever the
// menu document cannot be loaded, regardless of the underlying cause.
const LoadFailedMessage = "Could not load menu. Please try again later."

// LoadError reports a failure to fetch or parse the menu document. The store
// is left empty when it occurs; there is no partial state.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load menu from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadState tracks the menu store lifecycle. The store starts empty, shows
// skeletons while a load is pending, and is replaced wholesale on success.
type LoadState string

const (
	StateEmpty   LoadState = "empty"
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// LoadStatus is a snapshot of the store lifecycle for the status endpoint.
type LoadStatus struct {
	State     LoadState `json:"state"`
	ItemCount int       `json:"item_count"`
	Skeletons int       `json:"skeletons,omitempty"`
	Message   string    `json:"message,omitempty"`
	LoadedAt  time.Time `json:"loaded_at,omitempty"`
}

// ParseDocument decodes a menu document: either a top-level array of items or
// an object wrapping the array under "items". A missing or malformed "items"
// key degrades to an empty sequence; a document that is not valid JSON at all
// is a parse failure.
func ParseDocument(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}
	var doc struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse menu document: %w", err)
	}
	if len(doc.Items) == 0 {
		return []Item{}, nil
	}
	if err := json.Unmarshal(doc.Items, &items); err != nil {
		return []Item{}, nil
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}
