package file

import (
	"encoding/json"
	"fmt"

	"jarvis-assistant/internal/knowledge/repository"
	"jarvis-assistant/internal/model"
)

// document is the on-disk layout. Map-like fields are stored as [key, value]
// pairs so the file keeps insertion order.
type document struct {
	KnowledgeBase  []patternEntry       `json:"knowledgeBase"`
	CommandHistory []model.HistoryEntry `json:"commandHistory"`
	IntentPatterns []groupEntry         `json:"intentPatterns"`
}

type patternEntry struct {
	Key     string
	Pattern model.Pattern
}

func (e patternEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Key, e.Pattern})
}

func (e *patternEntry) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: knowledgeBase entry has %d elements", repository.ErrCorruptData, len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Key); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Pattern)
}

type groupEntry struct {
	Key      string
	Patterns []model.Pattern
}

func (e groupEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Key, e.Patterns})
}

func (e *groupEntry) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: intentPatterns entry has %d elements", repository.ErrCorruptData, len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Key); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Patterns)
}
