// domain/types/reactions.go
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Reaction is one user's emoji reaction on a message.
type Reaction struct {
	UserID uuid.UUID `json:"user_id"`
	Emoji  string    `json:"emoji"`
}

// ReactionList serializes the reactions of a message as a single JSON column.
type ReactionList []Reaction

func (r ReactionList) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// With returns the list with userID's reaction set to emoji, replacing any
// earlier reaction from the same user.
func (r ReactionList) With(userID uuid.UUID, emoji string) ReactionList {
	out := make(ReactionList, 0, len(r)+1)
	for _, re := range r {
		if re.UserID != userID {
			out = append(out, re)
		}
	}
	return append(out, Reaction{UserID: userID, Emoji: emoji})
}

func (r *ReactionList) Scan(value interface{}) error {
	if value == nil {
		*r = ReactionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errors.New("types: unsupported source for ReactionList")
	}
}
