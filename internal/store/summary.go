package store

import (
	"sort"

	"github.com/numeshj/chatting-app/internal/models"
)

// Summaries derives the chat-list view for one identity: every non-empty
// conversation the identity takes part in, newest last message first. The
// other party's display name is resolved from any message they authored; if
// the requester is the only one who ever wrote, a placeholder is used.
func (s *Store) Summaries(forID int) []models.Summary {
	var out []models.Summary
	for _, conv := range s.conversations {
		if len(conv.messages) == 0 {
			continue
		}
		var otherID int
		switch forID {
		case conv.a:
			otherID = conv.b
		case conv.b:
			otherID = conv.a
		default:
			continue
		}
		name := models.DisplayName(otherID)
		for _, m := range conv.messages {
			if m.Source.ID == otherID {
				name = m.Source.Name
				break
			}
		}
		last := conv.messages[len(conv.messages)-1]
		out = append(out, models.Summary{
			With:        models.Identity{ID: otherID, Name: name},
			LastMessage: *last,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessage.Time.After(out[j].LastMessage.Time)
	})
	return out
}
