package workflow

import (
	"teamboard/internal/model"

	"github.com/google/uuid"
)

// Placement is one card's column and position after a move. Every card in
// a touched column gets a placement, so positions stay a dense 0-based
// sequence regardless of what the stored values looked like before.
type Placement struct {
	CardID   uuid.UUID
	ColumnID uuid.UUID
	Position int
}

// Reorder computes the placements for moving cardID to targetIndex in the
// target column. sourceCards and targetCards must be ordered ascending by
// position; for a same-column move only targetCards is consulted. A target
// index beyond the end inserts at the end.
func Reorder(sourceCards, targetCards []model.Card, cardID, sourceColumnID, targetColumnID uuid.UUID, targetIndex int) []Placement {
	if sourceColumnID == targetColumnID {
		ids := insertAt(idsWithout(targetCards, cardID), cardID, targetIndex)
		return placements(ids, targetColumnID, nil)
	}

	remaining := idsWithout(sourceCards, cardID)
	inserted := insertAt(idsWithout(targetCards, cardID), cardID, targetIndex)

	out := placements(remaining, sourceColumnID, nil)
	return placements(inserted, targetColumnID, out)
}

func idsWithout(cards []model.Card, exclude uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cards))
	for _, c := range cards {
		if c.ID != exclude {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func insertAt(ids []uuid.UUID, id uuid.UUID, index int) []uuid.UUID {
	if index < 0 {
		index = 0
	}
	if index > len(ids) {
		index = len(ids)
	}
	out := make([]uuid.UUID, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	out = append(out, ids[index:]...)
	return out
}

func placements(ids []uuid.UUID, columnID uuid.UUID, acc []Placement) []Placement {
	for i, id := range ids {
		acc = append(acc, Placement{CardID: id, ColumnID: columnID, Position: i})
	}
	return acc
}
