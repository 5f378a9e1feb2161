package board

import (
	"sort"
	"strings"

	"tenderdesk-be/internal/entity"

	"github.com/google/uuid"
)

// Card is a tender joined with its tracking entry, shaped for one board column.
type Card struct {
	TrackingId uuid.UUID
	Tender     *entity.Tender
	Stage      entity.Stage
	Position   int
	Note       string // last move note, carried through for display
	CreatedAt  int64  // unix seconds of the tracking entry, used for ordering
}

// Board holds one slice per pipeline stage.
type Board map[entity.Stage][]*Card

// New returns a board with every stage present, even when empty. Clients
// render fixed columns and expect all four keys.
func New() Board {
	b := make(Board, len(entity.Stages()))
	for _, stage := range entity.Stages() {
		b[stage] = []*Card{}
	}
	return b
}

// Group buckets cards by stage, newest tracking entry first within a column.
// Cards carrying an unknown stage are dropped rather than invented a column.
func Group(cards []*Card) Board {
	b := New()
	for _, card := range cards {
		if !card.Stage.Valid() {
			continue
		}
		b[card.Stage] = append(b[card.Stage], card)
	}
	for _, stage := range entity.Stages() {
		column := b[stage]
		sort.SliceStable(column, func(i, j int) bool {
			return column[i].CreatedAt > column[j].CreatedAt
		})
	}
	return b
}

// Move describes one card transfer between columns.
type Move struct {
	TrackingId uuid.UUID
	From       entity.Stage
	To         entity.Stage
}

// Inverse returns the patch that undoes the move.
func (m Move) Inverse() Move {
	return Move{TrackingId: m.TrackingId, From: m.To, To: m.From}
}

// Apply removes the card from the source column and prepends it to the
// target, mirroring how a dropped card lands on top. Returns false when the
// card is not in the source column; the board is left untouched in that case.
func (b Board) Apply(m Move) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	source := b[m.From]
	idx := -1
	for i, card := range source {
		if card.TrackingId == m.TrackingId {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	card := source[idx]
	b[m.From] = append(source[:idx:idx], source[idx+1:]...)
	card.Stage = m.To
	b[m.To] = append([]*Card{card}, b[m.To]...)
	return true
}

// Filter keeps cards whose title, issuing entity, description or reference
// number contains the query, case-insensitive. An empty query returns the
// board unchanged.
func (b Board) Filter(query string) Board {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return b
	}
	filtered := New()
	for stage, column := range b {
		for _, card := range column {
			if cardMatches(card, query) {
				filtered[stage] = append(filtered[stage], card)
			}
		}
	}
	return filtered
}

func cardMatches(card *Card, query string) bool {
	t := card.Tender
	if t == nil {
		return false
	}
	for _, field := range []string{t.Title, t.Entity, t.Description, t.ReferenceNumber} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Total counts cards across all columns.
func (b Board) Total() int {
	n := 0
	for _, column := range b {
		n += len(column)
	}
	return n
}
