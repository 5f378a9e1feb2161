package board

import (
	"testing"

	"tenderdesk-be/internal/entity"

	"github.com/google/uuid"
)

func newCard(title string, stage entity.Stage, createdAt int64) *Card {
	return &Card{
		TrackingId: uuid.New(),
		Tender:     &entity.Tender{Id: uuid.New(), Title: title},
		Stage:      stage,
		CreatedAt:  createdAt,
	}
}

func TestGroup(t *testing.T) {
	older := newCard("older", entity.StagePending, 100)
	newer := newCard("newer", entity.StagePending, 200)
	review := newCard("in review", entity.StageReview, 150)
	unknown := newCard("ghost", entity.Stage("archived"), 300)

	b := Group([]*Card{older, review, newer, unknown})

	if got := len(b); got != 4 {
		t.Fatalf("expected 4 columns, got %d", got)
	}
	if got := len(b[entity.StagePending]); got != 2 {
		t.Fatalf("expected 2 pending cards, got %d", got)
	}
	if b[entity.StagePending][0] != newer {
		t.Errorf("expected newest pending card first")
	}
	if got := len(b[entity.StageCompleted]); got != 0 {
		t.Errorf("expected empty completed column, got %d cards", got)
	}
	if b.Total() != 3 {
		t.Errorf("expected unknown-stage card to be dropped, total = %d", b.Total())
	}
}

func TestApplyMove(t *testing.T) {
	card := newCard("moving", entity.StagePending, 100)
	resident := newCard("resident", entity.StageInProgress, 50)
	b := Group([]*Card{card, resident})

	move := Move{TrackingId: card.TrackingId, From: entity.StagePending, To: entity.StageInProgress}
	if !b.Apply(move) {
		t.Fatal("expected move to apply")
	}

	if got := len(b[entity.StagePending]); got != 0 {
		t.Errorf("source column still has %d cards", got)
	}
	if got := len(b[entity.StageInProgress]); got != 2 {
		t.Fatalf("target column has %d cards, want 2", got)
	}
	if b[entity.StageInProgress][0] != card {
		t.Errorf("moved card should land on top of the target column")
	}
	if card.Stage != entity.StageInProgress {
		t.Errorf("card stage = %q, want %q", card.Stage, entity.StageInProgress)
	}
}

func TestApplyMoveMissingCard(t *testing.T) {
	b := Group([]*Card{newCard("only", entity.StagePending, 1)})
	move := Move{TrackingId: uuid.New(), From: entity.StagePending, To: entity.StageReview}
	if b.Apply(move) {
		t.Fatal("expected move of unknown card to be rejected")
	}
	if b.Total() != 1 {
		t.Errorf("board mutated by rejected move")
	}
}

func TestMoveInverse(t *testing.T) {
	card := newCard("round trip", entity.StageReview, 10)
	b := Group([]*Card{card})

	move := Move{TrackingId: card.TrackingId, From: entity.StageReview, To: entity.StageCompleted}
	if !b.Apply(move) {
		t.Fatal("forward move failed")
	}
	if !b.Apply(move.Inverse()) {
		t.Fatal("inverse move failed")
	}
	if got := len(b[entity.StageReview]); got != 1 {
		t.Errorf("card not restored to original column, review has %d cards", got)
	}
	if card.Stage != entity.StageReview {
		t.Errorf("card stage = %q after rollback, want %q", card.Stage, entity.StageReview)
	}
}

func TestFilter(t *testing.T) {
	road := newCard("Road resurfacing", entity.StagePending, 1)
	road.Tender.Entity = "Ministry of Works"
	bridge := newCard("Bridge inspection", entity.StageReview, 2)
	bridge.Tender.ReferenceNumber = "TND-2024-017"
	school := newCard("School canteen", entity.StageCompleted, 3)
	school.Tender.Description = "Catering services for the north campus"

	b := Group([]*Card{road, bridge, school})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty query returns everything", "", 3},
		{"title match", "resurfac", 1},
		{"entity match case-insensitive", "ministry", 1},
		{"reference number match", "2024-017", 1},
		{"description match", "CATERING", 1},
		{"no match", "helicopter", 0},
		{"whitespace only", "   ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Filter(tt.query).Total(); got != tt.want {
				t.Errorf("Filter(%q) matched %d cards, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name  string
		value float64
		want  Priority
	}{
		{"above high threshold", 1_000_001, PriorityHigh},
		{"exactly high threshold is medium", 1_000_000, PriorityMedium},
		{"exactly medium threshold", 500_000, PriorityMedium},
		{"below medium threshold", 499_999, PriorityLow},
		{"zero value", 0, PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Classify(tt.value); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
