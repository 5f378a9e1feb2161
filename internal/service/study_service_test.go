package service

import (
	"testing"

	"tenderdesk-be/internal/entity"

	"github.com/google/uuid"
)

func item(qty, cost, price float64) *entity.TenderItem {
	return &entity.TenderItem{
		Id:        uuid.New(),
		Quantity:  qty,
		UnitCost:  cost,
		UnitPrice: price,
	}
}

func competitor(total float64) *entity.CompetitorPrice {
	return &entity.CompetitorPrice{Id: uuid.New(), TotalPrice: total}
}

func TestStudyTotals(t *testing.T) {
	tests := []struct {
		name      string
		items     []*entity.TenderItem
		wantCost  float64
		wantPrice float64
	}{
		{"empty study", nil, 0, 0},
		{"single item", []*entity.TenderItem{item(2, 100, 150)}, 200, 300},
		{
			"multiple items",
			[]*entity.TenderItem{item(2, 100, 150), item(10, 5, 8)},
			250, 380,
		},
		{"fractional quantity", []*entity.TenderItem{item(1.5, 100, 120)}, 150, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, price := studyTotals(tt.items)
			if cost != tt.wantCost || price != tt.wantPrice {
				t.Errorf("studyTotals() = (%v, %v), want (%v, %v)", cost, price, tt.wantCost, tt.wantPrice)
			}
		})
	}
}

func TestMarginPercent(t *testing.T) {
	tests := []struct {
		name       string
		profit     float64
		totalPrice float64
		want       float64
	}{
		{"healthy margin", 300, 1000, 30},
		{"rounded to two decimals", 100, 300, 33.33},
		{"loss", -50, 1000, -5},
		{"zero price avoids division", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := marginPercent(tt.profit, tt.totalPrice); got != tt.want {
				t.Errorf("marginPercent(%v, %v) = %v, want %v", tt.profit, tt.totalPrice, got, tt.want)
			}
		})
	}
}

func TestRankOffer(t *testing.T) {
	competitors := []*entity.CompetitorPrice{
		competitor(900), competitor(1100), competitor(1500),
	}

	tests := []struct {
		name     string
		ourTotal float64
		want     int
	}{
		{"cheapest offer", 800, 1},
		{"mid-field", 1000, 2},
		{"most expensive", 2000, 4},
		{"tie ranks equal", 1100, 2},
		{"no offer priced yet", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rankOffer(tt.ourTotal, competitors); got != tt.want {
				t.Errorf("rankOffer(%v) = %d, want %d", tt.ourTotal, got, tt.want)
			}
		})
	}
}

func TestBuildStudyResponse(t *testing.T) {
	tenderId := uuid.New()
	items := []*entity.TenderItem{item(2, 100, 150), item(1, 200, 220)}
	competitors := []*entity.CompetitorPrice{competitor(400), competitor(600)}

	res := buildStudyResponse(tenderId, items, competitors)

	if res.TotalCost != 400 {
		t.Errorf("TotalCost = %v, want 400", res.TotalCost)
	}
	if res.TotalPrice != 520 {
		t.Errorf("TotalPrice = %v, want 520", res.TotalPrice)
	}
	if res.Profit != 120 {
		t.Errorf("Profit = %v, want 120", res.Profit)
	}
	if res.MarginPercent != 23.08 {
		t.Errorf("MarginPercent = %v, want 23.08", res.MarginPercent)
	}
	if res.OurRank != 2 {
		t.Errorf("OurRank = %d, want 2", res.OurRank)
	}
	if len(res.Items) != 2 || len(res.Competitors) != 2 {
		t.Errorf("response has %d items, %d competitors", len(res.Items), len(res.Competitors))
	}
	if res.Items[0].TotalPrice != 300 {
		t.Errorf("first item TotalPrice = %v, want 300", res.Items[0].TotalPrice)
	}
}
