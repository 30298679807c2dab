package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/josepha8674-lab/Best-restaurant/internal/menu"
)

// fakeClient scripts the backend's answers.
type fakeClient struct {
	text    string
	jsonOut string
	err     error
}

func (f *fakeClient) GenerateText(context.Context, string) (string, error) {
	return f.text, f.err
}

func (f *fakeClient) GenerateJSON(context.Context, string) (string, error) {
	return f.jsonOut, f.err
}

func TestDescription_FallsBackWithoutClient(t *testing.T) {
	assist := NewAssist(nil)

	got := assist.Description(context.Background(), "Pad Krapow", []string{"pork", "basil"})
	if got != FallbackMessage {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestDescription_FallsBackOnError(t *testing.T) {
	assist := NewAssist(&fakeClient{err: errors.New("quota")})

	got := assist.Description(context.Background(), "Pad Krapow", nil)
	if got != FallbackMessage {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestDescription_PassesBackendTextThrough(t *testing.T) {
	assist := NewAssist(&fakeClient{text: "Wok-seared pork with holy basil."})

	got := assist.Description(context.Background(), "Pad Krapow", nil)
	if got != "Wok-seared pork with holy basil." {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestRecipeSuggestion_NilOnAnyFailure(t *testing.T) {
	cases := []struct {
		name   string
		client Client
	}{
		{"no client", nil},
		{"backend error", &fakeClient{err: errors.New("down")}},
		{"bad json", &fakeClient{jsonOut: `{"description":`}},
		{"empty answer", &fakeClient{jsonOut: `{"description":"","ingredients":[]}`}},
	}

	for _, tc := range cases {
		assist := NewAssist(tc.client)
		if got := assist.RecipeSuggestion(context.Background(), "Tom Yum"); got != nil {
			t.Errorf("%s: expected nil suggestion, got %+v", tc.name, got)
		}
	}
}

func TestRecipeSuggestion_ParsesStructuredAnswer(t *testing.T) {
	assist := NewAssist(&fakeClient{jsonOut: `{
		"description": "Hot and sour shrimp soup.",
		"ingredients": [
			{"name": "Shrimp", "quantity": 150, "unit": "g", "marketPrice": 0.45},
			{"name": "Lemongrass", "quantity": 2, "unit": "pcs", "marketPrice": 5}
		]
	}`})

	suggestion := assist.RecipeSuggestion(context.Background(), "Tom Yum")
	if suggestion == nil {
		t.Fatal("expected a suggestion")
	}
	if len(suggestion.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(suggestion.Ingredients))
	}
	if suggestion.Ingredients[0].Unit != "g" {
		t.Fatalf("unexpected unit: %q", suggestion.Ingredients[0].Unit)
	}
}

func TestProfitability_FallsBackWithoutClient(t *testing.T) {
	assist := NewAssist(nil)

	item := menu.MenuItem{Name: "Pad Thai", Price: 250, TotalCost: 200}
	if got := assist.Profitability(context.Background(), item); got != FallbackMessage {
		t.Fatalf("expected fallback, got %q", got)
	}
}
