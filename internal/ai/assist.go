package ai

import (
	"context"
	"log"

	"github.com/josepha8674-lab/Best-restaurant/internal/menu"
)

// FallbackMessage is what the operator sees whenever the assist backend is
// missing or failing. AI problems never block the core workflows.
const FallbackMessage = "AI assist is not available right now."

// Assist wraps a Client and converts every failure into a sentinel: a
// fallback string for text, nil for the structured suggestion.
type Assist struct {
	client Client
}

// NewAssist builds the assist service. client may be nil when no API key is
// configured; every call then degrades immediately.
func NewAssist(client Client) *Assist {
	return &Assist{client: client}
}

func (a *Assist) Description(ctx context.Context, dishName string, ingredientNames []string) string {
	if a.client == nil {
		return FallbackMessage
	}

	text, err := a.client.GenerateText(ctx, BuildDescriptionPrompt(dishName, ingredientNames))
	if err != nil {
		log.Printf("ai: description generation failed: %v", err)
		return FallbackMessage
	}
	return text
}

func (a *Assist) RecipeSuggestion(ctx context.Context, dishName string) *RecipeSuggestion {
	if a.client == nil {
		return nil
	}

	raw, err := a.client.GenerateJSON(ctx, BuildRecipePrompt(dishName))
	if err != nil {
		log.Printf("ai: recipe suggestion failed: %v", err)
		return nil
	}

	suggestion, err := ParseRecipeSuggestion(raw)
	if err != nil {
		log.Printf("ai: recipe suggestion failed: %v", err)
		return nil
	}
	return suggestion
}

func (a *Assist) Profitability(ctx context.Context, item menu.MenuItem) string {
	if a.client == nil {
		return FallbackMessage
	}

	prompt := BuildProfitabilityPrompt(
		item.Name,
		item.Price,
		item.TotalCost,
		menu.Margin(item.Price, item.TotalCost),
	)

	text, err := a.client.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("ai: profitability analysis failed: %v", err)
		return FallbackMessage
	}
	return text
}
