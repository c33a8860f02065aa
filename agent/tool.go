package agent

import (
	"encoding/json"
	"fmt"

	"github.com/zava-ai/zava/catalog"
	"github.com/zava-ai/zava/llm"
)

const productsToolName = "get_products"

// productsTool describes the catalog lookup tool offered to the model.
func productsTool() llm.Tool {
	return llm.Tool{
		Name:        productsToolName,
		Description: "Look up products in the Zava catalog. Returns matching products with name, category, description and price. Pass an empty query to list the full catalog.",
		Parameters: llm.Schema{
			Type: "object",
			Properties: map[string]*llm.SchemaProperty{
				"query": {
					Type:        "string",
					Description: "Keywords to match against product names, categories and descriptions",
				},
			},
		},
	}
}

// runProductsTool executes a get_products call against the catalog and
// returns the matches as JSON.
func runProductsTool(c *catalog.Catalog, input json.RawMessage) (string, error) {
	var args struct {
		Query string `json:"query"`
	}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("invalid get_products arguments: %w", err)
		}
	}
	matches := c.Search(args.Query)
	if len(matches) == 0 {
		return `{"products":[],"message":"no matching products found"}`, nil
	}
	data, err := json.Marshal(map[string]any{"products": matches})
	if err != nil {
		return "", fmt.Errorf("failed to encode products: %w", err)
	}
	return string(data), nil
}
