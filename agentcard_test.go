package zava

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentCard(t *testing.T) {
	card := NewAgentCard("localhost", 8001)
	assert.Equal(t, "zava-product-manager", card.AgentID)
	assert.Equal(t, "Zava Product Manager", card.Name)
	assert.Equal(t, Version, card.Version)
	assert.Equal(t, []string{"A2A-v1.0"}, card.Protocols)
	assert.Equal(t, []string{"text"}, card.SupportedMessageTypes)
	assert.NotEmpty(t, card.CreatedAt)

	require.Len(t, card.Capabilities, 3)
	names := []string{
		card.Capabilities[0].Name,
		card.Capabilities[1].Name,
		card.Capabilities[2].Name,
	}
	assert.Equal(t, []string{"product_information", "product_recommendations", "enhance_descriptions"}, names)
	for _, capability := range card.Capabilities {
		schema := capability.InputSchema
		require.Equal(t, "object", schema["type"])
		assert.Equal(t, []string{"message"}, schema["required"])
	}

	assert.Equal(t, "http://localhost:8001/execute", card.Endpoints.Execute)
	assert.Equal(t, "http://localhost:8001/cancel/{execution_id}", card.Endpoints.Cancel)
	assert.Equal(t, "http://localhost:8001/status/{execution_id}", card.Endpoints.Status)
	assert.Equal(t, "http://localhost:8001/agent-card", card.Endpoints.AgentCard)
}
