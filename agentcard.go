package zava

import (
	"fmt"
	"time"
)

// Capability describes one operation the agent supports, with a JSON Schema
// for its input.
type Capability struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Endpoints lists the A2A endpoint URLs for this agent.
type Endpoints struct {
	Execute   string `json:"execute"`
	Cancel    string `json:"cancel"`
	Status    string `json:"status"`
	AgentCard string `json:"agent_card"`
}

// AgentCard is the static capability document served at /agent-card. Its shape
// is fixed by the A2A discovery contract.
type AgentCard struct {
	AgentID               string       `json:"agent_id"`
	Name                  string       `json:"name"`
	Description           string       `json:"description"`
	Version               string       `json:"version"`
	Capabilities          []Capability `json:"capabilities"`
	Endpoints             Endpoints    `json:"endpoints"`
	Protocols             []string     `json:"protocols"`
	SupportedMessageTypes []string     `json:"supported_message_types"`
	CreatedAt             string       `json:"created_at"`
}

// messageInputSchema is the single-field schema shared by all capabilities.
func messageInputSchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"message"},
	}
}

// NewAgentCard builds the agent card for a service reachable at the given
// host and port.
func NewAgentCard(host string, port int) *AgentCard {
	base := fmt.Sprintf("http://%s:%d", host, port)
	return &AgentCard{
		AgentID:     AgentID,
		Name:        AgentName,
		Description: "A specialized agent for managing Zava product information, recommendations, and enhanced descriptions",
		Version:     Version,
		Capabilities: []Capability{
			{
				Name:        "product_information",
				Description: "Retrieve detailed information about specific products",
				InputSchema: messageInputSchema("User message asking about product information"),
			},
			{
				Name:        "product_recommendations",
				Description: "Provide product recommendations based on customer needs and budget",
				InputSchema: messageInputSchema("User message describing their needs"),
			},
			{
				Name:        "enhance_descriptions",
				Description: "Create enhanced, marketing-friendly product descriptions",
				InputSchema: messageInputSchema("Request to enhance a product description"),
			},
		},
		Endpoints: Endpoints{
			Execute:   base + "/execute",
			Cancel:    base + "/cancel/{execution_id}",
			Status:    base + "/status/{execution_id}",
			AgentCard: base + "/agent-card",
		},
		Protocols:             []string{"A2A-v1.0"},
		SupportedMessageTypes: []string{"text"},
		CreatedAt:             time.Now().UTC().Format(time.RFC3339),
	}
}
