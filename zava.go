// Package zava defines the core contracts for the Zava Product Manager
// service: the message processor interface implemented by hosted-LLM agents
// and the agent card types served by the A2A discovery endpoint.
package zava

import "context"

// Version of the service, reported in the agent card and health responses.
const Version = "1.0.0"

// AgentID identifies this agent on the A2A surface.
const AgentID = "zava-product-manager"

// AgentName is the human-readable agent name.
const AgentName = "Zava Product Manager"

// MessageProcessor turns a user message into a response using an external
// hosted model. Implementations may block on network I/O and may fail; callers
// must treat the processor as an opaque, unreliable collaborator.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, message string) (string, error)
}
