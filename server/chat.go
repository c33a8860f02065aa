package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zava-ai/zava"
	"github.com/zava-ai/zava/execution"
)

// chatRequest is the request shape of the chat surface. Message presence is
// checked here; an empty string is passed through and fails in the executor.
type chatRequest struct {
	Message        *string        `json:"message"`
	SessionID      string         `json:"session_id"`
	ConversationID string         `json:"conversation_id"`
	Metadata       map[string]any `json:"metadata"`
}

// chatResponse reshapes an execution result for chat clients.
type chatResponse struct {
	Response    string         `json:"response"`
	ExecutionID string         `json:"execution_id"`
	Status      string         `json:"status"`
	Metadata    map[string]any `json:"metadata"`
}

func (s *Server) handleChatMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = req.SessionID
	}
	result := s.executor.Execute(c.Request.Context(), execution.Request{
		Message:        *req.Message,
		ConversationID: conversationID,
		Metadata:       req.Metadata,
	})

	response := chatResponse{
		ExecutionID: result.ExecutionID,
		Metadata:    map[string]any{},
	}
	if result.Status == "success" {
		response.Response = result.Response
		response.Status = "completed"
	} else {
		response.Response = result.Error
		response.Status = result.Status
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) handleChatStatus(c *gin.Context) {
	snapshot, ok := s.executor.GetStatus(c.Param("execution_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Execution not found"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) handleChatCancel(c *gin.Context) {
	result := s.executor.Cancel(c.Param("execution_id"))
	if result.Status == "error" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": result.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleChatListExecutions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"executions": s.executor.ListExecutions()})
}

func (s *Server) handleChatAgentInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"agent_id":    zava.AgentID,
		"name":        zava.AgentName,
		"description": "A specialized agent for managing Zava product information, recommendations, and enhanced descriptions",
		"version":     zava.Version,
		"capabilities": []string{
			"Product Information Retrieval",
			"Product Recommendations",
			"Enhanced Product Descriptions",
			"Inventory Queries",
			"Customer Support",
		},
		"supported_languages": []string{"en"},
		"response_formats":    []string{"text", "json"},
	})
}
