package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zava-ai/zava"
	"github.com/zava-ai/zava/execution"
)

func (s *Server) handleAgentCard(c *gin.Context) {
	c.JSON(http.StatusOK, s.card)
}

// handleExecute runs one agent request. A missing message field is a 400;
// processor failures keep the original contract of a 200 response carrying an
// error-shaped body.
func (s *Server) handleExecute(c *gin.Context) {
	var body struct {
		Message        *string        `json:"message"`
		ConversationID string         `json:"conversation_id"`
		Metadata       map[string]any `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if body.Message == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	result := s.executor.Execute(c.Request.Context(), execution.Request{
		Message:        *body.Message,
		ConversationID: body.ConversationID,
		Metadata:       body.Metadata,
	})
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCancel(c *gin.Context) {
	result := s.executor.Cancel(c.Param("execution_id"))
	status := http.StatusOK
	if result.Status == "error" {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

func (s *Server) handleStatus(c *gin.Context) {
	snapshot, ok := s.executor.GetStatus(c.Param("execution_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Execution not found",
		})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) handleListExecutions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"executions": s.executor.ListExecutions()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"agent_id":  zava.AgentID,
		"version":   zava.Version,
	})
}
