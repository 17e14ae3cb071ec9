// Package httpapi is the thin HTTP glue over the dispatcher, the
// conversation store, and the agent registry. It holds no decision logic.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contractx "deskrouter/agent/contract"
	"deskrouter/conversation"
)

// Dispatcher is the single call the transport makes per chat turn.
type Dispatcher interface {
	Dispatch(ctx context.Context, conversationID string, message string) (string, error)
}

// Register mounts all API routes on the engine.
func Register(r *gin.Engine, d Dispatcher, store conversation.Store, registry contractx.Registry) {
	chat := r.Group("/api/chat")
	chat.POST("/messages", postMessage(d))
	chat.GET("/conversations", listConversations(store))
	chat.GET("/conversations/:id", listMessages(store))
	chat.DELETE("/conversations/:id", deleteConversation(store))

	agents := r.Group("/api/agents")
	agents.GET("", listAgents(registry))
	agents.GET("/:id/capabilities", capabilitiesOf(registry))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

type messageRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

func postMessage(d Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req messageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		// The conversation id is externally supplied or generated here.
		conversationID := req.ConversationID
		if conversationID == "" {
			conversationID = uuid.NewString()
		}

		content, err := d.Dispatch(c.Request.Context(), conversationID, req.Message)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"conversationId": conversationID,
			"content":        content,
		})
	}
}

func listConversations(store conversation.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		convs, err := store.ListConversations(c.Request.Context())
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, convs)
	}
}

func listMessages(store conversation.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := store.ListMessages(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

func deleteConversation(store conversation.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func listAgents(registry contractx.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, registry.ListAgents())
	}
}

func capabilitiesOf(registry contractx.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Unknown agent ids yield an empty list, not an error.
		c.JSON(http.StatusOK, registry.CapabilitiesOf(contractx.AgentID(c.Param("id"))))
	}
}

// statusFor maps the dispatch error taxonomy to HTTP statuses. Handler
// failures are retryable upstream, hence 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, contractx.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, conversation.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, contractx.ErrHandlerFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
