package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudhev0011/VoterMngmtServer/middleware"
	"github.com/sudhev0011/VoterMngmtServer/store"
)

type TodoController struct {
	todos *store.TodoStore
}

func NewTodoController(todos *store.TodoStore) *TodoController {
	return &TodoController{todos: todos}
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func (ctl *TodoController) List(c *gin.Context) {
	todos, err := ctl.todos.ListByUser(currentUserID(c))
	if err != nil {
		slog.Error("todo listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (ctl *TodoController) Add(c *gin.Context) {
	var input struct {
		VoterID uint `json:"voterId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.VoterID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voter ID is required"})
		return
	}

	todo, err := ctl.todos.Add(currentUserID(c), input.VoterID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Voter not found"})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Voter already in your todo list"})
		default:
			slog.Error("todo creation failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding voter to todo list"})
		}
		return
	}

	c.JSON(http.StatusCreated, todo)
}

func (ctl *TodoController) Update(c *gin.Context) {
	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Todo item not found"})
		return
	}

	var input struct {
		HasVoted *bool `json:"hasVoted"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.HasVoted == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "hasVoted must be a boolean value"})
		return
	}

	todo, err := ctl.todos.SetVoted(currentUserID(c), todoID, *input.HasVoted)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Todo item not found"})
			return
		}
		slog.Error("todo update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating voting status"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (ctl *TodoController) Remove(c *gin.Context) {
	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Todo item not found"})
		return
	}

	if err := ctl.todos.Remove(currentUserID(c), todoID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Todo item not found"})
			return
		}
		slog.Error("todo deletion failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while removing voter from todo list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Voter removed from todo list successfully"})
}

func (ctl *TodoController) Stats(c *gin.Context) {
	stats, err := ctl.todos.Stats(currentUserID(c))
	if err != nil {
		slog.Error("todo stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ctl *TodoController) BulkUpdate(c *gin.Context) {
	var input struct {
		TodoIDs  []uint `json:"todoIds"`
		HasVoted *bool  `json:"hasVoted"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.TodoIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "todoIds must be a non-empty array"})
		return
	}
	if input.HasVoted == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "hasVoted must be a boolean value"})
		return
	}

	modified, err := ctl.todos.BulkSetVoted(currentUserID(c), input.TodoIDs, *input.HasVoted)
	if err != nil {
		slog.Error("todo bulk update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while bulk updating todos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Successfully updated %d todo items", modified),
		"modifiedCount": modified,
	})
}
