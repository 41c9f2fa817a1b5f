package main

import (
	"errors"
	"log"
	"net/http"

	"rrs/src/common"
	"rrs/src/types"
	"rrs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gookit/goutil/dump"
)

func agentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/agent", func(ctx *gin.Context) {
			var body types.AgentPromptRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
				return
			}
			instruction, err := common.InterpretPrompt(ctx, body.Prompt)
			if err == nil && !utils.IsProd() {
				dump.P(instruction)
			}
			if err != nil {
				log.Printf("error interpreting prompt: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
				return
			}
			result, err := common.DispatchInstruction(instruction)
			if err != nil {
				var fieldErr *common.FieldError
				if errors.As(err, &fieldErr) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Error()})
					return
				}
				if errors.Is(err, common.ErrSlotConflict) {
					ctx.JSON(http.StatusConflict, gin.H{"error": "Table is not available at this time"})
					return
				}
				log.Printf("error executing agent action: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":    true,
				"aiResponse": instruction,
				"result":     result,
			})
		})
	return g
}
