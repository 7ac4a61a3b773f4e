package main

import (
	"errors"
	"log"
	"net/http"
	"tsg/src/services"
	"tsg/src/types"

	"github.com/gin-gonic/gin"
)

func ticketHandlers(g *gin.RouterGroup, tickets *services.TicketService, bulk *services.BulkTicketService) *gin.RouterGroup {
	g.
		GET("/tickets", func(ctx *gin.Context) {
			var pagination types.PaginationParams
			if err := ctx.ShouldBindQuery(&pagination); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			items, total, err := tickets.List(pagination)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.JSON(http.StatusOK, types.NewPaginatedResponse(items, total, pagination))
		}).
		GET("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, err := tickets.GetByID(params.ID)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.JSON(http.StatusOK, ticket)
		}).
		POST("/tickets", func(ctx *gin.Context) {
			var body types.CreateTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ticket, err := tickets.Create(&body)
			if err != nil {
				if errors.Is(err, services.ErrInvalidUserRef) {
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "user does not exist"})
					return
				}
				log.Printf("Error creating Ticket: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.JSON(http.StatusCreated, ticket)
		}).
		POST("/tickets/bulk", func(ctx *gin.Context) {
			var body types.BulkCreateTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			summary, err := bulk.Create(&body)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			if summary.Deferred() {
				ctx.JSON(http.StatusAccepted, summary)
				return
			}
			ctx.JSON(http.StatusCreated, summary)
		}).
		PUT("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, err := tickets.Update(params.ID, body.Fields())
			if err != nil {
				respondTicketUpdateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, ticket)
		}).
		PATCH("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			data, err := ctx.GetRawData()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			fields, err := types.ParseTicketPatch(data)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, err := tickets.Update(params.ID, fields)
			if err != nil {
				respondTicketUpdateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, ticket)
		}).
		DELETE("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := tickets.Delete(params.ID); err != nil {
				if errors.Is(err, services.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
					return
				}
				log.Printf("Error deleting Ticket [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func respondTicketUpdateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, services.ErrInvalidUserRef):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user does not exist"})
	case errors.Is(err, services.ErrIntegrity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
