package main

import (
	"errors"
	"log"
	"net/http"
	"tsg/src/services"
	"tsg/src/types"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup, users *services.UserService) *gin.RouterGroup {
	g.
		GET("/users", func(ctx *gin.Context) {
			var pagination types.PaginationParams
			if err := ctx.ShouldBindQuery(&pagination); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			items, total, err := users.List(pagination)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.JSON(http.StatusOK, types.NewPaginatedResponse(items, total, pagination))
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := users.GetByID(params.ID)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		POST("/users", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			user, err := users.Create(&body)
			if err != nil {
				if errors.Is(err, services.ErrDuplicateEmail) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
					return
				}
				log.Printf("Error creating User: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.JSON(http.StatusCreated, user)
		}).
		PUT("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := users.Update(params.ID, body.Fields())
			if err != nil {
				respondUserUpdateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		PATCH("/users/:id", func(ctx *gin.Context) {
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
			fields, err := types.ParseUserPatch(data)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := users.Update(params.ID, fields)
			if err != nil {
				respondUserUpdateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := users.Delete(params.ID); err != nil {
				if errors.Is(err, services.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
					return
				}
				if errors.Is(err, services.ErrIntegrity) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "user still owns tickets"})
					return
				}
				log.Printf("Error deleting User [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func respondUserUpdateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrIntegrity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
