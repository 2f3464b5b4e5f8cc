package routes

import (
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPosts = "/posts"
)

// addSiteRoutes wires the public read surface of the site.
func addSiteRoutes(rg *gin.RouterGroup, postHandler *handlers.PostHandler) {
	posts := rg.Group(PathPosts)
	{
		posts.GET("", postHandler.ListPublishedPosts)
		posts.GET("/:slug", postHandler.GetPostBySlug)
		posts.POST("/:slug/views", postHandler.RecordView)
	}
}
