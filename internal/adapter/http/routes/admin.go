package routes

import (
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathInvoices = "/invoices"
	PathFinance  = "/finance"
)

// addAdminRoutes wires the token-gated admin surface: the booking pipeline,
// invoices, the finance summary and the blog editor.
func addAdminRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, financeHandler *handlers.FinanceHandler, postHandler *handlers.PostHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/auditions", projectHandler.ListAuditions)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/approve", projectHandler.ApproveProject)
		projects.PATCH("/:id/reject", projectHandler.RejectProject)
		projects.PATCH("/:id/book", projectHandler.BookProject)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", financeHandler.CreateInvoice)
		invoices.GET("/project/:project_id", financeHandler.ListInvoicesByProject)
	}

	finance := rg.Group(PathFinance)
	{
		finance.GET("/summary", financeHandler.GetSummary)
	}

	posts := rg.Group(PathPosts)
	{
		posts.GET("", postHandler.ListAllPosts)
		posts.POST("", postHandler.CreatePost)
		posts.PUT("", postHandler.UpdatePost)
	}
}
