package routes

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/api/handlers"
	"github.com/JMacalaguing/DynaHCare-V2/internal/api/middleware"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/gin-gonic/gin"
)

// Register mounts every route group on the engine. Only the admin approval
// endpoint sits behind authentication; the rest of the API is called by the
// public mobile client and the admin dashboard before login.
func Register(r *gin.Engine, h *handlers.Handlers, repos *repository.Repos) {
	auth := middleware.NewAuth(repos)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", h.Account.Signup)
		authGroup.POST("/login", h.Account.Login)
		authGroup.POST("/admin/login", h.Account.AdminLogin)
		authGroup.POST("/admin/approve", auth.TokenRequired(), auth.Admin(), h.Account.Approve)
		authGroup.GET("/approve", h.Account.ApprovalStatus)
		authGroup.POST("/update-status", h.Account.UpdateStatus)
		authGroup.GET("/user-list", h.Account.ListUsers)
		authGroup.DELETE("/delete-user/:id", h.Account.DeleteUser)
		authGroup.POST("/forgot-password", h.Account.ForgotPassword)
		authGroup.POST("/reset-password", h.Account.ResetPassword)
	}

	fb := r.Group("/formbuilder/api")
	{
		templates := fb.Group("/templates")
		{
			templates.GET("", h.Template.List)
			templates.POST("", h.Template.Create)
			templates.GET("/:id", h.Template.Get)
			templates.PUT("/:id", h.Template.Update)
			templates.DELETE("/:id", h.Template.Delete)
			templates.GET("/:id/forms", h.Template.Forms)
		}

		forms := fb.Group("/forms")
		{
			forms.GET("", h.Form.List)
			forms.POST("", h.Form.Create)
			forms.GET("/:id", h.Form.Get)
			forms.PUT("/:id", h.Form.Update)
			forms.DELETE("/:id", h.Form.Delete)
			forms.PUT("/:id/update_status", h.Form.UpdateStatus)
			forms.POST("/:id/submit", h.Form.Submit)
		}

		responses := fb.Group("/responses")
		{
			responses.GET("", h.Response.List)
			responses.POST("", h.Response.Create)
			responses.GET("/:id", h.Response.Get)
			responses.DELETE("/:id", h.Response.Delete)
			responses.GET("/:id/for_form", h.Response.ForForm)
			responses.POST("/:id/clear_responses", h.Response.ClearForForm)
			responses.PUT("/:id/update_response_data", h.Response.UpdateData)
		}
	}

	logbook := r.Group("/api/logbook")
	{
		logbook.POST("/", h.Logbook.Create)
		logbook.GET("/", h.Logbook.List)
		logbook.DELETE("/", h.Logbook.ClearAll)
	}
}
