package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/johnquangdev/virtual-office/docs"
	"github.com/johnquangdev/virtual-office/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	companyHandler *Company
	llmHandler     *LLM
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, companyHandler *Company, llmHandler *LLM) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		companyHandler: companyHandler,
		llmHandler:     llmHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded attachments are served as static files
	e.Static("/uploads", rt.cfg.Server.UploadDir)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupCompanyRoutes(v1)
	rt.setupLLMRoutes(v1)
}

// setupMeetingRoutes configures meeting lifecycle and conversation routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.POST("/companies/:companyID/meetings", rt.meetingHandler.CreateMeeting)
	g.GET("/companies/:companyID/meetings", rt.meetingHandler.ListMeetings)

	meetings := g.Group("/meetings")
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.DELETE("/:id", rt.meetingHandler.DeleteMeeting)
	meetings.GET("/:id/messages", rt.meetingHandler.GetTranscript)
	meetings.POST("/:id/messages", rt.meetingHandler.SendMessage)
	meetings.POST("/:id/ask-all", rt.meetingHandler.AskAll)
	meetings.PUT("/:id/status", rt.meetingHandler.UpdateStatus)
	meetings.POST("/:id/images", rt.meetingHandler.UploadImage)
	meetings.GET("/:id/images", rt.meetingHandler.ListImages)
	meetings.GET("/:id/action-items", rt.meetingHandler.ListActionItems)
	meetings.POST("/:id/action-items", rt.meetingHandler.CreateActionItem)

	g.PUT("/action-items/:id/complete", rt.meetingHandler.CompleteActionItem)
}

// setupCompanyRoutes configures asset and knowledge base routes
func (rt *Router) setupCompanyRoutes(g *echo.Group) {
	g.POST("/companies/:companyID/assets", rt.companyHandler.RegisterAsset)
	g.GET("/companies/:companyID/assets", rt.companyHandler.ListAssets)
	g.DELETE("/assets/:id", rt.companyHandler.DeleteAsset)

	g.POST("/companies/:companyID/knowledge", rt.companyHandler.AddKnowledge)
	g.GET("/companies/:companyID/knowledge", rt.companyHandler.ListKnowledge)
}

// setupLLMRoutes configures the provider catalog routes
func (rt *Router) setupLLMRoutes(g *echo.Group) {
	g.GET("/llm/providers", rt.llmHandler.ListProviders)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
		"time":        time.Now().Format(time.RFC3339),
	})
}
