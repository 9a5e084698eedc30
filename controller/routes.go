package controller

import "github.com/gin-gonic/gin"

// Register define all routes of the site
func Register(router *gin.Engine, apiController APIController, pageController PageController) {
	router.GET("/", pageController.Index)
	router.POST("/contact", pageController.Contact)
	router.GET("/healthz", apiController.Health)

	api := router.Group("/api")
	{
		api.GET("/projects", apiController.GetProjects)
		api.POST("/contact", apiController.SubmitContact)
	}
}
