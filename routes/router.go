package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/The-Hackers-Corner/thc-website/controllers"
	"github.com/The-Hackers-Corner/thc-website/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/me", controllers.GetProfile)
		}

		categoryRoutes := apiV1.Group("/categories")
		{
			categoryRoutes.GET("", controllers.GetCategoryList)
		}

		// --- 题目模块路由 ---
		challengeRoutes := apiV1.Group("/challenges")
		{
			// 列表和详情未登录可看，登录后附带个人解题状态
			challengeRoutes.GET("", middlewares.JWTTryAuthMiddleware(), controllers.ListChallenges)
			challengeRoutes.GET("/:id", middlewares.JWTTryAuthMiddleware(), controllers.GetChallengeDetail)
			challengeRoutes.POST("/:id/submit", middlewares.JWTAuthMiddleware(), controllers.SubmitFlag)
		}

		leaderboardRoutes := apiV1.Group("/leaderboard")
		{
			leaderboardRoutes.GET("", middlewares.JWTTryAuthMiddleware(), controllers.GetLeaderboard)
		}

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.AdminAuthMiddleware())
		{
			adminRoutes.GET("/challenges", controllers.AdminListChallenges)
			adminRoutes.POST("/challenges", controllers.CreateChallenge)
			adminRoutes.PUT("/challenges/:id", controllers.UpdateChallenge)
			adminRoutes.DELETE("/challenges/:id", controllers.DeleteChallenge)

			adminRoutes.POST("/categories", controllers.CreateCategory)
			adminRoutes.PUT("/categories/:id", controllers.UpdateCategory)
			adminRoutes.DELETE("/categories/:id", controllers.DeleteCategory)

			adminRoutes.GET("/users", controllers.GetUserList)
			adminRoutes.PUT("/users/:id/admin", controllers.UpdateUserAdmin)
			adminRoutes.DELETE("/users/:id", controllers.DeleteUser)

			adminRoutes.GET("/submissions", controllers.GetSubmissionLogs)
		}
	}

	return r
}
