package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/controllers"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	friendController *controllers.FriendController,
	messageController *controllers.MessageController,
	groupController *controllers.GroupController,
	reportController *controllers.ReportController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Every route except health requires an authenticated identity
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Post and like routes
		posts := authenticated.Group("/posts")
		{
			posts.GET("", postController.GetFeed)
			posts.POST("", postController.CreatePost)
			posts.GET("/:id", postController.GetPostByID)
			posts.DELETE("/:id", postController.DeletePost)

			posts.GET("/:id/like", postController.GetLikeStatus)
			posts.POST("/:id/like", postController.LikePost)
			posts.DELETE("/:id/like", postController.UnlikePost)

			posts.GET("/:id/comments", commentController.GetCommentsByPost)
			posts.POST("/:id/comments", commentController.CreateComment)
		}

		authenticated.DELETE("/comments/:id", commentController.DeleteComment)

		// Friend graph routes
		friends := authenticated.Group("/friends")
		{
			friends.GET("", friendController.GetFriends)
			friends.GET("/requests", friendController.GetPendingRequests)
			friends.POST("/requests", friendController.SendFriendRequest)
			friends.PUT("/requests/:id/accept", friendController.AcceptFriendRequest)
			friends.PUT("/requests/:id/decline", friendController.DeclineFriendRequest)
		}

		// Messaging routes. The send endpoint enforces the friendship gate.
		messages := authenticated.Group("/messages")
		{
			messages.GET("/conversations", messageController.GetConversationList)
			messages.GET("/unread", messageController.GetUnreadMessages)
			messages.PUT("/read/:id", messageController.MarkMessageRead)
			messages.GET("/:userId", messageController.GetConversation)
			messages.POST("/:userId", messageController.SendMessage)
		}

		// Group routes
		groups := authenticated.Group("/groups")
		{
			groups.GET("", groupController.GetUserGroups)
			groups.POST("", groupController.CreateGroup)
			groups.GET("/code/:code", groupController.GetGroupByCode)
			groups.GET("/:id/members", groupController.GetGroupMembers)
			groups.POST("/:id/members", groupController.JoinGroup)
			groups.DELETE("/:id/members", groupController.LeaveGroup)
		}

		// Moderation routes; listing is restricted to moderator roles
		reports := authenticated.Group("/reports")
		{
			reports.POST("/posts/:id", reportController.ReportPost)
			reports.POST("/comments/:id", reportController.ReportComment)

			reportsModeratorProtected := reports.Group("")
			reportsModeratorProtected.Use(authMiddleware.RoleRequired(
				string(models.RoleAdmin), string(models.RoleTeacher)))
			{
				reportsModeratorProtected.GET("", reportController.GetPendingReports)
			}
		}

		// Profile routes
		users := authenticated.Group("/users")
		{
			users.PUT("/profile", userController.UpdateProfile)
			users.PUT("/last-login", userController.TouchLastLogin)
			users.GET("/:id", userController.GetUserProfile)
			users.GET("/:id/posts", postController.GetPostsByUser)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
