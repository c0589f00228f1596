package routes

import (
	"github.com/seanhu1010/vue3-element-backend/configs"
	"github.com/seanhu1010/vue3-element-backend/controllers"
	"github.com/seanhu1010/vue3-element-backend/middlewares"
	"github.com/seanhu1010/vue3-element-backend/repository"
	"github.com/seanhu1010/vue3-element-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo)
	statsSvc := services.NewStatsService(statsRepo)
	employeeSvc := services.NewEmployeeService(employeeRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Controllers
	tableCtrl := controllers.NewTableController(db)
	categoryCtrl := controllers.NewDishCategoryController(db, statsSvc)
	unitCtrl := controllers.NewDishUnitController(db)
	imageCtrl := controllers.NewDishImageController(db, cfg.UploadDir)
	dishCtrl := controllers.NewDishController(db, statsSvc)
	orderCtrl := controllers.NewOrderController(db, statsSvc)
	detailCtrl := controllers.NewDishDetailController(db, orderSvc)
	employeeCtrl := controllers.NewEmployeeController(db, employeeSvc)
	userCtrl := controllers.NewUserController(authSvc, userRepo)

	crud := func(g *gin.RouterGroup, list, create, retrieve, update, del gin.HandlerFunc) {
		g.GET("", list)
		g.POST("", create)
		g.GET("/:id", retrieve)
		g.PUT("/:id", update)
		g.DELETE("/:id", del)
	}

	crud(r.Group("/table"), tableCtrl.List, tableCtrl.Create, tableCtrl.Retrieve, tableCtrl.Update, tableCtrl.Delete)

	dc := r.Group("/dish-category")
	dc.GET("/sales-rank/", categoryCtrl.SalesRank)
	crud(dc, categoryCtrl.List, categoryCtrl.Create, categoryCtrl.Retrieve, categoryCtrl.Update, categoryCtrl.Delete)

	crud(r.Group("/dish-unit"), unitCtrl.List, unitCtrl.Create, unitCtrl.Retrieve, unitCtrl.Update, unitCtrl.Delete)
	crud(r.Group("/dish-image"), imageCtrl.List, imageCtrl.Create, imageCtrl.Retrieve, imageCtrl.Update, imageCtrl.Delete)

	dish := r.Group("/dish")
	dish.GET("/sales-rank/", dishCtrl.SalesRank)
	crud(dish, dishCtrl.List, dishCtrl.Create, dishCtrl.Retrieve, dishCtrl.Update, dishCtrl.Delete)

	order := r.Group("/order")
	order.GET("/total-amount-statistics/", orderCtrl.TotalAmountStatistics)
	crud(order, orderCtrl.List, orderCtrl.Create, orderCtrl.Retrieve, orderCtrl.Update, orderCtrl.Delete)

	crud(r.Group("/dish-detail"), detailCtrl.List, detailCtrl.Create, detailCtrl.Retrieve, detailCtrl.Update, detailCtrl.Delete)

	employees := r.Group("/employees")
	employees.POST("/delete-multiple/", employeeCtrl.DeleteMultiple)
	crud(employees, employeeCtrl.List, employeeCtrl.Create, employeeCtrl.Retrieve, employeeCtrl.Update, employeeCtrl.Delete)

	// User resource: register/login are public, the rest needs a token
	users := r.Group("/user-resource")
	users.POST("/register", userCtrl.Register)
	users.POST("/login", userCtrl.Login)
	usersAuth := users.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		usersAuth.GET("", userCtrl.List)
		usersAuth.GET("/:id", userCtrl.Retrieve)
		usersAuth.PUT("/:id", userCtrl.Update)
		usersAuth.DELETE("/:id", userCtrl.Delete)
	}
}
