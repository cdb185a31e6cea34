package router

import (
	"net/http"

	"github.com/KidawR/MainProgect/config"
	"github.com/KidawR/MainProgect/controllers"
	"github.com/KidawR/MainProgect/middlewares"
	"github.com/KidawR/MainProgect/repository"
	"github.com/KidawR/MainProgect/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRouter(repo *repository.Repository, cfg config.ServerConfig, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowedOrigins))
	r.Use(middlewares.LoggerMiddleware(log))
	if cfg.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateBurst).RateLimit())
	}

	r.NoRoute(func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusNotFound, "Route not found", nil)
	})

	customerCtrl := controllers.NewCustomerController(repo)
	employeeCtrl := controllers.NewEmployeeController(repo)
	branchCtrl := controllers.NewBranchController(repo)
	categoryCtrl := controllers.NewMenuCategoryController(repo)
	menuCtrl := controllers.NewMenuController(repo)
	orderCtrl := controllers.NewOrderController(repo)
	inventoryCtrl := controllers.NewInventoryController(repo)
	supplierCtrl := controllers.NewSupplierController(repo)
	supplyCtrl := controllers.NewSupplyOrderController(repo)
	reviewCtrl := controllers.NewReviewController(repo)
	logCtrl := controllers.NewLogController(repo)
	healthCtrl := controllers.NewHealthController(repo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/health", healthCtrl.Health)

	api := r.Group("/api")

	// CUSTOMERS
	api.GET("/customers", customerCtrl.GetAllCustomers)
	api.POST("/customers", customerCtrl.CreateCustomer)
	api.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	api.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)
	api.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)
	api.GET("/customers/:customer_id/orders", customerCtrl.GetCustomerOrders)

	// EMPLOYEES
	api.GET("/employees", employeeCtrl.GetAllEmployees)
	api.POST("/employees", employeeCtrl.CreateEmployee)
	api.GET("/employees/:employee_id", employeeCtrl.GetEmployeeByID)
	api.PATCH("/employees/:employee_id", employeeCtrl.UpdateEmployee)
	api.DELETE("/employees/:employee_id", employeeCtrl.DeleteEmployee)
	api.GET("/employees/:employee_id/branches", employeeCtrl.GetEmployeeBranches)
	api.POST("/employees/:employee_id/branches", employeeCtrl.AssignBranch)

	// BRANCHES
	api.GET("/branches", branchCtrl.GetAllBranches)
	api.GET("/branches/:branch_id", branchCtrl.GetBranchByID)

	// MENU CATEGORIES
	api.GET("/categories", categoryCtrl.GetAllCategories)
	api.POST("/categories", categoryCtrl.CreateCategory)
	api.GET("/categories/:category_id", categoryCtrl.GetCategoryByID)
	api.PATCH("/categories/:category_id", categoryCtrl.UpdateCategory)
	api.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)
	api.GET("/categories/:category_id/items", categoryCtrl.GetCategoryItems)
	api.POST("/categories/:category_id/items", categoryCtrl.AssignItem)

	// MENU
	api.GET("/menu", menuCtrl.GetMenu)
	api.GET("/menu-items", menuCtrl.GetAllMenuItems)
	api.POST("/menu-items", menuCtrl.CreateMenuItem)
	api.GET("/menu-items/:item_id", menuCtrl.GetMenuItemByID)
	api.PATCH("/menu-items/:item_id", menuCtrl.UpdateMenuItem)
	api.DELETE("/menu-items/:item_id", menuCtrl.DeleteMenuItem)
	api.GET("/menu-items/:item_id/suppliers", menuCtrl.GetItemSuppliers)

	// ORDERS
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	api.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)
	api.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	api.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	api.GET("/orders/:order_id/items", orderCtrl.GetOrderItems)
	api.POST("/orders/:order_id/items", orderCtrl.AddOrderItem)
	api.POST("/orders/:order_id/total", orderCtrl.RecalculateTotal)

	// INVENTORY
	api.GET("/inventory", inventoryCtrl.GetInventory)
	api.POST("/inventory", inventoryCtrl.CreateInventory)
	api.POST("/inventory/adjust", inventoryCtrl.AdjustInventory)
	api.GET("/inventory/:inventory_id", inventoryCtrl.GetInventoryByID)
	api.PATCH("/inventory/:inventory_id", inventoryCtrl.UpdateInventory)
	api.DELETE("/inventory/:inventory_id", inventoryCtrl.DeleteInventory)

	// SUPPLIERS
	api.GET("/suppliers", supplierCtrl.GetAllSuppliers)
	api.POST("/suppliers", supplierCtrl.CreateSupplier)
	api.GET("/suppliers/:supplier_id", supplierCtrl.GetSupplierByID)
	api.PATCH("/suppliers/:supplier_id", supplierCtrl.UpdateSupplier)
	api.DELETE("/suppliers/:supplier_id", supplierCtrl.DeleteSupplier)
	api.GET("/suppliers/:supplier_id/items", supplierCtrl.GetSupplierItems)
	api.POST("/suppliers/:supplier_id/items", supplierCtrl.LinkItem)
	api.GET("/suppliers/:supplier_id/prices", supplierCtrl.GetSupplierPrices)

	// SUPPLY ORDERS
	api.GET("/supply-orders", supplyCtrl.GetAllSupplyOrders)
	api.POST("/supply-orders", supplyCtrl.CreateSupplyOrder)
	api.GET("/supply-orders/:supply_order_id", supplyCtrl.GetSupplyOrderByID)
	api.PATCH("/supply-orders/:supply_order_id", supplyCtrl.UpdateSupplyOrder)
	api.DELETE("/supply-orders/:supply_order_id", supplyCtrl.DeleteSupplyOrder)
	api.POST("/supply-orders/:supply_order_id/items", supplyCtrl.AddItem)

	// REVIEWS & LOGS
	api.GET("/reviews", reviewCtrl.GetReviews)
	api.POST("/reviews", reviewCtrl.AddReview)
	api.GET("/logs", logCtrl.GetLogs)
	api.POST("/logs", logCtrl.LogAction)

	return r
}
