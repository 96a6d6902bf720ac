package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-shop-backend/internal/cache"
	"go-shop-backend/internal/handler"
	"go-shop-backend/internal/middleware"
	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
	"go-shop-backend/internal/service"
	"go-shop-backend/internal/ws"
	"go-shop-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Product{}, &model.User{},
		&model.Category{}, &model.SubCategory{}, &model.Manufacturer{},
		&model.Unit{}, &model.Status{}, &model.OrderStatus{},
		&model.PaymentType{}, &model.DeliveryType{},
		&model.Order{}, &model.OrderItem{},
		&model.ShoppingCart{}, &model.CartItem{},
		&model.Visitor{}, &model.Message{},
	)

	// 3. Seed default reference data and admin account
	seedDefaults(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	cartRepo := repository.NewCartRepo(db)
	userRepo := repository.NewUserRepo(db)
	visitorRepo := repository.NewVisitorRepo(db)
	messageRepo := repository.NewMessageRepo(db)

	categoryRepo := repository.NewReferenceRepo[model.Category](db, "SubCategories")
	subCategoryRepo := repository.NewReferenceRepo[model.SubCategory](db)
	manufacturerRepo := repository.NewReferenceRepo[model.Manufacturer](db)
	unitRepo := repository.NewReferenceRepo[model.Unit](db)
	statusRepo := repository.NewReferenceRepo[model.Status](db)
	orderStatusRepo := repository.NewReferenceRepo[model.OrderStatus](db)
	paymentTypeRepo := repository.NewReferenceRepo[model.PaymentType](db)
	deliveryTypeRepo := repository.NewReferenceRepo[model.DeliveryType](db)

	syncService := service.NewSyncService(productRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo, wsHub)
	cartService := service.NewCartService(cartRepo, productRepo, userRepo)
	authService := service.NewAuthService(userRepo)

	syncHandler := handler.NewSyncHandler(syncService)
	orderHandler := handler.NewOrderHandler(orderService)
	cartHandler := handler.NewCartHandler(cartService)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productRepo)
	userHandler := handler.NewUserHandler(userRepo)
	visitorHandler := handler.NewVisitorHandler(visitorRepo, cache.NewVisitorCounter())
	messageHandler := handler.NewMessageHandler(messageRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Shop Backend v1.0",
		BodyLimit: 32 * 1024 * 1024, // feed payloads can be large
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/signin", authHandler.SignIn)
	auth.Post("/admin/signin", authHandler.AdminSignIn)

	// Storefront reads
	api.Get("/products", productHandler.ClientProducts)
	api.Get("/products/:barcode", productHandler.GetProduct)
	api.Post("/visitors", visitorHandler.RecordVisit)

	// ============ FEED SYNC ROUTES (POS credential) ============
	syncGroup := api.Group("/sync", middleware.RequireSyncToken(os.Getenv("SYNC_TOKEN_SHA256")))
	syncGroup.Put("/products", syncHandler.FullSync)
	syncGroup.Post("/insert", syncHandler.InsertProducts)
	syncGroup.Post("/updatestock", syncHandler.UpdateStock)
	syncGroup.Get("/export", syncHandler.Export)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))
	adminOnly := middleware.RequireAdmin()

	// Shopping
	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart/items", cartHandler.AddToCart)
	protected.Patch("/cart/items", cartHandler.ChangeQuantity)
	protected.Delete("/cart/items", cartHandler.DeleteFromCart)
	protected.Post("/wishlist/toggle", cartHandler.ToggleWishlist)

	// Orders
	protected.Post("/orders", orderHandler.PlaceOrder)
	protected.Get("/orders", adminOnly, orderHandler.GetOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Put("/orders/:id/status", adminOnly, orderHandler.UpdateOrderStatus)

	// Catalog management
	protected.Get("/management/products", adminOnly, productHandler.FetchProducts)
	protected.Post("/management/products", adminOnly, productHandler.CreateProduct)
	protected.Put("/management/products/:barcode", adminOnly, productHandler.UpdateProduct)

	// Reference data
	handler.NewReferenceHandler(categoryRepo, "categories").Routes(protected.Group("/categories"), adminOnly)
	handler.NewReferenceHandler(subCategoryRepo, "subcategories").Routes(protected.Group("/subcategories"), adminOnly)
	handler.NewReferenceHandler(manufacturerRepo, "manufacturers").Routes(protected.Group("/manufacturers"), adminOnly)
	handler.NewReferenceHandler(unitRepo, "units").Routes(protected.Group("/units"), adminOnly)
	handler.NewReferenceHandler(statusRepo, "statuses").Routes(protected.Group("/statuses"), adminOnly)
	handler.NewReferenceHandler(orderStatusRepo, "order_statuses").Routes(protected.Group("/orderstatuses"), adminOnly)
	handler.NewReferenceHandler(paymentTypeRepo, "payment_types").Routes(protected.Group("/paymenttypes"), adminOnly)
	handler.NewReferenceHandler(deliveryTypeRepo, "delivery_types").Routes(protected.Group("/deliverytypes"), adminOnly)

	// Users (admin)
	protected.Get("/users", adminOnly, userHandler.GetUsers)
	protected.Get("/users/:id", adminOnly, userHandler.GetUser)
	protected.Put("/users/:id", adminOnly, userHandler.UpdateUser)
	protected.Delete("/users/:id", adminOnly, userHandler.DeleteUser)

	// Messages
	protected.Post("/messages", messageHandler.SendMessage)
	protected.Get("/messages/:receiverId", messageHandler.GetMessages)
	protected.Delete("/messages/:id/:senderId", messageHandler.DeleteMessage)

	// Visitors (admin)
	protected.Get("/visitors", adminOnly, visitorHandler.GetVisitors)
	protected.Get("/visitors/today", adminOnly, visitorHandler.TodayCount)
	protected.Get("/visitors/monthly", adminOnly, visitorHandler.MonthlyCounts)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaults creates the reference rows checkout depends on plus a default
// admin account, when they don't exist yet.
func seedDefaults(db *gorm.DB) {
	seedNamed(db, []model.OrderStatus{
		{NameTm: "Täze", NameRu: "Новый", Color: "#2f80ed"},
		{NameTm: "Ugradyldy", NameRu: "Отправлен", Color: "#f2994a"},
		{NameTm: "Gowşuryldy", NameRu: "Доставлен", Color: "#27ae60"},
		{NameTm: "Yatyryldy", NameRu: "Отменен", Color: "#eb5757"},
	})
	seedNamed(db, []model.PaymentType{
		{NameTm: "Nagt", NameRu: "Наличные"},
		{NameTm: "Kart", NameRu: "Карта"},
	})
	seedNamed(db, []model.DeliveryType{
		{NameTm: "Eltip bermek", NameRu: "Доставка"},
		{NameTm: "Özüň almak", NameRu: "Самовывоз"},
	})

	userRepo := repository.NewUserRepo(db)
	adminPhone := os.Getenv("ADMIN_PHONE")
	if adminPhone == "" {
		adminPhone = "+99300000000"
	}
	if _, err := userRepo.FindByPhone(adminPhone); err != nil {
		admin := &model.User{
			PhoneNumber: adminPhone,
			FirstName:   "Administrator",
			Role:        model.RoleAdmin,
		}
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		if err := admin.SetPassword(password); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}
		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Printf("Admin user created: %s", adminPhone)
		}
	}
}

func seedNamed[T any](db *gorm.DB, defaults []T) {
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil || count > 0 {
		return
	}
	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("Warning: Failed to seed defaults: %v", err)
	}
}
