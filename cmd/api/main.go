package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/josepha8674-lab/Best-restaurant/internal/ai"
	"github.com/josepha8674-lab/Best-restaurant/internal/auth"
	"github.com/josepha8674-lab/Best-restaurant/internal/config"
	"github.com/josepha8674-lab/Best-restaurant/internal/dashboard"
	"github.com/josepha8674-lab/Best-restaurant/internal/inventory"
	"github.com/josepha8674-lab/Best-restaurant/internal/live"
	"github.com/josepha8674-lab/Best-restaurant/internal/menu"
	"github.com/josepha8674-lab/Best-restaurant/internal/middleware"
	"github.com/josepha8674-lab/Best-restaurant/internal/pos"
	"github.com/josepha8674-lab/Best-restaurant/internal/storage"
	"github.com/josepha8674-lab/Best-restaurant/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ ", err)
	}

	ctx := context.Background()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORE + LIVE CACHE ─────────────────────────
	cache := live.NewCache()
	cache.OnChange(func(collection string) {
		log.Printf("🔄 %s snapshot applied", collection)
	})

	var st *store.Store
	if cfg.StoreConfigured() {
		client, err := store.Connect(ctx, cfg.FirestoreProjectID)
		if err != nil {
			log.Fatal("❌ Firestore init failed:", err)
		}
		defer client.Close()

		st = store.New(client)
		cache.Start(ctx, st)
		defer cache.Stop()

		log.Println("✅ Subscribed to ingredients, menuItems, sales")
	} else {
		log.Println("FIRESTORE_PROJECT_ID not set — running unconfigured, data features disabled")
	}

	// ───────────────────────── PHOTO STORAGE ─────────────────────────
	var imageStorage menu.ImageStorage
	if cfg.R2Configured() {
		r2, err := storage.NewR2Client(
			ctx,
			cfg.R2Endpoint,
			cfg.R2AccessKey,
			cfg.R2SecretKey,
			cfg.R2Bucket,
			cfg.R2PublicBaseURL,
		)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		imageStorage = r2
	}

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(cfg.OperatorEmail, cfg.OperatorPasswordHash)
	authHandler := auth.NewHandler(authService)

	r.POST("/auth/login", authHandler.Login)

	// ───────────────────────── SERVICES ─────────────────────────
	inventoryService := inventory.NewService(st)
	menuService := menu.NewService(st, cache, imageStorage)
	posService := pos.NewService(st, cache)

	var aiClient ai.Client
	if cfg.AIConfigured() {
		aiClient = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Println("GEMINI_API_KEY not set — AI assist degraded to fallbacks")
	}
	assist := ai.NewAssist(aiClient)

	// ───────────────────────── HANDLERS ─────────────────────────
	inventoryHandler := inventory.NewHandler(inventoryService, cache)
	menuHandler := menu.NewHandler(menuService, cache)
	posHandler := pos.NewHandler(posService)
	dashboardHandler := dashboard.NewHandler(cache)
	assistHandler := ai.NewHandler(assist, cache)

	// ───────────────────────── DATA ROUTES ─────────────────────────
	data := r.Group("")
	data.Use(
		middleware.AuthMiddleware(),
		middleware.RequireStore(cfg.StoreConfigured(), cache),
	)
	{
		ingredients := data.Group("/ingredients")
		{
			ingredients.GET("", inventoryHandler.List)
			ingredients.POST("", inventoryHandler.Create)
			ingredients.PUT("/:id", inventoryHandler.Update)
			ingredients.DELETE("/:id", inventoryHandler.Delete)
		}

		menuItems := data.Group("/menu-items")
		{
			menuItems.GET("", menuHandler.List)
			menuItems.POST("", menuHandler.Create)
			menuItems.PUT("/:id", menuHandler.Update)
			menuItems.DELETE("/:id", menuHandler.Delete)
			menuItems.POST("/:id/image", menuHandler.UploadImage)
			menuItems.GET("/:id/assist/profitability", assistHandler.Profitability)
		}

		posGroup := data.Group("/pos")
		{
			posGroup.GET("/cart", posHandler.GetCart)
			posGroup.POST("/cart/items", posHandler.AddItem)
			posGroup.PATCH("/cart/items/:menuItemID", posHandler.ChangeQuantity)
			posGroup.DELETE("/cart/items/:menuItemID", posHandler.RemoveItem)
			posGroup.POST("/checkout", posHandler.Checkout)
		}

		dash := data.Group("/dashboard")
		{
			dash.GET("/summary", dashboardHandler.Summary)
			dash.GET("/trend", dashboardHandler.Trend)
		}
	}

	// ───────────────────────── ASSIST (store-independent) ─────────────────────────
	assistGroup := r.Group("/assist")
	assistGroup.Use(middleware.AuthMiddleware())
	{
		assistGroup.POST("/description", assistHandler.Describe)
		assistGroup.POST("/recipe", assistHandler.SuggestRecipe)
	}

	// ───────────────────────── STATUS ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/system/status", func(c *gin.Context) {
		state := "ok"
		switch failure := cache.Failure(); {
		case !cfg.StoreConfigured():
			state = "unconfigured"
		case errors.Is(failure, store.ErrPermissionDenied):
			state = "permission-denied"
		case errors.Is(failure, store.ErrQuotaExceeded):
			state = "quota-exceeded"
		case failure != nil:
			state = "error"
		case !cache.Ready():
			state = "loading"
		}

		c.JSON(200, gin.H{
			"state":        state,
			"aiEnabled":    cfg.AIConfigured(),
			"photoUploads": cfg.R2Configured(),
		})
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
