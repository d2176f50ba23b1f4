package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"PvtCall/config"
	"PvtCall/internal/account"
	"PvtCall/internal/match"
	"PvtCall/internal/middleware"
	"PvtCall/internal/storage"
	"PvtCall/internal/utils"
	"PvtCall/internal/websocket"
)

func main() {
	config.Load()
	utils.Init(config.C.Server.LogLevel)

	//-------------------------------------------------------
	// 1. Redis (rate limiting)
	//-------------------------------------------------------
	rdb, err := storage.InitRedis(
		config.C.Redis.Addr,
		config.C.Redis.Password,
		config.C.Redis.DB,
	)
	if err != nil {
		utils.Log.Fatal("redis init failed", "err", err)
	}

	//-------------------------------------------------------
	// 2. Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(config.C.Server.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = config.C.Server.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	//-------------------------------------------------------
	// 3. Hub + pairing engine
	//-------------------------------------------------------
	hub := websocket.NewHub()
	go hub.Run()

	engine := match.NewEngine(hub)
	hub.OnMessage = engine.HandleMessage
	hub.OnDisconnect = engine.Disconnect

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "online": engine.Online()})
	})

	//-------------------------------------------------------
	// 4. Account service
	//-------------------------------------------------------
	var repo account.Repo
	switch config.C.Account.Backend {
	case "postgres":
		db, err := storage.InitPostgres(config.C.Postgres.DSN)
		if err != nil {
			utils.Log.Fatal("postgres init failed", "err", err)
		}
		repo = account.NewPostgresRepo(db)
	default:
		repo = account.NewMemoryRepo()
	}

	secret := []byte(config.C.JWT.Secret)
	tokenTTL := time.Duration(config.C.JWT.TTLMinutes) * time.Minute
	svc := account.NewService(repo, config.C.Account.BcryptCost, secret, tokenTTL)
	ah := account.NewHandler(svc)

	rl := config.C.RateLimit
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup",
			middleware.RateLimit(rdb, "signup", rl.SignupMax, time.Duration(rl.SignupWindowMinutes)*time.Minute),
			ah.Signup)
		authGroup.POST("/login",
			middleware.RateLimit(rdb, "login", rl.LoginMax, time.Duration(rl.LoginWindowMinutes)*time.Minute),
			ah.Login)
		authGroup.DELETE("/account", ah.Delete)
	}

	//-------------------------------------------------------
	// 5. WebSocket entry; token optional, guests stay anonymous
	//-------------------------------------------------------
	r.GET("/ws", middleware.Auth(secret, false), websocket.ServeWS(hub, engine.Connect))

	utils.Log.Info("server running", "port", config.C.Server.Port)
	if err := r.Run(config.C.Server.Port); err != nil {
		utils.Log.Fatal("server stopped", "err", err)
	}
}
