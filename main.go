package main

import (
	"fmt"
	"log"
	"net/http"

	"chickenpos/configs"
	"chickenpos/middlewares"
	"chickenpos/routes"
	"chickenpos/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedStaff(cfg); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}

	// Display event hub
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Display assets (staff counter, customer board, kitchen screen)
	r.Static("/static", "./static")
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/static/staff.html") })

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
