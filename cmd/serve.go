package cmd

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"tablebook/config"
	"tablebook/controllers"
	"tablebook/routes"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and static frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			restaurant, store, err := bootstrapRestaurant(cfg)
			if err != nil {
				return err
			}
			controllers.Setup(controllers.Env{Restaurant: restaurant, Store: store})

			router := gin.New()
			router.Use(gin.Logger(), gin.Recovery())

			router.Use(cors.New(cors.Config{
				AllowOrigins:  []string{"*"},
				AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:  []string{"Origin", "Content-Type"},
				ExposeHeaders: []string{"Content-Length"},
				MaxAge:        24 * time.Hour,
			}))

			routes.TableRoutes(router)
			routes.ReservationRoutes(router)
			routes.OrderRoutes(router)
			routes.MenuRoutes(router)
			routes.StaffRoutes(router)
			routes.ReportRoutes(router)
			routes.StreamRoutes(router)

			// Everything outside /api is the static frontend.
			router.NoRoute(func(c *gin.Context) {
				path := c.Request.URL.Path
				if strings.HasPrefix(path, "/api/") {
					c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
					return
				}
				if path == "/" {
					path = "/index.html"
				}
				c.File(filepath.Join(cfg.StaticDir, filepath.Clean(path)))
			})

			return router.Run(fmt.Sprintf(":%d", cfg.Port))
		},
	}
}
