package main

import (
	_ "github.com/heaponte4/aerea-sub000/docs"
	"github.com/heaponte4/aerea-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Photographer Booking API
// @version         1.0
// @description     Booking and order consolidation for real-estate media services.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
