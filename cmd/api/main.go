package main

import (
	_ "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/docs"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           danielnotdaylewis.com API
// @version         1.0
// @description     Backend for an audiobook narrator's site: booking pipeline, finances and blog, backed by DynamoDB.

// @contact.name   Daniel
// @contact.url    https://danielnotdaylewis.com

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	routes.Run()
}
