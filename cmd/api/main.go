package main

import (
	_ "assistencia_os/docs"
	"assistencia_os/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Assistencia Tecnica API
// @version         1.0
// @description     Portal de ordens de servico para assistencia tecnica (OS, pagamentos, clientes e aparelhos).
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
