package main

import (
	"github.com/stokku/go-stock-backend/internal/app"
)

//	@title			Stock Backend API
//	@version		1.0
//	@description	Управление продуктами, остатками и заказами

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	app.Run()
}
