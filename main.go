package main

import "bankingsystem/internal/app"

// @title           Banking System API
// @version         1.0.0
// @description     CRUD backend for a retail-banking demo: clients, bank cards, product catalogs, transfers and portfolio aggregation.

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	app.Run()
}
