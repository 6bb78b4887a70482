// @title           Encore API
// @version         1.0
// @description     Booking marketplace connecting customers with performing artists.
// @contact.name    Encore
// @contact.email   support@encore.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "encore_backend/internal/app"

func main() {
	app.Run()
}
