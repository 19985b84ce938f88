package docs

import "github.com/swaggo/swag"

// @title           Teamboard API
// @version         1.0
// @description     Team-based kanban board: boards, columns, cards, teams and workflow moves

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Registration and login

// @tag.name Boards
// @tag.description Board management operations

// @tag.name Columns
// @tag.description Column management operations

// @tag.name Cards
// @tag.description Card CRUD and workflow moves

// @tag.name Teams
// @tag.description Team roster and membership operations

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return &swag.Spec{}
}
