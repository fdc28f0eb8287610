package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"gadget-galaxy/internal/auth"
	"gadget-galaxy/internal/clock"
	"gadget-galaxy/internal/handlers"
	"gadget-galaxy/internal/media"
	"gadget-galaxy/internal/repository"
)

// RegisterRoutes wires repositories and handlers onto the router.
// Mutating and admin routes sit behind the bearer-token guard.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, tokens *auth.Service, uploader media.Uploader, clk clock.Clock) {
	users := repository.NewUserRepository(db.Collection("users"), clk)
	products := repository.NewProductRepository(db.Collection("products"), clk)
	carts := repository.NewCartRepository(db.Collection("carts"), clk)
	wishlist := repository.NewWishlistRepository(db.Collection("wishlist"), clk)
	categories := repository.NewCategoryRepository(db.Collection("category"))

	tokenHandler := handlers.NewTokenHandler(tokens)
	mediaHandler := handlers.NewMediaHandler(uploader)
	userHandler := handlers.NewUserHandler(users)
	productHandler := handlers.NewProductHandler(products, carts)
	cartHandler := handlers.NewCartHandler(carts)
	wishlistHandler := handlers.NewWishlistHandler(wishlist)
	categoryHandler := handlers.NewCategoryHandler(categories)

	guard := auth.RequireAuth(tokens)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Gadget Galaxy is running")
	})

	router.POST("/jwt", tokenHandler.IssueToken)
	router.POST("/upload-images", mediaHandler.UploadImages)

	router.GET("/users", guard, userHandler.GetUsers)
	router.GET("/users/:email", userHandler.GetUserByEmail)
	router.POST("/users", userHandler.CreateUser)
	router.PATCH("/users/role/:id", guard, userHandler.UpdateUserRole)
	router.PATCH("/users/status/:id", guard, userHandler.UpdateUserStatus)
	router.DELETE("/users/:id", guard, userHandler.DeleteUser)

	router.GET("/category", categoryHandler.GetCategories)

	router.GET("/products", productHandler.GetProducts)
	router.GET("/products/:id", productHandler.GetProductByID)
	router.GET("/all-product", productHandler.SearchProducts)
	router.POST("/products", guard, productHandler.CreateProduct)
	router.PATCH("/products/:id", guard, productHandler.UpdateProduct)
	router.DELETE("/products/:id", guard, productHandler.DeleteProduct)

	router.GET("/carts/:email", cartHandler.GetCart)
	router.POST("/carts", guard, cartHandler.AddToCart)
	router.PATCH("/carts/:id", guard, cartHandler.UpdateCartQuantity)
	router.DELETE("/carts/:id", guard, cartHandler.DeleteCartItem)

	router.GET("/wishlist/:email", wishlistHandler.GetWishlist)
	router.POST("/wishlist", guard, wishlistHandler.AddToWishlist)
	router.DELETE("/wishlist/:id", guard, wishlistHandler.DeleteWishlistItem)
}
