package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riteshp0/DinoKicks/internal/api"
	m "github.com/riteshp0/DinoKicks/internal/api/middleware"
	"github.com/rs/zerolog"
)

// SetupRouter 路由路徑維持與原storefront前端相同的 /api/* 契約
func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.SessionMiddleware)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			// featured要排在 /{id} 前面, 避免被當成id解析
			r.Get("/featured", server.ProductHandler.ListFeatured)
			r.Get("/{id}", server.ProductHandler.GetProduct)
		})
		r.Get("/collections/{collection}", server.ProductHandler.ListByCollection)
		r.Get("/categories/{category}", server.ProductHandler.ListByCategory)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.GetCart)
			r.Post("/items", server.CartHandler.AddItem)
			r.Put("/items/{id}", server.CartHandler.UpdateItem)
			r.Delete("/items/{id}", server.CartHandler.RemoveItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.PlaceOrder)
			r.Get("/{id}", server.OrderHandler.GetOrder)
		})

		r.Route("/quizzes", func(r chi.Router) {
			r.Get("/", server.QuizHandler.ListQuizzes)
			r.Get("/{id}", server.QuizHandler.GetQuiz)
			r.Post("/{id}/recommendation", server.QuizHandler.Recommend)
		})
	})

	return r
}
