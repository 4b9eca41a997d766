package api

import "github.com/riteshp0/DinoKicks/internal/api/handler"

type Server struct {
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	QuizHandler    *handler.QuizHandler
}

func NewServer(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	quizHandler *handler.QuizHandler,
) *Server {
	return &Server{
		ProductHandler: productHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		QuizHandler:    quizHandler,
	}
}
