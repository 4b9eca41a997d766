package seed

import (
	"context"
	"fmt"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Seeder 初始化商品目錄與測驗資料
// 冪等: 已有商品就跳過
type Seeder struct {
	productRepo db.IProductRepository
	quizRepo    db.IQuizRepository
	logger      zerolog.Logger
}

func NewSeeder(productRepo db.IProductRepository, quizRepo db.IQuizRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{productRepo: productRepo, quizRepo: quizRepo, logger: logger}
}

func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int64("products", count).Msg("database already seeded, skipping")
		return nil
	}

	products := catalogProducts()
	if err := s.productRepo.CreateProductsBatch(ctx, products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	s.logger.Info().Int("products", len(products)).Msg("seeded catalog")

	// 選項以商品名對回種子商品的ID
	productIDByName := make(map[string]int, len(products))
	for _, p := range products {
		productIDByName[p.Name] = p.ID
	}

	if err := s.seedQuiz(ctx, productIDByName); err != nil {
		return fmt.Errorf("seed quiz: %w", err)
	}
	s.logger.Info().Msg("seeded quiz")
	return nil
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func catalogProducts() []model.Product {
	return []model.Product{
		{
			Name:        "T-Rex Trappers",
			Description: "Dominate the urban jungle with these fierce T-Rex inspired kicks.",
			Price:       price("129.99"),
			ImageURL:    "https://images.unsplash.com/photo-1579298245158-33e8f568f7d3",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1579298245158-33e8f568f7d3",
				"https://images.unsplash.com/photo-1600185365483-26d7a4cc7519",
				"https://images.unsplash.com/photo-1584735175315-9d5df23860e6",
			},
			Category:   "Running",
			Collection: "T-Rex Line",
			Colors:     []string{"#39FF14", "#FF5714", "#008080"},
			Sizes:      []string{"7", "8", "9", "10", "11", "12", "13", "14"},
			IsFeatured: true,
			Badge:      model.BadgeHot,
			DinoFacts:  "These fierce kicks are inspired by the king of dinosaurs, the mighty Tyrannosaurus Rex! Grip pattern inspired by authentic T-Rex footprints. Scale-textured side panels for durability and style.",
			Stock:      25,
		},
		{
			Name:        "Volcano Velociraptors",
			Description: "Speed and agility inspired by the fastest dinosaurs ever known.",
			Price:       price("149.99"),
			ImageURL:    "https://images.unsplash.com/photo-1600185365483-26d7a4cc7519",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1600185365483-26d7a4cc7519",
				"https://images.unsplash.com/photo-1579298245158-33e8f568f7d3",
				"https://images.unsplash.com/photo-1552346154-21d32810aba3",
			},
			Category:   "Running",
			Collection: "Raptor Series",
			Colors:     []string{"#FF5714", "#2E8B57", "#D2B48C"},
			Sizes:      []string{"7", "8", "9", "10", "11", "12"},
			IsFeatured: true,
			Badge:      model.BadgeNew,
			DinoFacts:  "Inspired by the lightning-fast Velociraptor, these shoes feature a special claw-shaped traction pattern for optimal grip. The streamlined design mimics a raptor's aerodynamic body for maximum speed.",
			Stock:      18,
		},
		{
			Name:        "Stegosaurus Steppers",
			Description: "Armored comfort with spikes inspired by Stegosaurus plates.",
			Price:       price("119.99"),
			ImageURL:    "https://images.unsplash.com/photo-1584735175315-9d5df23860e6",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1584735175315-9d5df23860e6",
				"https://images.unsplash.com/photo-1465479423260-c4afc24172c6",
			},
			Category:   "Casual",
			Collection: "Herbivore Collection",
			Colors:     []string{"#008080", "#39FF14", "#D2B48C"},
			Sizes:      []string{"6", "7", "8", "9", "10", "11", "12"},
			IsFeatured: true,
			Badge:      "",
			DinoFacts:  "The unique design of these shoes is inspired by the armored plates of the Stegosaurus. The heel guard is modeled after the thagomizer (tail spikes) that protected this dinosaur from predators.",
			Stock:      22,
		},
		{
			Name:        "Brontoboots",
			Description: "Heavy-duty comfort inspired by the gentle giants of the dinosaur world.",
			Price:       price("139.99"),
			ImageURL:    "https://images.unsplash.com/photo-1560769629-975ec94e6a86",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1560769629-975ec94e6a86",
			},
			Category:   "Walking",
			Collection: "Herbivore Collection",
			Colors:     []string{"#D2B48C", "#008080", "#2E8B57"},
			Sizes:      []string{"7", "8", "9", "10", "11", "12"},
			IsFeatured: false,
			Badge:      "",
			DinoFacts:  "Inspired by the mighty Brontosaurus, these boots feature extra cushioning to support your weight. The footprint tread pattern is based on actual fossilized Brontosaurus tracks.",
			Stock:      15,
		},
		{
			Name:        "Pterodactyl Flight",
			Description: "Lightweight runners that make you feel like you're flying.",
			Price:       price("159.99"),
			ImageURL:    "https://images.unsplash.com/photo-1552346154-21d32810aba3",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1552346154-21d32810aba3",
			},
			Category:   "Running",
			Collection: "Sky Series",
			Colors:     []string{"#39FF14", "#ADD8E6", "#FF5714"},
			Sizes:      []string{"6", "7", "8", "9", "10", "11"},
			IsFeatured: false,
			Badge:      "LIGHT",
			DinoFacts:  "Inspired by the flying Pterodactyl, these ultralight shoes feature an aerodynamic design. The uppers are made with a special mesh pattern that mimics the wing membrane of pterosaurs.",
			Stock:      12,
		},
		{
			Name:        "Parasaurolophus Pumps",
			Description: "Make a statement with these bold, crest-inspired athletic shoes.",
			Price:       price("134.99"),
			ImageURL:    "https://images.unsplash.com/photo-1465479423260-c4afc24172c6",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1465479423260-c4afc24172c6",
			},
			Category:   "Basketball",
			Collection: "Herbivore Collection",
			Colors:     []string{"#FF5714", "#008080", "#39FF14"},
			Sizes:      []string{"7", "8", "9", "10", "11", "12", "13"},
			IsFeatured: false,
			Badge:      "",
			DinoFacts:  "These shoes feature a distinctive high-top design inspired by the Parasaurolophus's famous cranial crest. The crest served as a resonating chamber, and these shoes are designed with acoustic-inspired cushioning.",
			Stock:      16,
		},
	}
}

func (s *Seeder) seedQuiz(ctx context.Context, productIDByName map[string]int) error {
	quiz := &model.Quiz{
		Name:        "Which Dino Kick Are You?",
		Description: "Find your perfect prehistoric pair!",
	}
	if err := s.quizRepo.CreateQuiz(ctx, quiz); err != nil {
		return err
	}

	link := func(name string) *int {
		if id, ok := productIDByName[name]; ok {
			return &id
		}
		return nil
	}

	type optionSpec struct {
		text    string
		product string
	}
	questions := []struct {
		question string
		options  []optionSpec
	}{
		{
			question: "What's your favorite dinosaur?",
			options: []optionSpec{
				{"T-Rex - fierce and powerful", "T-Rex Trappers"},
				{"Velociraptor - fast and agile", "Volcano Velociraptors"},
				{"Stegosaurus - unique and sturdy", "Stegosaurus Steppers"},
				{"Pterodactyl - high-flying and free", "Pterodactyl Flight"},
			},
		},
		{
			question: "How would you describe your style?",
			options: []optionSpec{
				{"Bold and bright - I want to stand out!", "T-Rex Trappers"},
				{"Sleek and sporty - performance matters", "Volcano Velociraptors"},
				{"Earthy and natural - comfort is key", "Brontoboots"},
				{"Unique and eye-catching - I set trends", "Parasaurolophus Pumps"},
			},
		},
		{
			question: "When do you typically wear sneakers?",
			options: []optionSpec{
				{"Working out or running", "Pterodactyl Flight"},
				{"Casual everyday wear", "Stegosaurus Steppers"},
				{"Playing sports with friends", "Volcano Velociraptors"},
				{"Making a fashion statement", "T-Rex Trappers"},
			},
		},
	}

	for qi, spec := range questions {
		question := &model.QuizQuestion{
			QuizID:   quiz.ID,
			Question: spec.question,
			Order:    qi + 1,
		}
		if err := s.quizRepo.CreateQuizQuestion(ctx, question); err != nil {
			return err
		}

		options := make([]model.QuizOption, 0, len(spec.options))
		for oi, opt := range spec.options {
			options = append(options, model.QuizOption{
				QuestionID: question.ID,
				Text:       opt.text,
				ProductID:  link(opt.product),
				Order:      oi + 1,
			})
		}
		if err := s.quizRepo.CreateQuizOptionsBatch(ctx, options); err != nil {
			return err
		}
	}
	return nil
}
