package appcontext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/riteshp0/DinoKicks/internal/config"
	"github.com/riteshp0/DinoKicks/internal/infra/producer"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/redis_decorator"
	"github.com/riteshp0/DinoKicks/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger zerolog.Logger

	DbConn      *gorm.DB
	DbDao       *db.DbDao
	RedisClient *redis.Client

	ProductRepo db.IProductRepository
	CartRepo    db.ICartRepository
	OrderRepo   db.IOrderRepository
	QuizRepo    db.IQuizRepository

	OrderProducer producer.IOrderProducer

	CatalogService service.ICatalogService
	CartService    service.ICartService
	OrderService   service.IOrderService
	QuizService    service.IQuizService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpDbConn()
	if err != nil {
		return err
	}

	err = app.setUpDbDao()
	if err != nil {
		return err
	}

	app.setUpRedis()
	app.setUpRepos()
	app.setUpProducer()
	app.setUpServices()

	return nil
}

func (app *ApplicationContext) setUpLogger() {
	level, err := zerolog.ParseLevel(app.Cf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	app.Logger = zerolog.New(os.Stdout).Level(level).With().
		Timestamp().
		Str("service", "dinokicks").
		Logger()
}

func (app *ApplicationContext) setUpDbConn() error {
	app.Logger.Info().Msg("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	app.Logger.Info().Msg("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	app.Logger.Info().Msg("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	if err := app.DbDao.InitMigrate(); err != nil {
		return err
	}
	app.Logger.Info().Msg("Finish setup database DAO")
	return nil
}

// redis未設定時不啟用快取, 商品查詢直接走db
func (app *ApplicationContext) setUpRedis() {
	if app.Cf.RedisAddr == "" {
		return
	}
	app.Logger.Info().Str("addr", app.Cf.RedisAddr).Msg("Start setup redis")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})
	app.Logger.Info().Msg("Finish setup redis")
}

func (app *ApplicationContext) setUpRepos() {
	app.ProductRepo = db.NewProductRepo(app.DbDao)
	if app.RedisClient != nil {
		app.ProductRepo = redis_decorator.NewCacheAsideProductRepo(app.ProductRepo, app.RedisClient, app.Logger)
	}
	app.CartRepo = db.NewCartRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	app.QuizRepo = db.NewQuizRepo(app.DbDao)
}

// kafka未設定時訂單事件不發布
func (app *ApplicationContext) setUpProducer() {
	if app.Cf.KafkaBrokers == "" {
		return
	}
	app.Logger.Info().Str("brokers", app.Cf.KafkaBrokers).Msg("Start setup order producer")
	app.OrderProducer = producer.NewOrderProducer(strings.Split(app.Cf.KafkaBrokers, ","), app.Cf.KafkaOrderTopic)
	app.Logger.Info().Msg("Finish setup order producer")
}

func (app *ApplicationContext) setUpServices() {
	app.CatalogService = service.NewCatalogService(app.ProductRepo)
	app.CartService = service.NewCartService(app.CartRepo, app.ProductRepo)
	app.OrderService = service.NewOrderService(app.OrderRepo, app.CartService, app.OrderProducer, app.Logger)
	app.QuizService = service.NewQuizService(app.QuizRepo)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.OrderProducer != nil {
			if err := app.OrderProducer.Close(); err != nil {
				app.Logger.Error().Err(err).Msg("order producer shutdown error")
			}
		}

		if app.RedisClient != nil {
			if err := app.RedisClient.Close(); err != nil {
				app.Logger.Error().Err(err).Msg("redis shutdown error")
			}
		}

		if app.DbConn != nil {
			sqlDB, err := app.DbConn.DB()
			if err == nil {
				sqlDB.Close()
			}
		}

		app.Logger.Info().Msg("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
