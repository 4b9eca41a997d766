package db

import (
	"context"
	"errors"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrQuizNotFound 測驗不存在
	ErrQuizNotFound = errors.New("quiz not found")
)

type IQuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *model.Quiz) error
	CreateQuizQuestion(ctx context.Context, question *model.QuizQuestion) error
	CreateQuizOptionsBatch(ctx context.Context, options []model.QuizOption) error
	GetAllQuizzes(ctx context.Context) ([]model.Quiz, error)
	GetQuizByID(ctx context.Context, id int) (*model.Quiz, error)
	GetQuizQuestions(ctx context.Context, quizID int) ([]model.QuizQuestion, error)
	GetQuizOptionsByQuestionIDs(ctx context.Context, questionIDs []int) ([]model.QuizOption, error)
	GetQuizOptionsByQuizID(ctx context.Context, quizID int) ([]model.QuizOption, error)
}

type QuizRepo struct {
	db *DbDao
}

func NewQuizRepo(db *DbDao) *QuizRepo {
	return &QuizRepo{db: db}
}

func (s *QuizRepo) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	return s.db.WithContext(ctx).Create(quiz).Error
}

func (s *QuizRepo) CreateQuizQuestion(ctx context.Context, question *model.QuizQuestion) error {
	return s.db.WithContext(ctx).Create(question).Error
}

func (s *QuizRepo) CreateQuizOptionsBatch(ctx context.Context, options []model.QuizOption) error {
	return s.db.WithContext(ctx).Create(&options).Error
}

func (s *QuizRepo) GetAllQuizzes(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := s.db.WithContext(ctx).Find(&quizzes).Error
	return quizzes, err
}

func (s *QuizRepo) GetQuizByID(ctx context.Context, id int) (*model.Quiz, error) {
	var quiz model.Quiz
	err := s.db.WithContext(ctx).First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// order 是保留字, 用 clause 讓gorm處理quoting
func (s *QuizRepo) GetQuizQuestions(ctx context.Context, quizID int) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := s.db.WithContext(ctx).Where("quiz_id = ?", quizID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&questions).Error
	return questions, err
}

// GetQuizOptionsByQuestionIDs 批次查詢所有題目的選項, 避免逐題查詢
func (s *QuizRepo) GetQuizOptionsByQuestionIDs(ctx context.Context, questionIDs []int) ([]model.QuizOption, error) {
	var options []model.QuizOption
	if len(questionIDs) == 0 {
		return options, nil
	}
	err := s.db.WithContext(ctx).Where("question_id IN ?", questionIDs).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&options).Error
	return options, err
}

// GetQuizOptionsByQuizID 推薦計分用: 一次取整份測驗的選項
func (s *QuizRepo) GetQuizOptionsByQuizID(ctx context.Context, quizID int) ([]model.QuizOption, error) {
	var options []model.QuizOption
	err := s.db.WithContext(ctx).
		Joins("JOIN quiz_questions ON quiz_questions.id = quiz_options.question_id").
		Where("quiz_questions.quiz_id = ?", quizID).
		Find(&options).Error
	return options, err
}

var _ IQuizRepository = (*QuizRepo)(nil)
