package service

import (
	"context"
	"errors"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
)

type IQuizService interface {
	ListQuizzes(ctx context.Context) ([]model.Quiz, error)
	GetQuizWithQuestions(ctx context.Context, id int) (*model.QuizWithQuestions, error)
	Recommend(ctx context.Context, quizID int, optionIDs []int) (*int, error)
}

type QuizService struct {
	quizRepo db.IQuizRepository
}

func NewQuizService(quizRepo db.IQuizRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo}
}

func (q *QuizService) ListQuizzes(ctx context.Context) ([]model.Quiz, error) {
	quizzes, err := q.quizRepo.GetAllQuizzes(ctx)
	if err != nil {
		return nil, apperr.Internal("error fetching quizzes", err)
	}
	if quizzes == nil {
		quizzes = []model.Quiz{}
	}
	return quizzes, nil
}

// GetQuizWithQuestions 巢狀回傳 quiz -> questions -> options
// questions/options 都照各自的 order 欄位遞增排序
func (q *QuizService) GetQuizWithQuestions(ctx context.Context, id int) (*model.QuizWithQuestions, error) {
	quiz, err := q.quizRepo.GetQuizByID(ctx, id)
	if errors.Is(err, db.ErrQuizNotFound) {
		return nil, apperr.NotFound("Quiz not found")
	}
	if err != nil {
		return nil, apperr.Internal("error fetching quiz", err)
	}

	questions, err := q.quizRepo.GetQuizQuestions(ctx, id)
	if err != nil {
		return nil, apperr.Internal("error fetching quiz questions", err)
	}

	questionIDs := make([]int, 0, len(questions))
	for _, question := range questions {
		questionIDs = append(questionIDs, question.ID)
	}
	options, err := q.quizRepo.GetQuizOptionsByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, apperr.Internal("error fetching quiz options", err)
	}
	optionsByQuestion := make(map[int][]model.QuizOption, len(questions))
	for _, option := range options {
		optionsByQuestion[option.QuestionID] = append(optionsByQuestion[option.QuestionID], option)
	}

	result := &model.QuizWithQuestions{
		Quiz:      *quiz,
		Questions: make([]model.QuestionWithOptions, 0, len(questions)),
	}
	for _, question := range questions {
		opts := optionsByQuestion[question.ID]
		if opts == nil {
			opts = []model.QuizOption{}
		}
		result.Questions = append(result.Questions, model.QuestionWithOptions{
			QuizQuestion: question,
			Options:      opts,
		})
	}
	return result, nil
}

// Recommend 以作答選項計算推薦商品, 查無測驗回NotFound
// 回傳nil表示沒有任何選項帶商品連結, 無法推薦
func (q *QuizService) Recommend(ctx context.Context, quizID int, optionIDs []int) (*int, error) {
	if _, err := q.quizRepo.GetQuizByID(ctx, quizID); errors.Is(err, db.ErrQuizNotFound) {
		return nil, apperr.NotFound("Quiz not found")
	} else if err != nil {
		return nil, apperr.Internal("error fetching quiz", err)
	}

	options, err := q.quizRepo.GetQuizOptionsByQuizID(ctx, quizID)
	if err != nil {
		return nil, apperr.Internal("error fetching quiz options", err)
	}
	optionProduct := make(map[int]*int, len(options))
	for _, option := range options {
		optionProduct[option.ID] = option.ProductID
	}

	votes := make([]*int, 0, len(optionIDs))
	for _, optionID := range optionIDs {
		votes = append(votes, optionProduct[optionID])
	}

	if productID, ok := PluralityWinner(votes); ok {
		return &productID, nil
	}
	return nil, nil
}

/*
PluralityWinner 多數決選出推薦商品

每個非nil票算該商品一票, 得票最高者勝出
平手時以先出現的作答順序為準, nil票不參與也不影響順位
全部nil時回傳 ok=false (無推薦)
*/
func PluralityWinner(votes []*int) (int, bool) {
	counts := make(map[int]int)
	firstSeen := make(map[int]int)
	order := 0
	for _, vote := range votes {
		if vote == nil {
			continue
		}
		if _, ok := firstSeen[*vote]; !ok {
			firstSeen[*vote] = order
			order++
		}
		counts[*vote]++
	}
	if len(counts) == 0 {
		return 0, false
	}

	winner := 0
	bestCount := -1
	bestOrder := 0
	for productID, count := range counts {
		if count > bestCount || (count == bestCount && firstSeen[productID] < bestOrder) {
			winner = productID
			bestCount = count
			bestOrder = firstSeen[productID]
		}
	}
	return winner, true
}

var _ IQuizService = (*QuizService)(nil)
