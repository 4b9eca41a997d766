package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/riteshp0/DinoKicks/internal/api/dto"
	"github.com/riteshp0/DinoKicks/internal/pkg/api"
	"github.com/riteshp0/DinoKicks/internal/service"
)

type QuizHandler struct {
	quizService service.IQuizService
}

func NewQuizHandler(quizService service.IQuizService) *QuizHandler {
	if quizService == nil {
		panic("quizService cannot be nil")
	}
	return &QuizHandler{
		quizService: quizService,
	}
}

// @Summary list quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} model.Quiz "success"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizService.ListQuizzes(r.Context())
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching quizzes")
		return
	}
	api.SuccessJSON(w, http.StatusOK, quizzes)
}

// @Summary get quiz with questions and options
// @Tags quizzes
// @Produce json
// @Param id path int true "quiz id"
// @Success 200 {object} model.QuizWithQuestions "success"
// @Failure 400 {object} map[string]string "invalid id"
// @Failure 404 {object} map[string]string "not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	quiz, err := h.quizService.GetQuizWithQuestions(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching quiz")
		return
	}
	api.SuccessJSON(w, http.StatusOK, quiz)
}

// @Summary score quiz answers into a product recommendation
// @Description 多數決: 得票最高的連結商品勝出, 平手以先作答者為準
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "quiz id"
// @Param answers body dto.QuizAnswersDTO true "selected option ids in answer order"
// @Success 200 {object} dto.RecommendationResponse "success"
// @Failure 400 {object} map[string]string "invalid body"
// @Failure 404 {object} map[string]string "quiz not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes/{id}/recommendation [post]
func (h *QuizHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	var answersDTO dto.QuizAnswersDTO
	if err := json.NewDecoder(r.Body).Decode(&answersDTO); err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid answers")
		return
	}

	productID, err := h.quizService.Recommend(r.Context(), id, answersDTO.OptionIDs)
	if err != nil {
		api.ErrorJSON(w, err, "Error scoring quiz")
		return
	}
	api.SuccessJSON(w, http.StatusOK, dto.RecommendationResponse{ProductID: productID})
}
