package quizsession

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Sanesh764/quiz-c/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	// O corpo é opcional; sem ele a dificuldade padrão é "basic".
	var req NewQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Corpo da requisição inválido para criar quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.CreateSession(r.Context(), req.Difficulty)
	if err != nil {
		if errors.Is(err, ErrInvalidDifficulty) {
			http.Error(w, "invalid difficulty", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erro ao criar sessão de quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, toNewQuizResponse(session))
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID := chi.URLParam(r, "sessionID")
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para registrar resposta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RecordAnswer(r.Context(), sessionID, req.QuestionIndex, req.Answer); err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		case errors.Is(err, ErrAlreadyCompleted):
			http.Error(w, "quiz already completed", http.StatusBadRequest)
		case errors.Is(err, ErrQuestionOutOfRange), errors.Is(err, ErrAnswerOutOfRange):
			http.Error(w, "answer out of range", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Erro ao registrar resposta")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, AnswerResponse{Success: true})
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID := chi.URLParam(r, "sessionID")
	summary, err := h.service.ComputeResults(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao corrigir sessão")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) GetSessionStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, toSessionStatusResponse(session))
}
