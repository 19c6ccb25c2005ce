package controllers

import (
	"context"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/exceptions"
	"daily-journal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QuoteController struct {
	Log          *zap.Logger
	QuoteUsecase contracts.QuoteUsecase
}

func NewQuoteController(logger *zap.Logger, quoteUsecase contracts.QuoteUsecase) *QuoteController {
	return &QuoteController{
		Log:          logger,
		QuoteUsecase: quoteUsecase,
	}
}

func (ctrl *QuoteController) GetTodayQuote(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuoteController.GetTodayQuote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := ctrl.QuoteUsecase.GetTodayQuote(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuoteSuccessMessage, response)
}

func (ctrl *QuoteController) GetQuoteByDate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuoteController.GetQuoteByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.GetQuoteByDate{Date: chi.URLParam(r, constvars.URLParamQuoteDate)}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamQuoteDate))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuoteUsecase.GetQuoteByDate(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuoteSuccessMessage, response)
}
