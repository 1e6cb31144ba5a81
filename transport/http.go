package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/rental-commerce/application/auth"
	rentalapp "github.com/muhammadheryan/rental-commerce/application/rental"
	variantapp "github.com/muhammadheryan/rental-commerce/application/variant"
	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/muhammadheryan/rental-commerce/model"
	contextx "github.com/muhammadheryan/rental-commerce/utils/context"
	"github.com/muhammadheryan/rental-commerce/utils/errors"
	"github.com/muhammadheryan/rental-commerce/utils/logger"
	validatorx "github.com/muhammadheryan/rental-commerce/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	RentalApp  rentalapp.RentalApp
	VariantApp variantapp.VariantApp
}

func NewTransport(RentalApp rentalapp.RentalApp, VariantApp variantapp.VariantApp, AuthApp authapp.AuthApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		RentalApp:  RentalApp,
		VariantApp: VariantApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/v1/rentals/quote", rh.Quote).Methods(http.MethodPost)
	mux.HandleFunc("/v1/rentals/penalty", rh.LatePenalty).Methods(http.MethodPost)
	mux.HandleFunc("/v1/products/{id}/rental-quote", rh.QuoteProduct).Methods(http.MethodPost)
	mux.HandleFunc("/v1/products/{id}/variants", rh.ListVariants).Methods(http.MethodGet)
	mux.HandleFunc("/v1/variants/{id}", rh.GetVariant).Methods(http.MethodGet)
	mux.HandleFunc("/v1/variants/{id}/stock", rh.GetStock).Methods(http.MethodGet)

	// Admin routes (JWT)
	mux.HandleFunc("/v1/products/{id}/variants", rh.CreateVariant).Methods(http.MethodPost)
	mux.HandleFunc("/v1/variants/{id}/reserve", rh.Reserve).Methods(http.MethodPost)
	mux.HandleFunc("/v1/variants/{id}/release", rh.Release).Methods(http.MethodPost)
	mux.HandleFunc("/v1/variants/{id}/add-stock", rh.AddStock).Methods(http.MethodPost)
	mux.HandleFunc("/v1/variants/{id}/reduce-stock", rh.ReduceStock).Methods(http.MethodPost)
	mux.HandleFunc("/v1/variants/{id}", rh.SoftDelete).Methods(http.MethodDelete)
	mux.HandleFunc("/v1/holds/{id}/confirm", rh.ConfirmHold).Methods(http.MethodPost)
	mux.HandleFunc("/v1/holds/{id}/release", rh.ReleaseHold).Methods(http.MethodPost)

	// Internal routes (service key); consumed by the hold expiration consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/holds/{id}/expire", rh.ExpireHold).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

func pathID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

func pathHoldID(r *http.Request) (string, error) {
	raw := mux.Vars(r)["id"]
	if raw == "" {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return raw, nil
}

// Quote handler
// @Summary Quote a rental
// @Description Validate a rental date range and compute the cost breakdown
// @Tags Rental
// @Accept json
// @Produce json
// @Param request body model.RentalQuoteRequest true "Quote Request"
// @Success 200 {object} model.RentalQuoteResponse
// @Failure 400 {object} transport.Response
// @Router /v1/rentals/quote [post]
func (s *RestHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RentalQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RentalApp.Quote(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// QuoteProduct handler
// @Summary Quote a rental for a catalog product
// @Description Quote using the product's rental pricing and its confirmed booking calendar
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.VariantQuoteRequest true "Quote Request"
// @Success 200 {object} model.RentalQuoteResponse
// @Failure 400 {object} transport.Response
// @Router /v1/products/{id}/rental-quote [post]
func (s *RestHandler) QuoteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.VariantQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RentalApp.QuoteProduct(ctx, productID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// LatePenalty handler
// @Summary Compute a late return penalty
// @Tags Rental
// @Accept json
// @Produce json
// @Param request body model.LatePenaltyRequest true "Penalty Request"
// @Success 200 {object} model.LatePenaltyResponse
// @Failure 400 {object} transport.Response
// @Router /v1/rentals/penalty [post]
func (s *RestHandler) LatePenalty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LatePenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RentalApp.LatePenalty(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateVariant handler
// @Summary Create a product variant
// @Description Create a size/color variant with its initial stock
// @Tags Variant
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.CreateVariantRequest true "Create Request"
// @Success 200 {object} model.VariantEntity
// @Failure 400 {object} transport.Response
// @Security BearerAuth
// @Router /v1/products/{id}/variants [post]
func (s *RestHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.ProductID = productID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VariantApp.CreateVariant(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListVariants handler
// @Summary List variants of a product
// @Description Active variants only unless include_inactive=true is passed for auditing
// @Tags Variant
// @Produce json
// @Param id path int true "Product ID"
// @Param include_inactive query bool false "Include soft-deleted variants"
// @Success 200 {array} model.VariantEntity
// @Failure 400 {object} transport.Response
// @Router /v1/products/{id}/variants [get]
func (s *RestHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	filter := &model.VariantFilter{
		ProductID:       productID,
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
	}

	res, err := s.VariantApp.ListVariants(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetVariant handler
// @Summary Get a variant
// @Tags Variant
// @Produce json
// @Param id path int true "Variant ID"
// @Success 200 {object} model.VariantEntity
// @Failure 404 {object} transport.Response
// @Router /v1/variants/{id} [get]
func (s *RestHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	variantID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VariantApp.GetVariant(ctx, variantID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStock handler
// @Summary Get the stock snapshot of a variant
// @Tags Variant
// @Produce json
// @Param id path int true "Variant ID"
// @Success 200 {object} model.StockSnapshot
// @Failure 404 {object} transport.Response
// @Router /v1/variants/{id}/stock [get]
func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	variantID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VariantApp.GetStockSnapshot(ctx, variantID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Reserve handler
// @Summary Reserve stock
// @Description Hold available units against a pending order or rental; the returned hold_id confirms or cancels the hold
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path int true "Variant ID"
// @Param request body model.StockMutationRequest true "Quantity"
// @Success 200 {object} model.ReserveResult
// @Failure 409 {object} transport.Response
// @Security BearerAuth
// @Router /v1/variants/{id}/reserve [post]
func (s *RestHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	variantID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.StockMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if userID, ok := contextx.GetUserID(ctx); ok {
		logger.Info("[Reserve] stock hold requested",
			zap.Uint64("user_id", userID),
			zap.Uint64("variant_id", variantID),
			zap.Int64("quantity", req.Quantity))
	}

	res, err := s.VariantApp.Reserve(ctx, variantID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConfirmHold handler
// @Summary Confirm a stock hold
// @Description Settle a pending hold into a committed reservation; the scheduled expiration becomes a no-op
// @Tags Stock
// @Produce json
// @Param id path string true "Hold ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Security BearerAuth
// @Router /v1/holds/{id}/confirm [post]
func (s *RestHandler) ConfirmHold(w http.ResponseWriter, r *http.Request) {
	holdID, err := pathHoldID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.VariantApp.ConfirmHold(r.Context(), holdID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ReleaseHold handler
// @Summary Cancel a stock hold
// @Description Free the units held by a pending hold
// @Tags Stock
// @Produce json
// @Param id path string true "Hold ID"
// @Success 200 {object} model.StockSnapshot
// @Failure 404 {object} transport.Response
// @Security BearerAuth
// @Router /v1/holds/{id}/release [post]
func (s *RestHandler) ReleaseHold(w http.ResponseWriter, r *http.Request) {
	holdID, err := pathHoldID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VariantApp.ReleaseHold(r.Context(), holdID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpireHold is the internal endpoint the expiration consumer calls. A hold
// already settled by confirm or cancel is reported as success so the consumer
// acks the message instead of requeueing it.
func (s *RestHandler) ExpireHold(w http.ResponseWriter, r *http.Request) {
	holdID, err := pathHoldID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VariantApp.ReleaseHold(r.Context(), holdID)
	if err != nil {
		if ce, ok := err.(errors.CustomError); ok && ce.ErrorCode() == constant.ErrorTypeCode[constant.ErrHoldNotFound] {
			writeSuccess(w, nil)
			return
		}
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Release handler
// @Summary Release reserved stock
// @Description Free units held by a cancelled or expired reservation
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path int true "Variant ID"
// @Param request body model.StockMutationRequest true "Quantity"
// @Success 200 {object} model.StockSnapshot
// @Failure 409 {object} transport.Response
// @Security BearerAuth
// @Router /v1/variants/{id}/release [post]
func (s *RestHandler) Release(w http.ResponseWriter, r *http.Request) {
	s.stockMutation(w, r, s.VariantApp.Release)
}

// AddStock handler
// @Summary Add stock
// @Description Restock a variant
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path int true "Variant ID"
// @Param request body model.StockMutationRequest true "Quantity"
// @Success 200 {object} model.StockSnapshot
// @Failure 400 {object} transport.Response
// @Security BearerAuth
// @Router /v1/variants/{id}/add-stock [post]
func (s *RestHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	s.stockMutation(w, r, s.VariantApp.AddStock)
}

// ReduceStock handler
// @Summary Reduce stock
// @Description Remove available units; reserved units must be released first
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path int true "Variant ID"
// @Param request body model.StockMutationRequest true "Quantity"
// @Success 200 {object} model.StockSnapshot
// @Failure 409 {object} transport.Response
// @Security BearerAuth
// @Router /v1/variants/{id}/reduce-stock [post]
func (s *RestHandler) ReduceStock(w http.ResponseWriter, r *http.Request) {
	s.stockMutation(w, r, s.VariantApp.ReduceStock)
}

// SoftDelete handler
// @Summary Soft delete a variant
// @Description Mark the variant inactive; stock history is preserved
// @Tags Variant
// @Produce json
// @Param id path int true "Variant ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Security BearerAuth
// @Router /v1/variants/{id} [delete]
func (s *RestHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	variantID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.VariantApp.SoftDelete(ctx, variantID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) stockMutation(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, variantID uint64, quantity int64) (*model.StockSnapshot, error)) {
	ctx := r.Context()

	variantID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.StockMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if userID, ok := contextx.GetUserID(ctx); ok {
		logger.Info("[stockMutation] stock change requested",
			zap.Uint64("user_id", userID),
			zap.Uint64("variant_id", variantID),
			zap.Int64("quantity", req.Quantity))
	}

	res, err := apply(ctx, variantID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
