package variant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/rental-commerce/cmd/config"
	"github.com/muhammadheryan/rental-commerce/constant"
	"github.com/muhammadheryan/rental-commerce/model"
	redisrepo "github.com/muhammadheryan/rental-commerce/repository/redis"
	txrepo "github.com/muhammadheryan/rental-commerce/repository/tx"
	variantrepo "github.com/muhammadheryan/rental-commerce/repository/variant"
	"github.com/muhammadheryan/rental-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/rental-commerce/utils/errors"
	"github.com/muhammadheryan/rental-commerce/utils/logger"
	"go.uber.org/zap"
)

type VariantApp interface {
	CreateVariant(ctx context.Context, req *model.CreateVariantRequest) (*model.VariantEntity, error)
	GetVariant(ctx context.Context, variantID uint64) (*model.VariantEntity, error)
	GetStockSnapshot(ctx context.Context, variantID uint64) (*model.StockSnapshot, error)
	ListVariants(ctx context.Context, filter *model.VariantFilter) ([]model.VariantEntity, error)
	Reserve(ctx context.Context, variantID uint64, quantity int64) (*model.ReserveResult, error)
	Release(ctx context.Context, variantID uint64, quantity int64) (*model.StockSnapshot, error)
	ConfirmHold(ctx context.Context, holdID string) error
	ReleaseHold(ctx context.Context, holdID string) (*model.StockSnapshot, error)
	AddStock(ctx context.Context, variantID uint64, quantity int64) (*model.StockSnapshot, error)
	ReduceStock(ctx context.Context, variantID uint64, quantity int64) (*model.StockSnapshot, error)
	SoftDelete(ctx context.Context, variantID uint64) error
}

type variantAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	variantRepo variantrepo.VariantRepository
	redisRepo   redisrepo.Repository
	publisher   *rabbitmq.Publisher
	locks       *variantLocks
}

func NewVariantApp(config *config.Config, txRepo txrepo.TxRepository, variantRepo variantrepo.VariantRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) VariantApp {
	return &variantAppImpl{
		config:      config,
		txRepo:      txRepo,
		variantRepo: variantRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
		locks:       newVariantLocks(),
	}
}

func (s *variantAppImpl) CreateVariant(ctx context.Context, req *model.CreateVariantRequest) (*model.VariantEntity, error) {
	if req.InitialStock < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateVariant] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// only active variants participate in the (product, size, color) uniqueness rule
	exists, err := s.variantRepo.ExistsActiveTx(ctx, tx, req.ProductID, req.Size, req.Color)
	if err != nil {
		logger.Error("[CreateVariant] check duplicate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return nil, errors.SetCustomError(constant.ErrDuplicateVariant)
	}

	entity := &model.VariantEntity{
		ProductID:     req.ProductID,
		Size:          req.Size,
		Color:         req.Color,
		ColorCode:     req.ColorCode,
		SKUVariant:    req.SKUVariant,
		StockQuantity: req.InitialStock,
		IsActive:      true,
	}
	id, err := s.variantRepo.InsertTx(ctx, tx, entity)
	if err != nil {
		logger.Error("[CreateVariant] insert variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ID = id

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateVariant] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return entity, nil
}

func (s *variantAppImpl) GetVariant(ctx context.Context, variantID uint64) (*model.VariantEntity, error) {
	entity, err := s.variantRepo.GetByID(ctx, variantID)
	if err != nil {
		logger.Error("[GetVariant] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// inactive variants are hidden from lookup, same as missing ones
	if entity == nil || !entity.IsActive {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}
	return entity, nil
}

func (s *variantAppImpl) GetStockSnapshot(ctx context.Context, variantID uint64) (*model.StockSnapshot, error) {
	if cached, err := s.redisRepo.GetStockSnapshot(ctx, variantID); err == nil && cached != "" {
		var snapshot model.StockSnapshot
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return &snapshot, nil
		}
	}

	entity, err := s.GetVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}

	snapshot := entity.Snapshot()
	s.cacheSnapshot(ctx, snapshot)
	return snapshot, nil
}

func (s *variantAppImpl) ListVariants(ctx context.Context, filter *model.VariantFilter) ([]model.VariantEntity, error) {
	items, err := s.variantRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListVariants] list variants", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *variantAppImpl) Reserve(ctx context.Context, variantID uint64, quantity int64) (*model.ReserveResult, error) {
	if quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lock := s.locks.get(variantID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.variantRepo.GetByIDForUpdateTx(ctx, tx, variantID)
	if err != nil {
		logger.Error("[Reserve] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}
	if !entity.IsActive {
		return nil, errors.SetCustomError(constant.ErrVariantInactive)
	}
	if entity.AvailableQuantity() < quantity {
		logger.Info("[Reserve] insufficient stock",
			zap.Uint64("variant_id", variantID),
			zap.Int64("need", quantity),
			zap.Int64("available", entity.AvailableQuantity()))
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	entity.ReservedQuantity += quantity
	if err := s.variantRepo.UpdateQuantitiesTx(ctx, tx, variantID, entity.StockQuantity, entity.ReservedQuantity); err != nil {
		logger.Error("[Reserve] update quantities", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	snapshot := entity.Snapshot()
	s.invalidateSnapshot(ctx, variantID)
	s.publishStockEvent(constant.StockOperationReserve, snapshot)

	// record the pending hold and schedule the compensating release; the
	// expiration only fires while the record is still unclaimed
	var holdID string
	if s.config.Reservation.HoldExpiration > 0 {
		hold := model.Hold{
			HoldID:    uuid.NewString(),
			VariantID: variantID,
			Quantity:  quantity,
		}
		payload, err := json.Marshal(hold)
		if err == nil {
			// record outlives the delayed message so a late consumer still finds it
			ttl := 2 * s.config.Reservation.HoldExpiration
			if err := s.redisRepo.SetHold(ctx, hold.HoldID, string(payload), ttl); err != nil {
				logger.Error("[Reserve] store hold", zap.String("error", err.Error()))
			} else {
				holdID = hold.HoldID
				if s.publisher != nil {
					msg := rabbitmq.HoldExpirationMessage{
						HoldID:    hold.HoldID,
						VariantID: variantID,
						Quantity:  quantity,
						ExpiresAt: time.Now().Add(s.config.Reservation.HoldExpiration),
					}
					if err := s.publisher.PublishHoldExpiration(msg); err != nil {
						logger.Error("[Reserve] publish hold expiration", zap.String("error", err.Error()))
					}
				}
			}
		}
	}

	return &model.ReserveResult{StockSnapshot: *snapshot, HoldID: holdID}, nil
}

// ConfirmHold settles a pending hold into a committed reservation: the record
// is claimed so the scheduled expiration becomes a no-op, and the reserved
// quantity stays on the ledger for the booking to consume.
func (s *variantAppImpl) ConfirmHold(ctx context.Context, holdID string) error {
	payload, err := s.redisRepo.ClaimHold(ctx, holdID)
	if err != nil {
		logger.Error("[ConfirmHold] claim hold", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if payload == "" {
		return errors.SetCustomError(constant.ErrHoldNotFound)
	}
	return nil
}

// ReleaseHold frees the stock held by a pending hold. The claim is atomic, so
// a caller cancellation racing the expiration consumer settles the hold
// exactly once; the loser sees ErrHoldNotFound and leaves the ledger alone.
func (s *variantAppImpl) ReleaseHold(ctx context.Context, holdID string) (*model.StockSnapshot, error) {
	payload, err := s.redisRepo.ClaimHold(ctx, holdID)
	if err != nil {
		logger.Error("[ReleaseHold] claim hold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if payload == "" {
		return nil, errors.SetCustomError(constant.ErrHoldNotFound)
	}

	var hold model.Hold
	if err := json.Unmarshal([]byte(payload), &hold); err != nil {
		logger.Error("[ReleaseHold] unmarshal hold", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.Release(ctx, hold.VariantID, hold.Quantity)
}

func (s *variantAppImpl) Release(ctx context.Context, variantID uint64, quantity int64) (*model.StockSnapshot, error) {
	if quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lock := s.locks.get(variantID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Release] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.variantRepo.GetByIDForUpdateTx(ctx, tx, variantID)
	if err != nil {
		logger.Error("[Release] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}
	// Release stays allowed on inactive variants so holds taken before a
	// soft delete can still unwind.
	if quantity > entity.ReservedQuantity {
		return nil, errors.SetCustomError(constant.ErrOverRelease)
	}

	entity.ReservedQuantity -= quantity
	if err := s.variantRepo.UpdateQuantitiesTx(ctx, tx, variantID, entity.StockQuantity, entity.ReservedQuantity); err != nil {
		logger.Error("[Release] update quantities", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Release] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	snapshot := entity.Snapshot()
	s.invalidateSnapshot(ctx, variantID)
	s.publishStockEvent(constant.StockOperationRelease, snapshot)

	return snapshot, nil
}

func (s *variantAppImpl) AddStock(ctx context.Context, variantID uint64, quantity int64) (*model.StockSnapshot, error) {
	if quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lock := s.locks.get(variantID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.variantRepo.GetByIDForUpdateTx(ctx, tx, variantID)
	if err != nil {
		logger.Error("[AddStock] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}
	if !entity.IsActive {
		return nil, errors.SetCustomError(constant.ErrVariantInactive)
	}

	entity.StockQuantity += quantity
	if err := s.variantRepo.UpdateQuantitiesTx(ctx, tx, variantID, entity.StockQuantity, entity.ReservedQuantity); err != nil {
		logger.Error("[AddStock] update quantities", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddStock] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	snapshot := entity.Snapshot()
	s.invalidateSnapshot(ctx, variantID)
	s.publishStockEvent(constant.StockOperationAdd, snapshot)

	return snapshot, nil
}

func (s *variantAppImpl) ReduceStock(ctx context.Context, variantID uint64, quantity int64) (*model.StockSnapshot, error) {
	if quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lock := s.locks.get(variantID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReduceStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.variantRepo.GetByIDForUpdateTx(ctx, tx, variantID)
	if err != nil {
		logger.Error("[ReduceStock] get variant", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrVariantNotFound)
	}
	if !entity.IsActive {
		return nil, errors.SetCustomError(constant.ErrVariantInactive)
	}
	// reserved units are committed to pending orders; only free stock may go
	if quantity > entity.AvailableQuantity() {
		return nil, errors.SetCustomError(constant.ErrInsufficientAvailableStock)
	}

	entity.StockQuantity -= quantity
	if err := s.variantRepo.UpdateQuantitiesTx(ctx, tx, variantID, entity.StockQuantity, entity.ReservedQuantity); err != nil {
		logger.Error("[ReduceStock] update quantities", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReduceStock] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	snapshot := entity.Snapshot()
	s.invalidateSnapshot(ctx, variantID)
	s.publishStockEvent(constant.StockOperationReduce, snapshot)

	return snapshot, nil
}

func (s *variantAppImpl) SoftDelete(ctx context.Context, variantID uint64) error {
	lock := s.locks.get(variantID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SoftDelete] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.variantRepo.GetByIDForUpdateTx(ctx, tx, variantID)
	if err != nil {
		logger.Error("[SoftDelete] get variant", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || !entity.IsActive {
		return errors.SetCustomError(constant.ErrVariantNotFound)
	}

	// Policy: soft delete does not wait for reserved stock to unwind.
	// In-flight holds against a discontinued variant finish through Release.
	if err := s.variantRepo.SoftDeleteTx(ctx, tx, variantID); err != nil {
		logger.Error("[SoftDelete] soft delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SoftDelete] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	entity.IsActive = false
	s.invalidateSnapshot(ctx, variantID)
	s.publishStockEvent(constant.StockOperationSoftDelete, entity.Snapshot())

	return nil
}

func (s *variantAppImpl) cacheSnapshot(ctx context.Context, snapshot *model.StockSnapshot) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.redisRepo.SetStockSnapshot(ctx, snapshot.ID, string(payload), s.config.Rental.SnapshotCacheTTL); err != nil {
		logger.Warn("[cacheSnapshot] set cache", zap.String("error", err.Error()))
	}
}

func (s *variantAppImpl) invalidateSnapshot(ctx context.Context, variantID uint64) {
	if err := s.redisRepo.DeleteStockSnapshot(ctx, variantID); err != nil {
		logger.Warn("[invalidateSnapshot] delete cache", zap.String("error", err.Error()))
	}
}

func (s *variantAppImpl) publishStockEvent(operation string, snapshot *model.StockSnapshot) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.StockEventMessage{
		EventID:           uuid.NewString(),
		VariantID:         snapshot.ID,
		Operation:         operation,
		StockQuantity:     snapshot.StockQuantity,
		ReservedQuantity:  snapshot.ReservedQuantity,
		AvailableQuantity: snapshot.AvailableQuantity,
		IsActive:          snapshot.IsActive,
		OccurredAt:        time.Now(),
	}
	if err := s.publisher.PublishStockEvent(msg); err != nil {
		logger.Error("[publishStockEvent] publish", zap.String("error", err.Error()))
	}
}
