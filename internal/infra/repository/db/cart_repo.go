package db

import (
	"context"
	"errors"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCartItemNotFound 購物車項目不存在
	ErrCartItemNotFound = errors.New("cart item not found")
)

type ICartRepository interface {
	GetCartBySession(ctx context.Context, sessionID string) (*model.Cart, error)
	FindOrCreateCart(ctx context.Context, sessionID string) (*model.Cart, error)
	GetCartItems(ctx context.Context, cartID int) ([]model.CartItem, error)
	GetCartItemByID(ctx context.Context, id int) (*model.CartItem, error)
	UpsertCartItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, id, quantity int) (*model.CartItem, error)
	DeleteCartItem(ctx context.Context, id int) error
}

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

func (s *CartRepo) GetCartBySession(ctx context.Context, sessionID string) (*model.Cart, error) {
	var cart model.Cart
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindOrCreateCart 同session最多一台購物車
// 併發首次請求靠 session_id unique index + OnConflict DoNothing 收斂到同一row
func (s *CartRepo) FindOrCreateCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	var cart model.Cart
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newCart := model.Cart{SessionID: sessionID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoNothing: true,
		}).Create(&newCart).Error; err != nil {
			return err
		}
		// conflict時 Create 不會回填ID, 一律重讀
		return tx.Where("session_id = ?", sessionID).First(&cart).Error
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartRepo) GetCartItems(ctx context.Context, cartID int) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.db.WithContext(ctx).Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error
	return items, err
}

func (s *CartRepo) GetCartItemByID(ctx context.Context, id int) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertCartItem 以變體鍵合併: 既有row累加數量, 否則新增
func (s *CartRepo) UpsertCartItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	var result model.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "cart_id"}, {Name: "product_id"}, {Name: "color"}, {Name: "size"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).Create(item).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ? AND product_id = ? AND color = ? AND size = ?",
			item.CartID, item.ProductID, item.Color, item.Size).First(&result).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *CartRepo) UpdateCartItemQuantity(ctx context.Context, id, quantity int) (*model.CartItem, error) {
	res := s.db.WithContext(ctx).Model(&model.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrCartItemNotFound
	}
	return s.GetCartItemByID(ctx, id)
}

func (s *CartRepo) DeleteCartItem(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

var _ ICartRepository = (*CartRepo)(nil)
