// Package cartservice owns the cart / order state machine: lazy cart
// creation on first add, quantity merging for repeat adds, the Sum counter
// (distinct line items), cart teardown on last removal and checkout.
package cartservice

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tdat0411/laptopshop-api/models"
	"github.com/tdat0411/laptopshop-api/session"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartDetailNotFound = errors.New("cart item not found")
)

type Service struct {
	db     *gorm.DB
	badges *session.BadgeStore
}

func NewService(db *gorm.DB, badges *session.BadgeStore) *Service {
	return &Service{db: db, badges: badges}
}

// CartDetailUpdate is one (line item, new quantity) pair of a bulk
// pre-checkout edit.
type CartDetailUpdate struct {
	ID       uint  `json:"id" binding:"required"`
	Quantity int64 `json:"quantity"`
}

// AddProductToCart adds quantity units of a product to the cart of the user
// identified by email, creating the cart on first add. Repeat adds of the
// same product merge into the existing line (Sum unchanged); a new product
// creates a line with the product price captured as a snapshot and bumps
// Sum by one. Returns the resulting Sum.
//
// Quantity is not validated; zero and negative values pass through as-is.
func (s *Service) AddProductToCart(ctx context.Context, email string, productID uint, quantity int64) (int, error) {
	var (
		sum     int
		ownerID uint
		newLine bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		// Fetch or lazily create the user's cart
		var cart models.Cart
		if err := tx.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cart = models.Cart{UserID: user.ID, Sum: 0}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		// Check if the product was already added to this cart
		var detail models.CartDetail
		err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&detail).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			newDetail := models.CartDetail{
				CartID:    cart.ID,
				ProductID: product.ID,
				Price:     product.Price, // snapshot, not repriced later
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			if err := tx.Create(&newDetail).Error; err != nil {
				return err
			}
			cart.Sum++
			if err := tx.Save(&cart).Error; err != nil {
				return err
			}
			sum = cart.Sum
			ownerID = user.ID
			newLine = true
			return nil
		}

		// Merge quantities; Sum counts distinct lines, so it stays put
		detail.Quantity += quantity
		if err := tx.Save(&detail).Error; err != nil {
			return err
		}
		sum = cart.Sum
		return nil
	})
	if err != nil {
		return 0, err
	}
	if newLine {
		s.publishSum(ctx, ownerID, sum)
	}
	return sum, nil
}

// RemoveCartDetail deletes one line item. The last removal deletes the cart
// itself — an empty cart is never persisted. Returns the resulting Sum.
// A missing id yields ErrCartDetailNotFound so the HTTP layer can stay
// idempotent without guessing.
func (s *Service) RemoveCartDetail(ctx context.Context, cartDetailID uint) (int, error) {
	var (
		sum     int
		ownerID uint
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var detail models.CartDetail
		if err := tx.First(&detail, "id = ?", cartDetailID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartDetailNotFound
			}
			return err
		}

		var cart models.Cart
		if err := tx.First(&cart, "id = ?", detail.CartID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&detail).Error; err != nil {
			return err
		}

		if cart.Sum > 1 {
			cart.Sum--
			if err := tx.Save(&cart).Error; err != nil {
				return err
			}
			sum = cart.Sum
		} else {
			// Last line item: drop the cart entirely
			if err := tx.Delete(&cart).Error; err != nil {
				return err
			}
			sum = 0
		}
		ownerID = cart.UserID
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.publishSum(ctx, ownerID, sum)
	return sum, nil
}

// UpdateCartQuantities overwrites line quantities before checkout. Missing
// ids are skipped; Sum counts lines, not units, so it is untouched.
func (s *Service) UpdateCartQuantities(ctx context.Context, items []CartDetailUpdate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var detail models.CartDetail
			if err := tx.First(&detail, "id = ?", item.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			detail.Quantity = item.Quantity
			if err := tx.Save(&detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PlaceOrder converts the user's cart into a PENDING order in a single
// transaction: the order and its frozen detail copies are created, then the
// cart and all its lines are deleted. Either everything commits or nothing
// does.
//
// TotalPrice is the sum of the captured line prices, quantity NOT
// multiplied in — carried over verbatim from the legacy pricing rule.
func (s *Service) PlaceOrder(ctx context.Context, userID uint, receiverName, receiverAddress, receiverPhone string) (*models.Order, error) {
	var order models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Details").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var total float64
		for _, detail := range cart.Details {
			total += detail.Price
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			ReceiverName:    receiverName,
			ReceiverAddress: receiverAddress,
			ReceiverPhone:   receiverPhone,
			TotalPrice:      total,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, detail := range cart.Details {
			orderDetail := models.OrderDetail{
				OrderID:   order.ID,
				ProductID: detail.ProductID,
				Price:     detail.Price,
				Quantity:  detail.Quantity,
			}
			if err := tx.Create(&orderDetail).Error; err != nil {
				return err
			}
			order.Details = append(order.Details, orderDetail)
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&cart).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishSum(ctx, userID, 0)
	logger.Info().Str("order_ref", order.OrderRef).Uint("user_id", userID).
		Float64("total", order.TotalPrice).Msg("order placed")
	return &order, nil
}

// CartSum returns the badge value for the page header. The published
// session value is advisory; anything inconclusive falls back to the
// authoritative Cart.Sum.
func (s *Service) CartSum(ctx context.Context, userID uint) (int, error) {
	if s.badges != nil {
		if sum, err := s.badges.CartSum(ctx, userID); err == nil && sum > 0 {
			return sum, nil
		}
	}
	cart, err := s.GetCartByUser(ctx, userID)
	if errors.Is(err, ErrCartNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return cart.Sum, nil
}

// GetCartByUser fetches the user's cart with its lines preloaded.
func (s *Service) GetCartByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Preload("Details").Preload("Details.Product").
		Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// publishSum pushes the badge value to the session store. Advisory only:
// a failure is logged, never propagated.
func (s *Service) publishSum(ctx context.Context, userID uint, sum int) {
	if s.badges == nil {
		return
	}
	if err := s.badges.SetCartSum(ctx, userID, sum); err != nil {
		logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to publish cart sum")
	}
}

// generateOrderRef builds a unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
