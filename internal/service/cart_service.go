package service

import (
	"github.com/google/uuid"

	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
	"go-shop-backend/pkg/apperr"
)

type CartService interface {
	GetCart(customerID uuid.UUID) (*model.ShoppingCart, error)
	AddToCart(customerID uuid.UUID, barcode string, quantity int) error
	ChangeQuantity(cartID uuid.UUID, barcode string, quantity int) error
	RemoveItem(itemID uuid.UUID) error
	// ToggleWishlist adds the barcode to the user's wishlist, or removes it
	// when already present. Returns whether it ended up added.
	ToggleWishlist(phoneNumber, barcode string) (bool, error)
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewCartService(
	carts repository.CartRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) CartService {
	return &cartService{carts: carts, products: products, users: users}
}

func (s *cartService) GetCart(customerID uuid.UUID) (*model.ShoppingCart, error) {
	return s.carts.GetOrCreate(customerID)
}

func (s *cartService) AddToCart(customerID uuid.UUID, barcode string, quantity int) error {
	if barcode == "" {
		return apperr.Validationf("barcode is required")
	}
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.products.FindByBarcode(barcode); err != nil {
		return err
	}

	cart, err := s.carts.GetOrCreate(customerID)
	if err != nil {
		return err
	}
	return s.carts.AddItem(cart.ID, barcode, quantity)
}

func (s *cartService) ChangeQuantity(cartID uuid.UUID, barcode string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return s.carts.SetItemQuantity(cartID, barcode, quantity)
}

func (s *cartService) RemoveItem(itemID uuid.UUID) error {
	return s.carts.DeleteItem(itemID)
}

func (s *cartService) ToggleWishlist(phoneNumber, barcode string) (bool, error) {
	if phoneNumber == "" || barcode == "" {
		return false, apperr.Validationf("phoneNumber and barcode are required")
	}

	user, err := s.users.FindByPhone(phoneNumber)
	if err != nil {
		return false, err
	}

	wishlist := make([]string, 0, len(user.Wishlist)+1)
	removed := false
	for _, b := range user.Wishlist {
		if b == barcode {
			removed = true
			continue
		}
		wishlist = append(wishlist, b)
	}
	if !removed {
		wishlist = append(wishlist, barcode)
	}

	if err := s.users.UpdateWishlist(user.ID, wishlist); err != nil {
		return false, err
	}
	return !removed, nil
}
