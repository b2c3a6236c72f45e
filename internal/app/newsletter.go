package app

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var ErrInvalidEmail = errors.New("invalid email address")

const SubscribedMessage = "Thank you for subscribing! You'll receive exclusive offers and updates from Kennedia Hotel."

type NewsletterService struct{ v *validator.Validate }

func NewNewsletterService() *NewsletterService {
	return &NewsletterService{v: validator.New()}
}

// Subscribe accepts a sign-up. Nothing is stored; the address is only logged
// at debug level.
func (n *NewsletterService) Subscribe(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := n.v.VarCtx(ctx, email, "required,email,max=254"); err != nil {
		return "", ErrInvalidEmail
	}
	log.Debug().Str("email", email).Msg("newsletter signup")
	return SubscribedMessage, nil
}
