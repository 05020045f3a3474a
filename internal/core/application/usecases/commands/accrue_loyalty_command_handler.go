package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/loyalty"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/keyed"
)

// promoCodeAttempts bounds the collision retry loop when issuing a promo
// code. With a 36^6 code space collisions are vanishingly rare.
const promoCodeAttempts = 10

// ErrPromoCodeSpaceExhausted is returned when no free promo code was found
// within the retry budget.
var ErrPromoCodeSpaceExhausted = errors.New("could not generate an unused promo code")

// AccrueLoyaltyCommandHandler credits cashback to the customer's loyalty
// account. Accounts are created on first accrual, together with their one
// permanent promo code. Accruals for the same phone are serialized by a
// per-phone gate; different phones proceed concurrently.
type AccrueLoyaltyCommandHandler struct {
	gates     *keyed.Mutex[string]
	accounts  ports.LoyaltyStore
	generator services.PromoCodeGenerator
	messenger Messenger
}

// NewAccrueLoyaltyCommandHandler creates a handler for loyalty accrual.
func NewAccrueLoyaltyCommandHandler(
	gates *keyed.Mutex[string],
	accounts ports.LoyaltyStore,
	generator services.PromoCodeGenerator,
	messenger Messenger,
) AccrueLoyaltyCommandHandler {
	return AccrueLoyaltyCommandHandler{
		gates:     gates,
		accounts:  accounts,
		generator: generator,
		messenger: messenger,
	}
}

// Accrue adapts the handler to the LoyaltyAccruer interface consumed by the
// completion flow. A subtotal too small to earn a whole credit unit is a
// successful no-op.
func (h *AccrueLoyaltyCommandHandler) Accrue(ctx context.Context, phone kernel.Phone, dishSubtotal int64, notifyChat *int64) error {
	if loyalty.CashbackCredit(dishSubtotal) == 0 {
		return nil
	}

	cmd, err := NewAccrueLoyaltyCommand(phone, dishSubtotal, notifyChat)
	if err != nil {
		return err
	}
	return h.Handle(ctx, cmd)
}

// Handle processes the accrual: get or create the account, issue the promo
// code on first contact, add the credit and write the account back.
func (h *AccrueLoyaltyCommandHandler) Handle(ctx context.Context, cmd AccrueLoyaltyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	credit := loyalty.CashbackCredit(cmd.DishSubtotal())
	if credit == 0 {
		return nil
	}

	unlock := h.gates.Lock(cmd.Phone().Digits())
	defer unlock()

	account, created, err := h.getOrCreate(ctx, cmd.Phone())
	if err != nil {
		return err
	}

	if !account.HasPromoCode() {
		code, codeErr := h.uniqueCode(ctx)
		if codeErr != nil {
			return codeErr
		}
		if err = account.IssuePromoCode(code); err != nil {
			return err
		}
	}

	if err = account.Credit(credit); err != nil {
		return err
	}

	if created {
		err = h.accounts.Add(ctx, account)
	} else {
		err = h.accounts.Update(ctx, account)
	}
	if err != nil {
		return err
	}

	if chat := cmd.NotifyChat(); chat != nil {
		h.messenger.ToChat(*chat, ports.Notice{
			Text: fmt.Sprintf("Cashback credited: %d. Your balance is %d. Promo code: %s",
				credit, account.Balance(), account.PromoCode()),
		})
	}

	return nil
}

func (h *AccrueLoyaltyCommandHandler) getOrCreate(ctx context.Context, phone kernel.Phone) (*loyalty.Account, bool, error) {
	account, err := h.accounts.Get(ctx, phone)
	if err == nil {
		return account, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	account, err = loyalty.NewAccount(phone)
	if err != nil {
		return nil, false, err
	}
	return account, true, nil
}

// uniqueCode draws candidate codes until one is free of collisions.
func (h *AccrueLoyaltyCommandHandler) uniqueCode(ctx context.Context) (string, error) {
	for range promoCodeAttempts {
		code := h.generator.Generate()
		inUse, err := h.accounts.CodeInUse(ctx, code)
		if err != nil {
			return "", err
		}
		if !inUse {
			return code, nil
		}
	}
	return "", ErrPromoCodeSpaceExhausted
}
