package payment

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
)

// Resolver busca no Mercado Pago os dados de pagamentos que chegam como
// notificação crua (só data.id), para preencher e-mail/produto/valor.
type Resolver struct {
	client mppayment.Client
}

func NewResolver(accessToken string) (*Resolver, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Resolver{client: mppayment.NewClient(cfg)}, nil
}

type ResolvedPayment struct {
	TransactionID string
	CustomerEmail string
	ProductName   string
	Amount        float64
	Approved      bool
}

func (r *Resolver) Resolve(ctx context.Context, paymentID string) (*ResolvedPayment, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: invalid payment id %q", paymentID)
	}

	res, err := r.client.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ResolvedPayment{
		TransactionID: strconv.Itoa(res.ID),
		CustomerEmail: res.Payer.Email,
		ProductName:   res.Description,
		Amount:        res.TransactionAmount,
		Approved:      res.Status == "approved",
	}, nil
}
