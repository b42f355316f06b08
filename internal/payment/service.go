package payment

import (
	"context"
	"fmt"
	"io"

	"orinoco/internal/prompt"
)

// Prompter is the slice of the selection prompter the resolution flow needs.
type Prompter interface {
	Select(title, noun string, options []prompt.Option) (int64, error)
	ReadLine(promptText string) (string, error)
}

// Service resolves the payment card for a checkout with the same three-way
// policy as delivery addresses. Menu labels and all output are masked; the
// full number never leaves this package except inside the Resolution.
type Service interface {
	Resolve(ctx context.Context, w io.Writer, shopperID int64) (Resolution, error)
}

type service struct {
	repo     Repository
	prompter Prompter
}

func NewService(repo Repository, prompter Prompter) Service {
	return &service{repo: repo, prompter: prompter}
}

func (s *service) Resolve(ctx context.Context, w io.Writer, shopperID int64) (Resolution, error) {
	cards, err := s.repo.ByShopper(ctx, shopperID)
	if err != nil {
		return Resolution{}, err
	}

	switch len(cards) {
	case 0:
		fmt.Fprintln(w, "\nNo payment card found.")
		number, err := s.prompter.ReadLine("Please enter a new card number: ")
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Number: number, Masked: Mask(number), New: true}, nil

	case 1:
		masked := Mask(cards[0].Number)
		fmt.Fprintf(w, "\nPayment Card: %s\n", masked)
		return Resolution{Number: cards[0].Number, Masked: masked}, nil

	default:
		fmt.Fprintln(w, "\nSelect a payment card:")

		options := make([]prompt.Option, 0, len(cards))
		for _, c := range cards {
			options = append(options, prompt.Option{Code: c.ID, Label: Mask(c.Number)})
		}

		chosen, err := s.prompter.Select("PAYMENT CARDS", "card", options)
		if err != nil {
			return Resolution{}, err
		}

		number, err := s.repo.NumberByID(ctx, chosen)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Number: number, Masked: Mask(number)}, nil
	}
}
