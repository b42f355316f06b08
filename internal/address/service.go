package address

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

// Service resolves the delivery address for a checkout: capture a new one
// when the shopper has none, use the only one silently, or offer a choice.
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
	addresses, err := s.repo.ByShopper(ctx, shopperID)
	if err != nil {
		return Resolution{}, err
	}

	switch len(addresses) {
	case 0:
		fmt.Fprintln(w, "\nNo delivery address found.")
		text, err := s.prompter.ReadLine("Please enter a new delivery address: ")
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Text: text, New: true}, nil

	case 1:
		fmt.Fprintf(w, "\nDelivery Address: %s\n", addresses[0].Text)
		return Resolution{Text: addresses[0].Text}, nil

	default:
		fmt.Fprintln(w, "\nSelect a delivery address:")

		options := make([]prompt.Option, 0, len(addresses))
		for _, a := range addresses {
			options = append(options, prompt.Option{Code: a.ID, Label: a.Text})
		}

		chosen, err := s.prompter.Select("DELIVERY ADDRESSES", "address", options)
		if err != nil {
			return Resolution{}, err
		}

		text, err := s.repo.TextByID(ctx, chosen)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Text: text}, nil
	}
}
