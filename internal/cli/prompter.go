package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dosewise/backend/internal/domain"
)

// ErrInputClosed is returned when the input stream ends while a prompt is waiting.
var ErrInputClosed = errors.New("input terminated")

var (
	errSelectionFormat = errors.New("invalid input format")
	errSelectionRange  = errors.New("invalid ingredient number(s)")
)

const listRule = 50

// Prompter drives the interactive product analysis session.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter reading answers from reader and writing prompts to writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// ListProducts prints a numbered product list starting at 1.
func (p *Prompter) ListProducts(products []domain.Product) {
	fmt.Fprintln(p.writer)
	fmt.Fprintln(p.writer, FormatTitle("Available Products:"))
	fmt.Fprintln(p.writer, strings.Repeat("-", listRule))
	for i, product := range products {
		fmt.Fprintf(p.writer, "%d. %s\n", i+1, product.Name)
	}
}

// ListIngredients prints a product's ingredients, numbered from 1, with their declared amounts.
func (p *Prompter) ListIngredients(product domain.Product) {
	fmt.Fprintln(p.writer)
	fmt.Fprintln(p.writer, FormatTitle(fmt.Sprintf("Ingredients in %s:", product.Name)))
	fmt.Fprintln(p.writer, strings.Repeat("-", listRule))
	for i, ing := range product.Ingredients {
		fmt.Fprintf(p.writer, "%d. %s (%s%s)\n", i+1, ing.Name, strconv.FormatFloat(ing.Amount, 'f', -1, 64), ing.Unit)
	}
}

// ChooseProduct asks for a product number. It returns false when the user enters 0.
func (p *Prompter) ChooseProduct(ctx context.Context, products []domain.Product) (domain.Product, bool, error) {
	for {
		input, err := p.readLine(ctx, "\nEnter product number to analyze (0 to exit): ")
		if err != nil {
			return domain.Product{}, false, err
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			p.warn("Please enter a valid number")
			continue
		}
		if choice == 0 {
			return domain.Product{}, false, nil
		}
		if choice >= 1 && choice <= len(products) {
			return products[choice-1], true, nil
		}
		p.warn(fmt.Sprintf("Please enter a number between 1 and %d", len(products)))
	}
}

// ChooseIngredients asks whether to restrict the analysis and, if so, which
// ingredient numbers to keep. A nil result means every ingredient.
func (p *Prompter) ChooseIngredients(ctx context.Context, product domain.Product) ([]string, error) {
	for {
		answer, err := p.readLine(ctx, "\nAnalyze specific ingredients? (y/n): ")
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(answer) {
		case "n":
			return nil, nil
		case "y":
		default:
			p.warn("Please enter 'y' or 'n'")
			continue
		}

		p.ListIngredients(product)
		selection, err := p.readLine(ctx, "\nEnter ingredient numbers separated by commas (e.g., '1,3'), or press Enter for all: ")
		if err != nil {
			return nil, err
		}
		if selection == "" {
			return nil, nil
		}

		names, err := parseSelection(selection, product.Ingredients)
		if err != nil {
			p.warn(err.Error())
			continue
		}
		return names, nil
	}
}

// Confirm asks a yes/no question. Only "y" counts as yes.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.readLine(ctx, question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// parseSelection maps "1, 3" to the names of the first and third ingredients.
func parseSelection(selection string, ingredients []domain.IngredientAmount) ([]string, error) {
	parts := strings.Split(selection, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errSelectionFormat
		}
		if n < 1 || n > len(ingredients) {
			return nil, errSelectionRange
		}
		names = append(names, ingredients[n-1].Name)
	}
	return names, nil
}

func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (p *Prompter) warn(message string) {
	fmt.Fprintln(p.writer, FormatWarning(message))
}
