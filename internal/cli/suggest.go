package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v3"

	"github.com/mousam-kumari/gift-flask/internal/config"
	"github.com/mousam-kumari/gift-flask/internal/logging"
	"github.com/mousam-kumari/gift-flask/internal/models"
	"github.com/mousam-kumari/gift-flask/internal/repository"
	"github.com/mousam-kumari/gift-flask/internal/service"
)

func suggestCommand() *cli.Command {
	var (
		cfg      = config.Load()
		criteria models.Criteria
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "age",
			Aliases:     []string{"a"},
			Usage:       "Recipient age",
			Destination: &criteria.Age,
		},
		&cli.StringFlag{
			Name:        "gender",
			Aliases:     []string{"g"},
			Usage:       "Recipient gender",
			Destination: &criteria.Gender,
		},
		&cli.StringFlag{
			Name:        "occasion",
			Aliases:     []string{"o"},
			Usage:       "Occasion, e.g. Diwali or birthday",
			Destination: &criteria.Occasion,
		},
		&cli.StringFlag{
			Name:        "recipient",
			Aliases:     []string{"r"},
			Usage:       "Relationship to the recipient, e.g. friend",
			Destination: &criteria.RecipientType,
		},
		&cli.StringSliceFlag{
			Name:        "category",
			Aliases:     []string{"c"},
			Usage:       "Interest category (repeatable)",
			Destination: &criteria.Categories,
		},
		&cli.StringFlag{
			Name:        "price-range",
			Usage:       "Price range, e.g. \"1000 to 3000 INR\"",
			Destination: &criteria.PriceRange,
		},
	}
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:      "suggest",
		Usage:     "Print gift ideas for the given criteria, or for a free-text query",
		ArgsUsage: "[query...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.SetDefault(logging.New(cfg.LogLevel, c.Root().ErrWriter))

			if err := cfg.Validate(); err != nil {
				return err
			}

			llm, err := newLLM(cfg)
			if err != nil {
				return err
			}
			svc := service.NewGiftService(llm, repository.NewMemoryHistory(),
				service.WithCompletionTimeout(cfg.LLMTimeout))

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(c.Root().ErrWriter))
			s.Suffix = " finding gift ideas..."
			s.Start()

			var ideas []models.GiftIdea
			if c.Args().Len() > 0 {
				ideas, err = svc.Search(ctx, strings.Join(c.Args().Slice(), " "))
			} else {
				ideas, err = svc.Generate(ctx, criteria)
			}
			s.Stop()
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if len(ideas) == 0 {
				fmt.Fprintln(w, "No gift ideas found.")
				return nil
			}
			for _, idea := range ideas {
				fmt.Fprintf(w, "Product_name: %s\nReason: %s\n\n", idea.ProductName, idea.Reason)
			}
			return nil
		},
	}
}
