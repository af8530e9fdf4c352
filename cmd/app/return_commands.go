package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/onlinz/returns/cmd/app/commands"
	"github.com/onlinz/returns/internal/app"
	"github.com/onlinz/returns/internal/config"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withContainer runs fn with a container built from the environment and shuts it down after.
func withContainer(ctx context.Context, fn func(container *app.Container) error) error {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()
	return fn(container)
}

func getReturnCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "wizard",
			Usage: "Walk through a product return interactively and save the receipt",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					receiptUseCase, err := container.ReceiptUseCase()
					if err != nil {
						return err
					}
					return commands.RunWizard(ctx, receiptUseCase, container.Logger(), commands.DefaultIO())
				})
			},
		},
		{
			Name:  "quote",
			Usage: "Price a return without saving it",
			Flags: []cli.Flag{
				&cli.FloatFlag{Name: "height", Required: true, Usage: "Box height in cm"},
				&cli.FloatFlag{Name: "width", Required: true, Usage: "Box width in cm"},
				&cli.FloatFlag{Name: "depth", Required: true, Usage: "Box depth in cm"},
				&cli.StringFlag{
					Name:     "island",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Island the return is sent from (e.g. 'North Island')",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					receiptUseCase, err := container.ReceiptUseCase()
					if err != nil {
						return err
					}
					return commands.RunQuote(
						ctx,
						receiptUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Float("height"),
						cmd.Float("width"),
						cmd.Float("depth"),
						cmd.String("island"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "validate-customer",
			Usage: "Check customer details field by field",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "first-name", Usage: "First name"},
				&cli.StringFlag{Name: "last-name", Usage: "Last name"},
				&cli.StringFlag{Name: "email", Usage: "Email address"},
				&cli.StringFlag{Name: "telephone", Usage: "Telephone number"},
				&cli.StringFlag{Name: "address", Usage: "Street address"},
				&cli.StringFlag{Name: "island", Usage: "Island the return is sent from"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					receiptUseCase, err := container.ReceiptUseCase()
					if err != nil {
						return err
					}
					return commands.RunValidateCustomer(
						receiptUseCase,
						commands.DefaultIO().Writer,
						returnsDomain.CustomerForm{
							FirstName: cmd.String("first-name"),
							LastName:  cmd.String("last-name"),
							Email:     cmd.String("email"),
							Telephone: cmd.String("telephone"),
							Address:   cmd.String("address"),
							Island:    cmd.String("island"),
						},
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "format-phone",
			Usage: "Print a telephone number in national format",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "telephone", Aliases: []string{"t"}, Required: true, Usage: "Telephone number"},
				&cli.StringFlag{Name: "region", Aliases: []string{"r"}, Usage: "Region code (defaults to PHONE_DEFAULT_REGION)"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				region := cmd.String("region")
				if region == "" {
					region = config.Load().PhoneDefaultRegion
				}
				return commands.RunFormatPhone(
					commands.DefaultIO().Writer,
					cmd.String("telephone"),
					region,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-receipts",
			Usage: "Print every saved receipt",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					receiptUseCase, err := container.ReceiptUseCase()
					if err != nil {
						return err
					}
					return commands.RunListReceipts(ctx, receiptUseCase, commands.DefaultIO().Writer, cmd.String("format"))
				})
			},
		},
	}
}
