package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/customer360-api/infrastructure/cache"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/c360client"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/schema"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/personalizing"
	"github.com/vfg2006/customer360-api/internal/usecases/segmenting"
	"github.com/vfg2006/customer360-api/pkg/utils"
)

type cli struct {
	JSON    bool          `help:"Print raw JSON instead of text."`
	Timeout time.Duration `default:"30s" help:"Deadline for each backend call."`

	Segment  segmentCmd  `cmd:"" help:"List the customers of a health or region segment."`
	Customer customerCmd `cmd:"" help:"Show a customer profile, optionally as a persona dashboard."`
	Format   formatCmd   `cmd:"" help:"Format a number the way the dashboard shows it."`
	Chat     chatCmd     `cmd:"" help:"Ask the backend chatbot a question."`
}

// env is what every command receives from main.
type env struct {
	ctx        context.Context
	integrator customer360.Integrator
	json       bool
}

type segmentCmd struct {
	Type  string `help:"Segment type (health or region)."`
	Value string `help:"Segment value, e.g. At-Risk or Harare."`
}

type customerCmd struct {
	ID      string `arg:"" help:"Account id."`
	Persona string `help:"Render the dashboard of this persona (board, ceo, operations, sales, service, billing, account)."`
}

type formatCmd struct {
	Number string `arg:"" help:"Number to format."`
}

type chatCmd struct {
	Query []string `arg:"" help:"Question for the chatbot."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("c360ctl"),
		kong.Description("Query the Customer 360 backend from the terminal."),
		kong.UsageOnError(),
	)

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	e := &env{ctx: ctx, json: c.JSON}
	if kctx.Command() != "format <number>" {
		integrator, err := newIntegrator()
		kctx.FatalIfErrorf(err)
		e.integrator = integrator
	}

	kctx.FatalIfErrorf(kctx.Run(e))
}

// newIntegrator talks to the backend with an in-process cache only.
func newIntegrator() (customer360.Integrator, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	validator, err := schema.New()
	if err != nil {
		return nil, err
	}

	return customer360.New(cfg, c360client.NewClient(cfg, validator), cache.New(cfg.Cache, nil)), nil
}

func (e *env) print(v any) error {
	out, err := utils.PrettyJson(v)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func (cmd *segmentCmd) Run(e *env) error {
	filter, err := segmenting.ParseFilter(cmd.Type, cmd.Value)
	if err != nil {
		return fmt.Errorf("c360ctl: --type must be health or region and --value is required")
	}

	view, err := segmenting.NewService(e.integrator).Segment(e.ctx, filter)
	if err != nil {
		return err
	}
	if e.json {
		return e.print(view)
	}

	fmt.Printf("%s (%d)\n", view.Title, len(view.Customers))
	if view.EmptyMessage != "" {
		fmt.Println(view.EmptyMessage)
	}
	for _, c := range view.Customers {
		fmt.Printf("  %-12s %-32s %-10s %s\n", c.AccountID, c.AccountName, c.HealthStatus, utils.FormatCurrency(c.AnnualRevenue))
	}
	printIssues(view.DataIssues)
	return nil
}

func (cmd *customerCmd) Run(e *env) error {
	if cmd.Persona != "" {
		persona, err := personalizing.ParsePersona(cmd.Persona)
		if err != nil {
			return fmt.Errorf("c360ctl: unknown persona %q", cmd.Persona)
		}

		view, err := personalizing.NewService(e.integrator).View(e.ctx, cmd.ID, persona)
		if err != nil {
			return err
		}
		if e.json {
			return e.print(view)
		}

		fmt.Printf("%s: %s\n", view.Title, view.Customer.AccountName)
		for _, t := range view.Tiles {
			fmt.Printf("  %-28s %12s  [%s]\n", t.Title, t.Value, t.Color)
		}
		for _, a := range view.Alerts {
			fmt.Printf("  ! %s\n", a.Label)
		}
		printIssues(view.DataIssues)
		return nil
	}

	customer, err := e.integrator.GetCustomer(e.ctx, cmd.ID)
	if err != nil {
		return err
	}
	if e.json {
		return e.print(customer)
	}

	fmt.Printf("%s (%s)\n", customer.AccountName, customer.AccountID)
	fmt.Printf("  Region          %s\n", customer.Region)
	fmt.Printf("  Health          %s\n", customer.HealthStatus.Badge().Label)
	fmt.Printf("  Churn risk      %s\n", customer.ChurnRiskLevel.Badge().Label)
	fmt.Printf("  Annual revenue  %s\n", utils.FormatCurrency(customer.AnnualRevenue))
	printIssues(customer.DataIssues())
	return nil
}

func (cmd *formatCmd) Run(e *env) error {
	n, err := strconv.ParseFloat(strings.ReplaceAll(cmd.Number, ",", ""), 64)
	if err != nil {
		return fmt.Errorf("c360ctl: %q is not a number", cmd.Number)
	}

	fmt.Printf("rounded   %v\n", utils.RoundWithTwoDecimalPlace(n))
	fmt.Printf("short     %s\n", utils.FormatNumber(n))
	fmt.Printf("currency  %s\n", utils.FormatCurrency(n))
	return nil
}

func (cmd *chatCmd) Run(e *env) error {
	answer, err := e.integrator.QueryChatbot(e.ctx, domain.ChatQuery{Query: strings.Join(cmd.Query, " ")})
	if err != nil {
		return err
	}
	if e.json {
		return e.print(answer)
	}

	fmt.Println(answer.Response)
	return nil
}

func printIssues(issues []domain.DataIssue) {
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", issue.Field, issue.Message)
	}
}
