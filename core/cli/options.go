/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/slicingmelon/urisplice/core/engine/splice"
	"github.com/slicingmelon/urisplice/core/uri"
	"github.com/slicingmelon/urisplice/core/utils/logger"
)

// Options represents command-line options
type CliOptions struct {
	// Input options
	URL                 string
	URIsFile            string
	SubstituteHostsFile string

	// Inspection
	Inspect bool

	// Edits
	AppendScheme     string
	ReplaceScheme    string
	DropScheme       bool
	SchemeSeparator  string
	AppendAuthority  string
	ReplaceAuthority string
	ReplaceHost      string
	AppendPath       string
	ReplacePath      string
	AppendQuery      string
	ReplaceQuery     string
	DropQuery        bool
	QueryDelimiter   string
	AppendFragment   string
	Strict           bool

	// Plan tokens
	PlanToken  string
	PrintToken bool

	// Output options
	Output  string
	Workers int
	Verbose bool
	Debug   bool

	// Plan built from the edit flags or decoded from PlanToken
	Plan *splice.Plan
}

func (o *CliOptions) printUsage(flagName ...string) {
	// Print header only for specific flag usage
	fmt.Fprintf(os.Stderr, "URISplice\n\n")

	for _, f := range flags {
		names := strings.Split(f.name, ",")
		for _, name := range names {
			if len(flagName) == 0 || name == flagName[0] {
				printFlagUsage(os.Stderr, f)
				if len(flagName) > 0 {
					return
				}
				break
			}
		}
	}
}

// setDefaults sets default values for options
func (o *CliOptions) setDefaults() {
	if o.Workers <= 0 {
		o.Workers = splice.DefaultWorkers
	}
	if o.SchemeSeparator == "" {
		o.SchemeSeparator = uri.DefaultSchemeSeparator
	}
	if o.QueryDelimiter == "" {
		o.QueryDelimiter = uri.DefaultQueryDelimiter
	}
}

// validate performs all validation checks and builds the edit plan
func (o *CliOptions) validate() error {
	if err := o.validateInputURIs(); err != nil {
		return err
	}

	if o.SchemeSeparator != ":" && o.SchemeSeparator != "://" {
		o.printUsage("sep")
		return fmt.Errorf("invalid scheme separator %q: use \"://\" or \":\"", o.SchemeSeparator)
	}

	if o.QueryDelimiter != "&" && o.QueryDelimiter != ";" {
		o.printUsage("qd")
		return fmt.Errorf("invalid query delimiter %q: use \"&\" or \";\"", o.QueryDelimiter)
	}

	if err := o.validateConflicts(); err != nil {
		return err
	}

	if o.PlanToken != "" {
		if o.hasEditFlags() {
			return fmt.Errorf("plan token (-t) cannot be combined with edit flags")
		}
		plan, err := splice.DecodePlanToken(o.PlanToken)
		if err != nil {
			return fmt.Errorf("invalid plan token: %w", err)
		}
		if o.Strict {
			plan.Strict = true
		}
		o.Plan = plan
		o.printPlan("=== Plan Token Information ===")
	} else if o.hasEditFlags() {
		plan, err := o.buildPlan()
		if err != nil {
			return err
		}
		o.Plan = plan
	}

	if o.PrintToken && o.Plan == nil {
		return fmt.Errorf("print token (-pt) needs at least one edit flag")
	}

	// Nothing to edit: show the components instead
	if o.Plan == nil {
		o.Inspect = true
	}

	return nil
}

// validateInputURIs checks URI and file inputs
func (o *CliOptions) validateInputURIs() error {
	if o.URL == "" && o.URIsFile == "" {
		return fmt.Errorf("either URI (-u) or URIs file (-l) is required")
	}

	if o.URL != "" && o.URIsFile != "" {
		return fmt.Errorf("cannot use both URI (-u) and URIs file (-l)")
	}

	if o.SubstituteHostsFile != "" && o.URL == "" {
		return fmt.Errorf("target URI (-u) is required when using substitute hosts file")
	}

	return nil
}

func (o *CliOptions) validateConflicts() error {
	pairs := []struct {
		a, b   string
		aSet   bool
		bSet   bool
		reason string
	}{
		{"as", "rs", o.AppendScheme != "", o.ReplaceScheme != "", "scheme"},
		{"rs", "ds", o.ReplaceScheme != "", o.DropScheme, "scheme"},
		{"as", "ds", o.AppendScheme != "", o.DropScheme, "scheme"},
		{"aa", "ra", o.AppendAuthority != "", o.ReplaceAuthority != "", "authority"},
		{"rq", "dq", o.ReplaceQuery != "", o.DropQuery, "query"},
	}

	for _, p := range pairs {
		if p.aSet && p.bSet {
			return fmt.Errorf("cannot use both -%s and -%s: pick one %s edit", p.a, p.b, p.reason)
		}
	}
	return nil
}

func (o *CliOptions) hasEditFlags() bool {
	return o.AppendScheme != "" || o.ReplaceScheme != "" || o.DropScheme ||
		o.AppendAuthority != "" || o.ReplaceAuthority != "" || o.ReplaceHost != "" ||
		o.AppendPath != "" || o.ReplacePath != "" ||
		o.AppendQuery != "" || o.ReplaceQuery != "" || o.DropQuery ||
		o.AppendFragment != ""
}

// buildPlan turns the edit flags into a plan. Edits run scheme first, then
// authority, path, query and fragment.
func (o *CliOptions) buildPlan() (*splice.Plan, error) {
	plan := &splice.Plan{Strict: o.Strict}
	add := func(e splice.Edit) { plan.Edits = append(plan.Edits, e) }

	switch {
	case o.DropScheme:
		add(splice.Edit{Op: splice.OpReplaceScheme})
	case o.AppendScheme != "":
		add(splice.Edit{Op: splice.OpAppendScheme, Value: o.AppendScheme, Separator: o.SchemeSeparator})
	case o.ReplaceScheme != "":
		add(splice.Edit{Op: splice.OpReplaceScheme, Value: o.ReplaceScheme, Separator: o.SchemeSeparator})
	}

	if o.AppendAuthority != "" {
		add(splice.Edit{Op: splice.OpAppendAuthority, Value: o.AppendAuthority})
	}
	if o.ReplaceAuthority != "" {
		add(splice.Edit{Op: splice.OpReplaceAuthority, Value: o.ReplaceAuthority})
	}
	if o.ReplaceHost != "" {
		add(splice.Edit{Op: splice.OpReplaceHost, Value: o.ReplaceHost})
	}

	if o.ReplacePath != "" {
		add(splice.Edit{Op: splice.OpReplacePath, Value: o.ReplacePath})
	}
	if o.AppendPath != "" {
		add(splice.Edit{Op: splice.OpAppendPath, Value: o.AppendPath})
	}

	if o.DropQuery {
		add(splice.Edit{Op: splice.OpReplaceQuery})
	}
	if o.ReplaceQuery != "" {
		params, err := splice.ParseParams(o.ReplaceQuery)
		if err != nil {
			o.printUsage("rq")
			return nil, fmt.Errorf("invalid replace-query params: %w", err)
		}
		add(splice.Edit{Op: splice.OpReplaceQuery, Params: params})
	}
	if o.AppendQuery != "" {
		params, err := splice.ParseParams(o.AppendQuery)
		if err != nil {
			o.printUsage("aq")
			return nil, fmt.Errorf("invalid append-query params: %w", err)
		}
		add(splice.Edit{Op: splice.OpAppendQuery, Params: params, Separator: o.QueryDelimiter})
	}

	if o.AppendFragment != "" {
		add(splice.Edit{Op: splice.OpAppendFragment, Value: o.AppendFragment})
	}

	return plan, nil
}

func (o *CliOptions) printPlan(title string) {
	logger.PrintYellowLn(title)
	for i, e := range o.Plan.Edits {
		logger.PrintYellow("Edit %d: %s\n", i+1, e)
	}
	logger.PrintYellow("Strict: %t\n\n", o.Plan.Strict)
}
